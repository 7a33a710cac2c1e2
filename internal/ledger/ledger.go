package ledger

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=ledger.go -destination=mock_ledger.go -package=ledger

var (
	// ErrTxNotFound is the definitive "this transaction does not exist on
	// chain" answer. Anything else from an explorer is transient.
	ErrTxNotFound          = errors.New("transaction not found on chain")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

type Output struct {
	Address   string
	ValueSats int64
}

type Transaction struct {
	Txid        string
	Confirmed   bool
	BlockHeight int64
	BlockTime   time.Time
	Outputs     []Output
	Raw         []byte
}

// Client is the per-chain explorer adapter. Implementations only observe a
// public ledger; they never sign or broadcast anything.
type Client interface {
	Currency() string
	GetTransaction(ctx context.Context, txid string) (*Transaction, error)
	GetTipHeight(ctx context.Context) (int64, error)
	UnitScale() float64
}

// Registry resolves a currency to its configured explorer client.
// Unconfigured currencies fail fast instead of silently misbehaving.
type Registry struct {
	clients map[string]Client
}

func NewRegistry(clients ...Client) *Registry {
	m := make(map[string]Client, len(clients))
	for _, c := range clients {
		m[c.Currency()] = c
	}
	return &Registry{clients: m}
}

func (r *Registry) Client(currency string) (Client, error) {
	c, ok := r.clients[currency]
	if !ok {
		return nil, ErrUnsupportedCurrency
	}
	return c, nil
}
