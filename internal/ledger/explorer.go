package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"depositmart/pkg/clients"
)

// ExplorerClient talks to an esplora-compatible block explorer API. BTC and
// DOGE share the implementation and differ only in base URL and unit scale
// (both are satoshi-denominated, 1e8).
type ExplorerClient struct {
	currency string
	baseURL  string
	client   clients.HTTPClientI
}

func NewExplorerClient(currency, baseURL string, client clients.HTTPClientI) *ExplorerClient {
	return &ExplorerClient{
		currency: currency,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		client:   client,
	}
}

func (c *ExplorerClient) Currency() string {
	return c.currency
}

func (c *ExplorerClient) UnitScale() float64 {
	return 1e8
}

type explorerTx struct {
	Txid   string `json:"txid"`
	Status struct {
		Confirmed   bool  `json:"confirmed"`
		BlockHeight int64 `json:"block_height"`
		BlockTime   int64 `json:"block_time"`
	} `json:"status"`
	Vout []struct {
		Address   string `json:"scriptpubkey_address"`
		ValueSats int64  `json:"value"`
	} `json:"vout"`
}

func (c *ExplorerClient) GetTransaction(ctx context.Context, txid string) (*Transaction, error) {
	url := c.baseURL + "/tx/" + txid
	statusCode, body, _, err := c.client.Get(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("explorer request failed for %s: %w", c.currency, err)
	}
	if statusCode == http.StatusNotFound {
		return nil, ErrTxNotFound
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer returned status %d for %s", statusCode, c.currency)
	}

	var parsed explorerTx
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("can't parse explorer response: %w", err)
	}

	tx := &Transaction{
		Txid:        parsed.Txid,
		Confirmed:   parsed.Status.Confirmed,
		BlockHeight: parsed.Status.BlockHeight,
		Raw:         body,
	}
	if parsed.Status.BlockTime > 0 {
		tx.BlockTime = time.Unix(parsed.Status.BlockTime, 0).UTC()
	}
	for _, out := range parsed.Vout {
		tx.Outputs = append(tx.Outputs, Output{
			Address:   out.Address,
			ValueSats: out.ValueSats,
		})
	}
	return tx, nil
}

func (c *ExplorerClient) GetTipHeight(ctx context.Context) (int64, error) {
	url := c.baseURL + "/blocks/tip/height"
	statusCode, body, _, err := c.client.Get(ctx, url, nil)
	if err != nil {
		return 0, fmt.Errorf("tip height request failed for %s: %w", c.currency, err)
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("tip height returned status %d for %s", statusCode, c.currency)
	}

	height, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse tip height: %w", err)
	}
	return height, nil
}
