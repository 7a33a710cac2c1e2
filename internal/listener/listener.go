package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"depositmart/internal/domain"
	"depositmart/internal/ledger"
	"depositmart/internal/service/verifyservice"
	"depositmart/pkg/validate"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

//go:generate mockgen -source=listener.go -destination=mock_listener.go -package=listener

type WalletRepo interface {
	FindAllActive(ctx context.Context) ([]domain.WalletAddress, error)
}

type VerificationRepo interface {
	Upsert(ctx context.Context, rec *domain.VerificationRecord) (*domain.VerificationRecord, error)
}

type Ledgers interface {
	Client(currency string) (ledger.Client, error)
}

// Conn is the subset of *websocket.Conn the listener uses.
type Conn interface {
	WriteJSON(v interface{}) error
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

type WSDialer struct{}

func (d *WSDialer) Dial(ctx context.Context, url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

var (
	ErrNotConfigured      = errors.New("push feed url not configured")
	ErrNoTrackedAddresses = errors.New("no active wallet addresses to track")
	ErrNotRunning         = errors.New("listener is not running")
)

const (
	initialBackoff = time.Second
	maxBackoff     = time.Minute
)

type subscribeMessage struct {
	Type      string   `json:"type"`
	Addresses []string `json:"addresses"`
}

// feedEvent is one pushed notification. Confirmed and unconfirmed
// transactions arrive on the same stream, bucketed by the confirmed flag.
type feedEvent struct {
	Type string `json:"type"`
	Data struct {
		Txid          string `json:"txid"`
		Address       string `json:"address"`
		Currency      string `json:"currency"`
		ValueSats     int64  `json:"value_sats"`
		Confirmed     bool   `json:"confirmed"`
		Confirmations int    `json:"confirmations"`
	} `json:"data"`
}

type Status struct {
	Running          bool `json:"running"`
	Connected        bool `json:"connected"`
	TrackedAddresses int  `json:"trackedAddresses"`
}

// Service holds the single process-wide push feed subscription. It only
// upserts verification records so confirmation state is known sooner; it
// never credits anything.
type Service struct {
	url              string
	walletRepo       WalletRepo
	verificationRepo VerificationRepo
	ledgers          Ledgers
	dialer           Dialer

	lifecycle sync.Mutex // serializes Start and Stop

	mu        sync.Mutex
	running   bool
	connected bool
	cancel    context.CancelFunc
	conn      Conn
	tracked   map[string]string // address -> currency
	wg        sync.WaitGroup
}

func New(url string, walletRepo WalletRepo, verificationRepo VerificationRepo, ledgers Ledgers, dialer Dialer) *Service {
	if dialer == nil {
		dialer = &WSDialer{}
	}
	return &Service{
		url:              url,
		walletRepo:       walletRepo,
		verificationRepo: verificationRepo,
		ledgers:          ledgers,
		dialer:           dialer,
		tracked:          map[string]string{},
	}
}

// Start (re)subscribes with the address set recomputed from the registry.
// A running subscription is torn down first; the old connection is always
// closed before a new one is opened.
func (s *Service) Start(ctx context.Context) error {
	if s.url == "" {
		return ErrNotConfigured
	}

	addresses, err := s.walletRepo.FindAllActive(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		return ErrNoTrackedAddresses
	}

	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	s.stop()

	tracked := make(map[string]string, len(addresses))
	for _, addr := range addresses {
		tracked[addr.Address] = addr.Currency
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	s.running = true
	s.cancel = cancel
	s.tracked = tracked
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(runCtx)

	zap.L().Info("push listener started", zap.Int("trackedAddresses", len(tracked)))
	return nil
}

// Stop tears the subscription down. Safe to call when not running.
func (s *Service) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	s.stop()
}

func (s *Service) stop() {
	s.mu.Lock()
	cancel := s.cancel
	conn := s.conn
	s.cancel = nil
	s.conn = nil
	s.running = false
	s.connected = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
	s.wg.Wait()
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:          s.running,
		Connected:        s.connected,
		TrackedAddresses: len(s.tracked),
	}
}

func (s *Service) run(ctx context.Context) {
	defer s.wg.Done()

	backoff := initialBackoff
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, err := s.dialer.Dial(ctx, s.url)
		if err != nil {
			zap.L().Warn("push feed dial failed, reconnecting",
				zap.Duration("backoff", backoff), zap.Error(err))
			if !s.sleep(ctx, &backoff) {
				return
			}
			continue
		}

		s.mu.Lock()
		if !s.running {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conn = conn
		s.connected = true
		addresses := make([]string, 0, len(s.tracked))
		for addr := range s.tracked {
			addresses = append(addresses, addr)
		}
		s.mu.Unlock()

		if err := conn.WriteJSON(subscribeMessage{Type: "subscribe", Addresses: addresses}); err != nil {
			zap.L().Warn("push feed subscribe failed", zap.Error(err))
			s.dropConn(conn)
			if !s.sleep(ctx, &backoff) {
				return
			}
			continue
		}

		backoff = initialBackoff
		s.readLoop(ctx, conn)
		s.dropConn(conn)

		if !s.sleep(ctx, &backoff) {
			return
		}
	}
}

func (s *Service) dropConn(conn Conn) {
	conn.Close()
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.connected = false
	s.mu.Unlock()
}

// sleep waits one backoff period, doubling it up to maxBackoff. Returns
// false when the context is cancelled.
func (s *Service) sleep(ctx context.Context, backoff *time.Duration) bool {
	timer := time.NewTimer(*backoff)
	defer timer.Stop()

	*backoff *= 2
	if *backoff > maxBackoff {
		*backoff = maxBackoff
	}

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Service) readLoop(ctx context.Context, conn Conn) {
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				zap.L().Warn("push feed read failed, reconnecting", zap.Error(err))
			}
			return
		}

		var event feedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			zap.L().Warn("can't parse push feed event", zap.Error(err))
			continue
		}
		if event.Type != "address_tx" {
			continue
		}
		if err := s.handleEvent(ctx, &event, payload); err != nil {
			zap.L().Error("can't apply push feed event",
				zap.String("txid", event.Data.Txid), zap.Error(err))
		}
	}
}

// handleEvent upserts a verification record for a pushed transaction using
// the same (txid, currency) identity as the pull path. Crediting stays with
// the verification engine.
func (s *Service) handleEvent(ctx context.Context, event *feedEvent, raw []byte) error {
	s.mu.Lock()
	currency, ok := s.tracked[event.Data.Address]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	scale := 1e8
	if client, err := s.ledgers.Client(currency); err == nil {
		scale = client.UnitScale()
	}

	rec := &domain.VerificationRecord{
		Txid:           validate.NormalizeTxid(event.Data.Txid),
		Currency:       currency,
		MatchedAddress: event.Data.Address,
		AmountSats:     event.Data.ValueSats,
		AmountFloat:    float64(event.Data.ValueSats) / scale,
		Confirmed:      event.Data.Confirmed && event.Data.Confirmations >= verifyservice.RequiredConfirmations,
		Meta:           raw,
	}
	if _, err := s.verificationRepo.Upsert(ctx, rec); err != nil {
		return err
	}

	zap.L().Info("push feed transaction recorded",
		zap.String("txid", rec.Txid),
		zap.String("currency", currency),
		zap.Int64("amountSats", rec.AmountSats),
		zap.Bool("confirmed", rec.Confirmed))
	return nil
}
