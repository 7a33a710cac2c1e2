package verifyservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"depositmart/internal/domain"
	"depositmart/internal/ledger"
	"depositmart/pkg/validate"

	"go.uber.org/zap"
)

//go:generate mockgen -source=verifyservice.go -destination=mock_verifyservice.go -package=verifyservice

type VerificationRepo interface {
	FindByTxid(ctx context.Context, txid, currency string) (*domain.VerificationRecord, error)
	FindByID(ctx context.Context, id string) (*domain.VerificationRecord, error)
	Upsert(ctx context.Context, rec *domain.VerificationRecord) (*domain.VerificationRecord, error)
	RecordError(ctx context.Context, txid, currency, message string) (*domain.VerificationRecord, error)
	IsTxidUsed(ctx context.Context, txid string) (bool, string, error)
}

type DepositRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Deposit, error)
	FindByTransactionID(ctx context.Context, txid string) (*domain.Deposit, error)
	Update(ctx context.Context, deposit *domain.Deposit) error
}

type WalletRepo interface {
	FindActiveByCurrency(ctx context.Context, currency string) ([]domain.WalletAddress, error)
}

type Ledgers interface {
	Client(currency string) (ledger.Client, error)
}

type Prices interface {
	HistoricalUSD(ctx context.Context, currency string, at time.Time) (float64, error)
	SpotUSD(ctx context.Context, currency string) (float64, error)
}

type Creditor interface {
	Credit(ctx context.Context, deposit *domain.Deposit, record *domain.VerificationRecord,
		credits float64, pricingMode string) (float64, error)
}

// RequiredConfirmations is the uniform threshold for every supported
// currency. Fixed policy, deliberately not configurable.
const RequiredConfirmations = 2

type OutcomeStatus string

const (
	StatusConfirmed OutcomeStatus = "confirmed"
	StatusPending   OutcomeStatus = "pending"
	StatusRejected  OutcomeStatus = "rejected"
	StatusTransient OutcomeStatus = "transient_error"
)

const (
	CodeInvalidTxidFormat   = "INVALID_TXID_FORMAT"
	CodeTxidAlreadyUsed     = "TXID_ALREADY_USED"
	CodeAlreadyCredited     = "ALREADY_CREDITED"
	CodeUnsupportedCurrency = "UNSUPPORTED_CURRENCY"
	CodeNoActiveAddress     = "NO_ACTIVE_ADDRESS"
	CodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	CodeAddressMismatch     = "ADDRESS_MISMATCH"
	CodeExplorerError       = "EXPLORER_ERROR"
)

var (
	ErrDepositNotFound  = errors.New("deposit not found")
	ErrDepositCancelled = errors.New("deposit is cancelled")
	ErrNoTransactionID  = errors.New("deposit has no transaction id")
	ErrRecordNotFound   = errors.New("verification record not found")
)

// Outcome is the result of one verification pass. Status carries the
// decision; Code the machine-readable reason for rejections and errors.
type Outcome struct {
	Status           OutcomeStatus
	Code             string
	Reason           string
	Confirmations    int
	AmountSats       int64
	Amount           float64
	Credits          float64
	CreditsAdded     float64
	NewBalance       float64
	PricingMode      string
	UsedBy           string
	CheckedAddresses []string
	Record           *domain.VerificationRecord
}

type Service struct {
	verificationRepo VerificationRepo
	depositRepo      DepositRepo
	walletRepo       WalletRepo
	ledgers          Ledgers
	prices           Prices
	creditor         Creditor
}

func New(verificationRepo VerificationRepo, depositRepo DepositRepo, walletRepo WalletRepo,
	ledgers Ledgers, prices Prices, creditor Creditor) *Service {
	return &Service{
		verificationRepo: verificationRepo,
		depositRepo:      depositRepo,
		walletRepo:       walletRepo,
		ledgers:          ledgers,
		prices:           prices,
		creditor:         creditor,
	}
}

func rejected(code, reason string) *Outcome {
	return &Outcome{Status: StatusRejected, Code: code, Reason: reason}
}

// Verify runs the full verification pass for (txid, currency): format check,
// global txid uniqueness, ledger lookup, address match, confirmation count
// and, when wantPrice is set, the credit amount with its pricing mode.
// Returned errors are storage faults; every domain decision is an Outcome.
func (s *Service) Verify(ctx context.Context, txid, currency string, wantPrice bool) (*Outcome, error) {
	normalized := validate.NormalizeTxid(txid)
	if !validate.IsTxid(currency, normalized) {
		return rejected(CodeInvalidTxidFormat, "transaction id is not well-formed for "+currency), nil
	}

	used, source, err := s.verificationRepo.IsTxidUsed(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if used {
		out := rejected(CodeTxidAlreadyUsed, "transaction id was already credited")
		out.UsedBy = source
		return out, nil
	}

	addresses, err := s.walletRepo.FindActiveByCurrency(ctx, currency)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		zap.L().Error("no active wallet address configured", zap.String("currency", currency))
		return rejected(CodeNoActiveAddress, "no active wallet address configured for "+currency), nil
	}

	client, err := s.ledgers.Client(currency)
	if err != nil {
		return rejected(CodeUnsupportedCurrency, "no ledger explorer configured for "+currency), nil
	}

	tx, err := client.GetTransaction(ctx, normalized)
	if err != nil {
		if errors.Is(err, ledger.ErrTxNotFound) {
			rec, rerr := s.verificationRepo.RecordError(ctx, normalized, currency, "transaction not found on chain")
			if rerr != nil {
				return nil, rerr
			}
			out := rejected(CodeTransactionNotFound, "transaction not found on chain")
			out.Record = rec
			return out, nil
		}
		// explorer outage or malformed answer: retryable, never a rejection
		rec, rerr := s.verificationRepo.RecordError(ctx, normalized, currency, err.Error())
		if rerr != nil {
			return nil, rerr
		}
		zap.L().Warn("ledger lookup failed", zap.String("txid", normalized), zap.Error(err))
		out := &Outcome{Status: StatusTransient, Code: CodeExplorerError, Reason: err.Error(), Record: rec}
		return out, nil
	}

	matched, sats := matchOutput(addresses, tx.Outputs)
	if matched == "" {
		checked := make([]string, len(addresses))
		for i, a := range addresses {
			checked[i] = a.Address
		}
		msg := "no output pays a registered address; checked: " + strings.Join(checked, ", ")
		rec, rerr := s.verificationRepo.RecordError(ctx, normalized, currency, msg)
		if rerr != nil {
			return nil, rerr
		}
		out := rejected(CodeAddressMismatch, msg)
		out.CheckedAddresses = checked
		out.Record = rec
		return out, nil
	}

	amount := float64(sats) / client.UnitScale()
	confirmations := s.countConfirmations(ctx, client, tx)
	confirmed := confirmations >= RequiredConfirmations

	rec, err := s.verificationRepo.Upsert(ctx, &domain.VerificationRecord{
		Txid:           normalized,
		Currency:       currency,
		MatchedAddress: matched,
		AmountSats:     sats,
		AmountFloat:    amount,
		Confirmed:      confirmed,
		Meta:           tx.Raw,
	})
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Status:        StatusPending,
		Confirmations: confirmations,
		AmountSats:    sats,
		Amount:        amount,
		Record:        rec,
	}
	if confirmed {
		out.Status = StatusConfirmed
		if wantPrice {
			out.Credits, out.PricingMode = s.resolveCredits(ctx, currency, amount, tx.BlockTime)
		}
	}
	return out, nil
}

// matchOutput walks the registry in order; the first registered address found
// among the outputs wins.
func matchOutput(addresses []domain.WalletAddress, outputs []ledger.Output) (string, int64) {
	for _, addr := range addresses {
		for _, out := range outputs {
			if out.Address == addr.Address {
				return addr.Address, out.ValueSats
			}
		}
	}
	return "", 0
}

// countConfirmations computes tip - height + 1 from the live chain tip. A tip
// fetch failure degrades to 1: confirmed-but-uncounted is safer than
// rejecting a real payment.
func (s *Service) countConfirmations(ctx context.Context, client ledger.Client, tx *ledger.Transaction) int {
	if !tx.Confirmed {
		return 0
	}
	tip, err := client.GetTipHeight(ctx)
	if err != nil {
		zap.L().Warn("can't fetch chain tip, degrading to 1 confirmation",
			zap.String("currency", client.Currency()), zap.Error(err))
		return 1
	}
	confirmations := int(tip - tx.BlockHeight + 1)
	if confirmations < 1 {
		return 1
	}
	return confirmations
}

// resolveCredits prices the deposit: historical price at block time, then
// spot, then the raw asset amount. The chosen mode is recorded for audit.
func (s *Service) resolveCredits(ctx context.Context, currency string, amount float64, blockTime time.Time) (float64, string) {
	if !blockTime.IsZero() {
		price, err := s.prices.HistoricalUSD(ctx, currency, blockTime)
		if err == nil {
			return amount * price, domain.PricingHistorical
		}
		zap.L().Warn("historical price lookup failed", zap.String("currency", currency), zap.Error(err))
	}

	price, err := s.prices.SpotUSD(ctx, currency)
	if err == nil {
		return amount * price, domain.PricingSpot
	}
	zap.L().Warn("spot price lookup failed, crediting raw asset amount",
		zap.String("currency", currency), zap.Error(err))

	return amount, domain.PricingRaw
}

// VerifyDeposit runs verification for a user's deposit and credits it when
// the confirmation threshold is reached. An empty txid re-checks the one
// already attached.
func (s *Service) VerifyDeposit(ctx context.Context, userID, depositID int, txid string) (*Outcome, error) {
	deposit, err := s.depositRepo.FindByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil || deposit.UserID != userID {
		return nil, ErrDepositNotFound
	}

	switch deposit.Status {
	case "completed":
		// already settled: report the existing state, add nothing
		out := &Outcome{
			Status:        StatusConfirmed,
			Code:          CodeAlreadyCredited,
			Reason:        "deposit already completed",
			Confirmations: deposit.Confirmations,
			Credits:       deposit.Credits,
		}
		return out, nil
	case "cancelled":
		return nil, ErrDepositCancelled
	}

	if txid == "" {
		if deposit.TransactionID == nil {
			return nil, ErrNoTransactionID
		}
		txid = *deposit.TransactionID
	}

	outcome, err := s.Verify(ctx, txid, deposit.Currency, true)
	if err != nil {
		return nil, err
	}
	return outcome, s.applyOutcome(ctx, deposit, validate.NormalizeTxid(txid), outcome)
}

// applyOutcome persists what the pass learned onto the deposit and credits it
// when confirmed.
func (s *Service) applyOutcome(ctx context.Context, deposit *domain.Deposit, txid string, outcome *Outcome) error {
	if outcome.Code != CodeInvalidTxidFormat {
		deposit.TransactionID = &txid
	}
	deposit.Confirmations = outcome.Confirmations

	switch outcome.Status {
	case StatusConfirmed:
		deposit.VerificationError = nil
		newBalance, err := s.creditor.Credit(ctx, deposit, outcome.Record, outcome.Credits, outcome.PricingMode)
		if err != nil {
			return fmt.Errorf("verification confirmed but crediting failed: %w", err)
		}
		outcome.NewBalance = newBalance
		outcome.CreditsAdded = deposit.Credits
		return nil
	case StatusPending:
		deposit.VerificationError = nil
	default:
		reason := outcome.Reason
		deposit.VerificationError = &reason
	}
	return s.depositRepo.Update(ctx, deposit)
}

// CheckConfirmations re-runs verification for a deposit that already carries
// a txid and auto-completes it on reaching the threshold.
func (s *Service) CheckConfirmations(ctx context.Context, userID, depositID int) (*Outcome, error) {
	return s.VerifyDeposit(ctx, userID, depositID, "")
}

// Retry is the operator's reconciliation pass over an existing verification
// record. Credited records are terminal; retry is then a no-op success.
func (s *Service) Retry(ctx context.Context, recordID string) (*Outcome, error) {
	record, err := s.verificationRepo.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	if record.Credited {
		return &Outcome{
			Status: StatusConfirmed,
			Code:   CodeAlreadyCredited,
			Reason: "record already credited",
			Record: record,
		}, nil
	}

	deposit, err := s.depositRepo.FindByTransactionID(ctx, record.Txid)
	if err != nil {
		return nil, err
	}
	if deposit != nil && deposit.Status == "pending" {
		return s.VerifyDeposit(ctx, deposit.UserID, deposit.ID, record.Txid)
	}

	// no deposit references this txid yet; refresh confirmation state only
	return s.Verify(ctx, record.Txid, record.Currency, false)
}
