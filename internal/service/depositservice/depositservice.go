package depositservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"depositmart/internal/domain"
	"depositmart/pkg/validate"

	"go.uber.org/zap"
)

//go:generate mockgen -source=depositservice.go -destination=mock_depositservice.go -package=depositservice

type DepositRepo interface {
	Save(ctx context.Context, deposit *domain.Deposit) error
	FindByID(ctx context.Context, id int) (*domain.Deposit, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	Update(ctx context.Context, deposit *domain.Deposit) error
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	SetLastCancelledDeposit(ctx context.Context, userID int, at time.Time) error
}

type WalletRepo interface {
	FindActiveByCurrency(ctx context.Context, currency string) ([]domain.WalletAddress, error)
}

const (
	// PendingStatus deposit created, waiting for funds or confirmations;
	PendingStatus string = "pending"
	// CompletedStatus funds verified and credited, terminal;
	CompletedStatus string = "completed"
	// CancelledStatus aborted by user or admin, terminal;
	CancelledStatus string = "cancelled"
)

// CooldownDuration is how long deposit creation is blocked after the user
// cancels a pending deposit. Completed deposits never arm it.
const CooldownDuration = time.Hour

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrNoActiveAddress   = errors.New("no active wallet address for currency")
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrDepositNotPending = errors.New("deposit is not pending")
	ErrInvalidTxidFormat = errors.New("invalid transaction id format")
)

// CooldownError reports the remaining wait so callers can render a countdown.
type CooldownError struct {
	EndsAt    time.Time
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("deposit cooldown active, %d minutes remaining", e.RemainingMinutes())
}

func (e *CooldownError) RemainingMinutes() int {
	return int(math.Ceil(e.Remaining.Minutes()))
}

type CooldownStatus struct {
	HasCooldown      bool
	CooldownEndsAt   *time.Time
	RemainingMinutes int
}

type Service struct {
	depositRepo DepositRepo
	userRepo    UserRepo
	walletRepo  WalletRepo
}

func New(depositRepo DepositRepo, userRepo UserRepo, walletRepo WalletRepo) *Service {
	return &Service{
		depositRepo: depositRepo,
		userRepo:    userRepo,
		walletRepo:  walletRepo,
	}
}

func (s *Service) cooldown(user *domain.User, now time.Time) *CooldownError {
	if user.LastCancelledDepositAt == nil {
		return nil
	}
	endsAt := user.LastCancelledDepositAt.Add(CooldownDuration)
	if !now.Before(endsAt) {
		return nil
	}
	return &CooldownError{EndsAt: endsAt, Remaining: endsAt.Sub(now)}
}

// Create starts a deposit for the user on the first active receiving address
// of the currency. Rejected while the cancellation cooldown is running.
func (s *Service) Create(ctx context.Context, userID int, currency string) (*domain.Deposit, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if cd := s.cooldown(user, time.Now()); cd != nil {
		zap.L().Info("deposit creation blocked by cooldown",
			zap.Int("userID", userID), zap.Int("remainingMinutes", cd.RemainingMinutes()))
		return nil, cd
	}

	addresses, err := s.walletRepo.FindActiveByCurrency(ctx, currency)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		zap.L().Error("no active wallet address configured", zap.String("currency", currency))
		return nil, ErrNoActiveAddress
	}

	deposit := &domain.Deposit{
		UserID:        userID,
		Currency:      currency,
		WalletAddress: addresses[0].Address,
		Status:        PendingStatus,
	}
	if err := s.depositRepo.Save(ctx, deposit); err != nil {
		zap.L().Error("can't save deposit: ", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (s *Service) findOwned(ctx context.Context, userID, depositID int) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil || deposit.UserID != userID {
		return nil, ErrDepositNotFound
	}
	return deposit, nil
}

// AttachTransaction binds a user-submitted txid to a pending deposit.
func (s *Service) AttachTransaction(ctx context.Context, userID, depositID int, txid string) (*domain.Deposit, error) {
	deposit, err := s.findOwned(ctx, userID, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Status != PendingStatus {
		return nil, ErrDepositNotPending
	}

	normalized := validate.NormalizeTxid(txid)
	if !validate.IsTxid(deposit.Currency, normalized) {
		return nil, ErrInvalidTxidFormat
	}

	deposit.TransactionID = &normalized
	if err := s.depositRepo.Update(ctx, deposit); err != nil {
		zap.L().Error("can't attach transaction id", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// Cancel aborts a pending deposit and arms the cooldown. This asymmetry
// (cancellation punished, success not) is deliberate abuse deterrence.
func (s *Service) Cancel(ctx context.Context, userID, depositID int) error {
	deposit, err := s.findOwned(ctx, userID, depositID)
	if err != nil {
		return err
	}
	if deposit.Status != PendingStatus {
		return ErrDepositNotPending
	}

	deposit.Status = CancelledStatus
	if err := s.depositRepo.Update(ctx, deposit); err != nil {
		zap.L().Error("can't cancel deposit", zap.Error(err))
		return err
	}

	if err := s.userRepo.SetLastCancelledDeposit(ctx, userID, time.Now()); err != nil {
		zap.L().Error("can't arm deposit cooldown", zap.Error(err))
		return err
	}

	zap.L().Info("deposit cancelled", zap.Int("depositID", depositID), zap.Int("userID", userID))
	return nil
}

func (s *Service) GetDeposits(ctx context.Context, userID int) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) GetCooldownStatus(ctx context.Context, userID int) (*CooldownStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cd := s.cooldown(user, time.Now())
	if cd == nil {
		return &CooldownStatus{}, nil
	}
	endsAt := cd.EndsAt
	return &CooldownStatus{
		HasCooldown:      true,
		CooldownEndsAt:   &endsAt,
		RemainingMinutes: cd.RemainingMinutes(),
	}, nil
}
