package creditservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"depositmart/internal/domain"
	"depositmart/internal/pg"
	"depositmart/pkg/validate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=creditservice.go -destination=mock_creditservice.go -package=creditservice

type UserRepo interface {
	AddCredits(ctx context.Context, userID int, amount float64) (float64, error)
	GetCredits(ctx context.Context, userID int) (float64, error)
}

type DepositRepo interface {
	Update(ctx context.Context, deposit *domain.Deposit) error
}

type VerificationRepo interface {
	MarkCredited(ctx context.Context, id string, pricingMode string) (bool, error)
	IsTxidUsed(ctx context.Context, txid string) (bool, string, error)
}

type ManualCreditRepo interface {
	Create(ctx context.Context, credit *domain.ManualCredit) (*domain.ManualCredit, error)
}

var (
	ErrAlreadyCredited = errors.New("transaction already credited")
	ErrUserNotFound    = errors.New("user not found")
)

// ConflictError reports which crediting path already consumed a txid.
type ConflictError struct {
	Txid   string
	Source string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("transaction %s already credited via %s", e.Txid, e.Source)
}

const completedStatus = "completed"

type Service struct {
	userRepo         UserRepo
	depositRepo      DepositRepo
	verificationRepo VerificationRepo
	manualCreditRepo ManualCreditRepo
	txManager        pg.TXManager
}

func New(userRepo UserRepo, depositRepo DepositRepo, verificationRepo VerificationRepo,
	manualCreditRepo ManualCreditRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:         userRepo,
		depositRepo:      depositRepo,
		verificationRepo: verificationRepo,
		manualCreditRepo: manualCreditRepo,
		txManager:        txManager,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Credit applies a confirmed verification's value to the deposit owner's
// balance exactly once. Marking the record credited, adding the funds and
// completing the deposit happen in a single database transaction; re-entry
// with an already-credited record or completed deposit is a no-op success.
func (s *Service) Credit(ctx context.Context, deposit *domain.Deposit, record *domain.VerificationRecord,
	credits float64, pricingMode string) (float64, error) {
	if record.Credited || deposit.Status == completedStatus {
		return s.userRepo.GetCredits(ctx, deposit.UserID)
	}

	var newBalance float64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		flipped, err := s.verificationRepo.MarkCredited(ctx, record.ID, pricingMode)
		if err != nil {
			return err
		}
		if !flipped {
			return ErrAlreadyCredited
		}

		newBalance, err = s.userRepo.AddCredits(ctx, deposit.UserID, credits)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrUserNotFound
			}
			return err
		}

		now := time.Now()
		deposit.Status = completedStatus
		deposit.Credits = credits
		deposit.PricingMode = &pricingMode
		deposit.VerifiedAt = &now
		deposit.VerificationError = nil
		return s.depositRepo.Update(ctx, deposit)
	})
	if err != nil {
		// a concurrent request won the race; the credit happened once
		if errors.Is(err, ErrAlreadyCredited) || isUniqueViolation(err) {
			zap.L().Info("credit already applied, treating as no-op",
				zap.String("txid", record.Txid), zap.Int("userID", deposit.UserID))
			return s.userRepo.GetCredits(ctx, deposit.UserID)
		}
		zap.L().Error("crediting failed", zap.String("txid", record.Txid), zap.Error(err))
		return 0, err
	}

	record.Credited = true
	zap.L().Info("deposit credited",
		zap.Int("userID", deposit.UserID),
		zap.String("txid", record.Txid),
		zap.Float64("credits", credits),
		zap.String("pricingMode", pricingMode))
	return newBalance, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (float64, error) {
	credits, err := s.userRepo.GetCredits(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return credits, nil
}

// CreditManual is the admin path. It shares the global txid uniqueness set
// with the deposit path, so the same real-world payment can never be credited
// through both.
func (s *Service) CreditManual(ctx context.Context, userID int, txid string, amount float64) (float64, error) {
	normalized := validate.NormalizeTxid(txid)

	used, source, err := s.verificationRepo.IsTxidUsed(ctx, normalized)
	if err != nil {
		return 0, err
	}
	if used {
		return 0, &ConflictError{Txid: normalized, Source: source}
	}

	var newBalance float64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.manualCreditRepo.Create(ctx, &domain.ManualCredit{
			UserID: userID,
			Txid:   normalized,
			Amount: amount,
		})
		if err != nil {
			return err
		}

		newBalance, err = s.userRepo.AddCredits(ctx, userID, amount)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, &ConflictError{Txid: normalized, Source: "manual"}
		}
		zap.L().Error("manual crediting failed", zap.String("txid", normalized), zap.Error(err))
		return 0, err
	}

	zap.L().Info("manual credit applied",
		zap.Int("userID", userID), zap.String("txid", normalized), zap.Float64("amount", amount))
	return newBalance, nil
}
