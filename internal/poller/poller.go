package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"depositmart/internal/domain"
	"depositmart/internal/service/verifyservice"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=poller.go -destination=mock_poller.go -package=poller

type DepositRepo interface {
	FindForVerification(ctx context.Context, limit uint32) ([]domain.Deposit, error)
}

type Verifier interface {
	VerifyDeposit(ctx context.Context, userID, depositID int, txid string) (*verifyservice.Outcome, error)
}

var processingDeposits sync.Map

// Service periodically re-verifies pending deposits that carry a txid, so
// confirmations accumulate and crediting happens without the user polling.
type Service struct {
	depositRepo    DepositRepo
	verifier       Verifier
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(depositRepo DepositRepo, verifier Verifier, interval time.Duration) *Service {
	return &Service{
		depositRepo:    depositRepo,
		verifier:       verifier,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Confirmation poller started", zap.Duration("interval", s.updateInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping poller")
			return
		case <-ticker.C:
			s.processDeposits(ctx)
		}
	}
}

func (s *Service) processDeposits(ctx context.Context) {
	deposits, err := s.depositRepo.FindForVerification(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch deposits for verification", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		if _, loaded := processingDeposits.LoadOrStore(deposit.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDeposits.Delete(deposit.ID)
				return s.handleDeposit(ctx, deposit)
			})
			if err != nil {
				processingDeposits.Delete(deposit.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing deposits", zap.Error(err))
	}
}

func (s *Service) handleDeposit(ctx context.Context, deposit domain.Deposit) error {
	outcome, err := s.verifier.VerifyDeposit(ctx, deposit.UserID, deposit.ID, "")
	if err != nil {
		return err
	}

	switch outcome.Status {
	case verifyservice.StatusConfirmed:
		zap.L().Info("Deposit confirmed by poller",
			zap.Int("depositID", deposit.ID),
			zap.Int("confirmations", outcome.Confirmations),
			zap.Float64("creditsAdded", outcome.CreditsAdded))
	case verifyservice.StatusPending:
		zap.L().Debug("Deposit still pending",
			zap.Int("depositID", deposit.ID),
			zap.Int("confirmations", outcome.Confirmations))
	case verifyservice.StatusTransient:
		zap.L().Warn("Transient verification error, will retry",
			zap.Int("depositID", deposit.ID),
			zap.String("reason", outcome.Reason))
	default:
		zap.L().Warn("Deposit verification rejected",
			zap.Int("depositID", deposit.ID),
			zap.String("code", outcome.Code),
			zap.String("reason", outcome.Reason))
	}
	return nil
}
