package depositrepo

import (
	"context"

	"depositmart/internal/domain"
	"depositmart/internal/pg"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const depositColumns = `id, user_id, currency, wallet_address, status, transaction_id,
       confirmations, credits, pricing_mode, verified_at, verification_error, notes,
       created_at, updated_at`

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	err := row.Scan(&d.ID, &d.UserID, &d.Currency, &d.WalletAddress, &d.Status, &d.TransactionID,
		&d.Confirmations, &d.Credits, &d.PricingMode, &d.VerifiedAt, &d.VerificationError, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Save(ctx context.Context, deposit *domain.Deposit) error {
	query := `
        INSERT INTO deposits (user_id, currency, wallet_address, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, deposit.UserID, deposit.Currency, deposit.WalletAddress, deposit.Status)
		if err := row.Scan(&deposit.ID, &deposit.CreatedAt, &deposit.UpdatedAt); err != nil {
			zap.L().Error("can't save deposit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE id = $1
    `
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}

// FindByTransactionID returns the most recent deposit referencing a txid.
func (r *Repository) FindByTransactionID(ctx context.Context, txid string) (*domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE transaction_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `
	deposit, err := scanDeposit(r.db.QueryRow(ctx, query, txid))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit by txid", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) Update(ctx context.Context, deposit *domain.Deposit) error {
	query := `
        UPDATE deposits
        SET status = $1, transaction_id = $2, confirmations = $3, credits = $4,
            pricing_mode = $5, verified_at = $6, verification_error = $7, notes = $8,
            updated_at = now()
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, deposit.Status, deposit.TransactionID, deposit.Confirmations,
			deposit.Credits, deposit.PricingMode, deposit.VerifiedAt, deposit.VerificationError,
			deposit.Notes, deposit.ID)
		if err != nil {
			zap.L().Error("failed to update deposit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindForVerification returns pending deposits that already carry a txid,
// oldest first, for the background confirmation sweep.
func (r *Repository) FindForVerification(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	query := `
        SELECT ` + depositColumns + `
        FROM deposits
        WHERE status = 'pending' AND transaction_id IS NOT NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get deposits for verification", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row for verification", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, *deposit)
	}
	return deposits, nil
}
