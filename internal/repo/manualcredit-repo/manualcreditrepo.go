package manualcreditrepo

import (
	"context"

	"depositmart/internal/domain"
	"depositmart/internal/pg"

	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts a manual credit row. The unique constraint on txid is the
// storage-level guard against double crediting; violations surface as
// pgconn.PgError 23505 for the caller to map.
func (r *Repository) Create(ctx context.Context, credit *domain.ManualCredit) (*domain.ManualCredit, error) {
	query := `
        INSERT INTO manual_credits (user_id, txid, amount)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, credit.UserID, credit.Txid, credit.Amount).
		Scan(&credit.ID, &credit.CreatedAt)
	if err != nil {
		zap.L().Error("can't create manual credit", zap.Error(err))
		return nil, err
	}
	return credit, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) ([]domain.ManualCredit, error) {
	query := `
        SELECT id, user_id, txid, amount, created_at
        FROM manual_credits
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get manual credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.ManualCredit
	for rows.Next() {
		var credit domain.ManualCredit
		err := rows.Scan(&credit.ID, &credit.UserID, &credit.Txid, &credit.Amount, &credit.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan manual credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, credit)
	}
	return credits, nil
}
