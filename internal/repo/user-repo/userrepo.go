package userrepo

import (
	"context"
	"time"

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, credits, last_cancelled_deposit_at
        FROM users
        WHERE login = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Credits, &user.LastCancelledDepositAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, credits, last_cancelled_deposit_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Credits, &user.LastCancelledDepositAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// AddCredits atomically adds to the user's balance and returns the new value.
func (repo *Repository) AddCredits(ctx context.Context, userID int, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET credits = credits + $1
		WHERE id = $2
		RETURNING credits
	`
	var newBalance float64
	err := repo.txManager.Begin(ctx, func(ctx context.Context) error {
		return repo.db.QueryRow(ctx, query, amount, userID).Scan(&newBalance)
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, pgx.ErrNoRows
		}
		zap.L().Error("can't add credits", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

func (repo *Repository) GetCredits(ctx context.Context, userID int) (float64, error) {
	var credits float64
	err := repo.db.QueryRow(ctx, `SELECT credits FROM users WHERE id = $1`, userID).Scan(&credits)
	if err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("can't get credits", zap.Error(err))
		}
		return 0, err
	}
	return credits, nil
}

func (repo *Repository) SetLastCancelledDeposit(ctx context.Context, userID int, at time.Time) error {
	query := `
		UPDATE users
		SET last_cancelled_deposit_at = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, at, userID)
	if err != nil {
		zap.L().Error("can't set last cancelled deposit time", zap.Error(err))
		return err
	}
	return nil
}
