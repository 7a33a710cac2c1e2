package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"depositmart/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

type stubTxManager struct{}

func (stubTxManager) Begin(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, stubTxManager{})
	defer mockDB.Close()

	return repo, mockDB
}

var depositColumnList = []string{
	"id", "user_id", "currency", "wallet_address", "status", "transaction_id",
	"confirmations", "credits", "pricing_mode", "verified_at", "verification_error", "notes",
	"created_at", "updated_at",
}

func depositRow(id int, status string, txid *string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(depositColumnList).
		AddRow(id, 1, domain.CurrencyBTC, "bc1qexample", status, txid,
			0, 0.0, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil),
			now, now)
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deposit saved with generated id and timestamps",
			mockSetup: func() {
				now := time.Now()
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits (user_id, currency, wallet_address, status)")).
					WithArgs(1, domain.CurrencyBTC, "bc1qexample", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deposits (user_id, currency, wallet_address, status)")).
					WithArgs(1, domain.CurrencyBTC, "bc1qexample", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit := &domain.Deposit{
				UserID:        1,
				Currency:      domain.CurrencyBTC,
				WalletAddress: "bc1qexample",
				Status:        "pending",
			}
			err := repo.Save(context.Background(), deposit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, deposit.ID)
				assert.False(t, deposit.CreatedAt.IsZero())
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Deposit found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
					WithArgs(7).
					WillReturnRows(depositRow(7, "pending", nil))
			},
			found: true,
		},
		{
			name: "Deposit not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
					WithArgs(7).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM deposits")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposit, err := repo.FindByID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, deposit)
				assert.Equal(t, 7, deposit.ID)
			} else {
				assert.Nil(t, deposit)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Deposits ordered newest first", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows(depositColumnList).
			AddRow(8, 1, domain.CurrencyDOGE, "DExample", "pending", (*string)(nil),
				0, 0.0, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), now, now).
			AddRow(7, 1, domain.CurrencyBTC, "bc1qexample", "completed", (*string)(nil),
				2, 1200.0, (*string)(nil), (*time.Time)(nil), (*string)(nil), (*string)(nil), now.Add(-time.Hour), now)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(1).
			WillReturnRows(rows)

		deposits, err := repo.FindByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, deposits, 2)
		assert.Equal(t, 8, deposits[0].ID)
		assert.Equal(t, 7, deposits[1].ID)
	})

	t.Run("No deposits", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(depositColumnList))

		deposits, err := repo.FindByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Empty(t, deposits)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByUserID(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestRepository_FindByTransactionID(t *testing.T) {
	repo, mock := NewMock(t)

	txid := "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

	t.Run("Most recent deposit returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE transaction_id = $1")).
			WithArgs(txid).
			WillReturnRows(depositRow(7, "pending", &txid))

		deposit, err := repo.FindByTransactionID(context.Background(), txid)
		assert.NoError(t, err)
		assert.NotNil(t, deposit)
		assert.Equal(t, txid, *deposit.TransactionID)
	})

	t.Run("No deposit references the txid", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE transaction_id = $1")).
			WithArgs(txid).
			WillReturnError(pgx.ErrNoRows)

		deposit, err := repo.FindByTransactionID(context.Background(), txid)
		assert.NoError(t, err)
		assert.Nil(t, deposit)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	txid := "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	verifiedAt := time.Now()
	pricing := domain.PricingHistorical
	deposit := &domain.Deposit{
		ID:            7,
		Status:        "completed",
		TransactionID: &txid,
		Confirmations: 2,
		Credits:       1200.0,
		PricingMode:   &pricing,
		VerifiedAt:    &verifiedAt,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Deposit updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE deposits")).
					WithArgs("completed", &txid, 2, 1200.0, &pricing, &verifiedAt, (*string)(nil), (*string)(nil), 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE deposits")).
					WithArgs("completed", &txid, 2, 1200.0, &pricing, &verifiedAt, (*string)(nil), (*string)(nil), 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), deposit)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindForVerification(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Pending deposits with a txid, oldest first", func(t *testing.T) {
		txid := "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND transaction_id IS NOT NULL")).
			WithArgs(50).
			WillReturnRows(depositRow(7, "pending", &txid))

		deposits, err := repo.FindForVerification(context.Background(), 50)
		assert.NoError(t, err)
		assert.Len(t, deposits, 1)
		assert.Equal(t, 7, deposits[0].ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND transaction_id IS NOT NULL")).
			WithArgs(50).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindForVerification(context.Background(), 50)
		assert.Error(t, err)
	})
}
