package manualcreditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"depositmart/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const testTxid = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		checkErr  func(t *testing.T, err error)
	}{
		{
			name: "Manual credit inserted",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO manual_credits (user_id, txid, amount)")).
					WithArgs(1, testTxid, 100.0).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, time.Now()))
			},
		},
		{
			name: "Duplicate txid hits the unique index",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO manual_credits (user_id, txid, amount)")).
					WithArgs(1, testTxid, 100.0).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			checkErr: func(t *testing.T, err error) {
				var pgErr *pgconn.PgError
				assert.ErrorAs(t, err, &pgErr)
				assert.Equal(t, "23505", pgErr.Code)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO manual_credits (user_id, txid, amount)")).
					WithArgs(1, testTxid, 100.0).
					WillReturnError(errors.New("database error"))
			},
			checkErr: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			credit, err := repo.Create(context.Background(), &domain.ManualCredit{
				UserID: 1,
				Txid:   testTxid,
				Amount: 100.0,
			})
			if tt.checkErr != nil {
				tt.checkErr(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, credit.ID)
			assert.False(t, credit.CreatedAt.IsZero())
		})
	}
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Credits ordered newest first", func(t *testing.T) {
		now := time.Now()
		rows := pgxmock.NewRows([]string{"id", "user_id", "txid", "amount", "created_at"}).
			AddRow(6, 1, testTxid, 100.0, now).
			AddRow(5, 1, "aa"+testTxid[2:], 50.0, now.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("FROM manual_credits")).
			WithArgs(1).
			WillReturnRows(rows)

		credits, err := repo.GetByUserID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, credits, 2)
		assert.Equal(t, 6, credits[0].ID)
		assert.InDelta(t, 50.0, credits[1].Amount, 1e-9)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM manual_credits")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.GetByUserID(context.Background(), 1)
		assert.Error(t, err)
	})
}
