package verificationrepo

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

const testTxid = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"

var recordColumnList = []string{
	"id", "txid", "currency", "matched_address", "amount_sats", "amount_float",
	"confirmed", "confirmed_at", "credited", "credited_at", "pricing_mode",
	"first_seen", "last_checked", "retry_count", "error_message", "meta",
}

func recordRow(id string, confirmed bool, retryCount int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(recordColumnList).
		AddRow(id, testTxid, domain.CurrencyBTC, "bc1qexample", int64(1500000), 0.015,
			confirmed, (*time.Time)(nil), false, (*time.Time)(nil), (*string)(nil),
			now, now, retryCount, (*string)(nil), []byte(nil))
}

func TestRepository_FindByTxid(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Record found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE txid = $1 AND currency = $2")).
					WithArgs(testTxid, domain.CurrencyBTC).
					WillReturnRows(recordRow("rec-1", true, 0))
			},
			found: true,
		},
		{
			name: "Record not found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE txid = $1 AND currency = $2")).
					WithArgs(testTxid, domain.CurrencyBTC).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE txid = $1 AND currency = $2")).
					WithArgs(testTxid, domain.CurrencyBTC).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rec, err := repo.FindByTxid(context.Background(), testTxid, domain.CurrencyBTC)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, rec)
				assert.Equal(t, "rec-1", rec.ID)
				assert.Equal(t, testTxid, rec.Txid)
			} else {
				assert.Nil(t, rec)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Record found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs("rec-1").
			WillReturnRows(recordRow("rec-1", false, 2))

		rec, err := repo.FindByID(context.Background(), "rec-1")
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, 2, rec.RetryCount)
	})

	t.Run("Record not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		rec, err := repo.FindByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, rec)
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Generates an id for new records", func(t *testing.T) {
		rec := &domain.VerificationRecord{
			Txid:           testTxid,
			Currency:       domain.CurrencyBTC,
			MatchedAddress: "bc1qexample",
			AmountSats:     1500000,
			AmountFloat:    0.015,
			Confirmed:      true,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO verification_records")).
			WithArgs(pgxmock.AnyArg(), testTxid, domain.CurrencyBTC, "bc1qexample",
				int64(1500000), 0.015, true, (*string)(nil), []byte(nil)).
			WillReturnRows(recordRow("rec-1", true, 0))

		saved, err := repo.Upsert(context.Background(), rec)
		assert.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, "rec-1", saved.ID)
		assert.True(t, saved.Confirmed)
	})

	t.Run("Keeps an existing id", func(t *testing.T) {
		rec := &domain.VerificationRecord{
			ID:             "rec-1",
			Txid:           testTxid,
			Currency:       domain.CurrencyBTC,
			MatchedAddress: "bc1qexample",
			AmountSats:     1500000,
			AmountFloat:    0.015,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO verification_records")).
			WithArgs("rec-1", testTxid, domain.CurrencyBTC, "bc1qexample",
				int64(1500000), 0.015, false, (*string)(nil), []byte(nil)).
			WillReturnRows(recordRow("rec-1", true, 3))

		saved, err := repo.Upsert(context.Background(), rec)
		assert.NoError(t, err)
		assert.Equal(t, 3, saved.RetryCount)
	})

	t.Run("Database error", func(t *testing.T) {
		rec := &domain.VerificationRecord{ID: "rec-1", Txid: testTxid, Currency: domain.CurrencyBTC}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO verification_records")).
			WithArgs("rec-1", testTxid, domain.CurrencyBTC, "",
				int64(0), 0.0, false, (*string)(nil), []byte(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Upsert(context.Background(), rec)
		assert.Error(t, err)
	})
}

func TestRepository_RecordError(t *testing.T) {
	repo, mock := NewMock(t)

	message := "explorer unavailable"
	rows := pgxmock.NewRows(recordColumnList).
		AddRow("rec-1", testTxid, domain.CurrencyBTC, "", int64(0), 0.0,
			false, (*time.Time)(nil), false, (*time.Time)(nil), (*string)(nil),
			time.Now(), time.Now(), 1, &message, []byte(nil))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO verification_records (id, txid, currency, error_message)")).
		WithArgs(pgxmock.AnyArg(), testTxid, domain.CurrencyBTC, message).
		WillReturnRows(rows)

	rec, err := repo.RecordError(context.Background(), testTxid, domain.CurrencyBTC, message)
	assert.NoError(t, err)
	assert.Equal(t, 1, rec.RetryCount)
	assert.Equal(t, message, *rec.ErrorMessage)
	assert.False(t, rec.Confirmed)
}

func TestRepository_MarkCredited(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "First crediting attempt wins",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET credited = true")).
					WithArgs("rec-1", domain.PricingHistorical).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected: true,
		},
		{
			name: "Already credited, no row updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET credited = true")).
					WithArgs("rec-1", domain.PricingHistorical).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET credited = true")).
					WithArgs("rec-1", domain.PricingHistorical).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.MarkCredited(context.Background(), "rec-1", domain.PricingHistorical)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, won)
		})
	}
}

func TestRepository_IsTxidUsed(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		used      bool
		source    string
		expectErr bool
	}{
		{
			name: "Consumed by a completed deposit",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
					WithArgs(testTxid).
					WillReturnRows(pgxmock.NewRows([]string{"source"}).AddRow("deposit"))
			},
			used:   true,
			source: "deposit",
		},
		{
			name: "Consumed by a manual credit",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
					WithArgs(testTxid).
					WillReturnRows(pgxmock.NewRows([]string{"source"}).AddRow("manual"))
			},
			used:   true,
			source: "manual",
		},
		{
			name: "Unused txid",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
					WithArgs(testTxid).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UNION ALL")).
					WithArgs(testTxid).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			used, source, err := repo.IsTxidUsed(context.Background(), testTxid)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.used, used)
			assert.Equal(t, tt.source, source)
		})
	}
}
