package verificationrepo

import (
	"context"

	"depositmart/internal/domain"
	"depositmart/internal/pg"

	"github.com/google/uuid"
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

const recordColumns = `id, txid, currency, matched_address, amount_sats, amount_float,
       confirmed, confirmed_at, credited, credited_at, pricing_mode,
       first_seen, last_checked, retry_count, error_message, meta`

func scanRecord(row pgx.Row) (*domain.VerificationRecord, error) {
	var rec domain.VerificationRecord
	err := row.Scan(&rec.ID, &rec.Txid, &rec.Currency, &rec.MatchedAddress, &rec.AmountSats, &rec.AmountFloat,
		&rec.Confirmed, &rec.ConfirmedAt, &rec.Credited, &rec.CreditedAt, &rec.PricingMode,
		&rec.FirstSeen, &rec.LastChecked, &rec.RetryCount, &rec.ErrorMessage, &rec.Meta)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) FindByTxid(ctx context.Context, txid, currency string) (*domain.VerificationRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM verification_records
        WHERE txid = $1 AND currency = $2
    `
	rec, err := scanRecord(r.db.QueryRow(ctx, query, txid, currency))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find verification record", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.VerificationRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM verification_records
        WHERE id = $1
    `
	rec, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find verification record by id", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// Upsert inserts or refreshes the record identified by (txid, currency).
// confirmed only ever flips false->true and confirmed_at keeps its first
// value; retry_count grows by one on every re-check.
func (r *Repository) Upsert(ctx context.Context, rec *domain.VerificationRecord) (*domain.VerificationRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query := `
        INSERT INTO verification_records
            (id, txid, currency, matched_address, amount_sats, amount_float,
             confirmed, confirmed_at, error_message, meta)
        VALUES
            ($1, $2, $3, $4, $5, $6,
             $7, CASE WHEN $7 THEN now() END, $8, $9)
        ON CONFLICT (txid, currency) DO UPDATE SET
            matched_address = EXCLUDED.matched_address,
            amount_sats     = EXCLUDED.amount_sats,
            amount_float    = EXCLUDED.amount_float,
            confirmed       = verification_records.confirmed OR EXCLUDED.confirmed,
            confirmed_at    = COALESCE(verification_records.confirmed_at, EXCLUDED.confirmed_at),
            error_message   = EXCLUDED.error_message,
            meta            = COALESCE(EXCLUDED.meta, verification_records.meta),
            last_checked    = now(),
            retry_count     = verification_records.retry_count + 1
        RETURNING ` + recordColumns + `
    `
	var saved *domain.VerificationRecord
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, rec.ID, rec.Txid, rec.Currency, rec.MatchedAddress,
			rec.AmountSats, rec.AmountFloat, rec.Confirmed, rec.ErrorMessage, rec.Meta)
		var scanErr error
		saved, scanErr = scanRecord(row)
		if scanErr != nil {
			zap.L().Error("can't upsert verification record", zap.Error(scanErr))
			return scanErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// RecordError upserts only the audit-trail fields for a failed check:
// error_message, last_checked, retry_count. confirmed, credited and any
// previously observed amounts are left untouched.
func (r *Repository) RecordError(ctx context.Context, txid, currency, message string) (*domain.VerificationRecord, error) {
	query := `
        INSERT INTO verification_records (id, txid, currency, error_message)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (txid, currency) DO UPDATE SET
            error_message = EXCLUDED.error_message,
            last_checked  = now(),
            retry_count   = verification_records.retry_count + 1
        RETURNING ` + recordColumns + `
	`
	rec, err := scanRecord(r.db.QueryRow(ctx, query, uuid.NewString(), txid, currency, message))
	if err != nil {
		zap.L().Error("can't record verification error", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// MarkCredited flips credited false->true. Returns false when the record was
// already credited, which callers treat as the idempotent no-op signal.
func (r *Repository) MarkCredited(ctx context.Context, id string, pricingMode string) (bool, error) {
	query := `
        UPDATE verification_records
        SET credited = true, credited_at = now(), pricing_mode = $2
        WHERE id = $1 AND credited = false
    `
	tag, err := r.db.Exec(ctx, query, id, pricingMode)
	if err != nil {
		zap.L().Error("can't mark verification record credited", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// IsTxidUsed probes every crediting path for a normalized txid: completed
// deposits, credited verification records and manual admin credits.
func (r *Repository) IsTxidUsed(ctx context.Context, txid string) (bool, string, error) {
	query := `
        SELECT 'deposit' AS source FROM deposits WHERE transaction_id = $1 AND status = 'completed'
        UNION ALL
        SELECT 'verification' FROM verification_records WHERE txid = $1 AND credited = true
        UNION ALL
        SELECT 'manual' FROM manual_credits WHERE txid = $1
        LIMIT 1
    `
	var source string
	err := r.db.QueryRow(ctx, query, txid).Scan(&source)
	if err == pgx.ErrNoRows {
		return false, "", nil
	}
	if err != nil {
		zap.L().Error("can't check txid usage", zap.Error(err))
		return false, "", err
	}
	return true, source, nil
}
