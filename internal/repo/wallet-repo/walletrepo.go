package walletrepo

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

// FindActiveByCurrency returns registry order; verification matches outputs
// against addresses in this order and the first match wins.
func (r *Repository) FindActiveByCurrency(ctx context.Context, currency string) ([]domain.WalletAddress, error) {
	query := `
        SELECT id, currency, address, active
        FROM wallet_addresses
        WHERE currency = $1 AND active = true
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, currency)
	if err != nil {
		zap.L().Error("can't get wallet addresses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.WalletAddress
	for rows.Next() {
		var addr domain.WalletAddress
		if err := rows.Scan(&addr.ID, &addr.Currency, &addr.Address, &addr.Active); err != nil {
			zap.L().Error("can't scan wallet address row", zap.Error(err))
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

func (r *Repository) FindAllActive(ctx context.Context) ([]domain.WalletAddress, error) {
	query := `
        SELECT id, currency, address, active
        FROM wallet_addresses
        WHERE active = true
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active wallet addresses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.WalletAddress
	for rows.Next() {
		var addr domain.WalletAddress
		if err := rows.Scan(&addr.ID, &addr.Currency, &addr.Address, &addr.Active); err != nil {
			zap.L().Error("can't scan wallet address row", zap.Error(err))
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}
