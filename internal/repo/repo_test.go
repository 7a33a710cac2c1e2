package repo

import (
	"testing"

	"depositmart/internal/pg"
	depositrepo "depositmart/internal/repo/deposit-repo"
	manualcreditrepo "depositmart/internal/repo/manualcredit-repo"
	userrepo "depositmart/internal/repo/user-repo"
	verificationrepo "depositmart/internal/repo/verification-repo"
	walletrepo "depositmart/internal/repo/wallet-repo"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.DepositRepo)
	assert.NotNil(t, repo.VerificationRepo)
	assert.NotNil(t, repo.ManualCreditRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &depositrepo.Repository{}, repo.DepositRepo)
	assert.IsType(t, &verificationrepo.Repository{}, repo.VerificationRepo)
	assert.IsType(t, &manualcreditrepo.Repository{}, repo.ManualCreditRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
