package service

import (
	"testing"

	"depositmart/internal/ledger"
	"depositmart/internal/pg"
	"depositmart/internal/repo"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)
	ledgers := ledger.NewRegistry()
	prices := ledger.NewPriceClient("https://prices.example/v3", nil)

	services := New(repos, txManager, ledgers, prices)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.DepositService)
	assert.NotNil(t, services.CreditService)
	assert.NotNil(t, services.VerifyService)
}
