package service

import (
	"depositmart/internal/ledger"
	"depositmart/internal/pg"
	"depositmart/internal/repo"
	"depositmart/internal/service/authservice"
	"depositmart/internal/service/creditservice"
	"depositmart/internal/service/depositservice"
	"depositmart/internal/service/verifyservice"

	pkgauth "depositmart/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	DepositService *depositservice.Service
	CreditService  *creditservice.Service
	VerifyService  *verifyservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, ledgers *ledger.Registry, prices *ledger.PriceClient) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	depositService := depositservice.New(repo.DepositRepo, repo.UserRepo, repo.WalletRepo)
	creditService := creditservice.New(repo.UserRepo, repo.DepositRepo, repo.VerificationRepo,
		repo.ManualCreditRepo, txManager)
	verifyService := verifyservice.New(repo.VerificationRepo, repo.DepositRepo, repo.WalletRepo,
		ledgers, prices, creditService)

	return &Services{
		AuthService:    authService,
		DepositService: depositService,
		CreditService:  creditService,
		VerifyService:  verifyService,
	}
}
