package repo

import (
	"depositmart/internal/pg"
	depositrepo "depositmart/internal/repo/deposit-repo"
	manualcreditrepo "depositmart/internal/repo/manualcredit-repo"
	userrepo "depositmart/internal/repo/user-repo"
	verificationrepo "depositmart/internal/repo/verification-repo"
	walletrepo "depositmart/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	WalletRepo       *walletrepo.Repository
	DepositRepo      *depositrepo.Repository
	VerificationRepo *verificationrepo.Repository
	ManualCreditRepo *manualcreditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn, txManager),
		WalletRepo:       walletrepo.New(conn),
		DepositRepo:      depositrepo.New(conn, txManager),
		VerificationRepo: verificationrepo.New(conn, txManager),
		ManualCreditRepo: manualcreditrepo.New(conn),
	}
}
