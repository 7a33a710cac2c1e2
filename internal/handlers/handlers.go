package handlers

import (
	"net/http"

	_ "depositmart/docs"
	"depositmart/internal/listener"
	"depositmart/internal/service"
	"depositmart/pkg/auth"

	adminhandlers "depositmart/internal/handlers/admin"
	authhandlers "depositmart/internal/handlers/auth"
	balancehandlers "depositmart/internal/handlers/balance"
	deposithandlers "depositmart/internal/handlers/deposits"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	CreateDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	AttachTransaction(w http.ResponseWriter, r *http.Request)
	CancelDeposit(w http.ResponseWriter, r *http.Request)
	VerifyTransaction(w http.ResponseWriter, r *http.Request)
	CheckConfirmations(w http.ResponseWriter, r *http.Request)
	GetCooldownStatus(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ManualCredit(w http.ResponseWriter, r *http.Request)
	RetryVerification(w http.ResponseWriter, r *http.Request)
	StartListener(w http.ResponseWriter, r *http.Request)
	StopListener(w http.ResponseWriter, r *http.Request)
	ListenerStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	DepositHandler DepositHandler
	BalanceHandler BalanceHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services, listenerService *listener.Service) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		DepositHandler: deposithandlers.New(s.DepositService, s.VerifyService),
		BalanceHandler: balancehandlers.New(s.CreditService),
		AdminHandler:   adminhandlers.New(s.CreditService, s.VerifyService, listenerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.CreateDeposit)
				r.Get("/", h.DepositHandler.GetDeposits)
				r.Put("/{id}", h.DepositHandler.AttachTransaction)
				r.Delete("/{id}", h.DepositHandler.CancelDeposit)
				r.Post("/{id}/verify", h.DepositHandler.VerifyTransaction)
				r.Get("/{id}/confirmations", h.DepositHandler.CheckConfirmations)
			})
			r.Get("/cooldown", h.DepositHandler.GetCooldownStatus)
			r.Get("/balance", h.BalanceHandler.GetBalance)
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/credits", h.AdminHandler.ManualCredit)
		r.Post("/verifications/{id}/retry", h.AdminHandler.RetryVerification)
		r.Route("/listener", func(r chi.Router) {
			r.Post("/start", h.AdminHandler.StartListener)
			r.Delete("/stop", h.AdminHandler.StopListener)
			r.Get("/status", h.AdminHandler.ListenerStatus)
		})
	})

	return r
}
