package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"depositmart/internal/config"
	"depositmart/internal/domain"
	"depositmart/internal/handlers"
	"depositmart/internal/ledger"
	"depositmart/internal/listener"
	"depositmart/internal/pg"
	"depositmart/internal/poller"
	"depositmart/internal/repo"
	"depositmart/internal/service"
	"depositmart/pkg/auth"
	"depositmart/pkg/clients"
	"depositmart/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	poller   *poller.Service
	listener *listener.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	auth.SetSecret(cfg.JWTSecret)

	conn := pg.New(pool)
	httpClient := clients.NewHTTPClient()

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, buildLedgers(cfg, httpClient),
		ledger.NewPriceClient(cfg.PriceAPIURL, httpClient))
	a.listener = listener.New(cfg.PushFeedURL, a.repo.WalletRepo, a.repo.VerificationRepo,
		buildLedgers(cfg, httpClient), nil)
	a.api = handlers.New(a.srv, a.listener)
	a.poller = poller.New(a.repo.DepositRepo, a.srv.VerifyService, cfg.PollInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startPoller(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// buildLedgers registers an explorer per currency whose base URL is set.
// Unconfigured currencies stay unsupported and verification reports them so.
func buildLedgers(cfg *config.Config, httpClient clients.HTTPClientI) *ledger.Registry {
	var explorers []ledger.Client
	if cfg.BTCExplorerURL != "" {
		explorers = append(explorers, ledger.NewExplorerClient(domain.CurrencyBTC, cfg.BTCExplorerURL, httpClient))
	}
	if cfg.DOGEExplorerURL != "" {
		explorers = append(explorers, ledger.NewExplorerClient(domain.CurrencyDOGE, cfg.DOGEExplorerURL, httpClient))
	}
	return ledger.NewRegistry(explorers...)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startPoller(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.poller.Start(ctx)
		<-ctx.Done()
		a.listener.Stop()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
