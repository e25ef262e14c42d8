// Package app wires configuration, infrastructure and services into the
// processes of the account service: the HTTP server, the token sweeper and
// the mail worker.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/account-service/internal/adapter/postgres"
	"github.com/heartmarshall/account-service/internal/adapter/postgres/activity"
	"github.com/heartmarshall/account-service/internal/adapter/postgres/transaction"
	"github.com/heartmarshall/account-service/internal/adapter/postgres/user"
	"github.com/heartmarshall/account-service/internal/adapter/postgres/wallet"
	"github.com/heartmarshall/account-service/internal/adapter/rabbitmq"
	"github.com/heartmarshall/account-service/internal/auth"
	"github.com/heartmarshall/account-service/internal/config"
	"github.com/heartmarshall/account-service/internal/mailer"
	"github.com/heartmarshall/account-service/internal/mwp"
	"github.com/heartmarshall/account-service/internal/saga"
	"github.com/heartmarshall/account-service/internal/service/ledger"
	"github.com/heartmarshall/account-service/internal/service/profile"
	"github.com/heartmarshall/account-service/internal/transport/middleware"
	"github.com/heartmarshall/account-service/internal/transport/pipeline"
	"github.com/heartmarshall/account-service/internal/transport/rest"
)

const appName = "account-service"

// bootstrap loads the configuration and builds the logger.
func bootstrap(process string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := NewLogger(cfg.Log).With("process", process)
	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)
	return cfg, logger, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// the server down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, logger, err := bootstrap("server")
	if err != nil {
		return err
	}

	shutdownTracing, err := SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown failed", slog.String("error", err.Error()))
		}
	}()

	// Step 1: Infrastructure
	infra, err := openInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer infra.Close()

	amqpConn, err := rabbitmq.Dial(cfg.Mail.AMQPURL)
	if err != nil {
		return err
	}
	defer amqpConn.Close()

	producer, err := rabbitmq.NewProducer(amqpConn, cfg.Mail.Exchange, logger)
	if err != nil {
		return err
	}
	defer producer.Close()

	// Step 2: Repositories and collaborators
	txm := postgres.NewTxManager(infra.pool)
	users := user.New(infra.pool, cfg.Timeouts.Database)
	wallets := wallet.New(infra.pool, cfg.Timeouts.Database)
	transactions := transaction.New(infra.pool, cfg.Timeouts.Database)
	activities := activity.New(infra.pool, cfg.Timeouts.Database)

	dispatcher := mailer.NewDispatcher(producer, cfg.Mail.PublishTimeout, logger)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	runner := saga.NewRunner(logger, cfg.Timeouts.Compensation)

	signer, err := mwp.NewSigner(cfg.MWP.Secret, cfg.MWP.Algorithm)
	if err != nil {
		return err
	}

	// Step 3: Services
	profileSvc := profile.NewService(logger, users, infra.tokens, dispatcher, hasher, jwtManager, runner)
	ledgerSvc := ledger.NewService(logger, wallets, transactions, activities, txm)

	// Step 4: Transport
	validator := pipeline.NewValidator()
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
		Tokens:    jwtManager,
		Health:    rest.NewHealthHandler(BuildVersion(), infra.checks()...),
		Auth:      rest.NewAuthHandler(profileSvc, validator, logger),
		Me:        rest.NewMeHandler(profileSvc, ledgerSvc, validator, logger),
		Ledger:    rest.NewLedgerHandler(ledgerSvc, signer, validator, logger),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	// Step 5: Serve until cancelled
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
