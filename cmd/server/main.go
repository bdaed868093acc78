package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/aaron-lee-hebert/seller-metrics/ent"
	"github.com/aaron-lee-hebert/seller-metrics/internal/config"
	"github.com/aaron-lee-hebert/seller-metrics/internal/handler"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/crypto"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/invoicing"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/logger"
	"github.com/aaron-lee-hebert/seller-metrics/internal/pkg/marketplace"
	"github.com/aaron-lee-hebert/seller-metrics/internal/repository"
	"github.com/aaron-lee-hebert/seller-metrics/internal/server"
	"github.com/aaron-lee-hebert/seller-metrics/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "seller-metrics:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = log.Sync() }()

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	if err := entClient.Schema.Create(context.Background()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	cipher, err := crypto.NewAESGCMCipher(cfg.Cipher.KeyHex)
	if err != nil {
		return fmt.Errorf("init token cipher: %w", err)
	}

	mkt := cfg.Providers.Marketplace
	marketplaceClient := marketplace.NewClient(mkt.BaseURL, mkt.AuthBaseURL, mkt.ClientID, mkt.ClientSecret, mkt.RedirectURI, mkt.Timeout)
	invoicingClient := invoicing.NewClient(cfg.Providers.Invoicing.BaseURL, cfg.Providers.Invoicing.Timeout)

	credRepo := repository.NewCredentialRepository(entClient, db)
	recordRepo := repository.NewExternalRecordRepository(entClient)
	inventoryRepo := repository.NewInventoryRepository(entClient)

	lifecycle := service.NewCredentialService(cipher, log)
	reconciler := service.NewReconcileService(recordRepo, inventoryRepo, log)
	syncService := service.NewSyncService(credRepo, lifecycle, reconciler, marketplaceClient, invoicingClient, cipher, log, cfg.Sync.WindowDays)
	recordsService := service.NewRecordsService(recordRepo, log)

	var scheduler *service.SyncScheduler
	if cfg.Sync.SchedulerEnabled {
		scheduler = service.NewSyncScheduler(credRepo, syncService, log, cfg.Sync.SchedulerSchedule)
		if err := scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	syncHandler := handler.NewSyncHandler(syncService, recordsService, log)
	engine := server.NewRouter(cfg, log, syncHandler)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
