package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/retailbank/ledger/internal/adapter/http/controller"
	"github.com/retailbank/ledger/internal/adapter/http/middleware"
	"github.com/retailbank/ledger/internal/adapter/http/router"
	"github.com/retailbank/ledger/internal/adapter/repository/memory"
	"github.com/retailbank/ledger/internal/adapter/repository/postgres"
	"github.com/retailbank/ledger/internal/adapter/repository/repo_interfaces"
	"github.com/retailbank/ledger/internal/config"
	"github.com/retailbank/ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var ledgerRepo repo_interfaces.LedgerRepository
	if cfg.DatabaseDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
			log.Fatalf("run migrations: %v", err)
		}

		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()

		ledgerRepo = postgres.NewLedgerRepository(db, cfg.BranchCode, cfg.WithdrawalLimit, cfg.MaxWithdrawals)
		log.Println("ledger backend: postgres")
	} else {
		ledgerRepo = memory.NewLedgerRepository(cfg.BranchCode, cfg.WithdrawalLimit, cfg.MaxWithdrawals)
		log.Println("ledger backend: in-memory")
	}

	clientService := services.NewClientService(ledgerRepo)
	accountService := services.NewAccountService(ledgerRepo)
	transactionService := services.NewTransactionService(ledgerRepo)

	authMiddleware := middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey)
	mux := router.New(
		controller.NewClientController(clientService),
		controller.NewAccountController(accountService),
		controller.NewTransactionController(transactionService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
