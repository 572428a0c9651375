package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/rmaldonado/sapo/internal/cli"
	"github.com/rmaldonado/sapo/internal/config"
	"github.com/rmaldonado/sapo/internal/db"
	"github.com/rmaldonado/sapo/internal/httpapi"
	"github.com/rmaldonado/sapo/internal/message"
	"github.com/rmaldonado/sapo/internal/repository"
	"github.com/rmaldonado/sapo/internal/scanner"
	"github.com/rmaldonado/sapo/internal/service"
	"github.com/rmaldonado/sapo/internal/whatsapp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	habitRepo := repository.NewSQLiteHabitRepo(database)
	logRepo := repository.NewSQLiteLogRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Outbound transport: real Graph API client when credentials exist,
	// placeholder logging otherwise.
	var sender whatsapp.Sender
	if cfg.DeliveryConfigured() {
		sender = whatsapp.NewClient(cfg.WhatsApp)
	} else {
		logger.Info("meta credentials missing, outbound messages go to the log")
		sender = &whatsapp.PlaceholderSender{Logger: logger}
	}

	selector := message.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))

	// Wire services
	statsSvc := service.NewStatsService(userRepo, habitRepo, logRepo, nil)
	inboundSvc := service.NewInboundService(
		uow,
		statsSvc,
		selector,
		service.NewLogUseCaseObserver(os.Stderr),
		nil,
	)
	onboardingSvc := service.NewOnboardingService(userRepo, habitRepo)

	app := &cli.App{
		Inbound:    inboundSvc,
		Onboarding: onboardingSvc,
		Stats:      statsSvc,
		Config:     cfg,
	}

	// Detect interactive terminal for form-based commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Serve = func(ctx context.Context) error {
		server := httpapi.NewServer(inboundSvc, onboardingSvc, statsSvc, sender, cfg.VerifyToken, logger)
		scan := scanner.New(habitRepo, statsSvc, selector, sender, logger,
			scanner.WithInterval(time.Duration(cfg.ScanIntervalMs)*time.Millisecond))

		go scan.Run(ctx)

		httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: server.Handler()}
		errCh := make(chan error, 1)
		go func() {
			logger.Info("http server listening", "addr", cfg.HTTPAddr)
			errCh <- httpServer.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
