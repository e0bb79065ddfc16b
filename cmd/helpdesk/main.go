package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/classlab/helpdesk/api"
	"github.com/classlab/helpdesk/pkg/audit"
	"github.com/classlab/helpdesk/pkg/config"
	"github.com/classlab/helpdesk/pkg/helpqueue"
	"github.com/classlab/helpdesk/pkg/httpserver"
	"github.com/classlab/helpdesk/pkg/logger"
	"github.com/classlab/helpdesk/pkg/requestid"
	"github.com/classlab/helpdesk/pkg/roster"
	"github.com/classlab/helpdesk/pkg/sheets"
)

const serviceName = "helpdesk"

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Server      httpserver.Config
	Sheets      sheets.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "helpdesk: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, serviceName),
	)
	logger.SetAsDefault(log)

	queue := helpqueue.New()

	// Audit sink: spreadsheet ledger when configured, structured log
	// otherwise. Either way events go through the async writer so request
	// handling never waits on the sink.
	var (
		sheetsClient *sheets.Client
		storage      audit.Storage
	)
	if cfg.Sheets.Enabled() {
		var err error
		sheetsClient, err = sheets.New(ctx, cfg.Sheets.CredentialsFile)
		if err != nil {
			return err
		}
		storage = audit.NewSheetsStorage(sheetsClient, cfg.Sheets.SpreadsheetID, cfg.Sheets.AuditSheet)
		log.Info("audit ledger enabled", slog.String("sheet", cfg.Sheets.AuditSheet))
	} else {
		storage = audit.NewSlogStorage(log)
		log.Info("no spreadsheet configured, auditing to log only")
	}

	writer := audit.NewAsyncWriter(storage, audit.AsyncOptions{
		ErrorHandler: func(event audit.Event, err error) {
			log.Warn("audit write failed",
				logger.Error(err),
				logger.Action(string(event.Action)),
				logger.GroupNumber(event.Group),
			)
		},
	})
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := writer.Close(closeCtx); err != nil {
			log.Warn("audit writer close timed out", logger.Error(err))
		}
	}()

	auditLog := audit.New(writer, audit.WithRequestIDExtractor(requestid.Extractor()))

	var rosterSvc api.RosterChecker
	if sheetsClient != nil && cfg.Sheets.RosterSheet != "" {
		rosterSvc = roster.New(sheetsClient, cfg.Sheets.SpreadsheetID, cfg.Sheets.RosterSheet, cfg.Sheets.RosterRange)
		log.Info("roster validation enabled", slog.String("sheet", cfg.Sheets.RosterSheet))
	}

	handler := api.Router(api.Dependencies{
		Queue:  queue,
		Audit:  auditLog,
		Roster: rosterSvc,
		Log:    log,
	})

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}
