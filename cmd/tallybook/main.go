package main

import (
	"log/slog"
	"os"

	"github.com/tallybook/tallybook/internal/app"
	"github.com/tallybook/tallybook/internal/cli"
	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/masterdata"
	"github.com/tallybook/tallybook/internal/report"
	"github.com/tallybook/tallybook/internal/store"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	st, err := store.Open(cfg.DataPath)
	if err != nil {
		logger.Error("open store", slog.Any("error", err), slog.String("path", cfg.DataPath))
		os.Exit(1)
	}

	root := cli.NewRootCommand(&cli.App{
		Store:     st,
		Master:    masterdata.NewService(st),
		Ledger:    ledger.NewService(st),
		Report:    report.NewService(st),
		Logger:    logger,
		BackupDir: cfg.BackupDir,
	})
	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
