package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/brunocoutinho/prazo/internal/cli"
	"github.com/brunocoutinho/prazo/internal/config"
	"github.com/brunocoutinho/prazo/internal/db"
	"github.com/brunocoutinho/prazo/internal/repository"
	"github.com/brunocoutinho/prazo/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Strip ANSI styling when colors are off or stdout is not a terminal.
	if !cfg.UI.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)
	configRepo := repository.NewSQLiteWorkConfigRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	configSvc := service.NewConfigService(configRepo)

	app := &cli.App{
		Tasks:     service.NewTaskService(taskRepo, configSvc, uow),
		Clients:   service.NewClientService(clientRepo),
		Config:    configSvc,
		Dashboard: service.NewDashboardService(taskRepo, configSvc),
	}

	return cli.NewRootCmd(app).Execute()
}
