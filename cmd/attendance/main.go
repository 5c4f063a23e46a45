package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/attendance/internal/cli"
	"github.com/alexanderramin/attendance/internal/config"
	"github.com/alexanderramin/attendance/internal/db"
	"github.com/alexanderramin/attendance/internal/repository"
	"github.com/alexanderramin/attendance/internal/service"
	"github.com/alexanderramin/attendance/internal/timesheet"
	"github.com/mattn/go-isatty"
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
		return err
	}

	normalizer, err := timesheet.NewNormalizer(cfg.SourceZone)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	actionRepo := repository.NewSQLiteActionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Summary: service.NewSummaryService(actionRepo, observer),
		History: service.NewHistoryService(actionRepo, normalizer, observer),
		Import:  service.NewImportService(uow, observer),
		Record:  service.NewRecordService(uow, observer),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
