package cli

import (
	"github.com/alexanderramin/attendance/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Summary service.SummaryService
	History service.HistoryService
	Import  service.ImportService
	Record  service.RecordService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "attendance" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "attendance",
		Short:         "Employee attendance summaries and history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSummaryCmd(app),
		newHistoryCmd(app),
		newImportCmd(app),
		newRecordCmd(app),
	)

	return root
}
