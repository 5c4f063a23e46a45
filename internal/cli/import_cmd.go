package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/attendance/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import an attendance log from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportLog(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s actions for %d employees across %d days.\n",
				formatter.Bold(fmt.Sprint(result.ActionCount)), result.EmployeeCount, result.DayCount)
			return nil
		},
	}
}
