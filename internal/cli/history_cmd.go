package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/attendance/internal/cli/formatter"
	"github.com/alexanderramin/attendance/internal/contract"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history <employee>",
		Short: "List every recorded action of an employee in UTC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee := args[0]

			history, err := app.History.GetAttendanceHistory(context.Background(), employee)
			if err != nil {
				return err
			}

			resp := contract.NewHistoryResponse(history)
			if asJSON {
				return writeJSON(cmd, resp)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(employee, resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the history as JSON")

	return cmd
}
