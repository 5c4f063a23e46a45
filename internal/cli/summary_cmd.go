package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attendance/internal/cli/formatter"
	"github.com/alexanderramin/attendance/internal/contract"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <employee> <day>",
		Short: "Show whether an employee attended on a day and for how long",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee, day := args[0], args[1]
			if _, err := time.Parse(domain.DayLayout, day); err != nil {
				return fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", day)
			}

			summary, err := app.Summary.GetDailySummary(context.Background(), employee, day)
			if err != nil {
				return err
			}

			resp := contract.NewDailySummaryResponse(summary)
			if asJSON {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDailySummary(employee, day, resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := contract.MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
