package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/attendance/internal/cli/formatter"
	"github.com/alexanderramin/attendance/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// kindFlag is a pflag.Value accepting CheckIn or CheckOut.
type kindFlag struct {
	kind domain.ActionKind
}

var _ pflag.Value = (*kindFlag)(nil)

func (f *kindFlag) String() string { return string(f.kind) }

func (f *kindFlag) Set(s string) error {
	kind, err := domain.ParseActionKind(s)
	if err != nil {
		return err
	}
	f.kind = kind
	return nil
}

func (f *kindFlag) Type() string { return "kind" }

func newRecordCmd(app *App) *cobra.Command {
	var kind kindFlag
	var timestamp string

	cmd := &cobra.Command{
		Use:   "record <employee>",
		Short: "Record a single check-in or check-out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employee := args[0]

			if kind.kind == "" || timestamp == "" {
				if !app.interactive() {
					return fmt.Errorf("--kind and --time are required")
				}
				kindValue := string(kind.kind)
				if err := recordForm(&kindValue, &timestamp).Run(); err != nil {
					return err
				}
				if err := kind.Set(kindValue); err != nil {
					return err
				}
			}

			rec, err := app.Record.RecordAction(context.Background(), employee, kind.kind, timestamp)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s at %s (day %s)\n",
				formatter.ActionColor(string(rec.Kind)).Render(string(rec.Kind)),
				formatter.Bold(rec.Employee),
				domain.FormatActionTime(rec.Timestamp),
				rec.Day)
			return nil
		},
	}

	cmd.Flags().Var(&kind, "kind", "Action kind (CheckIn or CheckOut)")
	cmd.Flags().StringVar(&timestamp, "time", "", `Action time as "YYYY-MM-DD hh:mm AM/PM"`)

	return cmd
}
