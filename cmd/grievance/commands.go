// cmd/grievance/commands.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"grievance/internal/console"
	"grievance/internal/report"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export complaints to an Excel workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			if err := report.WriteXLSX(out, a.store.List(), a.store.StatusTally()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[OK] Exported %d complaint(s) to %s\n", a.store.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "complaints.xlsx", "output .xlsx path")
	return cmd
}

func newSummaryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print complaint counts by status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			console.WriteSummary(cmd.OutOrStdout(), a.store.StatusTally())
			return nil
		},
	}
}
