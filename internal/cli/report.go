package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate figures over the live dataset",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "valuation",
		Short: "Current inventory valuation over enabled items",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Store.MoneyString(app.Report.InventoryValuation()))
			return nil
		},
	})

	var from, to, cid string
	sales := &cobra.Command{
		Use:   "sales",
		Short: "Sum of sales, optionally bounded by time range and customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), app.Store.MoneyString(app.Report.SalesSum(from, to, cid)))
			return nil
		},
	}
	sales.Flags().StringVar(&from, "from", "", "inclusive lower bound (YYYY-MM-DD HH:MM:SS)")
	sales.Flags().StringVar(&to, "to", "", "inclusive upper bound")
	sales.Flags().StringVar(&cid, "cid", "", "restrict to one customer")
	cmd.AddCommand(sales)

	return cmd
}
