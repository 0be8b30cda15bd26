package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSaleCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record sales and inspect the sales ledger",
	}

	var note string
	add := &cobra.Command{
		Use:   "add <cid> <sku> <qty>",
		Short: "Record a sale at the item's current price",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("parse qty %q: %w", args[2], err)
			}
			id, err := app.Ledger.AddSale(args[0], args[1], qty, note)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	add.Flags().StringVar(&note, "note", "", "free-text note")
	cmd.AddCommand(add)

	var includeDeleted bool
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List the sales ledger in timestamp order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := app.Store.Data()
			for _, r := range app.Ledger.Sales(includeDeleted || app.Store.Settings().ShowDeletedByDefault) {
				customer := "(deleted)"
				if cu, ok := ds.Customers[r.CID]; ok {
					customer = cu.Name
				}
				item := "(deleted)"
				if it, ok := ds.Items[r.SKU]; ok {
					item = it.Name
				}
				mark := ""
				if r.Deleted {
					mark = "\t[deleted]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%s%s\n",
					r.ID, r.TS, customer, item, r.Qty, app.Store.MoneyString(r.LineTotal), mark)
			}
			return nil
		},
	}
	ls.Flags().BoolVar(&includeDeleted, "all", false, "include soft-deleted records")
	cmd.AddCommand(ls)

	var reason string
	softRm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Soft-delete a sales record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ledger.SoftDeleteSale(args[0], reason)
		},
	}
	softRm.Flags().StringVar(&reason, "reason", "", "why the record is being removed")
	cmd.AddCommand(softRm)

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted sales record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ledger.RestoreSale(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Permanently remove all soft-deleted sales records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDanger(cmd, app); err != nil {
				return err
			}
			n, err := app.Ledger.PurgeSales()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d\n", n)
			return nil
		},
	})

	return cmd
}
