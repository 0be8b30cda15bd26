package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tallybook/tallybook/internal/ledger"
)

func newStockCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Post inventory movements and inspect the movement ledger",
	}

	movement := func(action ledger.Action, use, short string) *cobra.Command {
		var note string
		mv := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				qty, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("parse qty %q: %w", args[1], err)
				}
				id, err := app.Ledger.Apply(action, args[0], qty, note)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			},
		}
		mv.Flags().StringVar(&note, "note", "", "free-text note")
		return mv
	}
	cmd.AddCommand(movement(ledger.ActionIn, "in <sku> <qty>", "Receive stock"))
	cmd.AddCommand(movement(ledger.ActionOut, "out <sku> <qty>", "Issue stock"))
	cmd.AddCommand(movement(ledger.ActionAdjust, "adjust <sku> <qty>", "Set stock to an absolute level"))

	var includeDeleted bool
	history := &cobra.Command{
		Use:   "history",
		Short: "List the movement ledger in timestamp order",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := app.Store.Data().Items
			for _, r := range app.Ledger.Movements(includeDeleted || app.Store.Settings().ShowDeletedByDefault) {
				name := "(deleted)"
				if it, ok := items[r.SKU]; ok {
					name = it.Name
				}
				mark := ""
				if r.Deleted {
					mark = "\t[deleted]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%s\t%d%s\n",
					r.ID, r.TS, r.Action, name, r.Qty, app.Store.MoneyString(r.Amount), r.StockAfter, mark)
			}
			return nil
		},
	}
	history.Flags().BoolVar(&includeDeleted, "all", false, "include soft-deleted records")
	cmd.AddCommand(history)

	var reason string
	softRm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Soft-delete a movement record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ledger.SoftDeleteMovement(args[0], reason)
		},
	}
	softRm.Flags().StringVar(&reason, "reason", "", "why the record is being removed")
	cmd.AddCommand(softRm)

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <id>",
		Short: "Restore a soft-deleted movement record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Ledger.RestoreMovement(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Permanently remove all soft-deleted movement records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDanger(cmd, app); err != nil {
				return err
			}
			n, err := app.Ledger.PurgeMovements()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d\n", n)
			return nil
		},
	})

	return cmd
}
