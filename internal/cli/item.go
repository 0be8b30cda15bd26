package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallybook/tallybook/internal/format"
	"github.com/tallybook/tallybook/internal/masterdata"
)

func newItemCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the item registry",
	}

	var (
		name     string
		price    string
		category string
		stock    int64
	)
	upsert := &cobra.Command{
		Use:   "upsert <sku>",
		Short: "Create or update an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitPrice, err := format.ParseAmount(price)
			if err != nil {
				return err
			}
			return app.Master.UpsertItem(masterdata.ItemInput{
				SKU:       args[0],
				Name:      name,
				UnitPrice: unitPrice,
				Category:  category,
				Stock:     stock,
			})
		},
	}
	upsert.Flags().StringVar(&name, "name", "", "display name")
	upsert.Flags().StringVar(&price, "price", "0", "unit price")
	upsert.Flags().StringVar(&category, "category", "", "category")
	upsert.Flags().Int64Var(&stock, "stock", 0, "initial stock")
	cmd.AddCommand(upsert)

	var includeDisabled bool
	var lsCategory string
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List items in a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ref := range app.Master.ItemsByCategory(lsCategory, includeDisabled) {
				it, err := app.Master.Item(ref.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n",
					ref.ID, ref.Name, app.Store.MoneyString(it.UnitPrice), it.Stock)
			}
			return nil
		},
	}
	ls.Flags().StringVar(&lsCategory, "category", "", "category to list")
	ls.Flags().BoolVar(&includeDisabled, "all", false, "include disabled items")
	cmd.AddCommand(ls)

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List categories in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range app.Master.Categories(includeDisabled) {
				if color, ok := app.Store.CategoryColor(c); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s on %s\n", c, format.AutoForeground(color), color)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	categories.Flags().BoolVar(&includeDisabled, "all", false, "include categories of disabled items")
	cmd.AddCommand(categories)

	cmd.AddCommand(&cobra.Command{
		Use:   "disable <sku>",
		Short: "Disable an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Master.DisableItem(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "enable <sku>",
		Short: "Re-enable an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Master.EnableItem(args[0])
		},
	})

	var allowOrphan bool
	rm := &cobra.Command{
		Use:   "rm <sku>",
		Short: "Hard-delete an item (no audit trail)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDanger(cmd, app); err != nil {
				return err
			}
			if err := app.Master.DeleteItem(args[0], allowOrphan); err != nil {
				app.Logger.Warn("delete item", "sku", args[0], "error", err)
				return err
			}
			return nil
		},
	}
	rm.Flags().BoolVar(&allowOrphan, "allow-orphan", false, "delete even when ledger records still reference the sku")
	cmd.AddCommand(rm)

	return cmd
}
