package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallybook/tallybook/internal/masterdata"
)

func newCustomerCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage the customer registry",
	}

	var name string
	upsert := &cobra.Command{
		Use:   "upsert <cid>",
		Short: "Create or update a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Master.UpsertCustomer(masterdata.CustomerInput{CID: args[0], Name: name})
		},
	}
	upsert.Flags().StringVar(&name, "name", "", "display name")
	cmd.AddCommand(upsert)

	var includeDisabled bool
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ref := range app.Master.Customers(includeDisabled) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ref.ID, ref.Name)
			}
			return nil
		},
	}
	ls.Flags().BoolVar(&includeDisabled, "all", false, "include disabled customers")
	cmd.AddCommand(ls)

	cmd.AddCommand(&cobra.Command{
		Use:   "disable <cid>",
		Short: "Disable a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Master.DisableCustomer(args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "enable <cid>",
		Short: "Re-enable a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Master.EnableCustomer(args[0])
		},
	})

	var allowOrphan bool
	rm := &cobra.Command{
		Use:   "rm <cid>",
		Short: "Hard-delete a customer (no audit trail)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDanger(cmd, app); err != nil {
				return err
			}
			return app.Master.DeleteCustomer(args[0], allowOrphan)
		},
	}
	rm.Flags().BoolVar(&allowOrphan, "allow-orphan", false, "delete even when sales still reference the cid")
	cmd.AddCommand(rm)

	return cmd
}
