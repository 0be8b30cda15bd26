package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSettingsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change persisted settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Store.Settings()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theme\t%s\n", s.Theme)
			fmt.Fprintf(out, "price_mode\t%s\n", s.PriceMode)
			fmt.Fprintf(out, "price_decimals\t%d\n", s.PriceDecimals)
			fmt.Fprintf(out, "danger_confirm_phrase\t%s\n", s.DangerConfirmPhrase)
			fmt.Fprintf(out, "show_deleted_by_default\t%t\n", s.ShowDeletedByDefault)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "theme":
				return app.Store.SetTheme(value)
			case "price_mode":
				return app.Store.SetPriceMode(value)
			case "price_decimals":
				n, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("parse %q: %w", value, err)
				}
				return app.Store.SetPriceDecimals(n)
			case "danger_confirm_phrase":
				return app.Store.SetDangerConfirmPhrase(value)
			case "show_deleted_by_default":
				v, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("parse %q: %w", value, err)
				}
				return app.Store.SetShowDeletedByDefault(v)
			default:
				return fmt.Errorf("unknown setting %q", key)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore all settings to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Store.ResetSettings()
		},
	})

	color := &cobra.Command{
		Use:   "color <category> [hex]",
		Short: "Get or set a category display color",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, ok := app.Store.CategoryColor(args[0])
				if !ok {
					return fmt.Errorf("no color for category %q", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), c)
				return nil
			}
			return app.Store.SetCategoryColor(args[0], args[1])
		},
	}
	cmd.AddCommand(color)

	return cmd
}
