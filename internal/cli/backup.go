package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBackupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the snapshot to a timestamp-suffixed sibling file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := app.Store.Backup(app.BackupDir)
			if err != nil {
				return err
			}
			app.Logger.Info("backup written", "path", dst)
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
}
