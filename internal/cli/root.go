// Package cli is the thin presentation layer over the store: it parses
// arguments, calls registry/ledger/report operations, surfaces their error
// kinds, and renders query results. All business rules live below it.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallybook/tallybook/internal/ledger"
	"github.com/tallybook/tallybook/internal/masterdata"
	"github.com/tallybook/tallybook/internal/report"
	"github.com/tallybook/tallybook/internal/store"
)

// App bundles the services every command operates on.
type App struct {
	Store     *store.Store
	Master    *masterdata.Service
	Ledger    *ledger.Service
	Report    *report.Service
	Logger    *slog.Logger
	BackupDir string
}

// NewRootCommand creates the tallybook command tree.
func NewRootCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tallybook",
		Short:         "Single-user item, stock and sales record keeper",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newItemCommand(app))
	cmd.AddCommand(newCustomerCommand(app))
	cmd.AddCommand(newStockCommand(app))
	cmd.AddCommand(newSaleCommand(app))
	cmd.AddCommand(newReportCommand(app))
	cmd.AddCommand(newSettingsCommand(app))
	cmd.AddCommand(newBackupCommand(app))

	return cmd
}

// confirmDanger asks the user to type the danger-confirm phrase back before
// an irreversible operation. The store never re-verifies this; it is purely a
// presentation-layer gate.
func confirmDanger(cmd *cobra.Command, app *App) error {
	phrase := app.Store.Settings().DangerConfirmPhrase
	fmt.Fprintf(cmd.OutOrStdout(), "type %q to confirm: ", phrase)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.TrimSpace(line) != phrase {
		return fmt.Errorf("confirmation phrase did not match")
	}
	return nil
}
