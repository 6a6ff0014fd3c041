package add

import (
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add parent command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add accounts to the blox configuration",
		Long: `Add entries to the blox configuration file.

Accounts are stored by name together with their session cookie; the first
account added is used whenever --account is not given.`,
	}

	cmd.AddCommand(newAccountCmd())

	return cmd
}
