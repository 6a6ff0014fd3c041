package add

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "account NAME COOKIE",
		Short: "Save a session cookie under a name",
		Long: `Save a .ROBLOSECURITY session cookie under NAME.

Names are unique regardless of case. The cookie may be given with or without
the _|WARNING:-DO-NOT-SHARE-THIS prefix. With --verify the cookie is checked
against the API before it is saved.`,
		Example: `  # Save the main account
  blox add account main "$ROBLOSECURITY"

  # Save an alt, checking the cookie first
  blox add account alt "$ALT_COOKIE" --verify`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddAccount(cmd, args[0], args[1], verify)
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the cookie before saving it")

	return cmd
}

func runAddAccount(cmd *cobra.Command, name, cookie string, verify bool) error {
	mgr, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}

	account, err := mgr.AddAccount(name, cookie)
	if err != nil {
		return err
	}

	if verify {
		user, err := cmdutil.NewClient(mgr, account.Cookie).AuthenticatedUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("verifying cookie for %s: %w", account.Name, err)
		}
		slog.Debug("verified account", "account", account.Name, "user", user.Name)
	}

	if err := mgr.Save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cmdutil.Colors(out, mgr).Success("Added account %s", account.Name))
	return nil
}
