package login

import (
	"errors"
	"fmt"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

// errDeclined is returned when the confirmation prompt is answered with no
var errDeclined = errors.New("login not authorized")

func newAuthorizeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "authorize CODE",
		Short: "Approve a quick-login code as the selected account",
		Long: `Approve a quick-login code as the selected account.

The location and device that created the code are shown first and the
approval must be confirmed unless --yes is given.`,
		Example: `  # Approve a code after checking where it came from
  blox login authorize ABC123

  # Approve without prompting
  blox login authorize ABC123 --yes -a alt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorize(cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "approve without asking")

	return cmd
}

func runAuthorize(cmd *cobra.Command, code string, yes bool) error {
	ctx := cmd.Context()

	session, err := cmdutil.NewSession()
	if err != nil {
		return err
	}

	info, err := session.Client.InspectLoginCode(ctx, code)
	if err != nil {
		return util.WrapErrorf(err, "inspecting login code %s", code)
	}

	if err := cmdutil.Print(cmd, session.Config, present.LoginInfo(info)); err != nil {
		return err
	}

	if !yes {
		ok, err := confirm(fmt.Sprintf("Sign this device in as %s?", session.Account.Name))
		if err != nil {
			return err
		}
		if !ok {
			return errDeclined
		}
	}

	if err := session.Client.ValidateLoginCode(ctx, code); err != nil {
		return util.WrapErrorf(err, "authorizing login code %s", code)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Authorized login as %s\n", session.Account.Name)
	return nil
}
