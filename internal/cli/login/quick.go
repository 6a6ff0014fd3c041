package login

import (
	"context"
	"log/slog"
	"time"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

// Statuses after which a quick-login code no longer changes
var finalStatuses = map[string]bool{
	"Validated": true,
	"Cancelled": true,
	"Expired":   true,
}

func newQuickCmd() *cobra.Command {
	var wait bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "new-quick",
		Short: "Create a quick-login code",
		Long: `Create a quick-login code and print it with a QR code image URL.

Enter the code on a signed-in device, or approve it with
"blox login authorize CODE". With --wait the status is polled until the
code is validated, cancelled or expires.`,
		Example: `  # Create a code
  blox login new-quick

  # Create a code and wait for approval
  blox login new-quick --wait`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuick(cmd, wait, interval)
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "poll until the code is used or expires")
	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "polling interval for --wait")

	return cmd
}

func runQuick(cmd *cobra.Command, wait bool, interval time.Duration) error {
	ctx := cmd.Context()

	mgr, err := cmdutil.LoadConfig()
	if err != nil {
		return err
	}
	client := cmdutil.NewClient(mgr, "")

	token, err := client.CreateLoginToken(ctx)
	if err != nil {
		return util.WrapErrorf(err, "creating login code")
	}

	if err := cmdutil.Print(cmd, mgr, present.LoginToken(token, token.QRCodeURL(client))); err != nil {
		return err
	}

	if !wait {
		return nil
	}

	final, err := waitForToken(ctx, client, token, interval)
	if err != nil {
		return err
	}
	return cmdutil.Print(cmd, mgr, present.LoginToken(final, final.QRCodeURL(client)))
}

// waitForToken polls the code until it reaches a final status or expires
func waitForToken(ctx context.Context, client *api.Client, token api.LoginToken, interval time.Duration) (api.LoginToken, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return token, util.ErrCancelled
		case <-ticker.C:
		}

		status, err := client.LoginTokenStatus(ctx, token)
		if err != nil {
			return token, util.WrapErrorf(err, "polling login code")
		}

		slog.Debug("login code status", "code", status.Code, "status", status.Status)

		if finalStatuses[status.Status] {
			return status, nil
		}
		if !token.ExpirationTime.IsZero() && time.Now().After(token.ExpirationTime) {
			status.Status = "Expired"
			return status, nil
		}
	}
}
