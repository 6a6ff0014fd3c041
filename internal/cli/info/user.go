package info

import (
	"context"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/executor"
	"github.com/aryankumar/blox/internal/present"
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user [ID]",
		Short: "Show a user's profile",
		Long: `Show a user's profile: names, creation date, premium membership,
presence and description.

Without an ID the authenticated user is shown. Profile, membership and
presence are fetched concurrently.`,
		Example: `  # Yourself
  blox info user

  # Someone else
  blox info user 156`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id uint64
			if len(args) == 1 {
				parsed, err := cmdutil.ParseID("user", args[0])
				if err != nil {
					return err
				}
				id = parsed
			}
			return runUser(cmd, id)
		},
	}

	return cmd
}

func runUser(cmd *cobra.Command, id uint64) error {
	ctx := cmd.Context()

	session, err := cmdutil.NewAnonymousSession()
	if err != nil {
		return err
	}
	client := session.Client

	if id, err = cmdutil.UserOrSelf(ctx, client, id); err != nil {
		return err
	}

	data, err := fetchAll(ctx, cmdutil.Parallel(session.Config),
		executor.Task{Name: "profile", Execute: func(ctx context.Context) (interface{}, error) {
			return client.User(ctx, id)
		}},
		executor.Task{Name: "premium membership", Execute: func(ctx context.Context) (interface{}, error) {
			return client.IsPremium(ctx, id)
		}},
		executor.Task{Name: "presence", Execute: func(ctx context.Context) (interface{}, error) {
			return client.Presence(ctx, id)
		}},
	)
	if err != nil {
		return err
	}

	obj := present.User(data[0].(api.User), data[1].(bool), data[2].(api.Presence))
	return cmdutil.Print(cmd, session.Config, obj)
}
