package info

import (
	"context"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/executor"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game PLACE_ID",
		Short: "Show details of a game",
		Long: `Show details of a game by place id: universe, price, playability,
rating, owner and description.

Votes and favorites are fetched concurrently once the universe is known.`,
		Example: `  # Details of a game
  blox info game 1818`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID("place", args[0])
			if err != nil {
				return err
			}
			return runGame(cmd, id)
		},
	}

	return cmd
}

func runGame(cmd *cobra.Command, id uint64) error {
	ctx := cmd.Context()

	session, err := cmdutil.NewAnonymousSession()
	if err != nil {
		return err
	}
	client := session.Client

	place, err := client.Place(ctx, id)
	if err != nil {
		return util.WrapErrorf(err, "looking up game %d", id)
	}

	universe := place.UniverseID
	data, err := fetchAll(ctx, cmdutil.Parallel(session.Config),
		executor.Task{Name: "votes", Execute: func(ctx context.Context) (interface{}, error) {
			return client.Votes(ctx, universe)
		}},
		executor.Task{Name: "favorites", Execute: func(ctx context.Context) (interface{}, error) {
			return client.FavoritesCount(ctx, universe)
		}},
	)
	if err != nil {
		return err
	}

	obj := present.Place(place, data[0].(api.Votes), data[1].(uint64))
	return cmdutil.Print(cmd, session.Config, obj)
}
