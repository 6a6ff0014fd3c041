package info

import (
	"context"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/executor"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info parent command
// Each subcommand looks up a single entity by id and prints it
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show details of a user, group, game, asset, badge or game pass",
		Long: `Look up a single entity by its numeric id and print its details.

Lookups use the selected account when one is saved and fall back to
anonymous requests otherwise.`,
		Example: `  # Details of a user
  blox info user 1

  # Details of a game by place id, as YAML
  blox info game 1818 -o yaml

  # Details of a catalog asset
  blox info asset 1365767`,
	}

	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newGameCmd())
	cmd.AddCommand(newLookupCmd("asset", "Show details of a catalog asset",
		func(ctx context.Context, client *api.Client, id uint64) (object.Object, error) {
			asset, err := client.Asset(ctx, id)
			if err != nil {
				return object.Object{}, err
			}
			return present.Asset(asset), nil
		}))
	cmd.AddCommand(newLookupCmd("group", "Show details of a group",
		func(ctx context.Context, client *api.Client, id uint64) (object.Object, error) {
			group, err := client.Group(ctx, id)
			if err != nil {
				return object.Object{}, err
			}
			return present.Group(group), nil
		}))
	cmd.AddCommand(newLookupCmd("badge", "Show details of a badge",
		func(ctx context.Context, client *api.Client, id uint64) (object.Object, error) {
			badge, err := client.Badge(ctx, id)
			if err != nil {
				return object.Object{}, err
			}
			return present.Badge(badge), nil
		}))
	cmd.AddCommand(newLookupCmd("gamepass", "Show details of a game pass",
		func(ctx context.Context, client *api.Client, id uint64) (object.Object, error) {
			pass, err := client.Gamepass(ctx, id)
			if err != nil {
				return object.Object{}, err
			}
			return present.Gamepass(pass), nil
		}))

	return cmd
}

// lookupFunc fetches one entity and renders it
type lookupFunc func(ctx context.Context, client *api.Client, id uint64) (object.Object, error)

func newLookupCmd(kind, short string, lookup lookupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, kind, args[0], lookup)
		},
	}
}

func runLookup(cmd *cobra.Command, kind, arg string, lookup lookupFunc) error {
	id, err := cmdutil.ParseID(kind, arg)
	if err != nil {
		return err
	}

	session, err := cmdutil.NewAnonymousSession()
	if err != nil {
		return err
	}

	obj, err := lookup(cmd.Context(), session.Client, id)
	if err != nil {
		return util.WrapErrorf(err, "looking up %s %d", kind, id)
	}

	return cmdutil.Print(cmd, session.Config, obj)
}

// fetchAll runs tasks concurrently and returns their data in order,
// failing with the first task error
func fetchAll(ctx context.Context, workers int, tasks ...executor.Task) ([]interface{}, error) {
	pool := executor.NewPool(workers, nil)
	for _, task := range tasks {
		if err := pool.Submit(task); err != nil {
			return nil, err
		}
	}

	results := pool.Execute(ctx)
	if failed, ok := executor.FirstFailure(results); ok {
		return nil, util.WrapErrorf(failed.Error, "fetching %s", failed.Name)
	}

	data := make([]interface{}, len(results))
	for i, result := range results {
		data[i] = result.Data
	}
	return data, nil
}
