package join

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/launch"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

// newLauncher builds the launcher used by `join game`
var newLauncher = func() *launch.Launcher {
	return launch.New(launch.WithLogger(slog.Default()))
}

// NewJoinCmd creates the join parent command
func NewJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join games and groups",
		Long: `Join a game in the desktop player, or join a group.

Both act as the selected account.`,
	}

	cmd.AddCommand(newGameCmd())
	cmd.AddCommand(newGroupCmd())

	return cmd
}

func newGameCmd() *cobra.Command {
	var linkCode string

	cmd := &cobra.Command{
		Use:   "game PLACE_ID [JOB_ID]",
		Short: "Launch the player into a game",
		Long: `Launch the player into a game.

JOB_ID joins a specific running server and --link-code joins a private
server. On Linux, when the default browser is the Sober flatpak, the session
cookie is handed to Sober before launching.`,
		Example: `  # Join any server
  blox join game 1818

  # Join a specific server
  blox join game 1818 8b3c1f9e-1c42-4f6a-9a56-0f3d2c7e1b11

  # Join a private server
  blox join game 1818 --link-code 12345678`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			placeID, err := cmdutil.ParseID("place", args[0])
			if err != nil {
				return err
			}
			target := launch.Join{PlaceID: placeID, LinkCode: linkCode}
			if len(args) == 2 {
				target.JobID = args[1]
			}
			return runJoinGame(cmd, target)
		},
	}

	cmd.Flags().StringVar(&linkCode, "link-code", "", "private server link code")

	return cmd
}

func runJoinGame(cmd *cobra.Command, target launch.Join) error {
	ctx := cmd.Context()

	session, err := cmdutil.NewSession()
	if err != nil {
		return err
	}

	place, err := session.Client.Place(ctx, target.PlaceID)
	if err != nil {
		return util.WrapErrorf(err, "looking up game %d", target.PlaceID)
	}
	if !place.IsPlayable {
		slog.Warn("game reports it is not playable", "place", place.ID)
	}

	if err := newLauncher().Launch(ctx, session.Account.Cookie, target); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Joining %s as %s\n", place.Name, session.Account.Name)
	return nil
}

func newGroupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "group ID",
		Short: "Join a group",
		Long:  `Join a group. Groups that require approval receive a join request.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID("group", args[0])
			if err != nil {
				return err
			}

			session, err := cmdutil.NewSession()
			if err != nil {
				return err
			}

			if err := session.Client.JoinGroup(cmd.Context(), id); err != nil {
				return util.WrapErrorf(err, "joining group %d", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Joined group %d as %s\n", id, session.Account.Name)
			return nil
		},
	}
}
