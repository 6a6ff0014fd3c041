package list

import (
	"context"
	"fmt"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

// placeListingLimit is the page size used for listings scoped to a game
const placeListingLimit = 100

// universeOf resolves the universe a place belongs to
func universeOf(ctx context.Context, client *api.Client, placeID uint64) (uint64, error) {
	place, err := client.Place(ctx, placeID)
	if err != nil {
		return 0, util.WrapErrorf(err, "looking up game %d", placeID)
	}
	return place.UniverseID, nil
}

// placePage applies the game listing page size unless --limit was given
func placePage(cmd *cobra.Command, page api.Page) api.Page {
	if !cmd.Flags().Changed("limit") {
		page.Limit = placeListingLimit
	}
	return page
}

func newBadgesCmd() *cobra.Command {
	var user, place uint64
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List badges awarded to a user or offered by a game",
		Example: `  # Your badges
  blox list badges

  # Badges a game awards
  blox list badges --place 1818`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				if place != 0 {
					universe, err := universeOf(ctx, s.Client, place)
					if err != nil {
						return object.Object{}, err
					}
					badges, err := s.Client.UniverseBadges(ctx, universe, placePage(cmd, page))
					if err != nil {
						return object.Object{}, util.WrapErrorf(err, "listing badges of game %d", place)
					}
					return present.Badges(badges), nil
				}

				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				badges, err := s.Client.UserBadges(ctx, id, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing badges of user %d", id)
				}
				return present.Badges(badges), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmd.Flags().Uint64Var(&place, "place", 0, "place id of a game")
	cmd.MarkFlagsMutuallyExclusive("user", "place")
	cmdutil.AddPageFlags(cmd, &pageFlags, 10)

	return cmd
}

func newExperiencesCmd() *cobra.Command {
	var user, group uint64
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "experiences",
		Short: "List games created by a user or group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runExperiences(cmd, user, group, page)
		},
	}

	addUserFlag(cmd, &user)
	cmd.Flags().Uint64VarP(&group, "group", "g", 0, "group id")
	cmd.MarkFlagsMutuallyExclusive("user", "group")
	cmdutil.AddPageFlags(cmd, &pageFlags, 10)

	return cmd
}

func runExperiences(cmd *cobra.Command, user, group uint64, page api.Page) error {
	ctx := cmd.Context()

	session, err := cmdutil.NewAnonymousSession()
	if err != nil {
		return err
	}

	var games api.Experiences
	if group != 0 {
		games, err = session.Client.GroupGames(ctx, group, page)
		if err != nil {
			return util.WrapErrorf(err, "listing games of group %d", group)
		}
	} else {
		id, err := cmdutil.UserOrSelf(ctx, session.Client, user)
		if err != nil {
			return err
		}
		games, err = session.Client.UserGames(ctx, id, page)
		if err != nil {
			return util.WrapErrorf(err, "listing games of user %d", id)
		}
	}

	if len(games.Games) == 0 && games.Next == "" && games.Previous == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "entity has no experiences")
		return nil
	}

	return cmdutil.Print(cmd, session.Config, present.Experiences(games))
}

func newGamepassesCmd() *cobra.Command {
	var user, place uint64
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "gamepasses",
		Short: "List game passes owned by a user or sold by a game",
		Long: `List game passes owned by a user or sold by a game.

For a user the cursor is the id of the last pass on the previous page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				if place != 0 {
					universe, err := universeOf(ctx, s.Client, place)
					if err != nil {
						return object.Object{}, err
					}
					passes, err := s.Client.UniverseGamepasses(ctx, universe, placePage(cmd, page))
					if err != nil {
						return object.Object{}, util.WrapErrorf(err, "listing game passes of game %d", place)
					}
					return present.UniverseGamepasses(passes), nil
				}

				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				passes, err := s.Client.UserGamepasses(ctx, id, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing game passes of user %d", id)
				}
				return present.OwnedGamepasses(passes), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmd.Flags().Uint64Var(&place, "place", 0, "place id of a game")
	cmd.MarkFlagsMutuallyExclusive("user", "place")
	cmdutil.AddPageFlags(cmd, &pageFlags, 100)

	return cmd
}
