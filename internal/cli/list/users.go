package list

import (
	"context"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

func newAvatarCmd() *cobra.Command {
	var user uint64

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "List the items worn by a user's avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				avatar, err := s.Client.Avatar(ctx, id)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "fetching avatar of user %d", id)
				}
				return present.Avatar(avatar), nil
			})
		},
	}

	addUserFlag(cmd, &user)

	return cmd
}

// socialFunc is one of the friends, followers or followings listings
type socialFunc func(c *api.Client, ctx context.Context, userID uint64, page api.Page) (api.Users, error)

var socialListings = map[string]socialFunc{
	"followers":  (*api.Client).Followers,
	"followings": (*api.Client).Followings,
	"friends":    (*api.Client).Friends,
}

func newSocialCmd(name, key string) *cobra.Command {
	var user uint64
	var pageFlags cmdutil.PageFlags

	fetch := socialListings[name]

	cmd := &cobra.Command{
		Use:   name,
		Short: "List a user's " + name,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				users, err := fetch(s.Client, ctx, id, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing %s of user %d", name, id)
				}
				return present.Users(key, users), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmdutil.AddPageFlags(cmd, &pageFlags, 50)

	return cmd
}

func newFriendRequestsCmd() *cobra.Command {
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "friend-requests",
		Short: "List pending friend requests of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runAuthenticatedList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				requests, err := s.Client.FriendRequests(ctx, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing friend requests")
				}
				return present.FriendRequests(requests), nil
			})
		},
	}

	cmdutil.AddPageFlags(cmd, &pageFlags, 10)

	return cmd
}

func newGroupsCmd() *cobra.Command {
	var user uint64

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the groups a user belongs to, with their role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				memberships, err := s.Client.UserGroups(ctx, id)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing groups of user %d", id)
				}
				return present.Groups(memberships), nil
			})
		},
	}

	addUserFlag(cmd, &user)

	return cmd
}

func newNameHistoryCmd() *cobra.Command {
	var user, group uint64
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "name-history",
		Short: "List previous names of a user or group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				if group != 0 {
					history, err := s.Client.GroupNameHistory(ctx, group, page)
					if err != nil {
						return object.Object{}, util.WrapErrorf(err, "listing names of group %d", group)
					}
					return present.GroupNameHistory(history), nil
				}

				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				history, err := s.Client.NameHistory(ctx, id, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing names of user %d", id)
				}
				return present.NameHistory(history), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmd.Flags().Uint64VarP(&group, "group", "g", 0, "group id")
	cmd.MarkFlagsMutuallyExclusive("user", "group")
	cmdutil.AddPageFlags(cmd, &pageFlags, 10)

	return cmd
}

func newOutfitsCmd() *cobra.Command {
	var user uint64
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "List a user's saved outfits",
		Long: `List a user's saved outfits.

Outfits are paged by number: --cursor takes the page to show, starting at 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}
				outfits, err := s.Client.Outfits(ctx, id, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing outfits of user %d", id)
				}
				return present.Outfits(outfits), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmdutil.AddPageFlags(cmd, &pageFlags, 50)

	return cmd
}
