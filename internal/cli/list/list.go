package list

import (
	"context"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/object"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list parent command
// This command aggregates the paged listings of users, groups and games
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections owned by users, groups and games",
		Long: `List collections such as friends, badges, inventories and game passes.

Listings default to the authenticated user. Paged listings print the next
and previous cursors; pass one back with --cursor to move between pages.`,
		Example: `  # Your friends
  blox list friends

  # Badges awarded by a game
  blox list badges --place 1818

  # Hats owned by a user, with collectible details
  blox list inventory --user 156 --kind hat --details

  # Next page of followers
  blox list followers --user 1 --cursor <next cursor>

  # Your latest notifications
  blox list notifications`,
	}

	cmd.AddCommand(newAvatarCmd())
	cmd.AddCommand(newBadgesCmd())
	cmd.AddCommand(newExperiencesCmd())
	cmd.AddCommand(newSocialCmd("followers", "Followers"))
	cmd.AddCommand(newSocialCmd("followings", "Followings"))
	cmd.AddCommand(newSocialCmd("friends", "Friends"))
	cmd.AddCommand(newFriendRequestsCmd())
	cmd.AddCommand(newGamepassesCmd())
	cmd.AddCommand(newGroupsCmd())
	cmd.AddCommand(newInventoryCmd())
	cmd.AddCommand(newNameHistoryCmd())
	cmd.AddCommand(newOutfitsCmd())
	cmd.AddCommand(newMessagesCmd())
	cmd.AddCommand(newConversationsCmd())
	cmd.AddCommand(newNotificationsCmd())

	return cmd
}

// listFunc fetches a listing with the session's client and renders it
type listFunc func(ctx context.Context, session *cmdutil.Session) (object.Object, error)

// runList opens a session, runs fn and prints the result
func runList(cmd *cobra.Command, fn listFunc) error {
	session, err := cmdutil.NewAnonymousSession()
	if err != nil {
		return err
	}

	obj, err := fn(cmd.Context(), session)
	if err != nil {
		return err
	}

	return cmdutil.Print(cmd, session.Config, obj)
}

// addUserFlag registers --user
func addUserFlag(cmd *cobra.Command, user *uint64) {
	cmd.Flags().Uint64VarP(user, "user", "u", 0, "user id (default is the authenticated user)")
}
