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

// runAuthenticatedList is runList for listings that only exist for the session
func runAuthenticatedList(cmd *cobra.Command, fn listFunc) error {
	return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
		if !s.Client.Authenticated() {
			return object.Object{}, util.ErrNoAccounts
		}
		return fn(ctx, s)
	})
}

func newMessagesCmd() *cobra.Command {
	var tab string
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List private messages of the authenticated user",
		Long: `List private messages of the authenticated user.

Messages are paged by number: --cursor takes the page to show, starting at 0.`,
		Example: `  # Your inbox
  blox list messages

  # Second page of sent messages
  blox list messages --tab sent --cursor 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			messageTab, ok := api.ParseMessageTab(tab)
			if !ok {
				return util.NewValidationError("tab", tab, "must be inbox, sent, news or archive")
			}
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runAuthenticatedList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				messages, err := s.Client.Messages(ctx, messageTab, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing %s messages", messageTab)
				}
				return present.Messages(messages), nil
			})
		},
	}

	cmd.Flags().StringVarP(&tab, "tab", "t", "inbox", "message folder (inbox, sent, news, archive)")
	cmd.Flags().StringVar(&pageFlags.Cursor, "cursor", "", "page number")
	cmd.Flags().IntVar(&pageFlags.Limit, "limit", 100, "messages per page")

	return cmd
}

func newConversationsCmd() *cobra.Command {
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "List chat conversations of the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runAuthenticatedList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				conversations, err := s.Client.Conversations(ctx, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing conversations")
				}
				return present.Conversations(conversations), nil
			})
		},
	}

	cmd.Flags().StringVar(&pageFlags.Cursor, "cursor", "", "page cursor from a previous listing")
	cmd.Flags().IntVar(&pageFlags.Limit, "limit", 100, "conversations per page")

	return cmd
}

func newNotificationsCmd() *cobra.Command {
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List recent notifications of the authenticated user",
		Long: `List recent notifications of the authenticated user.

--cursor takes the index of the first notification to show, starting at 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runAuthenticatedList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				notifications, err := s.Client.RecentNotifications(ctx, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing notifications")
				}
				return present.Notifications(notifications), nil
			})
		},
	}

	cmd.Flags().StringVar(&pageFlags.Cursor, "cursor", "", "index of the first notification")
	cmd.Flags().IntVar(&pageFlags.Limit, "limit", 20, "notifications to show")

	return cmd
}
