package download

import (
	"fmt"
	"strings"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

func newThumbnailCmd(dir *string) *cobra.Command {
	var kind, size string

	cmd := &cobra.Command{
		Use:   "thumbnail ID",
		Short: "Download a rendered thumbnail as PNG",
		Long: `Download a rendered thumbnail as PNG.

Kinds: ` + strings.Join(api.ThumbnailTypeNames(), ", ") + `

Sizes are WIDTHxHEIGHT and must be one the thumbnail service offers for
the kind, for example 150x150 or 420x420.`,
		Example: `  # A user's full avatar
  blox download thumbnail 156 --kind avatar

  # A badge icon at 150x150
  blox download thumbnail 2124 --kind badge-icon --size 150x150`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID("id", args[0])
			if err != nil {
				return err
			}
			thumbnailType, err := api.ParseThumbnailType(kind)
			if err != nil {
				return util.NewValidationError("kind", kind, err.Error())
			}
			thumbnailSize, err := api.ParseThumbnailSize(size)
			if err != nil {
				return util.NewValidationError("size", size, err.Error())
			}

			session, err := cmdutil.NewAnonymousSession()
			if err != nil {
				return err
			}
			downloader, err := newDownloader(session, *dir)
			if err != nil {
				return err
			}

			path, err := downloader.Thumbnail(cmd.Context(), id, thumbnailType, thumbnailSize)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(api.ThumbnailAvatar), "what the id refers to")
	cmd.Flags().StringVarP(&size, "size", "s", api.DefaultThumbnailSize, "image size")

	return cmd
}
