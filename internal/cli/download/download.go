package download

import (
	"fmt"
	"log/slog"

	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/download"
	"github.com/spf13/cobra"
)

// NewDownloadCmd creates the download parent command
func NewDownloadCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download assets and thumbnails",
		Long: `Download assets and thumbnails to disk.

Files are named <id>-<unix time>.<extension>, where the extension is detected
from the content. Compressed assets are unpacked first. The directory comes
from the downloadPath setting ("downloads", "relative" or a path) unless
--dir is given.`,
		Example: `  # Download a model
  blox download asset 1818

  # Download a game icon into /tmp
  blox download thumbnail 1818 --kind game-icon --dir /tmp`,
	}

	cmd.PersistentFlags().StringVar(&dir, "dir", "", "directory to write into")

	cmd.AddCommand(newAssetCmd(&dir))
	cmd.AddCommand(newThumbnailCmd(&dir))

	return cmd
}

// newDownloader builds a Downloader for the session, writing into dir or
// the configured download directory
func newDownloader(session *cmdutil.Session, dir string) (*download.Downloader, error) {
	if dir == "" {
		configured, err := session.Config.DownloadDir()
		if err != nil {
			return nil, err
		}
		dir = configured
	}

	slog.Debug("download directory", "dir", dir)
	return download.New(session.Client, dir), nil
}

func newAssetCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "asset ID",
		Short: "Download an asset's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ParseID("asset", args[0])
			if err != nil {
				return err
			}

			session, err := cmdutil.NewAnonymousSession()
			if err != nil {
				return err
			}
			downloader, err := newDownloader(session, *dir)
			if err != nil {
				return err
			}

			path, err := downloader.Asset(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
}
