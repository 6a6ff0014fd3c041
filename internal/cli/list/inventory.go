package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/cli/cmdutil"
	"github.com/aryankumar/blox/internal/object"
	"github.com/aryankumar/blox/internal/present"
	"github.com/aryankumar/blox/internal/util"
	"github.com/spf13/cobra"
)

func newInventoryCmd() *cobra.Command {
	var user uint64
	var kind string
	var details bool
	var pageFlags cmdutil.PageFlags

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List the assets of one kind a user owns",
		Long: `List the assets of one kind a user owns.

The inventory must be visible to the selected account. --details adds
collectible ids, serial numbers, owner and dates.

Kinds: ` + strings.Join(api.AssetTypeNames(), ", "),
		Example: `  # Your hats
  blox list inventory --kind hat

  # A user's limited faces with serial numbers
  blox list inventory --user 156 --kind face --details`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType, err := parseInventoryKind(kind)
			if err != nil {
				return err
			}
			page, err := pageFlags.Page()
			if err != nil {
				return err
			}
			return runList(cmd, func(ctx context.Context, s *cmdutil.Session) (object.Object, error) {
				id, err := cmdutil.UserOrSelf(ctx, s.Client, user)
				if err != nil {
					return object.Object{}, err
				}

				visible, err := s.Client.CanViewInventory(ctx, id)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "checking inventory of user %d", id)
				}
				if !visible {
					return object.Object{}, util.WrapErrorf(util.ErrPrivateInventory, "user %d", id)
				}

				inventory, err := s.Client.Inventory(ctx, id, assetType, page)
				if err != nil {
					return object.Object{}, util.WrapErrorf(err, "listing inventory of user %d", id)
				}
				return present.Inventory(inventory, details), nil
			})
		},
	}

	addUserFlag(cmd, &user)
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "asset kind to list (required)")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "show collectible details, owner and dates")
	cmd.MarkFlagRequired("kind")
	cmdutil.AddPageFlags(cmd, &pageFlags, 10)

	return cmd
}

// parseInventoryKind resolves --kind, steering game passes to their own listing
func parseInventoryKind(kind string) (api.AssetType, error) {
	assetType, err := api.ParseAssetType(kind)
	if err != nil {
		return 0, util.NewValidationError("kind", kind, err.Error())
	}
	if assetType == api.AssetTypeGamepass {
		return 0, fmt.Errorf("game passes are not inventory assets, use `blox list gamepasses`")
	}
	return assetType, nil
}
