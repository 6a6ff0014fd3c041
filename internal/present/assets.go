package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// Asset renders the economy details of a catalog asset
func Asset(asset api.Asset) object.Object {
	owner := object.NewBuilder().
		Add("Id", object.Uint(asset.Creator.ID)).
		Add("Name", object.String(asset.Creator.Name)).
		Add("Kind", object.Enum(asset.Creator.Type)).
		Build()

	return object.NewBuilder().
		Add("Asset", object.String(asset.Name)).
		Add("Kind", object.Enum(asset.Type.String())).
		Add("Price", optionalPrice(asset.PriceInRobux)).
		Add("For sale", object.Bool(asset.IsForSale)).
		Add("Limited", object.Bool(asset.IsLimited || asset.IsLimitedUnique)).
		Add("Owner", object.Nested(owner)).
		Add("Creation date", timestamp(asset.Created)).
		Add("Last updated", timestamp(asset.Updated)).
		Add("About", object.Description(asset.Description)).
		Build()
}

// Inventory renders a page of owned assets; verbose adds the collectible,
// ownership and date fields
func Inventory(inventory api.Inventory, verbose bool) object.Object {
	assets := make([]object.Value, len(inventory.Assets))
	for i, asset := range inventory.Assets {
		assets[i] = object.Nested(inventoryAsset(asset, verbose))
	}

	return cursors(inventory.Cursors).
		Add("Assets", object.Vector(assets...)).
		Build()
}

func inventoryAsset(asset api.InventoryAsset, verbose bool) object.Object {
	b := object.NewBuilder().
		Add("Asset", object.Nested(object.NewBuilder().
			Add("Id", object.Uint(asset.ID)).
			Add("Name", object.String(asset.Name)).
			Add("Instance Id", object.Uint(asset.InstanceID)).
			Build()))

	if !verbose {
		return b.Build()
	}

	b.AddIf(asset.CollectibleID != "", "Collectible Id", object.String(asset.CollectibleID)).
		AddIf(asset.CollectibleInstanceID != "", "Collectible instance Id", object.String(asset.CollectibleInstanceID))
	if asset.SerialNumber != nil {
		b.Add("Serial number", object.Uint(*asset.SerialNumber))
	}

	owner := object.NewBuilder().
		Add("Name", object.String(asset.Owner.Name)).
		Build()

	return b.
		Add("Owner", object.Nested(owner)).
		Add("Creation date", timestamp(asset.Created)).
		Add("Last updated", timestamp(asset.Updated)).
		Build()
}
