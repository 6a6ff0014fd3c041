package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// AssetType is the numeric asset type id used across the catalog
type AssetType int

// Asset types
const (
	AssetTypeImage             AssetType = 1
	AssetTypeTShirt            AssetType = 2
	AssetTypeAudio             AssetType = 3
	AssetTypeMesh              AssetType = 4
	AssetTypeLua               AssetType = 5
	AssetTypeHat               AssetType = 8
	AssetTypePlace             AssetType = 9
	AssetTypeModel             AssetType = 10
	AssetTypeShirt             AssetType = 11
	AssetTypePants             AssetType = 12
	AssetTypeDecal             AssetType = 13
	AssetTypeHead              AssetType = 17
	AssetTypeFace              AssetType = 18
	AssetTypeGear              AssetType = 19
	AssetTypeBadge             AssetType = 21
	AssetTypeAnimation         AssetType = 24
	AssetTypeTorso             AssetType = 27
	AssetTypeRightArm          AssetType = 28
	AssetTypeLeftArm           AssetType = 29
	AssetTypeLeftLeg           AssetType = 30
	AssetTypeRightLeg          AssetType = 31
	AssetTypePackage           AssetType = 32
	AssetTypeGamepass          AssetType = 34
	AssetTypePlugin            AssetType = 38
	AssetTypeMeshPart          AssetType = 40
	AssetTypeHairAccessory     AssetType = 41
	AssetTypeFaceAccessory     AssetType = 42
	AssetTypeNeckAccessory     AssetType = 43
	AssetTypeShoulderAccessory AssetType = 44
	AssetTypeFrontAccessory    AssetType = 45
	AssetTypeBackAccessory     AssetType = 46
	AssetTypeWaistAccessory    AssetType = 47
	AssetTypeEmoteAnimation    AssetType = 61
	AssetTypeVideo             AssetType = 62
	AssetTypeDynamicHead       AssetType = 79
)

var assetTypeNames = map[AssetType]string{
	AssetTypeImage:             "Image",
	AssetTypeTShirt:            "TShirt",
	AssetTypeAudio:             "Audio",
	AssetTypeMesh:              "Mesh",
	AssetTypeLua:               "Lua",
	AssetTypeHat:               "Hat",
	AssetTypePlace:             "Place",
	AssetTypeModel:             "Model",
	AssetTypeShirt:             "Shirt",
	AssetTypePants:             "Pants",
	AssetTypeDecal:             "Decal",
	AssetTypeHead:              "Head",
	AssetTypeFace:              "Face",
	AssetTypeGear:              "Gear",
	AssetTypeBadge:             "Badge",
	AssetTypeAnimation:         "Animation",
	AssetTypeTorso:             "Torso",
	AssetTypeRightArm:          "RightArm",
	AssetTypeLeftArm:           "LeftArm",
	AssetTypeLeftLeg:           "LeftLeg",
	AssetTypeRightLeg:          "RightLeg",
	AssetTypePackage:           "Package",
	AssetTypeGamepass:          "Gamepass",
	AssetTypePlugin:            "Plugin",
	AssetTypeMeshPart:          "MeshPart",
	AssetTypeHairAccessory:     "HairAccessory",
	AssetTypeFaceAccessory:     "FaceAccessory",
	AssetTypeNeckAccessory:     "NeckAccessory",
	AssetTypeShoulderAccessory: "ShoulderAccessory",
	AssetTypeFrontAccessory:    "FrontAccessory",
	AssetTypeBackAccessory:     "BackAccessory",
	AssetTypeWaistAccessory:    "WaistAccessory",
	AssetTypeEmoteAnimation:    "EmoteAnimation",
	AssetTypeVideo:             "Video",
	AssetTypeDynamicHead:       "DynamicHead",
}

// String returns the asset type name, or the numeric id for unlisted types
func (t AssetType) String() string {
	if name, ok := assetTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AssetType(%d)", int(t))
}

// ParseAssetType resolves a name such as "hat", "t-shirt" or "mesh_part"
func ParseAssetType(name string) (AssetType, error) {
	normalized := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for t, n := range assetTypeNames {
		if strings.ToLower(n) == normalized {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown asset kind %q", name)
}

// AssetTypeNames returns every known asset type name
func AssetTypeNames() []string {
	names := make([]string, 0, len(assetTypeNames))
	for _, name := range assetTypeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InventoryOwner is the owner block of an inventory item
type InventoryOwner struct {
	ID   uint64 `json:"userId"`
	Name string `json:"username"`
}

// InventoryAsset is one item in a user's inventory
// Collectible fields are only present on limited items
type InventoryAsset struct {
	ID                    uint64         `json:"assetId"`
	Name                  string         `json:"name"`
	InstanceID            uint64         `json:"userAssetId"`
	CollectibleID         string         `json:"collectibleItemId"`
	CollectibleInstanceID string         `json:"collectibleItemInstanceId"`
	SerialNumber          *uint64        `json:"serialNumber"`
	Owner                 InventoryOwner `json:"owner"`
	Created               time.Time      `json:"created"`
	Updated               time.Time      `json:"updated"`
}

// Inventory is one page of a user's inventory
type Inventory struct {
	Cursors
	Assets []InventoryAsset `json:"data"`
}

// CanViewInventory reports whether the user's inventory is visible to the session
func (c *Client) CanViewInventory(ctx context.Context, userID uint64) (bool, error) {
	var response struct {
		CanView bool `json:"canView"`
	}
	err := c.get(ctx, "inventory", fmt.Sprintf("/v1/users/%d/can-view-inventory", userID), &response)
	return response.CanView, err
}

// Inventory returns a page of the assets of one type a user owns
func (c *Client) Inventory(ctx context.Context, userID uint64, kind AssetType, page Page) (Inventory, error) {
	var inventory Inventory
	path := withQuery(fmt.Sprintf("/v2/users/%d/inventory/%d", userID, int(kind)), page.query())
	err := c.get(ctx, "inventory", path, &inventory)
	return inventory, err
}
