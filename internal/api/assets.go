package api

import (
	"context"
	"fmt"
	"time"
)

// AssetCreator is the creator block of an economy asset record
type AssetCreator struct {
	ID   uint64 `json:"Id"`
	Name string `json:"Name"`
	Type string `json:"CreatorType"`
}

// Asset is the economy detail record of a catalog asset
type Asset struct {
	ID              uint64       `json:"AssetId"`
	Name            string       `json:"Name"`
	Description     string       `json:"Description"`
	Type            AssetType    `json:"AssetTypeId"`
	Creator         AssetCreator `json:"Creator"`
	Created         time.Time    `json:"Created"`
	Updated         time.Time    `json:"Updated"`
	PriceInRobux    *int64       `json:"PriceInRobux"`
	IsForSale       bool         `json:"IsForSale"`
	IsLimited       bool         `json:"IsLimited"`
	IsLimitedUnique bool         `json:"IsLimitedUnique"`
}

// Asset returns the economy details of an asset
func (c *Client) Asset(ctx context.Context, id uint64) (Asset, error) {
	var asset Asset
	err := c.get(ctx, "economy", fmt.Sprintf("/v2/assets/%d/details", id), &asset)
	return asset, err
}

// AssetContent downloads the raw file behind an asset id
// The body may be compressed; callers sniff it before writing
func (c *Client) AssetContent(ctx context.Context, id uint64) ([]byte, error) {
	return c.Fetch(ctx, c.endpoint("assetdelivery", fmt.Sprintf("/v1/asset/?id=%d", id)))
}
