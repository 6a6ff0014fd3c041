package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// GamepassPrice is the pricing block of a game pass
type GamepassPrice struct {
	PriceInRobux int64 `json:"defaultPriceInRobux"`
}

// Gamepass is the detail record of a game pass
type Gamepass struct {
	ID          uint64         `json:"gamePassId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsForSale   bool           `json:"isForSale"`
	IconAssetID uint64         `json:"iconAssetId"`
	PlaceID     uint64         `json:"placeId"`
	Created     time.Time      `json:"createdTimestamp"`
	Updated     time.Time      `json:"updatedTimestamp"`
	Price       *GamepassPrice `json:"priceInformation"`
}

// PriceInRobux returns the price, or 0 when the pass has no price set
func (g Gamepass) PriceInRobux() int64 {
	if g.Price == nil {
		return 0
	}
	return g.Price.PriceInRobux
}

// GamepassCreator is the owner of a user's game pass
type GamepassCreator struct {
	ID   uint64 `json:"creatorId"`
	Name string `json:"name"`
	Type string `json:"creatorType"`
}

// OwnedGamepass is a game pass in a user's inventory
type OwnedGamepass struct {
	ID          uint64          `json:"gamePassId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsForSale   bool            `json:"isForSale"`
	Price       *int64          `json:"price"`
	Creator     GamepassCreator `json:"creator"`
}

// Gamepass returns the details of a game pass
func (c *Client) Gamepass(ctx context.Context, id uint64) (Gamepass, error) {
	var pass Gamepass
	err := c.get(ctx, "apis", fmt.Sprintf("/game-passes/v1/game-passes/%d/details", id), &pass)
	return pass, err
}

// UserGamepasses returns the game passes a user owns
// The page cursor is the id of the last pass of the previous page
func (c *Client) UserGamepasses(ctx context.Context, userID uint64, page Page) ([]OwnedGamepass, error) {
	values := url.Values{}
	count := page.Limit
	if count <= 0 {
		count = 100
	}
	values.Set("count", strconv.Itoa(count))
	if page.Cursor != "" {
		values.Set("exclusiveStartId", page.Cursor)
	}

	var response struct {
		Gamepasses []OwnedGamepass `json:"gamePasses"`
	}
	path := withQuery(fmt.Sprintf("/game-passes/v1/users/%d/game-passes", userID), values)
	if err := c.get(ctx, "apis", path, &response); err != nil {
		return nil, err
	}
	return response.Gamepasses, nil
}
