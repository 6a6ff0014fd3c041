package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AvatarScales are the body proportions of an avatar
type AvatarScales struct {
	Height     float64 `json:"height"`
	Width      float64 `json:"width"`
	Head       float64 `json:"head"`
	Depth      float64 `json:"depth"`
	Proportion float64 `json:"proportion"`
	BodyType   float64 `json:"bodyType"`
}

// BodyColors are the BrickColor ids of each body part
type BodyColors struct {
	Head     int `json:"headColorId"`
	Torso    int `json:"torsoColorId"`
	RightArm int `json:"rightArmColorId"`
	LeftArm  int `json:"leftArmColorId"`
	RightLeg int `json:"rightLegColorId"`
	LeftLeg  int `json:"leftLegColorId"`
}

// AvatarAssetType names the slot an avatar asset is worn in
type AvatarAssetType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AvatarAsset is an item the avatar is wearing
type AvatarAsset struct {
	ID               uint64          `json:"id"`
	Name             string          `json:"name"`
	Type             AvatarAssetType `json:"assetType"`
	CurrentVersionID uint64          `json:"currentVersionId"`
}

// Emote is an equipped emote
type Emote struct {
	ID       uint64 `json:"assetId"`
	Name     string `json:"assetName"`
	Position int    `json:"position"`
}

// Avatar is the current appearance of a user
type Avatar struct {
	Type                string        `json:"playerAvatarType"`
	Scales              AvatarScales  `json:"scales"`
	BodyColors          BodyColors    `json:"bodyColors"`
	Assets              []AvatarAsset `json:"assets"`
	Emotes              []Emote       `json:"emotes"`
	DefaultShirtApplied bool          `json:"defaultShirtApplied"`
	DefaultPantsApplied bool          `json:"defaultPantsApplied"`
}

// Outfit is a saved avatar costume
type Outfit struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	IsEditable bool   `json:"isEditable"`
}

// Outfits is one page of saved outfits
type Outfits struct {
	Total         int      `json:"total"`
	FilteredCount int      `json:"filteredCount"`
	Outfits       []Outfit `json:"data"`
}

// Avatar returns the current appearance of a user
func (c *Client) Avatar(ctx context.Context, userID uint64) (Avatar, error) {
	var avatar Avatar
	err := c.get(ctx, "avatar", fmt.Sprintf("/v1/users/%d/avatar", userID), &avatar)
	return avatar, err
}

// Outfits returns a page of a user's saved outfits
// The endpoint is page-numbered; the cursor holds the page number
func (c *Client) Outfits(ctx context.Context, userID uint64, page Page) (Outfits, error) {
	perPage := page.Limit
	if perPage <= 0 {
		perPage = 50
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page.pageNumber(1)))
	values.Set("itemsPerPage", strconv.Itoa(perPage))

	var outfits Outfits
	path := withQuery(fmt.Sprintf("/v1/users/%d/outfits", userID), values)
	err := c.get(ctx, "avatar", path, &outfits)
	return outfits, err
}
