package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Place is the detail record of a single place
type Place struct {
	ID          uint64 `json:"placeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Builder     string `json:"builder"`
	BuilderID   uint64 `json:"builderId"`
	IsPlayable  bool   `json:"isPlayable"`
	UniverseID  uint64 `json:"universeId"`
	RootPlaceID uint64 `json:"universeRootPlaceId"`
	Price       int64  `json:"price"`
}

// Votes is the like and dislike count of a universe
type Votes struct {
	UniverseID uint64 `json:"id"`
	Up         uint64 `json:"upVotes"`
	Down       uint64 `json:"downVotes"`
}

// Creator identifies who owns a game, asset or badge
type Creator struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// PlaceRef is a bare place reference
type PlaceRef struct {
	ID uint64 `json:"id"`
}

// Experience is a game created by a user or group
type Experience struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Creator     Creator   `json:"creator"`
	RootPlace   PlaceRef  `json:"rootPlace"`
	Price       int64     `json:"price"`
	PlaceVisits uint64    `json:"placeVisits"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// Experiences is one page of created games
type Experiences struct {
	Cursors
	Games []Experience `json:"data"`
}

// UniverseGamepass is a game pass listed on a universe's store page
type UniverseGamepass struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Price       *int64 `json:"price"`
	Owned       bool   `json:"isOwned"`
}

// UniverseGamepasses is one page of a universe's game passes
type UniverseGamepasses struct {
	Cursors
	Gamepasses []UniverseGamepass `json:"data"`
}

// Access filters accepted by the creations endpoints
const (
	accessFilterGroup = 1
	accessFilterUser  = 2
)

// Places returns the details of one or more places
func (c *Client) Places(ctx context.Context, ids ...uint64) ([]Place, error) {
	values := url.Values{}
	values.Set("placeIds", joinIDs(ids))

	var places []Place
	if err := c.get(ctx, "games", withQuery("/v1/games/multiget-place-details", values), &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Place returns the details of a single place
func (c *Client) Place(ctx context.Context, id uint64) (Place, error) {
	places, err := c.Places(ctx, id)
	if err != nil {
		return Place{}, err
	}
	for _, p := range places {
		if p.ID == id {
			return p, nil
		}
	}
	return Place{}, notFound("game")
}

// Votes returns the votes of a universe
func (c *Client) Votes(ctx context.Context, universeID uint64) (Votes, error) {
	values := url.Values{}
	values.Set("universeIds", strconv.FormatUint(universeID, 10))

	var response struct {
		Data []Votes `json:"data"`
	}
	if err := c.get(ctx, "games", withQuery("/v1/games/votes", values), &response); err != nil {
		return Votes{}, err
	}
	for _, v := range response.Data {
		if v.UniverseID == universeID {
			return v, nil
		}
	}
	return Votes{UniverseID: universeID}, nil
}

// FavoritesCount returns how many users favourited a universe
func (c *Client) FavoritesCount(ctx context.Context, universeID uint64) (uint64, error) {
	var response struct {
		Count uint64 `json:"favoritesCount"`
	}
	err := c.get(ctx, "games", fmt.Sprintf("/v1/games/%d/favorites/count", universeID), &response)
	return response.Count, err
}

// UserGames returns a page of games created by a user
func (c *Client) UserGames(ctx context.Context, userID uint64, page Page) (Experiences, error) {
	values := page.query()
	values.Set("accessFilter", strconv.Itoa(accessFilterUser))

	var games Experiences
	err := c.get(ctx, "games", withQuery(fmt.Sprintf("/v2/users/%d/games", userID), values), &games)
	return games, err
}

// GroupGames returns a page of games created by a group
func (c *Client) GroupGames(ctx context.Context, groupID uint64, page Page) (Experiences, error) {
	values := page.query()
	values.Set("accessFilter", strconv.Itoa(accessFilterGroup))

	var games Experiences
	err := c.get(ctx, "games", withQuery(fmt.Sprintf("/v2/groups/%d/gamesV2", groupID), values), &games)
	return games, err
}

// UniverseGamepasses returns a page of the game passes sold in a universe
func (c *Client) UniverseGamepasses(ctx context.Context, universeID uint64, page Page) (UniverseGamepasses, error) {
	var passes UniverseGamepasses
	path := withQuery(fmt.Sprintf("/v1/games/%d/game-passes", universeID), page.query())
	err := c.get(ctx, "games", path, &passes)
	return passes, err
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
