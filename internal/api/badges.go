package api

import (
	"context"
	"fmt"
	"time"
)

// BadgeStatistics is how often a badge has been awarded
type BadgeStatistics struct {
	AwardedToday   uint64  `json:"pastDayAwardedCount"`
	AwardedTotal   uint64  `json:"awardedCount"`
	WinRatePercent float64 `json:"winRatePercentage"`
}

// BadgeAwarder is the entity that hands a badge out
type BadgeAwarder struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
}

// BadgeUniverse is the game a badge belongs to
type BadgeUniverse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	RootPlaceID uint64 `json:"rootPlaceId"`
}

// Badge is the information of a badge
// Creator, Awarder and Universe are nil when the endpoint omits them
type Badge struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
	IconImageID uint64          `json:"iconImageId"`
	Created     time.Time       `json:"created"`
	Updated     time.Time       `json:"updated"`
	Statistics  BadgeStatistics `json:"statistics"`
	Creator     *Creator        `json:"creator"`
	Awarder     *BadgeAwarder   `json:"awarder"`
	Universe    *BadgeUniverse  `json:"awardingUniverse"`
}

// Badges is one page of badges
type Badges struct {
	Cursors
	Badges []Badge `json:"data"`
}

// Badge returns the information of a badge
func (c *Client) Badge(ctx context.Context, id uint64) (Badge, error) {
	var badge Badge
	err := c.get(ctx, "badges", fmt.Sprintf("/v1/badges/%d", id), &badge)
	return badge, err
}

// UserBadges returns a page of the badges a user has been awarded
func (c *Client) UserBadges(ctx context.Context, userID uint64, page Page) (Badges, error) {
	var badges Badges
	path := withQuery(fmt.Sprintf("/v1/users/%d/badges", userID), page.query())
	err := c.get(ctx, "badges", path, &badges)
	return badges, err
}

// UniverseBadges returns a page of the badges a universe awards
func (c *Client) UniverseBadges(ctx context.Context, universeID uint64, page Page) (Badges, error) {
	var badges Badges
	path := withQuery(fmt.Sprintf("/v1/universes/%d/badges", universeID), page.query())
	err := c.get(ctx, "badges", path, &badges)
	return badges, err
}
