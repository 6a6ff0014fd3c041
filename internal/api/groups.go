package api

import (
	"context"
	"fmt"
	"time"
)

// GroupUser is a user reference embedded in group responses
type GroupUser struct {
	ID          uint64 `json:"userId"`
	Name        string `json:"username"`
	DisplayName string `json:"displayName"`
}

// Shout is the status message pinned to a group
type Shout struct {
	Body    string    `json:"body"`
	Poster  GroupUser `json:"poster"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Group is the public information of a group
// Owner and Shout are nil when the group has none
type Group struct {
	ID                 uint64     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Owner              *GroupUser `json:"owner"`
	Shout              *Shout     `json:"shout"`
	MemberCount        uint64     `json:"memberCount"`
	IsBuildersClubOnly bool       `json:"isBuildersClubOnly"`
	PublicEntryAllowed bool       `json:"publicEntryAllowed"`
	HasVerifiedBadge   bool       `json:"hasVerifiedBadge"`
}

// Role is a member's rank inside a group
type Role struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// Membership pairs a group with the user's role in it
type Membership struct {
	Group Group `json:"group"`
	Role  Role  `json:"role"`
}

// GroupName is one entry of a group's name history
type GroupName struct {
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

// GroupNameHistory is one page of a group's previous names
type GroupNameHistory struct {
	Cursors
	Names []GroupName `json:"data"`
}

// Group returns the public information of a group
func (c *Client) Group(ctx context.Context, id uint64) (Group, error) {
	var group Group
	err := c.get(ctx, "groups", fmt.Sprintf("/v1/groups/%d", id), &group)
	return group, err
}

// UserGroups returns every group a user is in with their role
func (c *Client) UserGroups(ctx context.Context, userID uint64) ([]Membership, error) {
	var response struct {
		Data []Membership `json:"data"`
	}
	if err := c.get(ctx, "groups", fmt.Sprintf("/v1/users/%d/groups/roles", userID), &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GroupNameHistory returns a page of a group's previous names
func (c *Client) GroupNameHistory(ctx context.Context, id uint64, page Page) (GroupNameHistory, error) {
	var history GroupNameHistory
	path := withQuery(fmt.Sprintf("/v1/groups/%d/name-history", id), page.query())
	err := c.get(ctx, "groups", path, &history)
	return history, err
}

// JoinGroup joins a group, or files a join request for private groups
func (c *Client) JoinGroup(ctx context.Context, id uint64) error {
	return c.post(ctx, "groups", fmt.Sprintf("/v1/groups/%d/users", id), struct{}{}, nil)
}
