package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// UserSummary is the short user record returned by social listings
type UserSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// Users is one page of users
type Users struct {
	Cursors
	Users []UserSummary `json:"data"`
}

// FriendRequester describes who sent a friend request and from where
type FriendRequester struct {
	SentAt           time.Time `json:"sentAt"`
	SenderID         uint64    `json:"senderId"`
	SourceUniverseID uint64    `json:"sourceUniverseId"`
	OriginSource     string    `json:"originSourceType"`
	ContactName      *string   `json:"contactName"`
}

// FriendRequest is a pending incoming friend request
type FriendRequest struct {
	UserSummary
	Request       FriendRequester `json:"friendRequest"`
	MutualFriends []string        `json:"mutualFriendsList"`
}

// FriendRequests is one page of pending friend requests
type FriendRequests struct {
	Cursors
	Requests []FriendRequest `json:"data"`
}

// Followers returns a page of the users following a user
func (c *Client) Followers(ctx context.Context, userID uint64, page Page) (Users, error) {
	var users Users
	path := withQuery(fmt.Sprintf("/v1/users/%d/followers", userID), page.query())
	err := c.get(ctx, "friends", path, &users)
	return users, err
}

// Followings returns a page of the users a user follows
func (c *Client) Followings(ctx context.Context, userID uint64, page Page) (Users, error) {
	var users Users
	path := withQuery(fmt.Sprintf("/v1/users/%d/followings", userID), page.query())
	err := c.get(ctx, "friends", path, &users)
	return users, err
}

// Friends returns a page of a user's friends
// This endpoint uses its own cursor field names, normalised here
func (c *Client) Friends(ctx context.Context, userID uint64, page Page) (Users, error) {
	values := url.Values{}
	if limit := page.normalizedLimit(); limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if page.Cursor != "" {
		values.Set("cursor", page.Cursor)
	}

	var response struct {
		PreviousCursor string        `json:"PreviousCursor"`
		NextCursor     string        `json:"NextCursor"`
		PageItems      []UserSummary `json:"PageItems"`
	}
	path := withQuery(fmt.Sprintf("/v1/users/%d/friends/find", userID), values)
	if err := c.get(ctx, "friends", path, &response); err != nil {
		return Users{}, err
	}

	return Users{
		Cursors: Cursors{Next: response.NextCursor, Previous: response.PreviousCursor},
		Users:   response.PageItems,
	}, nil
}

// FriendRequests returns a page of the session's pending friend requests
func (c *Client) FriendRequests(ctx context.Context, page Page) (FriendRequests, error) {
	var requests FriendRequests
	err := c.get(ctx, "friends", withQuery("/v1/my/friends/requests", page.query()), &requests)
	return requests, err
}

// FriendCount returns how many friends a user has
func (c *Client) FriendCount(ctx context.Context, userID uint64) (uint64, error) {
	var response struct {
		Count uint64 `json:"count"`
	}
	err := c.get(ctx, "friends", fmt.Sprintf("/v1/users/%d/friends/count", userID), &response)
	return response.Count, err
}
