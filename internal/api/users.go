package api

import (
	"context"
	"fmt"
	"time"
)

// AuthenticatedUser is the account the session cookie belongs to
type AuthenticatedUser struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// User is the public profile of a user
type User struct {
	ID               uint64    `json:"id"`
	Name             string    `json:"name"`
	DisplayName      string    `json:"displayName"`
	Description      string    `json:"description"`
	Created          time.Time `json:"created"`
	IsBanned         bool      `json:"isBanned"`
	HasVerifiedBadge bool      `json:"hasVerifiedBadge"`
}

// Gender of the authenticated account
type Gender int

const (
	GenderUnknown Gender = 1
	GenderMale    Gender = 2
	GenderFemale  Gender = 3
)

// String returns the gender name
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// PresenceType is the online state of a user
type PresenceType int

const (
	PresenceOffline PresenceType = iota
	PresenceOnline
	PresenceInGame
	PresenceInStudio
	PresenceInvisible
)

// String returns the presence name
func (p PresenceType) String() string {
	switch p {
	case PresenceOnline:
		return "Online"
	case PresenceInGame:
		return "InGame"
	case PresenceInStudio:
		return "InStudio"
	case PresenceInvisible:
		return "Invisible"
	default:
		return "Offline"
	}
}

// Presence is the online state of one user
type Presence struct {
	UserID       uint64       `json:"userId"`
	Type         PresenceType `json:"userPresenceType"`
	LastLocation string       `json:"lastLocation"`
	PlaceID      uint64       `json:"placeId"`
	UniverseID   uint64       `json:"universeId"`
	GameID       string       `json:"gameId"`
}

// NameHistory is one page of a user's previous usernames
type NameHistory struct {
	Cursors
	Names []string
}

// AuthenticatedUser returns the account the session belongs to
func (c *Client) AuthenticatedUser(ctx context.Context) (AuthenticatedUser, error) {
	var user AuthenticatedUser
	err := c.get(ctx, "users", "/v1/users/authenticated", &user)
	return user, err
}

// User returns the public profile of a user
func (c *Client) User(ctx context.Context, id uint64) (User, error) {
	var user User
	err := c.get(ctx, "users", fmt.Sprintf("/v1/users/%d", id), &user)
	return user, err
}

// Gender returns the gender set on the authenticated account
func (c *Client) Gender(ctx context.Context) (Gender, error) {
	var response struct {
		Gender Gender `json:"gender"`
	}
	err := c.get(ctx, "users", "/v1/gender", &response)
	return response.Gender, err
}

// CountryCode returns the country code of the authenticated account
func (c *Client) CountryCode(ctx context.Context) (string, error) {
	var response struct {
		CountryCode string `json:"countryCode"`
	}
	err := c.get(ctx, "users", "/v1/users/authenticated/country-code", &response)
	return response.CountryCode, err
}

// NameHistory returns a page of a user's previous usernames
func (c *Client) NameHistory(ctx context.Context, id uint64, page Page) (NameHistory, error) {
	var response struct {
		Cursors
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}

	path := withQuery(fmt.Sprintf("/v1/users/%d/username-history", id), page.query())
	if err := c.get(ctx, "users", path, &response); err != nil {
		return NameHistory{}, err
	}

	history := NameHistory{Cursors: response.Cursors, Names: make([]string, 0, len(response.Data))}
	for _, entry := range response.Data {
		history.Names = append(history.Names, entry.Name)
	}
	return history, nil
}

// IsPremium reports whether a user has a premium membership
func (c *Client) IsPremium(ctx context.Context, id uint64) (bool, error) {
	var premium bool
	err := c.get(ctx, "premiumfeatures", fmt.Sprintf("/v1/users/%d/validate-membership", id), &premium)
	return premium, err
}

// Presences returns the online state of up to 50 users
func (c *Client) Presences(ctx context.Context, ids ...uint64) ([]Presence, error) {
	request := struct {
		UserIDs []uint64 `json:"userIds"`
	}{UserIDs: ids}

	var response struct {
		UserPresences []Presence `json:"userPresences"`
	}
	if err := c.post(ctx, "presence", "/v1/presence/users", request, &response); err != nil {
		return nil, err
	}
	return response.UserPresences, nil
}

// Presence returns the online state of a single user
func (c *Client) Presence(ctx context.Context, id uint64) (Presence, error) {
	presences, err := c.Presences(ctx, id)
	if err != nil {
		return Presence{}, err
	}
	for _, p := range presences {
		if p.UserID == id {
			return p, nil
		}
	}
	return Presence{UserID: id, Type: PresenceOffline}, nil
}

// Robux returns the currency balance of the authenticated account
func (c *Client) Robux(ctx context.Context) (int64, error) {
	var response struct {
		Robux int64 `json:"robux"`
	}
	err := c.get(ctx, "economy", "/v1/user/currency", &response)
	return response.Robux, err
}
