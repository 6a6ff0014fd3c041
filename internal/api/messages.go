package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MessageTab is a private message folder
type MessageTab string

const (
	MessageTabInbox   MessageTab = "Inbox"
	MessageTabSent    MessageTab = "Sent"
	MessageTabNews    MessageTab = "News"
	MessageTabArchive MessageTab = "Archive"
)

var messageTabs = []MessageTab{MessageTabInbox, MessageTabSent, MessageTabNews, MessageTabArchive}

// ParseMessageTab accepts a folder name in any case
func ParseMessageTab(s string) (MessageTab, bool) {
	for _, tab := range messageTabs {
		if strings.EqualFold(strings.TrimSpace(s), string(tab)) {
			return tab, true
		}
	}
	return "", false
}

// PrivateMessage is one message of the legacy private message service
type PrivateMessage struct {
	ID              uint64      `json:"id"`
	Sender          UserSummary `json:"sender"`
	Recipient       UserSummary `json:"recipient"`
	Subject         string      `json:"subject"`
	Body            string      `json:"body"`
	Created         time.Time   `json:"created"`
	Updated         time.Time   `json:"updated"`
	IsRead          bool        `json:"isRead"`
	IsSystemMessage bool        `json:"isSystemMessage"`
}

// PrivateMessages is one numbered page of a message folder
type PrivateMessages struct {
	Messages            []PrivateMessage `json:"collection"`
	TotalCollectionSize int              `json:"totalCollectionSize"`
	TotalPages          int              `json:"totalPages"`
	PageNumber          int              `json:"pageNumber"`
}

// ChatMessage is one message of a chat conversation
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	SenderID  uint64    `json:"sender_user_id"`
	IsDeleted bool      `json:"is_deleted"`
	Created   time.Time `json:"created_at"`
}

// Conversation is a chat conversation with its most recent messages
type Conversation struct {
	ID             *string       `json:"id"`
	Name           string        `json:"name"`
	Source         string        `json:"source"`
	CreatorID      *uint64       `json:"created_by"`
	Created        time.Time     `json:"created_at"`
	Updated        time.Time     `json:"updated_at"`
	Participants   []uint64      `json:"participant_user_ids"`
	UnreadMessages int           `json:"unread_message_count"`
	Messages       []ChatMessage `json:"messages"`
}

// Conversations is one page of chat conversations
type Conversations struct {
	Cursors
	Conversations []Conversation
}

// InvitationPayload carries the game an experience invitation points at
// Every field is optional
type InvitationPayload struct {
	SenderUserID *string `json:"senderUserId"`
	UniverseID   *string `json:"universeId"`
	PlaceID      *string `json:"placeId"`
	RootPlaceID  *string `json:"rootPlaceId"`
	Trigger      *string `json:"trigger"`
}

// NotificationContent describes what a notification is about
type NotificationContent struct {
	Type    string            `json:"notificationType"`
	State   string            `json:"currentState"`
	Payload InvitationPayload `json:"clientEventsPayload"`
}

// NotificationTypeExperienceInvitation is the only type whose payload is shown
const NotificationTypeExperienceInvitation = "ExperienceInvitation"

// Notification is one entry of the notification stream
type Notification struct {
	ID           string              `json:"id"`
	EventDate    time.Time           `json:"eventDate"`
	Timestamp    string              `json:"timestamp"`
	IsInteracted bool                `json:"isInteracted"`
	EventCount   int                 `json:"eventCount"`
	Content      NotificationContent `json:"content"`
}

// Messages returns a numbered page of a private message folder
// The cursor holds the page number, starting at 0
func (c *Client) Messages(ctx context.Context, tab MessageTab, page Page) (PrivateMessages, error) {
	size := page.Limit
	if size <= 0 {
		size = 20
	}

	values := url.Values{}
	values.Set("messageTab", string(tab))
	values.Set("pageNumber", strconv.Itoa(page.pageNumber(0)))
	values.Set("pageSize", strconv.Itoa(size))

	var messages PrivateMessages
	err := c.get(ctx, "privatemessages", withQuery("/v1/messages", values), &messages)
	return messages, err
}

// Conversations returns a page of the session's chat conversations
// This endpoint uses its own cursor field names, normalised here
func (c *Client) Conversations(ctx context.Context, page Page) (Conversations, error) {
	values := url.Values{}
	if page.Limit > 0 {
		values.Set("pageSize", strconv.Itoa(page.Limit))
	}
	if page.Cursor != "" {
		values.Set("cursor", page.Cursor)
	}

	var response struct {
		Conversations  []Conversation `json:"conversations"`
		NextCursor     string         `json:"next_cursor"`
		PreviousCursor string         `json:"previous_cursor"`
	}
	path := withQuery("/platform-chat-api/v1/get-user-conversations", values)
	if err := c.get(ctx, "apis", path, &response); err != nil {
		return Conversations{}, err
	}

	return Conversations{
		Cursors:       Cursors{Next: response.NextCursor, Previous: response.PreviousCursor},
		Conversations: response.Conversations,
	}, nil
}

// RecentNotifications returns the latest entries of the notification stream
// The cursor holds the index of the first entry, starting at 0
func (c *Client) RecentNotifications(ctx context.Context, page Page) ([]Notification, error) {
	rows := page.Limit
	if rows <= 0 {
		rows = 20
	}

	values := url.Values{}
	values.Set("startIndex", strconv.Itoa(page.pageNumber(0)))
	values.Set("maxRows", strconv.Itoa(rows))

	var notifications []Notification
	err := c.get(ctx, "notifications", withQuery("/v2/stream-notifications/get-recent", values), &notifications)
	return notifications, err
}
