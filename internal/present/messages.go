package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// Messages renders a page of a private message folder
func Messages(messages api.PrivateMessages) object.Object {
	return object.NewBuilder().
		Add("Current page", object.Int(int64(messages.PageNumber))).
		Add("Total pages", object.Int(int64(messages.TotalPages))).
		Add("Total collection size", object.Int(int64(messages.TotalCollectionSize))).
		Add("Messages", objects(messages.Messages, privateMessage)).
		Build()
}

func privateMessage(m api.PrivateMessage) object.Object {
	return wrap("Message", object.NewBuilder().
		Add("Id", object.Uint(m.ID)).
		Add("Subject", object.String(m.Subject)).
		Add("Sender", object.Nested(messageParty(m.Sender))).
		Add("Recipient", object.Nested(messageParty(m.Recipient))).
		Add("Is read", object.Bool(m.IsRead)).
		Add("Is system message", object.Bool(m.IsSystemMessage)).
		Add("Content", object.Description(m.Body)).
		Add("Creation date", timestamp(m.Created)).
		Add("Last updated", timestamp(m.Updated)).
		Build())
}

func messageParty(u api.UserSummary) object.Object {
	return object.NewBuilder().
		Add("Id", object.Uint(u.ID)).
		Add("Name", object.String(u.Name)).
		Add("Display name", object.String(u.DisplayName)).
		Add("Is verified", object.Bool(u.HasVerifiedBadge)).
		Build()
}

// Conversations renders a page of chat conversations with their messages
func Conversations(conversations api.Conversations) object.Object {
	return cursors(conversations.Cursors).
		Add("Conversations", objects(conversations.Conversations, conversation)).
		Build()
}

func conversation(c api.Conversation) object.Object {
	id := none
	if c.ID != nil {
		id = *c.ID
	}
	var creator uint64
	if c.CreatorID != nil {
		creator = *c.CreatorID
	}

	participants := make([]object.Value, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = object.Uint(p)
	}

	return wrap("Conversation", object.NewBuilder().
		Add("Id", object.String(id)).
		Add("Name", object.String(c.Name)).
		Add("Source", object.Enum(c.Source)).
		Add("Creator Id", object.Uint(creator)).
		Add("Creation date", timestamp(c.Created)).
		Add("Last updated", timestamp(c.Updated)).
		Add("Participants", object.Vector(participants...)).
		Add("Unread message count", object.Int(int64(c.UnreadMessages))).
		Add("Messages", objects(c.Messages, chatMessage)).
		Build())
}

func chatMessage(m api.ChatMessage) object.Object {
	return wrap("Message", object.NewBuilder().
		Add("Id", object.String(m.ID)).
		Add("Content", object.Description(m.Content)).
		Add("Kind", object.Enum(m.Type)).
		Add("Sent by", object.Uint(m.SenderID)).
		Add("Is deleted", object.Bool(m.IsDeleted)).
		Add("Creation date", timestamp(m.Created)).
		Build())
}

// Notifications renders the latest entries of the notification stream
// Only experience invitations carry a payload; other types show None
func Notifications(notifications []api.Notification) object.Object {
	return object.NewBuilder().
		Add("Notifications", objects(notifications, notification)).
		Build()
}

func notification(n api.Notification) object.Object {
	payload := object.String(none)
	if n.Content.Type == api.NotificationTypeExperienceInvitation {
		payload = object.Nested(invitation(n.Content.Payload))
	}

	content := object.NewBuilder().
		Add("Notification type", object.Enum(n.Content.Type)).
		Add("Current state", object.Enum(n.Content.State)).
		Add("Content", payload).
		Build()

	return wrap("Notification", object.NewBuilder().
		Add("Id", object.String(n.ID)).
		Add("Event date", timestamp(n.EventDate)).
		Add("Since", object.String(n.Timestamp)).
		Add("Interacted with", object.Bool(n.IsInteracted)).
		Add("Event count", object.Int(int64(n.EventCount))).
		Add("Content", object.Nested(content)).
		Build())
}

func invitation(p api.InvitationPayload) object.Object {
	return object.NewBuilder().
		Add("Sender Id", optionalString(p.SenderUserID)).
		Add("Universe Id", optionalString(p.UniverseID)).
		Add("Place Id", optionalString(p.PlaceID)).
		Add("Root place Id", optionalString(p.RootPlaceID)).
		Add("Trigger", optionalString(p.Trigger)).
		Build()
}

// optionalString renders a missing string as None
func optionalString(s *string) object.Value {
	if s == nil {
		return object.String(none)
	}
	return object.String(*s)
}
