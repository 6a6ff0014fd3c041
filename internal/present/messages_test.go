package present

import (
	"testing"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T {
	return &v
}

func fieldKeys(obj object.Object) []string {
	keys := make([]string, obj.Len())
	for i, f := range obj.Fields() {
		keys[i] = f.Key
	}
	return keys
}

// first returns the object wrapped by the first element of the vector at key
func first(t *testing.T, obj object.Object, key string) object.Object {
	t.Helper()
	f, ok := obj.Lookup(key)
	if !ok || f.Value.Len() == 0 {
		t.Fatalf("%s missing or empty", key)
	}
	wrapper, ok := f.Value.Items()[0].AsObject()
	if !ok {
		t.Fatalf("%s element is not an object", key)
	}
	inner, ok := wrapper.Field(0).Value.AsObject()
	if !ok {
		t.Fatalf("%s element does not wrap an object", key)
	}
	return inner
}

func TestMessages(t *testing.T) {
	obj := Messages(api.PrivateMessages{
		PageNumber:          0,
		TotalPages:          3,
		TotalCollectionSize: 41,
		Messages: []api.PrivateMessage{{
			ID:        77,
			Subject:   "Hello",
			Sender:    api.UserSummary{ID: 1, Name: "roblox", DisplayName: "Roblox", HasVerifiedBadge: true},
			Recipient: api.UserSummary{ID: 156, Name: "builderman"},
			Body:      "Welcome",
			Created:   created,
			Updated:   created,
		}},
	})

	if diff := cmp.Diff([]string{"Current page", "Total pages", "Total collection size", "Messages"}, fieldKeys(obj)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	message := first(t, obj, "Messages")
	want := []string{"Id", "Subject", "Sender", "Recipient", "Is read", "Is system message", "Content", "Creation date", "Last updated"}
	if diff := cmp.Diff(want, fieldKeys(message)); diff != "" {
		t.Errorf("message keys mismatch (-want +got):\n%s", diff)
	}

	content, _ := message.Lookup("Content")
	if content.Style() != object.StyleDescription {
		t.Errorf("Content style = %v, want Description", content.Style())
	}

	sender, _ := message.Lookup("Sender")
	party, ok := sender.Value.AsObject()
	if !ok {
		t.Fatal("Sender is not an object")
	}
	if diff := cmp.Diff([]string{"Id", "Name", "Display name", "Is verified"}, fieldKeys(party)); diff != "" {
		t.Errorf("sender keys mismatch (-want +got):\n%s", diff)
	}
	verified, _ := party.Lookup("Is verified")
	if b, _ := verified.Value.AsBool(); !b {
		t.Error("sender should be verified")
	}
}

func TestConversations(t *testing.T) {
	obj := Conversations(api.Conversations{
		Cursors: api.Cursors{Next: "c2"},
		Conversations: []api.Conversation{{
			Name:         "Squad",
			Source:       "friends",
			Participants: []uint64{1, 2},
			Messages: []api.ChatMessage{
				{ID: "m1", Content: "hi", Type: "text", SenderID: 1},
				{ID: "m2", Content: "gg", Type: "text", SenderID: 2, IsDeleted: true},
			},
		}},
	})

	if diff := cmp.Diff([]string{"Next cursor", "Previous cursor", "Conversations"}, fieldKeys(obj)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	conversation := first(t, obj, "Conversations")

	id, _ := conversation.Lookup("Id")
	if text, _ := id.Value.AsString(); text != "None" {
		t.Errorf("Id = %q, want None", text)
	}
	creator, _ := conversation.Lookup("Creator Id")
	if text, _ := creator.Value.AsString(); text != "0" {
		t.Errorf("Creator Id = %q, want 0", text)
	}

	participants, _ := conversation.Lookup("Participants")
	if participants.Value.Kind() != object.KindVector || participants.Value.Len() != 2 {
		t.Errorf("Participants = %v, want vector of 2", participants.Value)
	}

	message := first(t, conversation, "Messages")
	if diff := cmp.Diff([]string{"Id", "Content", "Kind", "Sent by", "Is deleted", "Creation date"}, fieldKeys(message)); diff != "" {
		t.Errorf("message keys mismatch (-want +got):\n%s", diff)
	}

	messages, _ := conversation.Lookup("Messages")
	if messages.Value.Len() != 2 {
		t.Errorf("len(Messages) = %d, want 2", messages.Value.Len())
	}
}

func TestConversations_Identified(t *testing.T) {
	obj := Conversations(api.Conversations{Conversations: []api.Conversation{{
		ID:        ptr("conv-1"),
		CreatorID: ptr(uint64(156)),
	}}})
	conversation := first(t, obj, "Conversations")

	tests := []struct {
		key  string
		want string
	}{
		{"Id", "conv-1"},
		{"Creator Id", "156"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, _ := conversation.Lookup(tt.key)
			if text, _ := f.Value.AsString(); text != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, text, tt.want)
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	obj := Notifications([]api.Notification{{
		ID:         "n1",
		EventDate:  created,
		Timestamp:  "2 hours ago",
		EventCount: 1,
		Content:    api.NotificationContent{Type: "FriendRequestReceived", State: "Unread"},
	}})

	want := "* Notifications: [(Notification: {\n" +
		"  * Id: n1\n" +
		"  * Event date: 2006-02-27 21:06:40 UTC\n" +
		"  * Since: 2 hours ago\n" +
		"  * Interacted with: No\n" +
		"  * Event count: 1\n" +
		"  * Content: {\n" +
		"    * Notification type: FriendRequestReceived\n" +
		"    * Current state: Unread\n" +
		"    * Content: None\n" +
		"  }\n" +
		"}),\n" +
		"]\n"

	if diff := cmp.Diff(want, render(obj)); diff != "" {
		t.Errorf("Notifications() mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifications_InvitationPayload(t *testing.T) {
	obj := Notifications([]api.Notification{{
		ID: "n2",
		Content: api.NotificationContent{
			Type: api.NotificationTypeExperienceInvitation,
			Payload: api.InvitationPayload{
				SenderUserID: ptr("5"),
				UniverseID:   ptr("99"),
				PlaceID:      ptr("1818"),
			},
		},
	}})

	notification := first(t, obj, "Notifications")
	content, _ := notification.Lookup("Content")
	inner, _ := content.Value.AsObject()
	payloadField, _ := inner.Lookup("Content")
	payload, ok := payloadField.Value.AsObject()
	if !ok {
		t.Fatal("invitation payload is not an object")
	}

	got := map[string]string{}
	for _, f := range payload.Fields() {
		got[f.Key], _ = f.Value.AsString()
	}
	want := map[string]string{
		"Sender Id":     "5",
		"Universe Id":   "99",
		"Place Id":      "1818",
		"Root place Id": "None",
		"Trigger":       "None",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}
