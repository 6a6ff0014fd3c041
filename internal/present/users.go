package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// AccountStatus gathers everything shown for one configured account
// Alias is the name the account was saved under
type AccountStatus struct {
	Alias    string
	User     api.User
	Gender   api.Gender
	Premium  bool
	Robux    int64
	Country  string
	Presence api.Presence
}

// Status renders the overview of one configured account
func Status(s AccountStatus) object.Object {
	account := object.NewBuilder().
		Add("Id", object.Uint(s.User.ID)).
		Add("Aliased name", object.String(s.Alias)).
		Add("Display name", object.String(s.User.DisplayName)).
		Add("Gender", object.Enum(s.Gender.String())).
		Add("Creation date", timestamp(s.User.Created)).
		Add("Premium", object.Bool(s.Premium)).
		Add("Robux", price(s.Robux)).
		Add("Country", object.Enum(s.Country)).
		Add("Presence", object.String(s.Presence.Type.String())).
		Build()

	return wrap("Account", account)
}

// User renders the public profile of a user
func User(user api.User, premium bool, presence api.Presence) object.Object {
	return object.NewBuilder().
		Add("User", object.String(user.Name)).
		Add("Display name", object.String(user.DisplayName)).
		Add("Creation date", timestamp(user.Created)).
		Add("Premium", object.Bool(premium)).
		Add("Presence", object.String(presence.Type.String())).
		AddIf(presence.LastLocation != "", "Location", object.String(presence.LastLocation)).
		Add("About", object.Description(user.Description)).
		Build()
}

// NameHistory renders a page of previous usernames
func NameHistory(history api.NameHistory) object.Object {
	names := make([]object.Value, len(history.Names))
	for i, name := range history.Names {
		names[i] = object.String(name)
	}

	return cursors(history.Cursors).
		Add("Names", object.Vector(names...)).
		Build()
}

// Users renders a page of friends, followers or followings under key
func Users(key string, users api.Users) object.Object {
	return cursors(users.Cursors).
		Add(key, objects(users.Users, userSummary)).
		Build()
}

func userSummary(u api.UserSummary) object.Object {
	return object.NewBuilder().
		Add("Id", object.Uint(u.ID)).
		AddIf(u.Name != "", "Name", object.String(u.Name)).
		AddIf(u.DisplayName != "", "Display name", object.String(u.DisplayName)).
		Add("Is verified", object.Bool(u.HasVerifiedBadge)).
		Build()
}

// FriendRequests renders a page of pending friend requests
func FriendRequests(requests api.FriendRequests) object.Object {
	return cursors(requests.Cursors).
		Add("Friend requests", objects(requests.Requests, friendRequest)).
		Build()
}

func friendRequest(r api.FriendRequest) object.Object {
	contact := object.String(none)
	if r.Request.ContactName != nil {
		contact = object.String(*r.Request.ContactName)
	}

	requestor := object.NewBuilder().
		Add("Id", object.Uint(r.Request.SenderID)).
		Add("Display name", object.String(r.DisplayName)).
		Add("Contact name", contact).
		Add("Universe Id", object.Uint(r.Request.SourceUniverseID)).
		Add("Sent at", timestamp(r.Request.SentAt)).
		Build()

	mutual := make([]object.Value, len(r.MutualFriends))
	for i, name := range r.MutualFriends {
		mutual[i] = object.String(name)
	}

	request := object.NewBuilder().
		Add("Requestor", object.Nested(requestor)).
		Add("Mutual friends", object.Vector(mutual...)).
		Build()

	return wrap("Friend request", request)
}

// Avatar renders the current appearance of a user
func Avatar(avatar api.Avatar) object.Object {
	scales := object.NewBuilder().
		Add("Height", object.Float(avatar.Scales.Height)).
		Add("Width", object.Float(avatar.Scales.Width)).
		Add("Head", object.Float(avatar.Scales.Head)).
		Add("Depth", object.Float(avatar.Scales.Depth)).
		Add("Proportion", object.Float(avatar.Scales.Proportion)).
		Add("Body type", object.Float(avatar.Scales.BodyType)).
		Build()

	colors := object.NewBuilder().
		Add("Head", object.Int(int64(avatar.BodyColors.Head))).
		Add("Torso", object.Int(int64(avatar.BodyColors.Torso))).
		Add("Right arm", object.Int(int64(avatar.BodyColors.RightArm))).
		Add("Left arm", object.Int(int64(avatar.BodyColors.LeftArm))).
		Add("Right leg", object.Int(int64(avatar.BodyColors.RightLeg))).
		Add("Left leg", object.Int(int64(avatar.BodyColors.LeftLeg))).
		Build()

	return object.NewBuilder().
		Add("Avatar type", object.Enum(avatar.Type)).
		Add("Default shirt", object.Bool(avatar.DefaultShirtApplied)).
		Add("Default pants", object.Bool(avatar.DefaultPantsApplied)).
		Add("Scales", object.Nested(scales)).
		Add("Body colors", object.Nested(colors)).
		Add("Assets", objects(avatar.Assets, avatarAsset)).
		Add("Emotes", objects(avatar.Emotes, emote)).
		Build()
}

func avatarAsset(a api.AvatarAsset) object.Object {
	return wrap("Asset", object.NewBuilder().
		Add("Id", object.Uint(a.ID)).
		Add("Name", object.String(a.Name)).
		Add("Kind name", object.Enum(a.Type.Name)).
		Add("Kind Id", object.Int(int64(a.Type.ID))).
		Add("Current version Id", object.Uint(a.CurrentVersionID)).
		Build())
}

func emote(e api.Emote) object.Object {
	return wrap("Emote", object.NewBuilder().
		Add("Id", object.Uint(e.ID)).
		Add("Name", object.String(e.Name)).
		Add("Position", object.Int(int64(e.Position))).
		Build())
}

// Outfits renders a page of saved outfits
func Outfits(outfits api.Outfits) object.Object {
	return object.NewBuilder().
		Add("Total", object.Int(int64(outfits.Total))).
		Add("Filtered count", object.Int(int64(outfits.FilteredCount))).
		Add("Outfits", objects(outfits.Outfits, outfit)).
		Build()
}

func outfit(o api.Outfit) object.Object {
	return wrap("Outfit", object.NewBuilder().
		Add("Id", object.Uint(o.ID)).
		Add("Name", object.String(o.Name)).
		Add("Is editable", object.Bool(o.IsEditable)).
		Build())
}
