package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// Group renders the public information of a group
func Group(group api.Group) object.Object {
	return groupBuilder(group).Build()
}

func groupBuilder(group api.Group) *object.Builder {
	owner := object.String(none)
	if group.Owner != nil {
		owner = object.Nested(groupUser(*group.Owner))
	}

	shout := object.String(none)
	if group.Shout != nil {
		shout = object.Nested(object.NewBuilder().
			Add("Content", object.Description(group.Shout.Body)).
			Add("Poster", object.Nested(groupUser(group.Shout.Poster))).
			Add("Posted at", timestamp(group.Shout.Created)).
			Add("Updated at", timestamp(group.Shout.Updated)).
			Build())
	}

	return object.NewBuilder().
		Add("Group", object.String(group.Name)).
		Add("Members", object.Uint(group.MemberCount)).
		Add("Public", object.Bool(group.PublicEntryAllowed)).
		Add("Premium only", object.Bool(group.IsBuildersClubOnly)).
		Add("Owner", owner).
		Add("Shout", shout).
		Add("About", object.Description(group.Description))
}

func groupUser(u api.GroupUser) object.Object {
	return object.NewBuilder().
		Add("Id", object.Uint(u.ID)).
		Add("Name", object.String(u.Name)).
		Add("Display name", object.String(u.DisplayName)).
		Build()
}

// Groups renders every group a user is in together with their role
func Groups(memberships []api.Membership) object.Object {
	return object.NewBuilder().
		Add("Groups", objects(memberships, membership)).
		Build()
}

func membership(m api.Membership) object.Object {
	role := object.NewBuilder().
		Add("Id", object.Uint(m.Role.ID)).
		Add("Name", object.String(m.Role.Name)).
		Add("Rank", object.Int(int64(m.Role.Rank))).
		Build()

	return groupBuilder(m.Group).
		Add("Role", object.Nested(role)).
		Build()
}

// GroupNameHistory renders a page of a group's previous names with the
// date each one was set
func GroupNameHistory(history api.GroupNameHistory) object.Object {
	names := make([]object.Value, len(history.Names))
	dates := make([]object.Value, len(history.Names))
	for i, entry := range history.Names {
		names[i] = object.String(entry.Name)
		dates[i] = timestamp(entry.Created)
	}

	return cursors(history.Cursors).
		Add("Names", object.Vector(names...)).
		Add("Dates", object.Vector(dates...)).
		Build()
}
