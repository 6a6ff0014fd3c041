package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// Badge renders a badge with its statistics and the optional creator,
// awarder and universe blocks
func Badge(badge api.Badge) object.Object {
	statistics := object.NewBuilder().
		Add("Rewarded today", object.Uint(badge.Statistics.AwardedToday)).
		Add("Rewarded in total", object.Uint(badge.Statistics.AwardedTotal)).
		Add("Rarity", object.Float(badge.Statistics.WinRatePercent)).
		Build()

	creator := object.String(none)
	if badge.Creator != nil {
		creator = object.Nested(object.NewBuilder().
			Add("Id", object.Uint(badge.Creator.ID)).
			Add("Name", object.String(badge.Creator.Name)).
			Add("Kind", object.Enum(badge.Creator.Type)).
			Build())
	}

	awarder := object.String(none)
	if badge.Awarder != nil {
		awarder = object.Nested(object.NewBuilder().
			Add("Id", object.Uint(badge.Awarder.ID)).
			Add("Kind", object.Enum(badge.Awarder.Type)).
			Build())
	}

	universe := object.String(none)
	if badge.Universe != nil {
		universe = object.Nested(object.NewBuilder().
			Add("Id", object.Uint(badge.Universe.ID)).
			Add("Name", object.String(badge.Universe.Name)).
			Add("Root place Id", object.Uint(badge.Universe.RootPlaceID)).
			Build())
	}

	return wrap("Badge", object.NewBuilder().
		Add("Id", object.Uint(badge.ID)).
		Add("Name", object.String(badge.Name)).
		Add("Display name", object.String(badge.DisplayName)).
		Add("Achievable", object.Bool(badge.Enabled)).
		Add("Icon image Id", object.Uint(badge.IconImageID)).
		Add("Creation date", timestamp(badge.Created)).
		Add("Last updated", timestamp(badge.Updated)).
		Add("Description", object.Description(badge.Description)).
		Add("Statistics", object.Nested(statistics)).
		Add("Creator", creator).
		Add("Awarder", awarder).
		Add("Universe", universe).
		Build())
}

// Badges renders a page of badges
func Badges(badges api.Badges) object.Object {
	return cursors(badges.Cursors).
		Add("Badges", objects(badges.Badges, Badge)).
		Build()
}
