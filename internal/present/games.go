package present

import (
	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// Place renders a game with its rating and owner
func Place(place api.Place, votes api.Votes, favorites uint64) object.Object {
	rating := object.NewBuilder().
		Add("Favorites", object.Uint(favorites)).
		Add("Likes", object.Uint(votes.Up)).
		Add("Dislikes", object.Uint(votes.Down)).
		Build()

	owner := object.NewBuilder().
		Add("Id", object.Uint(place.BuilderID)).
		Add("Name", object.String(place.Builder)).
		Build()

	return object.NewBuilder().
		Add("Game", object.String(place.Name)).
		Add("Universe Id", object.Uint(place.UniverseID)).
		Add("Price", price(place.Price)).
		Add("Playable", object.Bool(place.IsPlayable)).
		Add("Rating", object.Nested(rating)).
		Add("Owner", object.Nested(owner)).
		Add("About", object.Description(place.Description)).
		Build()
}

// Experiences renders a page of games created by a user or group
func Experiences(games api.Experiences) object.Object {
	return cursors(games.Cursors).
		Add("Games", objects(games.Games, experience)).
		Build()
}

func experience(game api.Experience) object.Object {
	rootPlace := object.NewBuilder().
		Add("Id", object.Uint(game.RootPlace.ID)).
		Build()

	return wrap("Creation", object.NewBuilder().
		Add("Id", object.Uint(game.ID)).
		Add("Name", object.String(game.Name)).
		Add("Root place", object.Nested(rootPlace)).
		Add("Price", price(game.Price)).
		Add("Visits", object.Uint(game.PlaceVisits)).
		Add("Creation date", timestamp(game.Created)).
		Add("Last updated", timestamp(game.Updated)).
		Add("About", object.Description(game.Description)).
		Build())
}

// Gamepass renders the details of a game pass
func Gamepass(pass api.Gamepass) object.Object {
	return wrap("Gamepass", object.NewBuilder().
		Add("Id", object.Uint(pass.ID)).
		Add("Name", object.String(pass.Name)).
		Add("On sale", object.Bool(pass.IsForSale)).
		Add("Price", price(pass.PriceInRobux())).
		Add("Place Id", object.Uint(pass.PlaceID)).
		Add("Icon image Id", object.Uint(pass.IconAssetID)).
		Add("Creation date", timestamp(pass.Created)).
		Add("Last updated", timestamp(pass.Updated)).
		Add("Description", object.Description(pass.Description)).
		Build())
}

// UniverseGamepasses renders a page of the game passes sold in a game
func UniverseGamepasses(passes api.UniverseGamepasses) object.Object {
	return cursors(passes.Cursors).
		Add("Gamepasses", objects(passes.Gamepasses, universeGamepass)).
		Build()
}

func universeGamepass(pass api.UniverseGamepass) object.Object {
	return wrap("Gamepass", object.NewBuilder().
		Add("Id", object.Uint(pass.ID)).
		Add("Name", object.String(pass.Name)).
		Add("Display name", object.String(pass.DisplayName)).
		Add("Price", optionalPrice(pass.Price)).
		Add("Owned", object.Bool(pass.Owned)).
		Build())
}

// OwnedGamepasses renders the game passes a user owns
func OwnedGamepasses(passes []api.OwnedGamepass) object.Object {
	return object.NewBuilder().
		Add("Gamepasses", objects(passes, ownedGamepass)).
		Build()
}

func ownedGamepass(pass api.OwnedGamepass) object.Object {
	creator := object.NewBuilder().
		Add("Id", object.Uint(pass.Creator.ID)).
		Add("Name", object.String(pass.Creator.Name)).
		AddIf(pass.Creator.Type != "", "Kind", object.Enum(pass.Creator.Type)).
		Build()

	return wrap("Gamepass", object.NewBuilder().
		Add("Id", object.Uint(pass.ID)).
		Add("Name", object.String(pass.Name)).
		Add("On sale", object.Bool(pass.IsForSale)).
		Add("Price", optionalPrice(pass.Price)).
		Add("Creator", object.Nested(creator)).
		Add("About", object.Description(pass.Description)).
		Build())
}
