// Package present turns API responses into object trees for the output package
//
// Every function is pure: it reads the response it is given and returns an
// object.Object with the labels, styles and nesting shown to the user.
package present

import (
	"strconv"
	"time"

	"github.com/aryankumar/blox/internal/api"
	"github.com/aryankumar/blox/internal/object"
)

// none is shown in place of an optional block the response did not carry
const none = "None"

// timeLayout renders timestamps in UTC with a zone suffix
const timeLayout = "2006-01-02 15:04:05 MST"

// timestamp formats t, or "Unknown" for the zero time
func timestamp(t time.Time) object.Value {
	if t.IsZero() {
		return object.String("Unknown")
	}
	return object.String(t.UTC().Format(timeLayout))
}

// price renders a Robux amount with the currency suffix
func price(n int64) object.Value {
	return object.Price(strconv.FormatInt(n, 10))
}

// optionalPrice renders a missing price as 0
func optionalPrice(n *int64) object.Value {
	if n == nil {
		return price(0)
	}
	return price(*n)
}

// cursors returns a builder holding the page cursors of a listing
func cursors(c api.Cursors) *object.Builder {
	return object.NewBuilder().
		Add("Next cursor", object.String(c.Next)).
		Add("Previous cursor", object.String(c.Previous))
}

// wrap returns an object with a single field holding inner
func wrap(key string, inner object.Object) object.Object {
	return object.NewBuilder().Add(key, object.Nested(inner)).Build()
}

// objects converts each item with fn into a vector of nested objects
func objects[T any](items []T, fn func(T) object.Object) object.Value {
	values := make([]object.Value, len(items))
	for i, item := range items {
		values[i] = object.Nested(fn(item))
	}
	return object.Vector(values...)
}
