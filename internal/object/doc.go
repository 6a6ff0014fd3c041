// Package object provides the schema-free tree that every command prints.
//
// A tree is made of Objects (ordered lists of Fields) whose Values are one of:
//
//   - a bool, shown as Yes/No
//   - a string, carrying a Style (Auto, Enum, Price or Description)
//   - a nested Object
//   - a vector of Values
//
// Trees are assembled bottom-up with a Builder and are immutable once built:
//
//	owner := object.NewBuilder().
//	    Add("Id", object.Uint(1)).
//	    Add("Name", object.String("builderman")).
//	    Build()
//
//	group := object.NewBuilder().
//	    Add("Group", object.String("Roblox")).
//	    Add("Public", object.Bool(true)).
//	    Add("Owner", object.Nested(owner)).
//	    WithField(object.NewField("About", object.String(desc)).WithStyle(object.StyleDescription)).
//	    Build()
//
// Rendering lives in the output package.
package object
