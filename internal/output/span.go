package output

import "strings"

// Role tells an encoder how a span should be styled
type Role int

const (
	// RolePlain is unstyled text: indentation, separators and line breaks
	RolePlain Role = iota
	// RoleMarker is the "*" bullet before a field
	RoleMarker
	// RoleKey is the label of a scalar field
	RoleKey
	// RoleBlockKey is the label of a nested object field
	RoleBlockKey
	// RoleBrace is "{" or "}" around a nested object
	RoleBrace
	// RoleBracket is "[" or "]" around a vector
	RoleBracket
	// RoleText is an Auto string value
	RoleText
	// RoleEnum is an Enum string value
	RoleEnum
	// RolePrice is a Price string value
	RolePrice
	// RoleCurrency is the suffix after a price
	RoleCurrency
	// RoleDescription is a non-empty Description string value
	RoleDescription
	// RoleYes is a true boolean label
	RoleYes
	// RoleNo is a false boolean label
	RoleNo
	// RoleElement is a scalar vector element
	RoleElement
)

var roleNames = map[Role]string{
	RolePlain:       "plain",
	RoleMarker:      "marker",
	RoleKey:         "key",
	RoleBlockKey:    "block-key",
	RoleBrace:       "brace",
	RoleBracket:     "bracket",
	RoleText:        "text",
	RoleEnum:        "enum",
	RolePrice:       "price",
	RoleCurrency:    "currency",
	RoleDescription: "description",
	RoleYes:         "yes",
	RoleNo:          "no",
	RoleElement:     "element",
}

// String returns the role name
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Span is a run of text sharing one role
type Span struct {
	Text string
	Role Role
}

// PlainText concatenates span texts without any styling
func PlainText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
