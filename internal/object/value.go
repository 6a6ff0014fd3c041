package object

import (
	"strconv"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	// KindBool is a boolean rendered through a Conclusion
	KindBool Kind = iota
	// KindString is scalar text carrying a Style
	KindString
	// KindObject is a nested, ordered record
	KindObject
	// KindVector is an ordered list of values
	KindVector
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindVector:
		return "vector"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Style selects how a string value is rendered
type Style int

const (
	// StyleAuto is plain coloured text
	StyleAuto Style = iota
	// StyleEnum highlights categorical values as a badge
	StyleEnum
	// StylePrice appends the currency suffix to the value
	StylePrice
	// StyleDescription renders long text on a block background and
	// collapses to a blank line when the text is empty
	StyleDescription
)

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleEnum:
		return "enum"
	case StylePrice:
		return "price"
	case StyleDescription:
		return "description"
	default:
		return "style(" + strconv.Itoa(int(s)) + ")"
	}
}

// Value is one of a bool, a styled string, a nested Object or a vector of values.
// The style only exists on string values, so it can never be attached to
// anything else. The zero Value is an empty Auto string.
type Value struct {
	kind   Kind
	flag   bool
	text   string
	style  Style
	object Object
	items  []Value
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// String returns an Auto-styled string value
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Styled returns a string value with the given style
func Styled(s string, style Style) Value {
	return Value{kind: KindString, text: s, style: style}
}

// Enum returns a string value rendered as a badge
func Enum(s string) Value {
	return Styled(s, StyleEnum)
}

// Price returns a string value rendered with the currency suffix
func Price(s string) Value {
	return Styled(s, StylePrice)
}

// Description returns a long-text string value
func Description(s string) Value {
	return Styled(s, StyleDescription)
}

// Uint returns the decimal form of n as a string value
func Uint(n uint64) Value {
	return String(strconv.FormatUint(n, 10))
}

// Int returns the decimal form of n as a string value
func Int(n int64) Value {
	return String(strconv.FormatInt(n, 10))
}

// Float returns the shortest decimal form of f as a string value
func Float(f float64) Value {
	return String(strconv.FormatFloat(f, 'f', -1, 64))
}

// Nested wraps an Object as a value
func Nested(o Object) Value {
	return Value{kind: KindObject, object: o}
}

// Vector returns a vector value holding a copy of items
func Vector(items ...Value) Value {
	owned := make([]Value, len(items))
	copy(owned, items)
	return Value{kind: KindVector, items: owned}
}

// Kind reports the variant held by v
func (v Value) Kind() Kind {
	return v.kind
}

// AsBool returns the boolean and whether v is a bool
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsString returns the text and whether v is a string
func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

// AsObject returns the nested object and whether v is an object
func (v Value) AsObject() (Object, bool) {
	return v.object, v.kind == KindObject
}

// Items returns a copy of the vector elements, or nil if v is not a vector
func (v Value) Items() []Value {
	if v.kind != KindVector {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Len returns the number of vector elements, 0 for other kinds
func (v Value) Len() int {
	if v.kind != KindVector {
		return 0
	}
	return len(v.items)
}

// Style returns the rendering style of a string value. Non-string values
// always report StyleAuto.
func (v Value) Style() Style {
	if v.kind != KindString {
		return StyleAuto
	}
	return v.style
}

// WithStyle returns a copy of v restyled. It is a no-op for non-string values.
func (v Value) WithStyle(style Style) Value {
	if v.kind != KindString {
		return v
	}
	v.style = style
	return v
}

// Equal reports whether two values hold the same variant and content
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindBool:
		return v.flag == other.flag
	case KindString:
		return v.text == other.text && v.style == other.style
	case KindObject:
		return v.object.Equal(other.object)
	case KindVector:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns an unstyled inline form of the value
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return Conclusion(v.flag).Label()
	case KindString:
		return v.text
	case KindObject:
		return "{" + strconv.Itoa(v.object.Len()) + " fields}"
	case KindVector:
		s := "["
		for i, item := range v.items {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	default:
		return ""
	}
}
