package object

// Field is a labelled slot in an Object
type Field struct {
	// Key is the display label
	Key string

	// Value is the content rendered after the label
	Value Value
}

// NewField creates a field with the value as given (Auto for plain strings)
func NewField(key string, value Value) Field {
	return Field{Key: key, Value: value}
}

// WithStyle returns the field with its string value restyled.
// Fields holding anything other than a string are returned unchanged.
func (f Field) WithStyle(style Style) Field {
	f.Value = f.Value.WithStyle(style)
	return f
}

// Style returns the style of the field's value
func (f Field) Style() Style {
	return f.Value.Style()
}

// Object is an ordered record of fields. Insertion order is display order
// and duplicate keys are kept. Objects are only built through a Builder and
// are never modified afterwards.
type Object struct {
	fields []Field
}

// Len returns the number of fields
func (o Object) Len() int {
	return len(o.fields)
}

// IsEmpty reports whether the object has no fields
func (o Object) IsEmpty() bool {
	return len(o.fields) == 0
}

// Field returns the i-th field. It panics if i is out of range.
func (o Object) Field(i int) Field {
	return o.fields[i]
}

// Fields returns a copy of the fields in display order
func (o Object) Fields() []Field {
	fields := make([]Field, len(o.fields))
	copy(fields, o.fields)
	return fields
}

// Lookup returns the first field with the given key
func (o Object) Lookup(key string) (Field, bool) {
	for _, f := range o.fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Equal reports whether both objects hold equal fields in the same order
func (o Object) Equal(other Object) bool {
	if len(o.fields) != len(other.fields) {
		return false
	}
	for i := range o.fields {
		if o.fields[i].Key != other.fields[i].Key {
			return false
		}
		if !o.fields[i].Value.Equal(other.fields[i].Value) {
			return false
		}
	}
	return true
}
