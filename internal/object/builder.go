package object

// Builder accumulates fields for an Object.
// A Builder is single-use: Build hands the fields over to the returned Object
// and leaves the builder empty, so later calls start a new object.
type Builder struct {
	fields []Field
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithField appends f and returns the builder for chaining
func (b *Builder) WithField(f Field) *Builder {
	b.fields = append(b.fields, f)
	return b
}

// Add appends a field built from key and value
func (b *Builder) Add(key string, value Value) *Builder {
	return b.WithField(NewField(key, value))
}

// AddIf appends the field only when cond is true
func (b *Builder) AddIf(cond bool, key string, value Value) *Builder {
	if !cond {
		return b
	}
	return b.Add(key, value)
}

// Len returns the number of fields appended so far
func (b *Builder) Len() int {
	return len(b.fields)
}

// Build returns the accumulated Object and resets the builder
func (b *Builder) Build() Object {
	o := Object{fields: b.fields}
	b.fields = nil
	return o
}
