package output

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aryankumar/blox/internal/object"
)

const (
	// indentUnit is written once per nesting level
	indentUnit = "  "

	// DefaultMaxDepth bounds how many nested objects are expanded
	DefaultMaxDepth = 64

	// DefaultCurrency is appended to Price values
	DefaultCurrency = "$"
)

// PrinterOption configures a Printer
type PrinterOption func(*Printer)

// WithMaxDepth limits object expansion. Objects nested deeper than n are
// shown collapsed as "{…}". Values below 1 fall back to DefaultMaxDepth.
func WithMaxDepth(n int) PrinterOption {
	return func(p *Printer) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// WithPrinterCurrency sets the suffix appended to Price values
func WithPrinterCurrency(suffix string) PrinterOption {
	return func(p *Printer) {
		p.currency = suffix
	}
}

// Printer turns an object tree into a sequence of styled spans.
// It holds no per-render state and can be shared.
type Printer struct {
	maxDepth int
	currency string
}

// NewPrinter creates a printer with the given options
func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		maxDepth: DefaultMaxDepth,
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Spans renders obj starting at indentation 0
func (p *Printer) Spans(obj object.Object) []Span {
	var spans []Span
	// collecting into a slice never fails
	_ = p.Walk(obj, func(s Span) error {
		spans = append(spans, s)
		return nil
	})
	return spans
}

// Walk renders obj and passes every span to emit in order.
// The first error returned by emit stops the render and is returned.
func (p *Printer) Walk(obj object.Object, emit func(Span) error) error {
	r := &render{printer: p, emit: emit}
	err := r.object(obj, 0, 0, true)
	if r.collapsed > 0 {
		slog.Debug("collapsed objects nested beyond the depth limit",
			"max_depth", p.maxDepth,
			"collapsed", r.collapsed)
	}
	return err
}

// Print renders obj to w, painting spans with scheme.
// A nil scheme writes plain text.
func (p *Printer) Print(w io.Writer, obj object.Object, scheme *ColorScheme) error {
	return p.Walk(obj, func(s Span) error {
		text := s.Text
		if scheme != nil {
			text = scheme.Paint(s.Role, s.Text)
		}
		_, err := io.WriteString(w, text)
		return err
	})
}

// Sprint renders obj as plain text
func (p *Printer) Sprint(obj object.Object) string {
	return PlainText(p.Spans(obj))
}

// render carries the sink through one recursive walk
type render struct {
	printer *Printer
	emit    func(Span) error
	err     error

	// collapsed counts objects cut off by the depth limit
	collapsed int
}

// put emits spans until the first failure, which is kept in r.err
func (r *render) put(spans ...Span) {
	for _, s := range spans {
		if r.err != nil {
			return
		}
		r.err = r.emit(s)
	}
}

func (r *render) indent(level int) {
	if level > 0 {
		r.put(Span{Text: strings.Repeat(indentUnit, level), Role: RolePlain})
	}
}

func (r *render) label(key string) {
	r.put(
		Span{Text: "*", Role: RoleMarker},
		Span{Text: " ", Role: RolePlain},
		Span{Text: key, Role: RoleKey},
		Span{Text: ": ", Role: RolePlain},
	)
}

func (r *render) newline() {
	r.put(Span{Text: "\n", Role: RolePlain})
}

// object renders every field of obj. lead controls whether each field is
// prefixed with indentation (and nested objects with a marker); it is false
// for objects rendered inline as vector elements.
func (r *render) object(obj object.Object, level, depth int, lead bool) error {
	for i := 0; i < obj.Len() && r.err == nil; i++ {
		f := obj.Field(i)

		if text, ok := f.Value.AsString(); ok && text == "" && f.Style() == object.StyleDescription {
			r.newline()
			continue
		}

		if lead {
			r.indent(level)
		}

		switch f.Value.Kind() {
		case object.KindBool:
			b, _ := f.Value.AsBool()
			r.label(f.Key)
			r.put(conclusionSpan(b))
			r.newline()

		case object.KindString:
			r.label(f.Key)
			r.scalar(f.Value)
			r.newline()

		case object.KindObject:
			nested, _ := f.Value.AsObject()
			if lead {
				r.put(Span{Text: "*", Role: RoleMarker}, Span{Text: " ", Role: RolePlain})
			}
			r.put(
				Span{Text: f.Key, Role: RoleBlockKey},
				Span{Text: ": ", Role: RolePlain},
			)

			if depth+1 > r.printer.maxDepth {
				r.collapsed++
				r.put(Span{Text: "{…}", Role: RoleBrace})
			} else {
				r.put(Span{Text: "{", Role: RoleBrace})
				r.newline()
				r.object(nested, level+1, depth+1, true)
				r.indent(level)
				r.put(Span{Text: "}", Role: RoleBrace})
			}

			if lead {
				r.newline()
			}

		case object.KindVector:
			r.label(f.Key)
			r.put(Span{Text: "[", Role: RoleBracket})
			for _, item := range f.Value.Items() {
				r.element(item, level, depth)
			}
			r.put(Span{Text: "]", Role: RoleBracket})
			r.newline()
		}
	}

	return r.err
}

// element renders one vector item. Objects are flattened to the vector's own
// indentation level rather than nested one deeper.
func (r *render) element(v object.Value, level, depth int) {
	switch v.Kind() {
	case object.KindObject:
		nested, _ := v.AsObject()
		if depth+1 > r.printer.maxDepth {
			r.collapsed++
			r.put(Span{Text: "(…),", Role: RolePlain})
			r.newline()
			return
		}
		r.put(Span{Text: "(", Role: RolePlain})
		r.object(nested, level, depth+1, false)
		r.put(Span{Text: "),", Role: RolePlain})
		r.newline()

	case object.KindVector:
		r.put(Span{Text: "[", Role: RoleBracket})
		for _, item := range v.Items() {
			r.element(item, level, depth)
		}
		r.put(Span{Text: "]", Role: RoleBracket}, Span{Text: ", ", Role: RolePlain})

	case object.KindBool:
		b, _ := v.AsBool()
		r.put(conclusionSpan(b), Span{Text: ", ", Role: RolePlain})

	default:
		text, _ := v.AsString()
		r.put(Span{Text: text, Role: RoleElement}, Span{Text: ", ", Role: RolePlain})
	}
}

// scalar renders a string value according to its style
func (r *render) scalar(v object.Value) {
	text, _ := v.AsString()

	switch v.Style() {
	case object.StyleEnum:
		r.put(Span{Text: text, Role: RoleEnum})
	case object.StylePrice:
		r.put(
			Span{Text: text, Role: RolePrice},
			Span{Text: r.printer.currency, Role: RoleCurrency},
		)
	case object.StyleDescription:
		r.put(Span{Text: text, Role: RoleDescription})
	default:
		r.put(Span{Text: text, Role: RoleText})
	}
}

func conclusionSpan(b bool) Span {
	c := object.Conclusion(b)
	role := RoleNo
	if c.Positive() {
		role = RoleYes
	}
	return Span{Text: c.Label(), Role: role}
}
