package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aryankumar/blox/internal/object"
)

// Format represents the output format type
type Format string

const (
	// FormatTree outputs the styled, indented object tree
	FormatTree Format = "tree"
	// FormatTable outputs flattened field paths as a two-column table
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name selects the tree format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatTree, nil
	case FormatTree, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (supported: tree, table, json, yaml)", name)
	}
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// Format writes one object to the writer
	Format(w io.Writer, obj object.Object) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// ForceColor emits colors even when the writer is not a terminal
	ForceColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// MaxDepth limits nested object expansion in tree output, 0 selects DefaultMaxDepth
	MaxDepth int

	// Currency is the suffix appended to prices in tree and table output
	Currency string
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithForceColor enables colors regardless of terminal detection
func WithForceColor(force bool) Option {
	return func(o *Options) {
		o.ForceColor = force
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithDepth sets the tree expansion limit
func WithDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithCurrency sets the suffix appended to prices. Empty keeps DefaultCurrency.
func WithCurrency(currency string) Option {
	return func(o *Options) {
		o.Currency = currency
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatTree:
		fallthrough
	default:
		return NewTreeFormatter(options)
	}
}

// scheme resolves the color scheme for a writer
func (o *Options) scheme(w io.Writer) *ColorScheme {
	if o.NoColor {
		return newColorScheme(false)
	}
	if o.ForceColor {
		return ForcedColorScheme()
	}
	return NewColorScheme(w, false)
}

func (o *Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}
