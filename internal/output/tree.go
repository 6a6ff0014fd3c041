package output

import (
	"io"

	"github.com/aryankumar/blox/internal/object"
)

// TreeFormatter prints the indented, colored object tree
type TreeFormatter struct {
	options *Options
	printer *Printer
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(opts *Options) *TreeFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TreeFormatter{
		options: opts,
		printer: NewPrinter(WithMaxDepth(opts.MaxDepth), WithPrinterCurrency(opts.currency())),
	}
}

// Format writes the tree rendering of obj
func (f *TreeFormatter) Format(w io.Writer, obj object.Object) error {
	return f.printer.Print(w, obj, f.options.scheme(w))
}
