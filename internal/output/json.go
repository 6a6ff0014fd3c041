package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/aryankumar/blox/internal/object"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs obj as indented JSON, keeping field order.
// Duplicate keys are written as they appear.
func (f *JSONFormatter) Format(w io.Writer, obj object.Object) error {
	var raw bytes.Buffer
	if err := encodeJSONObject(&raw, obj); err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')

	_, err := w.Write(out.Bytes())
	return err
}

func encodeJSONObject(buf *bytes.Buffer, obj object.Object) error {
	buf.WriteByte('{')
	for i := 0; i < obj.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		field := obj.Field(i)

		if err := encodeJSONString(buf, field.Key); err != nil {
			return err
		}
		buf.WriteByte(':')

		if err := encodeJSONValue(buf, field.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeJSONValue(buf *bytes.Buffer, v object.Value) error {
	switch v.Kind() {
	case object.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil

	case object.KindObject:
		nested, _ := v.AsObject()
		return encodeJSONObject(buf, nested)

	case object.KindVector:
		buf.WriteByte('[')
		for i, item := range v.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		text, _ := v.AsString()
		return encodeJSONString(buf, text)
	}
}

// encodeJSONString quotes s without escaping HTML characters
func encodeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates each value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
