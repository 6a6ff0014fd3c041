package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aryankumar/blox/internal/object"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name         string
		format       Format
		opts         []Option
		expectedType string
	}{
		{
			name:         "tree formatter",
			format:       FormatTree,
			expectedType: "*output.TreeFormatter",
		},
		{
			name:         "table formatter",
			format:       FormatTable,
			expectedType: "*output.TableFormatter",
		},
		{
			name:         "json formatter",
			format:       FormatJSON,
			expectedType: "*output.JSONFormatter",
		},
		{
			name:         "yaml formatter",
			format:       FormatYAML,
			expectedType: "*output.YAMLFormatter",
		},
		{
			name:         "empty format defaults to tree",
			format:       "",
			expectedType: "*output.TreeFormatter",
		},
		{
			name:         "unknown format defaults to tree",
			format:       "unknown",
			expectedType: "*output.TreeFormatter",
		},
		{
			name:         "table with multiple options",
			format:       FormatTable,
			opts:         []Option{WithNoColor(true), WithNoHeaders(true)},
			expectedType: "*output.TableFormatter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format, tt.opts...)
			if formatter == nil {
				t.Fatal("NewFormatter returned nil")
			}

			if got := fmt.Sprintf("%T", formatter); got != tt.expectedType {
				t.Errorf("expected %s, got %s", tt.expectedType, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTree, false},
		{"tree", FormatTree, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"table", FormatTable, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func groupTree() object.Object {
	owner := object.NewBuilder().
		Add("Id", object.Uint(1)).
		Add("Name", object.String("Roblox")).
		Build()

	return object.NewBuilder().
		Add("Group", object.String("Roblox")).
		Add("Public", object.Bool(true)).
		WithField(object.NewField("Funds", object.String("10")).WithStyle(object.StylePrice)).
		Add("Owner", object.Nested(owner)).
		Add("Tags", object.Vector(object.String("b"), object.String("a"))).
		WithField(object.NewField("About", object.String("")).WithStyle(object.StyleDescription)).
		Build()
}

func TestTreeFormatter_NoColor(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTree, WithNoColor(true))

	if err := f.Format(&buf, groupTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "* Group: Roblox\n" +
		"* Public: Yes\n" +
		"* Funds: 10$\n" +
		"* Owner: {\n" +
		"  * Id: 1\n" +
		"  * Name: Roblox\n" +
		"}\n" +
		"* Tags: [b, a, ]\n" +
		"\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeFormatter_DepthAndCurrency(t *testing.T) {
	obj := object.NewBuilder().
		Add("Outer", object.Nested(object.NewBuilder().
			Add("Owner", object.Nested(object.NewBuilder().Add("Id", object.Uint(1)).Build())).
			Add("Funds", object.Price("10")).
			Build())).
		Build()

	var buf bytes.Buffer
	f := NewFormatter(FormatTree, WithNoColor(true), WithDepth(1), WithCurrency("R$"))
	if err := f.Format(&buf, obj); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "* Outer: {\n" +
		"  * Owner: {…}\n" +
		"  * Funds: 10R$\n" +
		"}\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeFormatter_ForceColor(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTree, WithForceColor(true))

	if err := f.Format(&buf, groupTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected ANSI escape codes with forced color")
	}
}

func TestTreeFormatter_NonTTYHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTree)

	if err := f.Format(&buf, groupTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected no ANSI escape codes for a buffer")
	}
}

func TestJSONFormatter_PreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(nil).Format(&buf, groupTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if decoded["Public"] != true {
		t.Errorf("expected Public to be a JSON bool, got %#v", decoded["Public"])
	}
	if decoded["Funds"] != "10" {
		t.Errorf("expected Funds to be the raw string, got %#v", decoded["Funds"])
	}

	order := []string{`"Group"`, `"Public"`, `"Funds"`, `"Owner"`, `"Tags"`, `"About"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, key)
		if idx <= last {
			t.Fatalf("key %s out of order in:\n%s", key, out)
		}
		last = idx
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(nil).Format(&buf, object.NewBuilder().Build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "{}" {
		t.Errorf("expected {}, got %q", buf.String())
	}
}

func TestJSONFormatter_HTMLCharacters(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value object.Value
		want  string
	}{
		{
			name:  "description",
			key:   "About",
			value: object.Description("Tom & Jerry <3"),
			want:  "{\n  \"About\": \"Tom & Jerry <3\"\n}\n",
		},
		{
			name:  "key and string",
			key:   "<b>Name</b>",
			value: object.String("a > b"),
			want:  "{\n  \"<b>Name</b>\": \"a > b\"\n}\n",
		},
		{
			name:  "quotes still escaped",
			key:   "Quote",
			value: object.String(`say "hi"`),
			want:  "{\n  \"Quote\": \"say \\\"hi\\\"\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := object.NewBuilder().Add(tt.key, tt.value).Build()

			var buf bytes.Buffer
			if err := NewJSONFormatter(nil).Format(&buf, obj); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("JSON mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var errClosedPipe = errors.New("closed pipe")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errClosedPipe
}

func TestFormatters_WriteError(t *testing.T) {
	tests := []struct {
		name      string
		formatter Formatter
	}{
		{name: "json", formatter: NewJSONFormatter(nil)},
		{name: "yaml", formatter: NewYAMLFormatter(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.formatter.Format(failingWriter{}, groupTree())
			if err == nil {
				t.Fatal("expected the write error to be returned")
			}
			if tt.name == "json" && !errors.Is(err, errClosedPipe) {
				t.Errorf("error = %v, want %v", err, errClosedPipe)
			}
		})
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter(nil).Format(&buf, groupTree()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &node); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}

	mapping := node.Content[0]
	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}

	want := []string{"Group", "Public", "Funds", "Owner", "Tags", "About"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if decoded["Public"] != true {
		t.Errorf("expected Public to be a YAML bool, got %#v", decoded["Public"])
	}
	tags, ok := decoded["Tags"].([]interface{})
	if !ok || len(tags) != 2 {
		t.Errorf("expected two tags, got %#v", decoded["Tags"])
	}
}

func TestFlatten(t *testing.T) {
	obj := object.NewBuilder().
		Add("Name", object.String("x")).
		Add("Owner", object.Nested(object.NewBuilder().Add("Id", object.Uint(7)).Build())).
		Add("Items", object.Vector(
			object.String("a"),
			object.Nested(object.NewBuilder().Add("Ok", object.Bool(false)).Build()),
		)).
		Add("Empty", object.Vector()).
		Add("Price", object.Price("5")).
		WithField(object.NewField("About", object.String("")).WithStyle(object.StyleDescription)).
		Build()

	want := []Row{
		{Path: "Name", Value: "x"},
		{Path: "Owner.Id", Value: "7"},
		{Path: "Items[0]", Value: "a"},
		{Path: "Items[1].Ok", Value: "No"},
		{Path: "Empty", Value: "[]"},
		{Path: "Price", Value: "5$"},
	}

	if diff := cmp.Diff(want, Flatten(obj, "$")); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableFormatter_Format(t *testing.T) {
	tests := []struct {
		name        string
		opts        *Options
		contains    []string
		notContains []string
	}{
		{
			name:     "with headers",
			opts:     &Options{NoColor: true},
			contains: []string{"FIELD", "VALUE", "Owner.Id", "Tags[1]", "Yes"},
		},
		{
			name:        "without headers",
			opts:        &Options{NoColor: true, NoHeaders: true},
			contains:    []string{"Group", "Roblox"},
			notContains: []string{"FIELD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTableFormatter(tt.opts).Format(&buf, groupTree()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected output to contain %q, got:\n%s", s, out)
				}
			}
			for _, s := range tt.notContains {
				if strings.Contains(out, s) {
					t.Errorf("expected output not to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestTableFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(nil).Format(&buf, object.NewBuilder().Build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
