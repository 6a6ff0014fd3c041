package output

import (
	"io"

	"github.com/aryankumar/blox/internal/object"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs obj as a YAML mapping, keeping field order
func (f *YAMLFormatter) Format(w io.Writer, obj object.Object) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(yamlObject(obj)); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

func yamlObject(obj object.Object) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range obj.Fields() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key},
			yamlValue(field.Value),
		)
	}
	return node
}

func yamlValue(v object.Value) *yaml.Node {
	switch v.Kind() {
	case object.KindBool:
		b, _ := v.AsBool()
		value := "false"
		if b {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}

	case object.KindObject:
		nested, _ := v.AsObject()
		return yamlObject(nested)

	case object.KindVector:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items() {
			node.Content = append(node.Content, yamlValue(item))
		}
		return node

	default:
		text, _ := v.AsString()
		node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text}
		if v.Style() == object.StyleDescription && len(text) > 0 {
			node.Style = yaml.LiteralStyle
		}
		return node
	}
}
