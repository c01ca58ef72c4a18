package specdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/oaserrors"
)

// Marshal encodes the document in the requested format. An unknown format
// falls back to the source format.
func (d *Document) Marshal(format SourceFormat) ([]byte, error) {
	if format == SourceFormatUnknown || format == "" {
		format = d.SourceFormat
	}
	switch format {
	case SourceFormatYAML:
		return d.marshalYAML()
	default:
		return d.MarshalIndentJSON("", "  ")
	}
}

// MarshalJSON encodes the document as compact JSON, keeping key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, d.Root(), make(map[*yaml.Node]bool)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndentJSON encodes the document as indented JSON, keeping key order.
func (d *Document) MarshalIndentJSON(prefix, indent string) ([]byte, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// marshalYAML encodes the document as block-style YAML. Documents that came
// from JSON carry flow styles and quoted scalars, which are reset first.
func (d *Document) marshalYAML() ([]byte, error) {
	node := d.node
	if d.SourceFormat == SourceFormatJSON {
		node = Copy(d.node)
		resetStyle(node, make(map[*yaml.Node]bool))
	}
	return yaml.Marshal(node)
}

func resetStyle(n *yaml.Node, seen map[*yaml.Node]bool) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		n.Style &^= yaml.FlowStyle
	case yaml.ScalarNode:
		if n.Style&yaml.DoubleQuotedStyle != 0 {
			n.Style &^= yaml.DoubleQuotedStyle
		}
	}
	for _, child := range n.Content {
		resetStyle(child, seen)
	}
}

// writeNodeJSON writes a node as JSON. active tracks the containers on the
// current path so an alias back into one of them is reported, not followed.
func writeNodeJSON(buf *bytes.Buffer, n *yaml.Node, active map[*yaml.Node]bool) error {
	if n != nil && n.Kind == yaml.AliasNode {
		target := Resolve(n)
		if target == nil || active[target] {
			return &oaserrors.ReferenceError{Ref: "*" + n.Value, IsCircular: true, Message: "alias cycle cannot be encoded as JSON"}
		}
		n = target
	}
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, n.Content[0], active)

	case yaml.MappingNode:
		active[n] = true
		defer delete(active, n)
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, Resolve(n.Content[i]).Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, n.Content[i+1], active); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		active[n] = true
		defer delete(active, n)
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item, active); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, n)
	}
	return fmt.Errorf("specdoc: unsupported node kind %d at line %d", n.Kind, n.Line)
}

// writeScalarJSON renders a scalar by its resolved tag. YAML number spellings
// (hex, octal, underscores, exponents) become canonical JSON numbers.
func writeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.ShortTag() {
	case TagNull:
		buf.WriteString("null")
	case TagBool:
		if strings.EqualFold(n.Value, "true") {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case TagInt:
		if isJSONNumber(n.Value) {
			buf.WriteString(n.Value)
			return nil
		}
		v := strings.ReplaceAll(n.Value, "_", "")
		if i, err := strconv.ParseInt(v, 0, 64); err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("specdoc: invalid integer %q at line %d: %w", n.Value, n.Line, err)
		}
		buf.WriteString(d.String())
	case TagFloat:
		if isJSONNumber(n.Value) {
			buf.WriteString(n.Value)
			return nil
		}
		v := strings.ReplaceAll(n.Value, "_", "")
		switch strings.ToLower(strings.TrimLeft(v, "+-")) {
		case ".inf", ".nan":
			return fmt.Errorf("specdoc: %q at line %d has no JSON representation", n.Value, n.Line)
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("specdoc: invalid number %q at line %d: %w", n.Value, n.Line, err)
		}
		buf.WriteString(d.String())
	default:
		return writeJSONString(buf, n.Value)
	}
	return nil
}

// isJSONNumber reports whether a scalar literal is already a valid JSON number.
func isJSONNumber(v string) bool {
	if v == "" || (v[0] != '-' && (v[0] < '0' || v[0] > '9')) {
		return false
	}
	return json.Valid([]byte(v))
}

// writeJSONString writes s as a JSON string without HTML escaping, so
// descriptions containing <, > and & survive unchanged.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}
