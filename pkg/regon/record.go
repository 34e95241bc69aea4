package regon

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"
)

// Field is one child element of a flattened result element
type Field struct {
	Name  string
	Value string
	// Fields holds the direct children of an element that has any.
	// Their own children are not kept.
	Fields []Field
}

// Record is the flattened form of one result element: its direct children
// in document order. Repeated names are kept.
//
// Flattening is one level deep. Only classification code (PKD) reports rely
// on Field.Fields: their data element is the document root, so each dane row
// arrives as a field whose own children are the row's values. Search results
// and the other reports have no nested fields.
type Record struct {
	Fields []Field
}

// flatten builds a Record from the direct children of el
func flatten(el *etree.Element) Record {
	children := el.ChildElements()
	r := Record{Fields: make([]Field, 0, len(children))}
	for _, c := range children {
		f := Field{Name: c.Tag, Value: elementText(c)}
		if grand := c.ChildElements(); len(grand) > 0 {
			f.Fields = make([]Field, 0, len(grand))
			for _, g := range grand {
				f.Fields = append(f.Fields, Field{Name: g.Tag, Value: elementText(g)})
			}
		}
		r.Fields = append(r.Fields, f)
	}
	return r
}

// elementText returns the trimmed character data directly inside el
func elementText(el *etree.Element) string {
	var sb strings.Builder
	for _, t := range el.Child {
		if cd, ok := t.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Len returns the number of fields
func (r Record) Len() int {
	return len(r.Fields)
}

// Keys returns field names in document order, repeats included
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Name
	}
	return keys
}

// Lookup returns the value of the first field with the given name
func (r Record) Lookup(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Get returns the value of the first field with the given name, or ""
func (r Record) Get(name string) string {
	v, _ := r.Lookup(name)
	return v
}

// All returns every field with the given name. The result is a slice even
// when the element occurs once.
func (r Record) All(name string) []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}

// Map returns the first value of each name
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		if _, ok := m[f.Name]; !ok {
			m[f.Name] = f.Value
		}
	}
	return m
}

// Rows returns the nested fields of every field with the given name as
// records. PKD reports use this shape: one dane row per classification code.
func (r Record) Rows(name string) []Record {
	var rows []Record
	for _, f := range r.All(name) {
		rows = append(rows, Record{Fields: f.Fields})
	}
	return rows
}

// MarshalJSON writes the record as an object in document order.
// Names that repeat, or whose fields have children, become arrays.
func (r Record) MarshalJSON() ([]byte, error) {
	order := make([]string, 0, len(r.Fields))
	groups := make(map[string][]Field)
	for _, f := range r.Fields {
		if _, ok := groups[f.Name]; !ok {
			order = append(order, f.Name)
		}
		groups[f.Name] = append(groups[f.Name], f)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		fields := groups[name]
		var value any
		if len(fields) == 1 && fields[0].Fields == nil {
			value = fields[0].Value
		} else {
			items := make([]any, len(fields))
			for j, f := range fields {
				if f.Fields != nil {
					items[j] = Record{Fields: f.Fields}
				} else {
					items[j] = f.Value
				}
			}
			value = items
		}

		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes the record as a mapping in document order, grouped
// the same way as MarshalJSON.
func (r Record) MarshalYAML() (interface{}, error) {
	return r.yamlNode(), nil
}

func (r Record) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	index := make(map[string]int)
	for _, f := range r.Fields {
		var value *yaml.Node
		if f.Fields != nil {
			value = Record{Fields: f.Fields}.yamlNode()
		} else {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value}
		}

		i, seen := index[f.Name]
		if !seen {
			index[f.Name] = len(node.Content)
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
			if f.Fields != nil {
				value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{value}}
			}
			node.Content = append(node.Content, key, value)
			continue
		}

		existing := node.Content[i+1]
		if existing.Kind != yaml.SequenceNode {
			existing = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: []*yaml.Node{existing}}
			node.Content[i+1] = existing
		}
		existing.Content = append(existing.Content, value)
	}
	return node
}
