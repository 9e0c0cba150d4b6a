package serial

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gowebpki/jcs"
	"sigs.k8s.io/yaml"
)

// ToJSON encodes the element as canonical JSON (RFC 8785), so equal trees
// always produce identical bytes.
func ToJSON(e *Element) ([]byte, error) {
	data, err := json.Marshal(toTree(e))
	if err != nil {
		return nil, err
	}
	return jcs.Transform(data)
}

// ToYAML encodes the element as YAML.
func ToYAML(e *Element) ([]byte, error) {
	return yaml.Marshal(toTree(e))
}

// FromJSON decodes a JSON document into an element tree.
func FromJSON(data []byte) (*Element, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return fromTree(v), nil
}

// FromYAML decodes a YAML document into an element tree.
func FromYAML(data []byte) (*Element, error) {
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return FromJSON(j)
}

// Hash returns the hex encoded sha256 of the canonical JSON form.
func Hash(e *Element) (string, error) {
	data, err := ToJSON(e)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}

func toTree(e *Element) any {
	if e.isArray {
		list := make([]any, 0, len(e.children))
		for _, c := range e.children {
			list = append(list, toTree(c.element))
		}
		return list
	}
	if e.HasValue() && len(e.attributes) == 0 && len(e.children) == 0 {
		return e.value.native()
	}
	m := make(map[string]any, len(e.attributes)+len(e.children))
	for _, a := range e.attributes {
		m[a.name] = a.value.native()
	}
	for _, c := range e.children {
		m[c.name] = toTree(c.element)
	}
	return m
}

func fromTree(v any) *Element {
	e := NewElement()
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch val := t[k].(type) {
			case map[string]any, []any:
				e.children = append(e.children, child{name: k, element: fromTree(val)})
			default:
				if s, ok := scalar(val); ok {
					e.SetAttribute(k, s)
				}
			}
		}
	case []any:
		e.ConsiderAsArray()
		for _, item := range t {
			e.children = append(e.children, child{element: fromTree(item)})
		}
	default:
		if s, ok := scalar(t); ok {
			e.value = s
		}
	}
	return e
}

func scalar(v any) (Value, bool) {
	switch t := v.(type) {
	case bool:
		return BoolValue(t), true
	case string:
		return StringValue(t), true
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(int(i)), true
		}
		if d, err := t.Float64(); err == nil {
			return DoubleValue(d), true
		}
		return StringValue(t.String()), true
	case float64:
		return DoubleValue(t), true
	}
	return Value{}, false
}
