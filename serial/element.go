// Package serial provides the hierarchical tree that objects, behaviors and
// projects are persisted through, along with its YAML and JSON encodings.
package serial

import (
	"iter"
	"slices"
)

// Element is a node of a serialization tree. It carries an optional scalar
// value, ordered named attributes and ordered named children. An element can
// be marked as an array, in which case its children form a list.
type Element struct {
	value      Value
	attributes []attribute
	children   []child
	isArray    bool
	arrayOf    string
}

type attribute struct {
	name  string
	value Value
}

type child struct {
	name    string
	element *Element
}

// NewElement creates an empty element.
func NewElement() *Element {
	return &Element{}
}

// SetValue sets the element's own scalar value.
func (e *Element) SetValue(v Value) *Element {
	e.value = v
	return e
}

// GetValue returns the element's own scalar value.
func (e *Element) GetValue() Value {
	return e.value
}

// HasValue reports whether a scalar value was set on the element.
func (e *Element) HasValue() bool {
	return !e.value.IsNone()
}

// IsEmpty reports whether the element has no value, attributes or children.
func (e *Element) IsEmpty() bool {
	return !e.HasValue() && len(e.attributes) == 0 && len(e.children) == 0
}

// SetAttribute sets (or replaces) the attribute called name.
func (e *Element) SetAttribute(name string, v Value) *Element {
	for i := range e.attributes {
		if e.attributes[i].name == name {
			e.attributes[i].value = v
			return e
		}
	}
	e.attributes = append(e.attributes, attribute{name: name, value: v})
	return e
}

func (e *Element) SetStringAttribute(name, v string) *Element {
	return e.SetAttribute(name, StringValue(v))
}

func (e *Element) SetBoolAttribute(name string, v bool) *Element {
	return e.SetAttribute(name, BoolValue(v))
}

func (e *Element) SetIntAttribute(name string, v int) *Element {
	return e.SetAttribute(name, IntValue(v))
}

func (e *Element) SetDoubleAttribute(name string, v float64) *Element {
	return e.SetAttribute(name, DoubleValue(v))
}

// GetAttribute returns the attribute called name. When it is missing, the
// deprecated names are tried in order, then a child with a scalar value of
// the same name, which is how decoded documents sometimes carry attributes.
func (e *Element) GetAttribute(name string, deprecated ...string) (Value, bool) {
	for _, n := range append([]string{name}, deprecated...) {
		for _, a := range e.attributes {
			if a.name == n {
				return a.value, true
			}
		}
	}
	for _, n := range append([]string{name}, deprecated...) {
		if c := e.findChild(n); c != nil && c.HasValue() {
			return c.value, true
		}
	}
	return Value{}, false
}

// HasAttribute reports whether an attribute called name (or one of the
// deprecated names) exists.
func (e *Element) HasAttribute(name string, deprecated ...string) bool {
	_, ok := e.GetAttribute(name, deprecated...)
	return ok
}

func (e *Element) GetStringAttribute(name, def string, deprecated ...string) string {
	if v, ok := e.GetAttribute(name, deprecated...); ok {
		return v.GetString()
	}
	return def
}

func (e *Element) GetBoolAttribute(name string, def bool, deprecated ...string) bool {
	if v, ok := e.GetAttribute(name, deprecated...); ok {
		return v.GetBool()
	}
	return def
}

func (e *Element) GetIntAttribute(name string, def int, deprecated ...string) int {
	if v, ok := e.GetAttribute(name, deprecated...); ok {
		return v.GetInt()
	}
	return def
}

func (e *Element) GetDoubleAttribute(name string, def float64, deprecated ...string) float64 {
	if v, ok := e.GetAttribute(name, deprecated...); ok {
		return v.GetDouble()
	}
	return def
}

// RemoveAttribute deletes the attribute called name, if present.
func (e *Element) RemoveAttribute(name string) {
	e.attributes = slices.DeleteFunc(e.attributes, func(a attribute) bool {
		return a.name == name
	})
}

// Attributes iterates over the attributes in insertion order.
func (e *Element) Attributes() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, a := range e.attributes {
			if !yield(a.name, a.value) {
				return
			}
		}
	}
}

// AddChild appends a new child element. Children of an element considered
// as an array of a given name are always named after it.
func (e *Element) AddChild(name string) *Element {
	if e.isArray && e.arrayOf != "" {
		name = e.arrayOf
	}
	c := NewElement()
	e.children = append(e.children, child{name: name, element: c})
	return c
}

// GetChild returns the first child called name, trying deprecated names when
// it is missing. A missing child yields a detached empty element, so readers
// can fall back to defaults without checking. A scalar attribute of the same
// name is returned as an element holding that value.
func (e *Element) GetChild(name string, deprecated ...string) *Element {
	for _, n := range append([]string{name}, deprecated...) {
		if c := e.findChild(n); c != nil {
			return c
		}
	}
	for _, n := range append([]string{name}, deprecated...) {
		for _, a := range e.attributes {
			if a.name == n {
				return NewElement().SetValue(a.value)
			}
		}
	}
	return NewElement()
}

// HasChild reports whether a child called name (or a deprecated name) exists.
func (e *Element) HasChild(name string, deprecated ...string) bool {
	for _, n := range append([]string{name}, deprecated...) {
		if e.findChild(n) != nil {
			return true
		}
	}
	return false
}

// RemoveChild deletes every child called name.
func (e *Element) RemoveChild(name string) {
	e.children = slices.DeleteFunc(e.children, func(c child) bool {
		return c.name == name
	})
}

// Children iterates over all children in insertion order.
func (e *Element) Children() iter.Seq2[string, *Element] {
	return func(yield func(string, *Element) bool) {
		for _, c := range e.children {
			if !yield(c.name, c.element) {
				return
			}
		}
	}
}

// ChildrenNamed returns the children called name. For an array element every
// child is returned, since decoded arrays carry no child names.
func (e *Element) ChildrenNamed(name string) []*Element {
	var result []*Element
	for _, c := range e.children {
		if e.isArray || c.name == name {
			result = append(result, c.element)
		}
	}
	return result
}

// ChildrenCount returns the number of children.
func (e *Element) ChildrenCount() int {
	return len(e.children)
}

// ConsiderAsArray marks the element as a list of children.
func (e *Element) ConsiderAsArray() *Element {
	e.isArray = true
	return e
}

// ConsiderAsArrayOf marks the element as a list of children called name.
func (e *Element) ConsiderAsArrayOf(name string) *Element {
	e.isArray = true
	e.arrayOf = name
	return e
}

// IsArray reports whether the element is a list.
func (e *Element) IsArray() bool {
	return e.isArray
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	c := &Element{
		value:      e.value,
		attributes: slices.Clone(e.attributes),
		isArray:    e.isArray,
		arrayOf:    e.arrayOf,
	}
	for _, ch := range e.children {
		c.children = append(c.children, child{name: ch.name, element: ch.element.Clone()})
	}
	return c
}

func (e *Element) findChild(name string) *Element {
	for _, c := range e.children {
		if c.name == name {
			return c.element
		}
	}
	return nil
}
