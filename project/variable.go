package project

import (
	"maps"
	"slices"
	"strconv"

	"github.com/plus3/gdcore/serial"
)

// Variable is a value stored in a Variables container. It is either a
// scalar, readable both as a string and as a number, or a structure of
// named child variables.
type Variable struct {
	str         string
	num         float64
	isNumber    bool
	isStructure bool
	children    map[string]*Variable
}

// NewVariable creates an empty scalar variable.
func NewVariable() *Variable {
	return &Variable{}
}

// SetString makes the variable a string scalar, dropping any children.
func (v *Variable) SetString(s string) {
	v.str = s
	v.isNumber = false
	v.isStructure = false
	v.children = nil
}

// GetString returns the scalar value as a string. Numbers are formatted.
func (v *Variable) GetString() string {
	if v.isNumber {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// SetValue makes the variable a number scalar, dropping any children.
func (v *Variable) SetValue(n float64) {
	v.num = n
	v.isNumber = true
	v.isStructure = false
	v.children = nil
}

// GetValue returns the scalar value as a number. Strings that do not parse
// yield 0.
func (v *Variable) GetValue() float64 {
	if v.isNumber {
		return v.num
	}
	n, err := strconv.ParseFloat(v.str, 64)
	if err != nil {
		return 0
	}
	return n
}

// IsNumber reports whether the scalar was last set as a number.
func (v *Variable) IsNumber() bool {
	return v.isNumber
}

func (v *Variable) IsStructure() bool {
	return v.isStructure
}

func (v *Variable) HasChild(name string) bool {
	_, ok := v.children[name]
	return v.isStructure && ok
}

// GetChild returns the child called name, creating it if needed. A scalar
// variable becomes a structure.
func (v *Variable) GetChild(name string) *Variable {
	if !v.isStructure {
		v.isStructure = true
		v.children = make(map[string]*Variable)
	}
	c, ok := v.children[name]
	if !ok {
		c = NewVariable()
		v.children[name] = c
	}
	return c
}

func (v *Variable) RemoveChild(name string) {
	delete(v.children, name)
}

// RenameChild moves the child oldName to newName. It fails when oldName is
// missing or newName is taken.
func (v *Variable) RenameChild(oldName, newName string) bool {
	c, ok := v.children[oldName]
	if !ok {
		return false
	}
	if _, taken := v.children[newName]; taken {
		return false
	}
	delete(v.children, oldName)
	v.children[newName] = c
	return true
}

// ChildNames returns the sorted names of the children.
func (v *Variable) ChildNames() []string {
	return slices.Sorted(maps.Keys(v.children))
}

// Clone returns a deep copy of the variable.
func (v *Variable) Clone() *Variable {
	c := &Variable{
		str:         v.str,
		num:         v.num,
		isNumber:    v.isNumber,
		isStructure: v.isStructure,
	}
	if v.isStructure {
		c.children = make(map[string]*Variable, len(v.children))
		for name, child := range v.children {
			c.children[name] = child.Clone()
		}
	}
	return c
}

// SerializeTo writes the value, or the children of a structure.
func (v *Variable) SerializeTo(el *serial.Element) {
	if v.isStructure {
		children := el.AddChild("children").ConsiderAsArrayOf("variable")
		for _, name := range v.ChildNames() {
			c := children.AddChild("variable")
			c.SetStringAttribute("name", name)
			v.children[name].SerializeTo(c)
		}
		return
	}
	if v.isNumber {
		el.SetDoubleAttribute("value", v.num)
		return
	}
	el.SetStringAttribute("value", v.str)
}

// UnserializeFrom replaces the variable with the content of el.
func (v *Variable) UnserializeFrom(el *serial.Element) {
	if el.HasChild("children") {
		v.SetString("")
		v.isStructure = true
		v.children = make(map[string]*Variable)
		for _, c := range el.GetChild("children").ChildrenNamed("variable") {
			name := c.GetStringAttribute("name", "")
			child := NewVariable()
			child.UnserializeFrom(c)
			v.children[name] = child
		}
		return
	}
	value, _ := el.GetAttribute("value")
	if value.IsNumber() || isNonFinite(value.GetString()) {
		v.SetValue(value.GetDouble())
		return
	}
	v.SetString(value.GetString())
}

// isNonFinite matches the strings non-finite numbers are encoded as.
func isNonFinite(s string) bool {
	switch s {
	case "+Inf", "-Inf", "NaN":
		return true
	}
	return false
}
