package project

import (
	"fmt"
	"iter"
	"slices"

	"github.com/plus3/gdcore/serial"
)

type namedVariable struct {
	name     string
	variable *Variable
}

// Variables is an ordered list of uniquely named variables, owned by one
// object, instance or layout.
type Variables struct {
	entries []namedVariable
}

func NewVariables() *Variables {
	return &Variables{}
}

func (vs *Variables) Has(name string) bool {
	return vs.Position(name) >= 0
}

// Position returns the index of the variable called name, or -1.
func (vs *Variables) Position(name string) int {
	return slices.IndexFunc(vs.entries, func(e namedVariable) bool {
		return e.name == name
	})
}

// Get returns the variable called name. The variable must exist.
func (vs *Variables) Get(name string) *Variable {
	v, ok := vs.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("variable %q does not exist", name))
	}
	return v
}

func (vs *Variables) Lookup(name string) (*Variable, bool) {
	if i := vs.Position(name); i >= 0 {
		return vs.entries[i].variable, true
	}
	return nil, false
}

// Insert stores a copy of v under name at position pos (appended when pos
// is out of range) and returns the stored copy. It returns nil when the
// name is taken.
func (vs *Variables) Insert(name string, v *Variable, pos int) *Variable {
	if vs.Has(name) {
		return nil
	}
	e := namedVariable{name: name, variable: v.Clone()}
	if pos < 0 || pos >= len(vs.entries) {
		vs.entries = append(vs.entries, e)
	} else {
		vs.entries = slices.Insert(vs.entries, pos, e)
	}
	return e.variable
}

// InsertNew inserts an empty variable.
func (vs *Variables) InsertNew(name string, pos int) *Variable {
	return vs.Insert(name, NewVariable(), pos)
}

func (vs *Variables) Remove(name string) {
	if i := vs.Position(name); i >= 0 {
		vs.entries = slices.Delete(vs.entries, i, i+1)
	}
}

// Rename changes the name of a variable, keeping its position. It fails
// when oldName is missing or newName is taken.
func (vs *Variables) Rename(oldName, newName string) bool {
	i := vs.Position(oldName)
	if i < 0 || vs.Has(newName) {
		return false
	}
	vs.entries[i].name = newName
	return true
}

// Swap exchanges two variables. Out of range indexes are ignored.
func (vs *Variables) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(vs.entries) || j >= len(vs.entries) {
		return
	}
	vs.entries[i], vs.entries[j] = vs.entries[j], vs.entries[i]
}

// Move moves the variable at index from to index to.
func (vs *Variables) Move(from, to int) {
	if from < 0 || to < 0 || from >= len(vs.entries) || to >= len(vs.entries) {
		return
	}
	e := vs.entries[from]
	vs.entries = slices.Delete(vs.entries, from, from+1)
	vs.entries = slices.Insert(vs.entries, to, e)
}

func (vs *Variables) Count() int {
	return len(vs.entries)
}

// At returns the name and variable at index i.
func (vs *Variables) At(i int) (string, *Variable) {
	e := vs.entries[i]
	return e.name, e.variable
}

func (vs *Variables) Names() []string {
	names := make([]string, len(vs.entries))
	for i, e := range vs.entries {
		names[i] = e.name
	}
	return names
}

// All iterates over the variables in order.
func (vs *Variables) All() iter.Seq2[string, *Variable] {
	return func(yield func(string, *Variable) bool) {
		for _, e := range vs.entries {
			if !yield(e.name, e.variable) {
				return
			}
		}
	}
}

func (vs *Variables) Clear() {
	vs.entries = nil
}

// Clone returns a deep copy.
func (vs *Variables) Clone() *Variables {
	c := &Variables{entries: make([]namedVariable, len(vs.entries))}
	for i, e := range vs.entries {
		c.entries[i] = namedVariable{name: e.name, variable: e.variable.Clone()}
	}
	return c
}

func (vs *Variables) SerializeTo(el *serial.Element) {
	el.ConsiderAsArrayOf("variable")
	for _, e := range vs.entries {
		c := el.AddChild("variable")
		c.SetStringAttribute("name", e.name)
		e.variable.SerializeTo(c)
	}
}

// UnserializeFrom replaces the content with the variables of el. Entries
// without a name or repeating a name are skipped.
func (vs *Variables) UnserializeFrom(el *serial.Element) {
	vs.Clear()
	for _, c := range el.ChildrenNamed("variable") {
		name := c.GetStringAttribute("name", "")
		if name == "" || vs.Has(name) {
			continue
		}
		v := NewVariable()
		v.UnserializeFrom(c)
		vs.entries = append(vs.entries, namedVariable{name: name, variable: v})
	}
}
