package project

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/gdcore/serial"
)

// InstanceId identifies an instance within one InitialInstancesContainer.
// Ids are not persisted; they are assigned on insertion and on load.
type InstanceId uint32

// InitialInstancesContainer holds the instances placed in a layout, in
// placement order, with lookup by id.
type InitialInstancesContainer struct {
	nextId InstanceId
	order  []InstanceId
	index  *intmap.Map[InstanceId, *InitialInstance]
}

func NewInitialInstancesContainer() *InitialInstancesContainer {
	return &InitialInstancesContainer{
		nextId: 1,
		index:  intmap.New[InstanceId, *InitialInstance](64),
	}
}

// InsertNewInitialInstance adds an empty instance.
func (c *InitialInstancesContainer) InsertNewInitialInstance() (InstanceId, *InitialInstance) {
	return c.add(NewInitialInstance())
}

// InsertInitialInstance adds a copy of inst and returns the copy.
func (c *InitialInstancesContainer) InsertInitialInstance(inst *InitialInstance) (InstanceId, *InitialInstance) {
	return c.add(inst.Clone())
}

func (c *InitialInstancesContainer) add(inst *InitialInstance) (InstanceId, *InitialInstance) {
	id := c.nextId
	c.nextId++
	c.order = append(c.order, id)
	c.index.Put(id, inst)
	return id, inst
}

func (c *InitialInstancesContainer) Get(id InstanceId) (*InitialInstance, bool) {
	return c.index.Get(id)
}

// Remove deletes the instance id and reports whether it existed.
func (c *InitialInstancesContainer) Remove(id InstanceId) bool {
	if _, ok := c.index.Get(id); !ok {
		return false
	}
	c.index.Del(id)
	c.order = slices.DeleteFunc(c.order, func(o InstanceId) bool { return o == id })
	return true
}

// RemoveInstancesOfObject deletes every instance of the object called name
// and returns how many were removed.
func (c *InitialInstancesContainer) RemoveInstancesOfObject(name string) int {
	var removed int
	c.order = slices.DeleteFunc(c.order, func(id InstanceId) bool {
		inst, _ := c.index.Get(id)
		if inst.GetObjectName() != name {
			return false
		}
		c.index.Del(id)
		removed++
		return true
	})
	return removed
}

// RenameInstancesOfObject points every instance of oldName to newName and
// returns how many were changed.
func (c *InitialInstancesContainer) RenameInstancesOfObject(oldName, newName string) int {
	var renamed int
	for _, inst := range c.All() {
		if inst.GetObjectName() == oldName {
			inst.SetObjectName(newName)
			renamed++
		}
	}
	return renamed
}

// CountInstancesOf returns the number of instances of the object called name.
func (c *InitialInstancesContainer) CountInstancesOf(name string) int {
	var n int
	for _, inst := range c.All() {
		if inst.GetObjectName() == name {
			n++
		}
	}
	return n
}

func (c *InitialInstancesContainer) Count() int {
	return len(c.order)
}

// All iterates over the instances in placement order.
func (c *InitialInstancesContainer) All() iter.Seq2[InstanceId, *InitialInstance] {
	return func(yield func(InstanceId, *InitialInstance) bool) {
		for _, id := range c.order {
			inst, _ := c.index.Get(id)
			if !yield(id, inst) {
				return
			}
		}
	}
}

func (c *InitialInstancesContainer) Clear() {
	c.order = nil
	c.index.Clear()
}

func (c *InitialInstancesContainer) SerializeTo(el *serial.Element) {
	el.ConsiderAsArrayOf("instance")
	for _, inst := range c.All() {
		inst.SerializeTo(el.AddChild("instance"))
	}
}

// UnserializeFrom replaces the content with the instances of el.
func (c *InitialInstancesContainer) UnserializeFrom(el *serial.Element) {
	c.Clear()
	for _, iel := range el.ChildrenNamed("instance") {
		inst := NewInitialInstance()
		inst.UnserializeFrom(iel)
		c.add(inst)
	}
}
