package project

import (
	"fmt"
	"iter"
	"slices"

	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// ObjectsContainer is an ordered list of uniquely named objects. Projects
// hold the global objects in one, layouts their own objects.
type ObjectsContainer struct {
	objects []*Object
}

func NewObjectsContainer() *ObjectsContainer {
	return &ObjectsContainer{}
}

// InsertNewObject creates an object of type typ with the current platform
// of p and inserts it at pos (appended when out of range). It returns nil
// when the name is used or the type is unknown.
func (c *ObjectsContainer) InsertNewObject(p *Project, typ, name string, pos int) *Object {
	if p == nil || c.HasObjectNamed(name) {
		return nil
	}
	o, err := p.CreateObject(typ, name)
	if err != nil {
		log.Debug("cannot insert object {{object}}: {{error}}", "object", name, "error", err)
		return nil
	}
	c.insert(o, pos)
	return o
}

// InsertObject inserts a clone of o at pos and returns the clone. It
// returns nil when the name is used.
func (c *ObjectsContainer) InsertObject(o *Object, pos int) *Object {
	if c.HasObjectNamed(o.GetName()) {
		return nil
	}
	clone := o.Clone()
	c.insert(clone, pos)
	return clone
}

func (c *ObjectsContainer) insert(o *Object, pos int) {
	if pos < 0 || pos >= len(c.objects) {
		c.objects = append(c.objects, o)
		return
	}
	c.objects = slices.Insert(c.objects, pos, o)
}

func (c *ObjectsContainer) HasObjectNamed(name string) bool {
	return c.GetObjectPosition(name) >= 0
}

// GetObjectPosition returns the index of the object called name, or -1.
func (c *ObjectsContainer) GetObjectPosition(name string) int {
	return slices.IndexFunc(c.objects, ObjectHasName(name))
}

// GetObject returns the object called name. The object must exist.
func (c *ObjectsContainer) GetObject(name string) *Object {
	o, ok := c.LookupObject(name)
	if !ok {
		panic(fmt.Sprintf("object %q does not exist", name))
	}
	return o
}

func (c *ObjectsContainer) LookupObject(name string) (*Object, bool) {
	if i := c.GetObjectPosition(name); i >= 0 {
		return c.objects[i], true
	}
	return nil, false
}

// GetObjectAt returns the object at index i.
func (c *ObjectsContainer) GetObjectAt(i int) *Object {
	return c.objects[i]
}

func (c *ObjectsContainer) GetObjectsCount() int {
	return len(c.objects)
}

// RemoveObject drops the object called name. Missing names are ignored.
func (c *ObjectsContainer) RemoveObject(name string) {
	if i := c.GetObjectPosition(name); i >= 0 {
		c.objects = slices.Delete(c.objects, i, i+1)
	}
}

// RenameObject renames the object oldName. It fails when oldName is missing
// or newName is used. References held elsewhere are not updated here.
func (c *ObjectsContainer) RenameObject(oldName, newName string) bool {
	o, ok := c.LookupObject(oldName)
	if !ok || c.HasObjectNamed(newName) {
		return false
	}
	o.SetName(newName)
	return true
}

// MoveObject moves the object at index from to index to.
func (c *ObjectsContainer) MoveObject(from, to int) {
	if from < 0 || to < 0 || from >= len(c.objects) || to >= len(c.objects) {
		return
	}
	o := c.objects[from]
	c.objects = slices.Delete(c.objects, from, from+1)
	c.objects = slices.Insert(c.objects, to, o)
}

// SwapObjects exchanges the objects at indexes i and j.
func (c *ObjectsContainer) SwapObjects(i, j int) {
	if i < 0 || j < 0 || i >= len(c.objects) || j >= len(c.objects) {
		return
	}
	c.objects[i], c.objects[j] = c.objects[j], c.objects[i]
}

// Objects iterates over the objects in order.
func (c *ObjectsContainer) Objects() iter.Seq[*Object] {
	return slices.Values(c.objects)
}

// ExposeResources reports the assets of every object to w.
func (c *ObjectsContainer) ExposeResources(w resources.Worker) {
	for _, o := range c.objects {
		o.ExposeResources(w)
	}
}

// SerializeObjectsTo writes every object, with its name, to el.
func (c *ObjectsContainer) SerializeObjectsTo(el *serial.Element) {
	el.ConsiderAsArrayOf("object")
	for _, o := range c.objects {
		oel := el.AddChild("object")
		oel.SetStringAttribute("name", o.GetName())
		o.SerializeTo(oel)
	}
}

// UnserializeObjectsFrom replaces the content with the objects of el.
// Objects of a type no platform knows are kept as plain objects with their
// type tag, common fields and behaviors; their custom fields are lost.
func (c *ObjectsContainer) UnserializeObjectsFrom(p *Project, el *serial.Element) {
	c.objects = nil
	for _, oel := range el.ChildrenNamed("object") {
		name := oel.GetStringAttribute("name", "")
		typ := oel.GetStringAttribute("type", "")
		if c.HasObjectNamed(name) {
			log.Warn("duplicate object {{object}} ignored", "object", name)
			continue
		}
		var o *Object
		if p != nil {
			var err error
			o, err = p.CreateObject(typ, name)
			if err != nil {
				log.Warn("loading {{object}} as a plain object: {{error}}", "object", name, "error", err)
			}
		}
		if o == nil {
			o = NewObject(name, typ, nil)
		}
		o.UnserializeFrom(p, oel)
		c.objects = append(c.objects, o)
	}
}
