package project

import (
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Layout is a scene of a project: its own objects and the instances placed
// in it.
type Layout struct {
	name      string
	objects   *ObjectsContainer
	instances *InitialInstancesContainer
	variables *Variables
}

func NewLayout(name string) *Layout {
	return &Layout{
		name:      name,
		objects:   NewObjectsContainer(),
		instances: NewInitialInstancesContainer(),
		variables: NewVariables(),
	}
}

func (l *Layout) GetName() string                                 { return l.name }
func (l *Layout) SetName(name string)                             { l.name = name }
func (l *Layout) GetObjects() *ObjectsContainer                   { return l.objects }
func (l *Layout) GetInitialInstances() *InitialInstancesContainer { return l.instances }
func (l *Layout) GetVariables() *Variables                        { return l.variables }

// RenameObject renames a layout object and the instances placed from it.
func (l *Layout) RenameObject(oldName, newName string) bool {
	if !l.objects.RenameObject(oldName, newName) {
		return false
	}
	l.instances.RenameInstancesOfObject(oldName, newName)
	return true
}

// RemoveObject removes a layout object and every instance placed from it.
func (l *Layout) RemoveObject(name string) {
	if !l.objects.HasObjectNamed(name) {
		return
	}
	l.objects.RemoveObject(name)
	l.instances.RemoveInstancesOfObject(name)
}

// ExposeResources reports the assets of the layout objects to w.
func (l *Layout) ExposeResources(w resources.Worker) {
	l.objects.ExposeResources(w)
}

func (l *Layout) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("name", l.name)
	l.variables.SerializeTo(el.AddChild("variables"))
	l.objects.SerializeObjectsTo(el.AddChild("objects"))
	l.instances.SerializeTo(el.AddChild("instances"))
}

func (l *Layout) UnserializeFrom(p *Project, el *serial.Element) {
	l.name = el.GetStringAttribute("name", l.name)
	l.variables.UnserializeFrom(el.GetChild("variables"))
	l.objects.UnserializeObjectsFrom(p, el.GetChild("objects"))
	l.instances.UnserializeFrom(el.GetChild("instances", "positions"))
}
