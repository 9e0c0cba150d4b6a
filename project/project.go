package project

import (
	"fmt"
	"iter"
	"slices"

	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Project is the root of a game: the platforms it is built for, the global
// objects and the layouts.
type Project struct {
	name      string
	platforms []*Platform
	current   *Platform
	objects   *ObjectsContainer
	layouts   []*Layout
	variables *Variables
}

// NewProject creates a project using the given platforms. The first one
// becomes the current platform.
func NewProject(name string, platforms ...*Platform) *Project {
	p := &Project{
		name:      name,
		objects:   NewObjectsContainer(),
		variables: NewVariables(),
	}
	for _, pl := range platforms {
		p.AddPlatform(pl)
	}
	return p
}

func (p *Project) GetName() string               { return p.name }
func (p *Project) SetName(name string)           { p.name = name }
func (p *Project) GetObjects() *ObjectsContainer { return p.objects }
func (p *Project) GetVariables() *Variables      { return p.variables }
func (p *Project) GetCurrentPlatform() *Platform { return p.current }
func (p *Project) GetUsedPlatforms() []*Platform { return slices.Clone(p.platforms) }

// AddPlatform adds a platform. The first platform added becomes current.
func (p *Project) AddPlatform(pl *Platform) {
	if slices.Contains(p.platforms, pl) {
		return
	}
	p.platforms = append(p.platforms, pl)
	if p.current == nil {
		p.current = pl
	}
}

// SetCurrentPlatform selects the used platform called name.
func (p *Project) SetCurrentPlatform(name string) bool {
	for _, pl := range p.platforms {
		if pl.GetName() == name {
			p.current = pl
			return true
		}
	}
	return false
}

// CreateBehavior creates a behavior of type typ with the current platform.
func (p *Project) CreateBehavior(typ string) (Behavior, error) {
	if p.current == nil {
		return nil, ErrNoPlatform
	}
	return p.current.CreateBehavior(typ)
}

// CreateObject creates an object of type typ with the current platform.
func (p *Project) CreateObject(typ, name string) (*Object, error) {
	if p.current == nil {
		return nil, ErrNoPlatform
	}
	return p.current.CreateObject(typ, name)
}

// InsertNewLayout creates a layout at pos (appended when out of range). It
// returns nil when the name is used.
func (p *Project) InsertNewLayout(name string, pos int) *Layout {
	if p.HasLayoutNamed(name) {
		return nil
	}
	l := NewLayout(name)
	if pos < 0 || pos >= len(p.layouts) {
		p.layouts = append(p.layouts, l)
	} else {
		p.layouts = slices.Insert(p.layouts, pos, l)
	}
	return l
}

func (p *Project) HasLayoutNamed(name string) bool {
	_, ok := p.LookupLayout(name)
	return ok
}

func (p *Project) LookupLayout(name string) (*Layout, bool) {
	for _, l := range p.layouts {
		if l.GetName() == name {
			return l, true
		}
	}
	return nil, false
}

// GetLayout returns the layout called name. The layout must exist.
func (p *Project) GetLayout(name string) *Layout {
	l, ok := p.LookupLayout(name)
	if !ok {
		panic(fmt.Sprintf("layout %q does not exist", name))
	}
	return l
}

func (p *Project) RemoveLayout(name string) {
	p.layouts = slices.DeleteFunc(p.layouts, func(l *Layout) bool {
		return l.GetName() == name
	})
}

func (p *Project) GetLayoutsCount() int {
	return len(p.layouts)
}

// Layouts iterates over the layouts in order.
func (p *Project) Layouts() iter.Seq[*Layout] {
	return slices.Values(p.layouts)
}

// RenameGlobalObject renames a global object and the instances placed from
// it in every layout that does not define its own object of that name.
func (p *Project) RenameGlobalObject(oldName, newName string) bool {
	if !p.objects.RenameObject(oldName, newName) {
		return false
	}
	for _, l := range p.layouts {
		if !l.GetObjects().HasObjectNamed(oldName) {
			l.GetInitialInstances().RenameInstancesOfObject(oldName, newName)
		}
	}
	return true
}

// ExposeResources reports the assets of every global and layout object.
func (p *Project) ExposeResources(w resources.Worker) {
	p.objects.ExposeResources(w)
	for _, l := range p.layouts {
		l.ExposeResources(w)
	}
}

func (p *Project) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("name", p.name)
	if p.current != nil {
		el.SetStringAttribute("currentPlatform", p.current.GetName())
	}
	p.variables.SerializeTo(el.AddChild("variables"))
	p.objects.SerializeObjectsTo(el.AddChild("objects"))
	layouts := el.AddChild("layouts").ConsiderAsArrayOf("layout")
	for _, l := range p.layouts {
		l.SerializeTo(layouts.AddChild("layout"))
	}
}

// UnserializeFrom restores the project. Platforms are not persisted: the
// ones given at construction stay in use, and the saved current platform is
// selected when it is among them.
func (p *Project) UnserializeFrom(el *serial.Element) {
	p.name = el.GetStringAttribute("name", p.name)
	if name := el.GetStringAttribute("currentPlatform", ""); name != "" {
		if !p.SetCurrentPlatform(name) {
			log.Warn("platform {{platform}} is not available", "platform", name)
		}
	}
	p.variables.UnserializeFrom(el.GetChild("variables"))
	p.objects.UnserializeObjectsFrom(p, el.GetChild("objects"))

	p.layouts = nil
	for _, lel := range el.GetChild("layouts", "scenes").ChildrenNamed("layout") {
		l := NewLayout("")
		l.UnserializeFrom(p, lel)
		if p.HasLayoutNamed(l.GetName()) {
			log.Warn("duplicate layout {{layout}} ignored", "layout", l.GetName())
			continue
		}
		p.layouts = append(p.layouts, l)
	}
}
