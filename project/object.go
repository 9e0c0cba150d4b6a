package project

import (
	"github.com/plus3/gdcore/resources"
)

// Object is an entity prototype: a name, a type tag, the configuration of
// its type, a set of uniquely named behaviors and its variables. An Object
// exclusively owns all of them.
type Object struct {
	name      string
	typ       string
	config    Configuration
	behaviors map[string]Behavior
	variables *Variables
}

// NewObject creates an object. A nil configuration is replaced by an
// EmptyConfiguration.
func NewObject(name, typ string, config Configuration) *Object {
	if config == nil {
		config = &EmptyConfiguration{}
	}
	return &Object{
		name:      name,
		typ:       typ,
		config:    config,
		behaviors: make(map[string]Behavior),
		variables: NewVariables(),
	}
}

func (o *Object) GetName() string     { return o.name }
func (o *Object) SetName(name string) { o.name = name }
func (o *Object) GetType() string     { return o.typ }
func (o *Object) SetType(typ string)  { o.typ = typ }

// GetConfiguration returns the type specific state of the object.
func (o *Object) GetConfiguration() Configuration {
	return o.config
}

// GetVariables returns the object variables.
func (o *Object) GetVariables() *Variables {
	return o.variables
}

// Clone returns a deep copy sharing no mutable state with o.
func (o *Object) Clone() *Object {
	c := &Object{}
	c.init(o)
	return c
}

// CopyFrom replaces the content of o with a deep copy of other.
func (o *Object) CopyFrom(other *Object) {
	if o == other {
		return
	}
	o.init(other)
}

func (o *Object) init(src *Object) {
	o.name = src.name
	o.typ = src.typ
	o.config = src.config.Clone()
	o.variables = src.variables.Clone()
	o.behaviors = make(map[string]Behavior, len(src.behaviors))
	for name, b := range src.behaviors {
		c := b.Clone()
		c.SetName(name)
		o.behaviors[name] = c
	}
}

// ExposeResources reports every asset referenced by the object to w.
func (o *Object) ExposeResources(w resources.Worker) {
	o.config.ExposeResources(w)
}

// SupportShaders reports whether the object type can be rendered with
// shaders.
func (o *Object) SupportShaders() bool {
	if s, ok := o.config.(ShaderSupport); ok {
		return s.SupportShaders()
	}
	return false
}

// GetProperties returns the editable properties of the object type.
func (o *Object) GetProperties(p *Project) map[string]*PropertyDescriptor {
	return o.config.GetProperties(p)
}

// UpdateProperty changes a property. It returns false when the value cannot
// be set.
func (o *Object) UpdateProperty(name, value string, p *Project) bool {
	return o.config.UpdateProperty(name, value, p)
}

// GetInitialInstanceProperties returns the properties specific to one
// instance of the object placed in layout l.
func (o *Object) GetInitialInstanceProperties(inst *InitialInstance, p *Project, l *Layout) map[string]*PropertyDescriptor {
	return o.config.GetInitialInstanceProperties(inst, p, l)
}

func (o *Object) UpdateInitialInstanceProperty(inst *InitialInstance, name, value string, p *Project, l *Layout) bool {
	return o.config.UpdateInitialInstanceProperty(inst, name, value, p, l)
}

// ObjectHasName returns a predicate matching objects called name, for use
// with slices.IndexFunc and friends.
func ObjectHasName(name string) func(*Object) bool {
	return func(o *Object) bool {
		return o.name == name
	}
}
