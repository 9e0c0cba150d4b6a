package project

import (
	"github.com/plus3/gdcore/serial"
)

// Behavior is a named component attached to an Object. Concrete behaviors
// are defined by platforms and created through Platform.CreateBehavior.
//
// Clone must return an independent copy of the concrete behavior: the copy
// is what an object clone owns, so sharing any mutable state with the
// receiver breaks clone independence.
type Behavior interface {
	GetName() string
	SetName(name string)
	GetType() string
	SetType(typ string)

	Clone() Behavior

	// SerializeTo writes the behavior specific fields. The name and type are
	// written by the owning object.
	SerializeTo(el *serial.Element)
	UnserializeFrom(el *serial.Element)

	GetProperties(p *Project) map[string]*PropertyDescriptor
	UpdateProperty(name, value string, p *Project) bool
}

// Initializer is implemented by behaviors and configurations that need
// default values when created by a platform.
type Initializer interface {
	InitializeContent()
}

// BehaviorBase carries the name and type of a behavior and no-op defaults for
// the rest of the Behavior interface except Clone, which every concrete
// behavior has to provide itself.
type BehaviorBase struct {
	name string
	typ  string
}

func (b *BehaviorBase) GetName() string     { return b.name }
func (b *BehaviorBase) SetName(name string) { b.name = name }
func (b *BehaviorBase) GetType() string     { return b.typ }
func (b *BehaviorBase) SetType(typ string)  { b.typ = typ }
func (b *BehaviorBase) SerializeTo(*serial.Element) {}
func (b *BehaviorBase) UnserializeFrom(*serial.Element) {}

func (b *BehaviorBase) GetProperties(*Project) map[string]*PropertyDescriptor {
	return map[string]*PropertyDescriptor{}
}

func (b *BehaviorBase) UpdateProperty(string, string, *Project) bool {
	return false
}
