package project

import (
	"fmt"
	"maps"
	"slices"

	"github.com/modern-go/reflect2"
)

// BehaviorFactory creates a new behavior instance.
type BehaviorFactory func() Behavior

// ConfigurationFactory creates the configuration of a new object.
type ConfigurationFactory func() Configuration

// Platform maps type names to the factories of the objects and behaviors it
// provides. Platforms are filled during setup and only read afterwards.
type Platform struct {
	name      string
	behaviors map[string]BehaviorFactory
	objects   map[string]ConfigurationFactory
}

// NewPlatform creates an empty platform.
func NewPlatform(name string) *Platform {
	return &Platform{
		name:      name,
		behaviors: make(map[string]BehaviorFactory),
		objects:   make(map[string]ConfigurationFactory),
	}
}

func (p *Platform) GetName() string {
	return p.name
}

// RegisterBehaviorFactory registers the factory for behaviors of type typ,
// replacing any previous registration.
func (p *Platform) RegisterBehaviorFactory(typ string, f BehaviorFactory) {
	if f == nil {
		panic("behavior factory for " + typ + " is nil")
	}
	p.behaviors[typ] = f
}

// RegisterObjectFactory registers the configuration factory for objects of
// type typ, replacing any previous registration.
func (p *Platform) RegisterObjectFactory(typ string, f ConfigurationFactory) {
	if f == nil {
		panic("object factory for " + typ + " is nil")
	}
	p.objects[typ] = f
}

type behaviorPointer[T any] interface {
	Behavior
	*T
}

type configurationPointer[T any] interface {
	Configuration
	*T
}

// RegisterBehavior registers behavior type T under typ. New instances start
// from the zero value of T, initialized through Initializer when
// implemented.
func RegisterBehavior[T any, P behaviorPointer[T]](p *Platform, typ string) {
	p.RegisterBehaviorFactory(typ, func() Behavior {
		return P(new(T))
	})
}

// RegisterObject registers configuration type T for objects of type typ.
func RegisterObject[T any, P configurationPointer[T]](p *Platform, typ string) {
	p.RegisterObjectFactory(typ, func() Configuration {
		return P(new(T))
	})
}

func (p *Platform) HasBehaviorType(typ string) bool {
	_, ok := p.behaviors[typ]
	return ok
}

func (p *Platform) HasObjectType(typ string) bool {
	_, ok := p.objects[typ]
	return ok
}

// BehaviorTypes returns the sorted behavior types of the platform.
func (p *Platform) BehaviorTypes() []string {
	return slices.Sorted(maps.Keys(p.behaviors))
}

// ObjectTypes returns the sorted object types of the platform.
func (p *Platform) ObjectTypes() []string {
	return slices.Sorted(maps.Keys(p.objects))
}

// CreateBehavior creates a behavior of type typ. The behavior has its type
// set and no name.
func (p *Platform) CreateBehavior(typ string) (Behavior, error) {
	f, ok := p.behaviors[typ]
	if !ok {
		return nil, fmt.Errorf("%w: behavior %q on platform %q", ErrUnknownType, typ, p.name)
	}
	b := f()
	if reflect2.IsNil(b) {
		return nil, fmt.Errorf("factory for behavior %q returned nil", typ)
	}
	b.SetType(typ)
	if i, ok := b.(Initializer); ok {
		i.InitializeContent()
	}
	return b, nil
}

// CreateObject creates an object of type typ called name.
func (p *Platform) CreateObject(typ, name string) (*Object, error) {
	f, ok := p.objects[typ]
	if !ok {
		return nil, fmt.Errorf("%w: object %q on platform %q", ErrUnknownType, typ, p.name)
	}
	config := f()
	if reflect2.IsNil(config) {
		return nil, fmt.Errorf("factory for object %q returned nil", typ)
	}
	if i, ok := config.(Initializer); ok {
		i.InitializeContent()
	}
	return NewObject(name, typ, config), nil
}
