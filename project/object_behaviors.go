package project

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/modern-go/reflect2"
)

// GetAllBehaviorNames returns the sorted names of the object's behaviors.
func (o *Object) GetAllBehaviorNames() []string {
	return slices.Sorted(maps.Keys(o.behaviors))
}

// GetAllBehaviors iterates over the behaviors in name order.
func (o *Object) GetAllBehaviors() iter.Seq2[string, Behavior] {
	return func(yield func(string, Behavior) bool) {
		for _, name := range o.GetAllBehaviorNames() {
			if !yield(name, o.behaviors[name]) {
				return
			}
		}
	}
}

func (o *Object) HasBehaviorNamed(name string) bool {
	_, ok := o.behaviors[name]
	return ok
}

// GetBehavior returns the behavior called name. The behavior must exist;
// check with HasBehaviorNamed or use LookupBehavior otherwise.
func (o *Object) GetBehavior(name string) Behavior {
	b, ok := o.behaviors[name]
	if !ok {
		panic(fmt.Sprintf("object %q has no behavior %q", o.name, name))
	}
	return b
}

func (o *Object) LookupBehavior(name string) (Behavior, bool) {
	b, ok := o.behaviors[name]
	return b, ok
}

// AddBehavior takes ownership of b under its own name. When the name is
// empty or already used it returns false and the caller keeps ownership of b.
func (o *Object) AddBehavior(b Behavior) bool {
	if reflect2.IsNil(b) || b.GetName() == "" {
		return false
	}
	name := b.GetName()
	if o.HasBehaviorNamed(name) {
		log.Debug("behavior {{behavior}} already exists on {{object}}", "behavior", name, "object", o.name)
		return false
	}
	o.behaviors[name] = b
	return true
}

// RemoveBehavior drops the behavior called name. Missing names are ignored.
func (o *Object) RemoveBehavior(name string) {
	delete(o.behaviors, name)
}

// RenameBehavior moves the behavior oldName to newName, keeping the same
// instance and state. It fails when oldName is missing or newName is empty
// or used.
func (o *Object) RenameBehavior(oldName, newName string) bool {
	b, ok := o.behaviors[oldName]
	if !ok || newName == "" || o.HasBehaviorNamed(newName) {
		return false
	}
	delete(o.behaviors, oldName)
	b.SetName(newName)
	o.behaviors[newName] = b
	return true
}

// AddNewBehavior creates a behavior of type typ with the current platform of
// p and adds it as name. It returns nil when the type is unknown or the name
// is empty or already used.
func (o *Object) AddNewBehavior(p *Project, typ, name string) Behavior {
	if p == nil || name == "" || o.HasBehaviorNamed(name) {
		return nil
	}
	b, err := p.CreateBehavior(typ)
	if err != nil {
		log.Debug("cannot add behavior {{behavior}} to {{object}}: {{error}}", "behavior", name, "object", o.name, "error", err)
		return nil
	}
	b.SetName(name)
	if !o.AddBehavior(b) {
		return nil
	}
	return b
}
