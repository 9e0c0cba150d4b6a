package project

import (
	"github.com/plus3/gdcore/serial"
)

// SerializeTo writes the object type, variables, behaviors and the custom
// fields of its configuration to el. The name is written by the container
// owning the object.
func (o *Object) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("type", o.typ)
	o.variables.SerializeTo(el.AddChild("variables"))

	section := el.AddChild("behaviors")
	for name, b := range o.GetAllBehaviors() {
		bel := section.AddChild(name)
		bel.SetStringAttribute("type", b.GetType())
		b.SerializeTo(bel)
	}

	o.config.SerializeTo(el)
}

// UnserializeFrom restores the object from el. Behaviors are matched by
// name: an existing behavior of the same type is reused and repopulated,
// others are created with the current platform of p. Behaviors of unknown
// types are skipped.
func (o *Object) UnserializeFrom(p *Project, el *serial.Element) {
	o.typ = el.GetStringAttribute("type", o.typ)
	o.config.UnserializeFrom(p, el)
	o.variables.UnserializeFrom(el.GetChild("variables"))

	behaviors := make(map[string]Behavior)
	for _, entry := range behaviorEntries(el.GetChild("behaviors", "automatisms")) {
		name, typ := entry.name, entry.typ
		if name == "" {
			continue
		}
		if _, dup := behaviors[name]; dup {
			log.Warn("duplicate behavior {{behavior}} on {{object}} ignored", "behavior", name, "object", o.name)
			continue
		}
		b, ok := o.behaviors[name]
		if !ok || b.GetType() != typ {
			b = o.createBehavior(p, typ, name)
			if b == nil {
				continue
			}
		}
		b.SetName(name)
		b.UnserializeFrom(entry.content)
		behaviors[name] = b
	}
	o.behaviors = behaviors
}

func (o *Object) createBehavior(p *Project, typ, name string) Behavior {
	if p == nil {
		log.Warn("no project to create behavior {{behavior}} of type {{type}} on {{object}}", "behavior", name, "type", typ, "object", o.name)
		return nil
	}
	b, err := p.CreateBehavior(typ)
	if err != nil {
		log.Warn("skipping behavior {{behavior}} on {{object}}: {{error}}", "behavior", name, "object", o.name, "error", err)
		return nil
	}
	return b
}

type behaviorEntry struct {
	name    string
	typ     string
	content *serial.Element
}

// behaviorEntries lists the serialized behaviors of a section. Both the keyed
// form and the older array form with a name attribute are accepted.
func behaviorEntries(section *serial.Element) []behaviorEntry {
	var entries []behaviorEntry
	if section.IsArray() {
		for _, bel := range section.ChildrenNamed("behavior") {
			entries = append(entries, behaviorEntry{
				name:    bel.GetStringAttribute("name", ""),
				typ:     bel.GetStringAttribute("type", ""),
				content: bel,
			})
		}
		return entries
	}
	for name, bel := range section.Children() {
		entries = append(entries, behaviorEntry{
			name:    name,
			typ:     bel.GetStringAttribute("type", ""),
			content: bel,
		})
	}
	return entries
}
