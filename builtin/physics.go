package builtin

import (
	"strconv"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/serial"
)

// Physics describes how an object takes part in the physics simulation.
type Physics struct {
	project.BehaviorBase
	Dynamic        bool
	FixedRotation  bool
	Density        float64
	Friction       float64
	Restitution    float64
	LinearDamping  float64
	AngularDamping float64
}

func (b *Physics) InitializeContent() {
	b.Dynamic = true
	b.Density = 1
	b.Friction = 0.3
	b.Restitution = 0.1
	b.AngularDamping = 0.1
}

func (b *Physics) Clone() project.Behavior {
	c := *b
	return &c
}

func (b *Physics) SerializeTo(el *serial.Element) {
	el.SetBoolAttribute("dynamic", b.Dynamic)
	el.SetBoolAttribute("fixedRotation", b.FixedRotation)
	el.SetDoubleAttribute("density", b.Density)
	el.SetDoubleAttribute("friction", b.Friction)
	el.SetDoubleAttribute("restitution", b.Restitution)
	el.SetDoubleAttribute("linearDamping", b.LinearDamping)
	el.SetDoubleAttribute("angularDamping", b.AngularDamping)
}

func (b *Physics) UnserializeFrom(el *serial.Element) {
	b.Dynamic = el.GetBoolAttribute("dynamic", true)
	b.FixedRotation = el.GetBoolAttribute("fixedRotation", false)
	b.Density = el.GetDoubleAttribute("density", 1, "massDensity")
	b.Friction = el.GetDoubleAttribute("friction", 0.3, "averageFriction")
	b.Restitution = el.GetDoubleAttribute("restitution", 0.1, "averageRestitution")
	b.LinearDamping = el.GetDoubleAttribute("linearDamping", 0)
	b.AngularDamping = el.GetDoubleAttribute("angularDamping", 0.1)
}

func (b *Physics) GetProperties(*project.Project) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"dynamic":        boolProperty(b.Dynamic, "Dynamic object"),
		"fixedRotation":  boolProperty(b.FixedRotation, "Fixed rotation"),
		"density":        numberProperty(b.Density, "Density"),
		"friction":       numberProperty(b.Friction, "Friction"),
		"restitution":    numberProperty(b.Restitution, "Restitution (elasticity)"),
		"linearDamping":  numberProperty(b.LinearDamping, "Linear damping"),
		"angularDamping": numberProperty(b.AngularDamping, "Angular damping"),
	}
}

func (b *Physics) UpdateProperty(name, value string, _ *project.Project) bool {
	switch name {
	case "dynamic":
		return parseBool(value, &b.Dynamic)
	case "fixedRotation":
		return parseBool(value, &b.FixedRotation)
	case "density":
		return parseNumber(value, &b.Density)
	case "friction":
		return parseNumber(value, &b.Friction)
	case "restitution":
		return parseNumber(value, &b.Restitution)
	case "linearDamping":
		return parseNumber(value, &b.LinearDamping)
	case "angularDamping":
		return parseNumber(value, &b.AngularDamping)
	}
	return false
}

func boolProperty(v bool, label string) *project.PropertyDescriptor {
	return project.NewPropertyDescriptor(strconv.FormatBool(v)).
		SetType(project.PropertyBoolean).
		SetLabel(label)
}

func numberProperty(v float64, label string) *project.PropertyDescriptor {
	return project.NewPropertyDescriptor(formatNumber(v)).
		SetType(project.PropertyNumber).
		SetLabel(label)
}

func parseBool(value string, dst *bool) bool {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	*dst = v
	return true
}

func parseNumber(value string, dst *float64) bool {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	*dst = v
	return true
}
