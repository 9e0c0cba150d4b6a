package builtin

import (
	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/serial"
)

// Platformer makes an object a character of a platform game.
type Platformer struct {
	project.BehaviorBase
	Gravity           float64
	MaxFallingSpeed   float64
	Acceleration      float64
	Deceleration      float64
	MaxSpeed          float64
	JumpSpeed         float64
	CanGrabPlatforms  bool
	IgnoreDefaultKeys bool
}

func (b *Platformer) InitializeContent() {
	b.Gravity = 1000
	b.MaxFallingSpeed = 700
	b.Acceleration = 1500
	b.Deceleration = 1500
	b.MaxSpeed = 250
	b.JumpSpeed = 600
}

func (b *Platformer) Clone() project.Behavior {
	c := *b
	return &c
}

func (b *Platformer) SerializeTo(el *serial.Element) {
	el.SetDoubleAttribute("gravity", b.Gravity)
	el.SetDoubleAttribute("maxFallingSpeed", b.MaxFallingSpeed)
	el.SetDoubleAttribute("acceleration", b.Acceleration)
	el.SetDoubleAttribute("deceleration", b.Deceleration)
	el.SetDoubleAttribute("maxSpeed", b.MaxSpeed)
	el.SetDoubleAttribute("jumpSpeed", b.JumpSpeed)
	el.SetBoolAttribute("canGrabPlatforms", b.CanGrabPlatforms)
	el.SetBoolAttribute("ignoreDefaultControls", b.IgnoreDefaultKeys)
}

func (b *Platformer) UnserializeFrom(el *serial.Element) {
	b.Gravity = el.GetDoubleAttribute("gravity", 1000)
	b.MaxFallingSpeed = el.GetDoubleAttribute("maxFallingSpeed", 700)
	b.Acceleration = el.GetDoubleAttribute("acceleration", 1500)
	b.Deceleration = el.GetDoubleAttribute("deceleration", 1500)
	b.MaxSpeed = el.GetDoubleAttribute("maxSpeed", 250)
	b.JumpSpeed = el.GetDoubleAttribute("jumpSpeed", 600)
	b.CanGrabPlatforms = el.GetBoolAttribute("canGrabPlatforms", false)
	b.IgnoreDefaultKeys = el.GetBoolAttribute("ignoreDefaultControls", false)
}

func (b *Platformer) GetProperties(*project.Project) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"gravity":               numberProperty(b.Gravity, "Gravity"),
		"maxFallingSpeed":       numberProperty(b.MaxFallingSpeed, "Max. falling speed"),
		"acceleration":          numberProperty(b.Acceleration, "Acceleration"),
		"deceleration":          numberProperty(b.Deceleration, "Deceleration"),
		"maxSpeed":              numberProperty(b.MaxSpeed, "Max. speed"),
		"jumpSpeed":             numberProperty(b.JumpSpeed, "Jump speed"),
		"canGrabPlatforms":      boolProperty(b.CanGrabPlatforms, "Can grab platform ledges"),
		"ignoreDefaultControls": boolProperty(b.IgnoreDefaultKeys, "Default controls").SetHidden(true),
	}
}

func (b *Platformer) UpdateProperty(name, value string, _ *project.Project) bool {
	switch name {
	case "gravity":
		return parseNumber(value, &b.Gravity)
	case "maxFallingSpeed":
		return parseNumber(value, &b.MaxFallingSpeed)
	case "acceleration":
		return parseNumber(value, &b.Acceleration)
	case "deceleration":
		return parseNumber(value, &b.Deceleration)
	case "maxSpeed":
		return parseNumber(value, &b.MaxSpeed)
	case "jumpSpeed":
		return parseNumber(value, &b.JumpSpeed)
	case "canGrabPlatforms":
		return parseBool(value, &b.CanGrabPlatforms)
	case "ignoreDefaultControls":
		return parseBool(value, &b.IgnoreDefaultKeys)
	}
	return false
}
