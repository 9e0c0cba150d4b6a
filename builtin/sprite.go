package builtin

import (
	"slices"
	"strconv"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Frame is one image of a direction.
type Frame struct {
	Image string
}

// Direction is the frame sequence shown for one facing of an animation.
type Direction struct {
	Looping           bool
	TimeBetweenFrames float64
	Frames            []Frame
}

// Animation is a named set of directions.
type Animation struct {
	Name                  string
	UseMultipleDirections bool
	Directions            []Direction
}

// Sprite is the configuration of objects displayed with animated images.
type Sprite struct {
	project.ConfigurationDefaults
	UpdateIfNotVisible bool
	Animations         []Animation
}

// InitializeContent gives new sprites the defaults of the editor.
func (s *Sprite) InitializeContent() {
	s.UpdateIfNotVisible = true
}

func (s *Sprite) Clone() project.Configuration {
	c := &Sprite{UpdateIfNotVisible: s.UpdateIfNotVisible}
	c.Animations = make([]Animation, len(s.Animations))
	for i, a := range s.Animations {
		c.Animations[i] = a.clone()
	}
	return c
}

func (a Animation) clone() Animation {
	c := a
	c.Directions = make([]Direction, len(a.Directions))
	for i, d := range a.Directions {
		c.Directions[i] = d
		c.Directions[i].Frames = slices.Clone(d.Frames)
	}
	return c
}

// AddAnimation appends an animation with a single direction and returns it.
func (s *Sprite) AddAnimation(name string) *Animation {
	s.Animations = append(s.Animations, Animation{
		Name:       name,
		Directions: []Direction{{TimeBetweenFrames: 0.08}},
	})
	return &s.Animations[len(s.Animations)-1]
}

// AnimationIndex returns the index of the animation called name, or -1.
func (s *Sprite) AnimationIndex(name string) int {
	return slices.IndexFunc(s.Animations, func(a Animation) bool {
		return a.Name == name
	})
}

func (s *Sprite) SupportShaders() bool {
	return true
}

func (s *Sprite) SerializeTo(el *serial.Element) {
	el.SetBoolAttribute("updateIfNotVisible", s.UpdateIfNotVisible)
	animations := el.AddChild("animations").ConsiderAsArrayOf("animation")
	for _, a := range s.Animations {
		ael := animations.AddChild("animation")
		ael.SetStringAttribute("name", a.Name)
		ael.SetBoolAttribute("useMultipleDirections", a.UseMultipleDirections)
		directions := ael.AddChild("directions").ConsiderAsArrayOf("direction")
		for _, d := range a.Directions {
			del := directions.AddChild("direction")
			del.SetBoolAttribute("looping", d.Looping)
			del.SetDoubleAttribute("timeBetweenFrames", d.TimeBetweenFrames)
			frames := del.AddChild("sprites").ConsiderAsArrayOf("sprite")
			for _, f := range d.Frames {
				frames.AddChild("sprite").SetStringAttribute("image", f.Image)
			}
		}
	}
}

func (s *Sprite) UnserializeFrom(_ *project.Project, el *serial.Element) {
	s.UpdateIfNotVisible = el.GetBoolAttribute("updateIfNotVisible", true)
	s.Animations = nil
	for _, ael := range el.GetChild("animations").ChildrenNamed("animation") {
		a := Animation{
			Name:                  ael.GetStringAttribute("name", ""),
			UseMultipleDirections: ael.GetBoolAttribute("useMultipleDirections", false, "typeNormal"),
		}
		for _, del := range ael.GetChild("directions").ChildrenNamed("direction") {
			d := Direction{
				Looping:           del.GetBoolAttribute("looping", false, "boucle"),
				TimeBetweenFrames: del.GetDoubleAttribute("timeBetweenFrames", 0.08, "tempsEntre"),
			}
			for _, fel := range del.GetChild("sprites").ChildrenNamed("sprite") {
				d.Frames = append(d.Frames, Frame{Image: fel.GetStringAttribute("image", "")})
			}
			a.Directions = append(a.Directions, d)
		}
		s.Animations = append(s.Animations, a)
	}
}

// ExposeResources hands every frame image to w.
func (s *Sprite) ExposeResources(w resources.Worker) {
	for i := range s.Animations {
		for j := range s.Animations[i].Directions {
			frames := s.Animations[i].Directions[j].Frames
			for k := range frames {
				frames[k].Image = w.Expose(resources.Image, frames[k].Image)
			}
		}
	}
}

func (s *Sprite) GetProperties(*project.Project) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"updateIfNotVisible": project.NewPropertyDescriptor(strconv.FormatBool(s.UpdateIfNotVisible)).
			SetType(project.PropertyBoolean).
			SetLabel("Animate even if hidden or far from the screen"),
	}
}

func (s *Sprite) UpdateProperty(name, value string, _ *project.Project) bool {
	if name != "updateIfNotVisible" {
		return false
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	s.UpdateIfNotVisible = v
	return true
}

// GetInitialInstanceProperties reports the animation an instance starts
// with, stored in the instance number properties.
func (s *Sprite) GetInitialInstanceProperties(inst *project.InitialInstance, _ *project.Project, _ *project.Layout) map[string]*project.PropertyDescriptor {
	d := project.NewPropertyDescriptor(formatNumber(inst.GetRawDoubleProperty("animation"))).
		SetType(project.PropertyNumber).
		SetLabel("Animation")
	for _, a := range s.Animations {
		d.AddExtraInfo(a.Name)
	}
	return map[string]*project.PropertyDescriptor{"animation": d}
}

// UpdateInitialInstanceProperty sets the starting animation. Values outside
// the animation list are rejected.
func (s *Sprite) UpdateInitialInstanceProperty(inst *project.InitialInstance, name, value string, _ *project.Project, _ *project.Layout) bool {
	if name != "animation" {
		return false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || n >= len(s.Animations) {
		return false
	}
	inst.SetRawDoubleProperty("animation", float64(n))
	return true
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
