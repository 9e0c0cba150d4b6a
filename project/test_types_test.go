package project_test

import (
	"strconv"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Common test behaviors and configurations

type Mover struct {
	project.BehaviorBase
	Speed float64
	Path  []string
}

func (m *Mover) InitializeContent() {
	m.Speed = 100
}

func (m *Mover) Clone() project.Behavior {
	c := *m
	c.Path = append([]string(nil), m.Path...)
	return &c
}

func (m *Mover) SerializeTo(el *serial.Element) {
	el.SetDoubleAttribute("speed", m.Speed)
	path := el.AddChild("path").ConsiderAsArrayOf("step")
	for _, s := range m.Path {
		path.AddChild("step").SetValue(serial.StringValue(s))
	}
}

func (m *Mover) UnserializeFrom(el *serial.Element) {
	m.Speed = el.GetDoubleAttribute("speed", 100)
	m.Path = nil
	for _, s := range el.GetChild("path").ChildrenNamed("step") {
		m.Path = append(m.Path, s.GetValue().GetString())
	}
}

func (m *Mover) GetProperties(*project.Project) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"speed": project.NewPropertyDescriptor(strconv.FormatFloat(m.Speed, 'g', -1, 64)).
			SetType(project.PropertyNumber),
	}
}

func (m *Mover) UpdateProperty(name, value string, _ *project.Project) bool {
	if name != "speed" {
		return false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	m.Speed = v
	return true
}

type Marker struct {
	project.BehaviorBase
}

func (m *Marker) Clone() project.Behavior {
	c := *m
	return &c
}

type Card struct {
	project.ConfigurationDefaults
	Title string
	Image string
}

func (c *Card) Clone() project.Configuration {
	clone := *c
	return &clone
}

func (c *Card) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("title", c.Title)
	el.SetStringAttribute("image", c.Image)
}

func (c *Card) UnserializeFrom(_ *project.Project, el *serial.Element) {
	c.Title = el.GetStringAttribute("title", "", "caption")
	c.Image = el.GetStringAttribute("image", "")
}

func (c *Card) ExposeResources(w resources.Worker) {
	c.Image = w.Expose(resources.Image, c.Image)
}

func (c *Card) SupportShaders() bool {
	return true
}

func (c *Card) GetInitialInstanceProperties(inst *project.InitialInstance, _ *project.Project, _ *project.Layout) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"flipped": project.NewPropertyDescriptor(strconv.FormatBool(inst.GetRawDoubleProperty("flipped") != 0)).
			SetType(project.PropertyBoolean),
	}
}

func (c *Card) UpdateInitialInstanceProperty(inst *project.InitialInstance, name, value string, _ *project.Project, _ *project.Layout) bool {
	if name != "flipped" {
		return false
	}
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	if v {
		inst.SetRawDoubleProperty("flipped", 1)
	} else {
		inst.SetRawDoubleProperty("flipped", 0)
	}
	return true
}

func newTestPlatform() *project.Platform {
	pl := project.NewPlatform("test")
	project.RegisterObject[project.EmptyConfiguration](pl, "")
	project.RegisterObject[Card](pl, "Card")
	project.RegisterBehavior[Mover](pl, "Mover")
	project.RegisterBehavior[Marker](pl, "Marker")
	return pl
}

func newTestProject() *project.Project {
	return project.NewProject("test", newTestPlatform())
}
