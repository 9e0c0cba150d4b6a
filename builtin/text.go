package builtin

import (
	"strconv"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Color is an 8 bit RGB color.
type Color struct {
	R, G, B uint8
}

// Text is the configuration of objects displaying a string.
type Text struct {
	project.ConfigurationDefaults
	String        string
	Font          string
	CharacterSize int
	Bold          bool
	Italic        bool
	Color         Color
}

func (t *Text) InitializeContent() {
	t.String = "Text"
	t.CharacterSize = 20
}

func (t *Text) Clone() project.Configuration {
	c := *t
	return &c
}

func (t *Text) SupportShaders() bool {
	return true
}

func (t *Text) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("string", t.String)
	el.SetStringAttribute("font", t.Font)
	el.SetIntAttribute("characterSize", t.CharacterSize)
	el.SetBoolAttribute("bold", t.Bold)
	el.SetBoolAttribute("italic", t.Italic)
	el.AddChild("color").
		SetIntAttribute("r", int(t.Color.R)).
		SetIntAttribute("g", int(t.Color.G)).
		SetIntAttribute("b", int(t.Color.B))
}

// UnserializeFrom accepts the capitalized names of older files.
func (t *Text) UnserializeFrom(_ *project.Project, el *serial.Element) {
	t.String = el.GetStringAttribute("string", "", "String")
	t.Font = el.GetStringAttribute("font", "", "Font")
	t.CharacterSize = el.GetIntAttribute("characterSize", 20, "CharacterSize")
	t.Bold = el.GetBoolAttribute("bold", false)
	t.Italic = el.GetBoolAttribute("italic", false)
	c := el.GetChild("color", "Color")
	t.Color = Color{
		R: clampByte(c.GetIntAttribute("r", 0)),
		G: clampByte(c.GetIntAttribute("g", 0)),
		B: clampByte(c.GetIntAttribute("b", 0)),
	}
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

func (t *Text) ExposeResources(w resources.Worker) {
	t.Font = w.Expose(resources.Font, t.Font)
}

func (t *Text) GetProperties(*project.Project) map[string]*project.PropertyDescriptor {
	return map[string]*project.PropertyDescriptor{
		"text": project.NewPropertyDescriptor(t.String).
			SetLabel("Text"),
		"font": project.NewPropertyDescriptor(t.Font).
			SetType(project.PropertyResource).
			AddExtraInfo(string(resources.Font)).
			SetLabel("Font"),
		"characterSize": project.NewPropertyDescriptor(strconv.Itoa(t.CharacterSize)).
			SetType(project.PropertyNumber).
			SetLabel("Size"),
		"bold": project.NewPropertyDescriptor(strconv.FormatBool(t.Bold)).
			SetType(project.PropertyBoolean).
			SetLabel("Bold"),
		"italic": project.NewPropertyDescriptor(strconv.FormatBool(t.Italic)).
			SetType(project.PropertyBoolean).
			SetLabel("Italic"),
	}
}

func (t *Text) UpdateProperty(name, value string, _ *project.Project) bool {
	switch name {
	case "text":
		t.String = value
	case "font":
		t.Font = value
	case "characterSize":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return false
		}
		t.CharacterSize = n
	case "bold", "italic":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		if name == "bold" {
			t.Bold = b
		} else {
			t.Italic = b
		}
	default:
		return false
	}
	return true
}
