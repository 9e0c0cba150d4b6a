package project

// Property types understood by editors.
const (
	PropertyString   = "string"
	PropertyNumber   = "number"
	PropertyBoolean  = "boolean"
	PropertyChoice   = "choice"
	PropertyResource = "resource"
)

// PropertyDescriptor describes one editable field of an object, behavior
// or placed instance: its current value as a string and how an editor
// should present it.
type PropertyDescriptor struct {
	value       string
	typ         string
	label       string
	description string
	extraInfo   []string
	hidden      bool
}

// NewPropertyDescriptor creates a string property holding value.
func NewPropertyDescriptor(value string) *PropertyDescriptor {
	return &PropertyDescriptor{value: value, typ: PropertyString}
}

func (p *PropertyDescriptor) SetValue(v string) *PropertyDescriptor {
	p.value = v
	return p
}

func (p *PropertyDescriptor) GetValue() string {
	return p.value
}

func (p *PropertyDescriptor) SetType(t string) *PropertyDescriptor {
	p.typ = t
	return p
}

func (p *PropertyDescriptor) GetType() string {
	return p.typ
}

func (p *PropertyDescriptor) SetLabel(l string) *PropertyDescriptor {
	p.label = l
	return p
}

func (p *PropertyDescriptor) GetLabel() string {
	return p.label
}

func (p *PropertyDescriptor) SetDescription(d string) *PropertyDescriptor {
	p.description = d
	return p
}

func (p *PropertyDescriptor) GetDescription() string {
	return p.description
}

// AddExtraInfo appends a type specific hint, such as one of the choices of a
// choice property or the resource kind of a resource property.
func (p *PropertyDescriptor) AddExtraInfo(info string) *PropertyDescriptor {
	p.extraInfo = append(p.extraInfo, info)
	return p
}

func (p *PropertyDescriptor) GetExtraInfo() []string {
	return p.extraInfo
}

func (p *PropertyDescriptor) SetHidden(h bool) *PropertyDescriptor {
	p.hidden = h
	return p
}

func (p *PropertyDescriptor) IsHidden() bool {
	return p.hidden
}
