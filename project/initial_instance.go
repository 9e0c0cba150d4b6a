package project

import (
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/plus3/gdcore/serial"
)

// InitialInstance is an object placed in a layout: which object, where, and
// the per instance values that override the object defaults.
type InitialInstance struct {
	objectName     string
	x, y           float64
	angle          float64
	zOrder         int
	layer          string
	customSize     bool
	width, height  float64
	locked         bool
	variables      *Variables
	persistentUUID string

	numberProperties map[string]float64
	stringProperties map[string]string
}

// NewInitialInstance creates an instance with a fresh persistent UUID.
func NewInitialInstance() *InitialInstance {
	return &InitialInstance{
		variables:        NewVariables(),
		persistentUUID:   uuid.NewString(),
		numberProperties: make(map[string]float64),
		stringProperties: make(map[string]string),
	}
}

func (i *InitialInstance) GetObjectName() string     { return i.objectName }
func (i *InitialInstance) SetObjectName(name string) { i.objectName = name }
func (i *InitialInstance) GetX() float64             { return i.x }
func (i *InitialInstance) SetX(x float64)            { i.x = x }
func (i *InitialInstance) GetY() float64             { return i.y }
func (i *InitialInstance) SetY(y float64)            { i.y = y }
func (i *InitialInstance) GetAngle() float64         { return i.angle }
func (i *InitialInstance) SetAngle(a float64)        { i.angle = a }
func (i *InitialInstance) GetZOrder() int            { return i.zOrder }
func (i *InitialInstance) SetZOrder(z int)           { i.zOrder = z }
func (i *InitialInstance) GetLayer() string          { return i.layer }
func (i *InitialInstance) SetLayer(layer string)     { i.layer = layer }
func (i *InitialInstance) HasCustomSize() bool       { return i.customSize }
func (i *InitialInstance) SetHasCustomSize(c bool)   { i.customSize = c }
func (i *InitialInstance) GetCustomWidth() float64   { return i.width }
func (i *InitialInstance) SetCustomWidth(w float64)  { i.width = w }
func (i *InitialInstance) GetCustomHeight() float64  { return i.height }
func (i *InitialInstance) SetCustomHeight(h float64) { i.height = h }
func (i *InitialInstance) IsLocked() bool            { return i.locked }
func (i *InitialInstance) SetLocked(l bool)          { i.locked = l }

// GetVariables returns the variables overriding the object's for this
// instance.
func (i *InitialInstance) GetVariables() *Variables {
	return i.variables
}

func (i *InitialInstance) GetPersistentUUID() string {
	return i.persistentUUID
}

// ResetPersistentUUID assigns a new persistent UUID, as needed after
// duplicating an instance.
func (i *InitialInstance) ResetPersistentUUID() *InitialInstance {
	i.persistentUUID = uuid.NewString()
	return i
}

// GetRawDoubleProperty returns a number stored for the object type of this
// instance, or 0.
func (i *InitialInstance) GetRawDoubleProperty(name string) float64 {
	return i.numberProperties[name]
}

func (i *InitialInstance) SetRawDoubleProperty(name string, v float64) {
	i.numberProperties[name] = v
}

// GetRawStringProperty returns a string stored for the object type of this
// instance, or "".
func (i *InitialInstance) GetRawStringProperty(name string) string {
	return i.stringProperties[name]
}

func (i *InitialInstance) SetRawStringProperty(name, v string) {
	i.stringProperties[name] = v
}

// GetCustomProperties returns the properties the object of this instance
// exposes per instance. The object is looked up in the layout first, then in
// the project global objects.
func (i *InitialInstance) GetCustomProperties(p *Project, l *Layout) map[string]*PropertyDescriptor {
	o := resolveObject(i.objectName, p, l)
	if o == nil {
		return map[string]*PropertyDescriptor{}
	}
	return o.GetInitialInstanceProperties(i, p, l)
}

// UpdateCustomProperty changes a per instance property through the object of
// this instance.
func (i *InitialInstance) UpdateCustomProperty(name, value string, p *Project, l *Layout) bool {
	o := resolveObject(i.objectName, p, l)
	if o == nil {
		return false
	}
	return o.UpdateInitialInstanceProperty(i, name, value, p, l)
}

func resolveObject(name string, p *Project, l *Layout) *Object {
	if l != nil {
		if o, ok := l.GetObjects().LookupObject(name); ok {
			return o
		}
	}
	if p != nil {
		if o, ok := p.GetObjects().LookupObject(name); ok {
			return o
		}
	}
	return nil
}

// Clone returns a deep copy keeping the persistent UUID.
func (i *InitialInstance) Clone() *InitialInstance {
	c := *i
	c.variables = i.variables.Clone()
	c.numberProperties = maps.Clone(i.numberProperties)
	c.stringProperties = maps.Clone(i.stringProperties)
	return &c
}

func (i *InitialInstance) SerializeTo(el *serial.Element) {
	el.SetStringAttribute("name", i.objectName)
	el.SetDoubleAttribute("x", i.x)
	el.SetDoubleAttribute("y", i.y)
	el.SetDoubleAttribute("angle", i.angle)
	el.SetIntAttribute("zOrder", i.zOrder)
	el.SetStringAttribute("layer", i.layer)
	el.SetBoolAttribute("customSize", i.customSize)
	el.SetDoubleAttribute("width", i.width)
	el.SetDoubleAttribute("height", i.height)
	if i.locked {
		el.SetBoolAttribute("locked", true)
	}
	el.SetStringAttribute("persistentUuid", i.persistentUUID)

	numbers := el.AddChild("numberProperties").ConsiderAsArrayOf("property")
	for _, name := range slices.Sorted(maps.Keys(i.numberProperties)) {
		numbers.AddChild("property").
			SetStringAttribute("name", name).
			SetDoubleAttribute("value", i.numberProperties[name])
	}
	strs := el.AddChild("stringProperties").ConsiderAsArrayOf("property")
	for _, name := range slices.Sorted(maps.Keys(i.stringProperties)) {
		strs.AddChild("property").
			SetStringAttribute("name", name).
			SetStringAttribute("value", i.stringProperties[name])
	}
	i.variables.SerializeTo(el.AddChild("initialVariables"))
}

// UnserializeFrom restores the instance. A missing persistent UUID keeps the
// current one.
func (i *InitialInstance) UnserializeFrom(el *serial.Element) {
	i.objectName = el.GetStringAttribute("name", "")
	i.x = el.GetDoubleAttribute("x", 0)
	i.y = el.GetDoubleAttribute("y", 0)
	i.angle = el.GetDoubleAttribute("angle", 0)
	i.zOrder = el.GetIntAttribute("zOrder", 0, "plan")
	i.layer = el.GetStringAttribute("layer", "")
	i.customSize = el.GetBoolAttribute("customSize", false, "personalizedSize")
	i.width = el.GetDoubleAttribute("width", 0)
	i.height = el.GetDoubleAttribute("height", 0)
	i.locked = el.GetBoolAttribute("locked", false)
	i.persistentUUID = el.GetStringAttribute("persistentUuid", i.persistentUUID)

	i.numberProperties = make(map[string]float64)
	for _, c := range el.GetChild("numberProperties", "floatInfos").ChildrenNamed("property") {
		i.numberProperties[c.GetStringAttribute("name", "")] = c.GetDoubleAttribute("value", 0)
	}
	i.stringProperties = make(map[string]string)
	for _, c := range el.GetChild("stringProperties", "stringInfos").ChildrenNamed("property") {
		i.stringProperties[c.GetStringAttribute("name", "")] = c.GetStringAttribute("value", "")
	}
	i.variables.UnserializeFrom(el.GetChild("initialVariables"))
}
