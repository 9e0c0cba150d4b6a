package project

import (
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
)

// Configuration holds the state specific to one kind of object (a sprite's
// animations, a text's string and font). Objects own exactly one and
// delegate every variant specific operation to it.
type Configuration interface {
	// Clone returns an independent copy of the concrete configuration.
	Clone() Configuration

	// SerializeTo writes the custom fields next to the common object fields.
	SerializeTo(el *serial.Element)
	// UnserializeFrom reads the custom fields. Missing fields keep defaults.
	UnserializeFrom(p *Project, el *serial.Element)

	// ExposeResources hands every asset path to w and stores the returned
	// path back.
	ExposeResources(w resources.Worker)

	GetProperties(p *Project) map[string]*PropertyDescriptor
	UpdateProperty(name, value string, p *Project) bool

	GetInitialInstanceProperties(inst *InitialInstance, p *Project, l *Layout) map[string]*PropertyDescriptor
	UpdateInitialInstanceProperty(inst *InitialInstance, name, value string, p *Project, l *Layout) bool
}

// ShaderSupport is implemented by configurations of objects that can be
// rendered with shaders.
type ShaderSupport interface {
	SupportShaders() bool
}

// ConfigurationDefaults provides the no-op behavior of a configuration
// without custom fields. Embed it and implement Clone.
type ConfigurationDefaults struct{}

func (ConfigurationDefaults) SerializeTo(*serial.Element) {}

func (ConfigurationDefaults) UnserializeFrom(*Project, *serial.Element) {}

func (ConfigurationDefaults) ExposeResources(resources.Worker) {}

func (ConfigurationDefaults) GetProperties(*Project) map[string]*PropertyDescriptor {
	return map[string]*PropertyDescriptor{}
}

func (ConfigurationDefaults) UpdateProperty(string, string, *Project) bool {
	return false
}

func (ConfigurationDefaults) GetInitialInstanceProperties(*InitialInstance, *Project, *Layout) map[string]*PropertyDescriptor {
	return map[string]*PropertyDescriptor{}
}

func (ConfigurationDefaults) UpdateInitialInstanceProperty(*InitialInstance, string, string, *Project, *Layout) bool {
	return false
}

// EmptyConfiguration is the configuration of a plain object with no custom
// fields.
type EmptyConfiguration struct {
	ConfigurationDefaults
}

func (*EmptyConfiguration) Clone() Configuration {
	return &EmptyConfiguration{}
}
