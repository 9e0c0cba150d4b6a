// Package builtin provides the standard object and behavior types: Sprite
// and Text objects, Physics and Platformer behaviors.
package builtin

import (
	"github.com/plus3/gdcore/project"
)

// Type names registered by NewPlatform.
const (
	PlatformName   = "builtin"
	BaseObject     = ""
	SpriteObject   = "Sprite"
	TextObject     = "TextObject::Text"
	PhysicsType    = "PhysicsBehavior::PhysicsBehavior"
	PlatformerType = "PlatformBehavior::PlatformerObjectBehavior"
)

// NewPlatform returns a platform providing the builtin types. The plain base
// object is registered under the empty type name.
func NewPlatform() *project.Platform {
	p := project.NewPlatform(PlatformName)
	project.RegisterObject[project.EmptyConfiguration](p, BaseObject)
	project.RegisterObject[Sprite](p, SpriteObject)
	project.RegisterObject[Text](p, TextObject)
	project.RegisterBehavior[Physics](p, PhysicsType)
	project.RegisterBehavior[Platformer](p, PlatformerType)
	return p
}
