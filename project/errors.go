package project

import "errors"

// ErrUnknownType is returned by platforms asked to create an object or
// behavior of a type they have no factory for.
var ErrUnknownType = errors.New("unknown type")

// ErrNoPlatform is returned when a project has no current platform to
// create objects or behaviors with.
var ErrNoPlatform = errors.New("project has no current platform")
