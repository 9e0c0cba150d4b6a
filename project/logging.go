package project

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("gdcore/project", "object and behavior composition")

var log = logging.DefaultContext().Logger(REALM)
