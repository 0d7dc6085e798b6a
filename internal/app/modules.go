package app

import (
	"github.com/specialistvlad/tailgrid/internal/registry"
	"github.com/specialistvlad/tailgrid/modules/aspectratio"
	"github.com/specialistvlad/tailgrid/modules/forms"
	"github.com/specialistvlad/tailgrid/modules/typography"
)

// coreModules is the definitive list of all plugin modules that are
// compiled into the tailgrid binary.
var coreModules = []registry.Module{
	&typography.Module{},
	&forms.Module{},
	&aspectratio.Module{},
}
