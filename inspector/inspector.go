// Package inspector provides Dear ImGui panels to browse the objects of a
// project and edit their properties, behaviors and variables.
package inspector

import (
	"github.com/plus3/gdcore/project"
)

// Inspector combines an ObjectBrowser with an ObjectInspector showing the
// browser selection and a statistics panel.
type Inspector struct {
	Browser   ObjectBrowser
	Inspector ObjectInspector
	Stats     StatsPanel
	timer     *FrameTimer
}

func New(maxObjectsPerPage int) *Inspector {
	return &Inspector{
		Browser:   NewObjectBrowser(maxObjectsPerPage),
		Inspector: NewObjectInspector(),
		Stats:     NewStatsPanel(120),
		timer:     NewFrameTimer(),
	}
}

// Render draws all panels. It must be called between the begin and end of
// an ImGui frame.
func (i *Inspector) Render(p *project.Project) {
	i.Browser.Render(p)
	i.Inspector.Render(p, i.Browser.GetSelected())
	i.Stats.Render(p, i.timer.GetDeltaTime())
}
