// Package ebiten runs the inspector panels in an Ebiten window.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gdcore/inspector"
	"github.com/plus3/gdcore/project"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The ImGui layout is not
// persisted to an ini file.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: b}
}

// Editor implements ebiten.Game, rendering an inspector over a project each
// frame.
type Editor struct {
	Project   *project.Project
	Inspector *inspector.Inspector
	backend   ImguiBackend

	// OnFrame runs after the panels are drawn, inside the ImGui frame.
	OnFrame func()
}

func NewEditor(p *project.Project, backend ImguiBackend) *Editor {
	return &Editor{
		Project:   p,
		Inspector: inspector.New(100),
		backend:   backend,
	}
}

func (e *Editor) Update() error {
	e.backend.BeginFrame()
	e.Inspector.Render(e.Project)
	if e.OnFrame != nil {
		e.OnFrame()
	}
	e.backend.EndFrame()
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.backend.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window inspecting p and blocks until it is closed.
func Run(p *project.Project, title string) error {
	editor := NewEditor(p, NewImguiBackend(title, 1280, 720))
	return ebiten.RunGame(editor)
}
