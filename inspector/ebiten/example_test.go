package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/gdcore/builtin"
	"github.com/plus3/gdcore/inspector"
	inspector_ebiten "github.com/plus3/gdcore/inspector/ebiten"
	"github.com/plus3/gdcore/project"
)

func Example() {
	// Build a small project to look at
	p := project.NewProject("demo", builtin.NewPlatform())
	player := p.GetObjects().InsertNewObject(p, builtin.SpriteObject, "Player", -1)
	player.AddNewBehavior(p, builtin.PlatformerType, "Platformer")

	// Create Ebiten window and ImGui backend
	backend := inspector_ebiten.NewImguiBackend("gdcore inspector", 1280, 720)

	editor := inspector_ebiten.NewEditor(p, backend)
	editor.Inspector.Browser.Select(inspector.Selection{Name: "Player"})
	editor.OnFrame = func() {
		imgui.Begin("Help")
		imgui.Text("Select an object to edit it")
		imgui.End()
	}

	// Run the editor
	if err := ebiten.RunGame(editor); err != nil {
		panic(err)
	}
}
