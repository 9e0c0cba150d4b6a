package app_test

import (
	"bytes"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gdcore/builtin"
	"github.com/plus3/gdcore/cmd/gdcore/app"
	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/store"
)

type env struct {
	fs vfs.FileSystem
}

func newEnv(t *testing.T) *env {
	t.Helper()
	fs := memoryfs.New()

	p := project.NewProject("demo", builtin.NewPlatform())
	player := p.GetObjects().InsertNewObject(p, builtin.SpriteObject, "Player", -1)
	require.NotNil(t, player)
	idle := player.GetConfiguration().(*builtin.Sprite).AddAnimation("idle")
	idle.Directions[0].Frames = append(idle.Directions[0].Frames, builtin.Frame{Image: "player.png"})
	require.NotNil(t, player.AddNewBehavior(p, builtin.PhysicsType, "Physics"))

	hud := p.GetObjects().InsertNewObject(p, builtin.TextObject, "Hud", -1)
	hud.GetConfiguration().(*builtin.Text).Font = "${ASSETS}/font.ttf"

	l := p.InsertNewLayout("Level1", -1)
	l.GetObjects().InsertNewObject(p, builtin.SpriteObject, "Coin", -1)
	for _, name := range []string{"Coin", "Coin", "Player"} {
		_, inst := l.GetInitialInstances().InsertNewInitialInstance()
		inst.SetObjectName(name)
	}

	_, err := store.New(fs).Save("game.json", p)
	require.NoError(t, err)
	return &env{fs: fs}
}

func (e *env) run(args ...string) (string, error) {
	cmd := app.New(e.fs)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"-p", "game.json"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (e *env) load(t *testing.T, path string) *project.Project {
	t.Helper()
	p, err := store.New(e.fs).Load(path, builtin.NewPlatform())
	require.NoError(t, err)
	return p
}

func lines(out string) [][]string {
	var r [][]string
	for _, l := range strings.Split(strings.TrimSpace(out), "\n") {
		r = append(r, strings.Fields(l))
	}
	return r
}

func TestObjects(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("objects")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"LAYOUT", "NAME", "TYPE", "BEHAVIORS", "INSTANCES"},
		{"Player", builtin.SpriteObject, "Physics", "1"},
		{"Hud", builtin.TextObject, "0"},
		{"Level1", "Coin", builtin.SpriteObject, "2"},
	}, lines(out))

	out, err = e.run("objects", "--sort", "instances", "-r")
	require.NoError(t, err)
	assert.Equal(t, "Coin", lines(out)[1][1])

	out, err = e.run("objects", "Level1")
	require.NoError(t, err)
	assert.Len(t, lines(out), 2)

	out, err = e.run("objects", "Missing")
	require.NoError(t, err)
	assert.Equal(t, "no object found\n", out)

	_, err = e.run("objects", "--sort", "color")
	assert.EqualError(t, err, `unknown sort field "color"`)
}

func TestShowAndTypes(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("show", "Player")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Player\n")
	assert.Contains(t, out, "type: "+builtin.PhysicsType)

	out, err = e.run("show", "Level1/Coin", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name":"Coin"`)
	assert.Contains(t, out, `"type":"Sprite"`)

	_, err = e.run("show", "Nobody")
	assert.EqualError(t, err, `object "Nobody" not found`)
	_, err = e.run("show", "Level9/Coin")
	assert.EqualError(t, err, `layout "Level9" not found`)
	_, err = e.run("show", "Player", "-o", "xml")
	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)

	out, err = e.run("types")
	require.NoError(t, err)
	assert.Contains(t, lines(out), []string{"object", "<base>"})
	assert.Contains(t, lines(out), []string{"behavior", builtin.PlatformerType})
}

func TestEdits(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("clone", "Player", "Hero")
	require.NoError(t, err)
	assert.Equal(t, "object \"Player\" cloned to \"Hero\"\n", out)
	p := e.load(t, "game.json")
	assert.Equal(t, 1, p.GetObjects().GetObjectPosition("Hero"))
	assert.True(t, p.GetObjects().GetObject("Hero").HasBehaviorNamed("Physics"))

	_, err = e.run("clone", "Player", "Hud")
	assert.EqualError(t, err, `object "Hud" already exists`)

	_, err = e.run("create", builtin.TextObject, "Level2/Label")
	assert.EqualError(t, err, `layout "Level2" not found`)
	_, err = e.run("create", builtin.TextObject, "Level2/Label", "--layout")
	require.NoError(t, err)
	_, err = e.run("create", "Unknown", "Ghost")
	assert.ErrorIs(t, err, project.ErrUnknownType)

	_, err = e.run("add-behavior", "Level1/Coin", builtin.PlatformerType, "Jump")
	require.NoError(t, err)
	_, err = e.run("add-behavior", "Level1/Coin", "Unknown", "Other")
	assert.ErrorIs(t, err, project.ErrUnknownType)
	_, err = e.run("add-behavior", "Level1/Coin", builtin.PhysicsType, "Jump")
	assert.EqualError(t, err, `object "Level1/Coin" already has a behavior "Jump"`)

	_, err = e.run("add-behavior", "Level1/Coin", builtin.PhysicsType, "")
	assert.EqualError(t, err, "behavior name must not be empty")
	_, err = e.run("create", builtin.SpriteObject, "Level1/Coin")
	assert.EqualError(t, err, `object "Level1/Coin" already exists`)

	_, err = e.run("remove-behavior", "Player", "Physics")
	require.NoError(t, err)
	_, err = e.run("remove-behavior", "Player", "Physics")
	assert.EqualError(t, err, `object "Player" has no behavior "Physics"`)

	p = e.load(t, "game.json")
	l := p.GetLayout("Level2")
	assert.Equal(t, builtin.TextObject, l.GetObjects().GetObject("Label").GetType())
	assert.False(t, p.GetObjects().HasObjectNamed("Ghost"))
	assert.Equal(t, []string{"Jump"}, p.GetLayout("Level1").GetObjects().GetObject("Coin").GetAllBehaviorNames())
	assert.Empty(t, p.GetObjects().GetObject("Player").GetAllBehaviorNames())
	assert.True(t, p.GetObjects().GetObject("Hero").HasBehaviorNamed("Physics"))
}

func TestResources(t *testing.T) {
	t.Setenv("GDCORE_ASSETS", "/assets")
	e := newEnv(t)

	out, err := e.run("resources")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"KIND", "PATH"},
		{"font", "${ASSETS}/font.ttf"},
		{"image", "player.png"},
	}, lines(out))

	_, err = e.run("resources", "--write")
	assert.EqualError(t, err, "--write requires --expand")

	out, err = e.run("resources", "--expand")
	require.NoError(t, err)
	assert.Contains(t, lines(out), []string{"font", "/assets/font.ttf"})
	p := e.load(t, "game.json")
	assert.Equal(t, "${ASSETS}/font.ttf", p.GetObjects().GetObject("Hud").GetConfiguration().(*builtin.Text).Font)

	_, err = e.run("resources", "--expand", "--write")
	require.NoError(t, err)
	p = e.load(t, "game.json")
	assert.Equal(t, "/assets/font.ttf", p.GetObjects().GetObject("Hud").GetConfiguration().(*builtin.Text).Font)

	out, err = e.run("rename-resource", "player.png", "hero.png")
	require.NoError(t, err)
	assert.Equal(t, "1 references renamed\n", out)
	p = e.load(t, "game.json")
	sprite := p.GetObjects().GetObject("Player").GetConfiguration().(*builtin.Sprite)
	assert.Equal(t, "hero.png", sprite.Animations[0].Directions[0].Frames[0].Image)

	_, err = e.run("rename-resource", "player.png", "hero.png")
	assert.EqualError(t, err, `resource "player.png" is not used`)
}

func TestFmt(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("fmt")
	require.NoError(t, err)
	assert.Equal(t, "game.json unchanged\n", out)

	out, err = e.run("fmt", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "game.yaml written\n", out)
	assert.Equal(t, e.load(t, "game.json").GetObjects().GetObjectsCount(), e.load(t, "game.yaml").GetObjects().GetObjectsCount())

	out, err = e.run("fmt", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "game.json unchanged\n", out)

	out, err = e.run("fmt", "-o", "copy/game.json")
	require.NoError(t, err)
	assert.Equal(t, "copy/game.json written\n", out)

	_, err = e.run("fmt", "-f", "yaml", "-o", "out.json")
	assert.EqualError(t, err, `output "out.json" does not match format yaml`)
	_, err = e.run("fmt", "-f", "toml")
	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)
}

func TestInspect(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("inspect")
	assert.EqualError(t, err, "no inspector available in this build")

	var title string
	app.Viewer = func(p *project.Project, s string) error {
		title = s
		p.GetObjects().RemoveObject("Hud")
		return nil
	}
	t.Cleanup(func() { app.Viewer = nil })

	out, err := e.run("inspect")
	require.NoError(t, err)
	assert.Equal(t, "gdcore: demo", title)
	assert.Empty(t, out)
	assert.True(t, e.load(t, "game.json").GetObjects().HasObjectNamed("Hud"))

	out, err = e.run("inspect", "--save")
	require.NoError(t, err)
	assert.Equal(t, "game.json written\n", out)
	assert.False(t, e.load(t, "game.json").GetObjects().HasObjectNamed("Hud"))
}

func TestGlobalOptions(t *testing.T) {
	e := newEnv(t)

	_, err := e.run("-L", "chatty", "objects")
	assert.EqualError(t, err, `invalid log level "chatty"`)

	_, err = e.run("-p", "missing.json", "objects")
	assert.ErrorIs(t, err, vfs.ErrNotExist)
}

func TestStress(t *testing.T) {
	e := newEnv(t)

	out, err := e.run("stress", "-n", "20", "-d", "50ms", "--layouts", "2", "--gc-pause-metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "# Project Stress Test Report")
	assert.Contains(t, out, "- **Objects:** 20")
	assert.Contains(t, out, "- **Clone Time:**")
	assert.Contains(t, out, "## GC Pause Durations")

	_, err = e.run("stress", "-n", "0")
	assert.EqualError(t, err, "object count must be positive")
}

func TestGenerateProject(t *testing.T) {
	p, behaviors := app.GenerateProject(rand.New(rand.NewPCG(7, 7)), 30, 3)

	assert.Equal(t, 30, p.GetObjects().GetObjectsCount())
	assert.Equal(t, 3, p.GetLayoutsCount())

	instances, found := 0, 0
	for l := range p.Layouts() {
		instances += l.GetInitialInstances().Count()
	}
	for o := range p.GetObjects().Objects() {
		found += len(o.GetAllBehaviorNames())
		assert.True(t, o.GetVariables().Has("score"))
	}
	assert.Equal(t, 30, instances)
	assert.Equal(t, behaviors, found)
}
