package project_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/resources"
	"github.com/plus3/gdcore/serial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformRegistration(t *testing.T) {
	pl := newTestPlatform()

	assert.Equal(t, "test", pl.GetName())
	assert.Equal(t, []string{"Marker", "Mover"}, pl.BehaviorTypes())
	assert.Equal(t, []string{"", "Card"}, pl.ObjectTypes())
	assert.True(t, pl.HasBehaviorType("Mover"))
	assert.False(t, pl.HasObjectType("Mover"))

	b, err := pl.CreateBehavior("Mover")
	require.NoError(t, err)
	assert.Equal(t, "Mover", b.GetType())
	assert.Equal(t, "", b.GetName())

	o, err := pl.CreateObject("Card", "c")
	require.NoError(t, err)
	assert.Equal(t, "c", o.GetName())
	assert.Equal(t, "Card", o.GetType())
	assert.IsType(t, &Card{}, o.GetConfiguration())
}

func TestPlatformUnknownTypes(t *testing.T) {
	pl := newTestPlatform()

	_, err := pl.CreateBehavior("Nope")
	assert.True(t, errors.Is(err, project.ErrUnknownType))
	assert.Contains(t, err.Error(), `"Nope"`)

	_, err = pl.CreateObject("Nope", "x")
	assert.ErrorIs(t, err, project.ErrUnknownType)
}

func TestPlatformFactories(t *testing.T) {
	pl := project.NewPlatform("custom")
	pl.RegisterBehaviorFactory("Fast", func() project.Behavior {
		return &Mover{Speed: 500}
	})
	pl.RegisterBehaviorFactory("Broken", func() project.Behavior {
		var m *Mover
		return m
	})

	b, err := pl.CreateBehavior("Fast")
	require.NoError(t, err)
	assert.Equal(t, 100.0, b.(*Mover).Speed, "InitializeContent runs after the factory")

	_, err = pl.CreateBehavior("Broken")
	assert.Error(t, err)

	assert.Panics(t, func() { pl.RegisterObjectFactory("x", nil) })
	assert.Panics(t, func() { pl.RegisterBehaviorFactory("x", nil) })
}

func TestProjectPlatforms(t *testing.T) {
	first := newTestPlatform()
	second := project.NewPlatform("other")
	p := project.NewProject("game", first, second, first)

	assert.Len(t, p.GetUsedPlatforms(), 2)
	assert.Same(t, first, p.GetCurrentPlatform())
	assert.True(t, p.SetCurrentPlatform("other"))
	assert.Same(t, second, p.GetCurrentPlatform())
	assert.False(t, p.SetCurrentPlatform("missing"))

	_, err := p.CreateBehavior("Mover")
	assert.ErrorIs(t, err, project.ErrUnknownType)

	_, err = project.NewProject("bare").CreateObject("Card", "x")
	assert.ErrorIs(t, err, project.ErrNoPlatform)
}

func TestObjectsContainer(t *testing.T) {
	p := newTestProject()
	c := project.NewObjectsContainer()

	a := c.InsertNewObject(p, "Card", "A", -1)
	require.NotNil(t, a)
	c.InsertNewObject(p, "", "C", -1)
	c.InsertNewObject(p, "", "B", 1)

	assert.Nil(t, c.InsertNewObject(p, "", "A", -1), "duplicate name")
	assert.Nil(t, c.InsertNewObject(p, "Unknown", "D", -1), "unknown type")
	assert.Nil(t, c.InsertNewObject(nil, "", "D", -1))

	assert.Equal(t, 3, c.GetObjectsCount())
	assert.Equal(t, 1, c.GetObjectPosition("B"))
	assert.Equal(t, -1, c.GetObjectPosition("D"))
	assert.Same(t, a, c.GetObject("A"))
	assert.Same(t, a, c.GetObjectAt(0))
	assert.Panics(t, func() { c.GetObject("D") })

	c.SwapObjects(0, 2)
	assert.Equal(t, []string{"C", "B", "A"}, objectNames(c))
	c.MoveObject(2, 0)
	assert.Equal(t, []string{"A", "C", "B"}, objectNames(c))

	assert.False(t, c.RenameObject("A", "B"))
	assert.True(t, c.RenameObject("A", "Z"))
	assert.Equal(t, "Z", a.GetName())

	c.RemoveObject("Z")
	c.RemoveObject("Z")
	assert.Equal(t, []string{"C", "B"}, objectNames(c))
}

func TestObjectsContainerInsertObjectClones(t *testing.T) {
	c := project.NewObjectsContainer()
	o := project.NewObject("A", "Card", &Card{Title: "t"})

	inserted := c.InsertObject(o, -1)
	require.NotNil(t, inserted)
	assert.NotSame(t, o, inserted)
	inserted.GetConfiguration().(*Card).Title = "changed"
	assert.Equal(t, "t", o.GetConfiguration().(*Card).Title)

	assert.Nil(t, c.InsertObject(o, -1))
}

func objectNames(c *project.ObjectsContainer) []string {
	var names []string
	for o := range c.Objects() {
		names = append(names, o.GetName())
	}
	return names
}

func TestInitialInstancesContainer(t *testing.T) {
	c := project.NewInitialInstancesContainer()

	id1, a := c.InsertNewInitialInstance()
	a.SetObjectName("Enemy")
	id2, b := c.InsertNewInitialInstance()
	b.SetObjectName("Player")
	tmpl := project.NewInitialInstance()
	tmpl.SetObjectName("Enemy")
	id3, e := c.InsertInitialInstance(tmpl)

	assert.NotSame(t, tmpl, e)
	assert.Equal(t, tmpl.GetPersistentUUID(), e.GetPersistentUUID())
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 2, c.CountInstancesOf("Enemy"))

	got, ok := c.Get(id2)
	require.True(t, ok)
	assert.Same(t, b, got)

	assert.Equal(t, 2, c.RenameInstancesOfObject("Enemy", "Foe"))
	assert.Equal(t, "Foe", a.GetObjectName())

	assert.True(t, c.Remove(id1))
	assert.False(t, c.Remove(id1))
	_, ok = c.Get(id1)
	assert.False(t, ok)

	assert.Equal(t, 1, c.RemoveInstancesOfObject("Foe"))
	_, ok = c.Get(id3)
	assert.False(t, ok)

	var ids []project.InstanceId
	for id := range c.All() {
		ids = append(ids, id)
	}
	assert.Equal(t, []project.InstanceId{id2}, ids)

	c.Clear()
	assert.Equal(t, 0, c.Count())
}

func TestInitialInstanceRoundTrip(t *testing.T) {
	inst := project.NewInitialInstance()
	inst.SetObjectName("Player")
	inst.SetX(10.5)
	inst.SetY(-3)
	inst.SetAngle(90)
	inst.SetZOrder(4)
	inst.SetLayer("UI")
	inst.SetHasCustomSize(true)
	inst.SetCustomWidth(32)
	inst.SetCustomHeight(16)
	inst.SetLocked(true)
	inst.SetRawDoubleProperty("animation", 2)
	inst.SetRawStringProperty("skin", "red")
	inst.GetVariables().InsertNew("hp", -1).SetValue(5)

	el := serial.NewElement()
	inst.SerializeTo(el)
	data, err := serial.ToJSON(el)
	require.NoError(t, err)
	decoded, err := serial.FromJSON(data)
	require.NoError(t, err)

	loaded := project.NewInitialInstance()
	loaded.UnserializeFrom(decoded)

	assert.Equal(t, "Player", loaded.GetObjectName())
	assert.Equal(t, 10.5, loaded.GetX())
	assert.Equal(t, -3.0, loaded.GetY())
	assert.Equal(t, 90.0, loaded.GetAngle())
	assert.Equal(t, 4, loaded.GetZOrder())
	assert.Equal(t, "UI", loaded.GetLayer())
	assert.True(t, loaded.HasCustomSize())
	assert.Equal(t, 32.0, loaded.GetCustomWidth())
	assert.Equal(t, 16.0, loaded.GetCustomHeight())
	assert.True(t, loaded.IsLocked())
	assert.Equal(t, inst.GetPersistentUUID(), loaded.GetPersistentUUID())
	assert.Equal(t, 2.0, loaded.GetRawDoubleProperty("animation"))
	assert.Equal(t, "red", loaded.GetRawStringProperty("skin"))
	assert.Equal(t, 5.0, loaded.GetVariables().Get("hp").GetValue())
}

func TestInitialInstanceLegacyFields(t *testing.T) {
	el, err := serial.FromJSON([]byte(`{
		"name": "Old",
		"plan": 7,
		"personalizedSize": true,
		"floatInfos": [{"name": "animation", "value": 1}]
	}`))
	require.NoError(t, err)

	inst := project.NewInitialInstance()
	uuid := inst.GetPersistentUUID()
	inst.UnserializeFrom(el)

	assert.Equal(t, 7, inst.GetZOrder())
	assert.True(t, inst.HasCustomSize())
	assert.Equal(t, 1.0, inst.GetRawDoubleProperty("animation"))
	assert.Equal(t, uuid, inst.GetPersistentUUID())
	assert.NotEqual(t, uuid, inst.ResetPersistentUUID().GetPersistentUUID())
}

func TestInitialInstanceCustomProperties(t *testing.T) {
	p := newTestProject()
	p.GetObjects().InsertNewObject(p, "Card", "Global", -1)
	l := p.InsertNewLayout("Level", -1)
	l.GetObjects().InsertNewObject(p, "", "Local", -1)

	inst := project.NewInitialInstance()
	inst.SetObjectName("Global")

	props := inst.GetCustomProperties(p, l)
	require.Contains(t, props, "flipped")
	assert.Equal(t, "false", props["flipped"].GetValue())
	assert.Equal(t, project.PropertyBoolean, props["flipped"].GetType())

	assert.True(t, inst.UpdateCustomProperty("flipped", "true", p, l))
	assert.Equal(t, "true", inst.GetCustomProperties(p, l)["flipped"].GetValue())
	assert.False(t, inst.UpdateCustomProperty("flipped", "maybe", p, l))
	assert.False(t, inst.UpdateCustomProperty("other", "1", p, l))

	inst.SetObjectName("Local")
	assert.Empty(t, inst.GetCustomProperties(p, l))
	assert.False(t, inst.UpdateCustomProperty("flipped", "true", p, l))

	inst.SetObjectName("Missing")
	assert.Empty(t, inst.GetCustomProperties(p, l))
}

func TestBehaviorProperties(t *testing.T) {
	p := newTestProject()
	o := project.NewObject("Player", "", nil)
	b := o.AddNewBehavior(p, "Mover", "Move")

	props := b.GetProperties(p)
	assert.Equal(t, "100", props["speed"].GetValue())
	assert.Equal(t, project.PropertyNumber, props["speed"].GetType())

	assert.True(t, b.UpdateProperty("speed", "2.5", p))
	assert.False(t, b.UpdateProperty("speed", "fast", p))
	assert.Equal(t, 2.5, b.(*Mover).Speed)

	tag := o.AddNewBehavior(p, "Marker", "Tag")
	assert.Empty(t, tag.GetProperties(p))
	assert.False(t, tag.UpdateProperty("x", "y", p))
}

func TestPropertyDescriptor(t *testing.T) {
	d := project.NewPropertyDescriptor("Left").
		SetType(project.PropertyChoice).
		SetLabel("Side").
		SetDescription("Which side").
		AddExtraInfo("Left").
		AddExtraInfo("Right").
		SetHidden(true)

	assert.Equal(t, "Left", d.GetValue())
	assert.Equal(t, project.PropertyChoice, d.GetType())
	assert.Equal(t, "Side", d.GetLabel())
	assert.Equal(t, "Which side", d.GetDescription())
	assert.Equal(t, []string{"Left", "Right"}, d.GetExtraInfo())
	assert.True(t, d.IsHidden())
	assert.Equal(t, project.PropertyString, project.NewPropertyDescriptor("").GetType())
}

func TestLayoutRenameAndRemoveObject(t *testing.T) {
	p := newTestProject()
	l := p.InsertNewLayout("Level", -1)
	l.GetObjects().InsertNewObject(p, "", "Enemy", -1)
	for range 3 {
		_, inst := l.GetInitialInstances().InsertNewInitialInstance()
		inst.SetObjectName("Enemy")
	}

	assert.True(t, l.RenameObject("Enemy", "Foe"))
	assert.Equal(t, 3, l.GetInitialInstances().CountInstancesOf("Foe"))
	assert.False(t, l.RenameObject("Enemy", "Other"))

	l.RemoveObject("Foe")
	assert.False(t, l.GetObjects().HasObjectNamed("Foe"))
	assert.Equal(t, 0, l.GetInitialInstances().Count())
}

func TestProjectLayouts(t *testing.T) {
	p := newTestProject()
	p.InsertNewLayout("B", -1)
	p.InsertNewLayout("A", 0)

	assert.Nil(t, p.InsertNewLayout("A", -1))
	assert.Equal(t, 2, p.GetLayoutsCount())
	assert.True(t, p.HasLayoutNamed("B"))
	assert.Equal(t, "A", p.GetLayout("A").GetName())
	assert.Panics(t, func() { p.GetLayout("C") })

	var names []string
	for l := range p.Layouts() {
		names = append(names, l.GetName())
	}
	assert.Equal(t, []string{"A", "B"}, names)

	p.RemoveLayout("A")
	assert.False(t, p.HasLayoutNamed("A"))
}

func TestRenameGlobalObject(t *testing.T) {
	p := newTestProject()
	p.GetObjects().InsertNewObject(p, "", "Coin", -1)

	plain := p.InsertNewLayout("Plain", -1)
	_, inst := plain.GetInitialInstances().InsertNewInitialInstance()
	inst.SetObjectName("Coin")

	shadowed := p.InsertNewLayout("Shadowed", -1)
	shadowed.GetObjects().InsertNewObject(p, "", "Coin", -1)
	_, local := shadowed.GetInitialInstances().InsertNewInitialInstance()
	local.SetObjectName("Coin")

	assert.True(t, p.RenameGlobalObject("Coin", "Gem"))
	assert.Equal(t, "Gem", inst.GetObjectName())
	assert.Equal(t, "Coin", local.GetObjectName())
	assert.False(t, p.RenameGlobalObject("Coin", "Gem"))
}

func TestProjectExposeResources(t *testing.T) {
	p := newTestProject()
	g := p.GetObjects().InsertNewObject(p, "Card", "Global", -1)
	g.GetConfiguration().(*Card).Image = "${ASSETS}/global.png"
	l := p.InsertNewLayout("Level", -1)
	o := l.GetObjects().InsertNewObject(p, "Card", "Local", -1)
	o.GetConfiguration().(*Card).Image = "${ASSETS}/local.png"

	inv := resources.NewInventory()
	p.ExposeResources(resources.Chain{
		resources.NewEnvExpander(func(name string) string {
			if name == "ASSETS" {
				return "assets"
			}
			return ""
		}),
		inv,
	})

	assert.Equal(t, []string{"assets/global.png", "assets/local.png"}, inv.Paths(resources.Image))
	assert.Equal(t, "assets/local.png", o.GetConfiguration().(*Card).Image)
}

// Scenario: a sprite-like object with two behaviors survives a project save
// and load.
func TestProjectRoundTrip(t *testing.T) {
	p := newTestProject()
	p.GetVariables().InsertNew("level", -1).SetValue(1)
	player := p.GetObjects().InsertNewObject(p, "Card", "Player", -1)
	player.AddNewBehavior(p, "Mover", "Physics")
	player.AddNewBehavior(p, "Marker", "Platformer")
	p.GetObjects().InsertNewObject(p, "", "Plain", -1)

	l := p.InsertNewLayout("Level 1", -1)
	l.GetObjects().InsertNewObject(p, "Card", "Door", -1)
	_, inst := l.GetInitialInstances().InsertNewInitialInstance()
	inst.SetObjectName("Player")
	inst.SetX(64)

	el := serial.NewElement()
	p.SerializeTo(el)
	data, err := serial.ToJSON(el)
	require.NoError(t, err)
	decoded, err := serial.FromJSON(data)
	require.NoError(t, err)

	loaded := project.NewProject("", newTestPlatform())
	loaded.UnserializeFrom(decoded)

	assert.Equal(t, "test", loaded.GetName())
	assert.Equal(t, 1.0, loaded.GetVariables().Get("level").GetValue())
	assert.Equal(t, []string{"Player", "Plain"}, objectNames(loaded.GetObjects()))

	got := loaded.GetObjects().GetObject("Player")
	assert.Equal(t, "Card", got.GetType())
	assert.Equal(t, []string{"Physics", "Platformer"}, got.GetAllBehaviorNames())

	require.True(t, loaded.HasLayoutNamed("Level 1"))
	ll := loaded.GetLayout("Level 1")
	assert.True(t, ll.GetObjects().HasObjectNamed("Door"))
	require.Equal(t, 1, ll.GetInitialInstances().Count())
	for _, i := range ll.GetInitialInstances().All() {
		assert.Equal(t, "Player", i.GetObjectName())
		assert.Equal(t, 64.0, i.GetX())
		assert.Equal(t, inst.GetPersistentUUID(), i.GetPersistentUUID())
	}

	again := serial.NewElement()
	loaded.SerializeTo(again)
	h1, err := serial.Hash(el)
	require.NoError(t, err)
	h2, err := serial.Hash(again)
	require.NoError(t, err)
	assert.Equal(t, h1, h2, "save, load and save is stable")
}

func TestProjectLoadUnknownObjectType(t *testing.T) {
	el, err := serial.FromJSON([]byte(`{
		"name": "mod",
		"objects": [
			{"name": "Weird", "type": "Plugin::Thing", "custom": 1,
			 "behaviors": {"Move": {"type": "Mover", "speed": 3}}},
			{"name": "Weird", "type": ""}
		],
		"layouts": []
	}`))
	require.NoError(t, err)

	p := project.NewProject("", newTestPlatform())
	p.UnserializeFrom(el)

	require.Equal(t, 1, p.GetObjects().GetObjectsCount())
	o := p.GetObjects().GetObject("Weird")
	assert.Equal(t, "Plugin::Thing", o.GetType())
	assert.IsType(t, &project.EmptyConfiguration{}, o.GetConfiguration())
	assert.True(t, slices.Contains(o.GetAllBehaviorNames(), "Move"))
}
