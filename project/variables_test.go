package project_test

import (
	"math"
	"testing"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/serial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableScalars(t *testing.T) {
	v := project.NewVariable()
	assert.Equal(t, "", v.GetString())
	assert.Equal(t, 0.0, v.GetValue())

	v.SetString("12.5")
	assert.False(t, v.IsNumber())
	assert.Equal(t, 12.5, v.GetValue())

	v.SetValue(3)
	assert.True(t, v.IsNumber())
	assert.Equal(t, "3", v.GetString())

	v.SetString("abc")
	assert.Equal(t, 0.0, v.GetValue())
}

func TestVariableStructure(t *testing.T) {
	v := project.NewVariable()
	v.GetChild("b").SetValue(2)
	v.GetChild("a").SetString("x")

	assert.True(t, v.IsStructure())
	assert.True(t, v.HasChild("a"))
	assert.Equal(t, []string{"a", "b"}, v.ChildNames())

	assert.False(t, v.RenameChild("a", "b"))
	assert.True(t, v.RenameChild("a", "c"))
	assert.Equal(t, "x", v.GetChild("c").GetString())

	v.RemoveChild("b")
	assert.Equal(t, []string{"c"}, v.ChildNames())

	v.SetValue(1)
	assert.False(t, v.IsStructure())
	assert.Empty(t, v.ChildNames())
}

func TestVariableCloneIsDeep(t *testing.T) {
	v := project.NewVariable()
	v.GetChild("inner").GetChild("leaf").SetValue(1)

	c := v.Clone()
	c.GetChild("inner").GetChild("leaf").SetValue(2)

	assert.Equal(t, 1.0, v.GetChild("inner").GetChild("leaf").GetValue())
}

func TestVariablesOrdering(t *testing.T) {
	vs := project.NewVariables()
	vs.InsertNew("a", -1)
	vs.InsertNew("c", -1)
	vs.InsertNew("b", 1)

	assert.Equal(t, []string{"a", "b", "c"}, vs.Names())
	assert.Nil(t, vs.InsertNew("a", -1))
	assert.Equal(t, 1, vs.Position("b"))

	vs.Swap(0, 2)
	assert.Equal(t, []string{"c", "b", "a"}, vs.Names())
	vs.Move(0, 2)
	assert.Equal(t, []string{"b", "a", "c"}, vs.Names())
	vs.Move(0, 7)
	assert.Equal(t, []string{"b", "a", "c"}, vs.Names())

	assert.True(t, vs.Rename("a", "z"))
	assert.False(t, vs.Rename("z", "b"))
	assert.False(t, vs.Rename("missing", "y"))

	vs.Remove("z")
	assert.Equal(t, []string{"b", "c"}, vs.Names())
	assert.Panics(t, func() { vs.Get("z") })

	name, _ := vs.At(1)
	assert.Equal(t, "c", name)
}

func TestVariablesInsertStoresCopy(t *testing.T) {
	vs := project.NewVariables()
	v := project.NewVariable()
	v.SetValue(1)

	stored := vs.Insert("n", v, -1)
	v.SetValue(2)

	assert.NotSame(t, v, stored)
	assert.Equal(t, 1.0, vs.Get("n").GetValue())
}

func TestVariablesRoundTrip(t *testing.T) {
	vs := project.NewVariables()
	vs.InsertNew("score", -1).SetValue(42)
	vs.InsertNew("name", -1).SetString("hero")
	inv := vs.InsertNew("inventory", -1)
	inv.GetChild("sword").SetValue(1)
	inv.GetChild("potion").GetChild("kind").SetString("heal")

	el := serial.NewElement()
	vs.SerializeTo(el)
	data, err := serial.ToYAML(el)
	require.NoError(t, err)
	decoded, err := serial.FromYAML(data)
	require.NoError(t, err)

	loaded := project.NewVariables()
	loaded.InsertNew("stale", -1)
	loaded.UnserializeFrom(decoded)

	assert.Equal(t, []string{"score", "name", "inventory"}, loaded.Names())
	assert.Equal(t, 42.0, loaded.Get("score").GetValue())
	assert.True(t, loaded.Get("score").IsNumber())
	assert.Equal(t, "hero", loaded.Get("name").GetString())

	got := loaded.Get("inventory")
	require.True(t, got.IsStructure())
	assert.Equal(t, []string{"potion", "sword"}, got.ChildNames())
	assert.Equal(t, "heal", got.GetChild("potion").GetChild("kind").GetString())
}

func TestVariablesNonFiniteRoundTrip(t *testing.T) {
	vs := project.NewVariables()
	vs.InsertNew("max", -1).SetValue(math.Inf(1))
	vs.InsertNew("unset", -1).SetValue(math.NaN())

	el := serial.NewElement()
	vs.SerializeTo(el)
	data, err := serial.ToJSON(el)
	require.NoError(t, err)
	decoded, err := serial.FromJSON(data)
	require.NoError(t, err)

	loaded := project.NewVariables()
	loaded.UnserializeFrom(decoded)
	require.True(t, loaded.Get("max").IsNumber())
	assert.True(t, math.IsInf(loaded.Get("max").GetValue(), 1))
	require.True(t, loaded.Get("unset").IsNumber())
	assert.True(t, math.IsNaN(loaded.Get("unset").GetValue()))
}
