package inspector

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gdcore/project"
)

// PropertyRow is a visible property in display order.
type PropertyRow struct {
	Name string
	*project.PropertyDescriptor
}

// PropertyRows sorts the visible properties by name.
func PropertyRows(props map[string]*project.PropertyDescriptor) []PropertyRow {
	var rows []PropertyRow
	for _, name := range slices.Sorted(maps.Keys(props)) {
		d := props[name]
		if d == nil || d.IsHidden() {
			continue
		}
		rows = append(rows, PropertyRow{Name: name, PropertyDescriptor: d})
	}
	return rows
}

// Label returns the text shown for the property.
func (r PropertyRow) Label() string {
	if l := r.GetLabel(); l != "" {
		return l
	}
	return r.Name
}

type ObjectInspector struct {
	newBehaviorType string
	newBehaviorName string
	lastError       string
}

func NewObjectInspector() ObjectInspector {
	return ObjectInspector{}
}

// Render draws the selected object: its properties, the raw fields of its
// configuration, its behaviors and its variables.
func (oi *ObjectInspector) Render(p *project.Project, sel Selection) {
	if !imgui.BeginV("Object Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	o, _, ok := sel.Resolve(p)
	if !ok {
		imgui.Text("No object selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Object: %s", o.GetName()))
	imgui.Text(fmt.Sprintf("Type: %q", o.GetType()))
	if o.SupportShaders() {
		imgui.Text("Supports shaders")
	}
	imgui.Separator()

	if imgui.TreeNodeStr("Properties") {
		renderProperties("object", o.GetProperties(p), func(name, value string) bool {
			return o.UpdateProperty(name, value, p)
		})
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Fields") {
		renderFields(o.GetConfiguration())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Behaviors (%d)###behaviors", len(o.GetAllBehaviorNames()))) {
		oi.renderBehaviors(p, o)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Variables (%d)###variables", o.GetVariables().Count())) {
		renderVariables(o.GetVariables())
		imgui.TreePop()
	}

	imgui.End()
}

func (oi *ObjectInspector) renderBehaviors(p *project.Project, o *project.Object) {
	var removed string
	for name, b := range o.GetAllBehaviors() {
		if imgui.TreeNodeStr(fmt.Sprintf("%s (%s)###behavior-%s", name, b.GetType(), name)) {
			renderProperties(name, b.GetProperties(p), func(prop, value string) bool {
				return b.UpdateProperty(prop, value, p)
			})
			if imgui.Button("Remove##" + name) {
				removed = name
			}
			imgui.TreePop()
		}
	}
	if removed != "" {
		o.RemoveBehavior(removed)
	}

	imgui.Separator()
	platform := p.GetCurrentPlatform()
	if platform == nil {
		return
	}
	for _, typ := range platform.BehaviorTypes() {
		if imgui.SelectableBoolV(typ, oi.newBehaviorType == typ, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			oi.newBehaviorType = typ
		}
	}
	imgui.SetNextItemWidth(150)
	imgui.InputTextWithHint("##behavior-name", "Behavior name", &oi.newBehaviorName, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Add Behavior") {
		if o.AddNewBehavior(p, oi.newBehaviorType, oi.newBehaviorName) == nil {
			oi.lastError = fmt.Sprintf("cannot add %q of type %q", oi.newBehaviorName, oi.newBehaviorType)
		} else {
			oi.lastError = ""
			oi.newBehaviorName = ""
		}
	}
	if oi.lastError != "" {
		imgui.Text(oi.lastError)
	}
}

func renderProperties(scope string, props map[string]*project.PropertyDescriptor, update func(name, value string) bool) {
	rows := PropertyRows(props)
	if len(rows) == 0 {
		imgui.Text("No properties")
		return
	}
	for _, row := range rows {
		id := fmt.Sprintf("##%s/%s", scope, row.Name)
		switch row.GetType() {
		case project.PropertyBoolean:
			v := row.GetValue() == "true"
			if imgui.Checkbox(row.Label()+id, &v) {
				update(row.Name, strconv.FormatBool(v))
			}

		case project.PropertyNumber:
			f, _ := strconv.ParseFloat(row.GetValue(), 32)
			v := float32(f)
			imgui.Text(row.Label() + ":")
			imgui.SameLine()
			imgui.SetNextItemWidth(150)
			if imgui.InputFloat(id, &v) {
				update(row.Name, strconv.FormatFloat(float64(v), 'g', -1, 32))
			}

		case project.PropertyChoice:
			imgui.Text(row.Label() + ":")
			for _, choice := range row.GetExtraInfo() {
				imgui.SameLine()
				if imgui.SelectableBoolV(choice+id+"/"+choice, row.GetValue() == choice, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
					update(row.Name, choice)
				}
			}

		default:
			v := row.GetValue()
			imgui.Text(row.Label() + ":")
			imgui.SameLine()
			imgui.SetNextItemWidth(200)
			if imgui.InputTextWithHint(id, row.GetDescription(), &v, imgui.InputTextFlagsNone, nil) {
				update(row.Name, v)
			}
		}
	}
}

func renderFields(v any) {
	rows := DescribeFields(v)
	if len(rows) == 0 {
		imgui.Text("No fields")
		return
	}
	for _, row := range rows {
		imgui.Text(fmt.Sprintf("%s: %s", row.Path, row.Value))
	}
}

func renderVariables(vs *project.Variables) {
	for name, v := range vs.All() {
		renderVariable(name, v)
	}
}

func renderVariable(name string, v *project.Variable) {
	if !v.IsStructure() {
		s := v.GetString()
		imgui.Text(name + ":")
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint("##var/"+name, "", &s, imgui.InputTextFlagsNone, nil) {
			if v.IsNumber() {
				if n, err := strconv.ParseFloat(s, 64); err == nil {
					v.SetValue(n)
				}
			} else {
				v.SetString(s)
			}
		}
		return
	}
	if imgui.TreeNodeStr(name) {
		for _, child := range v.ChildNames() {
			renderVariable(child, v.GetChild(child))
		}
		imgui.TreePop()
	}
}
