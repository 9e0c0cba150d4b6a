package inspector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gdcore/project"
)

// Selection identifies an object by the layout holding it and its name. An
// empty Layout designates a global object.
type Selection struct {
	Layout string
	Name   string
}

func (s Selection) IsZero() bool {
	return s == Selection{}
}

// Resolve finds the selected object in p.
func (s Selection) Resolve(p *project.Project) (*project.Object, *project.Layout, bool) {
	if s.IsZero() {
		return nil, nil, false
	}
	if s.Layout == "" {
		o, ok := p.GetObjects().LookupObject(s.Name)
		return o, nil, ok
	}
	l, ok := p.LookupLayout(s.Layout)
	if !ok {
		return nil, nil, false
	}
	o, ok := l.GetObjects().LookupObject(s.Name)
	return o, l, ok
}

// ObjectRow is one line of the object table.
type ObjectRow struct {
	Selection
	Type      string
	Behaviors []string
	Instances int
}

// Sort columns of the object table.
const (
	ColumnLayout = iota
	ColumnName
	ColumnType
	ColumnBehaviors
	ColumnInstances
)

// CollectRows lists the global objects followed by the objects of every
// layout. Instances counts the instances placed from each object.
func CollectRows(p *project.Project) []ObjectRow {
	rows := make([]ObjectRow, 0, p.GetObjects().GetObjectsCount())
	for o := range p.GetObjects().Objects() {
		row := newRow("", o)
		for l := range p.Layouts() {
			if !l.GetObjects().HasObjectNamed(o.GetName()) {
				row.Instances += l.GetInitialInstances().CountInstancesOf(o.GetName())
			}
		}
		rows = append(rows, row)
	}
	for l := range p.Layouts() {
		for o := range l.GetObjects().Objects() {
			row := newRow(l.GetName(), o)
			row.Instances = l.GetInitialInstances().CountInstancesOf(o.GetName())
			rows = append(rows, row)
		}
	}
	return rows
}

func newRow(layout string, o *project.Object) ObjectRow {
	return ObjectRow{
		Selection: Selection{Layout: layout, Name: o.GetName()},
		Type:      o.GetType(),
		Behaviors: o.GetAllBehaviorNames(),
	}
}

// FilterRows keeps the rows whose name, type, layout or behavior names
// contain text, ignoring case.
func FilterRows(rows []ObjectRow, text string) []ObjectRow {
	if text == "" {
		return rows
	}
	needle := strings.ToLower(text)
	filtered := make([]ObjectRow, 0, len(rows))
	for _, r := range rows {
		haystack := strings.ToLower(strings.Join(append([]string{r.Layout, r.Name, r.Type}, r.Behaviors...), " "))
		if strings.Contains(haystack, needle) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// SortRows orders rows in place by column.
func SortRows(rows []ObjectRow, column int, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}
		var less bool

		switch column {
		case ColumnLayout:
			less = a.Layout < b.Layout
		case ColumnType:
			less = a.Type < b.Type
		case ColumnBehaviors:
			less = len(a.Behaviors) < len(b.Behaviors)
		case ColumnInstances:
			less = a.Instances < b.Instances
		default:
			less = a.Name < b.Name
		}
		return less
	})
}

type ObjectBrowser struct {
	rows              []ObjectRow
	selected          Selection
	filterText        string
	sortColumn        int
	sortAscending     bool
	maxObjectsPerPage int
	currentPage       int
}

func NewObjectBrowser(maxObjectsPerPage int) ObjectBrowser {
	return ObjectBrowser{
		sortColumn:        ColumnName,
		sortAscending:     true,
		maxObjectsPerPage: max(maxObjectsPerPage, 1),
	}
}

// Render draws the object table. Rows are rebuilt every frame since
// objects can be renamed or removed from anywhere.
func (b *ObjectBrowser) Render(p *project.Project) {
	if !imgui.BeginV("Objects", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b.rows = CollectRows(p)
	SortRows(b.rows, b.sortColumn, b.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &b.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		b.filterText = ""
	}

	rows := FilterRows(b.rows, b.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Layout")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Behaviors")
		imgui.TableSetupColumn("Instances")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			b.sortColumn = int(spec.ColumnIndex())
			b.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			SortRows(rows, b.sortColumn, b.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		start := min(b.currentPage*b.maxObjectsPerPage, len(rows))
		end := min(start+b.maxObjectsPerPage, len(rows))

		for _, row := range rows[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if row.Layout == "" {
				imgui.Text("(global)")
			} else {
				imgui.Text(row.Layout)
			}

			imgui.TableNextColumn()
			label := fmt.Sprintf("%s##%s/%s", row.Name, row.Layout, row.Name)
			if imgui.SelectableBoolV(label, b.selected == row.Selection, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = row.Selection
			}

			imgui.TableNextColumn()
			imgui.Text(row.Type)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.Behaviors, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Instances))
		}

		imgui.EndTable()
	}

	if len(rows) > b.maxObjectsPerPage {
		totalPages := (len(rows) + b.maxObjectsPerPage - 1) / b.maxObjectsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d objects)", b.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && b.currentPage > 0 {
			b.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && b.currentPage < totalPages-1 {
			b.currentPage++
		}
	} else {
		b.currentPage = 0
		imgui.Text(fmt.Sprintf("Total: %d objects", len(rows)))
	}

	imgui.End()
}

func (b *ObjectBrowser) GetSelected() Selection {
	return b.selected
}

func (b *ObjectBrowser) Select(s Selection) {
	b.selected = s
}
