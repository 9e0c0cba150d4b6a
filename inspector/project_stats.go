package inspector

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/gdcore/project"
)

// TypeStats counts the objects of one type and the instances placed from
// them.
type TypeStats struct {
	Type      string
	Objects   int
	Behaviors int
	Instances int
}

type ProjectStats struct {
	Objects   int
	Behaviors int
	Layouts   int
	Instances int
	Variables int
	ByType    []TypeStats
}

// CollectStats counts the content of p. ByType is sorted by object count,
// largest first, then by type.
func CollectStats(p *project.Project) ProjectStats {
	stats := ProjectStats{Layouts: p.GetLayoutsCount()}
	byType := map[string]*TypeStats{}

	for _, row := range CollectRows(p) {
		ts := byType[row.Type]
		if ts == nil {
			ts = &TypeStats{Type: row.Type}
			byType[row.Type] = ts
		}
		ts.Objects++
		ts.Behaviors += len(row.Behaviors)
		ts.Instances += row.Instances

		stats.Objects++
		stats.Behaviors += len(row.Behaviors)
	}
	for l := range p.Layouts() {
		stats.Instances += l.GetInitialInstances().Count()
	}
	stats.Variables = p.GetVariables().Count()

	for _, typ := range slices.Sorted(maps.Keys(byType)) {
		stats.ByType = append(stats.ByType, *byType[typ])
	}
	slices.SortStableFunc(stats.ByType, func(a, b TypeStats) int {
		return b.Objects - a.Objects
	})
	return stats
}

type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) StatsPanel {
	historyFrames = max(historyFrames, 1)
	return StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (sp *StatsPanel) Render(p *project.Project, deltaTime float32) {
	if !imgui.BeginV("Project Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sp.frameHistory[sp.frameIndex] = deltaTime * 1000.0
	sp.frameIndex = (sp.frameIndex + 1) % sp.historyFrames

	stats := CollectStats(p)

	imgui.Text(fmt.Sprintf("Objects: %d", stats.Objects))
	imgui.Text(fmt.Sprintf("Behaviors: %d", stats.Behaviors))
	imgui.Text(fmt.Sprintf("Layouts: %d", stats.Layouts))
	imgui.Text(fmt.Sprintf("Instances: %d", stats.Instances))
	imgui.Text(fmt.Sprintf("Global variables: %d", stats.Variables))

	var avgFrameTime float32
	for _, ft := range sp.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(sp.historyFrames)
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sp.frameHistory[0], int32(len(sp.frameHistory)))

	if imgui.TreeNodeStr("Types") {
		maxObjects := 0
		for _, ts := range stats.ByType {
			maxObjects = max(maxObjects, ts.Objects)
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TypeStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Type")
			imgui.TableSetupColumn("Objects")
			imgui.TableSetupColumn("Behaviors")
			imgui.TableSetupColumn("Instances")
			imgui.TableHeadersRow()

			for _, ts := range stats.ByType {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				if ts.Type == "" {
					imgui.Text("(base)")
				} else {
					imgui.Text(ts.Type)
				}

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", ts.Objects))
				if maxObjects > 0 {
					barWidth := float32(ts.Objects) / float32(maxObjects) * 80.0
					imgui.SameLine()
					drawList := imgui.WindowDrawList()
					pos := imgui.CursorScreenPos()
					color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
					drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
				}

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", ts.Behaviors))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", ts.Instances))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
