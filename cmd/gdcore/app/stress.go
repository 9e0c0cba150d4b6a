package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/plus3/gdcore/builtin"
	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/serial"
	"github.com/spf13/cobra"
)

type Stress struct {
	cmd *cobra.Command

	mainopts       *Options
	duration       time.Duration
	objects        int
	layouts        int
	seed           uint64
	gcPauseMetrics bool
}

func NewStress(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress <options>",
		Short: "measure clone and serialization speed on a generated project",
		Args:  cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Stress{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(cmd.Context()) }
	flags := cmd.Flags()
	flags.DurationVarP(&c.duration, "duration", "d", 5*time.Second, "the total duration the test should run for")
	flags.IntVarP(&c.objects, "objects", "n", 1000, "the number of objects to create")
	flags.IntVar(&c.layouts, "layouts", 4, "the number of layouts to spread instances over")
	flags.Uint64Var(&c.seed, "seed", 1, "random seed for the generated project")
	flags.BoolVar(&c.gcPauseMetrics, "gc-pause-metrics", false, "enable detailed GC pause metrics in the report")
	return cmd
}

func (c *Stress) Run(ctx context.Context) error {
	if c.objects <= 0 {
		return fmt.Errorf("object count must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log.Info("populating project with {{objects}} objects", "objects", c.objects)
	p, behaviors := GenerateProject(rand.New(rand.NewPCG(c.seed, c.seed)), c.objects, c.layouts)

	report := &Report{
		Duration:       c.duration,
		Objects:        c.objects,
		Behaviors:      behaviors,
		Layouts:        c.layouts,
		GCPauseMetrics: c.gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running stress test for {{duration}}", "duration", c.duration)
	ctx, cancel := context.WithTimeout(ctx, c.duration)
	defer cancel()

	startTime := time.Now()
Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if err := c.cycle(p, report); err != nil {
				return err
			}
			report.TotalCycles++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.CloneTime.Finalize()
	report.SaveTime.Finalize()
	report.LoadTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report.Generate(c.cmd.OutOrStdout())
}

// cycle clones every global object, then writes and reads back the whole
// project.
func (c *Stress) cycle(p *project.Project, report *Report) error {
	start := time.Now()
	scratch := project.NewObjectsContainer()
	for o := range p.GetObjects().Objects() {
		scratch.InsertObject(o, -1)
	}
	report.CloneTime.Add(time.Since(start))

	start = time.Now()
	el := serial.NewElement()
	p.SerializeTo(el)
	data, err := serial.ToJSON(el)
	if err != nil {
		return err
	}
	report.SaveTime.Add(time.Since(start))
	report.DocumentBytes = len(data)

	start = time.Now()
	loaded, err := serial.FromJSON(data)
	if err != nil {
		return err
	}
	project.NewProject("", p.GetCurrentPlatform()).UnserializeFrom(loaded)
	report.LoadTime.Add(time.Since(start))
	return nil
}

// GenerateProject builds a project of n global objects of random builtin
// types, each with up to two behaviors, and places one instance of every
// object in one of the layouts. It returns the project and the number of
// behaviors created.
func GenerateProject(r *rand.Rand, n, layouts int) (*project.Project, int) {
	p := project.NewProject("stress", builtin.NewPlatform())
	var ls []*project.Layout
	for i := range layouts {
		ls = append(ls, p.InsertNewLayout(fmt.Sprintf("Level%d", i+1), -1))
	}

	objectTypes := []string{builtin.SpriteObject, builtin.TextObject, builtin.BaseObject}
	behaviorTypes := []string{builtin.PhysicsType, builtin.PlatformerType}

	behaviors := 0
	for i := range n {
		name := fmt.Sprintf("Object%d", i)
		o := p.GetObjects().InsertNewObject(p, objectTypes[r.IntN(len(objectTypes))], name, -1)
		if s, ok := o.GetConfiguration().(*builtin.Sprite); ok {
			for a := range r.IntN(3) + 1 {
				anim := s.AddAnimation(fmt.Sprintf("anim%d", a))
				anim.Directions[0].Frames = append(anim.Directions[0].Frames, builtin.Frame{Image: fmt.Sprintf("%s_%d.png", name, a)})
			}
		}
		for b := range r.IntN(3) {
			if o.AddNewBehavior(p, behaviorTypes[b], fmt.Sprintf("B%d", b)) != nil {
				behaviors++
			}
		}
		o.GetVariables().InsertNew("score", -1).SetValue(float64(r.IntN(100)))

		if len(ls) > 0 {
			_, inst := ls[r.IntN(len(ls))].GetInitialInstances().InsertNewInitialInstance()
			inst.SetObjectName(name)
			inst.SetX(r.Float64() * 1000)
			inst.SetY(r.Float64() * 1000)
		}
	}
	return p, behaviors
}
