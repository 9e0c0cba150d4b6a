package app

import (
	"fmt"
	"strings"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/plus3/gdcore/builtin"
	"github.com/plus3/gdcore/internal/config"
	"github.com/plus3/gdcore/internal/utils"
	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/store"
	"github.com/spf13/cobra"
)

var REALM = logging.DefineRealm("gdcore/cli", "command line tool")

var log = logging.DefaultContext().Logger(REALM)

// Viewer opens an interactive window on a project. It is left nil by
// default so the command package does not depend on a display.
var Viewer func(p *project.Project, title string) error

type Options struct {
	fs       vfs.FileSystem
	cfg      config.Config
	project  string
	logLevel string
}

func New(fss ...vfs.FileSystem) *cobra.Command {
	opts := &Options{
		fs: utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}

	cfg, cfgErr := config.Load()
	opts.cfg = cfg
	opts.project = cfg.Project
	opts.logLevel = cfg.LogLevel

	maincmd := &cobra.Command{
		Use:   "gdcore <options> <cmd> <args>",
		Short: "inspect and edit game projects",
		Long: `
This command reads a game project file, lists and edits its objects and
their behaviors, and rewrites the file in canonical form.

Defaults are taken from GDCORE_PROJECT, GDCORE_LOG_LEVEL, GDCORE_FORMAT
and GDCORE_ASSETS.
`,
		Run:              nil,
		TraverseChildren: true,
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			return opts.applyLogLevel()
		},
	}

	flags := maincmd.PersistentFlags()
	flags.StringVarP(&opts.project, "project", "p", opts.project, "project file")
	flags.StringVarP(&opts.logLevel, "log-level", "L", opts.logLevel, "log level")

	maincmd.AddCommand(NewObjects(opts))
	maincmd.AddCommand(NewShow(opts))
	maincmd.AddCommand(NewTypes(opts))
	maincmd.AddCommand(NewCreate(opts))
	maincmd.AddCommand(NewClone(opts))
	maincmd.AddCommand(NewAddBehavior(opts))
	maincmd.AddCommand(NewRemoveBehavior(opts))
	maincmd.AddCommand(NewResources(opts))
	maincmd.AddCommand(NewRenameResource(opts))
	maincmd.AddCommand(NewFmt(opts))
	maincmd.AddCommand(NewStress(opts))
	maincmd.AddCommand(NewInspect(opts))
	return maincmd
}

func TweakCommand(cmd *cobra.Command) {
	cmd.DisableFlagsInUseLine = true
}

func (o *Options) applyLogLevel() error {
	l, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", o.logLevel)
	}
	logging.DefaultContext().AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("gdcore")))
	return nil
}

func (o *Options) store() *store.Store {
	return store.New(o.fs)
}

func (o *Options) load() (*project.Project, error) {
	return o.store().Load(o.project, builtin.NewPlatform())
}

func (o *Options) save(p *project.Project) (bool, error) {
	return o.store().Save(o.project, p)
}

// resolveObject finds an object by reference. "name" designates a global
// object, "layout/name" an object of a layout.
func resolveObject(p *project.Project, ref string) (*project.Object, *project.ObjectsContainer, error) {
	container, name, err := resolveContainer(p, ref)
	if err != nil {
		return nil, nil, err
	}
	o, ok := container.LookupObject(name)
	if !ok {
		return nil, nil, fmt.Errorf("object %q not found", ref)
	}
	return o, container, nil
}

func resolveContainer(p *project.Project, ref string) (*project.ObjectsContainer, string, error) {
	layout, name, ok := splitRef(ref)
	if !ok {
		return p.GetObjects(), name, nil
	}
	l, ok := p.LookupLayout(layout)
	if !ok {
		return nil, "", fmt.Errorf("layout %q not found", layout)
	}
	return l.GetObjects(), name, nil
}

func splitRef(ref string) (string, string, bool) {
	i := strings.LastIndex(ref, "/")
	if i < 0 {
		return "", ref, false
	}
	return ref[:i], ref[i+1:], true
}
