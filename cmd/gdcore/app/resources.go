package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/plus3/gdcore/project"
	"github.com/plus3/gdcore/resources"
	"github.com/spf13/cobra"
)

type Resources struct {
	cmd *cobra.Command

	mainopts *Options
	expand   bool
	write    bool
}

func NewResources(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources <options>",
		Short: "list the resources used by the objects of the project",
		Long: `
Lists the resource paths of all objects by kind. With --expand environment
variables in paths are substituted. ${ASSETS} is taken from GDCORE_ASSETS
when set. With --write the expanded paths are stored in the project.
`,
		Args: cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Resources{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	flags := cmd.Flags()
	flags.BoolVarP(&c.expand, "expand", "e", false, "substitute environment variables")
	flags.BoolVarP(&c.write, "write", "w", false, "store expanded paths")
	return cmd
}

func (c *Resources) Run() error {
	if c.write && !c.expand {
		return fmt.Errorf("--write requires --expand")
	}
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}

	inventory := resources.NewInventory()
	var worker resources.Worker = inventory
	var expander *resources.EnvExpander
	if c.expand {
		expander = resources.NewEnvExpander(c.mainopts.lookupEnv)
		worker = resources.Chain{expander, inventory}
	}
	p.ExposeResources(worker)

	if expander != nil {
		if err := errors.Join(expander.Errors()...); err != nil {
			return fmt.Errorf("expand resources: %w", err)
		}
	}

	var fieldList [][]string
	for _, kind := range inventory.Kinds() {
		for _, path := range inventory.Paths(kind) {
			fieldList = append(fieldList, []string{string(kind), path})
		}
	}
	if len(fieldList) == 0 {
		fmt.Fprintf(c.cmd.OutOrStdout(), "no resource found\n")
	} else {
		printTable(c.cmd.OutOrStdout(), []string{"KIND", "PATH"}, fieldList)
	}

	if c.write {
		if _, err := c.mainopts.save(p); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) lookupEnv(name string) string {
	if name == "ASSETS" && o.cfg.Assets != "" {
		return o.cfg.Assets
	}
	return os.Getenv(name)
}

func NewRenameResource(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-resource <old> <new>",
		Short: "replace a resource path in all objects",
		Args:  cobra.ExactArgs(2),
	}
	return newEditCommand(opts, cmd, func(p *project.Project, args []string) (string, error) {
		r := resources.NewRenamer(map[string]string{args[0]: args[1]})
		p.ExposeResources(r)
		if r.Renamed() == 0 {
			return "", fmt.Errorf("resource %q is not used", args[0])
		}
		return fmt.Sprintf("%d references renamed", r.Renamed()), nil
	})
}
