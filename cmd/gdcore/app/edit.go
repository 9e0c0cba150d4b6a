package app

import (
	"fmt"

	"github.com/plus3/gdcore/project"
	"github.com/spf13/cobra"
)

// editCommand loads the project, applies an edit and saves the result.
type editCommand struct {
	cmd *cobra.Command

	mainopts *Options
	edit     func(p *project.Project, args []string) (string, error)
}

func newEditCommand(opts *Options, cmd *cobra.Command, edit func(p *project.Project, args []string) (string, error)) *cobra.Command {
	TweakCommand(cmd)
	c := &editCommand{
		cmd:      cmd,
		mainopts: opts,
		edit:     edit,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	return cmd
}

func (c *editCommand) Run(args []string) error {
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}
	msg, err := c.edit(p, args)
	if err != nil {
		return err
	}
	if _, err := c.mainopts.save(p); err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", msg)
	return nil
}

func NewCreate(opts *Options) *cobra.Command {
	var layout bool
	cmd := &cobra.Command{
		Use:   "create <type> {<layout>/}<object>",
		Short: "create an object of a platform type",
		Args:  cobra.ExactArgs(2),
	}
	cmd.Flags().BoolVarP(&layout, "layout", "l", false, "create a missing layout")
	return newEditCommand(opts, cmd, func(p *project.Project, args []string) (string, error) {
		typ, ref := args[0], args[1]
		if layout {
			if l, _, ok := splitRef(ref); ok && !p.HasLayoutNamed(l) {
				p.InsertNewLayout(l, -1)
			}
		}
		container, name, err := resolveContainer(p, ref)
		if err != nil {
			return "", err
		}
		o, err := p.CreateObject(typ, name)
		if err != nil {
			return "", err
		}
		if container.InsertObject(o, -1) == nil {
			return "", fmt.Errorf("object %q already exists", ref)
		}
		return fmt.Sprintf("object %q created", ref), nil
	})
}

func NewClone(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone {<layout>/}<object> <name>",
		Short: "copy an object under a new name in the same container",
		Args:  cobra.ExactArgs(2),
	}
	return newEditCommand(opts, cmd, func(p *project.Project, args []string) (string, error) {
		o, container, err := resolveObject(p, args[0])
		if err != nil {
			return "", err
		}
		if container.HasObjectNamed(args[1]) {
			return "", fmt.Errorf("object %q already exists", args[1])
		}
		c := o.Clone()
		c.SetName(args[1])
		container.InsertObject(c, container.GetObjectPosition(o.GetName())+1)
		return fmt.Sprintf("object %q cloned to %q", args[0], args[1]), nil
	})
}

func NewAddBehavior(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-behavior {<layout>/}<object> <type> <name>",
		Short: "add a behavior to an object",
		Args:  cobra.ExactArgs(3),
	}
	return newEditCommand(opts, cmd, func(p *project.Project, args []string) (string, error) {
		o, _, err := resolveObject(p, args[0])
		if err != nil {
			return "", err
		}
		typ, name := args[1], args[2]
		if name == "" {
			return "", fmt.Errorf("behavior name must not be empty")
		}
		b, err := p.CreateBehavior(typ)
		if err != nil {
			return "", err
		}
		b.SetName(name)
		if !o.AddBehavior(b) {
			return "", fmt.Errorf("object %q already has a behavior %q", args[0], name)
		}
		return fmt.Sprintf("behavior %q added to %q", name, args[0]), nil
	})
}

func NewRemoveBehavior(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-behavior {<layout>/}<object> <name>",
		Short: "remove a behavior from an object",
		Args:  cobra.ExactArgs(2),
	}
	return newEditCommand(opts, cmd, func(p *project.Project, args []string) (string, error) {
		o, _, err := resolveObject(p, args[0])
		if err != nil {
			return "", err
		}
		if !o.HasBehaviorNamed(args[1]) {
			return "", fmt.Errorf("object %q has no behavior %q", args[0], args[1])
		}
		o.RemoveBehavior(args[1])
		return fmt.Sprintf("behavior %q removed from %q", args[1], args[0]), nil
	})
}
