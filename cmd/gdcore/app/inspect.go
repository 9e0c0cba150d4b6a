package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type Inspect struct {
	cmd *cobra.Command

	mainopts *Options
	save     bool
}

func NewInspect(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <options>",
		Short: "open the project in the interactive inspector",
		Args:  cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Inspect{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	cmd.Flags().BoolVarP(&c.save, "save", "s", false, "save edits when the window is closed")
	return cmd
}

func (c *Inspect) Run() error {
	if Viewer == nil {
		return fmt.Errorf("no inspector available in this build")
	}
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}
	if err := Viewer(p, fmt.Sprintf("gdcore: %s", p.GetName())); err != nil {
		return err
	}
	if !c.save {
		return nil
	}
	changed, err := c.mainopts.save(p)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s written\n", c.mainopts.project)
	}
	return nil
}
