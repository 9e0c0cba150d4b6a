package app

import (
	"fmt"
	"strings"

	"github.com/plus3/gdcore/serial"
	"github.com/plus3/gdcore/store"
	"github.com/spf13/cobra"
)

type Show struct {
	cmd *cobra.Command

	mainopts *Options
	output   string
}

func NewShow(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show {<layout>/}<object> <options>",
		Short: "print the serialized form of an object",
		Args:  cobra.ExactArgs(1),
	}
	TweakCommand(cmd)

	c := &Show{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	cmd.Flags().StringVarP(&c.output, "output", "o", string(store.YAML), "output format (yaml or json)")
	return cmd
}

func (c *Show) Run(args []string) error {
	f, err := store.ParseFormat(c.output)
	if err != nil {
		return err
	}
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}
	o, _, err := resolveObject(p, args[0])
	if err != nil {
		return err
	}

	el := serial.NewElement()
	o.SerializeTo(el)
	el.SetStringAttribute("name", o.GetName())
	data, err := store.Encode(el, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s\n", strings.TrimRight(string(data), "\n"))
	return nil
}

type Types struct {
	cmd *cobra.Command

	mainopts *Options
}

func NewTypes(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "list the object and behavior types of the current platform",
		Args:  cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Types{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	return cmd
}

func (c *Types) Run() error {
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}
	pl := p.GetCurrentPlatform()
	if pl == nil {
		return fmt.Errorf("project %q has no platform", p.GetName())
	}

	var fieldList [][]string
	for _, t := range pl.ObjectTypes() {
		if t == "" {
			t = "<base>"
		}
		fieldList = append(fieldList, []string{"object", t})
	}
	for _, t := range pl.BehaviorTypes() {
		fieldList = append(fieldList, []string{"behavior", t})
	}
	printTable(c.cmd.OutOrStdout(), []string{"KIND", "TYPE"}, fieldList)
	return nil
}
