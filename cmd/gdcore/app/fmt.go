package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/plus3/gdcore/internal/utils"
	"github.com/plus3/gdcore/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Fmt struct {
	cmd *cobra.Command

	mainopts *Options
	format   string
	output   string
}

func NewFmt(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <options>",
		Short: "rewrite the project file in canonical form",
		Long: `
Loads the project and writes it back. Files whose canonical content did
not change are left untouched. With --format the project is converted and
written next to the original with the matching extension, unless --output
names another file.
`,
		Args: cobra.NoArgs,
	}
	TweakCommand(cmd)

	c := &Fmt{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run() }
	c.AddFlags(cmd.Flags())
	return cmd
}

func (c *Fmt) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.format, "format", "f", c.mainopts.cfg.Format, "output format (json or yaml)")
	flags.StringVarP(&c.output, "output", "o", "", "output file")
}

func (c *Fmt) Run() error {
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}

	target, err := c.target()
	if err != nil {
		return err
	}
	changed, err := c.mainopts.store().Save(target, p)
	if err != nil {
		return err
	}
	if changed {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s written\n", target)
	} else {
		fmt.Fprintf(c.cmd.OutOrStdout(), "%s unchanged\n", target)
	}
	return nil
}

func (c *Fmt) target() (string, error) {
	if c.format == "" {
		return utils.OptionalDefaulted(c.mainopts.project, c.output), nil
	}
	f, err := store.ParseFormat(c.format)
	if err != nil {
		return "", err
	}
	if c.output != "" {
		if cur, err := store.FormatOf(c.output); err != nil || cur != f {
			return "", fmt.Errorf("output %q does not match format %s", c.output, f)
		}
		return c.output, nil
	}
	src := c.mainopts.project
	if cur, err := store.FormatOf(src); err == nil && cur == f {
		return src, nil
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + "." + string(f), nil
}
