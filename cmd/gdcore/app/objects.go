package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plus3/gdcore/inspector"
	"github.com/spf13/cobra"
)

var columnList = []string{"LAYOUT", "NAME", "TYPE", "BEHAVIORS", "INSTANCES"}

type Objects struct {
	cmd *cobra.Command

	mainopts *Options
	sort     string
	reverse  bool
}

func NewObjects(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objects {<layout>} <options>",
		Short: "list global and layout objects",
	}
	TweakCommand(cmd)

	c := &Objects{
		cmd:      cmd,
		mainopts: opts,
	}
	c.cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(args) }
	flags := cmd.Flags()
	flags.StringVarP(&c.sort, "sort", "s", "", "sort column")
	flags.BoolVarP(&c.reverse, "reverse", "r", false, "reverse sort order")
	return cmd
}

func (c *Objects) Run(args []string) error {
	p, err := c.mainopts.load()
	if err != nil {
		return err
	}

	rows := inspector.CollectRows(p)
	if len(args) > 0 {
		var selected []inspector.ObjectRow
		for _, r := range rows {
			for _, a := range args {
				if r.Layout == a {
					selected = append(selected, r)
				}
			}
		}
		rows = selected
	}

	if c.sort != "" || c.reverse {
		column := inspector.ColumnName
		if c.sort != "" {
			column = -1
			for i, n := range columnList {
				if n == strings.ToUpper(strings.TrimSpace(c.sort)) {
					column = i
					break
				}
			}
			if column < 0 {
				return fmt.Errorf("unknown sort field %q", c.sort)
			}
		}
		inspector.SortRows(rows, column, !c.reverse)
	}
	return PrintObjectRows(c.cmd.OutOrStdout(), rows)
}

// PrintObjectRows writes rows as a column aligned table.
func PrintObjectRows(w io.Writer, rows []inspector.ObjectRow) error {
	if len(rows) == 0 {
		fmt.Fprintf(w, "no object found\n")
		return nil
	}
	var fieldList [][]string
	for _, r := range rows {
		fieldList = append(fieldList, []string{
			r.Layout, r.Name, r.Type, strings.Join(r.Behaviors, ","), strconv.Itoa(r.Instances),
		})
	}
	printTable(w, columnList, fieldList)
	return nil
}

func printTable(w io.Writer, columns []string, fieldList [][]string) {
	max := make([]int, len(columns))
	for i, s := range columns {
		max[i] = len(s)
	}
	for _, cols := range fieldList {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columns, f)
	for _, cols := range fieldList {
		printLine(w, cols, f)
	}
}

func printLine(w io.Writer, cols []string, msg string) {
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = c
	}
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, args...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}
