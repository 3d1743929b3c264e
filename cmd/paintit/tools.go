package main

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/example/paintit/internal/tools"
)

type toolsCmd struct {
	*root
	fs          *flag.FlagSet
	implemented bool
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	c := &toolsCmd{root: r.subcommand("tools"), fs: fs}
	c.root.fs = fs
	fs.BoolVar(&c.implemented, "implemented", false, "only list tools that have behaviour")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *toolsCmd) Run() error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tSTATUS")
	for _, k := range tools.Kinds() {
		status := "ready"
		if !k.Implemented() {
			if c.implemented {
				continue
			}
			status = "placeholder"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", k.Index(), k, status)
	}
	return w.Flush()
}
