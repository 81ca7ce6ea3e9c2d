package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/command"
)

func newKindCmd(a *app) *cobra.Command {
	var band string

	cmd := &cobra.Command{
		Use:   "kind [name...]",
		Short: "Describe script commands",
		Long: `Describe script commands: numeric id, band, deprecation and the batch
they fold into. Without names every command is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kinds []command.Kind
			if len(args) == 0 {
				for _, k := range command.ScriptKinds() {
					if band == "" || strings.EqualFold(k.Band().String(), band) {
						kinds = append(kinds, k)
					}
				}
			}
			for _, name := range args {
				k, err := command.ParseKind(name)
				if err != nil {
					return explain(err)
				}
				kinds = append(kinds, k)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tID\tBAND\tBATCH\tDEPRECATED")
			for _, k := range kinds {
				batch := "-"
				if op, ok := k.OpKind(); ok {
					batch = op.String()
				}
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%t\n", k, int(k), k.Band(), batch, k.IsDeprecated())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&band, "band", "", "List only one band, e.g. ini or wim")
	return cmd
}
