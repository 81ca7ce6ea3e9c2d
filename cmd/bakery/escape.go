package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/escape"
)

func newEscapeCmd(a *app) *cobra.Command {
	var full, percent, quote bool

	cmd := &cobra.Command{
		Use:   "escape [text...|-]",
		Short: "Escape text for use as a command argument",
		Long:  "Escape text for use as a command argument.\n\n" + escape.Legend,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inputArgs(args)
			if err != nil {
				return err
			}
			if quote {
				a.printLines(escape.QuoteEscapeList(in, full, percent))
			} else {
				a.printLines(escape.EscapeList(in, full, percent))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Also escape commas and spaces")
	cmd.Flags().BoolVar(&percent, "percent", false, "Also escape percent signs")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Wrap results holding a space or comma in doublequotes")
	return cmd
}

func newUnescapeCmd(a *app) *cobra.Command {
	var quote, percent bool

	cmd := &cobra.Command{
		Use:   "unescape [text...|-]",
		Short: "Decode the escape tokens in text",
		Long:  "Decode the escape tokens in text.\n\n" + escape.Legend,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inputArgs(args)
			if err != nil {
				return err
			}
			if quote {
				a.printLines(escape.QuoteUnescapeList(in, percent))
			} else {
				a.printLines(escape.UnescapeList(in, percent))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "Strip one layer of surrounding doublequotes first")
	cmd.Flags().BoolVar(&percent, "percent", true, "Also rewrite #$p left after decoding, as from ##$p, to %")
	return cmd
}

// splitLines splits text into lines, dropping one trailing newline and any
// carriage returns before a newline.
func splitLines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
