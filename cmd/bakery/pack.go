package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/pack"
)

func newPackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack values into single argument strings",
	}

	var escaped bool
	regbin := &cobra.Command{
		Use:   "regbin <text>",
		Short: "Pack the bytes of text as REG_BINARY hex pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(pack.RegBinary([]byte(args[0]), escaped))
			return nil
		},
	}
	regbin.Flags().BoolVar(&escaped, "escaped", false, "Separate pairs with #$c instead of ','")

	multibin := &cobra.Command{
		Use:   "multibin <string>...",
		Short: "Pack strings as UTF-16LE REG_MULTI_SZ hex pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pack.RegMultiBinary(args)
			if err != nil {
				return err
			}
			a.println(s)
			return nil
		},
	}

	multistr := &cobra.Command{
		Use:   "multistr <string>...",
		Short: "Join strings with the " + pack.MultiStringDelimiter + " delimiter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(pack.RegMultiString(args))
			return nil
		},
	}

	var delim string
	list := &cobra.Command{
		Use:   "list <item>...",
		Short: "Join items with a delimiter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.println(pack.ListStr(args, delim))
			return nil
		},
	}
	list.Flags().StringVarP(&delim, "delim", "d", "|", "Delimiter between items")

	cmd.AddCommand(regbin, multibin, multistr, list)
	return cmd
}

func newUnpackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Split packed argument strings back into values",
	}

	regbin := &cobra.Command{
		Use:   "regbin <hex>",
		Short: "Decode REG_BINARY hex pairs and print the bytes quoted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bin, err := pack.UnpackRegBinary(args[0])
			if err != nil {
				return &CLIError{
					Message: "Invalid REG_BINARY data",
					Details: err.Error(),
					Hint:    "Give hex pairs separated by ',' or #$c, e.g. 48,69.",
				}
			}
			a.println(fmt.Sprintf("%q", bin))
			return nil
		},
	}

	multistr := &cobra.Command{
		Use:   "multistr <packed>",
		Short: "Split on the " + pack.MultiStringDelimiter + " delimiter, one value per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printLines(pack.UnpackRegMultiString(args[0]))
			return nil
		},
	}

	var delim string
	var indexed bool
	list := &cobra.Command{
		Use:   "list <packed>",
		Short: "Split on a delimiter, one item per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := pack.UnpackListStr(args[0], delim)
			if !indexed {
				a.printLines(items)
				return nil
			}
			var b strings.Builder
			for i, item := range items {
				fmt.Fprintf(&b, "%d\t%s\n", i+1, item)
			}
			_, _ = fmt.Fprint(a.out, b.String())
			return nil
		},
	}
	list.Flags().StringVarP(&delim, "delim", "d", "|", "Delimiter between items")
	list.Flags().BoolVarP(&indexed, "index", "n", false, "Prefix each item with its one-based index")

	cmd.AddCommand(regbin, multistr, list)
	return cmd
}
