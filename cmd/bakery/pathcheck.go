package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCheckCmd(a *app) *cobra.Command {
	var protected []string

	cmd := &cobra.Command{
		Use:   "pathcheck <path>...",
		Short: "Check that paths are writable by file commands",
		Long: `Check that paths are writable by file commands.

A path fails when it holds reserved characters or resolves into a write
protected directory. The deny-list comes from the config and --protect.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			cfg.Paths.Protected = append(append([]string(nil), cfg.Paths.Protected...), protected...)
			checker := cfg.PathChecker()
			a.logger.Debug("checking paths", "protected", checker.Protected())

			failed := 0
			for _, p := range args {
				switch err := checker.Check(p); {
				case !cfg.ValidPath(p):
					failed++
					a.println(fmt.Sprintf("invalid\t%s", p))
				case err != nil:
					failed++
					a.println(fmt.Sprintf("protected\t%s", p))
					a.logger.Debug("path rejected", "path", p, "error", err)
				default:
					a.println(fmt.Sprintf("ok\t%s", p))
				}
			}

			if failed > 0 {
				return &CLIError{Message: fmt.Sprintf("%d of %d paths rejected", failed, len(args))}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&protected, "protect", nil, "Add a protected directory")
	return cmd
}
