package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/canonical"
	"github.com/opal-lang/bakery/core/command"
)

func newFingerprintCmd(a *app) *cobra.Command {
	var (
		section string
		raw     bool
	)

	cmd := &cobra.Command{
		Use:   "fingerprint <file|->",
		Short: "Print the canonical fingerprint of a section",
		Long: `Print the canonical fingerprint of a section.

Each non-empty line becomes one command. INIWrite, INIDelete and Echo lines
keep their kind so the configured batching applies; other lines are kept as
comments. Commands are batched before hashing unless --raw is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := args[0]
			var data []byte
			var err error
			if script == "-" {
				script = "stdin"
				data, err = io.ReadAll(a.in)
			} else {
				data, err = os.ReadFile(script)
			}
			if err != nil {
				return fmt.Errorf("error reading %s: %w", script, err)
			}

			cmds := readSection(script, section, splitLines(string(data)))
			if !raw {
				cmds = a.cfg.Optimizer(a.logger).Optimize(cmds)
			}
			a.logger.Debug("section read", "section", section, "commands", len(cmds))

			fp, err := canonical.Fingerprint(cmds)
			if err != nil {
				return fmt.Errorf("failed to fingerprint section: %w", err)
			}
			a.println(fp)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "Process", "Section name recorded in command locations")
	cmd.Flags().BoolVar(&raw, "raw", false, "Hash the commands without batching")
	return cmd
}

// readSection turns lines into commands. Blank lines are skipped but still
// count toward line numbers.
func readSection(script, section string, lines []string) []*command.Command {
	var cmds []*command.Command
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		loc := command.Location{Script: script, Section: section, Line: i}
		cmds = append(cmds, lineCommand(line, loc))
	}
	return cmds
}

func lineCommand(line string, loc command.Location) *command.Command {
	name, rest, _ := strings.Cut(line, ",")
	args := strings.Split(rest, ",")

	kind, err := command.ParseKind(name)
	if err == nil {
		switch {
		case kind == command.KindINIWrite && len(args) == 4:
			return command.New(line, loc, kind, command.INIWrite{FileName: args[0], Section: args[1], Key: args[2], Value: args[3]})
		case kind == command.KindINIDelete && len(args) == 3:
			return command.New(line, loc, kind, command.INIDelete{FileName: args[0], Section: args[1], Key: args[2]})
		case kind == command.KindEcho && rest != "":
			warn := len(args) == 2 && strings.EqualFold(args[1], "WARN")
			return command.New(line, loc, kind, command.Echo{Message: args[0], Warn: warn})
		}
	}
	return command.New(line, loc, command.KindComment, command.Comment{Text: line})
}
