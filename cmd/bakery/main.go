// Command bakery exposes the script engine core on the command line: the
// escape codec, argument preprocessing, value packing, path checks, the
// command catalogue and section fingerprints.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/config"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		noColor, _ := root.PersistentFlags().GetBool("no-color")
		FormatError(os.Stderr, err, ShouldUseColor(noColor))
		os.Exit(1)
	}
}

// app is the state shared by every subcommand.
type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	configPath string
	debug      bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "bakery",
		Short:         "Inspect and transform script engine values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML, TOML or JSON config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newEscapeCmd(a),
		newUnescapeCmd(a),
		newPreprocessCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
		newPathCheckCmd(a),
		newKindCmd(a),
		newFingerprintCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return &CLIError{
				Message: "Failed to load config",
				Details: err.Error(),
				Hint:    "Run without --config to use the defaults.",
			}
		}
		cfg = loaded
	}
	if a.debug {
		cfg.LogLevel = "debug"
	}

	a.cfg = cfg
	a.logger = cfg.Logger(a.errOut)
	a.logger.Debug("config loaded", "path", a.configPath, "version", cfg.Version)
	return nil
}

func (a *app) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}

func (a *app) printLines(ss []string) {
	for _, s := range ss {
		a.println(s)
	}
}

// inputArgs returns args, or the lines of stdin when args is just "-".
func (a *app) inputArgs(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}
	data, err := io.ReadAll(a.in)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return splitLines(string(data)), nil
}
