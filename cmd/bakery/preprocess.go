package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opal-lang/bakery/core/expand"
	"github.com/opal-lang/bakery/core/vars"
)

func newPreprocessCmd(a *app) *cobra.Command {
	var (
		locals  []string
		globals []string
		params  []string
		depth   int
		loop    int64
		ret     string
	)

	cmd := &cobra.Command{
		Use:   "preprocess [text...|-]",
		Short: "Expand parameters and variables in text, then unescape it",
		Example: `  bakery preprocess --local A=Hello --param World '%A% #1'
  bakery preprocess --depth 2 --loop 3 'Pass #c of #a'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.inputArgs(args)
			if err != nil {
				return err
			}

			store := vars.NewStore()
			if err := setVars(store, vars.Local, locals); err != nil {
				return err
			}
			if err := setVars(store, vars.Global, globals); err != nil {
				return err
			}

			if depth < 0 {
				return fmt.Errorf("--depth must not be negative, got %d", depth)
			}
			ctx := expand.NewContext(depth, params...).WithReturnValue(ret)
			if cmd.Flags().Changed("loop") {
				ctx = ctx.WithLoop(loop)
			}

			e := expand.New(store, a.cfg.ExpandOptions(a.logger)...)
			for _, s := range in {
				out, err := e.Preprocess(ctx, s)
				if err != nil {
					return explain(err)
				}
				a.println(out)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&locals, "local", "l", nil, "Set a local variable, NAME=VALUE")
	cmd.Flags().StringArrayVarP(&globals, "global", "g", nil, "Set a global variable, NAME=VALUE")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Bind the next positional parameter, #1 first")
	cmd.Flags().IntVar(&depth, "depth", 1, "Section call depth")
	cmd.Flags().Int64Var(&loop, "loop", 0, "Loop counter for #c; unset means no active loop")
	cmd.Flags().StringVar(&ret, "return", "", "Return value for #r")
	return cmd
}

func setVars(store *vars.Store, scope vars.Scope, assignments []string) error {
	for _, kv := range assignments {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return &CLIError{
				Message: fmt.Sprintf("invalid %s variable %q", strings.ToLower(scope.String()), kv),
				Hint:    "Use NAME=VALUE.",
			}
		}
		store.Set(scope, name, value)
	}
	return nil
}
