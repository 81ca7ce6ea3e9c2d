// Package expand resolves the substitutions in a raw command argument.
//
// Every argument goes through three passes before a command sees it:
//
//  1. Params: #1..#N positional parameters, #a (count), #r (return value) and,
//     inside a loop, #c (counter).
//  2. Variables: %Name% references, resolved recursively with cycle detection.
//  3. Unescape: the #$x escape tokens.
//
// Preprocess runs all three in that order.
package expand

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/opal-lang/bakery/core/escape"
	"github.com/opal-lang/bakery/core/invariant"
	"github.com/opal-lang/bakery/core/vars"
)

// Expander runs the expansion passes against one variable view.
type Expander struct {
	vars      vars.Resolver
	logger    *slog.Logger
	topLevelN bool
}

// Option configures an Expander.
type Option func(*Expander)

// WithLogger sets the logger for debug events. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Expander) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithTopLevelFallback controls how a missing parameter expands at depth 1.
// Enabled (the default) it becomes ##N, which unescapes to the literal #N;
// disabled it becomes empty as at every other depth.
func WithTopLevelFallback(enabled bool) Option {
	return func(e *Expander) {
		e.topLevelN = enabled
	}
}

// New returns an Expander that resolves variables through r. A *vars.Store
// is expanded under its read lock.
func New(r vars.Resolver, opts ...Option) *Expander {
	invariant.NotNil(r, "resolver")

	e := &Expander{
		vars:      r,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		topLevelN: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params replaces the # tokens of s using ctx.
func (e *Expander) Params(ctx Context, s string) string {
	p := paramScanner{
		ctx:      ctx,
		logger:   e.logger,
		fallback: e.topLevelN && ctx.depth == 1,
		active:   make(map[int]bool),
	}
	return p.expand(s)
}

// ParamsList applies Params to every element.
func (e *Expander) ParamsList(ctx Context, ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = e.Params(ctx, s)
	}
	return out
}

// Variables replaces the %Name% tokens of s.
func (e *Expander) Variables(s string) (string, error) {
	if st, ok := e.vars.(*vars.Store); ok {
		return st.Expand(s)
	}
	return vars.Expand(e.vars, s)
}

// VariablesList applies Variables to every element.
func (e *Expander) VariablesList(ss []string) ([]string, error) {
	out := make([]string, len(ss))
	for i, s := range ss {
		v, err := e.Variables(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Preprocess expands parameters, then variables, then unescapes with percent
// decoding. The only error is a *vars.CircularReferenceError.
func (e *Expander) Preprocess(ctx Context, s string) (string, error) {
	return e.PreprocessWith(ctx, s, true)
}

// PreprocessWith is Preprocess with an explicit unescapePercent flag.
func (e *Expander) PreprocessWith(ctx Context, s string, unescapePercent bool) (string, error) {
	v, err := e.Variables(e.Params(ctx, s))
	if err != nil {
		e.logger.Debug("variable expansion failed", "input", s, "error", err)
		return "", err
	}
	return escape.Unescape(v, unescapePercent), nil
}

// PreprocessList applies Preprocess to every element, stopping at the first
// error.
func (e *Expander) PreprocessList(ctx Context, ss []string) ([]string, error) {
	out := make([]string, len(ss))
	for i, s := range ss {
		v, err := e.Preprocess(ctx, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type paramScanner struct {
	ctx      Context
	logger   *slog.Logger
	fallback bool
	active   map[int]bool // Parameters whose value is being expanded
}

// expand scans s once. A token starts at a '#' not preceded by '#'.
func (p *paramScanner) expand(s string) string {
	if strings.IndexByte(s, '#') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '#' || (i > 0 && s[i-1] == '#') || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}

		next := s[i+1]
		switch {
		case isDigit(next):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			b.WriteString(p.param(s[i+1 : j]))
			i = j
		case next == 'a':
			b.WriteString(strconv.Itoa(p.ctx.paramCount))
			i += 2
		case next == 'r':
			b.WriteString(p.ctx.returnValue)
			i += 2
		case next == 'c' && p.ctx.loopActive:
			b.WriteString(p.ctx.loopCounter)
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

func (p *paramScanner) param(digits string) string {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "#" + digits
	}

	if p.active[n] {
		p.logger.Debug("parameter references itself, expanding to empty", "index", n)
		return ""
	}

	v, ok := p.ctx.params[n]
	if !ok {
		if p.fallback {
			p.logger.Debug("parameter not set at top level, keeping literal", "index", n)
			return "##" + strconv.Itoa(n)
		}
		return ""
	}

	p.active[n] = true
	defer delete(p.active, n)
	return p.expand(v)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
