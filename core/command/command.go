// Package command is the typed model of a parsed script line.
//
// A Command pairs the raw line with its Kind and a payload implementing Info.
// Each payload type lists the kinds it can describe and New refuses any other
// pairing, so an executor can switch on the payload's concrete type without
// checking the kind again.
//
// Payloads are plain values. The exception is *If and *Else, whose block body
// is attached once by the block linker through ResolveLink.
package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/opal-lang/bakery/core/invariant"
)

// Info is the argument payload of a Command. Only this package implements it.
type Info interface {
	// String renders the arguments in script syntax, without the command name.
	String() string
	accepts(Kind) bool
}

// Location is where a command was read from.
type Location struct {
	Script  string // Script path or identifier
	Section string
	Line    int // Zero-based line index within the section
}

func (l Location) String() string {
	return fmt.Sprintf("%s [%s] line %d", l.Script, l.Section, l.Line+1)
}

// Command is one parsed line. It is never modified after New returns, apart
// from the link state of an *If or *Else payload.
type Command struct {
	raw  string
	loc  Location
	kind Kind
	info Info
}

// New returns a command. It panics when info cannot describe kind.
func New(raw string, loc Location, kind Kind, info Info) *Command {
	invariant.NotNil(info, "info")
	invariant.Precondition(kind.Valid(), "unknown command kind %d", int(kind))
	invariant.Precondition(info.accepts(kind), "payload %T cannot describe %s", info, kind)

	return &Command{raw: raw, loc: loc, kind: kind, info: info}
}

// Raw returns the line as written in the script.
func (c *Command) Raw() string { return c.raw }

func (c *Command) Location() Location { return c.loc }

func (c *Command) Kind() Kind { return c.kind }

func (c *Command) Info() Info { return c.info }

// String returns the raw line.
func (c *Command) String() string { return c.raw }

// Format renders kind and info as one script line.
func Format(kind Kind, info Info) string {
	args := info.String()
	if args == "" {
		return kind.String()
	}
	return kind.String() + "," + args
}

// Batch wraps cmds, in order, into one command of the batched kind op. Every
// command must be optimizable into op. The batch takes the location of its
// first command and the raw lines of all of them.
func Batch(op Kind, cmds []*Command) *Command {
	invariant.Precondition(op.IsOp(), "%s is not a batched kind", op)
	invariant.Precondition(len(cmds) > 0, "batch of %s needs at least one command", op)

	raws := make([]string, len(cmds))
	for i, c := range cmds {
		invariant.NotNil(c, "batched command")
		raws[i] = c.raw
	}
	return New(strings.Join(raws, "\n"), cmds[0].loc, op, Op{cmds: slices.Clone(cmds)})
}

// Op is the payload of a batched command.
type Op struct {
	cmds []*Command
}

// Commands returns the batched commands in script order.
func (o Op) Commands() []*Command { return slices.Clone(o.cmds) }

// Len is the number of batched commands.
func (o Op) Len() int { return len(o.cmds) }

func (o Op) String() string {
	parts := make([]string, len(o.cmds))
	for i, c := range o.cmds {
		parts[i] = Format(c.kind, c.info)
	}
	return strings.Join(parts, "\n")
}

func (o Op) accepts(k Kind) bool {
	if !k.IsOp() || len(o.cmds) == 0 {
		return false
	}
	for _, c := range o.cmds {
		if op, ok := c.kind.OpKind(); !ok || op != k {
			return false
		}
	}
	return true
}

// argList builds the comma-joined argument text of a payload.
type argList []string

func (a *argList) add(s ...string) { *a = append(*a, s...) }

// opt adds s when it is set.
func (a *argList) opt(s string) {
	if s != "" {
		*a = append(*a, s)
	}
}

// named adds key=value when value is set.
func (a *argList) named(key, value string) {
	if value != "" {
		*a = append(*a, key+"="+value)
	}
}

func (a *argList) flag(on bool, name string) {
	if on {
		*a = append(*a, name)
	}
}

func (a argList) String() string { return strings.Join(a, ",") }

func join(s ...string) string { return strings.Join(s, ",") }
