package command

import (
	"slices"

	"github.com/opal-lang/bakery/core/invariant"
)

// LinkState tracks how the body of an If or Else is attached.
type LinkState int

const (
	// Embedded: the body is the single command on the same line.
	Embedded LinkState = iota
	// LinkPending: the line ends in Begin and the block has not been linked yet.
	LinkPending
	// LinkResolved: the block between Begin and End has been linked.
	LinkResolved
)

func (s LinkState) String() string {
	switch s {
	case Embedded:
		return "embedded"
	case LinkPending:
		return "link-pending"
	case LinkResolved:
		return "link-resolved"
	default:
		return "LinkState(?)"
	}
}

// branchBody is the body shared by If and Else.
type branchBody struct {
	state LinkState
	embed *Command
	link  []*Command
}

func newBranchBody(embed *Command) branchBody {
	invariant.NotNil(embed, "embedded command")
	state := Embedded
	if embed.kind == KindBegin {
		state = LinkPending
	}
	return branchBody{state: state, embed: embed}
}

func (b *branchBody) resolve(owner string, cmds []*Command) {
	invariant.Precondition(b.state == LinkPending, "%s body cannot be linked in state %s", owner, b.state)
	for _, c := range cmds {
		invariant.NotNil(c, "linked command")
	}
	b.link = slices.Clone(cmds)
	b.state = LinkResolved
}

func (b *branchBody) body() ([]*Command, bool) {
	switch b.state {
	case Embedded:
		return []*Command{b.embed}, true
	case LinkResolved:
		return slices.Clone(b.link), true
	default:
		return nil, false
	}
}

func (b *branchBody) String() string {
	if b.embed == nil {
		return KindBegin.String()
	}
	return Format(b.embed.kind, b.embed.info)
}

// If: If,<Condition>,<Command> or If,<Condition>,Begin followed by a block.
type If struct {
	cond Condition
	branchBody
}

// NewIf returns an If whose body is embed. When embed is a Begin command the
// body is pending until ResolveLink is called.
func NewIf(cond Condition, embed *Command) *If {
	return &If{cond: cond, branchBody: newBranchBody(embed)}
}

// NewIfLinked returns an If whose block body is already known.
func NewIfLinked(cond Condition, link []*Command) *If {
	i := &If{cond: cond, branchBody: branchBody{state: LinkPending}}
	i.resolve("If", link)
	return i
}

func (i *If) Condition() Condition { return i.cond }

// Embed returns the command written on the If line; for a linked body that
// is the Begin command, or nil when the If was built with NewIfLinked.
func (i *If) Embed() *Command { return i.embed }

func (i *If) State() LinkState { return i.state }

// ResolveLink attaches the block body. It panics unless the If is pending.
func (i *If) ResolveLink(cmds []*Command) { i.resolve("If", cmds) }

// Body returns the commands to run when the condition holds. It reports false
// while the block is still pending.
func (i *If) Body() ([]*Command, bool) { return i.body() }

func (i *If) String() string { return join(i.cond.String(), i.branchBody.String()) }

func (*If) accepts(k Kind) bool { return k == KindIf }

// Else: Else,<Command> or Else,Begin followed by a block.
type Else struct {
	branchBody
}

// NewElse returns an Else whose body is embed, pending when embed is Begin.
func NewElse(embed *Command) *Else {
	return &Else{branchBody: newBranchBody(embed)}
}

// NewElseLinked returns an Else whose block body is already known.
func NewElseLinked(link []*Command) *Else {
	e := &Else{branchBody: branchBody{state: LinkPending}}
	e.resolve("Else", link)
	return e
}

func (e *Else) Embed() *Command { return e.embed }

func (e *Else) State() LinkState { return e.state }

// ResolveLink attaches the block body. It panics unless the Else is pending.
func (e *Else) ResolveLink(cmds []*Command) { e.resolve("Else", cmds) }

func (e *Else) Body() ([]*Command, bool) { return e.body() }

func (e *Else) String() string { return e.branchBody.String() }

func (*Else) accepts(k Kind) bool { return k == KindElse }
