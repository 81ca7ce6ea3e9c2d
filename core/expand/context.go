package expand

import (
	"maps"
	"strconv"

	"github.com/opal-lang/bakery/core/invariant"
)

// Context is the execution state visible to parameter expansion: the running
// section's parameters, call depth, loop counter and return value.
//
// A Context is a value. The With methods return a modified copy and never
// change the receiver.
type Context struct {
	params      map[int]string
	paramCount  int
	depth       int
	loopActive  bool
	loopCounter string
	returnValue string
}

// NewContext returns a context at depth with args bound to #1..#n.
func NewContext(depth int, args ...string) Context {
	invariant.Precondition(depth >= 0, "depth must not be negative, got %d", depth)

	params := make(map[int]string, len(args))
	for i, a := range args {
		params[i+1] = a
	}
	return Context{params: params, paramCount: len(args), depth: depth}
}

// Param returns parameter n and whether it is set.
func (c Context) Param(n int) (string, bool) {
	v, ok := c.params[n]
	return v, ok
}

// ParamCount is the value of #a.
func (c Context) ParamCount() int { return c.paramCount }

// Depth is the call-stack depth; the entry section runs at depth 1.
func (c Context) Depth() int { return c.depth }

// Loop returns the #c text and whether a loop is running.
func (c Context) Loop() (string, bool) { return c.loopCounter, c.loopActive }

// ReturnValue is the value of #r.
func (c Context) ReturnValue() string { return c.returnValue }

// WithParam binds parameter n. The parameter count grows to n if needed.
func (c Context) WithParam(n int, value string) Context {
	invariant.Precondition(n >= 1, "parameter index must be at least 1, got %d", n)

	c.params = maps.Clone(c.params)
	if c.params == nil {
		c.params = make(map[int]string)
	}
	c.params[n] = value
	c.paramCount = max(c.paramCount, n)
	return c
}

// WithParamCount overrides #a, for sections called with sparse parameters.
func (c Context) WithParamCount(n int) Context {
	invariant.Precondition(n >= 0, "parameter count must not be negative, got %d", n)
	c.paramCount = n
	return c
}

// WithDepth returns the context one call deeper or shallower.
func (c Context) WithDepth(depth int) Context {
	invariant.Precondition(depth >= 0, "depth must not be negative, got %d", depth)
	c.depth = depth
	return c
}

// WithLoop marks a loop as running at counter.
func (c Context) WithLoop(counter int64) Context {
	c.loopActive = true
	c.loopCounter = strconv.FormatInt(counter, 10)
	return c
}

// WithLoopLetter marks a drive letter loop as running at letter.
func (c Context) WithLoopLetter(letter rune) Context {
	c.loopActive = true
	c.loopCounter = string(letter)
	return c
}

// WithoutLoop marks the loop as finished.
func (c Context) WithoutLoop() Context {
	c.loopActive = false
	c.loopCounter = ""
	return c
}

// WithReturnValue sets #r.
func (c Context) WithReturnValue(v string) Context {
	c.returnValue = v
	return c
}
