package command

import (
	"slices"
	"strings"

	"github.com/opal-lang/bakery/core/invariant"
)

// ConditionKind is the test performed by an If condition.
type ConditionKind int

const (
	CondNone ConditionKind = iota
	// Comparisons: <Arg1>,<Kind>,<Arg2>
	CondEqual
	CondEqualX // Case-sensitive
	CondSmaller
	CondBigger
	CondSmallerEqual
	CondBiggerEqual
	// Existence tests: <Kind>,<Args...>
	CondExistFile
	CondExistDir
	CondExistSection
	CondExistRegSection
	CondExistRegSubKey
	CondExistRegKey
	CondExistRegValue
	CondExistRegMulti
	CondExistVar
	CondExistMacro
	CondWimExistIndex
	CondWimExistFile
	CondWimExistDir
	// Environment tests
	CondPing
	CondOnline
	CondQuestion
	CondLicense // Deprecated
)

var conditionNames = [...]string{
	CondNone:            "None",
	CondEqual:           "Equal",
	CondEqualX:          "EqualX",
	CondSmaller:         "Smaller",
	CondBigger:          "Bigger",
	CondSmallerEqual:    "SmallerEqual",
	CondBiggerEqual:     "BiggerEqual",
	CondExistFile:       "ExistFile",
	CondExistDir:        "ExistDir",
	CondExistSection:    "ExistSection",
	CondExistRegSection: "ExistRegSection",
	CondExistRegSubKey:  "ExistRegSubKey",
	CondExistRegKey:     "ExistRegKey",
	CondExistRegValue:   "ExistRegValue",
	CondExistRegMulti:   "ExistRegMulti",
	CondExistVar:        "ExistVar",
	CondExistMacro:      "ExistMacro",
	CondWimExistIndex:   "WimExistIndex",
	CondWimExistFile:    "WimExistFile",
	CondWimExistDir:     "WimExistDir",
	CondPing:            "Ping",
	CondOnline:          "Online",
	CondQuestion:        "Question",
	CondLicense:         "License",
}

// conditionArity is the accepted argument counts of each constructible kind.
var conditionArity = map[ConditionKind][]int{
	CondEqual:           {2},
	CondEqualX:          {2},
	CondSmaller:         {2},
	CondBigger:          {2},
	CondSmallerEqual:    {2},
	CondBiggerEqual:     {2},
	CondExistFile:       {1},
	CondExistDir:        {1},
	CondExistSection:    {2},
	CondExistRegSection: {2},
	CondExistRegSubKey:  {2},
	CondExistRegKey:     {3},
	CondExistRegValue:   {3},
	CondExistRegMulti:   {4},
	CondExistVar:        {1},
	CondExistMacro:      {1},
	CondWimExistIndex:   {2},
	CondWimExistFile:    {3},
	CondWimExistDir:     {3},
	CondPing:            {1},
	CondOnline:          {0},
	CondQuestion:        {1, 3}, // Message, or message with timeout and default answer
}

func (k ConditionKind) String() string {
	if k < 0 || int(k) >= len(conditionNames) {
		return "ConditionKind(?)"
	}
	return conditionNames[k]
}

// IsComparison reports whether k compares two values instead of testing one
// subject.
func (k ConditionKind) IsComparison() bool {
	return k >= CondEqual && k <= CondBiggerEqual
}

// Arity returns the argument counts k accepts. It is nil for kinds that cannot
// be constructed.
func (k ConditionKind) Arity() []int {
	return slices.Clone(conditionArity[k])
}

// ParseConditionKind looks up a kind by name, ignoring case. None and License
// are not returned.
func ParseConditionKind(name string) (ConditionKind, bool) {
	name = strings.TrimSpace(name)
	for k, n := range conditionNames {
		kind := ConditionKind(k)
		if _, ok := conditionArity[kind]; ok && strings.EqualFold(n, name) {
			return kind, true
		}
	}
	return CondNone, false
}

// Condition is the test of an If command.
type Condition struct {
	kind   ConditionKind
	negate bool
	args   []string
}

// NewCondition returns a condition. It panics when kind cannot be constructed
// or takes a different number of arguments.
func NewCondition(kind ConditionKind, negate bool, args ...string) Condition {
	arity, ok := conditionArity[kind]
	invariant.Precondition(ok, "condition %s cannot be constructed", kind)
	invariant.ArgCount(len(args), kind.String()+" condition", arity...)

	return Condition{kind: kind, negate: negate, args: slices.Clone(args)}
}

func (c Condition) Kind() ConditionKind { return c.kind }

// Negated reports whether the condition was written with a Not prefix.
func (c Condition) Negated() bool { return c.negate }

func (c Condition) Args() []string { return slices.Clone(c.args) }

// Arg returns the i-th argument, counting from zero.
func (c Condition) Arg(i int) string {
	invariant.InRange(i, 0, len(c.args)-1, "condition argument index")
	return c.args[i]
}

func (c Condition) String() string {
	var a argList
	if c.negate {
		a.add("Not")
	}
	if c.kind.IsComparison() {
		a.add(c.args[0], c.kind.String(), c.args[1])
	} else {
		a.add(c.kind.String())
		a.add(c.args...)
	}
	return a.String()
}
