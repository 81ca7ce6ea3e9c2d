// Package invariant provides contract assertions for the script engine core.
//
// A violation means the caller (usually the script parser) built a value the
// core cannot represent, for example a branch condition with the wrong number of
// arguments or a command whose payload does not belong to its kind. These are
// programming errors, not user errors, so every function here panics.
package invariant

import (
	"fmt"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func New(raw string, loc Location, kind Kind, info Info) *Command {
//	    invariant.Precondition(info.accepts(kind), "payload %T cannot describe %s", info, kind)
//	    // ...
//	}
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
func Postcondition(condition bool, format string, args ...any) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal state consistency, such as a state machine
// transition that must only happen from one state.
// Panics with INVARIANT VIOLATION if condition is false.
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotNil panics if value is nil, including typed nils such as (*Command)(nil).
func NotNil(value any, name string) {
	if isNilValue(value) {
		fail("PRECONDITION", "%s must not be nil", name)
	}
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// InRange panics if value is outside [minVal, maxVal].
func InRange(value, minVal, maxVal int, name string) {
	if value < minVal || value > maxVal {
		fail("PRECONDITION", "%s must be in range [%d, %d], got %d",
			name, minVal, maxVal, value)
	}
}

// ArgCount panics unless got is one of the allowed argument counts.
//
// Example:
//
//	invariant.ArgCount(len(args), "Question condition", 1, 3)
func ArgCount(got int, name string, allowed ...int) {
	if slices.Contains(allowed, got) {
		return
	}

	want := make([]string, len(allowed))
	for i, n := range allowed {
		want[i] = strconv.Itoa(n)
	}
	fail("PRECONDITION", "%s takes %s argument(s), got %d",
		name, strings.Join(want, " or "), got)
}

// fail panics with a formatted message including the caller's file and line.
func fail(kind, format string, args ...any) {
	// Skip runtime.Callers, fail() and the exported wrapper
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]any{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
