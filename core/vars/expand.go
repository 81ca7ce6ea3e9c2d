package vars

import (
	"fmt"
	"strings"
)

// CircularReferenceError reports variables that reference each other in a
// cycle.
type CircularReferenceError struct {
	Chain []string // e.g. ["A", "B", "C", "A"]
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular variable reference: %s", strings.Join(e.Chain, " -> "))
}

// Expand replaces every %Name% in s with its resolved value. Values are
// expanded recursively. A reference to an unknown variable is kept as written.
func Expand(r Resolver, s string) (string, error) {
	x := expander{r: r, onPath: make(map[string]bool)}
	return x.expand(s)
}

// ExpandList applies Expand to every element, stopping at the first error.
func ExpandList(r Resolver, ss []string) ([]string, error) {
	out := make([]string, len(ss))
	for i, s := range ss {
		v, err := Expand(r, s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type expander struct {
	r      Resolver
	path   []string        // Names being resolved, outermost first
	onPath map[string]bool // Folded names in path
}

func (x *expander) expand(s string) (string, error) {
	return scan(s, x.resolve)
}

func (x *expander) resolve(name string) (string, bool, error) {
	value, ok := x.r.Resolve(name)
	if !ok {
		return "", false, nil
	}

	k := fold(name)
	if x.onPath[k] {
		start := 0
		for i, p := range x.path {
			if fold(p) == k {
				start = i
				break
			}
		}
		chain := append(append([]string(nil), x.path[start:]...), name)
		return "", false, &CircularReferenceError{Chain: chain}
	}

	x.onPath[k] = true
	x.path = append(x.path, name)
	expanded, err := x.expand(value)
	x.path = x.path[:len(x.path)-1]
	delete(x.onPath, k)

	if err != nil {
		return "", false, err
	}
	return expanded, true, nil
}

// scan walks s left to right looking for %Name% tokens and calls fn for each.
// When fn reports the name as unresolved the token is copied verbatim and the
// closing '%' is reconsidered as the opener of the next token.
func scan(s string, fn func(name string) (string, bool, error)) (string, error) {
	open := strings.IndexByte(s, '%')
	if open < 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:open])

	for open >= 0 {
		rel := strings.IndexByte(s[open+1:], '%')
		if rel < 0 {
			break
		}
		end := open + 1 + rel
		name := s[open+1 : end]

		if name == "" {
			b.WriteByte('%')
			open = end
			continue
		}

		value, ok, err := fn(name)
		if err != nil {
			return "", err
		}
		if !ok {
			b.WriteString(s[open:end])
			open = end
			continue
		}

		b.WriteString(value)
		next := strings.IndexByte(s[end+1:], '%')
		if next < 0 {
			b.WriteString(s[end+1:])
			return b.String(), nil
		}
		b.WriteString(s[end+1 : end+1+next])
		open = end + 1 + next
	}

	b.WriteString(s[open:])
	return b.String(), nil
}
