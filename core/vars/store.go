// Package vars holds script variables and expands %Name% references.
//
// Names are case-insensitive. Every variable lives in one of two scopes; lookup
// without a scope prefers Local over Global.
package vars

import (
	"maps"
	"slices"
	"sync"

	"golang.org/x/text/cases"
)

// Scope partitions the variable namespace.
type Scope int

const (
	Local Scope = iota
	Global
	scopeCount
)

func (s Scope) String() string {
	switch s {
	case Local:
		return "Local"
	case Global:
		return "Global"
	default:
		return "Unknown"
	}
}

// Resolver looks up a variable by name in the nearest scope.
type Resolver interface {
	Resolve(name string) (string, bool)
}

type entry struct {
	name  string // As first set, for listing
	value string
}

// Store is a concurrency-safe variable store.
type Store struct {
	mu     sync.RWMutex
	scopes [scopeCount]map[string]entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{}
	for i := range s.scopes {
		s.scopes[i] = make(map[string]entry)
	}
	return s
}

// fold returns the lookup key for a variable name.
// A Caser is stateful, so one is built per call.
func fold(name string) string {
	return cases.Fold().String(name)
}

// Set assigns value to name in scope.
func (s *Store) Set(scope Scope, name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := fold(name)
	if old, ok := s.scopes[scope][k]; ok {
		name = old.name
	}
	s.scopes[scope][k] = entry{name: name, value: value}
}

// Get returns the value of name in exactly scope.
func (s *Store) Get(scope Scope, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.scopes[scope][fold(name)]
	return e.value, ok
}

// Delete removes name from scope and reports whether it existed.
func (s *Store) Delete(scope Scope, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := fold(name)
	if _, ok := s.scopes[scope][k]; !ok {
		return false
	}
	delete(s.scopes[scope], k)
	return true
}

// ResetLocal drops every Local variable, as happens when a new script starts.
func (s *Store) ResetLocal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.scopes[Local])
}

// Names returns the variable names of scope in sorted order.
func (s *Store) Names(scope Scope) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.scopes[scope]))
	for _, e := range s.scopes[scope] {
		names = append(names, e.name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the Local value of name, falling back to Global.
func (s *Store) Resolve(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolveLocked(fold(name))
}

func (s *Store) resolveLocked(k string) (string, bool) {
	for _, scope := range []Scope{Local, Global} {
		if e, ok := s.scopes[scope][k]; ok {
			return e.value, true
		}
	}
	return "", false
}

// Expand resolves %Name% references in str while holding the read lock, so the
// whole expansion sees one consistent state.
func (s *Store) Expand(str string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Expand(lockedResolver{s}, str)
}

type lockedResolver struct{ s *Store }

func (r lockedResolver) Resolve(name string) (string, bool) {
	return r.s.resolveLocked(fold(name))
}

// Snapshot returns an immutable copy of the nearest-scope view of the store.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := maps.Clone(s.scopes[Global])
	for k, e := range s.scopes[Local] {
		view[k] = e
	}
	return &Snapshot{vars: view}
}

// Snapshot is a read-only view of a Store at one point in time.
type Snapshot struct {
	vars map[string]entry
}

// Resolve implements Resolver.
func (s *Snapshot) Resolve(name string) (string, bool) {
	e, ok := s.vars[fold(name)]
	return e.value, ok
}

// Len returns the number of visible variables.
func (s *Snapshot) Len() int {
	return len(s.vars)
}
