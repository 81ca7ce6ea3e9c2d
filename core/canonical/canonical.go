// Package canonical encodes a section's command list deterministically so it
// can be hashed. Two lists with the same commands, payloads and locations
// always produce the same bytes, and so the same fingerprint.
package canonical

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/sha3"

	"github.com/opal-lang/bakery/core/command"
)

// Version is the canonical format version.
const Version uint8 = 1

// MaxDepth bounds the nesting of batches and linked If/Else bodies.
const MaxDepth = 64

// ErrTooDeep is returned when commands nest deeper than MaxDepth.
var ErrTooDeep = errors.New("command nesting too deep")

// Section is the canonical form of a command list.
type Section struct {
	Version  uint8
	Commands []Command
}

// Command is one command in canonical form.
type Command struct {
	Kind    string
	Raw     string
	Script  string
	Section string
	Line    int
	Info    string    // Payload arguments in script syntax
	Batch   []Command // Batched commands of an Op
	Body    []Command // Linked body of an If or Else
}

// Canonicalize converts cmds, in order, into canonical form.
func Canonicalize(cmds []*command.Command) (*Section, error) {
	list, err := canonicalizeList(cmds, 0)
	if err != nil {
		return nil, err
	}
	return &Section{Version: Version, Commands: list}, nil
}

func canonicalizeList(cmds []*command.Command, depth int) ([]Command, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
	}

	out := make([]Command, len(cmds))
	for i, c := range cmds {
		cc, err := canonicalizeCommand(c, depth)
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		out[i] = cc
	}
	return out, nil
}

func canonicalizeCommand(c *command.Command, depth int) (Command, error) {
	if c == nil {
		return Command{}, errors.New("nil command")
	}

	loc := c.Location()
	cc := Command{
		Kind:    c.Kind().String(),
		Raw:     c.Raw(),
		Script:  loc.Script,
		Section: loc.Section,
		Line:    loc.Line,
		Info:    c.Info().String(),
	}

	var err error
	switch info := c.Info().(type) {
	case command.Op:
		cc.Batch, err = canonicalizeList(info.Commands(), depth+1)
		if err != nil {
			return cc, fmt.Errorf("batch: %w", err)
		}
	case *command.If:
		if info.State() == command.LinkResolved {
			body, _ := info.Body()
			cc.Body, err = canonicalizeList(body, depth+1)
		}
	case *command.Else:
		if info.State() == command.LinkResolved {
			body, _ := info.Body()
			cc.Body, err = canonicalizeList(body, depth+1)
		}
	}
	if err != nil {
		return cc, fmt.Errorf("body: %w", err)
	}

	return cc, nil
}

// MarshalBinary produces the deterministic CBOR encoding of s.
func (s *Section) MarshalBinary() ([]byte, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	// The alias keeps cbor from calling MarshalBinary again.
	type sectionAlias Section
	data, err := encMode.Marshal((*sectionAlias)(s))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// Hash returns the SHA3-256 digest of the canonical encoding.
func (s *Section) Hash() ([32]byte, error) {
	data, err := s.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return sha3.Sum256(data), nil
}

// Encode returns the canonical encoding of cmds.
func Encode(cmds []*command.Command) ([]byte, error) {
	s, err := Canonicalize(cmds)
	if err != nil {
		return nil, err
	}
	return s.MarshalBinary()
}

// Digest returns the SHA3-256 digest of the canonical encoding of cmds.
func Digest(cmds []*command.Command) ([32]byte, error) {
	s, err := Canonicalize(cmds)
	if err != nil {
		return [32]byte{}, err
	}
	return s.Hash()
}

// Fingerprint returns the digest of cmds as "sha3-256:<hex>".
func Fingerprint(cmds []*command.Command) (string, error) {
	sum, err := Digest(cmds)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint section: %w", err)
	}
	return fmt.Sprintf("sha3-256:%x", sum), nil
}
