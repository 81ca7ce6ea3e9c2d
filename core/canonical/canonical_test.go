package canonical_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/bakery/core/canonical"
	"github.com/opal-lang/bakery/core/command"
)

func at(line int) command.Location {
	return command.Location{Script: "Build.script", Section: "Process", Line: line}
}

func iniWrite(line int, key string) *command.Command {
	info := command.INIWrite{FileName: "a.ini", Section: "S", Key: key, Value: "1"}
	return command.New(command.Format(command.KindINIWrite, info), at(line), command.KindINIWrite, info)
}

func echo(line int, msg string) *command.Command {
	info := command.Echo{Message: msg}
	return command.New(command.Format(command.KindEcho, info), at(line), command.KindEcho, info)
}

func section() []*command.Command {
	batch := command.Batch(command.KindINIWriteOp, []*command.Command{iniWrite(0, "A"), iniWrite(1, "B")})
	cond := command.NewCondition(command.CondExistFile, false, "a.ini")
	ifInfo := command.NewIfLinked(cond, []*command.Command{echo(4, "found")})
	ifCmd := command.New("If,ExistFile,a.ini,Begin", at(2), command.KindIf, ifInfo)
	return []*command.Command{batch, ifCmd, echo(6, "done")}
}

// TestCanonicalByteStability verifies that the same section encodes to the
// same bytes on every run.
func TestCanonicalByteStability(t *testing.T) {
	var first []byte
	for i := 0; i < 100; i++ {
		data, err := canonical.Encode(section())
		require.NoError(t, err, "run %d", i)
		if first == nil {
			first = data
			continue
		}
		if !bytes.Equal(first, data) {
			t.Fatalf("run %d: canonical bytes differ", i)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	s, err := canonical.Canonicalize(section())
	require.NoError(t, err)

	want := &canonical.Section{
		Version: canonical.Version,
		Commands: []canonical.Command{
			{
				Kind:    "INIWriteOp",
				Raw:     "INIWrite,a.ini,S,A,1\nINIWrite,a.ini,S,B,1",
				Script:  "Build.script",
				Section: "Process",
				Line:    0,
				Info:    "INIWrite,a.ini,S,A,1\nINIWrite,a.ini,S,B,1",
				Batch: []canonical.Command{
					{Kind: "INIWrite", Raw: "INIWrite,a.ini,S,A,1", Script: "Build.script", Section: "Process", Line: 0, Info: "a.ini,S,A,1"},
					{Kind: "INIWrite", Raw: "INIWrite,a.ini,S,B,1", Script: "Build.script", Section: "Process", Line: 1, Info: "a.ini,S,B,1"},
				},
			},
			{
				Kind:    "If",
				Raw:     "If,ExistFile,a.ini,Begin",
				Script:  "Build.script",
				Section: "Process",
				Line:    2,
				Info:    "ExistFile,a.ini,Begin",
				Body: []canonical.Command{
					{Kind: "Echo", Raw: "Echo,found", Script: "Build.script", Section: "Process", Line: 4, Info: "found"},
				},
			},
			{Kind: "Echo", Raw: "Echo,done", Script: "Build.script", Section: "Process", Line: 6, Info: "done"},
		},
	}

	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("canonical form mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalRoundTripsThroughCBOR(t *testing.T) {
	s, err := canonical.Canonicalize(section())
	require.NoError(t, err)
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var decoded canonical.Section
	require.NoError(t, cbor.Unmarshal(data, &decoded))
	if diff := cmp.Diff(s, &decoded); diff != "" {
		t.Errorf("decoded section mismatch (-want +got):\n%s", diff)
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base, err := canonical.Fingerprint(section())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(base, "sha3-256:"))
	assert.Len(t, base, len("sha3-256:")+64)

	tests := []struct {
		name string
		cmds []*command.Command
	}{
		{"empty", nil},
		{"different argument", []*command.Command{echo(0, "a")}},
		{"different line", []*command.Command{echo(1, "a")}},
		{"reordered", func() []*command.Command {
			s := section()
			s[0], s[2] = s[2], s[0]
			return s
		}()},
		{"unbatched", []*command.Command{iniWrite(0, "A"), iniWrite(1, "B")}},
	}

	seen := map[string]string{base: "base"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, err := canonical.Fingerprint(tt.cmds)
			require.NoError(t, err)
			if other, ok := seen[fp]; ok {
				t.Fatalf("fingerprint collides with %s", other)
			}
			seen[fp] = tt.name
		})
	}
}

func TestDigestMatchesHash(t *testing.T) {
	s, err := canonical.Canonicalize(section())
	require.NoError(t, err)
	want, err := s.Hash()
	require.NoError(t, err)

	got, err := canonical.Digest(section())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCanonicalizeErrors(t *testing.T) {
	_, err := canonical.Canonicalize([]*command.Command{echo(0, "a"), nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command 1")

	cmd := echo(0, "leaf")
	cond := command.NewCondition(command.CondOnline, false)
	for i := 0; i <= canonical.MaxDepth+1; i++ {
		cmd = command.New("If,Online,Begin", at(0), command.KindIf, command.NewIfLinked(cond, []*command.Command{cmd}))
	}
	_, err = canonical.Fingerprint([]*command.Command{cmd})
	assert.True(t, errors.Is(err, canonical.ErrTooDeep))
}
