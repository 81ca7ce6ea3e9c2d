package optimize

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opal-lang/bakery/core/command"
)

func at(line int) command.Location {
	return command.Location{Script: "Build.script", Section: "Process", Line: line}
}

func iniWrite(line int, key string) *command.Command {
	info := command.INIWrite{FileName: "a.ini", Section: "S", Key: key, Value: "1"}
	return command.New(command.Format(command.KindINIWrite, info), at(line), command.KindINIWrite, info)
}

func echo(line int) *command.Command {
	info := command.Echo{Message: "hi"}
	return command.New(command.Format(command.KindEcho, info), at(line), command.KindEcho, info)
}

func txtAdd(line int) *command.Command {
	info := command.TXTAddLine{FileName: "a.txt", Line: "x", Mode: command.TXTAppend}
	return command.New(command.Format(command.KindTXTAddLine, info), at(line), command.KindTXTAddLine, info)
}

func wimPath(line int, kind command.Kind) *command.Command {
	var info command.Info
	switch kind {
	case command.KindWimPathAdd:
		info = command.WimPathAdd{WimFile: "a.wim", ImageIndex: "1", SrcPath: "s", DestPath: "d"}
	case command.KindWimPathDelete:
		info = command.WimPathDelete{WimFile: "a.wim", ImageIndex: "1", Path: "p"}
	default:
		info = command.WimPathRename{WimFile: "a.wim", ImageIndex: "1", SrcPath: "s", DestPath: "d"}
	}
	return command.New(command.Format(kind, info), at(line), kind, info)
}

// shape summarises a command list as kinds, with batches as their size.
type shape struct {
	Kind  string
	Count int
}

func shapeOf(cmds []*command.Command) []shape {
	out := make([]shape, len(cmds))
	for i, c := range cmds {
		out[i] = shape{Kind: c.Kind().String()}
		if op, ok := c.Info().(command.Op); ok {
			out[i].Count = op.Len()
		}
	}
	return out
}

func TestOptimizeFoldsRuns(t *testing.T) {
	w1, w2, w3 := iniWrite(0, "A"), iniWrite(1, "B"), iniWrite(2, "C")
	e := echo(3)
	w4 := iniWrite(4, "D")

	got := Optimize([]*command.Command{w1, w2, w3, e, w4})

	want := []shape{{"INIWriteOp", 3}, {"Echo", 0}, {"INIWriteOp", 1}}
	if diff := cmp.Diff(want, shapeOf(got)); diff != "" {
		t.Errorf("optimized shape mismatch (-want +got):\n%s", diff)
	}

	first := got[0].Info().(command.Op).Commands()
	require.Len(t, first, 3)
	assert.Same(t, w1, first[0])
	assert.Same(t, w2, first[1])
	assert.Same(t, w3, first[2])
	assert.Equal(t, at(0), got[0].Location())

	assert.Same(t, e, got[1])
	assert.Same(t, w4, got[2].Info().(command.Op).Commands()[0])
	assert.Equal(t, at(4), got[2].Location())
}

func TestOptimizeBreaksOnKindChange(t *testing.T) {
	got := Optimize([]*command.Command{
		iniWrite(0, "A"),
		txtAdd(1),
		txtAdd(2),
		iniWrite(3, "B"),
	})

	want := []shape{{"INIWriteOp", 1}, {"TXTAddLineOp", 2}, {"INIWriteOp", 1}}
	if diff := cmp.Diff(want, shapeOf(got)); diff != "" {
		t.Errorf("optimized shape mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizeWimPathFamily(t *testing.T) {
	got := Optimize([]*command.Command{
		wimPath(0, command.KindWimPathAdd),
		wimPath(1, command.KindWimPathDelete),
		wimPath(2, command.KindWimPathRename),
		wimPath(3, command.KindWimPathAdd),
	})

	want := []shape{{"WimPathOp", 4}}
	if diff := cmp.Diff(want, shapeOf(got)); diff != "" {
		t.Errorf("optimized shape mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizePassThrough(t *testing.T) {
	tests := []struct {
		name string
		cmds []*command.Command
	}{
		{"empty", nil},
		{"nothing optimizable", []*command.Command{echo(0), echo(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Optimize(tt.cmds)
			require.Len(t, got, len(tt.cmds))
			for i := range got {
				assert.Same(t, tt.cmds[i], got[i])
			}
		})
	}
}

func TestOptimizeDoesNotModifyInput(t *testing.T) {
	in := []*command.Command{iniWrite(0, "A"), iniWrite(1, "B")}
	orig := append([]*command.Command(nil), in...)

	Optimize(in)

	require.Len(t, in, 2)
	assert.Same(t, orig[0], in[0])
	assert.Same(t, orig[1], in[1])
}

func TestOptimizeDisabledKinds(t *testing.T) {
	o := New(WithDisabled(command.KindINIWrite, command.KindEcho))
	got := o.Optimize([]*command.Command{iniWrite(0, "A"), iniWrite(1, "B"), txtAdd(2)})

	want := []shape{{"INIWrite", 0}, {"INIWrite", 0}, {"TXTAddLineOp", 1}}
	if diff := cmp.Diff(want, shapeOf(got)); diff != "" {
		t.Errorf("optimized shape mismatch (-want +got):\n%s", diff)
	}
}

func TestOptimizeLogsBatches(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New(WithLogger(logger)).Optimize([]*command.Command{iniWrite(0, "A"), iniWrite(1, "B")})

	out := buf.String()
	assert.Contains(t, out, "batched commands")
	assert.Contains(t, out, "op=INIWriteOp")
	assert.Contains(t, out, "count=2")
}
