// Package optimize folds runs of adjacent commands that the executor can run
// as one unit, such as consecutive INIWrite lines against any file, into a
// single batched command.
package optimize

import (
	"io"
	"log/slog"

	"github.com/opal-lang/bakery/core/command"
)

// Optimizer batches command runs.
type Optimizer struct {
	logger   *slog.Logger
	disabled map[command.Kind]bool
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger for debug events. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDisabled leaves commands of the given kinds unbatched. Kinds that are
// not optimizable are ignored.
func WithDisabled(kinds ...command.Kind) Option {
	return func(o *Optimizer) {
		for _, k := range kinds {
			o.disabled[k] = true
		}
	}
}

func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		disabled: make(map[command.Kind]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize is New().Optimize(cmds).
func Optimize(cmds []*command.Command) []*command.Command {
	return New().Optimize(cmds)
}

// opKind returns the batched kind c belongs to, if it is batched at all.
func (o *Optimizer) opKind(c *command.Command) (command.Kind, bool) {
	if o.disabled[c.Kind()] {
		return command.KindNone, false
	}
	return c.Kind().OpKind()
}

// Optimize returns cmds with every maximal run of adjacent commands sharing a
// batched kind replaced by one batched command, a run of one included. Other
// commands are returned as they are, in order. cmds is not modified.
func (o *Optimizer) Optimize(cmds []*command.Command) []*command.Command {
	out := make([]*command.Command, 0, len(cmds))

	for i := 0; i < len(cmds); {
		op, ok := o.opKind(cmds[i])
		if !ok {
			out = append(out, cmds[i])
			i++
			continue
		}

		j := i + 1
		for j < len(cmds) {
			next, ok := o.opKind(cmds[j])
			if !ok || next != op {
				break
			}
			j++
		}

		batch := command.Batch(op, cmds[i:j])
		o.logger.Debug("batched commands",
			"op", op.String(),
			"count", j-i,
			"location", batch.Location().String())
		out = append(out, batch)
		i = j
	}

	return out
}
