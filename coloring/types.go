// Package coloring provides tunable options and error definitions
// for 2- and 3-coloring over a core.Graph.
package coloring

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcolor/core"
)

// LockedColor is the label given to pre-locked vertices by TwoColor.
// It differs from the two BFS classes 0 and 1 and doubles as the third
// color class of ThreeColor.
const LockedColor core.Color = 2

// Sentinel errors for coloring runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")
)

// Option configures a coloring run via functional arguments.
// If an Option is invalid (e.g. negative bound), it is recorded internally
// and surfaced as ErrOptionViolation when the run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a coloring run.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked between
	// candidate locked sets, never in the middle of a BFS attempt.
	Ctx context.Context

	// Logger receives debug-level progress records.
	Logger *zap.Logger

	// MaxLockedSize, if >= 0, caps the size of locked sets ThreeColor
	// enumerates below the default ⌊N/3⌋ bound. -1 keeps the default.
	MaxLockedSize int

	// OnStart is called once per run with the vertex count.
	OnStart func(order int)

	// OnCandidate is called for every locked set ThreeColor enumerates,
	// with the result of the independence test. The slice is reused by
	// the enumerator and must be copied if retained.
	OnCandidate func(subset []int, independent bool)

	// OnAttempt is called after every 2-coloring attempt. The slice must
	// be copied if retained.
	OnAttempt func(locked []int, ok bool)

	// OnDone is called once per run that finishes without error.
	OnDone func(found bool)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op logger
//   - the ⌊N/3⌋ locked-set bound (MaxLockedSize == -1)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        zap.NewNop(),
		MaxLockedSize: -1,
		OnStart:       func(int) {},
		OnCandidate:   func([]int, bool) {},
		OnAttempt:     func([]int, bool) {},
		OnDone:        func(bool) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLockedSize lowers the largest locked set ThreeColor tries.
// A cap below ⌊N/3⌋ may miss colorings; the run then reports "not found
// within bound". Values above ⌊N/3⌋ are clamped to it.
//
//	k >= 0: cap at k
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxLockedSize(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxLockedSize cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxLockedSize = k
	}
}

// WithOnStart registers a callback run once at the start of a run.
func WithOnStart(fn func(order int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStart = fn
		}
	}
}

// WithOnCandidate registers a callback run for every enumerated locked set.
func WithOnCandidate(fn func(subset []int, independent bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithOnAttempt registers a callback run after each 2-coloring attempt.
func WithOnAttempt(fn func(locked []int, ok bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAttempt = fn
		}
	}
}

// WithOnDone registers a callback run when a run completes without error.
func WithOnDone(fn func(found bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDone = fn
		}
	}
}

// resolve applies opts over DefaultOptions and returns the recorded error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
