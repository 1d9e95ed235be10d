// Package toposort reports vertices of a caller-supplied graph in
// topological order: for every directed edge u->v, v is reported before u.
// Two variants share one engine (spec.md §4.9): ModeGeneral (default)
// tracks an on-trace set and fails with a structured cycle error the
// moment a back edge is found; ModeTree skips that bookkeeping entirely,
// trusting the caller that the reachable subgraph is acyclic.
package toposort

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lazytraverse/gear"
)

// Mode selects whether cycle detection is performed.
type Mode int

const (
	// ModeGeneral tracks an on-trace set and detects cycles.
	ModeGeneral Mode = iota
	// ModeTree skips on-trace bookkeeping. The visited set is still kept,
	// so the run terminates, but a cycle goes undetected and the reported
	// order is then not topological.
	ModeTree
)

// ErrCycleDetected is the sentinel wrapped by CycleError; test for it with
// errors.Is.
var ErrCycleDetected = errors.New("toposort: cycle detected (back edge into on-trace set)")

// CycleError is raised when a back edge into the current on-trace set is
// found in ModeGeneral. CycleFromStart is the path from a start vertex
// down to (and including a repeat of) the vertex the back edge returns to,
// exposed as an observable field per spec.md §6.
type CycleError[V any] struct {
	CycleFromStart []V
}

func (e *CycleError[V]) Error() string {
	return fmt.Sprintf("%v: %v", ErrCycleDetected, e.CycleFromStart)
}

func (e *CycleError[V]) Unwrap() error { return ErrCycleDetected }

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("toposort: invalid option supplied")

// Options configures one StartFrom call.
type Options[V any, VId comparable] struct {
	Ctx context.Context

	Mode Mode

	// CalculationLimit caps the number of reported vertices; negative
	// means unlimited (spec.md §5).
	CalculationLimit int64

	// AlreadyVisited, if non-nil, is used (and mutated in place) as the
	// visited set instead of a fresh one allocated from the gear.
	AlreadyVisited gear.VertexSet[VId]

	FailSilently bool

	err error
}

// Option configures toposort behavior via functional arguments.
type Option[V any, VId comparable] func(*Options[V, VId])

// DefaultOptions returns Options with ModeGeneral, background context, and
// unlimited calculation limit.
func DefaultOptions[V any, VId comparable]() Options[V, VId] {
	return Options[V, VId]{
		Ctx:              context.Background(),
		Mode:             ModeGeneral,
		CalculationLimit: -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V any, VId comparable](ctx context.Context) Option[V, VId] {
	return func(o *Options[V, VId]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTree switches to the cycle-detection-free fast path.
func WithTree[V any, VId comparable]() Option[V, VId] {
	return func(o *Options[V, VId]) { o.Mode = ModeTree }
}

// WithCalculationLimit caps the number of reported vertices. n < 0 means
// unlimited.
func WithCalculationLimit[V any, VId comparable](n int64) Option[V, VId] {
	return func(o *Options[V, VId]) { o.CalculationLimit = n }
}

// WithAlreadyVisited supplies a caller-owned visited set, mutated in place
// for the duration of the run.
func WithAlreadyVisited[V any, VId comparable](set gear.VertexSet[VId]) Option[V, VId] {
	return func(o *Options[V, VId]) { o.AlreadyVisited = set }
}

// WithFailSilently makes GoTo return (false, nil) instead of an error when
// the target vertex is never reported.
func WithFailSilently[V any, VId comparable]() Option[V, VId] {
	return func(o *Options[V, VId]) { o.FailSilently = true }
}
