// Package dfs implements depth-first search with full event and edge
// classification: entering/leaving vertex events, back/forward/cross edge
// classification, on-trace and discovery-index tracking, and the
// skip-expansion protocol, across three traversal modes (tree, all-paths,
// all-walks).
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lazytraverse/gear"
)

// Event identifies which step of the DFS state machine a Run.Next call
// just reported. Events are bit flags so WithEvents can request any
// combination; group aliases below are plain unions of their members
// (spec.md §4.7 "group events are mutually exclusive with their members"
// describes the source's distinct enum tags for the group vs its members
// — in this bitmask model that distinction collapses: a reported event is
// always the precise classification that occurred, e.g. BackEdge, never a
// generic "some non-tree edge" tag, since that is what a Go caller
// inspecting Run.Event() actually wants).
type Event uint16

const (
	EnteringStart Event = 1 << iota
	EnteringSuccessor
	LeavingStart
	LeavingSuccessor
	SkippingStart
	BackEdge
	ForwardEdge
	CrossEdge
)

// Group aliases, expressed as unions for requesting interest via WithEvents.
const (
	EnteringAny        = EnteringStart | EnteringSuccessor
	LeavingAny         = LeavingStart | LeavingSuccessor
	SomeNonTreeEdge    = BackEdge | ForwardEdge | CrossEdge
	ForwardOrCrossEdge = ForwardEdge | CrossEdge

	// DefaultEvents matches the source's fast-path default: only entering
	// events are reported, equivalent to an ordinary pre-order DFS.
	DefaultEvents = EnteringAny
)

// Mode selects which edges get followed and what bookkeeping is
// maintained (spec.md §4.7).
type Mode int

const (
	// ModeTree visits each vertex once; non-tree edges are reported (if
	// requested) but never followed.
	ModeTree Mode = iota
	// ModeAllPaths follows every edge whose head is not on the current
	// trace, enumerating every simple path; an edge back into the trace is
	// reported as BackEdge instead of followed.
	ModeAllPaths
	// ModeAllWalks follows every edge unconditionally, with no visited or
	// on-trace bookkeeping at all. Incompatible with non-tree-edge events
	// and with path building.
	ModeAllWalks
)

// Sentinel errors specific to invalid DFS configuration (spec.md §7's
// "configuration error", specialised to the DFS compatibility matrix).
var (
	// ErrNonTreeEventsUnsupported is returned when a non-tree edge event
	// is requested together with ModeAllWalks, which maintains no visited
	// or on-trace bookkeeping to classify an edge against.
	ErrNonTreeEventsUnsupported = errors.New("dfs: non-tree edge events are unavailable in ModeAllWalks")

	// ErrOnTraceUnsupported is returned when on-trace tracking is
	// requested together with ModeAllWalks.
	ErrOnTraceUnsupported = errors.New("dfs: on-trace tracking is unavailable in ModeAllWalks")

	// ErrClassificationUnsupported is returned when ForwardEdge/CrossEdge
	// events are requested together with ModeAllPaths (which follows every
	// edge whose head is off the trace, so it never classifies an edge
	// against the visited set).
	ErrClassificationUnsupported = errors.New("dfs: forward/cross edge classification is unavailable in ModeAllPaths")

	// ErrWalksPathsUnsupported is returned when ModeAllWalks is combined
	// with WithBuildPaths.
	ErrWalksPathsUnsupported = errors.New("dfs: ModeAllWalks cannot build paths")

	// ErrIndexWithAlreadyVisited is returned when index tracking is
	// requested together with a caller-supplied already-visited set (the
	// index map's pre-order timestamps would be meaningless for vertices
	// the caller marked visited out of band).
	ErrIndexWithAlreadyVisited = errors.New("dfs: index tracking is incompatible with a caller-supplied visited set")

	// ErrSkipOutsideEntering is returned when SkipExpandingEnteredVertex
	// is called while the run is not paused at an entering event.
	ErrSkipOutsideEntering = errors.New("dfs: skip-expansion requested outside an entering event")
)

// Options configures one StartFrom call.
type Options[VId comparable] struct {
	Ctx context.Context

	// Events is the bitmask of events Run.Next reports; others are
	// skipped internally without consuming a Next call.
	Events Event

	Mode Mode

	BuildPaths bool

	// TrackOnTrace requests on-trace tracking; it is rejected together
	// with ModeAllWalks. ModeTree and ModeAllPaths keep the on-trace set
	// whether or not it is set, and Run exposes no field for that set
	// (Trace returns the current root-to-tip vertices).
	TrackOnTrace bool

	// TrackIndex enables the discovery-index map.
	TrackIndex bool

	MaxDepth         int
	CalculationLimit int64
	AlreadyVisited   gear.VertexSet[VId]
	FailSilently     bool

	err error
}

// Option configures DFS behavior via functional arguments.
type Option[VId comparable] func(*Options[VId])

// DefaultOptions returns Options with DefaultEvents, ModeTree, background
// context, and unlimited depth/calculation-limit.
func DefaultOptions[VId comparable]() Options[VId] {
	return Options[VId]{
		Ctx:              context.Background(),
		Events:           DefaultEvents,
		Mode:             ModeTree,
		CalculationLimit: -1,
	}
}

// WithContext sets a custom cancellation context.
func WithContext[VId comparable](ctx context.Context) Option[VId] {
	return func(o *Options[VId]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEvents replaces the set of events Run.Next reports.
func WithEvents[VId comparable](events Event) Option[VId] {
	return func(o *Options[VId]) { o.Events = events }
}

// WithMode selects the traversal mode.
func WithMode[VId comparable](m Mode) Option[VId] {
	return func(o *Options[VId]) { o.Mode = m }
}

// WithBuildPaths enables predecessor (and, for labeled traversals, label)
// recording.
func WithBuildPaths[VId comparable]() Option[VId] {
	return func(o *Options[VId]) { o.BuildPaths = true }
}

// WithOnTrace enables on-trace-set tracking.
func WithOnTrace[VId comparable]() Option[VId] {
	return func(o *Options[VId]) { o.TrackOnTrace = true }
}

// WithIndex enables discovery-index tracking.
func WithIndex[VId comparable]() Option[VId] {
	return func(o *Options[VId]) { o.TrackIndex = true }
}

// WithMaxDepth stops descending beyond depth d.
func WithMaxDepth[VId comparable](d int) Option[VId] {
	return func(o *Options[VId]) { o.MaxDepth = d }
}

// WithCalculationLimit caps the number of reported events. n < 0 means
// unlimited.
func WithCalculationLimit[VId comparable](n int64) Option[VId] {
	return func(o *Options[VId]) { o.CalculationLimit = n }
}

// WithAlreadyVisited supplies a caller-owned visited set.
func WithAlreadyVisited[VId comparable](set gear.VertexSet[VId]) Option[VId] {
	return func(o *Options[VId]) { o.AlreadyVisited = set }
}

// WithFailSilently switches GoTo's not-found error into a sentinel return.
func WithFailSilently[VId comparable]() Option[VId] {
	return func(o *Options[VId]) { o.FailSilently = true }
}

func (o *Options[VId]) validate() error {
	if o.Events&SomeNonTreeEdge != 0 && o.Mode == ModeAllWalks {
		o.err = ErrNonTreeEventsUnsupported
		return o.err
	}
	if o.TrackOnTrace && o.Mode == ModeAllWalks {
		o.err = ErrOnTraceUnsupported
		return o.err
	}
	if o.Events&ForwardOrCrossEdge != 0 && o.Mode == ModeAllPaths {
		o.err = ErrClassificationUnsupported
		return o.err
	}
	if o.Mode == ModeAllWalks && o.BuildPaths {
		o.err = ErrWalksPathsUnsupported
		return o.err
	}
	if o.TrackIndex && o.AlreadyVisited != nil {
		o.err = ErrIndexWithAlreadyVisited
		return o.err
	}
	return o.err
}
