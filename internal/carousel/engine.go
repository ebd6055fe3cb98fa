package carousel

import (
	"log/slog"
	"slices"

	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

// Selection is delivered to the listener whenever the current image changes
type Selection struct {
	Index int
	Image models.Image
}

// Listener is called synchronously with the engine marked busy.
// Navigation requests made from inside a listener are ignored.
type Listener func(Selection)

// Engine owns the navigation state of one browsing session. It is not safe
// for concurrent use; callers serialise access.
type Engine struct {
	state      State
	generation uint64
	listener   Listener
}

func New(listener Listener) *Engine {
	return &Engine{listener: listener}
}

// State returns a snapshot of the current state
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) Status() Status {
	return e.state.Status()
}

// Load replaces the items and resets the selection to the first image.
// It supersedes any transition in progress.
func (e *Engine) Load(items []models.Image) {
	e.state = State{Items: slices.Clone(items)}
	if len(items) == 0 {
		slog.Debug("Carousel loaded without images")
		return
	}
	e.notify()
}

// BeginLoad issues a new load generation. Results fetched for older
// generations are discarded by Apply.
func (e *Engine) BeginLoad() uint64 {
	e.generation++
	return e.generation
}

// Apply loads items fetched for generation gen if no newer load was issued
// since. It reports whether the items were applied.
func (e *Engine) Apply(gen uint64, items []models.Image) bool {
	if gen != e.generation {
		slog.Debug("Discarding stale carousel load", "generation", gen, "latest", e.generation)
		return false
	}
	e.Load(items)
	return true
}

// Generation returns the most recently issued load generation
func (e *Engine) Generation() uint64 {
	return e.generation
}

// NavigateTo selects index idx, wrapping it onto the strip. Requests are
// ignored while empty or busy, and when idx is already selected.
func (e *Engine) NavigateTo(idx int) bool {
	n := len(e.state.Items)
	if n == 0 || e.state.Busy || idx == e.state.Current {
		return false
	}
	e.state.Current = Normalize(idx, n)
	e.notify()
	return true
}

func (e *Engine) Next() bool {
	return e.NavigateTo(e.state.Current + 1)
}

func (e *Engine) Prev() bool {
	return e.NavigateTo(e.state.Current - 1)
}

// BeginTransition marks the engine busy for a transition that outlives a
// single call, such as waiting on a preview to load. It fails when the
// engine is empty or already busy.
func (e *Engine) BeginTransition() bool {
	if len(e.state.Items) == 0 || e.state.Busy {
		return false
	}
	e.state.Busy = true
	return true
}

func (e *Engine) EndTransition() {
	e.state.Busy = false
}

// Classify returns the role of every item for the current selection
func (e *Engine) Classify() []Role {
	return Classify(e.state.Current, len(e.state.Items))
}

// View renders the current state
func (e *Engine) View() models.View {
	return RenderState(e.state)
}

func (e *Engine) notify() {
	if e.listener == nil {
		return
	}
	e.state.Busy = true
	defer func() { e.state.Busy = false }()
	e.listener(Selection{Index: e.state.Current, Image: e.state.Items[e.state.Current]})
}
