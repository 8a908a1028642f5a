package router

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"
)

// NavOptions adjusts how Navigate manipulates the history stack.
type NavOptions struct {
	// PopUpTo removes entries above the topmost entry whose route identifier
	// or path equals this value before pushing. Ignored when empty. When no
	// entry matches, the stack is left as is.
	PopUpTo string
	// Inclusive also removes the PopUpTo entry itself.
	Inclusive bool
	// SaveState keeps the resume state of entries removed by PopUpTo so a
	// later RestoreState navigation can reuse it.
	SaveState bool
	// LaunchSingleTop skips the push when the top entry already has the same path.
	LaunchSingleTop bool
	// RestoreState attaches previously saved resume state for the same path
	// to the new entry.
	RestoreState bool
}

// Observer is notified with the new top entry after every navigation change.
type Observer func(current Entry)

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for navigation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStateCacheSize bounds how many saved resume states are kept.
func WithStateCacheSize(size int) Option {
	return func(r *Router) {
		r.saved = newStateCache(size)
	}
}

// Router owns the history stack and resolves navigation intents against a
// Registry. A Router is driven from one event loop; it is not safe for
// concurrent mutation. CurrentRoute is safe to read from any goroutine.
type Router struct {
	registry  *Registry
	start     Route
	stack     *Stack
	saved     *lru.Cache[string, any]
	current   *atomic.String
	logger    *slog.Logger
	observers []Observer

	// Navigation requested while observers run is deferred until they return.
	dispatching bool
	pending     []func()
}

// New creates a Router whose stack holds a single entry for start.
// The start route must be registered and static.
func New(registry *Registry, start string, opts ...Option) (*Router, error) {
	route, ok := registry.Lookup(start)
	if !ok {
		return nil, registry.unknown(start)
	}
	if route.IsParameterized() {
		return nil, &MissingParameterError{ID: start, Param: route.Param}
	}

	r := &Router{
		registry: registry,
		start:    route,
		stack:    NewStack(),
		saved:    newStateCache(defaultStateCacheSize),
		current:  atomic.NewString(""),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.stack.Push(route.ID, route.ID, nil, nil)
	r.current.Store(route.ID)
	return r, nil
}

// Registry returns the route registry this router resolves against.
func (r *Router) Registry() *Registry {
	return r.registry
}

// OnChange registers an observer. Observers run in registration order after
// each effective navigation. Navigate and Back called from an observer are
// queued and processed, in order, once all observers have returned.
func (r *Router) OnChange(fn Observer) *Router {
	r.observers = append(r.observers, fn)
	return r
}

// Navigate resolves id with params and pushes the resulting entry, applying opts.
//
// Unknown routes and missing parameters leave the stack untouched; the error
// is logged and returned so the caller can keep showing the current screen.
// A call made from inside an observer is queued and returns nil.
func (r *Router) Navigate(id string, params Params, opts NavOptions) error {
	if r.dispatching {
		r.pending = append(r.pending, func() { _ = r.Navigate(id, params, opts) })
		return nil
	}

	path, err := r.registry.Build(id, params)
	if err != nil {
		r.logger.Warn("navigation ignored", "route", id, "error", err)
		return err
	}
	route, _ := r.registry.Lookup(id)
	from := r.CurrentRoute()

	popped := false
	if opts.PopUpTo != "" {
		popped = r.popUpTo(opts.PopUpTo, opts.Inclusive, opts.SaveState)
	}

	if opts.LaunchSingleTop {
		if top := r.stack.Peek(); top != nil && top.Path == path {
			r.logger.Debug("navigation deduplicated", "route", path, "depth", r.stack.Len())
			if popped {
				r.publish()
			}
			return nil
		}
	}

	var resume any
	if opts.RestoreState {
		if state, ok := takeState(r.saved, path); ok {
			resume = state
		}
	}

	var entryParams Params
	if route.IsParameterized() {
		entryParams = Params{route.Param: params[route.Param]}
	}
	r.stack.Push(route.ID, path, entryParams, resume)

	r.logger.Debug("navigated",
		"from", from,
		"to", path,
		"depth", r.stack.Len(),
		"restored", resume != nil,
	)
	r.publish()
	return nil
}

// Back pops the top entry. It reports false, leaving the stack unchanged,
// when only the root entry remains. A call made from inside an observer is
// queued and reports true.
func (r *Router) Back() bool {
	if r.dispatching {
		r.pending = append(r.pending, func() { r.Back() })
		return true
	}

	if r.stack.Len() <= 1 {
		r.logger.Debug("back ignored", "route", r.CurrentRoute(), "error", ErrEmptyStack)
		return false
	}

	popped := r.stack.Pop()
	r.logger.Debug("navigated back",
		"from", popped.Path,
		"to", r.stack.Peek().Path,
		"depth", r.stack.Len(),
	)
	r.publish()
	return true
}

// NavigateUp is Back; the app has no separate parent hierarchy.
func (r *Router) NavigateUp() bool {
	return r.Back()
}

// Reset drops all history and saved state and returns to the start route.
func (r *Router) Reset() {
	if r.dispatching {
		r.pending = append(r.pending, r.Reset)
		return
	}

	r.stack.Clear()
	r.saved.Purge()
	r.stack.Push(r.start.ID, r.start.ID, nil, nil)
	r.logger.Debug("navigation reset", "to", r.start.ID)
	r.publish()
}

// SetResume records transient screen state on the top entry.
func (r *Router) SetResume(state any) {
	if r.stack.IsEmpty() {
		return
	}
	r.stack.Peek().Resume = state
}

// CurrentRoute returns the concrete path of the top entry.
func (r *Router) CurrentRoute() string {
	return r.current.Load()
}

// Current returns a copy of the top entry.
func (r *Router) Current() (Entry, bool) {
	if r.stack.IsEmpty() {
		return Entry{}, false
	}
	return *r.stack.Peek(), true
}

// Root returns the bottom entry of the stack.
func (r *Router) Root() Entry {
	entries := r.stack.Entries()
	return entries[0]
}

// Start returns the identifier of the start route.
func (r *Router) Start() string {
	return r.start.ID
}

// Entries returns a copy of the history, bottom first.
func (r *Router) Entries() []Entry {
	return r.stack.Entries()
}

// Paths returns the concrete paths on the stack, bottom first.
func (r *Router) Paths() []string {
	entries := r.stack.Entries()
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}

// Depth returns the number of entries on the stack.
func (r *Router) Depth() int {
	return r.stack.Len()
}

// HasSavedState reports whether resume state is cached for path.
func (r *Router) HasSavedState(path string) bool {
	return r.saved.Contains(path)
}

func (r *Router) popUpTo(target string, inclusive, save bool) bool {
	idx := r.stack.IndexFromTop(target)
	if idx < 0 {
		r.logger.Debug("popUpTo target not on stack", "target", target)
		return false
	}

	keep := idx + 1
	if inclusive {
		keep = idx
	}

	// The topmost entry for a path holds the state the user last saw.
	seen := make(map[string]bool)
	popped := false
	for r.stack.Len() > keep {
		entry := r.stack.Pop()
		popped = true
		if save && entry.Resume != nil && !seen[entry.Path] {
			r.saved.Add(entry.Path, entry.Resume)
			seen[entry.Path] = true
		}
	}
	return popped
}

func (r *Router) publish() {
	if r.stack.IsEmpty() {
		return
	}
	entry := *r.stack.Peek()
	r.current.Store(entry.Path)

	r.notify(entry)

	for len(r.pending) > 0 {
		next := r.pending[0]
		r.pending = r.pending[1:]
		next()
	}
}

func (r *Router) notify(entry Entry) {
	r.dispatching = true
	defer func() { r.dispatching = false }()

	for _, fn := range r.observers {
		fn(entry)
	}
}
