package navbar

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// Bar keeps the derived bottom-bar state for a router.
// It is updated on the router's event loop and may be read from a render loop.
type Bar struct {
	items   []Item
	visible *atomic.Bool
	active  *atomic.Int32
}

// NewBar creates a hidden bar with no active tab over the default items.
func NewBar() *Bar {
	return &Bar{
		items:   DefaultItems(),
		visible: atomic.NewBool(false),
		active:  atomic.NewInt32(-1),
	}
}

// Attach syncs the bar with the router's current route and keeps it in sync
// on every navigation change.
func (b *Bar) Attach(r *router.Router) *Bar {
	b.Update(r.CurrentRoute())
	r.OnChange(func(current router.Entry) {
		b.Update(current.Path)
	})
	return b
}

// Update recomputes visibility and the active tab for path.
func (b *Bar) Update(path string) {
	b.visible.Store(Visible(path))
	b.active.Store(int32(ActiveIndex(path)))
}

// VisibleWhen exposes the visibility flag for components that poll it.
func (b *Bar) VisibleWhen() *atomic.Bool {
	return b.visible
}

// Visible reports whether the bar should currently render.
func (b *Bar) Visible() bool {
	return b.visible.Load()
}

// ActiveIndex returns the highlighted tab index, or -1.
func (b *Bar) ActiveIndex() int {
	return int(b.active.Load())
}

// Active returns the highlighted tab, if any.
func (b *Bar) Active() (Item, bool) {
	idx := b.ActiveIndex()
	if idx < 0 || idx >= len(b.items) {
		return Item{}, false
	}
	return b.items[idx], true
}

// Items returns the tabs in display order.
func (b *Bar) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Select navigates to the tab at index the way a tab tap does: unwind to the
// root entry saving state, avoid duplicates, and restore the tab's saved
// state. Selecting the tab that is already current does nothing.
func (b *Bar) Select(r *router.Router, index int) error {
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("navbar: no tab at index %d", index)
	}
	item := b.items[index]
	if router.StaticPrefix(r.CurrentRoute()) == item.Route {
		return nil
	}
	return r.Navigate(item.Route, nil, TabNavOptions(r))
}

// TabNavOptions returns the options used for top-level tab navigation.
// Tabs pop up to the router's current root entry, not the start route, which
// is no longer on the stack after login.
func TabNavOptions(r *router.Router) router.NavOptions {
	return router.NavOptions{
		PopUpTo:         r.Root().Route,
		SaveState:       true,
		LaunchSingleTop: true,
		RestoreState:    true,
	}
}
