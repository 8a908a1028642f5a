// Package router provides string-routed screen navigation with a history stack.
//
// Routes are declared once in a Registry as a mapping from identifier to
// template. A template is either the identifier itself (a static route) or the
// identifier followed by a single "/{param}" placeholder (a parameterized
// route). A single substitution function builds concrete routes; there is no
// per-screen type.
//
// # Basic Usage
//
//	reg := router.NewRegistry()
//	reg.MustRegister("login", "login")
//	reg.MustRegister("dashboard", "dashboard")
//	reg.MustRegister("exercise_detail", "exercise_detail/{exerciseId}")
//
//	r, err := router.New(reg, "login")
//	if err != nil {
//	    return err
//	}
//
//	// Leave login behind for good
//	_ = r.Navigate("dashboard", nil, router.NavOptions{PopUpTo: "login", Inclusive: true})
//
//	// Open a detail screen
//	_ = r.Navigate("exercise_detail", router.Params{"exerciseId": "7"}, router.NavOptions{})
//
//	r.CurrentRoute() // "exercise_detail/7"
//	r.Back()         // back on "dashboard"
//
// # Resume State
//
// Screens may attach resume state (scroll position, selection) to the entry
// on top of the stack with SetResume. When a navigation pops entries with
// NavOptions.SaveState, their resume state is kept in a bounded side-cache,
// and a later navigation to the same route with NavOptions.RestoreState gets
// it back on the new entry.
//
// # Threading
//
// A Router is mutated from a single event loop. CurrentRoute may be read from
// any goroutine.
package router
