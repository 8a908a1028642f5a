package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

func newRouter(t *testing.T) *router.Router {
	t.Helper()
	reg := router.NewRegistry().
		MustRegister("login", "login").
		MustRegister("dashboard", "dashboard").
		MustRegister("exercise_calendar", "exercise_calendar").
		MustRegister("leaderboard", "leaderboard").
		MustRegister("profile", "profile").
		MustRegister("exercise_detail", "exercise_detail/{exerciseId}")
	r, err := router.New(reg, "login")
	require.NoError(t, err)
	return r
}

func TestBarStartsHidden(t *testing.T) {
	b := NewBar()
	assert.False(t, b.Visible())
	_, ok := b.Active()
	assert.False(t, ok)
}

func TestBarFollowsRouter(t *testing.T) {
	r := newRouter(t)
	b := NewBar().Attach(r)
	assert.False(t, b.Visible(), "login hides the bar")

	require.NoError(t, r.Navigate("dashboard", nil, router.NavOptions{PopUpTo: "login", Inclusive: true}))
	assert.Equal(t, []string{"dashboard"}, r.Paths())
	assert.True(t, b.Visible())
	item, ok := b.Active()
	require.True(t, ok)
	assert.Equal(t, "dashboard", item.Route)

	require.NoError(t, r.Navigate("exercise_detail", router.Params{"exerciseId": "7"}, router.NavOptions{}))
	assert.Equal(t, []string{"dashboard", "exercise_detail/7"}, r.Paths())
	assert.False(t, b.Visible())
	assert.Equal(t, -1, b.ActiveIndex())

	require.True(t, r.Back())
	assert.True(t, b.Visible())
	assert.True(t, b.VisibleWhen().Load())
	assert.Equal(t, 0, b.ActiveIndex())
}

func TestBarSelectUnwindsToRoot(t *testing.T) {
	r := newRouter(t)
	b := NewBar().Attach(r)
	require.NoError(t, r.Navigate("dashboard", nil, router.NavOptions{PopUpTo: "login", Inclusive: true}))

	require.NoError(t, b.Select(r, 2))
	r.SetResume(5)
	require.NoError(t, b.Select(r, 1))
	assert.Equal(t, []string{"dashboard", "exercise_calendar"}, r.Paths())
	assert.Equal(t, 1, b.ActiveIndex())

	require.NoError(t, b.Select(r, 2))
	assert.Equal(t, []string{"dashboard", "leaderboard"}, r.Paths())
	current, _ := r.Current()
	assert.Equal(t, 5, current.Resume)

	require.NoError(t, b.Select(r, 0))
	assert.Equal(t, []string{"dashboard"}, r.Paths())
}

func TestBarSelectCurrentTabIsNoOp(t *testing.T) {
	r := newRouter(t)
	b := NewBar().Attach(r)
	require.NoError(t, r.Navigate("dashboard", nil, router.NavOptions{PopUpTo: "login", Inclusive: true}))
	require.NoError(t, b.Select(r, 3))
	depth := r.Depth()

	require.NoError(t, b.Select(r, 3))
	assert.Equal(t, depth, r.Depth())
}

func TestBarSelectOutOfRange(t *testing.T) {
	r := newRouter(t)
	b := NewBar()
	assert.Error(t, b.Select(r, 4))
	assert.Error(t, b.Select(r, -1))
}

func TestTabNavOptionsTargetRootNotStart(t *testing.T) {
	r := newRouter(t)
	assert.Equal(t, "login", TabNavOptions(r).PopUpTo)

	require.NoError(t, r.Navigate("dashboard", nil, router.NavOptions{PopUpTo: "login", Inclusive: true}))
	opts := TabNavOptions(r)
	assert.Equal(t, "dashboard", opts.PopUpTo)
	assert.NotEqual(t, r.Start(), opts.PopUpTo)
	assert.False(t, opts.Inclusive)
	assert.True(t, opts.SaveState)
	assert.True(t, opts.LaunchSingleTop)
	assert.True(t, opts.RestoreState)
}
