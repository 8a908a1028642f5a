package fizyo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/config"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	app, err := New(Options{Config: &cfg, DisableConsoleLog: true})
	require.NoError(t, err)
	return app
}

func TestDefaultRegistryTemplates(t *testing.T) {
	want := map[string]string{
		"login":             "login",
		"register":          "register",
		"forgot_password":   "forgot_password",
		"onboarding":        "onboarding",
		"dashboard":         "dashboard",
		"exercise_list":     "exercise_list",
		"exercise_detail":   "exercise_detail/{exerciseId}",
		"exercise_calendar": "exercise_calendar",
		"leaderboard":       "leaderboard",
		"profile":           "profile",
		"therapist_call":    "therapist_call",
		"settings":          "settings",
		"notifications":     "notifications",
	}

	reg := DefaultRegistry()
	require.Equal(t, len(want), reg.Len())
	for id, template := range want {
		route, ok := reg.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, template, route.Template, id)
	}
}

func TestNewStartsOnLogin(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, constants.StartRoute, app.Router.CurrentRoute())
	assert.False(t, app.NavBar.Visible())
	assert.Equal(t, -1, app.NavBar.ActiveIndex())
}

func TestNewRejectsParameterizedStartRoute(t *testing.T) {
	cfg := config.Default()
	cfg.App.StartRoute = constants.RouteExerciseDetail

	_, err := New(Options{Config: &cfg, DisableConsoleLog: true})
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.True(t, router.IsMissingParameter(err))
}

func TestNewRejectsUnknownStartRoute(t *testing.T) {
	cfg := config.Default()
	cfg.App.StartRoute = "splash"

	_, err := New(Options{Config: &cfg, DisableConsoleLog: true})
	assert.True(t, IsConfigError(err))
	assert.True(t, router.IsUnknownRoute(err))
}

func TestNewLoadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.App.StartRoute = constants.RouteDashboard
	require.NoError(t, config.Save(path, cfg))

	app, err := New(Options{ConfigPath: path, DisableConsoleLog: true})
	require.NoError(t, err)
	assert.Equal(t, constants.RouteDashboard, app.Router.CurrentRoute())
	assert.True(t, app.NavBar.Visible())
}

func TestScenario(t *testing.T) {
	app := newTestApp(t)
	r, bar := app.Router, app.NavBar

	require.NoError(t, r.Navigate(constants.RouteDashboard, nil,
		router.NavOptions{PopUpTo: constants.RouteLogin, Inclusive: true}))
	assert.Equal(t, []string{"dashboard"}, r.Paths())
	assert.True(t, bar.Visible())
	tab, ok := bar.Active()
	require.True(t, ok)
	assert.Equal(t, constants.RouteDashboard, tab.Route)

	require.NoError(t, r.Navigate(constants.RouteExerciseDetail, ExerciseDetailParams("7"), router.NavOptions{}))
	assert.Equal(t, []string{"dashboard", "exercise_detail/7"}, r.Paths())
	assert.False(t, bar.Visible())
	_, ok = bar.Active()
	assert.False(t, ok)

	require.True(t, r.Back())
	assert.Equal(t, []string{"dashboard"}, r.Paths())
	assert.True(t, bar.Visible())
}

func TestUnknownRouteKeepsScreen(t *testing.T) {
	app := newTestApp(t)
	err := app.Router.Navigate("dashbaord", nil, router.NavOptions{})
	assert.True(t, router.IsUnknownRoute(err))
	assert.Equal(t, constants.RouteLogin, app.Router.CurrentRoute())
}
