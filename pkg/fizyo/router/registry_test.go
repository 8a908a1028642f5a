package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry().
		MustRegister("login", "login").
		MustRegister("dashboard", "dashboard").
		MustRegister("leaderboard", "leaderboard").
		MustRegister("settings", "settings").
		MustRegister("exercise_detail", "exercise_detail/{exerciseId}")
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("login", "login"))

	err := reg.Register("login", "login")
	var dup *DuplicateRouteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "login", dup.ID)
	assert.ErrorIs(t, err, ErrDuplicateRoute)
	assert.Equal(t, 1, reg.Len())
}

func TestRegisterRejectsMalformedTemplates(t *testing.T) {
	cases := []struct {
		name     string
		id       string
		template string
	}{
		{"empty id", "", ""},
		{"other id", "login", "register"},
		{"missing braces", "exercise_detail", "exercise_detail/exerciseId"},
		{"empty placeholder", "exercise_detail", "exercise_detail/{}"},
		{"unterminated", "exercise_detail", "exercise_detail/{exerciseId"},
		{"two placeholders", "exercise_detail", "exercise_detail/{a}/{b}"},
		{"slash in id", "exercise/detail", "exercise/detail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewRegistry().Register(tc.id, tc.template)
			var te *TemplateError
			require.ErrorAs(t, err, &te)
		})
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry().MustRegister("login", "login")
	assert.Panics(t, func() { reg.MustRegister("login", "login") })
}

func TestBuildStaticRoutesAreIdentity(t *testing.T) {
	reg := testRegistry()
	for _, route := range reg.Routes() {
		if route.IsParameterized() {
			continue
		}
		got, err := reg.Build(route.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, route.ID, got)
	}
}

func TestBuildStaticIgnoresParams(t *testing.T) {
	got, err := testRegistry().Build("dashboard", Params{"exerciseId": "7"})
	require.NoError(t, err)
	assert.Equal(t, "dashboard", got)
}

func TestBuildParameterized(t *testing.T) {
	got, err := testRegistry().Build("exercise_detail", Params{"exerciseId": "7"})
	require.NoError(t, err)
	assert.Equal(t, "exercise_detail/7", got)
}

func TestBuildMissingParameter(t *testing.T) {
	reg := testRegistry()
	for _, params := range []Params{nil, {}, {"exerciseId": ""}, {"other": "7"}} {
		_, err := reg.Build("exercise_detail", params)
		var missing *MissingParameterError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "exerciseId", missing.Param)
		assert.True(t, IsMissingParameter(err))
	}
}

func TestBuildUnknownRouteSuggestsClosest(t *testing.T) {
	_, err := testRegistry().Build("ledaerboard", nil)
	var unknown *UnknownRouteError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "leaderboard", unknown.Suggestion)
	assert.True(t, IsUnknownRoute(err))
	assert.Contains(t, err.Error(), `did you mean "leaderboard"?`)
}

func TestBuildUnknownRouteWithoutSuggestion(t *testing.T) {
	_, err := testRegistry().Build("therapist_call", nil)
	var unknown *UnknownRouteError
	require.ErrorAs(t, err, &unknown)
	assert.Empty(t, unknown.Suggestion)
}

func TestExtractParamRoundTrip(t *testing.T) {
	reg := testRegistry()
	for _, v := range []string{"7", "42", "abc-def", "a/b", "ğüşıöç", " "} {
		path, err := reg.Build("exercise_detail", Params{"exerciseId": v})
		require.NoError(t, err)

		got, ok := reg.ExtractParam(path)
		require.True(t, ok, path)
		assert.Equal(t, v, got)
	}
}

func TestExtractParamStaticOrUnknown(t *testing.T) {
	reg := testRegistry()
	for _, path := range []string{"dashboard", "exercise_detail", "exercise_detail/", "nope/7", "dashboard/7", ""} {
		_, ok := reg.ExtractParam(path)
		assert.False(t, ok, path)
	}
}

func TestMatch(t *testing.T) {
	reg := testRegistry()

	route, params, ok := reg.Match("exercise_detail/12")
	require.True(t, ok)
	assert.Equal(t, "exercise_detail", route.ID)
	assert.Equal(t, Params{"exerciseId": "12"}, params)

	route, params, ok = reg.Match("settings")
	require.True(t, ok)
	assert.Equal(t, "settings", route.ID)
	assert.Nil(t, params)
}

func TestRoutesKeepRegistrationOrder(t *testing.T) {
	ids := make([]string, 0)
	for _, r := range testRegistry().Routes() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"login", "dashboard", "leaderboard", "settings", "exercise_detail"}, ids)
}

func TestStaticPrefix(t *testing.T) {
	assert.Equal(t, "exercise_detail", StaticPrefix("exercise_detail/42"))
	assert.Equal(t, "dashboard", StaticPrefix("dashboard"))
	assert.Equal(t, "", StaticPrefix(""))
}
