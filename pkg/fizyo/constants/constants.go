// Package constants defines shared route identifiers, environment variables
// and defaults used throughout fizyo.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// EnvironmentEnvVar selects the runtime environment ("DEV" enables debug logging).
const EnvironmentEnvVar = "FIZYO_ENV"

// ConfigPathEnvVar overrides the configuration file location.
const ConfigPathEnvVar = "FIZYO_CONFIG"

// IsDevMode returns true if running in development mode (FIZYO_ENV=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Route identifiers. Each is also the static prefix of its concrete paths.
const (
	RouteLogin            = "login"
	RouteRegister         = "register"
	RouteForgotPassword   = "forgot_password"
	RouteOnboarding       = "onboarding"
	RouteDashboard        = "dashboard"
	RouteExerciseList     = "exercise_list"
	RouteExerciseDetail   = "exercise_detail"
	RouteExerciseCalendar = "exercise_calendar"
	RouteLeaderboard      = "leaderboard"
	RouteProfile          = "profile"
	RouteTherapistCall    = "therapist_call"
	RouteSettings         = "settings"
	RouteNotifications    = "notifications"
)

// ParamExerciseID is the placeholder of the exercise detail route.
const ParamExerciseID = "exerciseId"

// StartRoute is the route every session begins on.
const StartRoute = RouteLogin

// Default sizing values.
const (
	DefaultStateCacheSize = 5  // saved resume states kept for restoreState
	MaxStateCacheSize     = 64 // upper bound accepted from configuration
)
