package fizyo

import (
	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// DefaultRegistry returns the app's route table. It panics if the table is
// inconsistent, which can only happen through a programming error.
func DefaultRegistry() *router.Registry {
	return router.NewRegistry().
		MustRegister(constants.RouteLogin, constants.RouteLogin).
		MustRegister(constants.RouteRegister, constants.RouteRegister).
		MustRegister(constants.RouteForgotPassword, constants.RouteForgotPassword).
		MustRegister(constants.RouteOnboarding, constants.RouteOnboarding).
		MustRegister(constants.RouteDashboard, constants.RouteDashboard).
		MustRegister(constants.RouteExerciseList, constants.RouteExerciseList).
		MustRegister(constants.RouteExerciseDetail, constants.RouteExerciseDetail+"/{"+constants.ParamExerciseID+"}").
		MustRegister(constants.RouteExerciseCalendar, constants.RouteExerciseCalendar).
		MustRegister(constants.RouteLeaderboard, constants.RouteLeaderboard).
		MustRegister(constants.RouteProfile, constants.RouteProfile).
		MustRegister(constants.RouteTherapistCall, constants.RouteTherapistCall).
		MustRegister(constants.RouteSettings, constants.RouteSettings).
		MustRegister(constants.RouteNotifications, constants.RouteNotifications)
}

// ExerciseDetailParams builds the parameters for the exercise detail route.
func ExerciseDetailParams(exerciseID string) router.Params {
	return router.Params{constants.ParamExerciseID: exerciseID}
}
