package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownRoute is matched by every *UnknownRouteError.
	ErrUnknownRoute = errors.New("unknown route")

	// ErrMissingParameter is matched by every *MissingParameterError.
	ErrMissingParameter = errors.New("missing route parameter")

	// ErrEmptyStack indicates a pop was attempted on the root entry.
	// Back suppresses it and reports false instead.
	ErrEmptyStack = errors.New("cannot pop the root entry")

	// ErrDuplicateRoute is matched by every *DuplicateRouteError.
	ErrDuplicateRoute = errors.New("duplicate route")
)

// UnknownRouteError is returned when a route identifier is not registered.
type UnknownRouteError struct {
	ID         string
	Suggestion string // closest registered identifier, empty if none is close
}

func (e *UnknownRouteError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("router: unknown route %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("router: unknown route %q", e.ID)
}

func (e *UnknownRouteError) Is(target error) bool {
	return target == ErrUnknownRoute
}

// MissingParameterError is returned when a parameterized route is built
// without a value for its placeholder.
type MissingParameterError struct {
	ID    string
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("router: route %q requires parameter %q", e.ID, e.Param)
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// DuplicateRouteError is a configuration error: two routes share an identifier.
type DuplicateRouteError struct {
	ID string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("router: route %q registered twice", e.ID)
}

func (e *DuplicateRouteError) Is(target error) bool {
	return target == ErrDuplicateRoute
}

// TemplateError is a configuration error for a malformed route template.
type TemplateError struct {
	ID       string
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("router: route %q: invalid template %q: %s", e.ID, e.Template, e.Reason)
}

// IsUnknownRoute checks if an error reports an unregistered route.
func IsUnknownRoute(err error) bool {
	return errors.Is(err, ErrUnknownRoute)
}

// IsMissingParameter checks if an error reports a missing route parameter.
func IsMissingParameter(err error) bool {
	return errors.Is(err, ErrMissingParameter)
}
