package router

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a typo may be from a registered
// identifier before UnknownRouteError stops suggesting it.
const maxSuggestionDistance = 3

// Params carries placeholder values keyed by parameter name.
type Params map[string]string

// Route is a registered navigation destination.
type Route struct {
	ID       string // unique key, also the static prefix of every concrete path
	Template string // ID, or ID + "/{" + Param + "}"
	Param    string // placeholder name, empty for static routes
}

// IsParameterized reports whether the route carries a placeholder.
func (r Route) IsParameterized() bool {
	return r.Param != ""
}

// Registry is the closed set of navigable destinations.
// Registration happens at startup; lookups afterwards never mutate it.
type Registry struct {
	routes map[string]Route
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]Route),
		order:  make([]string, 0),
	}
}

// Register declares a route. The template must equal id or be id followed by
// a single "/{param}" placeholder.
func (g *Registry) Register(id, template string) error {
	route, err := parseTemplate(id, template)
	if err != nil {
		return err
	}
	if _, exists := g.routes[id]; exists {
		return &DuplicateRouteError{ID: id}
	}
	g.routes[id] = route
	g.order = append(g.order, id)
	return nil
}

// MustRegister is Register for startup tables; it panics on configuration errors.
func (g *Registry) MustRegister(id, template string) *Registry {
	if err := g.Register(id, template); err != nil {
		panic(err)
	}
	return g
}

// Lookup returns the route registered under id.
func (g *Registry) Lookup(id string) (Route, bool) {
	route, ok := g.routes[id]
	return route, ok
}

// Routes returns the registered routes in registration order.
func (g *Registry) Routes() []Route {
	out := make([]Route, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.routes[id])
	}
	return out
}

// Len returns the number of registered routes.
func (g *Registry) Len() int {
	return len(g.order)
}

// Build returns the concrete route string for id.
// Static routes come back unchanged and ignore params. Parameterized routes
// substitute params[route.Param] into the placeholder.
func (g *Registry) Build(id string, params Params) (string, error) {
	route, ok := g.routes[id]
	if !ok {
		return "", g.unknown(id)
	}
	if !route.IsParameterized() {
		return route.ID, nil
	}
	value := params[route.Param]
	if value == "" {
		return "", &MissingParameterError{ID: id, Param: route.Param}
	}
	return route.ID + "/" + value, nil
}

// Match resolves a concrete path back to its route and parameter values.
// An exact static match wins over a parameterized prefix match.
func (g *Registry) Match(path string) (Route, Params, bool) {
	if route, ok := g.routes[path]; ok && !route.IsParameterized() {
		return route, nil, true
	}
	base, value, found := strings.Cut(path, "/")
	if !found || value == "" {
		return Route{}, nil, false
	}
	route, ok := g.routes[base]
	if !ok || !route.IsParameterized() {
		return Route{}, nil, false
	}
	return route, Params{route.Param: value}, true
}

// ExtractParam returns the value substituted into a parameterized path.
// It reports false for static or unrecognised paths.
func (g *Registry) ExtractParam(path string) (string, bool) {
	route, params, ok := g.Match(path)
	if !ok || !route.IsParameterized() {
		return "", false
	}
	return params[route.Param], true
}

func (g *Registry) unknown(id string) *UnknownRouteError {
	err := &UnknownRouteError{ID: id}
	best := maxSuggestionDistance + 1
	for _, candidate := range g.order {
		if d := levenshtein.ComputeDistance(id, candidate); d < best {
			best = d
			err.Suggestion = candidate
		}
	}
	return err
}

// StaticPrefix strips any substituted parameter segment from a concrete path.
// "exercise_detail/42" becomes "exercise_detail"; static paths are unchanged.
func StaticPrefix(path string) string {
	prefix, _, _ := strings.Cut(path, "/")
	return prefix
}

func parseTemplate(id, template string) (Route, error) {
	if id == "" {
		return Route{}, &TemplateError{ID: id, Template: template, Reason: "empty identifier"}
	}
	if strings.ContainsAny(id, "/{}") {
		return Route{}, &TemplateError{ID: id, Template: template, Reason: "identifier contains a reserved character"}
	}
	if template == id {
		return Route{ID: id, Template: template}, nil
	}

	rest, ok := strings.CutPrefix(template, id+"/{")
	if !ok {
		return Route{}, &TemplateError{ID: id, Template: template, Reason: `must equal the identifier or be "<id>/{param}"`}
	}
	param, ok := strings.CutSuffix(rest, "}")
	if !ok || param == "" {
		return Route{}, &TemplateError{ID: id, Template: template, Reason: "unterminated or empty placeholder"}
	}
	if strings.ContainsAny(param, "/{}") {
		return Route{}, &TemplateError{ID: id, Template: template, Reason: "only one placeholder segment is allowed"}
	}
	return Route{ID: id, Template: template, Param: param}, nil
}
