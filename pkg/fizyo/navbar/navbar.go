// Package navbar derives bottom-navigation state from the current route:
// whether the bar is shown and which tab is highlighted.
package navbar

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fiziktedavi/fizyo/pkg/fizyo/constants"
	"github.com/fiziktedavi/fizyo/pkg/fizyo/router"
)

// Item associates a top-level route with its tab label and icons.
type Item struct {
	Route          string // route identifier the tab navigates to
	Label          string // display text under the icon
	SelectedIcon   string // glyph drawn while the tab is active
	UnselectedIcon string // glyph drawn otherwise
}

// Icon returns the glyph for the given selection state.
func (i Item) Icon(selected bool) string {
	if selected {
		return i.SelectedIcon
	}
	return i.UnselectedIcon
}

// Caption returns the label upper-cased with Turkish casing rules
// ("Profil" becomes "PROFİL", "Sıralama" becomes "SIRALAMA").
func (i Item) Caption() string {
	return cases.Upper(language.Turkish).String(i.Label)
}

var defaultItems = [...]Item{
	{
		Route:          constants.RouteDashboard,
		Label:          "Ana Sayfa",
		SelectedIcon:   constants.HomeFilled,
		UnselectedIcon: constants.HomeOutlined,
	},
	{
		Route:          constants.RouteExerciseCalendar,
		Label:          "Takvim",
		SelectedIcon:   constants.CalendarFilled,
		UnselectedIcon: constants.CalendarOutlined,
	},
	{
		Route:          constants.RouteLeaderboard,
		Label:          "Sıralama",
		SelectedIcon:   constants.LeaderboardFilled,
		UnselectedIcon: constants.LeaderboardOutlined,
	},
	{
		Route:          constants.RouteProfile,
		Label:          "Profil",
		SelectedIcon:   constants.PersonFilled,
		UnselectedIcon: constants.PersonOutlined,
	},
}

// Routes whose screens draw without the bottom bar. Matched on static prefix,
// so every exercise_detail/{id} is covered.
var hiddenRoutes = map[string]struct{}{
	constants.RouteLogin:          {},
	constants.RouteRegister:       {},
	constants.RouteForgotPassword: {},
	constants.RouteOnboarding:     {},
	constants.RouteExerciseDetail: {},
	constants.RouteTherapistCall:  {},
	constants.RouteSettings:       {},
}

// DefaultItems returns the four tabs in display order.
func DefaultItems() []Item {
	items := make([]Item, len(defaultItems))
	copy(items, defaultItems[:])
	return items
}

// Visible reports whether the bottom bar renders for path.
// An unset path (app not initialised) hides the bar.
func Visible(path string) bool {
	if path == "" {
		return false
	}
	_, hidden := hiddenRoutes[router.StaticPrefix(path)]
	return !hidden
}

// ActiveIndex returns the index of the tab whose route is the static prefix
// of path, or -1.
func ActiveIndex(path string) int {
	if path == "" {
		return -1
	}
	prefix := router.StaticPrefix(path)
	for i, item := range defaultItems {
		if item.Route == prefix {
			return i
		}
	}
	return -1
}

// ActiveTab returns the highlighted tab for path, if any.
func ActiveTab(path string) (Item, bool) {
	idx := ActiveIndex(path)
	if idx < 0 {
		return Item{}, false
	}
	return defaultItems[idx], true
}
