package constants

// Icon glyphs for the bottom navigation bar (Material Design Icons).
// These Unicode code points render as icons with an MDI-patched font.
const (
	HomeFilled   = "\U000F02DC" // mdi-home
	HomeOutlined = "\U000F06A1" // mdi-home-outline

	CalendarFilled   = "\U000F0E17" // mdi-calendar-month
	CalendarOutlined = "\U000F0E18" // mdi-calendar-month-outline

	LeaderboardFilled   = "\U000F0538" // mdi-trophy
	LeaderboardOutlined = "\U000F0A9D" // mdi-trophy-outline

	PersonFilled   = "\U000F0004" // mdi-account
	PersonOutlined = "\U000F0013" // mdi-account-outline
)
