package entity

// User is a demo participant. Avatar is nil when the user has no avatar set.
type User struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
	Title  string  `json:"title"`
}

// Badge is an achievement that can appear on a user summary.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"` // hex, e.g. "#F59E0B"
}

// LeaderboardEntry embeds the user it ranks. Entries are stored already
// ordered by rank, with points descending as rank increases.
type LeaderboardEntry struct {
	User   User `json:"user"`
	Points int  `json:"points"`
	Level  int  `json:"level"`
	Rank   int  `json:"rank"`
}

// UserSummary is the per-user detail view: points, level, streak and the
// user's badges plus free-text recent actions, in display order.
type UserSummary struct {
	User          User     `json:"user"`
	Points        int      `json:"points"`
	Level         int      `json:"level"`
	StreakDays    int      `json:"streak_days"`
	Badges        []Badge  `json:"badges"`
	RecentActions []string `json:"recent_actions"`
}
