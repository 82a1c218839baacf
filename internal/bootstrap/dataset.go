package bootstrap

import (
	"fmt"

	"anoa.com/gamificationdemo/internal/entity"
)

// Dataset holds the fixed demo records. It is built once at startup and
// never mutated afterwards, so handlers may share it without locking.
type Dataset struct {
	Users       []entity.User
	Badges      []entity.Badge
	Leaderboard []entity.LeaderboardEntry
	Summaries   map[string]entity.UserSummary
}

// NewDataset builds the demo dataset and validates its invariants before
// handing it out, so a bad edit to the sample data fails the boot instead
// of surfacing as a wrong response later.
func NewDataset() (*Dataset, error) {
	users := []entity.User{
		{ID: "u_001", Name: "Alex Morgan", Avatar: nil, Title: "Sales Captain"},
		{ID: "u_002", Name: "Jamie Lee", Avatar: nil, Title: "Ops Strategist"},
		{ID: "u_003", Name: "Riley Chen", Avatar: nil, Title: "Product Ace"},
		{ID: "u_004", Name: "Jordan Patel", Avatar: nil, Title: "CX Pro"},
	}

	badges := []entity.Badge{
		{ID: "b_hero", Name: "Hero", Description: "Top performer of the week", Icon: "Trophy", Color: "#F59E0B"},
		{ID: "b_streak", Name: "Streak", Description: "7-day activity streak", Icon: "Flame", Color: "#EF4444"},
		{ID: "b_helper", Name: "Mentor", Description: "Helped 5 teammates", Icon: "Handshake", Color: "#10B981"},
	}

	leaderboard := []entity.LeaderboardEntry{
		{User: users[0], Points: 18250, Level: 12, Rank: 1},
		{User: users[1], Points: 16940, Level: 11, Rank: 2},
		{User: users[2], Points: 15100, Level: 10, Rank: 3},
		{User: users[3], Points: 13320, Level: 9, Rank: 4},
	}

	summaries := map[string]entity.UserSummary{
		"u_001": {
			User:       users[0],
			Points:     18250,
			Level:      12,
			StreakDays: 8,
			Badges:     []entity.Badge{badges[0], badges[1]},
			RecentActions: []string{
				"Closed enterprise deal (+2,000)",
				"Completed onboarding quest (+300)",
				"Shared playbook with team (+100)",
			},
		},
		"u_002": {
			User:       users[1],
			Points:     16940,
			Level:      11,
			StreakDays: 6,
			Badges:     []entity.Badge{badges[1]},
			RecentActions: []string{
				"Optimized ops workflow (+500)",
				"Daily check-in (+20)",
			},
		},
		"u_003": {
			User:          users[2],
			Points:        15100,
			Level:         10,
			StreakDays:    4,
			Badges:        []entity.Badge{},
			RecentActions: []string{"Launched feature beta (+1,200)"},
		},
		"u_004": {
			User:          users[3],
			Points:        13320,
			Level:         9,
			StreakDays:    2,
			Badges:        []entity.Badge{badges[2]},
			RecentActions: []string{"Resolved 20+ support tickets (+800)"},
		},
	}

	ds := &Dataset{
		Users:       users,
		Badges:      badges,
		Leaderboard: leaderboard,
		Summaries:   summaries,
	}

	if err := ds.validate(); err != nil {
		return nil, err
	}

	return ds, nil
}

// validate enforces the dataset invariants: leaderboard entries carry ranks
// 1..n in order with strictly descending points, and every summary key
// refers to a known user.
func (d *Dataset) validate() error {
	for i, e := range d.Leaderboard {
		if e.Rank != i+1 {
			return fmt.Errorf("leaderboard entry %d has rank %d, want %d", i, e.Rank, i+1)
		}
		if e.Points < 0 {
			return fmt.Errorf("leaderboard entry %d has negative points %d", i, e.Points)
		}
		if e.Level < 1 {
			return fmt.Errorf("leaderboard entry %d has level %d, want >= 1", i, e.Level)
		}
		if i > 0 && e.Points >= d.Leaderboard[i-1].Points {
			return fmt.Errorf("leaderboard points not strictly descending at rank %d", e.Rank)
		}
	}

	known := make(map[string]entity.User, len(d.Users))
	for _, u := range d.Users {
		if _, dup := known[u.ID]; dup {
			return fmt.Errorf("duplicate user id %s", u.ID)
		}
		known[u.ID] = u
	}

	for id, s := range d.Summaries {
		u, ok := known[id]
		if !ok {
			return fmt.Errorf("summary for unknown user id %s", id)
		}
		if s.User.ID != u.ID {
			return fmt.Errorf("summary for %s embeds user %s", id, s.User.ID)
		}
		if s.StreakDays < 0 {
			return fmt.Errorf("summary for %s has negative streak_days", id)
		}
	}

	return nil
}
