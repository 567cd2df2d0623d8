package domain

import "time"

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchOpen       MatchStatus = "open"
	MatchScheduled  MatchStatus = "scheduled"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
	MatchCancelled  MatchStatus = "cancelled"
)

// Valid reports whether the status is one of the known states
func (s MatchStatus) Valid() bool {
	switch s {
	case MatchOpen, MatchScheduled, MatchInProgress, MatchCompleted, MatchCancelled:
		return true
	}
	return false
}

// Match represents a match between two teams
type Match struct {
	ID          string      `json:"id"`
	Game        string      `json:"game,omitempty"`
	Status      MatchStatus `json:"status"`
	IsFeatured  bool        `json:"is_featured"`
	HomeTeam    string      `json:"home_team"`
	AwayTeam    string      `json:"away_team"`
	HomeScore   int         `json:"home_score"`
	AwayScore   int         `json:"away_score"`
	SchoolID    string      `json:"school_id,omitempty"`
	ScheduledAt *time.Time  `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Live reports whether the match is currently being played
func (m *Match) Live() bool {
	return m.Status == MatchInProgress
}

// Prominent reports whether the match belongs at the top of the feed,
// i.e. live or explicitly featured and not yet finished
func (m *Match) Prominent() bool {
	if m.Live() {
		return true
	}
	return m.IsFeatured && m.Status != MatchCompleted && m.Status != MatchCancelled
}
