package domain

import "time"

// TournamentStatus represents the lifecycle state of a tournament
type TournamentStatus string

const (
	TournamentRegistration TournamentStatus = "registration"
	TournamentInProgress   TournamentStatus = "in_progress"
	TournamentCompleted    TournamentStatus = "completed"
	TournamentCancelled    TournamentStatus = "cancelled"
)

// Valid reports whether the status is one of the known states
func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentRegistration, TournamentInProgress, TournamentCompleted, TournamentCancelled:
		return true
	}
	return false
}

// Tournament represents a community tournament.
// Brackets are stored flat as participant lists, no seeding or advancement
// logic lives here.
type Tournament struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Game            string           `json:"game,omitempty"`
	Status          TournamentStatus `json:"status"`
	Participants    []string         `json:"participants"` // team or school ids, registration order
	MaxParticipants int              `json:"max_participants"`
	PrizePool       string           `json:"prize_pool,omitempty"`
	StartsAt        *time.Time       `json:"starts_at,omitempty"`
	EndsAt          *time.Time       `json:"ends_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Active reports whether the tournament should be surfaced in the feed
func (t *Tournament) Active() bool {
	return t.Status == TournamentRegistration || t.Status == TournamentInProgress
}

// Full reports whether registration has reached capacity
func (t *Tournament) Full() bool {
	return t.MaxParticipants > 0 && len(t.Participants) >= t.MaxParticipants
}
