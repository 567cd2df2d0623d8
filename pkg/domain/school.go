package domain

import "time"

// School represents a school or club with esports teams
type School struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LogoURL     string    `json:"logo_url,omitempty"`
	MemberCount int       `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Role levels for identity headers supplied by the fronting auth proxy
const (
	RoleMember    = 0
	RoleModerator = 1
	RoleAdmin     = 2
)
