package domain

import "time"

// Post represents a community feed post
type Post struct {
	ID           string     `json:"id"`
	AuthorID     string     `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	SchoolID     string     `json:"school_id,omitempty"`
	Game         string     `json:"game,omitempty"`
	Content      string     `json:"content"`
	MediaURL     string     `json:"media_url,omitempty"`
	Reactions    []Reaction `json:"reactions,omitempty"`
	CommentCount int        `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Reaction represents a single user reaction on a post
type Reaction struct {
	UserID string       `json:"user_id"`
	Type   ReactionType `json:"type"`
}

// ReactionType represents the kind of reaction
type ReactionType string

const (
	ReactionLike ReactionType = "like"
	ReactionFire ReactionType = "fire"
	ReactionGG   ReactionType = "gg"
)

// Valid reports whether the reaction type is one of the known kinds
func (r ReactionType) Valid() bool {
	switch r {
	case ReactionLike, ReactionFire, ReactionGG:
		return true
	}
	return false
}
