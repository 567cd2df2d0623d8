package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arenascope/arenascope/pkg/domain"
)

// PostFilter narrows post listings; zero values mean no constraint
type PostFilter struct {
	Game     string
	SchoolID string
	AuthorID string
	Limit    int
	Offset   int
}

// CreatePost inserts a new post, assigning its id and creation time
func (db *DB) CreatePost(ctx context.Context, post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (id, author_id, author_name, school_id, game, content, media_url, comment_count, created_at, updated_at)
		VALUES (:id, :author_id, :author_name, :school_id, :game, :content, :media_url, :comment_count, :created_at, :updated_at)
	`
	row := postRow{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		AuthorName:   post.AuthorName,
		SchoolID:     post.SchoolID,
		Game:         post.Game,
		Content:      post.Content,
		MediaURL:     post.MediaURL,
		CommentCount: post.CommentCount,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
	if _, err := db.conn.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetPost retrieves a post by id with its reactions attached
func (db *DB) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var row postRow
	err := db.conn.GetContext(ctx, &row, `SELECT * FROM posts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post not found")
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	post := row.toDomain()
	reactions, err := db.reactionsFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	post.Reactions = reactions[id]
	return &post, nil
}

// GetPosts retrieves posts newest first, with reactions attached
func (db *DB) GetPosts(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	query := `SELECT * FROM posts WHERE 1=1`
	args := []interface{}{}

	if filter.Game != "" {
		query += ` AND game = ?`
		args = append(args, filter.Game)
	}
	if filter.SchoolID != "" {
		query += ` AND school_id = ?`
		args = append(args, filter.SchoolID)
	}
	if filter.AuthorID != "" {
		query += ` AND author_id = ?`
		args = append(args, filter.AuthorID)
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	var rows []postRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}

	posts := make([]domain.Post, len(rows))
	ids := make([]string, len(rows))
	for i := range rows {
		posts[i] = rows[i].toDomain()
		ids[i] = rows[i].ID
	}

	if len(ids) > 0 {
		reactions, err := db.reactionsFor(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			posts[i].Reactions = reactions[posts[i].ID]
		}
	}

	return posts, nil
}

// DeletePost removes a post and, via cascade, its reactions
func (db *DB) DeletePost(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post not found")
	}
	return nil
}

// AddReaction records a reaction; adding the same reaction twice is a no-op,
// matching set-union semantics
func (db *DB) AddReaction(ctx context.Context, postID, userID string, typ domain.ReactionType) error {
	return withBusyRetry(ctx, func() error {
		query := `
			INSERT INTO reactions (post_id, user_id, type)
			VALUES (?, ?, ?)
			ON CONFLICT(post_id, user_id, type) DO NOTHING
		`
		if _, err := db.conn.ExecContext(ctx, query, postID, userID, string(typ)); err != nil {
			return fmt.Errorf("add reaction: %w", err)
		}
		return nil
	})
}

// RemoveReaction removes a user's reaction of the given type
func (db *DB) RemoveReaction(ctx context.Context, postID, userID string, typ domain.ReactionType) error {
	return withBusyRetry(ctx, func() error {
		query := `DELETE FROM reactions WHERE post_id = ? AND user_id = ? AND type = ?`
		if _, err := db.conn.ExecContext(ctx, query, postID, userID, string(typ)); err != nil {
			return fmt.Errorf("remove reaction: %w", err)
		}
		return nil
	})
}

// IncrementCommentCount bumps the denormalized comment counter
func (db *DB) IncrementCommentCount(ctx context.Context, postID string) error {
	return withBusyRetry(ctx, func() error {
		query := `UPDATE posts SET comment_count = comment_count + 1, updated_at = ? WHERE id = ?`
		result, err := db.conn.ExecContext(ctx, query, time.Now().UTC(), postID)
		if err != nil {
			return fmt.Errorf("increment comment count: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("post not found")
		}
		return nil
	})
}

// CountPosts returns the total number of posts
func (db *DB) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// reactionsFor loads reactions for the given post ids grouped by post
func (db *DB) reactionsFor(ctx context.Context, postIDs []string) (map[string][]domain.Reaction, error) {
	query, args, err := sqlx.In(`SELECT post_id, user_id, type FROM reactions WHERE post_id IN (?) ORDER BY created_at, user_id`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("build reactions query: %w", err)
	}

	var rows []reactionRow
	if err := db.conn.SelectContext(ctx, &rows, db.conn.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get reactions: %w", err)
	}

	result := make(map[string][]domain.Reaction, len(postIDs))
	for _, r := range rows {
		result[r.PostID] = append(result[r.PostID], domain.Reaction{
			UserID: r.UserID,
			Type:   domain.ReactionType(r.Type),
		})
	}
	return result, nil
}
