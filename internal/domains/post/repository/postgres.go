package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresPostRepository) Create(ctx context.Context, post *model.Post) error {
	query := `
		INSERT INTO posts (
			id, user_id, title, body, is_draft, published_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.UserID,
		post.Title,
		post.Body,
		post.IsDraft,
		post.PublishedAt,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `
		SELECT
			p.id, p.user_id, p.title, p.body, p.is_draft, p.published_at,
			p.created_at, p.updated_at,
			u.id, u.name, u.email
		FROM posts p
		INNER JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	post := &model.Post{}
	author := &model.Author{}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Body,
		&post.IsDraft,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Name,
		&author.Email,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.Author = author
	return post, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresPostRepository) Update(ctx context.Context, post *model.Post) error {
	// user_id is deliberately absent: ownership never changes
	query := `
		UPDATE posts
		SET
			title = $2,
			body = $3,
			is_draft = $4,
			published_at = $5,
			updated_at = $6
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Body,
		post.IsDraft,
		post.PublishedAt,
		post.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// =====================================================
// LIST VISIBLE
// =====================================================

func (r *postgresPostRepository) ListVisible(
	ctx context.Context,
	now time.Time,
	page, limit int,
) ([]*model.Post, int, error) {
	// The WHERE clause is the SQL form of policy.Visible: not a draft,
	// publish date set and already passed. Ties in published_at fall back
	// to id so the order is deterministic across pages.
	query := `
		SELECT
			p.id, p.user_id, p.title, p.body, p.is_draft, p.published_at,
			p.created_at, p.updated_at,
			u.id, u.name, u.email
		FROM posts p
		INNER JOIN users u ON u.id = p.user_id
		WHERE p.is_draft = FALSE
		  AND p.published_at IS NOT NULL
		  AND p.published_at <= $1
		ORDER BY p.published_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * limit
	rows, err := r.pool.Query(ctx, query, now, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post := &model.Post{}
		author := &model.Author{}

		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Body,
			&post.IsDraft,
			&post.PublishedAt,
			&post.CreatedAt,
			&post.UpdatedAt,
			&author.ID,
			&author.Name,
			&author.Email,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}

		post.Author = author
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read posts: %w", err)
	}

	// Count total with the same predicate
	countQuery := `
		SELECT COUNT(*)
		FROM posts
		WHERE is_draft = FALSE
		  AND published_at IS NOT NULL
		  AND published_at <= $1
	`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, now).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}
