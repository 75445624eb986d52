package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/shared/validate"
)

// PerPage is the fixed page size of the public post listing.
const PerPage = 20

// =====================================================
// REQUEST DTOs
// =====================================================

// CreatePostRequest request to create a post.
// is_draft is a pointer so that an absent flag can be told apart from an
// explicit false.
type CreatePostRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	IsDraft     *bool      `json:"is_draft"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r CreatePostRequest) Validate() error {
	return validate.Wrap(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
		),
		validation.Field(&r.IsDraft,
			validation.NotNil.Error("is_draft is required"),
		),
		validation.Field(&r.PublishedAt,
			// The publish invariant: a non-draft must carry a publish date.
			validation.When(r.IsDraft != nil && !*r.IsDraft,
				validation.NotNil.Error("published_at is required when is_draft is false"),
			),
		),
	))
}

// UpdatePostRequest request to update a post. All fields are optional;
// a field left out of the payload is not touched.
type UpdatePostRequest struct {
	Title       *string    `json:"title"`
	Body        *string    `json:"body"`
	IsDraft     *bool      `json:"is_draft"`
	PublishedAt *time.Time `json:"published_at"`
}

func (r UpdatePostRequest) Validate() error {
	return validate.Wrap(validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title must not be empty"),
				validation.RuneLength(1, 255).Error("title must be between 1 and 255 characters"),
			),
		),
		validation.Field(&r.Body,
			validation.When(r.Body != nil,
				validation.Required.Error("body must not be empty"),
			),
		),
		validation.Field(&r.PublishedAt,
			// published_at is forced only when this payload itself flips
			// is_draft to false. A partial update that does not touch
			// is_draft never requires it.
			validation.When(r.IsDraft != nil && !*r.IsDraft,
				validation.NotNil.Error("published_at is required when is_draft is false"),
			),
		),
	))
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// PostResponse response for a single post, owner attached
type PostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	IsDraft     bool       `json:"is_draft"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	User        Author     `json:"user"`
}

// ToResponse converts a Post entity to its response shape
func (p *Post) ToResponse() PostResponse {
	resp := PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Body:        p.Body,
		IsDraft:     p.IsDraft,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Author != nil {
		resp.User = *p.Author
	}
	return resp
}
