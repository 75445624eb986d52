// Package policy holds the access rules for posts as plain predicate
// functions over post data and a requester identity.
package policy

import (
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// Visible reports whether the post is publicly readable at the given time.
// A post is visible to anyone, owner or not, iff it is not a draft and its
// publish date is set and not in the future.
func Visible(p *model.Post, now time.Time) bool {
	return !p.IsDraft && p.PublishedAt != nil && !p.PublishedAt.After(now)
}

// CanMutate reports whether the requester may update or delete the post.
// Only the owner may mutate, regardless of the post's publish state; an
// anonymous requester never can.
func CanMutate(requesterID *uuid.UUID, p *model.Post) bool {
	return requesterID != nil && *requesterID == p.UserID
}
