package model

import "errors"

var (
	// ErrPostNotFound covers both a missing id and a post hidden by the
	// visibility rules: the two cases must be indistinguishable on public
	// read paths.
	ErrPostNotFound = errors.New("post not found")

	// ErrUnauthenticated means no requester identity was supplied
	ErrUnauthenticated = errors.New("authentication required")

	// ErrNotPostOwner means the requester is known but does not own the post
	ErrNotPostOwner = errors.New("only the author can modify this post")
)
