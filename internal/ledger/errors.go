package ledger

import "errors"

// Every precondition violation fails the whole operation; there is no partial
// application. Retrying a failed operation is always safe because the guards
// below make duplicates surface as errors instead of double effects.
var (
	ErrEmptyContent     = errors.New("content pointer must not be empty")
	ErrPostNotFound     = errors.New("post not found")
	ErrAlreadyReported  = errors.New("post already reported by this address")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this address")
	ErrNotFollowing     = errors.New("not following this address")
	ErrAlreadyLiked     = errors.New("post already liked by this address")
	ErrNotLiked         = errors.New("post not liked by this address")
	ErrZeroValue        = errors.New("tip value must be positive")
	ErrTransferFailed   = errors.New("tip transfer failed")
)
