package minio

import (
	"errors"

	"github.com/meigma/minio/internal/store"
)

// Errors returned by cache operations.
var (
	// ErrNotFound is returned by Load when the key is not cached.
	ErrNotFound = errors.New("minio: key not found")

	// ErrSizeMismatch is returned by Store when the declared size does not
	// match the supplied buffer's length.
	ErrSizeMismatch = errors.New("minio: declared size does not match buffer length")

	// ErrInsufficientCapacity indicates eviction exhausted all entries without
	// freeing enough room. It signals a bookkeeping bug, not a runtime
	// condition to recover from.
	ErrInsufficientCapacity = errors.New("minio: insufficient capacity after eviction")

	// ErrCorruptEntry is returned when a cached buffer no longer matches the
	// digest recorded at insertion. Only possible with WithDigests enabled.
	ErrCorruptEntry = errors.New("minio: cached bytes do not match recorded digest")

	// ErrDuplicateKey indicates an insert collided with a live entry. The
	// engine removes stale entries before inserting, so seeing this error
	// means an internal invariant was violated.
	ErrDuplicateKey = store.ErrDuplicateKey
)

// Errors returned by New for invalid configuration.
var (
	// ErrInvalidCapacity is returned when the byte budget is not positive.
	ErrInvalidCapacity = errors.New("minio: capacity must be positive")

	// ErrInvalidLimit is returned when a file size limit is not positive or
	// the cacheable limit exceeds the usable limit.
	ErrInvalidLimit = errors.New("minio: invalid file size limit")
)
