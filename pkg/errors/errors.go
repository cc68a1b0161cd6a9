package errors

import "errors"

var (
	// Configuration errors
	ErrInvalidCapacity   = errors.New("capacity must be at least 1")
	ErrInvalidShardCount = errors.New("shard count must be at least 1")
	ErrInvalidConfig     = errors.New("invalid config")

	// Lookup errors
	ErrKeyNotFound = errors.New("key not found")
)
