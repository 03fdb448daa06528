package kv

import "errors"

var (
	// ErrCorrupt marks stored data that is present but not decodable.
	// Callers must surface it instead of silently reseeding, since
	// reseeding would destroy user data.
	ErrCorrupt = errors.New("stored data is corrupt")
)
