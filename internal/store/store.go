// Package store is the gateway to the persisted collections. Every operation
// reports its outcome through the sentinel errors below, so callers branch
// with errors.Is instead of inspecting driver error shapes.
package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrMalformedID means the identifier does not parse and can never match
	// a record.
	ErrMalformedID = errors.New("malformed identifier")

	// ErrNotFound means zero records matched the identifier.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means a write was rejected by a uniqueness constraint.
	ErrConflict = errors.New("uniqueness conflict")
)

// NewID mints a server-assigned identifier.
func NewID() string {
	return uuid.NewString()
}

// CheckID reports ErrMalformedID when the identifier cannot parse. Handlers
// use it to reject a bad path parameter before touching the request body.
func CheckID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMalformedID
	}
	return nil
}

// classifyWrite maps a driver failure onto the store's outcome set. Duplicate
// key detection covers both GORM's translated error and the raw SQLite
// message, depending on what the dialector surfaces.
func classifyWrite(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
		return ErrConflict
	}
	return err
}
