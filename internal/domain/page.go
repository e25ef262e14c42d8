package domain

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest defines keyset pagination over (created_at, id) in ascending order.
type PageRequest struct {
	// First is the maximum number of items to return. Default 20, max 100.
	First int
	// After is an opaque cursor returned by a previous page.
	After *string
}

// Normalize clamps First into [1, MaxPageSize].
func (p PageRequest) Normalize() PageRequest {
	if p.First <= 0 {
		p.First = DefaultPageSize
	}
	if p.First > MaxPageSize {
		p.First = MaxPageSize
	}
	return p
}

// Page is one page of a keyset-paginated listing.
type Page[T any] struct {
	Items       []T
	HasNextPage bool
	EndCursor   *string
}

// Cursor is the decoded position of the last item of a page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode returns the opaque form: base64(created_at RFC3339Nano + "|" + id).
func (c Cursor) Encode() string {
	raw := c.CreatedAt.UTC().Format(time.RFC3339Nano) + "|" + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an opaque cursor produced by Cursor.Encode.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	ts, id, ok := strings.Cut(string(raw), "|")
	if !ok {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor timestamp")
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor id")
	}

	return Cursor{CreatedAt: createdAt, ID: parsed}, nil
}
