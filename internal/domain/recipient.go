package domain

import (
	"strconv"
	"strings"
)

// RecipientID identifies a row of the recipient table. The mms table stores
// quote authors as free-form text, so the normalized string form is the join
// key between quotes and recipients.
type RecipientID int64

// String returns the normalized form used for quote-author matching.
func (id RecipientID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// NormalizeKey normalizes a raw author value from the database so it can be
// compared against RecipientID.String().
func NormalizeKey(raw string) string {
	return strings.TrimSpace(raw)
}

// Recipient is one side of a conversation: a person or a group. Immutable
// once constructed and shared by value across every thread, message and
// quote that names it.
type Recipient struct {
	ID      RecipientID
	Name    string
	Color   string // named palette color, always set after resolution
	IsGroup bool
}
