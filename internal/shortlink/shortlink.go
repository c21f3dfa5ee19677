package shortlink

import (
	"errors"
	"time"

	"github.com/dengnews/shortlink/internal/content"
)

const (
	// Alphabet is the symbol set short codes are drawn from.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// CodeLength is the number of symbols in a short code.
	CodeLength = 6

	// MaxGenerateAttempts bounds collision retries during code generation.
	MaxGenerateAttempts = 10
)

var (
	// ErrNotFound is returned when no short link matches a lookup.
	ErrNotFound = errors.New("short link not found")

	// ErrCodeTaken is returned by a mapping store when an insert loses to the
	// unique constraint on code. Callers treat it as a collision and retry.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrCodeSpaceExhausted is returned when no free code was found within
	// MaxGenerateAttempts. Repeated occurrences mean the code length needs
	// to grow.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique short code")
)

// ShortLink is one shareable alias for an article in a specific locale.
// Code is immutable once created; a renamed article gets a new link.
type ShortLink struct {
	Code      string
	Slug      string
	Locale    content.Locale
	CreatedAt time.Time
	ExpiresAt *time.Time
}
