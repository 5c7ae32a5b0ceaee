package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	// A missing link is a normal outcome for lookups, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrValidation wraps all input validation failures. Callers must
	// reject invalid input before any store call is made.
	ErrValidation = errors.New("validation failed")

	// ErrWrongPassword is returned when a known identifier is presented
	// with a secret that does not match.
	ErrWrongPassword = errors.New("wrong password")
)

// LinkItem is a persisted bookmark entry.
//
// Order defines the display position. Across the full set the values
// form an ascending ranking matching display order; creation appends at
// max(order)+1 and the reorder batch rewrites them as a dense zero-based
// sequence.
type LinkItem struct {
	// ID is assigned by the store on creation and immutable thereafter.
	ID string `json:"id"`

	// Title is non-empty display text.
	Title string `json:"title"`

	// URL is stored and served verbatim. No syntax validation beyond
	// the non-empty check is performed.
	URL string `json:"url"`

	// Order is the zero-based display position.
	Order int64 `json:"order"`

	// CreatedAt is epoch milliseconds, set once at creation.
	CreatedAt int64 `json:"createdAt"`
}

// OrderUpdate assigns a new order value to one link in a reorder batch.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int64  `json:"order"`
}

// NormalizeLinkInput trims both fields and rejects input where either
// is empty after trimming. Returns the trimmed values on success.
func NormalizeLinkInput(title, url string) (string, string, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" {
		return "", "", fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if url == "" {
		return "", "", fmt.Errorf("%w: url must not be empty", ErrValidation)
	}
	return title, url, nil
}

// SortByOrder sorts links ascending by order in place.
// Ties break on CreatedAt, then ID, so the result is deterministic.
func SortByOrder(items []LinkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ID < items[j].ID
	})
}
