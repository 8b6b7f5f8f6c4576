// Package classify resolves activity titles to focus/distraction/neutral
// categories using cached results, user overrides, a remote classifier, and
// a local rule table, in that order of precedence.
package classify

import (
	"errors"
	"fmt"
)

// Category labels an activity period.
type Category string

const (
	CategoryFocus       Category = "focus"
	CategoryDistraction Category = "distraction"
	CategoryNeutral     Category = "neutral"

	// CategoryNotSet marks a classification that could not produce a usable
	// answer. It is a distinct state, never coerced to neutral, and never
	// persisted to the durable cache.
	CategoryNotSet Category = "not_set"
)

// ErrInvalidCategory is returned when an override supplies a label outside
// the three assignable categories.
var ErrInvalidCategory = errors.New("invalid category")

// ParseCategory validates a user-supplied category label. not_set is not
// assignable by hand.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFocus, CategoryDistraction, CategoryNeutral:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q (expected focus, distraction, or neutral)", ErrInvalidCategory, s)
}
