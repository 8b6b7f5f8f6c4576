package classify

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

// Source identifies where a classification came from.
type Source string

const (
	SourceRule     Source = "rule"
	SourceRemote   Source = "remote"
	SourceOverride Source = "user_override"
)

// Record is one classification result. Records with SourceRemote or
// SourceOverride are durable; SourceRule results are returned to callers but
// never written to the cache.
type Record struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   Category  `json:"category"`
	Confidence float64   `json:"confidence"`
	Tags       []string  `json:"tags"`
	Rationale  string    `json:"rationale"`
	Source     Source    `json:"source"`
	Model      string    `json:"model,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Cached is set by the resolver on a cache hit. Never persisted.
	Cached bool `json:"cached"`
}

// Durable reports whether the record belongs in the cache.
func (r Record) Durable() bool {
	return r.Source == SourceRemote || r.Source == SourceOverride
}

// CacheKey derives the stable cache key for a title with an optional entry
// id, sha1 over "entryID|title".
func CacheKey(entryID, title string) string {
	h := sha1.Sum([]byte(entryID + "|" + title))
	return hex.EncodeToString(h[:])
}
