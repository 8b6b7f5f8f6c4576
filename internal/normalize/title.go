// Package normalize derives canonical application identities and sanitized
// display strings from raw window titles.
//
// A single logical application (most prominently a browser) emits many
// distinct raw titles, one per tab or document. Without normalization the
// per-app aggregation fragments into noise.
package normalize

import (
	"regexp"
	"strings"
)

// DefaultMaxTitleLength caps sanitized display titles.
const DefaultMaxTitleLength = 120

const redactedEmail = "[redacted email]"

// separators are tried in priority order; the first one present in the
// title wins and the split happens at its first occurrence.
var separators = []string{":", " - ", " — ", " – "}

var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	whitespaceRe = regexp.MustCompile(`\s{2,}`)
)

// BaseApp extracts the application identity from a raw title by stripping
// tab/window suffixes. Titles without any known separator come back trimmed
// and otherwise unchanged.
func BaseApp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, sep := range separators {
		if i := strings.Index(trimmed, sep); i >= 0 {
			return strings.TrimSpace(trimmed[:i])
		}
	}
	if s, ok := strings.CutSuffix(trimmed, "-"); ok {
		return strings.TrimSpace(s)
	}
	if s, ok := strings.CutPrefix(trimmed, "- "); ok {
		return strings.TrimSpace(s)
	}
	return trimmed
}

// tail returns the text after the first matching separator, or "" when the
// title has no separator.
func tail(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, sep := range separators {
		if i := strings.Index(trimmed, sep); i >= 0 {
			return strings.TrimSpace(trimmed[i+len(sep):])
		}
	}
	return ""
}

// Sanitize strips control characters, masks email addresses, collapses
// whitespace runs, and truncates to maxLength. The result is always at most
// maxLength runes; truncation replaces the trailing three with "...".
func Sanitize(text string, maxLength int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r < 0x20 || r == 0x7f {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	s := emailRe.ReplaceAllString(b.String(), redactedEmail)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	runes := []rune(s)
	if maxLength > 0 && len(runes) > maxLength {
		if maxLength <= 3 {
			return string(runes[:maxLength])
		}
		return string(runes[:maxLength-3]) + "..."
	}
	return s
}

// DisplayTitle derives the human-facing title for a session. Chrome gets the
// tab text surfaced behind a fixed label; everything else is the sanitized
// raw title, except that a sanitized title which merely repeats (a possibly
// truncated copy of) the base app collapses back to the base app itself.
func DisplayTitle(raw, base string) string {
	if strings.Contains(base, "Chrome") {
		t := tail(raw)
		if t == "" {
			return "Chrome"
		}
		return "Chrome — " + Sanitize(t, DefaultMaxTitleLength)
	}

	s := Sanitize(raw, DefaultMaxTitleLength)
	if trimmed := strings.TrimSuffix(s, "..."); trimmed != "" && strings.HasPrefix(base, trimmed) {
		return base
	}
	return s
}
