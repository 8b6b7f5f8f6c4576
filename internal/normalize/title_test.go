package normalize

import (
	"strings"
	"testing"
)

func TestBaseApp_Colon(t *testing.T) {
	got := BaseApp("Google Chrome: FocusPulse")
	if got != "Google Chrome" {
		t.Errorf("expected Google Chrome, got %q", got)
	}
}

func TestBaseApp_Dash(t *testing.T) {
	got := BaseApp("Google Chrome - Inbox (9,848) - Gmail")
	if got != "Google Chrome" {
		t.Errorf("expected Google Chrome, got %q", got)
	}
}

func TestBaseApp_EmDash(t *testing.T) {
	got := BaseApp("Firefox — Hacker News")
	if got != "Firefox" {
		t.Errorf("expected Firefox, got %q", got)
	}
}

func TestBaseApp_NoSeparator(t *testing.T) {
	for _, raw := range []string{"VSCode", "  Terminal  ", "Obsidian"} {
		got := BaseApp(raw)
		if got != strings.TrimSpace(raw) {
			t.Errorf("BaseApp(%q) = %q, expected %q", raw, got, strings.TrimSpace(raw))
		}
	}
}

func TestBaseApp_TrailingDash(t *testing.T) {
	got := BaseApp("Slack -")
	if got != "Slack" {
		t.Errorf("expected Slack, got %q", got)
	}
}

func TestSanitize_MasksEmail(t *testing.T) {
	got := Sanitize("Contact me at alice@example.com for details", DefaultMaxTitleLength)
	if !strings.Contains(got, "[redacted email]") {
		t.Errorf("expected redaction token in %q", got)
	}
	if strings.Contains(got, "alice@example.com") {
		t.Errorf("original address leaked through: %q", got)
	}
}

func TestSanitize_TruncatesLong(t *testing.T) {
	long := strings.Repeat("A", 200)
	got := Sanitize(long, 50)
	if len(got) > 50 {
		t.Errorf("length %d exceeds max 50", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ... suffix, got %q", got)
	}
}

func TestSanitize_LengthInvariant(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 100),
		"short",
		"line\nbreaks\r\nand\ttabs",
		strings.Repeat("a@b.co ", 40),
	}
	for _, in := range inputs {
		for _, max := range []int{1, 3, 10, 120} {
			got := Sanitize(in, max)
			if len([]rune(got)) > max {
				t.Errorf("Sanitize(%.20q, %d) has length %d", in, max, len([]rune(got)))
			}
		}
	}
}

func TestSanitize_CollapsesControlChars(t *testing.T) {
	got := Sanitize("one\ntwo\r\nthree\t\tfour", DefaultMaxTitleLength)
	if got != "one two three four" {
		t.Errorf("expected collapsed spaces, got %q", got)
	}
}

func TestDisplayTitle_Chrome(t *testing.T) {
	raw := "Google Chrome: FocusPulse"
	base := BaseApp(raw)
	got := DisplayTitle(raw, base)
	if !strings.Contains(got, "Chrome") || !strings.Contains(got, "FocusPulse") {
		t.Errorf("expected Chrome and tab text in %q", got)
	}
}

func TestDisplayTitle_ChromeNoTail(t *testing.T) {
	got := DisplayTitle("Google Chrome", "Google Chrome")
	if got != "Chrome" {
		t.Errorf("expected bare label, got %q", got)
	}
}

func TestDisplayTitle_PrefersBaseOnPrefixMatch(t *testing.T) {
	got := DisplayTitle("VSCode", "VSCode")
	if got != "VSCode" {
		t.Errorf("expected VSCode, got %q", got)
	}
}
