package classify

import "strings"

// Rule maps title substrings to a category. Rules are evaluated in fixed
// priority order; the first match wins.
type Rule struct {
	Keywords   []string
	Category   Category
	Confidence float64
	Tags       []string
	Rationale  string
}

// RuleTable is the deterministic local fallback used when the remote
// classifier is unavailable or returns garbage.
type RuleTable struct {
	rules []Rule
}

func NewRuleTable(rules []Rule) *RuleTable {
	return &RuleTable{rules: rules}
}

// DefaultRules covers the common title vocabulary. Earlier rules win.
func DefaultRules() *RuleTable {
	return NewRuleTable([]Rule{
		{
			Keywords:   []string{"youtube", "tiktok", "instagram", "reddit", "netflix", "twitch"},
			Category:   CategoryDistraction,
			Confidence: 80,
			Tags:       []string{"video", "entertainment"},
			Rationale:  "Recognized social or video site.",
		},
		{
			Keywords:   []string{"twitter", "linkedin", "facebook"},
			Category:   CategoryDistraction,
			Confidence: 70,
			Tags:       []string{"social"},
			Rationale:  "Social feed, likely distraction.",
		},
		{
			Keywords:   []string{"inbox", "gmail", "mail"},
			Category:   CategoryNeutral,
			Confidence: 70,
			Tags:       []string{"email", "communication"},
			Rationale:  "Email-like title.",
		},
		{
			Keywords:   []string{"code", "vscode", "pycharm", "xcode", "terminal", "iterm"},
			Category:   CategoryFocus,
			Confidence: 90,
			Tags:       []string{"code", "editor"},
			Rationale:  "Developer tool, focused work.",
		},
	})
}

// Classify matches the lowercased title against the table. The boolean is
// false when no rule matched.
func (t *RuleTable) Classify(title string) (Record, bool) {
	low := strings.ToLower(title)
	for _, rule := range t.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(low, kw) {
				return Record{
					Title:      title,
					Category:   rule.Category,
					Confidence: rule.Confidence,
					Tags:       rule.Tags,
					Rationale:  rule.Rationale,
					Source:     SourceRule,
				}, true
			}
		}
	}
	return Record{}, false
}
