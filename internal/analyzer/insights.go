package analyzer

// Thresholds are the score boundaries used when rating a focus score.
type Thresholds struct {
	Excellent float64
	Good      float64
	Low       float64
}

// DefaultThresholds mirrors the stock dashboard configuration.
var DefaultThresholds = Thresholds{Excellent: 75, Good: 50, Low: 30}

// RateScore maps a focus score to a human rating.
func RateScore(score float64, t Thresholds) string {
	switch {
	case score >= t.Excellent:
		return "excellent"
	case score >= t.Good:
		return "good"
	case score >= t.Low:
		return "fair"
	default:
		return "low"
	}
}

// HighDistraction reports whether the distraction share of the window
// crosses the warning threshold (a percentage, typically 30).
func HighDistraction(sum Summary, thresholdPercent float64) bool {
	return sum.TotalTracked > 0 && sum.DistractionPercentage >= thresholdPercent
}
