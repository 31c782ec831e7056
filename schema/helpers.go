package schema

// HealthStatusFor maps an overall health score to its report status.
func HealthStatusFor(score float64, tuning Tuning) HealthStatus {
	switch {
	case score >= tuning.StatusExcellent:
		return HealthExcellent
	case score >= tuning.StatusGood:
		return HealthGood
	case score >= tuning.StatusFair:
		return HealthFair
	default:
		return HealthNeedsAttention
	}
}

// ThresholdLevelFor maps a category score to its threshold level.
func ThresholdLevelFor(score float64, tuning Tuning) ThresholdLevel {
	switch {
	case score >= tuning.CheckExcellent:
		return LevelExcellent
	case score >= tuning.CheckGood:
		return LevelGood
	case score >= tuning.CheckWarning:
		return LevelWarning
	default:
		return LevelCritical
	}
}

// levelRank orders threshold levels from best to worst.
var levelRank = map[ThresholdLevel]int{
	LevelExcellent: 0,
	LevelGood:      1,
	LevelWarning:   2,
	LevelCritical:  3,
}

// WorstLevel returns the worse of two threshold levels.
func WorstLevel(a, b ThresholdLevel) ThresholdLevel {
	if levelRank[b] > levelRank[a] {
		return b
	}
	return a
}

// BadgeColorFor maps a health score to a shields.io color. A negative
// score means the health is unknown.
func BadgeColorFor(score float64) string {
	switch {
	case score < 0:
		return "lightgrey"
	case score >= 90:
		return "brightgreen"
	case score >= 70:
		return "green"
	case score >= 50:
		return "yellow"
	default:
		return "red"
	}
}
