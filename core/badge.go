package core

import (
	"fmt"

	"github.com/paystackoss/orgpulse/schema"
)

const (
	badgeLabel        = "health"
	badgeCacheSeconds = 300
)

// BuildBadge renders a shields.io endpoint payload for the health score.
func BuildBadge(report *schema.Report) schema.Badge {
	return schema.Badge{
		SchemaVersion: 1,
		Label:         badgeLabel,
		Message:       fmt.Sprintf("%.0f%%", report.HealthScore),
		Color:         schema.BadgeColorFor(report.HealthScore),
		CacheSeconds:  badgeCacheSeconds,
	}
}

// UnknownBadge is the fallback payload when no report is available.
func UnknownBadge() schema.Badge {
	return schema.Badge{
		SchemaVersion: 1,
		Label:         badgeLabel,
		Message:       "unknown",
		Color:         schema.BadgeColorFor(-1),
		CacheSeconds:  badgeCacheSeconds,
	}
}
