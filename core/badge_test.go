package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paystackoss/orgpulse/schema"
)

func TestBuildBadge(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		message string
		color   string
	}{
		{name: "excellent", score: 92.4, message: "92%", color: "brightgreen"},
		{name: "good", score: 75, message: "75%", color: "green"},
		{name: "fair", score: 55.6, message: "56%", color: "yellow"},
		{name: "poor", score: 10, message: "10%", color: "red"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			badge := BuildBadge(&schema.Report{HealthScore: tc.score})
			assert.Equal(t, 1, badge.SchemaVersion)
			assert.Equal(t, "health", badge.Label)
			assert.Equal(t, tc.message, badge.Message)
			assert.Equal(t, tc.color, badge.Color)
			assert.Equal(t, 300, badge.CacheSeconds)
		})
	}
}

func TestUnknownBadge(t *testing.T) {
	badge := UnknownBadge()
	assert.Equal(t, "unknown", badge.Message)
	assert.Equal(t, "lightgrey", badge.Color)
	assert.Equal(t, "health", badge.Label)
}
