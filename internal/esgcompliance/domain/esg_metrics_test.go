package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestESGCategory_Code(t *testing.T) {
	assert.Equal(t, "E", CategoryEnvironmental.Code())
	assert.Equal(t, "S", CategorySocial.Code())
	assert.Equal(t, "G", CategoryGovernance.Code())
	assert.Equal(t, "", ESGCategory("UNKNOWN").Code())
}

func TestEnvironmentalMetrics_Score(t *testing.T) {
	tests := []struct {
		name    string
		metrics EnvironmentalMetrics
		want    float64
	}{
		{
			"best case",
			EnvironmentalMetrics{CarbonFootprint: 0, RenewableEnergyPct: 100, WaterUsage: 0, WasteReductionPct: 100},
			100.0,
		},
		{
			"worst case",
			EnvironmentalMetrics{CarbonFootprint: 10000, RenewableEnergyPct: 0, WaterUsage: 100000, WasteReductionPct: 0},
			0.0,
		},
		{
			"midpoint on every axis",
			EnvironmentalMetrics{CarbonFootprint: 5000, RenewableEnergyPct: 50, WaterUsage: 50000, WasteReductionPct: 50},
			50.0,
		},
		{
			"consumption beyond baseline clamps to zero contribution",
			EnvironmentalMetrics{CarbonFootprint: 50000, RenewableEnergyPct: 100, WaterUsage: 500000, WasteReductionPct: 100},
			50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.metrics.Score(), 1e-9)
		})
	}
}

func TestSocialMetrics_Score(t *testing.T) {
	full := SocialMetrics{LaborStandardsScore: 100, CommunityInvestment: 1000000, DiversityIndex: 1.0}
	assert.InDelta(t, 100.0, full.Score(), 1e-9)

	empty := SocialMetrics{}
	assert.Zero(t, empty.Score())

	partial := SocialMetrics{LaborStandardsScore: 60, CommunityInvestment: 500000, DiversityIndex: 0.5}
	assert.InDelta(t, (60.0+50.0+50.0)/3.0, partial.Score(), 1e-9)
}

func TestGovernanceMetrics_Score(t *testing.T) {
	m := GovernanceMetrics{BoardIndependencePct: 90, TransparencyScore: 80, AntiCorruptionScore: 70}
	assert.InDelta(t, 80.0, m.Score(), 1e-9)
}

func TestMetricsScores_StayWithinBounds(t *testing.T) {
	extreme := GovernanceMetrics{BoardIndependencePct: 200, TransparencyScore: 200, AntiCorruptionScore: 200}
	assert.Equal(t, 100.0, extreme.Score())

	negative := SocialMetrics{LaborStandardsScore: -50, CommunityInvestment: -1, DiversityIndex: -1}
	assert.Equal(t, 0.0, negative.Score())
}
