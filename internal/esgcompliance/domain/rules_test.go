package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComplianceRule_IsEffective(t *testing.T) {
	now := time.Now()
	until := now.Add(30 * 24 * time.Hour)

	rule := ComplianceRule{
		ID:             "SFDR-001",
		Framework:      FrameworkEUSFDR,
		Jurisdiction:   JurisdictionEU,
		EffectiveFrom:  now.Add(-10 * 24 * time.Hour),
		EffectiveUntil: &until,
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"inside window", now, true},
		{"exactly at start", rule.EffectiveFrom, true},
		{"exactly at end", until, true},
		{"before start", rule.EffectiveFrom.Add(-time.Second), false},
		{"after end", until.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.IsEffective(tt.at))
		})
	}
}

func TestComplianceRule_IsEffective_NoUpperBound(t *testing.T) {
	rule := ComplianceRule{
		ID:            "PERPETUAL-001",
		EffectiveFrom: time.Now().Add(-time.Hour),
	}

	assert.True(t, rule.IsEffective(time.Now()))
	assert.True(t, rule.IsEffective(time.Now().Add(100*365*24*time.Hour)))
}

func TestComplianceRule_AppliesTo(t *testing.T) {
	euRule := ComplianceRule{ID: "EU-001", Jurisdiction: JurisdictionEU}
	globalRule := ComplianceRule{ID: "GLOBAL-001", Jurisdiction: JurisdictionGlobal}

	assert.True(t, euRule.AppliesTo(JurisdictionEU))
	assert.False(t, euRule.AppliesTo(JurisdictionUS))
	assert.True(t, globalRule.AppliesTo(JurisdictionEU))
	assert.True(t, globalRule.AppliesTo(JurisdictionUS))
	assert.True(t, globalRule.AppliesTo(CustomJurisdiction(7)))
}

func TestCustomFramework(t *testing.T) {
	f := CustomFramework(42)
	assert.Equal(t, RegulatoryFramework("CUSTOM-42"), f)
	assert.Equal(t, "CUSTOM-42", f.Name())
}

func TestCustomJurisdiction(t *testing.T) {
	j := CustomJurisdiction(7)
	assert.Equal(t, "CUSTOM-7", j.Code())
	assert.NotEqual(t, JurisdictionGlobal, j)
}

func TestRegulatoryFramework_Name(t *testing.T) {
	tests := []struct {
		framework RegulatoryFramework
		want      string
	}{
		{FrameworkEUSFDR, "EU SFDR"},
		{FrameworkEUTaxonomy, "EU Taxonomy"},
		{FrameworkSECClimate, "SEC Climate"},
		{FrameworkMiFIDII, "MiFID II"},
		{FrameworkBasel, "Basel"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.framework.Name())
	}
}
