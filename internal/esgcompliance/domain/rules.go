package domain

import (
	"fmt"
	"time"
)

// RegulatoryFramework 监管框架。固定取值之外允许 CustomFramework 扩展。
type RegulatoryFramework string

const (
	FrameworkEUSFDR     RegulatoryFramework = "EU_SFDR"
	FrameworkEUTaxonomy RegulatoryFramework = "EU_TAXONOMY"
	FrameworkSECClimate RegulatoryFramework = "SEC_CLIMATE"
	FrameworkMiFIDII    RegulatoryFramework = "MIFID_II"
	FrameworkBasel      RegulatoryFramework = "BASEL"
)

// CustomFramework 外部扩展框架，id 映射为带命名空间的代码。
func CustomFramework(id uint32) RegulatoryFramework {
	return RegulatoryFramework(fmt.Sprintf("CUSTOM-%d", id))
}

// Name 返回框架的展示名称。
func (f RegulatoryFramework) Name() string {
	switch f {
	case FrameworkEUSFDR:
		return "EU SFDR"
	case FrameworkEUTaxonomy:
		return "EU Taxonomy"
	case FrameworkSECClimate:
		return "SEC Climate"
	case FrameworkMiFIDII:
		return "MiFID II"
	case FrameworkBasel:
		return "Basel"
	default:
		return string(f)
	}
}

// Jurisdiction 合规适用辖区。JurisdictionGlobal 是通配辖区，匹配所有调用方辖区。
type Jurisdiction string

const (
	JurisdictionEU     Jurisdiction = "EU"
	JurisdictionUS     Jurisdiction = "US"
	JurisdictionUK     Jurisdiction = "UK"
	JurisdictionBrazil Jurisdiction = "BR"
	JurisdictionGlobal Jurisdiction = "GLOBAL"
)

// CustomJurisdiction 外部扩展辖区。
func CustomJurisdiction(id uint32) Jurisdiction {
	return Jurisdiction(fmt.Sprintf("CUSTOM-%d", id))
}

// Code 返回辖区代码。
func (j Jurisdiction) Code() string {
	return string(j)
}

// RuleCategory 合规规则类别。
type RuleCategory string

const (
	CategoryKYCAML                RuleCategory = "KYC_AML"
	CategoryESGDisclosure         RuleCategory = "ESG_DISCLOSURE"
	CategoryInvestmentRestriction RuleCategory = "INVESTMENT_RESTRICTION"
	CategoryReporting             RuleCategory = "REPORTING"
	CategoryRiskManagement        RuleCategory = "RISK_MANAGEMENT"
)

// Severity 规则严重级别。
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// ComplianceRule 合规规则，不可变值对象。
// EffectiveUntil 为 nil 表示规则无失效上限；
// RequiredESGRating 为空表示该规则不携带评级要求。
type ComplianceRule struct {
	ID                string              `json:"id"`
	Framework         RegulatoryFramework `json:"framework"`
	Jurisdiction      Jurisdiction        `json:"jurisdiction"`
	Category          RuleCategory        `json:"category"`
	Severity          Severity            `json:"severity"`
	Description       string              `json:"description"`
	EffectiveFrom     time.Time           `json:"effective_from"`
	EffectiveUntil    *time.Time          `json:"effective_until,omitempty"`
	RequiredESGRating string              `json:"required_esg_rating,omitempty"`
}

// IsEffective 判断规则在 at 时刻是否生效，区间两端均含。
func (r ComplianceRule) IsEffective(at time.Time) bool {
	if at.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveUntil != nil && at.After(*r.EffectiveUntil) {
		return false
	}
	return true
}

// AppliesTo 判断规则是否适用于指定辖区：辖区一致或规则为 Global。
func (r ComplianceRule) AppliesTo(jurisdiction Jurisdiction) bool {
	return r.Jurisdiction == jurisdiction || r.Jurisdiction == JurisdictionGlobal
}
