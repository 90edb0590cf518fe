package domain

import (
	"fmt"
	"sync"
	"time"
)

// ComplianceStatus 单条合规检查状态。
type ComplianceStatus string

const (
	StatusCompliant          ComplianceStatus = "COMPLIANT"
	StatusPartiallyCompliant ComplianceStatus = "PARTIALLY_COMPLIANT"
	StatusNonCompliant       ComplianceStatus = "NON_COMPLIANT"
	StatusPending            ComplianceStatus = "PENDING"
	StatusNotApplicable      ComplianceStatus = "NOT_APPLICABLE"
)

// Display 返回状态的展示文本。
func (s ComplianceStatus) Display() string {
	switch s {
	case StatusCompliant:
		return "Compliant"
	case StatusPartiallyCompliant:
		return "Partially Compliant"
	case StatusNonCompliant:
		return "Non-Compliant"
	case StatusPending:
		return "Pending"
	case StatusNotApplicable:
		return "Not Applicable"
	default:
		return string(s)
	}
}

// ComplianceResult 单条规则的校验结果，每次校验都重新生成。
type ComplianceResult struct {
	RuleID    string           `json:"rule_id"`
	Status    ComplianceStatus `json:"status"`
	Message   string           `json:"message"`
	CheckedAt time.Time        `json:"checked_at"`
}

// NewComplianceResult 创建校验结果，时间戳取当前时刻。
func NewComplianceResult(ruleID string, status ComplianceStatus, message string) ComplianceResult {
	return ComplianceResult{
		RuleID:    ruleID,
		Status:    status,
		Message:   message,
		CheckedAt: time.Now(),
	}
}

// ComplianceValidator 合规规则校验器。
// 规则集合按插入顺序保存，保证结果顺序可重现；重复 id 合法且各自独立评估。
// 并发写入需要外部串行化，已填充完毕后的并发读校验是安全的。
type ComplianceValidator struct {
	mu    sync.RWMutex
	rules []ComplianceRule
}

// NewComplianceValidator 创建空校验器。
func NewComplianceValidator() *ComplianceValidator {
	return &ComplianceValidator{}
}

// AddRule 追加一条规则。
func (v *ComplianceValidator) AddRule(rule ComplianceRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = append(v.rules, rule)
}

// AddRules 批量追加规则。
func (v *ComplianceValidator) AddRules(rules []ComplianceRule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rules = append(v.rules, rules...)
}

// Rules 返回规则集合的拷贝，保持插入顺序。
func (v *ComplianceValidator) Rules() []ComplianceRule {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]ComplianceRule, len(v.rules))
	copy(out, v.rules)
	return out
}

// ApplicableRules 按辖区/框架/类别预筛选规则。
// 三个维度均以零值表示不过滤；辖区匹配遵循 AppliesTo 的 Global 通配语义。
func (v *ComplianceValidator) ApplicableRules(jurisdiction Jurisdiction, framework RegulatoryFramework, category RuleCategory) []ComplianceRule {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]ComplianceRule, 0, len(v.rules))
	for _, rule := range v.rules {
		if jurisdiction != "" && !rule.AppliesTo(jurisdiction) {
			continue
		}
		if framework != "" && rule.Framework != framework {
			continue
		}
		if category != "" && rule.Category != category {
			continue
		}
		out = append(out, rule)
	}
	return out
}

// Validate 在 at 时刻用 esgScore 评估当前持有的全部规则，按插入顺序逐条产出结果：
//  1. 规则在 at 时刻未生效：NOT_APPLICABLE；
//  2. 规则携带最低评级要求：评分评级 >= 要求为 COMPLIANT，否则 NON_COMPLIANT；
//  3. 规则无评级要求：NOT_APPLICABLE。
// 校验永不失败，任何输入都产出确定的结果集。
func (v *ComplianceValidator) Validate(esgScore ESGScore, at time.Time) []ComplianceResult {
	v.mu.RLock()
	defer v.mu.RUnlock()

	results := make([]ComplianceResult, 0, len(v.rules))
	for _, rule := range v.rules {
		if !rule.IsEffective(at) {
			results = append(results, NewComplianceResult(
				rule.ID, StatusNotApplicable, "Rule not currently effective"))
			continue
		}

		if rule.RequiredESGRating == "" {
			results = append(results, NewComplianceResult(
				rule.ID, StatusNotApplicable, "No ESG rating requirement"))
			continue
		}

		required := ParseESGRating(rule.RequiredESGRating)
		if esgScore.Rating >= required {
			results = append(results, NewComplianceResult(
				rule.ID, StatusCompliant,
				fmt.Sprintf("ESG rating %s meets requirement", esgScore.Rating)))
		} else {
			results = append(results, NewComplianceResult(
				rule.ID, StatusNonCompliant,
				fmt.Sprintf("ESG rating %s does not meet requirement of %s",
					esgScore.Rating, rule.RequiredESGRating)))
		}
	}
	return results
}

// OverallStatus 聚合整体状态。
// 优先级：NON_COMPLIANT > PENDING > PARTIALLY_COMPLIANT > COMPLIANT > NOT_APPLICABLE。
// 任意一条 NON_COMPLIANT 即判定整体不合规，与其余结果数量无关；
// 空结果集或全部 NOT_APPLICABLE 聚合为 NOT_APPLICABLE。
func OverallStatus(results []ComplianceResult) ComplianceStatus {
	var hasNonCompliant, hasPending, hasPartiallyCompliant, hasCompliant bool

	for _, result := range results {
		switch result.Status {
		case StatusNonCompliant:
			hasNonCompliant = true
		case StatusPending:
			hasPending = true
		case StatusPartiallyCompliant:
			hasPartiallyCompliant = true
		case StatusCompliant:
			hasCompliant = true
		}
	}

	switch {
	case hasNonCompliant:
		return StatusNonCompliant
	case hasPending:
		return StatusPending
	case hasPartiallyCompliant:
		return StatusPartiallyCompliant
	case hasCompliant:
		return StatusCompliant
	default:
		return StatusNotApplicable
	}
}
