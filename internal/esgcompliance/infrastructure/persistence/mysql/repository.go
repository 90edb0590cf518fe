// Package mysql 合规规则的 GORM 持久化实现
package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
)

// RuleRecord 合规规则持久化模型。
// 自增主键保存写入顺序，List 按该顺序返回以保证校验结果顺序可重现。
type RuleRecord struct {
	RecordID          uint       `gorm:"column:record_id;primaryKey;autoIncrement"`
	RuleID            string     `gorm:"column:rule_id;type:varchar(64);index;not null"`
	Framework         string     `gorm:"column:framework;type:varchar(32);not null"`
	Jurisdiction      string     `gorm:"column:jurisdiction;type:varchar(32);index;not null"`
	Category          string     `gorm:"column:category;type:varchar(32);not null"`
	Severity          string     `gorm:"column:severity;type:varchar(16);not null"`
	Description       string     `gorm:"column:description;type:text"`
	EffectiveFrom     time.Time  `gorm:"column:effective_from;not null"`
	EffectiveUntil    *time.Time `gorm:"column:effective_until"`
	RequiredESGRating string     `gorm:"column:required_esg_rating;type:varchar(8)"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
}

// TableName 表名
func (RuleRecord) TableName() string { return "compliance_rules" }

type ruleRepository struct{ db *gorm.DB }

// NewRuleRepository 创建规则仓储
func NewRuleRepository(db *gorm.DB) domain.RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) Save(ctx context.Context, rule domain.ComplianceRule) error {
	record := toRecord(rule)
	return r.db.WithContext(ctx).Create(&record).Error
}

func (r *ruleRepository) List(ctx context.Context) ([]domain.ComplianceRule, error) {
	var records []RuleRecord
	if err := r.db.WithContext(ctx).Order("record_id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomain(records), nil
}

func (r *ruleRepository) ListByJurisdiction(ctx context.Context, jurisdiction domain.Jurisdiction) ([]domain.ComplianceRule, error) {
	var records []RuleRecord
	err := r.db.WithContext(ctx).
		Where("jurisdiction = ? OR jurisdiction = ?", string(jurisdiction), string(domain.JurisdictionGlobal)).
		Order("record_id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomain(records), nil
}

func toRecord(rule domain.ComplianceRule) RuleRecord {
	return RuleRecord{
		RuleID:            rule.ID,
		Framework:         string(rule.Framework),
		Jurisdiction:      string(rule.Jurisdiction),
		Category:          string(rule.Category),
		Severity:          string(rule.Severity),
		Description:       rule.Description,
		EffectiveFrom:     rule.EffectiveFrom,
		EffectiveUntil:    rule.EffectiveUntil,
		RequiredESGRating: rule.RequiredESGRating,
	}
}

func toDomain(records []RuleRecord) []domain.ComplianceRule {
	rules := make([]domain.ComplianceRule, 0, len(records))
	for _, record := range records {
		rules = append(rules, domain.ComplianceRule{
			ID:                record.RuleID,
			Framework:         domain.RegulatoryFramework(record.Framework),
			Jurisdiction:      domain.Jurisdiction(record.Jurisdiction),
			Category:          domain.RuleCategory(record.Category),
			Severity:          domain.Severity(record.Severity),
			Description:       record.Description,
			EffectiveFrom:     record.EffectiveFrom,
			EffectiveUntil:    record.EffectiveUntil,
			RequiredESGRating: record.RequiredESGRating,
		})
	}
	return rules
}
