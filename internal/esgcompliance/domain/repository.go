package domain

import "context"

// RuleRepository 合规规则仓储端口。
// 只有新增与读取：规则是不可变值记录，不提供更新/删除/版本化操作。
type RuleRepository interface {
	Save(ctx context.Context, rule ComplianceRule) error
	// List 按写入顺序返回全部规则。
	List(ctx context.Context) ([]ComplianceRule, error)
	ListByJurisdiction(ctx context.Context, jurisdiction Jurisdiction) ([]ComplianceRule, error)
}
