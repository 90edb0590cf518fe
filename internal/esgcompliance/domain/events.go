package domain

import (
	"context"
	"time"
)

// 领域事件主题
const (
	TopicComplianceValidated = "esg.compliance.validated"
	TopicTradeMessageCreated = "esg.trade.message.created"
)

// ComplianceValidatedEvent 合规校验完成事件。
type ComplianceValidatedEvent struct {
	EntityID      string           `json:"entity_id"`
	OverallStatus ComplianceStatus `json:"overall_status"`
	RuleCount     int              `json:"rule_count"`
	Rating        string           `json:"rating"`
	CheckedAt     time.Time        `json:"checked_at"`
}

// TradeMessageCreatedEvent SETR 报文生成事件。
type TradeMessageCreatedEvent struct {
	MessageID   string    `json:"message_id"`
	Instrument  string    `json:"instrument"`
	SFDRArticle int       `json:"sfdr_article"`
	Rating      string    `json:"rating"`
	TradeDate   string    `json:"trade_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventPublisher 领域事件发布端口，由基础设施层实现。
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
