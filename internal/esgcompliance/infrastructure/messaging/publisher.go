// Package messaging 领域事件的 Kafka 发布实现
package messaging

import (
	"context"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
	"github.com/wyfcoding/esgcompliance/pkg/mq"
)

// kafkaPublisher 基于 Kafka 的事件发布者，key 保证同一实体的事件时序
type kafkaPublisher struct {
	producer *mq.KafkaProducer
}

// NewKafkaPublisher 创建 Kafka 事件发布者
func NewKafkaPublisher(producer *mq.KafkaProducer) domain.EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}

// NopPublisher 空实现，用于本地联调或未配置 Kafka 的环境
type NopPublisher struct{}

// Publish 直接丢弃事件
func (NopPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return nil
}
