// Package application ESG 合规服务应用层
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
	"github.com/wyfcoding/esgcompliance/pkg/logger"
	"github.com/wyfcoding/esgcompliance/pkg/metrics"
)

// Service ESG 合规评估应用服务。
// 编排评分、合规校验、分类转换与报文组装四个用例，领域对象本身保持无副作用。
type Service struct {
	repo      domain.RuleRepository
	scoring   *domain.ESGScoring
	bridge    *domain.ISO20022Bridge
	oracle    domain.OracleProvider
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewService 创建应用服务
func NewService(
	repo domain.RuleRepository,
	scoring *domain.ESGScoring,
	oracle domain.OracleProvider,
	publisher domain.EventPublisher,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:      repo,
		scoring:   scoring,
		bridge:    domain.NewISO20022Bridge(),
		oracle:    oracle,
		publisher: publisher,
		metrics:   m,
	}
}

// CalculateScoreCommand 评分命令
type CalculateScoreCommand struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
	// Unweighted 为 true 时使用等权算术平均，忽略服务配置的权重
	Unweighted bool `json:"unweighted"`
}

// CalculateScore 计算 ESG 评分
func (s *Service) CalculateScore(ctx context.Context, cmd CalculateScoreCommand) domain.ESGScore {
	var score domain.ESGScore
	if cmd.Unweighted {
		score = domain.NewESGScore(cmd.Environmental, cmd.Social, cmd.Governance)
	} else {
		score = s.scoring.Calculate(cmd.Environmental, cmd.Social, cmd.Governance)
	}

	s.metrics.ScoresCalculatedTotal.Inc()
	logger.Debug(ctx, "ESG score calculated",
		"total", score.Total,
		"rating", score.Rating.String(),
	)
	return score
}

// CalculateScoreFromMetricsCommand 原始指标评分命令
type CalculateScoreFromMetricsCommand struct {
	Environmental domain.EnvironmentalMetrics `json:"environmental"`
	Social        domain.SocialMetrics        `json:"social"`
	Governance    domain.GovernanceMetrics    `json:"governance"`
	Unweighted    bool                        `json:"unweighted"`
}

// CalculateScoreFromMetrics 先将三组原始指标归一化为子分，再按权重计算综合评分。
func (s *Service) CalculateScoreFromMetrics(ctx context.Context, cmd CalculateScoreFromMetricsCommand) domain.ESGScore {
	return s.CalculateScore(ctx, CalculateScoreCommand{
		Environmental: cmd.Environmental.Score(),
		Social:        cmd.Social.Score(),
		Governance:    cmd.Governance.Score(),
		Unweighted:    cmd.Unweighted,
	})
}

// RegisterRuleCommand 规则登记命令
type RegisterRuleCommand struct {
	ID                string     `json:"id"`
	Framework         string     `json:"framework"`
	Jurisdiction      string     `json:"jurisdiction"`
	Category          string     `json:"category"`
	Severity          string     `json:"severity"`
	Description       string     `json:"description"`
	EffectiveFrom     time.Time  `json:"effective_from"`
	EffectiveUntil    *time.Time `json:"effective_until,omitempty"`
	RequiredESGRating string     `json:"required_esg_rating,omitempty"`
}

// RegisterRule 登记一条合规规则并持久化。规则不可变，无更新或删除用例。
func (s *Service) RegisterRule(ctx context.Context, cmd RegisterRuleCommand) (domain.ComplianceRule, error) {
	if cmd.ID == "" {
		return domain.ComplianceRule{}, fmt.Errorf("rule id is required")
	}

	rule := domain.ComplianceRule{
		ID:                cmd.ID,
		Framework:         domain.RegulatoryFramework(cmd.Framework),
		Jurisdiction:      domain.Jurisdiction(cmd.Jurisdiction),
		Category:          domain.RuleCategory(cmd.Category),
		Severity:          domain.Severity(cmd.Severity),
		Description:       cmd.Description,
		EffectiveFrom:     cmd.EffectiveFrom,
		EffectiveUntil:    cmd.EffectiveUntil,
		RequiredESGRating: cmd.RequiredESGRating,
	}

	if err := s.repo.Save(ctx, rule); err != nil {
		return domain.ComplianceRule{}, fmt.Errorf("failed to save rule: %w", err)
	}

	logger.Info(ctx, "compliance rule registered",
		"rule_id", rule.ID,
		"framework", rule.Framework.Name(),
		"jurisdiction", rule.Jurisdiction.Code(),
	)
	return rule, nil
}

// ListRules 按登记顺序返回全部规则
func (s *Service) ListRules(ctx context.Context) ([]domain.ComplianceRule, error) {
	return s.repo.List(ctx)
}

// ValidateCommand 合规校验命令
type ValidateCommand struct {
	EntityID string               `json:"entity_id"`
	Score    CalculateScoreCommand `json:"score"`
	// Jurisdiction 为空时评估全部规则，否则按辖区预筛选（Global 规则始终适用）
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Framework    string `json:"framework,omitempty"`
	Category     string `json:"category,omitempty"`
}

// ValidationReport 合规校验结果
type ValidationReport struct {
	EntityID      string                    `json:"entity_id"`
	Score         domain.ESGScore           `json:"score"`
	Results       []domain.ComplianceResult `json:"results"`
	OverallStatus domain.ComplianceStatus   `json:"overall_status"`
	CheckedAt     time.Time                 `json:"checked_at"`
}

// ValidateCompliance 执行合规校验：
// 从仓储加载规则集，按命令中的辖区/框架/类别预筛选，再逐条评估并聚合整体状态。
func (s *Service) ValidateCompliance(ctx context.Context, cmd ValidateCommand) (*ValidationReport, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	validator := domain.NewComplianceValidator()
	validator.AddRules(rules)

	if cmd.Jurisdiction != "" || cmd.Framework != "" || cmd.Category != "" {
		jurisdiction := domain.Jurisdiction(cmd.Jurisdiction)
		filtered := validator.ApplicableRules(jurisdiction,
			domain.RegulatoryFramework(cmd.Framework), domain.RuleCategory(cmd.Category))
		validator = domain.NewComplianceValidator()
		validator.AddRules(filtered)
	}

	score := s.CalculateScore(ctx, cmd.Score)
	now := time.Now()
	results := validator.Validate(score, now)
	overall := domain.OverallStatus(results)

	s.metrics.ValidationsTotal.Inc()
	s.metrics.ValidationRuleHistogram.Observe(float64(len(results)))
	if overall == domain.StatusNonCompliant {
		s.metrics.NonCompliantTotal.Inc()
	}

	event := domain.ComplianceValidatedEvent{
		EntityID:      cmd.EntityID,
		OverallStatus: overall,
		RuleCount:     len(results),
		Rating:        score.Rating.String(),
		CheckedAt:     now,
	}
	if err := s.publisher.Publish(ctx, domain.TopicComplianceValidated, cmd.EntityID, event); err != nil {
		// 事件发布失败不阻塞校验结果返回
		logger.Warn(ctx, "failed to publish compliance validated event",
			"entity_id", cmd.EntityID,
			"error", err,
		)
	}

	logger.Info(ctx, "compliance validation completed",
		"entity_id", cmd.EntityID,
		"rules", len(results),
		"overall_status", string(overall),
	)

	return &ValidationReport{
		EntityID:      cmd.EntityID,
		Score:         score,
		Results:       results,
		OverallStatus: overall,
		CheckedAt:     now,
	}, nil
}

// Classify 将 ESG 评分转换为 ISO 20022 分类字段
func (s *Service) Classify(ctx context.Context, cmd CalculateScoreCommand) domain.ESGClassification {
	score := s.CalculateScore(ctx, cmd)
	classification := s.bridge.ESGToISO(score)
	s.metrics.ClassificationsTotal.Inc()
	return classification
}

// BuildTradeMessageCommand SETR 报文组装命令
type BuildTradeMessageCommand struct {
	Instrument domain.FinancialInstrument `json:"instrument"`
	Score      CalculateScoreCommand      `json:"score"`
	Quantity   decimal.Decimal            `json:"quantity"`
	TradeDate  string                     `json:"trade_date"`
}

// BuildTradeMessage 组装携带 ESG 分类的 SETR 报文并发布领域事件
func (s *Service) BuildTradeMessage(ctx context.Context, cmd BuildTradeMessageCommand) (domain.SetrMessage, error) {
	score := s.CalculateScore(ctx, cmd.Score)
	msg := s.bridge.CreateSetrWithESG(cmd.Instrument, score, cmd.Quantity, cmd.TradeDate)
	s.metrics.TradeMessagesTotal.Inc()

	event := domain.TradeMessageCreatedEvent{
		MessageID:   msg.MessageID,
		Instrument:  msg.Instrument.Name,
		SFDRArticle: msg.ESGClassification.SFDRArticle,
		Rating:      msg.ESGClassification.Rating,
		TradeDate:   msg.TradeDate,
		CreatedAt:   time.Now(),
	}
	if err := s.publisher.Publish(ctx, domain.TopicTradeMessageCreated, msg.MessageID, event); err != nil {
		logger.Warn(ctx, "failed to publish trade message event",
			"message_id", msg.MessageID,
			"error", err,
		)
	}

	return msg, nil
}

// FetchESGScore 通过预言机获取实体的 ESG 评分
func (s *Service) FetchESGScore(ctx context.Context, entityID string) (domain.ESGScore, error) {
	request := domain.NewOracleRequest(domain.OracleDataESGScore, entityID)
	s.metrics.OracleRequestsTotal.WithLabelValues(string(request.DataType)).Inc()

	response, err := s.oracle.Request(ctx, request)
	if err != nil {
		return domain.ESGScore{}, fmt.Errorf("oracle request failed: %w", err)
	}
	if response.Data.ESGScore == nil {
		return domain.ESGScore{}, fmt.Errorf("oracle returned no esg score for entity %s", entityID)
	}
	return *response.Data.ESGScore, nil
}
