package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
	"github.com/wyfcoding/esgcompliance/pkg/metrics"
)

type memoryRuleRepository struct {
	rules   []domain.ComplianceRule
	saveErr error
}

func (r *memoryRuleRepository) Save(ctx context.Context, rule domain.ComplianceRule) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *memoryRuleRepository) List(ctx context.Context) ([]domain.ComplianceRule, error) {
	out := make([]domain.ComplianceRule, len(r.rules))
	copy(out, r.rules)
	return out, nil
}

func (r *memoryRuleRepository) ListByJurisdiction(ctx context.Context, jurisdiction domain.Jurisdiction) ([]domain.ComplianceRule, error) {
	out := make([]domain.ComplianceRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.AppliesTo(jurisdiction) {
			out = append(out, rule)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	topics []string
	keys   []string
	events []any
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.events = append(p.events, event)
	return nil
}

func newTestService(t *testing.T, repo domain.RuleRepository, publisher domain.EventPublisher) *Service {
	t.Helper()
	return NewService(repo, domain.NewESGScoring(), domain.NewStaticOracleProvider(), publisher, metrics.New("test"))
}

func TestService_CalculateScore(t *testing.T) {
	svc := newTestService(t, &memoryRuleRepository{}, &recordingPublisher{})

	t.Run("weighted by service configuration", func(t *testing.T) {
		score := svc.CalculateScore(context.Background(), CalculateScoreCommand{
			Environmental: 85, Social: 80, Governance: 75,
		})
		assert.InDelta(t, 80.0, score.Total, 1e-9)
		assert.Equal(t, domain.RatingA, score.Rating)
	})

	t.Run("unweighted forces arithmetic mean", func(t *testing.T) {
		score := svc.CalculateScore(context.Background(), CalculateScoreCommand{
			Environmental: 90, Social: 90, Governance: 90, Unweighted: true,
		})
		assert.InDelta(t, 90.0, score.Total, 1e-9)
		assert.Equal(t, domain.RatingAAA, score.Rating)
	})
}

func TestService_CalculateScoreFromMetrics(t *testing.T) {
	svc := newTestService(t, &memoryRuleRepository{}, &recordingPublisher{})

	score := svc.CalculateScoreFromMetrics(context.Background(), CalculateScoreFromMetricsCommand{
		Environmental: domain.EnvironmentalMetrics{
			CarbonFootprint: 0, RenewableEnergyPct: 100, WaterUsage: 0, WasteReductionPct: 100,
		},
		Social: domain.SocialMetrics{
			LaborStandardsScore: 100, CommunityInvestment: 1000000, DiversityIndex: 1.0,
		},
		Governance: domain.GovernanceMetrics{
			BoardIndependencePct: 90, TransparencyScore: 80, AntiCorruptionScore: 70,
		},
	})

	assert.InDelta(t, 100.0, score.Environmental, 1e-9)
	assert.InDelta(t, 100.0, score.Social, 1e-9)
	assert.InDelta(t, 80.0, score.Governance, 1e-9)
	assert.InDelta(t, (100.0+100.0+80.0)/3.0, score.Total, 1e-9)
	assert.Equal(t, domain.RatingAAA, score.Rating)
}

func TestService_RegisterRule(t *testing.T) {
	repo := &memoryRuleRepository{}
	svc := newTestService(t, repo, &recordingPublisher{})

	t.Run("persists the rule", func(t *testing.T) {
		rule, err := svc.RegisterRule(context.Background(), RegisterRuleCommand{
			ID:                "SFDR-001",
			Framework:         "EU_SFDR",
			Jurisdiction:      "EU",
			Category:          "ESG_DISCLOSURE",
			Severity:          "HIGH",
			EffectiveFrom:     time.Now().Add(-time.Hour),
			RequiredESGRating: "BBB",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.FrameworkEUSFDR, rule.Framework)
		assert.Len(t, repo.rules, 1)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		_, err := svc.RegisterRule(context.Background(), RegisterRuleCommand{})
		assert.Error(t, err)
		assert.Len(t, repo.rules, 1)
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		failing := &memoryRuleRepository{saveErr: errors.New("db down")}
		failingSvc := newTestService(t, failing, &recordingPublisher{})
		_, err := failingSvc.RegisterRule(context.Background(), RegisterRuleCommand{ID: "X-1"})
		assert.ErrorContains(t, err, "failed to save rule")
	})
}

func TestService_ValidateCompliance(t *testing.T) {
	repo := &memoryRuleRepository{rules: []domain.ComplianceRule{
		{
			ID:                "SFDR-001",
			Framework:         domain.FrameworkEUSFDR,
			Jurisdiction:      domain.JurisdictionEU,
			Category:          domain.CategoryESGDisclosure,
			EffectiveFrom:     time.Now().Add(-time.Hour),
			RequiredESGRating: "BBB",
		},
		{
			ID:                "SEC-001",
			Framework:         domain.FrameworkSECClimate,
			Jurisdiction:      domain.JurisdictionUS,
			Category:          domain.CategoryReporting,
			EffectiveFrom:     time.Now().Add(-time.Hour),
			RequiredESGRating: "AAA",
		},
	}}
	publisher := &recordingPublisher{}
	svc := newTestService(t, repo, publisher)

	t.Run("evaluates all rules without filter", func(t *testing.T) {
		report, err := svc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID: "entity-1",
			Score:    CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 2)
		assert.Equal(t, domain.StatusCompliant, report.Results[0].Status)
		assert.Equal(t, domain.StatusNonCompliant, report.Results[1].Status)
		assert.Equal(t, domain.StatusNonCompliant, report.OverallStatus)
	})

	t.Run("jurisdiction filter narrows the rule set", func(t *testing.T) {
		report, err := svc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID:     "entity-1",
			Score:        CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
			Jurisdiction: "EU",
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, "SFDR-001", report.Results[0].RuleID)
		assert.Equal(t, domain.StatusCompliant, report.OverallStatus)
	})

	t.Run("framework-only filter keeps jurisdiction-specific rules", func(t *testing.T) {
		report, err := svc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID:  "entity-1",
			Score:     CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
			Framework: "EU_SFDR",
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, "SFDR-001", report.Results[0].RuleID)
		assert.Equal(t, domain.StatusCompliant, report.OverallStatus)
	})

	t.Run("category-only filter keeps jurisdiction-specific rules", func(t *testing.T) {
		report, err := svc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID: "entity-1",
			Score:    CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
			Category: "REPORTING",
		})
		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, "SEC-001", report.Results[0].RuleID)
		assert.Equal(t, domain.StatusNonCompliant, report.OverallStatus)
	})

	t.Run("publishes validation event keyed by entity", func(t *testing.T) {
		publisher.topics = nil
		publisher.keys = nil
		publisher.events = nil

		_, err := svc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID: "entity-9",
			Score:    CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
		})
		require.NoError(t, err)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, domain.TopicComplianceValidated, publisher.topics[0])
		assert.Equal(t, "entity-9", publisher.keys[0])

		event, ok := publisher.events[0].(domain.ComplianceValidatedEvent)
		require.True(t, ok)
		assert.Equal(t, 2, event.RuleCount)
	})

	t.Run("publish failure does not fail the validation", func(t *testing.T) {
		failingSvc := newTestService(t, repo, &recordingPublisher{err: errors.New("broker unreachable")})
		report, err := failingSvc.ValidateCompliance(context.Background(), ValidateCommand{
			EntityID: "entity-1",
			Score:    CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
		})
		require.NoError(t, err)
		assert.NotNil(t, report)
	})
}

func TestService_Classify(t *testing.T) {
	svc := newTestService(t, &memoryRuleRepository{}, &recordingPublisher{})

	classification := svc.Classify(context.Background(), CalculateScoreCommand{
		Environmental: 88, Social: 85, Governance: 82,
	})

	assert.Equal(t, "AA", classification.Rating)
	assert.Equal(t, 9, classification.SFDRArticle)
	assert.InDelta(t, 88.0, classification.TaxonomyAlignment, 1e-9)
}

func TestService_BuildTradeMessage(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestService(t, &memoryRuleRepository{}, publisher)

	msg, err := svc.BuildTradeMessage(context.Background(), BuildTradeMessageCommand{
		Instrument: domain.NewFinancialInstrument("Green Fund").WithISIN("DE000A0X7541"),
		Score:      CalculateScoreCommand{Environmental: 85, Social: 80, Governance: 75},
		Quantity:   decimal.NewFromInt(500),
		TradeDate:  "2026-08-31",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.MessageID)
	require.NotNil(t, msg.ESGClassification)
	assert.Equal(t, "A", msg.ESGClassification.Rating)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, domain.TopicTradeMessageCreated, publisher.topics[0])
	assert.Equal(t, msg.MessageID, publisher.keys[0])
}

type contextCapturingOracle struct {
	inner domain.OracleProvider
	ctx   context.Context
}

func (o *contextCapturingOracle) Request(ctx context.Context, request domain.OracleRequest) (domain.OracleResponse, error) {
	o.ctx = ctx
	return o.inner.Request(ctx, request)
}

func (o *contextCapturingOracle) Supports(dataType domain.OracleDataType) bool {
	return o.inner.Supports(dataType)
}

func TestService_FetchESGScore(t *testing.T) {
	svc := newTestService(t, &memoryRuleRepository{}, &recordingPublisher{})

	score, err := svc.FetchESGScore(context.Background(), "entity-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RatingBBB, score.Rating)
}

func TestService_FetchESGScore_PropagatesContext(t *testing.T) {
	oracle := &contextCapturingOracle{inner: domain.NewStaticOracleProvider()}
	svc := NewService(&memoryRuleRepository{}, domain.NewESGScoring(), oracle, &recordingPublisher{}, metrics.New("test"))

	type ctxKey string
	ctx := context.WithValue(context.Background(), ctxKey("request-marker"), "set")

	_, err := svc.FetchESGScore(ctx, "entity-1")
	require.NoError(t, err)
	require.NotNil(t, oracle.ctx)
	assert.Equal(t, "set", oracle.ctx.Value(ctxKey("request-marker")))
}
