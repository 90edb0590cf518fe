package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ISO20022Bridge 将 ESG 评估结果翻译为 ISO 20022 报文分类字段。
// 无状态，可安全并发使用。
type ISO20022Bridge struct{}

// NewISO20022Bridge 创建桥接器。
func NewISO20022Bridge() *ISO20022Bridge {
	return &ISO20022Bridge{}
}

// ESGToISO 将 ESG 评分转换为 ISO 20022 ESG 分类字段。
func (b *ISO20022Bridge) ESGToISO(esgScore ESGScore) ESGClassification {
	return ESGClassification{
		TaxonomyAlignment: b.taxonomyAlignment(esgScore),
		SFDRArticle:       b.sfdrArticle(esgScore),
		Rating:            esgScore.Rating.String(),
		CarbonIntensity:   b.estimateCarbonIntensity(esgScore),
	}
}

// taxonomyAlignment 基于环境分的分段对齐度。
// 60 以下为 0；[60, 80) 线性爬坡 (env-60)*2；80 及以上直接取环境分（上限 100）。
// 80 处的跳变（40 -> 80）是既定口径，不做平滑。
func (b *ISO20022Bridge) taxonomyAlignment(esgScore ESGScore) float64 {
	env := esgScore.Environmental
	switch {
	case env >= 80.0:
		if env > 100.0 {
			return 100.0
		}
		return env
	case env >= 60.0:
		return (env - 60.0) * 2.0
	default:
		return 0.0
	}
}

// sfdrArticle SFDR 条款分类：AAA/AA -> 9，A/BBB -> 8，其余 -> 6。
// 只看综合评级，不直接看环境分。
func (b *ISO20022Bridge) sfdrArticle(esgScore ESGScore) int {
	switch esgScore.Rating {
	case RatingAAA, RatingAA:
		return 9 // Article 9: 可持续投资目标
	case RatingA, RatingBBB:
		return 8 // Article 8: 推广 ESG 特征
	default:
		return 6 // Article 6: 无可持续性目标
	}
}

// estimateCarbonIntensity 碳强度估算：环境分越高强度越低的线性反比代理。
func (b *ISO20022Bridge) estimateCarbonIntensity(esgScore ESGScore) float64 {
	const maxIntensity = 500.0
	return maxIntensity * (1.0 - esgScore.Environmental/100.0)
}

// ComplianceToISO 将合规结果投影为已合规规则的 id 列表。
// 注意这是一个收窄：PARTIALLY_COMPLIANT / PENDING 的规则 id 会被丢弃，
// 下游若需要这部分可见性，应在确认口径后另行扩展，而不是在此放宽过滤。
func (b *ISO20022Bridge) ComplianceToISO(results []ComplianceResult) []string {
	ids := make([]string, 0, len(results))
	for _, result := range results {
		if result.Status == StatusCompliant {
			ids = append(ids, result.RuleID)
		}
	}
	return ids
}

// CreateSetrWithESG 组装携带 ESG 分类的 SETR 报文。
// 报文 id 为新生成的不透明标识；交易日期字符串原样透传，不做格式校验。
func (b *ISO20022Bridge) CreateSetrWithESG(instrument FinancialInstrument, esgScore ESGScore, quantity decimal.Decimal, tradeDate string) SetrMessage {
	classification := b.ESGToISO(esgScore)
	return SetrMessage{
		MessageID:         uuid.New().String(),
		Instrument:        instrument,
		ESGClassification: &classification,
		Quantity:          quantity,
		TradeDate:         tradeDate,
	}
}
