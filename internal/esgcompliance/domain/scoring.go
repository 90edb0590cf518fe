package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidWeights 权重配置非法：存在负权重或权重之和不大于 0。
var ErrInvalidWeights = errors.New("invalid scoring weights")

// ESGScore ESG 评分明细。构造后不可变，Total 与 Rating 为派生值。
type ESGScore struct {
	Environmental float64   `json:"environmental"`
	Social        float64   `json:"social"`
	Governance    float64   `json:"governance"`
	Total         float64   `json:"total"`
	Rating        ESGRating `json:"rating"`
}

// NewESGScore 等权构造：总分为三个子分的算术平均。
// 子分约定范围 0-100 但不做校验，越界输入照常计算。
func NewESGScore(environmental, social, governance float64) ESGScore {
	total := (environmental + social + governance) / 3.0
	return ESGScore{
		Environmental: environmental,
		Social:        social,
		Governance:    governance,
		Total:         total,
		Rating:        RatingFromScore(total),
	}
}

// IsInvestmentGrade 评分是否达到投资级（BBB 及以上）。
func (s ESGScore) IsInvestmentGrade() bool {
	return s.Rating.IsInvestmentGrade()
}

// ScoringWeights 归一化后的评分权重，和为 1。只能通过 NewScoringWeights 构造。
type ScoringWeights struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
}

// NewScoringWeights 校验并归一化权重。
// 构造期是唯一的失败点：负权重或权重和 <= 0 返回 ErrInvalidWeights，
// 之后的计算是纯加权求和，不再有失败路径。
func NewScoringWeights(environmental, social, governance float64) (ScoringWeights, error) {
	if environmental < 0 || social < 0 || governance < 0 {
		return ScoringWeights{}, fmt.Errorf("%w: weights must be non-negative", ErrInvalidWeights)
	}

	sum := environmental + social + governance
	if sum <= 0 {
		return ScoringWeights{}, fmt.Errorf("%w: weights must sum to > 0", ErrInvalidWeights)
	}

	return ScoringWeights{
		Environmental: environmental / sum,
		Social:        social / sum,
		Governance:    governance / sum,
	}, nil
}

// EqualWeights 三个维度等权（各 1/3）。
func EqualWeights() ScoringWeights {
	return ScoringWeights{
		Environmental: 1.0 / 3.0,
		Social:        1.0 / 3.0,
		Governance:    1.0 / 3.0,
	}
}

// ESGScoring ESG 评分计算器。持有的权重不可变，可安全并发调用。
type ESGScoring struct {
	weights ScoringWeights
}

// NewESGScoring 创建等权计算器。
func NewESGScoring() *ESGScoring {
	return &ESGScoring{weights: EqualWeights()}
}

// NewESGScoringWithWeights 创建自定义权重计算器。
func NewESGScoringWithWeights(environmental, social, governance float64) (*ESGScoring, error) {
	weights, err := NewScoringWeights(environmental, social, governance)
	if err != nil {
		return nil, err
	}
	return &ESGScoring{weights: weights}, nil
}

// Weights 返回归一化后的权重。
func (c *ESGScoring) Weights() ScoringWeights {
	return c.weights
}

// Calculate 按配置权重计算综合评分与评级。
func (c *ESGScoring) Calculate(environmental, social, governance float64) ESGScore {
	total := environmental*c.weights.Environmental +
		social*c.weights.Social +
		governance*c.weights.Governance

	return ESGScore{
		Environmental: environmental,
		Social:        social,
		Governance:    governance,
		Total:         total,
		Rating:        RatingFromScore(total),
	}
}
