// Package domain ESG 合规评估领域模型
package domain

import (
	"encoding/json"
	"fmt"
)

// ESGRating ESG 评级等级，从 D（最低）到 AAA（最高）。
// 数值顺序是业务语义的一部分：合规检查和投资级判断都是在这个全序上做阈值比较。
type ESGRating int

const (
	RatingD ESGRating = iota
	RatingC
	RatingCC
	RatingCCC
	RatingB
	RatingBB
	RatingBBB
	RatingA
	RatingAA
	RatingAAA
)

// RatingFromScore 将综合评分（0-100）映射为评级。
// 每个区间下界含等号，超出 0-100 的输入落入两端的评级。
func RatingFromScore(score float64) ESGRating {
	switch {
	case score >= 90.0:
		return RatingAAA
	case score >= 85.0:
		return RatingAA
	case score >= 80.0:
		return RatingA
	case score >= 70.0:
		return RatingBBB
	case score >= 60.0:
		return RatingBB
	case score >= 50.0:
		return RatingB
	case score >= 40.0:
		return RatingCCC
	case score >= 30.0:
		return RatingCC
	case score >= 20.0:
		return RatingC
	default:
		return RatingD
	}
}

// ParseESGRating 将评级字符串解析为 ESGRating，未知字符串回退为 D。
func ParseESGRating(s string) ESGRating {
	switch s {
	case "AAA":
		return RatingAAA
	case "AA":
		return RatingAA
	case "A":
		return RatingA
	case "BBB":
		return RatingBBB
	case "BB":
		return RatingBB
	case "B":
		return RatingB
	case "CCC":
		return RatingCCC
	case "CC":
		return RatingCC
	case "C":
		return RatingC
	default:
		return RatingD
	}
}

func (r ESGRating) String() string {
	switch r {
	case RatingAAA:
		return "AAA"
	case RatingAA:
		return "AA"
	case RatingA:
		return "A"
	case RatingBBB:
		return "BBB"
	case RatingBB:
		return "BB"
	case RatingB:
		return "B"
	case RatingCCC:
		return "CCC"
	case RatingCC:
		return "CC"
	case RatingC:
		return "C"
	default:
		return "D"
	}
}

// IsInvestmentGrade 投资级判断：BBB 及以上。
func (r ESGRating) IsInvestmentGrade() bool {
	return r >= RatingBBB
}

// MarshalJSON 对外始终以评级代码（"AAA".."D"）表示。
func (r ESGRating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ESGRating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("esg rating must be a string: %w", err)
	}
	*r = ParseESGRating(s)
	return nil
}
