package domain

// ESGCategory ESG 三大支柱分类。
type ESGCategory string

const (
	CategoryEnvironmental ESGCategory = "ENVIRONMENTAL"
	CategorySocial        ESGCategory = "SOCIAL"
	CategoryGovernance    ESGCategory = "GOVERNANCE"
)

// Code 返回支柱单字母代码。
func (c ESGCategory) Code() string {
	switch c {
	case CategoryEnvironmental:
		return "E"
	case CategorySocial:
		return "S"
	case CategoryGovernance:
		return "G"
	default:
		return ""
	}
}

// 原始指标归一化基线。达到或超过基线的消耗类指标记 0 分。
const (
	carbonFootprintBaseline     = 10000.0  // 吨 CO2e
	waterUsageBaseline          = 100000.0 // 立方米
	communityInvestmentBaseline = 1000000.0
)

// EnvironmentalMetrics 环境维度原始指标。
type EnvironmentalMetrics struct {
	// 碳足迹（吨 CO2e）
	CarbonFootprint float64 `json:"carbon_footprint"`
	// 可再生能源占比（0-100）
	RenewableEnergyPct float64 `json:"renewable_energy_pct"`
	// 用水量（立方米）
	WaterUsage float64 `json:"water_usage"`
	// 相对基线的减废百分比（0-100）
	WasteReductionPct float64 `json:"waste_reduction_pct"`
}

// Score 将原始环境指标归一化为 0-100 的环境分，四项等权。
// 消耗类指标（碳足迹、用水量）相对基线取反比。
func (m EnvironmentalMetrics) Score() float64 {
	carbon := 100.0 * (1.0 - clampRatio(m.CarbonFootprint/carbonFootprintBaseline))
	water := 100.0 * (1.0 - clampRatio(m.WaterUsage/waterUsageBaseline))
	return clampScore((carbon + m.RenewableEnergyPct + water + m.WasteReductionPct) / 4.0)
}

// SocialMetrics 社会维度原始指标。
type SocialMetrics struct {
	// 劳工标准评分（0-100）
	LaborStandardsScore float64 `json:"labor_standards_score"`
	// 社区投入金额
	CommunityInvestment float64 `json:"community_investment"`
	// 多元化指数（0-1）
	DiversityIndex float64 `json:"diversity_index"`
}

// Score 将原始社会指标归一化为 0-100 的社会分，三项等权。
func (m SocialMetrics) Score() float64 {
	investment := 100.0 * clampRatio(m.CommunityInvestment/communityInvestmentBaseline)
	diversity := 100.0 * clampRatio(m.DiversityIndex)
	return clampScore((m.LaborStandardsScore + investment + diversity) / 3.0)
}

// GovernanceMetrics 治理维度原始指标，三项均为 0-100 评分。
type GovernanceMetrics struct {
	BoardIndependencePct float64 `json:"board_independence_pct"`
	TransparencyScore    float64 `json:"transparency_score"`
	AntiCorruptionScore  float64 `json:"anti_corruption_score"`
}

// Score 治理分为三项评分的算术平均。
func (m GovernanceMetrics) Score() float64 {
	return clampScore((m.BoardIndependencePct + m.TransparencyScore + m.AntiCorruptionScore) / 3.0)
}

func clampRatio(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
