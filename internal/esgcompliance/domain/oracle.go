package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnsupportedDataType 预言机不支持请求的数据类型。
var ErrUnsupportedDataType = errors.New("unsupported oracle data type")

// OracleDataType 可向预言机请求的数据类型。
type OracleDataType string

const (
	OracleDataESGScore         OracleDataType = "ESG_SCORE"
	OracleDataCarbonEmissions  OracleDataType = "CARBON_EMISSIONS"
	OracleDataRegulatoryStatus OracleDataType = "REGULATORY_STATUS"
	OracleDataSanctionsCheck   OracleDataType = "SANCTIONS_CHECK"
	OracleDataCreditRating     OracleDataType = "CREDIT_RATING"
)

// OracleRequest 预言机请求。
type OracleRequest struct {
	ID          string         `json:"id"`
	DataType    OracleDataType `json:"data_type"`
	EntityID    string         `json:"entity_id"`
	RequestedAt time.Time      `json:"requested_at"`
}

// NewOracleRequest 创建请求，id 与时间戳自动生成。
func NewOracleRequest(dataType OracleDataType, entityID string) OracleRequest {
	return OracleRequest{
		ID:          uuid.New().String(),
		DataType:    dataType,
		EntityID:    entityID,
		RequestedAt: time.Now(),
	}
}

// OracleData 预言机返回的数据载荷，按 DataType 填充对应字段。
type OracleData struct {
	ESGScore         *ESGScore `json:"esg_score,omitempty"`
	CarbonEmissions  *float64  `json:"carbon_emissions,omitempty"`
	RegulatoryStatus *bool     `json:"regulatory_status,omitempty"`
	SanctionsCheck   *bool     `json:"sanctions_check,omitempty"`
	CreditRating     string    `json:"credit_rating,omitempty"`
}

// OracleResponse 预言机响应。本领域不校验签名，仅透传。
type OracleResponse struct {
	RequestID string     `json:"request_id"`
	Data      OracleData `json:"data"`
	Timestamp time.Time  `json:"timestamp"`
	Signature string     `json:"signature,omitempty"`
}

// NewOracleResponse 创建响应，时间戳取当前时刻。
func NewOracleResponse(requestID string, data OracleData) OracleResponse {
	return OracleResponse{
		RequestID: requestID,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// OracleProvider 外部数据预言机接口。
// 实现方负责数据来源与真实性，本领域不重试、不验证；
// ctx 承载调用方的取消与 trace 信息。
type OracleProvider interface {
	Request(ctx context.Context, request OracleRequest) (OracleResponse, error)
	Supports(dataType OracleDataType) bool
}

// StaticOracleProvider 返回固定数据的预言机实现，用于测试与本地联调。
type StaticOracleProvider struct {
	esgScore *ESGScore
}

// NewStaticOracleProvider 创建静态预言机。
func NewStaticOracleProvider() *StaticOracleProvider {
	return &StaticOracleProvider{}
}

// WithESGScore 设置返回的 ESG 评分。
func (p *StaticOracleProvider) WithESGScore(score ESGScore) *StaticOracleProvider {
	p.esgScore = &score
	return p
}

// Request 按数据类型返回内置数据。
func (p *StaticOracleProvider) Request(ctx context.Context, request OracleRequest) (OracleResponse, error) {
	var data OracleData
	switch request.DataType {
	case OracleDataESGScore:
		score := NewESGScore(80.0, 75.0, 70.0)
		if p.esgScore != nil {
			score = *p.esgScore
		}
		data.ESGScore = &score
	case OracleDataCarbonEmissions:
		emissions := 1000.0
		data.CarbonEmissions = &emissions
	case OracleDataRegulatoryStatus:
		ok := true
		data.RegulatoryStatus = &ok
	case OracleDataSanctionsCheck:
		flagged := false
		data.SanctionsCheck = &flagged
	case OracleDataCreditRating:
		data.CreditRating = "A"
	default:
		return OracleResponse{}, ErrUnsupportedDataType
	}

	return NewOracleResponse(request.ID, data), nil
}

// Supports 静态预言机支持全部已知数据类型。
func (p *StaticOracleProvider) Supports(dataType OracleDataType) bool {
	switch dataType {
	case OracleDataESGScore, OracleDataCarbonEmissions, OracleDataRegulatoryStatus,
		OracleDataSanctionsCheck, OracleDataCreditRating:
		return true
	default:
		return false
	}
}
