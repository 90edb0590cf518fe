package domain

import "github.com/shopspring/decimal"

// ISO20022MessageType ISO 20022 报文族。
type ISO20022MessageType string

const (
	MessageTypeSecuritiesTrade   ISO20022MessageType = "SETR"
	MessageTypePaymentInitiation ISO20022MessageType = "PAIN"
	MessageTypeAccountStatement  ISO20022MessageType = "CAMT"
)

// FinancialInstrument 金融工具标识。标识符在本领域内不做格式校验。
type FinancialInstrument struct {
	// 国际证券识别码
	ISIN string `json:"isin,omitempty"`
	// CUSIP 代码
	CUSIP string `json:"cusip,omitempty"`
	// 法人机构识别码
	LEI  string `json:"lei,omitempty"`
	Name string `json:"name"`
}

// NewFinancialInstrument 创建仅含名称的金融工具。
func NewFinancialInstrument(name string) FinancialInstrument {
	return FinancialInstrument{Name: name}
}

// WithISIN 设置 ISIN。
func (i FinancialInstrument) WithISIN(isin string) FinancialInstrument {
	i.ISIN = isin
	return i
}

// WithLEI 设置 LEI。
func (i FinancialInstrument) WithLEI(lei string) FinancialInstrument {
	i.LEI = lei
	return i
}

// ESGClassification ISO 20022 报文中的 ESG 分类字段，纯派生输出。
type ESGClassification struct {
	// EU Taxonomy 对齐百分比（0-100）
	TaxonomyAlignment float64 `json:"taxonomy_alignment"`
	// SFDR 条款分类，取值限定 {6, 8, 9}
	SFDRArticle int `json:"sfdr_article"`
	// 评级代码（AAA..D）
	Rating string `json:"rating"`
	// 碳强度估算（tCO2e / $M 营收）
	CarbonIntensity float64 `json:"carbon_intensity"`
}

// SetrMessage 证券交易（SETR）报文。
type SetrMessage struct {
	MessageID         string              `json:"message_id"`
	Instrument        FinancialInstrument `json:"instrument"`
	ESGClassification *ESGClassification  `json:"esg_classification,omitempty"`
	Quantity          decimal.Decimal     `json:"quantity"`
	TradeDate         string              `json:"trade_date"`
}

// PainMessage 支付发起（PAIN）报文。
type PainMessage struct {
	MessageID string          `json:"message_id"`
	Debtor    string          `json:"debtor"`
	Creditor  string          `json:"creditor"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// CamtMessage 现金管理（CAMT）报文。
type CamtMessage struct {
	MessageID string          `json:"message_id"`
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
}

// ESGPurpose ESG 债券用途分类。
type ESGPurpose string

const (
	PurposeGreenBond                ESGPurpose = "GREEN_BOND"
	PurposeSocialBond               ESGPurpose = "SOCIAL_BOND"
	PurposeSustainabilityBond       ESGPurpose = "SUSTAINABILITY_BOND"
	PurposeSustainabilityLinkedBond ESGPurpose = "SUSTAINABILITY_LINKED_BOND"
	PurposeTransitionBond           ESGPurpose = "TRANSITION_BOND"
	PurposeOther                    ESGPurpose = "OTHER"
)

// ISOCode 返回 ISO 20022 用途代码。
func (p ESGPurpose) ISOCode() string {
	switch p {
	case PurposeGreenBond:
		return "GRBN"
	case PurposeSocialBond:
		return "SOCB"
	case PurposeSustainabilityBond:
		return "SUSB"
	case PurposeSustainabilityLinkedBond:
		return "SUSL"
	case PurposeTransitionBond:
		return "TRBN"
	default:
		return "OTHR"
	}
}
