// Package interfaces ESG 合规服务接口层
package interfaces

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/application"
)

// HTTPHandler HTTP 接口处理器
type HTTPHandler struct {
	service *application.Service
}

// NewHTTPHandler 创建 HTTP 处理器
func NewHTTPHandler(service *application.Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	esg := r.Group("/esg")
	{
		esg.POST("/scores", h.CalculateScore)
		esg.POST("/scores/metrics", h.CalculateScoreFromMetrics)
		esg.POST("/validate", h.ValidateCompliance)
		esg.POST("/classifications", h.Classify)
		esg.POST("/messages/setr", h.BuildTradeMessage)
		esg.POST("/rules", h.RegisterRule)
		esg.GET("/rules", h.ListRules)
		esg.GET("/entities/:entity_id/score", h.FetchESGScore)
	}
}

// CalculateScore 计算 ESG 评分
func (h *HTTPHandler) CalculateScore(c *gin.Context) {
	var cmd application.CalculateScoreCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := h.service.CalculateScore(c.Request.Context(), cmd)
	c.JSON(http.StatusOK, score)
}

// CalculateScoreFromMetrics 从原始指标计算 ESG 评分
func (h *HTTPHandler) CalculateScoreFromMetrics(c *gin.Context) {
	var cmd application.CalculateScoreFromMetricsCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	score := h.service.CalculateScoreFromMetrics(c.Request.Context(), cmd)
	c.JSON(http.StatusOK, score)
}

// ValidateCompliance 执行合规校验
func (h *HTTPHandler) ValidateCompliance(c *gin.Context) {
	var cmd application.ValidateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.service.ValidateCompliance(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Classify ESG 评分转 ISO 20022 分类
func (h *HTTPHandler) Classify(c *gin.Context) {
	var cmd application.CalculateScoreCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classification := h.service.Classify(c.Request.Context(), cmd)
	c.JSON(http.StatusOK, classification)
}

// BuildTradeMessage 组装携带 ESG 分类的 SETR 报文
func (h *HTTPHandler) BuildTradeMessage(c *gin.Context) {
	var cmd application.BuildTradeMessageCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.service.BuildTradeMessage(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// RegisterRule 登记合规规则
func (h *HTTPHandler) RegisterRule(c *gin.Context) {
	var cmd application.RegisterRuleCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.service.RegisterRule(c.Request.Context(), cmd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// ListRules 按登记顺序列出全部规则
func (h *HTTPHandler) ListRules(c *gin.Context) {
	rules, err := h.service.ListRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rules": rules, "total": len(rules)})
}

// FetchESGScore 通过预言机获取实体评分
func (h *HTTPHandler) FetchESGScore(c *gin.Context) {
	entityID := c.Param("entity_id")
	if entityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity_id is required"})
		return
	}

	score, err := h.service.FetchESGScore(c.Request.Context(), entityID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, score)
}
