// Package oracle 预言机基础设施：带 Redis 读穿缓存的装饰器
package oracle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/esgcompliance/internal/esgcompliance/domain"
	"github.com/wyfcoding/esgcompliance/pkg/cache"
	"github.com/wyfcoding/esgcompliance/pkg/logger"
)

// CachedProvider 对任意 OracleProvider 做读穿缓存。
// 只缓存 ESG 评分：其余数据类型（监管状态、制裁名单等）时效性要求高，始终直连。
type CachedProvider struct {
	inner domain.OracleProvider
	cache *cache.RedisCache
	ttl   time.Duration
}

// NewCachedProvider 创建缓存装饰器
func NewCachedProvider(inner domain.OracleProvider, redisCache *cache.RedisCache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: redisCache,
		ttl:   ttl,
	}
}

func (p *CachedProvider) cacheKey(entityID string) string {
	return fmt.Sprintf("esg:oracle:score:%s", entityID)
}

// Request 先查缓存，未命中则透传并回填
func (p *CachedProvider) Request(ctx context.Context, request domain.OracleRequest) (domain.OracleResponse, error) {
	if request.DataType != domain.OracleDataESGScore {
		return p.inner.Request(ctx, request)
	}

	key := p.cacheKey(request.EntityID)

	var cached domain.ESGScore
	err := p.cache.Get(ctx, key, &cached)
	if err == nil {
		return domain.NewOracleResponse(request.ID, domain.OracleData{ESGScore: &cached}), nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// 缓存故障降级为直连，不影响请求
		logger.Warn(ctx, "oracle cache read failed", "entity_id", request.EntityID, "error", err)
	}

	response, err := p.inner.Request(ctx, request)
	if err != nil {
		return domain.OracleResponse{}, err
	}

	if response.Data.ESGScore != nil {
		if err := p.cache.Set(ctx, key, *response.Data.ESGScore, p.ttl); err != nil {
			logger.Warn(ctx, "oracle cache write failed", "entity_id", request.EntityID, "error", err)
		}
	}
	return response, nil
}

// Supports 透传内层实现
func (p *CachedProvider) Supports(dataType domain.OracleDataType) bool {
	return p.inner.Supports(dataType)
}
