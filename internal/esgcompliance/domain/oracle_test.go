package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOracleRequest(t *testing.T) {
	request := NewOracleRequest(OracleDataESGScore, "entity-1")

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, OracleDataESGScore, request.DataType)
	assert.Equal(t, "entity-1", request.EntityID)
	assert.False(t, request.RequestedAt.IsZero())
}

func TestStaticOracleProvider_Request(t *testing.T) {
	ctx := context.Background()
	provider := NewStaticOracleProvider()

	t.Run("default esg score", func(t *testing.T) {
		request := NewOracleRequest(OracleDataESGScore, "entity-1")
		response, err := provider.Request(ctx, request)
		require.NoError(t, err)

		assert.Equal(t, request.ID, response.RequestID)
		require.NotNil(t, response.Data.ESGScore)
		assert.Equal(t, 80.0, response.Data.ESGScore.Environmental)
		assert.Equal(t, RatingBBB, response.Data.ESGScore.Rating)
	})

	t.Run("configured esg score overrides default", func(t *testing.T) {
		custom := NewStaticOracleProvider().WithESGScore(NewESGScore(95, 92, 90))
		response, err := custom.Request(ctx, NewOracleRequest(OracleDataESGScore, "entity-2"))
		require.NoError(t, err)

		require.NotNil(t, response.Data.ESGScore)
		assert.Equal(t, RatingAAA, response.Data.ESGScore.Rating)
	})

	t.Run("carbon emissions", func(t *testing.T) {
		response, err := provider.Request(ctx, NewOracleRequest(OracleDataCarbonEmissions, "entity-1"))
		require.NoError(t, err)
		require.NotNil(t, response.Data.CarbonEmissions)
		assert.Equal(t, 1000.0, *response.Data.CarbonEmissions)
	})

	t.Run("sanctions check", func(t *testing.T) {
		response, err := provider.Request(ctx, NewOracleRequest(OracleDataSanctionsCheck, "entity-1"))
		require.NoError(t, err)
		require.NotNil(t, response.Data.SanctionsCheck)
		assert.False(t, *response.Data.SanctionsCheck)
	})

	t.Run("unknown data type", func(t *testing.T) {
		_, err := provider.Request(ctx, NewOracleRequest(OracleDataType("WEATHER"), "entity-1"))
		assert.ErrorIs(t, err, ErrUnsupportedDataType)
	})
}

func TestStaticOracleProvider_Supports(t *testing.T) {
	provider := NewStaticOracleProvider()

	supported := []OracleDataType{
		OracleDataESGScore, OracleDataCarbonEmissions, OracleDataRegulatoryStatus,
		OracleDataSanctionsCheck, OracleDataCreditRating,
	}
	for _, dataType := range supported {
		assert.True(t, provider.Supports(dataType), "%s should be supported", dataType)
	}

	assert.False(t, provider.Supports(OracleDataType("WEATHER")))
}
