package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-recommender/internal/recommend/model"
)

func TestRanker_Recommend(t *testing.T) {
	r := NewRanker(nil, 1)
	cfg := audiConfig()
	cfg.Color = model.Str("  ")

	res := r.Recommend(sampleCatalog(), cfg, 2, true)

	require.Len(t, res.Results, 2)
	assert.Equal(t, 5, res.CatalogSize)
	assert.Equal(t, 2, res.TopN)
	assert.InDelta(t, 1.10, res.MaxScore, eps)
	assert.Nil(t, res.Config.Color, "blank preference is normalized away")

	top := res.Results[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, 3, top.Vehicle.Row)
	assert.InDelta(t, 0.60, top.Score, eps)
	assert.InDelta(t, 0.40, top.Breakdown[model.AttrBrand], eps)
	assert.Equal(t, 2, res.Results[1].Rank)
}

func TestRanker_RecommendWithoutExplain(t *testing.T) {
	res := NewRanker(DefaultWeights(), 1).Recommend(sampleCatalog(), audiConfig(), 0, false)
	assert.Equal(t, DefaultTopN, res.TopN)
	require.Len(t, res.Results, 5)
	for _, r := range res.Results {
		assert.Nil(t, r.Breakdown)
	}
}
