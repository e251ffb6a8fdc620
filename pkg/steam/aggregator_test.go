package steam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpaw/steampet/pkg/domain"
)

func TestAggregator_BarrierClosesAfterEveryAccount(t *testing.T) {
	agg := &Aggregator{}
	agg.Begin([]string{"a", "b", "c"}, "a")
	require.True(t, agg.Open())
	assert.Equal(t, "a", agg.Primary())

	games := &domain.GamesPayload{Count: 1, AllGames: []domain.Game{{AppID: 10, Name: "Ten"}}}
	assert.False(t, agg.AddResult("a", games, nil), "first of three must not close")
	assert.False(t, agg.MarkError(), "second of three must not close")
	assert.True(t, agg.AddResult("c", games, nil), "last decrement closes the barrier")

	accounts := agg.Finalize()
	assert.Len(t, accounts, 2, "errored account contributes no payload")
	assert.Contains(t, accounts, "a")
	assert.Contains(t, accounts, "c")
	assert.False(t, agg.Open(), "finalize clears the round")
}

func TestAggregator_SingleAccount(t *testing.T) {
	agg := &Aggregator{}
	agg.Begin([]string{"solo"}, "solo")

	games := &domain.GamesPayload{Count: 1, AllGames: []domain.Game{{AppID: 20, Name: "Twenty"}}}
	summary := &domain.PlayerSummary{SteamID: "solo", PersonaName: "player"}
	require.True(t, agg.AddResult("solo", games, summary))

	accounts := agg.Finalize()
	require.Len(t, accounts, 1)
	assert.Equal(t, summary, accounts["solo"].Summary)
	assert.Equal(t, games, accounts["solo"].Games)
}

func TestAggregator_ResultsOutsideRoundIgnored(t *testing.T) {
	agg := &Aggregator{}

	games := &domain.GamesPayload{Count: 1, AllGames: []domain.Game{{AppID: 30}}}
	assert.False(t, agg.AddResult("stray", games, nil), "no round open, nothing closes")
	assert.False(t, agg.MarkError())
	assert.Empty(t, agg.Finalize())
}

func TestAggregator_FinalizeDropsEmptyPayloads(t *testing.T) {
	agg := &Aggregator{}
	agg.Begin([]string{"a", "b"}, "a")

	assert.False(t, agg.AddResult("a", &domain.GamesPayload{}, nil))
	assert.True(t, agg.AddResult("b", nil, nil))

	assert.Empty(t, agg.Finalize(), "accounts without games never enter the map")
}

func TestAggregator_AllErrors(t *testing.T) {
	agg := &Aggregator{}
	agg.Begin([]string{"a", "b"}, "a")

	assert.False(t, agg.MarkError())
	assert.True(t, agg.MarkError(), "errors alone still close the barrier")
	assert.Empty(t, agg.Finalize())
}
