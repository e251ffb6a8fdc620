package steam

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// Processor turns one completed task into an ordered sequence of effect
// steps. It mutates the cache it is handed but never persists or emits
// anything itself; saves are observability for the facade, not state.
type Processor struct{}

// Process consumes one task result against the cache and the barrier
// aggregator, returning the steps the facade must apply in order.
func (p *Processor) Process(res TaskResult, cache *domain.SteamCache, agg *Aggregator) []Step {
	if res.Err != nil {
		var steps []Step
		if res.Type == TaskGames || res.Type == TaskProfileAndGames {
			if agg.MarkError() {
				steps = append(steps, p.finalize(cache, agg)...)
			}
		}
		// errors never carry a trailing save step
		return append(steps, EmitError{Message: res.Err.Error()})
	}

	if res.Data == nil {
		return nil
	}

	switch res.Type {
	case TaskSummary:
		summary, ok := res.Data.(*domain.PlayerSummary)
		if !ok {
			return nil
		}
		cache.Summary = summary
		return []Step{EmitPlayerSummary{Summary: summary}, SaveStep{Reason: "after_task"}}

	case TaskProfileAndGames:
		payload, ok := res.Data.(*ProfileAndGames)
		if !ok {
			return nil
		}
		if agg.AddResult(res.SteamID, payload.Games, payload.Summary) {
			return p.finalize(cache, agg)
		}
		return nil

	case TaskGames:
		games, ok := res.Data.(*domain.GamesPayload)
		if !ok {
			return nil
		}
		if agg.AddResult(res.SteamID, games, nil) {
			return p.finalize(cache, agg)
		}
		return nil

	case TaskStorePrices:
		delta, ok := res.Data.(map[string]domain.PriceEntry)
		if !ok {
			return nil
		}
		if cache.Prices == nil {
			cache.Prices = map[string]domain.PriceEntry{}
		}
		for appID, entry := range delta {
			cache.Prices[appID] = entry
		}
		return []Step{EmitStorePrices{Prices: delta}, SaveStep{Reason: "after_task"}}

	case TaskWishlist:
		items, ok := res.Data.([]domain.WishlistItem)
		if !ok {
			return nil
		}
		cache.Wishlist = items
		return []Step{EmitWishlist{Items: items}, SaveStep{Reason: "after_task"}}

	case TaskAchievements:
		delta, ok := res.Data.(map[string]domain.AchievementStat)
		if !ok {
			return nil
		}
		if cache.Achievements == nil {
			cache.Achievements = map[string]domain.AchievementStat{}
		}
		for appID, stat := range delta {
			cache.Achievements[appID] = stat
		}
		return []Step{EmitAchievements{Stats: delta}, SaveStep{Reason: "after_task"}}
	}

	return nil
}

// finalize closes the barrier: store the account map, publish the primary
// summary when present, re-derive the merged library from all accounts and
// finish with one save.
func (p *Processor) finalize(cache *domain.SteamCache, agg *Aggregator) []Step {
	primary := agg.Primary()
	accounts := agg.Finalize()

	var steps []Step
	if len(accounts) > 0 {
		cache.GamesAccounts = accounts
	}

	if acc, ok := accounts[primary]; ok && acc.Summary != nil {
		cache.Summary = acc.Summary
		steps = append(steps, EmitPlayerSummary{Summary: acc.Summary})
	}

	merged := DeriveGamesFromAccounts(cache.GamesAccounts, primary)
	if !merged.IsEmpty() {
		cache.Games = merged
		steps = append(steps, EmitGamesStats{Games: merged})
	}

	return append(steps, SaveStep{Reason: "finalize"})
}

// DeriveGamesFromAccounts rebuilds the merged library from the persisted
// per-account map. The derivation is idempotent, so cache.games is always
// reconstructable from cache.games_accounts.
func DeriveGamesFromAccounts(accounts map[string]domain.AccountData, primary string) *domain.GamesPayload {
	if len(accounts) == 0 {
		return nil
	}
	return domain.MergeAccountGames(domain.AccountOrder(accounts, primary), accounts)
}
