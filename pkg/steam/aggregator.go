package steam

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// Aggregator is the barrier coordinator for one multi-account fetch round.
// Each account contributes exactly one decrement, via AddResult or
// MarkError, and Finalize runs once after the last one. The aggregator is
// confined to the UI goroutine so it needs no locking.
type Aggregator struct {
	pending int
	primary string
	results []accountResult
	open    bool
}

type accountResult struct {
	steamID string
	games   *domain.GamesPayload
	summary *domain.PlayerSummary
}

// Begin opens the barrier for the given accounts
func (a *Aggregator) Begin(accountIDs []string, primaryID string) {
	a.pending = len(accountIDs)
	a.primary = primaryID
	a.results = a.results[:0]
	a.open = true
}

// Open reports whether a fetch round is in flight
func (a *Aggregator) Open() bool {
	return a.open
}

// Primary returns the primary account of the current round
func (a *Aggregator) Primary() string {
	return a.primary
}

// AddResult records one account's payload and reports whether the barrier
// closed with this call.
func (a *Aggregator) AddResult(steamID string, games *domain.GamesPayload, summary *domain.PlayerSummary) bool {
	if !a.open {
		return false
	}
	a.results = append(a.results, accountResult{steamID: steamID, games: games, summary: summary})
	a.pending--
	return a.pending <= 0
}

// MarkError consumes one account's slot without a payload and reports
// whether the barrier closed with this call.
func (a *Aggregator) MarkError() bool {
	if !a.open {
		return false
	}
	a.pending--
	return a.pending <= 0
}

// Finalize returns the account map built from results that carried a games
// payload, then clears the round.
func (a *Aggregator) Finalize() map[string]domain.AccountData {
	accounts := map[string]domain.AccountData{}
	for _, r := range a.results {
		if r.games.IsEmpty() {
			continue
		}
		accounts[r.steamID] = domain.AccountData{Games: r.games, Summary: r.summary}
	}
	a.results = nil
	a.pending = 0
	a.open = false
	return accounts
}
