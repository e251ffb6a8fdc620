package steam

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// Step is one immutable effect produced by the result processor. The facade
// applies steps strictly in order: saves go to the repository, emits go to
// the UI intent channels.
type Step interface {
	step()
}

// EmitPlayerSummary publishes an updated player summary
type EmitPlayerSummary struct {
	Summary *domain.PlayerSummary
}

// EmitGamesStats publishes a merged games payload
type EmitGamesStats struct {
	Games *domain.GamesPayload
}

// EmitStorePrices publishes the price delta from one store task
type EmitStorePrices struct {
	Prices map[string]domain.PriceEntry
}

// EmitWishlist publishes the full replacement wishlist
type EmitWishlist struct {
	Items []domain.WishlistItem
}

// EmitAchievements publishes the achievements delta from one task
type EmitAchievements struct {
	Stats map[string]domain.AchievementStat
}

// EmitError publishes a user-visible error message
type EmitError struct {
	Message string
}

// SaveStep requests one cache persistence with the reason it happened
type SaveStep struct {
	Reason string
}

func (EmitPlayerSummary) step() {}
func (EmitGamesStats) step()    {}
func (EmitStorePrices) step()   {}
func (EmitWishlist) step()      {}
func (EmitAchievements) step()  {}
func (EmitError) step()         {}
func (SaveStep) step()          {}
