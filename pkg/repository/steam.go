package repository

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// SteamCacheRepository persists the single Steam cache document. Only the
// Steam facade calls Save; everything else reads through the facade.
type SteamCacheRepository struct {
	path   string
	notify ErrorFunc
}

// NewSteamCacheRepository creates a repository bound to path
func NewSteamCacheRepository(path string, notify ErrorFunc) *SteamCacheRepository {
	return &SteamCacheRepository{path: path, notify: notify}
}

// Load reads the cache document. A missing or corrupt file yields an empty
// cache; decode failures are reported through the error callback.
func (r *SteamCacheRepository) Load() *domain.SteamCache {
	cache := &domain.SteamCache{}
	readJSONFile(r.path, cache, r.notify)
	if cache.Prices == nil {
		cache.Prices = map[string]domain.PriceEntry{}
	}
	if cache.Achievements == nil {
		cache.Achievements = map[string]domain.AchievementStat{}
	}
	return cache
}

// Save writes the whole cache document, last write wins
func (r *SteamCacheRepository) Save(cache *domain.SteamCache) error {
	return writeJSONFile(r.path, cache, r.notify)
}
