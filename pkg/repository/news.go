package repository

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// NewsRepository persists the per-day news cache document
type NewsRepository struct {
	path   string
	notify ErrorFunc
}

// NewNewsRepository creates a repository bound to path
func NewNewsRepository(path string, notify ErrorFunc) *NewsRepository {
	return &NewsRepository{path: path, notify: notify}
}

// Load reads the cached day; missing or corrupt files yield an empty cache
func (r *NewsRepository) Load() domain.NewsCache {
	var cache domain.NewsCache
	readJSONFile(r.path, &cache, r.notify)
	return cache
}

// Save replaces the cached day
func (r *NewsRepository) Save(cache domain.NewsCache) error {
	return writeJSONFile(r.path, cache, r.notify)
}
