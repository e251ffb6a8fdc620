// Package menu composes the radial menu from live state. Providers are
// re-invoked on every compose so the menu always reflects the current
// timer, library and settings state.
package menu

import (
	"github.com/glowpaw/steampet/pkg/domain"
)

// Provider produces one menu item, or nil when its entry has nothing to
// show. Providers must be cheap; they run on the UI goroutine per compose.
type Provider func() *domain.MenuItem

// Composer fills a fixed radial layout from an ordered provider set
type Composer struct {
	providers []Provider
	layout    []string
	fillTo    int
}

// NewComposer creates a composer for the given slot layout. The composed
// result always has at least fillTo slots.
func NewComposer(layout []string, fillTo int, providers ...Provider) *Composer {
	return &Composer{providers: providers, layout: layout, fillTo: fillTo}
}

// Compose invokes every provider and places each produced item into the
// slot whose layout key matches its key. Slots without a matching item are
// nil and render as disabled sectors.
func (c *Composer) Compose() []*domain.MenuItem {
	byKey := make(map[string]*domain.MenuItem, len(c.providers))
	for _, p := range c.providers {
		item := p()
		if item == nil {
			continue
		}
		if _, taken := byKey[item.Key]; !taken {
			byKey[item.Key] = item
		}
	}

	n := len(c.layout)
	if c.fillTo > n {
		n = c.fillTo
	}
	slots := make([]*domain.MenuItem, n)
	for i, key := range c.layout {
		slots[i] = byKey[key]
	}
	return slots
}
