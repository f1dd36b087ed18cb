// Package site dispatches work URLs to the strategy that can read them.
package site

import (
	"sync"

	"github.com/fwojciec/wixbook"
)

// Ensure Registry implements wixbook.StrategyRegistry at compile time.
var _ wixbook.StrategyRegistry = (*Registry)(nil)

type entry struct {
	match    wixbook.Matcher
	strategy wixbook.Strategy
}

// Registry is an ordered table of (matcher, strategy) pairs.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  []entry
	fallback wixbook.Strategy
}

// NewRegistry creates a Registry. The fallback, if not nil, is returned
// when no registered matcher accepts a URL.
func NewRegistry(fallback wixbook.Strategy) *Registry {
	return &Registry{fallback: fallback}
}

// Register appends a strategy. Earlier registrations take precedence.
func (r *Registry) Register(match wixbook.Matcher, strategy wixbook.Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{match: match, strategy: strategy})
}

// Lookup returns the first strategy whose matcher accepts url.
func (r *Registry) Lookup(url string) (wixbook.Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.match(url) {
			return e.strategy, nil
		}
	}
	if r.fallback != nil {
		return r.fallback, nil
	}
	return nil, wixbook.Errorf(wixbook.ENOTFOUND, "no strategy for %s", url)
}
