package providers

import (
	"sort"

	"github.com/preston-bernstein/sports-feed-service/internal/domain/feed"
)

// Registry is the sport-key lookup table of feed providers.
type Registry struct {
	providers map[feed.Sport]FeedProvider
}

// NewRegistry builds a registry holding the given providers.
func NewRegistry(providers ...FeedProvider) *Registry {
	r := &Registry{providers: make(map[feed.Sport]FeedProvider, len(providers))}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds or replaces the provider for its sport.
func (r *Registry) Register(p FeedProvider) {
	if p == nil {
		return
	}
	r.providers[p.Sport()] = p
}

// Lookup returns the provider registered for a sport.
func (r *Registry) Lookup(sport feed.Sport) (FeedProvider, bool) {
	if r == nil {
		return nil, false
	}
	p, ok := r.providers[sport]
	return p, ok
}

// Sports lists registered sport keys in stable order.
func (r *Registry) Sports() []feed.Sport {
	if r == nil {
		return nil
	}
	keys := make([]feed.Sport, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Each calls fn for every registered provider in sport order.
func (r *Registry) Each(fn func(FeedProvider)) {
	for _, s := range r.Sports() {
		fn(r.providers[s])
	}
}
