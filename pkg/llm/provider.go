package llm

import (
	"context"
	"sync"

	"github.com/batonworks/baton/pkg/engine"
)

// Provider executes one model API turn
type Provider interface {
	// Name returns the provider tag agents reference
	Name() string

	// Complete sends one request and returns the model's reply
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Registry resolves providers by tag. Safe for concurrent use
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its own name
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get resolves a provider tag
func (r *Registry) Get(tag string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[tag]
	if !ok {
		return nil, engine.NewErrorf(engine.KindProviderUnsupported, "unsupported LLM provider: %s", tag)
	}
	return p, nil
}
