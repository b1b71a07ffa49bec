package crafting

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/repository"
)

// Options configures an Engine
type Options struct {
	Strategy  Strategy
	CacheSize int
	Delay     time.Duration
}

// Engine opens crafting sessions that share one matcher, store and bus
type Engine struct {
	catalog *catalog.Catalog
	store   repository.Recipes
	matcher Matcher
	bus     event.Bus
	delay   time.Duration
}

// NewEngine builds the matcher for c and binds it to store and bus
func NewEngine(c *catalog.Catalog, store repository.Recipes, bus event.Bus, opts Options) (*Engine, error) {
	if opts.Delay < 0 {
		return nil, fmt.Errorf("%w: negative craft delay %s", domain.ErrInvalidInput, opts.Delay)
	}

	matcher, err := NewMatcher(c, opts.Strategy, opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Engine{
		catalog: c,
		store:   store,
		matcher: matcher,
		bus:     bus,
		delay:   opts.Delay,
	}, nil
}

// NewSession opens a session bound to ctx
func (e *Engine) NewSession(ctx context.Context) *Session {
	return NewSession(ctx, e.store, e.matcher, e.bus, e.delay)
}

// Catalog returns the catalog the engine matches against
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Matcher returns the shared matcher
func (e *Engine) Matcher() Matcher {
	return e.matcher
}

// Delay returns the crafting delay
func (e *Engine) Delay() time.Duration {
	return e.delay
}
