// Package orchestrator drives the campaign map: it expands strategy nodes,
// runs the multi-step creative pipelines, promotes winners, and keeps the
// per-node token and cost accounting consistent.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/graph"
	"github.com/alexanderramin/admind/internal/intelligence"
)

var (
	// ErrNodeNotFound indicates the trigger referenced an unknown node.
	ErrNodeNotFound = errors.New("node not found")

	// ErrNodeBusy indicates the node already has a generation in flight.
	// The trigger is rejected; the running generation is unaffected.
	ErrNodeBusy = errors.New("node is busy generating")

	// ErrWrongNodeType indicates the action does not apply to the node's type.
	ErrWrongNodeType = errors.New("action not valid for node type")
)

// creativeStagger spaces out sibling creative pipelines to stay under
// provider rate limits.
const creativeStagger = 800 * time.Millisecond

// Engine coordinates all generation against a session's graph.
type Engine struct {
	store    *graph.Store
	strategy intelligence.StrategyService
	creative intelligence.CreativeService
	image    intelligence.ImageService
	analyze  intelligence.ContextService
	log      *zap.Logger

	mu      sync.RWMutex
	project domain.ProjectContext

	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	stagger time.Duration
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Node ids embed the clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSleep overrides the stagger sleep. Tests pass a no-op.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Engine) { e.sleep = sleep }
}

// WithStagger overrides the delay between sibling creative pipelines.
func WithStagger(d time.Duration) Option {
	return func(e *Engine) { e.stagger = d }
}

// NewEngine creates an Engine over a session store.
func NewEngine(
	store *graph.Store,
	project domain.ProjectContext,
	strategy intelligence.StrategyService,
	creative intelligence.CreativeService,
	image intelligence.ImageService,
	analyze intelligence.ContextService,
	log *zap.Logger,
	opts ...Option,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		store:    store,
		strategy: strategy,
		creative: creative,
		image:    image,
		analyze:  analyze,
		log:      log,
		project:  project,
		now:      time.Now,
		sleep:    sleepCtx,
		stagger:  creativeStagger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Store exposes the session graph for read access.
func (e *Engine) Store() *graph.Store {
	return e.store
}

// Project returns a copy of the current project context.
func (e *Engine) Project() domain.ProjectContext {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.project
}

// nodeID builds the "<kind>-<unixmillis>-<index>" id scheme.
func (e *Engine) nodeID(kind string, index int) string {
	return fmt.Sprintf("%s-%d-%d", kind, e.now().UnixMilli(), index)
}

// acquire marks a node as the active generation target. It fails when the
// node is unknown or already loading.
func (e *Engine) acquire(nodeID string) (domain.Node, error) {
	node, ok := e.store.Node(nodeID)
	if !ok {
		return domain.Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if node.IsLoading {
		return domain.Node{}, fmt.Errorf("%w: %s", ErrNodeBusy, nodeID)
	}
	e.store.UpdateNode(nodeID, func(n *domain.Node) { n.IsLoading = true })
	return node, nil
}

func (e *Engine) release(nodeID string) {
	e.store.UpdateNode(nodeID, func(n *domain.Node) { n.IsLoading = false })
}

// truncateDescription shortens primary text for the node card. Localized
// copy is multibyte, so the cut happens on runes.
func truncateDescription(s string) string {
	r := []rune(s)
	if len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return s
}
