// Package graph owns the in-memory node and edge collections for one
// session. The model is append/mutate-only: nodes are never removed, only
// flagged as ghosts when a promoted clone supersedes them.
package graph

import (
	"sync"

	"github.com/alexanderramin/admind/internal/domain"
)

// Store holds the session graph. A single orchestration chain is the only
// writer for the nodes it created, but HTTP readers may poll concurrently,
// so access is guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	nodes []domain.Node
	index map[string]int
	edges []domain.Edge
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// NewSessionStore creates a store seeded with the single ROOT node every
// session tree starts from.
func NewSessionStore(project domain.ProjectContext) *Store {
	s := NewStore()
	s.AddNode(domain.Node{
		ID:          "root",
		Type:        domain.NodeRoot,
		Title:       project.ProductName,
		Description: project.ProductDescription,
		Payload:     domain.RootPayload{},
		Stage:       domain.StageTesting,
	})
	return s
}

// AddNode appends a node. A duplicate id is silently ignored; callers
// derive ids from a timestamp plus batch index, which is unique within a
// session.
func (s *Store) AddNode(n domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.index[n.ID]; exists {
		return
	}
	s.index[n.ID] = len(s.nodes)
	s.nodes = append(s.nodes, n)
}

// AddEdge appends a parent->child edge. Duplicates between the same pair
// are possible; consumers must tolerate them.
func (s *Store) AddEdge(source, target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = append(s.edges, domain.NewEdge(source, target))
}

// UpdateNode applies fn to the node with the given id under the write lock.
// Unspecified fields are naturally preserved because fn mutates in place.
// Returns false without calling fn when the id is unknown.
func (s *Store) UpdateNode(id string, fn func(*domain.Node)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return false
	}
	fn(&s.nodes[i])
	return true
}

// Node returns a copy of the node with the given id.
func (s *Store) Node(id string) (domain.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return domain.Node{}, false
	}
	return s.nodes[i], true
}

// Root returns the session's ROOT node.
func (s *Store) Root() (domain.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.nodes {
		if n.Type == domain.NodeRoot {
			return n, true
		}
	}
	return domain.Node{}, false
}

// Nodes returns a copy of all nodes in insertion order.
func (s *Store) Nodes() []domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Edges returns a copy of all edges in insertion order.
func (s *Store) Edges() []domain.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Edge, len(s.edges))
	copy(out, s.edges)
	return out
}

// Filter returns nodes matching the predicate, in insertion order.
func (s *Store) Filter(pred func(domain.Node) bool) []domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Node
	for _, n := range s.nodes {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}

// TestingView returns the nodes and edges of the testing-stage workspace.
// Ghosted nodes stay visible here so the tree shape survives promotion.
func (s *Store) TestingView() ([]domain.Node, []domain.Edge) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visible := func(n domain.Node) bool {
		return n.Stage == domain.StageTesting || n.IsGhost
	}

	var nodes []domain.Node
	for _, n := range s.nodes {
		if visible(n) {
			nodes = append(nodes, n)
		}
	}

	var edges []domain.Edge
	for _, e := range s.edges {
		si, ok := s.index[e.Source]
		if !ok {
			continue
		}
		ti, ok := s.index[e.Target]
		if !ok {
			continue
		}
		if visible(s.nodes[si]) && visible(s.nodes[ti]) {
			edges = append(edges, e)
		}
	}
	return nodes, edges
}

// ScalingView returns promoted nodes. Promoted clones have no parents, so
// the scaling view carries no edges.
func (s *Store) ScalingView() []domain.Node {
	return s.Filter(func(n domain.Node) bool {
		return n.Stage == domain.StageScaling
	})
}

// ActiveCreatives returns the creatives eligible for a simulation pass:
// testing stage, not ghosted.
func (s *Store) ActiveCreatives() []domain.Node {
	return s.Filter(func(n domain.Node) bool {
		return n.Type == domain.NodeCreative && n.Stage == domain.StageTesting && !n.IsGhost
	})
}

// MoveNode sets a node's layout position. Used only for explicit drags.
func (s *Store) MoveNode(id string, x, y float64) bool {
	return s.UpdateNode(id, func(n *domain.Node) {
		n.X = x
		n.Y = y
	})
}

// Len returns the node count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
