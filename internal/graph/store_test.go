package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/admind/internal/domain"
)

func creativeNode(id string, stage domain.CampaignStage) domain.Node {
	return domain.Node{
		ID:       id,
		Type:     domain.NodeCreative,
		ParentID: "root",
		Stage:    stage,
		Payload:  domain.CreativePayload{Format: domain.Meme},
	}
}

func TestNewSessionStore_SeedsRoot(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())

	root, ok := s.Root()
	require.True(t, ok)
	assert.Equal(t, "root", root.ID)
	assert.Equal(t, domain.NodeRoot, root.Type)
	assert.Equal(t, "Zenith Focus Gummies", root.Title)
	assert.Equal(t, domain.StageTesting, root.Stage)
	assert.Equal(t, 1, s.Len())
}

func TestAddNode_DuplicateIDIgnored(t *testing.T) {
	s := NewStore()
	s.AddNode(domain.Node{ID: "a", Title: "first"})
	s.AddNode(domain.Node{ID: "a", Title: "second"})

	require.Equal(t, 1, s.Len())
	n, ok := s.Node("a")
	require.True(t, ok)
	assert.Equal(t, "first", n.Title)
}

func TestUpdateNode(t *testing.T) {
	s := NewStore()
	s.AddNode(domain.Node{ID: "a"})

	ok := s.UpdateNode("a", func(n *domain.Node) {
		n.Title = "updated"
		n.IsLoading = true
	})
	require.True(t, ok)

	n, _ := s.Node("a")
	assert.Equal(t, "updated", n.Title)
	assert.True(t, n.IsLoading)

	assert.False(t, s.UpdateNode("missing", func(n *domain.Node) {
		t.Fatal("fn must not run for unknown id")
	}))
}

func TestNode_ReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddNode(domain.Node{ID: "a", Title: "original"})

	n, _ := s.Node("a")
	n.Title = "mutated copy"

	stored, _ := s.Node("a")
	assert.Equal(t, "original", stored.Title)
}

func TestTestingView_GhostsStayVisible(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())
	ghost := creativeNode("c1", domain.StageTesting)
	ghost.IsGhost = true
	s.AddNode(ghost)
	s.AddEdge("root", "c1")

	promoted := creativeNode("c1-vault", domain.StageScaling)
	promoted.ParentID = ""
	s.AddNode(promoted)

	nodes, edges := s.TestingView()
	ids := map[string]bool{}
	for _, n := range nodes {
		ids[n.ID] = true
	}
	assert.True(t, ids["root"])
	assert.True(t, ids["c1"])
	assert.False(t, ids["c1-vault"])
	require.Len(t, edges, 1)
	assert.Equal(t, "root-c1", edges[0].ID)
}

func TestTestingView_DropsEdgesWithHiddenEndpoint(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())
	s.AddNode(creativeNode("scaled", domain.StageScaling))
	s.AddEdge("root", "scaled")
	s.AddEdge("root", "nonexistent")

	_, edges := s.TestingView()
	assert.Empty(t, edges)
}

func TestScalingView(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())
	s.AddNode(creativeNode("c1", domain.StageTesting))
	s.AddNode(creativeNode("c1-vault", domain.StageScaling))

	scaled := s.ScalingView()
	require.Len(t, scaled, 1)
	assert.Equal(t, "c1-vault", scaled[0].ID)
}

func TestActiveCreatives_ExcludesGhostsAndScaling(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())
	s.AddNode(creativeNode("live", domain.StageTesting))
	ghost := creativeNode("ghost", domain.StageTesting)
	ghost.IsGhost = true
	s.AddNode(ghost)
	s.AddNode(creativeNode("vault", domain.StageScaling))
	s.AddNode(domain.Node{ID: "persona", Type: domain.NodePersona, Stage: domain.StageTesting, Payload: domain.PersonaPayload{}})

	active := s.ActiveCreatives()
	require.Len(t, active, 1)
	assert.Equal(t, "live", active[0].ID)
}

func TestMoveNode(t *testing.T) {
	s := NewSessionStore(domain.DefaultProject())

	require.True(t, s.MoveNode("root", 120, -45.5))
	n, _ := s.Node("root")
	assert.Equal(t, 120.0, n.X)
	assert.Equal(t, -45.5, n.Y)

	assert.False(t, s.MoveNode("missing", 0, 0))
}
