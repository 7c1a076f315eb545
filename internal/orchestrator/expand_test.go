package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/llm"
)

func TestExpandPersonas_CreatesNodesEdgesAndCosts(t *testing.T) {
	f := newFixture()

	nodes, err := f.engine.ExpandPersonas(context.Background(), "root")
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, "persona-1700000000000-0", nodes[0].ID)
	assert.Equal(t, domain.NodePersona, nodes[0].Type)
	assert.Equal(t, "The Skeptic", nodes[0].Title)
	assert.Equal(t, "Researches everything", nodes[0].Description)
	assert.Equal(t, "root", nodes[0].ParentID)

	// 300/150 tokens amortized over 3 siblings.
	for _, n := range nodes {
		assert.Equal(t, 100, n.InputTokens)
		assert.Equal(t, 50, n.OutputTokens)
		assert.InDelta(t, (300.0/1e6*0.30+150.0/1e6*2.50)/3, n.EstimatedCost, 1e-9)
	}

	// Vertical column to the right of the root, centered on it.
	assert.Equal(t, 600.0, nodes[0].X)
	assert.Equal(t, -800.0, nodes[0].Y)
	assert.Equal(t, 0.0, nodes[1].Y)
	assert.Equal(t, 800.0, nodes[2].Y)

	edges := f.store.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "root-persona-1700000000000-0", edges[0].ID)

	root, _ := f.store.Node("root")
	assert.False(t, root.IsLoading)
}

func TestExpandPersonas_UnknownParent(t *testing.T) {
	f := newFixture()

	_, err := f.engine.ExpandPersonas(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestExpandPersonas_BusyParentRejected(t *testing.T) {
	f := newFixture()
	f.store.UpdateNode("root", func(n *domain.Node) { n.IsLoading = true })

	_, err := f.engine.ExpandPersonas(context.Background(), "root")
	assert.ErrorIs(t, err, ErrNodeBusy)
	assert.Equal(t, 1, f.store.Len())
}

func TestExpandPersonas_ServiceErrorClearsLoading(t *testing.T) {
	f := newFixture()
	f.strategy.err = llm.ErrQuotaExhausted

	_, err := f.engine.ExpandPersonas(context.Background(), "root")
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrQuotaExhausted))

	root, _ := f.store.Node("root")
	assert.False(t, root.IsLoading)
	assert.Equal(t, 1, f.store.Len())
}

func TestExpandAngles_RequiresPersonaParent(t *testing.T) {
	f := newFixture()

	_, err := f.engine.ExpandAngles(context.Background(), "root")
	assert.ErrorIs(t, err, ErrWrongNodeType)

	root, _ := f.store.Node("root")
	assert.False(t, root.IsLoading)
}

func TestExpandAngles_CarriesPersonaNameAndTier(t *testing.T) {
	f := newFixture()
	personas, err := f.engine.ExpandPersonas(context.Background(), "root")
	require.NoError(t, err)

	angles, err := f.engine.ExpandAngles(context.Background(), personas[0].ID)
	require.NoError(t, err)
	require.Len(t, angles, 2)

	assert.Equal(t, "Your focus has a deadline", angles[0].Title)
	assert.Equal(t, "Hook: Missed deadlines", angles[0].Description)
	assert.Equal(t, domain.TestingTier("TIER 1 (Concept Isolation)"), angles[0].TestingTier)

	ap, ok := angles[0].Payload.(domain.AnglePayload)
	require.True(t, ok)
	assert.Equal(t, "The Skeptic", ap.PersonaName)
	assert.Equal(t, "Missed deadlines", ap.Angle.PainPoint)

	// Column offset from the persona node, not the root.
	assert.Equal(t, personas[0].X+550, angles[0].X)
}

func TestStoryFlow_FullChainPayloadLineage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	stories, err := f.engine.StartStoryFlow(ctx, "root")
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Story Phase", stories[0].Description)
	assert.Equal(t, domain.NodeStory, stories[0].Type)

	ideas, err := f.engine.GenerateBigIdeas(ctx, stories[0].ID)
	require.NoError(t, err)
	require.Len(t, ideas, 1)
	assert.Equal(t, "It's dopamine debt", ideas[0].Title)
	assert.Equal(t, "Big Idea Phase", ideas[0].Description)

	mechs, err := f.engine.GenerateMechanisms(ctx, ideas[0].ID)
	require.NoError(t, err)
	require.Len(t, mechs, 1)
	assert.Equal(t, "The Reset Protocol", mechs[0].Title)

	hooks, err := f.engine.GenerateHooks(ctx, mechs[0].ID)
	require.NoError(t, err)
	require.Len(t, hooks, 2)
	assert.Equal(t, "Hook Variation", hooks[0].Title)
	assert.Equal(t, "Hook Phase", hooks[0].Description)

	hp, ok := hooks[0].Payload.(domain.HookPayload)
	require.True(t, ok)
	assert.Equal(t, "What if focus was a nutrient?", hp.Hook)
	assert.Equal(t, "I lost my edge at 29", hp.Story.Title)
	assert.Equal(t, "It's dopamine debt", hp.Idea.Headline)
	assert.Equal(t, "The Reset Protocol", hp.Mechanism.ScientificPseudo)
}

func TestGenerateBigIdeas_RequiresStoryParent(t *testing.T) {
	f := newFixture()
	personas, _ := f.engine.ExpandPersonas(context.Background(), "root")

	_, err := f.engine.GenerateBigIdeas(context.Background(), personas[0].ID)
	assert.ErrorIs(t, err, ErrWrongNodeType)
}

func TestGenerateHooks_RequiresMechanismParent(t *testing.T) {
	f := newFixture()
	stories, _ := f.engine.StartStoryFlow(context.Background(), "root")

	_, err := f.engine.GenerateHooks(context.Background(), stories[0].ID)
	assert.ErrorIs(t, err, ErrWrongNodeType)
}
