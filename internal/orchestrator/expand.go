package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/layout"
	"github.com/alexanderramin/admind/internal/pricing"
)

// Layout constants per expansion. Gap is the horizontal offset from the
// parent, spacing the vertical distance between siblings.
const (
	personaGap     = 600
	personaSpacing = 800

	angleGap     = 550
	angleSpacing = 350

	storyGap     = 500
	storySpacing = 400

	ideaGap     = 500
	ideaSpacing = 300

	mechanismGap     = 500
	mechanismSpacing = 300

	hookGap     = 400
	hookSpacing = 200
)

// ExpandPersonas generates audience personas under the given node
// (normally the root) and lays them out as a column.
func (e *Engine) ExpandPersonas(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	personas, usage, err := e.strategy.Personas(ctx, e.Project())
	if err != nil {
		e.log.Warn("persona expansion failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(personas), personaGap, personaSpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(personas))

	nodes := make([]domain.Node, 0, len(personas))
	for i, p := range personas {
		desc := p.Profile
		if desc == "" {
			desc = p.Motivation
		}
		node := domain.Node{
			ID:            e.nodeID("persona", i),
			Type:          domain.NodePersona,
			ParentID:      parentID,
			Title:         p.Name,
			Description:   desc,
			Payload:       domain.PersonaPayload{Persona: p},
			Stage:         domain.StageTesting,
			InputTokens:   pricing.Amortize(usage.InputTokens, len(personas)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(personas)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("personas expanded",
		zap.String("parent", parentID), zap.Int("count", len(nodes)),
		zap.Int("input_tokens", usage.InputTokens), zap.Int("output_tokens", usage.OutputTokens))
	return nodes, nil
}

// ExpandAngles generates marketing angles under a persona node. The angle
// nodes inherit the persona name so downstream creatives know their target.
func (e *Engine) ExpandAngles(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	pp, ok := parent.Payload.(domain.PersonaPayload)
	if !ok {
		return nil, fmt.Errorf("%w: expand_angles requires a persona node, got %s", ErrWrongNodeType, parent.Type)
	}

	angles, usage, err := e.strategy.Angles(ctx, e.Project(), pp.Persona.Name, pp.Persona.Motivation)
	if err != nil {
		e.log.Warn("angle expansion failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(angles), angleGap, angleSpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(angles))

	nodes := make([]domain.Node, 0, len(angles))
	for i, a := range angles {
		node := domain.Node{
			ID:            e.nodeID("angle", i),
			Type:          domain.NodeAngle,
			ParentID:      parentID,
			Title:         a.Headline,
			Description:   "Hook: " + a.PainPoint,
			Payload:       domain.AnglePayload{Angle: a, PersonaName: pp.Persona.Name},
			Stage:         domain.StageTesting,
			TestingTier:   domain.TestingTier(a.TestingTier),
			InputTokens:   pricing.Amortize(usage.InputTokens, len(angles)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(angles)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("angles expanded",
		zap.String("parent", parentID), zap.Int("count", len(nodes)))
	return nodes, nil
}

// StartStoryFlow kicks off the story-lead workflow: unaware pain stories
// branch off the root.
func (e *Engine) StartStoryFlow(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	stories, usage, err := e.strategy.Stories(ctx, e.Project())
	if err != nil {
		e.log.Warn("story research failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(stories), storyGap, storySpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(stories))

	nodes := make([]domain.Node, 0, len(stories))
	for i, s := range stories {
		node := domain.Node{
			ID:            e.nodeID("story", i),
			Type:          domain.NodeStory,
			ParentID:      parentID,
			Title:         s.Title,
			Description:   "Story Phase",
			Payload:       domain.StoryPayload{Story: s},
			Stage:         domain.StageTesting,
			InputTokens:   pricing.Amortize(usage.InputTokens, len(stories)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(stories)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("story flow started",
		zap.String("parent", parentID), zap.Int("count", len(nodes)))
	return nodes, nil
}

// GenerateBigIdeas expands a story node into belief-shifting big ideas.
func (e *Engine) GenerateBigIdeas(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	sp, ok := parent.Payload.(domain.StoryPayload)
	if !ok {
		return nil, fmt.Errorf("%w: generate_big_ideas requires a story node, got %s", ErrWrongNodeType, parent.Type)
	}

	ideas, usage, err := e.strategy.BigIdeas(ctx, e.Project(), sp.Story)
	if err != nil {
		e.log.Warn("big idea generation failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(ideas), ideaGap, ideaSpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(ideas))

	nodes := make([]domain.Node, 0, len(ideas))
	for i, idea := range ideas {
		node := domain.Node{
			ID:            e.nodeID("big-idea", i),
			Type:          domain.NodeBigIdea,
			ParentID:      parentID,
			Title:         idea.Headline,
			Description:   "Big Idea Phase",
			Payload:       domain.BigIdeaPayload{Story: sp.Story, Idea: idea},
			Stage:         domain.StageTesting,
			InputTokens:   pricing.Amortize(usage.InputTokens, len(ideas)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(ideas)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("big ideas generated",
		zap.String("parent", parentID), zap.Int("count", len(nodes)))
	return nodes, nil
}

// GenerateMechanisms expands a big-idea node into UMP/UMS variants.
func (e *Engine) GenerateMechanisms(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	ip, ok := parent.Payload.(domain.BigIdeaPayload)
	if !ok {
		return nil, fmt.Errorf("%w: generate_mechanisms requires a big idea node, got %s", ErrWrongNodeType, parent.Type)
	}

	mechs, usage, err := e.strategy.Mechanisms(ctx, e.Project(), ip.Idea)
	if err != nil {
		e.log.Warn("mechanism generation failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(mechs), mechanismGap, mechanismSpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(mechs))

	nodes := make([]domain.Node, 0, len(mechs))
	for i, m := range mechs {
		node := domain.Node{
			ID:            e.nodeID("mechanism", i),
			Type:          domain.NodeMechanism,
			ParentID:      parentID,
			Title:         m.ScientificPseudo,
			Description:   "Mechanism Phase",
			Payload:       domain.MechanismPayload{Story: ip.Story, Idea: ip.Idea, Mechanism: m},
			Stage:         domain.StageTesting,
			InputTokens:   pricing.Amortize(usage.InputTokens, len(mechs)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(mechs)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("mechanisms generated",
		zap.String("parent", parentID), zap.Int("count", len(nodes)))
	return nodes, nil
}

// GenerateHooks expands a mechanism node into hook variations, each
// carrying the full story/idea/mechanism lineage for the final pipeline.
func (e *Engine) GenerateHooks(ctx context.Context, parentID string) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	mp, ok := parent.Payload.(domain.MechanismPayload)
	if !ok {
		return nil, fmt.Errorf("%w: generate_hooks requires a mechanism node, got %s", ErrWrongNodeType, parent.Type)
	}

	hooks, usage, err := e.strategy.Hooks(ctx, mp.Idea, mp.Mechanism)
	if err != nil {
		e.log.Warn("hook generation failed", zap.String("parent", parentID), zap.Error(err))
		return nil, err
	}

	points := layout.Column(parent.X, parent.Y, len(hooks), hookGap, hookSpacing)
	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0) / float64(len(hooks))

	nodes := make([]domain.Node, 0, len(hooks))
	for i, h := range hooks {
		node := domain.Node{
			ID:          e.nodeID("hook", i),
			Type:        domain.NodeHook,
			ParentID:    parentID,
			Title:       "Hook Variation",
			Description: "Hook Phase",
			Payload: domain.HookPayload{
				Story:     mp.Story,
				Idea:      mp.Idea,
				Mechanism: mp.Mechanism,
				Hook:      h,
			},
			Stage:         domain.StageTesting,
			InputTokens:   pricing.Amortize(usage.InputTokens, len(hooks)),
			OutputTokens:  pricing.Amortize(usage.OutputTokens, len(hooks)),
			EstimatedCost: cost,
			X:             points[i].X,
			Y:             points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		nodes = append(nodes, node)
	}

	e.log.Info("hooks generated",
		zap.String("parent", parentID), zap.Int("count", len(nodes)))
	return nodes, nil
}
