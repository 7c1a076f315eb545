package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/layout"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/pricing"
	"github.com/alexanderramin/admind/internal/prompt"
)

// Creative grid layout constants.
const (
	creativeGap        = 550
	creativeColSpacing = 350
	creativeRowSpacing = 400
	creativeColumns    = 3
)

// creativeContext is the strategic input a creative pipeline starts from,
// derived from the parent node's payload.
type creativeContext struct {
	personaName string
	persona     domain.Persona
	angle       string
	hook        *domain.HookPayload
	shortcut    bool
}

// deriveCreativeContext resolves the message and target for creatives
// spawned under the given parent. Any parent works: nodes without a
// strategic payload (the project root included) fall back to the node
// title as the message and a generic protagonist persona.
func deriveCreativeContext(parent domain.Node) creativeContext {
	cc := creativeContext{personaName: "Story Protagonist", angle: parent.Title}

	switch p := parent.Payload.(type) {
	case domain.PersonaPayload:
		cc.personaName = p.Persona.Name
		cc.persona = p.Persona
	case domain.AnglePayload:
		cc.personaName = p.PersonaName
		cc.persona = domain.Persona{Name: p.PersonaName}
	case domain.StoryPayload:
		cc.shortcut = true
	case domain.BigIdeaPayload:
		cc.shortcut = true
		cc.angle = p.Idea.Headline
	case domain.MechanismPayload:
		cc.shortcut = true
		cc.angle = p.Mechanism.ScientificPseudo
	case domain.HookPayload:
		cc.angle = p.Hook
		hook := p
		cc.hook = &hook
	}
	if cc.persona.Name == "" {
		cc.persona = domain.Persona{Name: cc.personaName}
	}
	return cc
}

// GenerateCreatives spawns one creative node per requested format under the
// parent and runs their pipelines sequentially, staggered to respect rate
// limits. A failed pipeline marks its own node and never blocks siblings.
func (e *Engine) GenerateCreatives(ctx context.Context, parentID string, formats []domain.CreativeFormat) ([]domain.Node, error) {
	parent, err := e.acquire(parentID)
	if err != nil {
		return nil, err
	}
	defer e.release(parentID)

	cc := deriveCreativeContext(parent)

	points := layout.Grid(parent.X, parent.Y, len(formats), creativeColumns,
		creativeGap, creativeColSpacing, creativeRowSpacing)

	ids := make([]string, 0, len(formats))
	for i, format := range formats {
		node := domain.Node{
			ID:          e.nodeID("creative", i),
			Type:        domain.NodeCreative,
			ParentID:    parentID,
			Title:       string(format),
			Description: "Initializing Generation...",
			Payload: domain.CreativePayload{
				PersonaName: cc.personaName,
				Angle:       cc.angle,
				Format:      format,
			},
			Stage:     domain.StageTesting,
			IsLoading: true,
			X:         points[i].X,
			Y:         points[i].Y,
		}
		e.store.AddNode(node)
		e.store.AddEdge(parentID, node.ID)
		ids = append(ids, node.ID)
	}

	for i, id := range ids {
		if i > 0 {
			if err := e.sleep(ctx, e.stagger); err != nil {
				e.failCreative(id, "Generation Failed")
				for _, rest := range ids[i+1:] {
					e.failCreative(rest, "Generation Failed")
				}
				return e.collect(ids), err
			}
		}
		if err := e.runCreativePipeline(ctx, id, formats[i], cc); err != nil {
			e.log.Warn("creative pipeline failed",
				zap.String("node", id), zap.String("format", string(formats[i])), zap.Error(err))
			e.failCreative(id, "Generation Failed")
		}
	}

	return e.collect(ids), nil
}

func (e *Engine) collect(ids []string) []domain.Node {
	out := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := e.store.Node(id); ok {
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) failCreative(id, message string) {
	e.store.UpdateNode(id, func(n *domain.Node) {
		n.IsLoading = false
		n.Description = message
	})
}

func (e *Engine) setProgress(id, message string) {
	e.store.UpdateNode(id, func(n *domain.Node) { n.Description = message })
}

// runCreativePipeline executes the full chain for one creative node:
// copy production (standard, shortcut, or sales-letter), compliance, the
// lead visual, and carousel slides when the format calls for them.
func (e *Engine) runCreativePipeline(ctx context.Context, nodeID string, format domain.CreativeFormat, cc creativeContext) error {
	project := e.Project()

	var (
		usage   llm.Usage
		images  int
		concept domain.CreativeConcept
		adCopy  domain.AdCopy
	)

	switch {
	case cc.hook != nil:
		e.setProgress(nodeID, "Writing Caption...")
		letter, u, err := e.strategy.SalesLetter(ctx, project, cc.hook.Story, cc.hook.Idea, cc.hook.Mechanism, cc.hook.Hook)
		usage = usage.Add(u)
		if err != nil {
			return err
		}
		cta := project.Offer
		if cta == "" {
			cta = "Learn More"
		}
		adCopy = domain.AdCopy{Headline: cc.hook.Hook, PrimaryText: letter, CTA: cta}

		e.setProgress(nodeID, "Art Director: Visualizing...")
		concept, u, err = e.creative.Concept(ctx, project, cc.personaName, cc.angle, format)
		usage = usage.Add(u)
		if err != nil {
			return err
		}

	default:
		progress := "Art Director: Defining visual style..."
		if cc.shortcut {
			progress = "Copywriter: Drafting (Shortcut)..."
		}
		e.setProgress(nodeID, progress)
		var u llm.Usage
		var err error
		concept, u, err = e.creative.Concept(ctx, project, cc.personaName, cc.angle, format)
		usage = usage.Add(u)
		if err != nil {
			return err
		}

		e.setProgress(nodeID, "Copywriter: Drafting...")
		adCopy, u, err = e.creative.Copy(ctx, project, cc.persona, concept)
		usage = usage.Add(u)
		if err != nil {
			return err
		}
	}

	notes, u, err := e.creative.Compliance(ctx, adCopy)
	usage = usage.Add(u)
	if err != nil {
		return err
	}
	adCopy.ComplianceNotes = notes

	e.setProgress(nodeID, "Visualizer: Rendering...")
	params := prompt.ImageParams{
		Project:         project,
		Angle:           cc.angle,
		Format:          format,
		VisualScene:     concept.VisualScene,
		VisualStyle:     concept.VisualStyle,
		TechnicalPrompt: concept.TechnicalPrompt,
	}
	imageURL, u, err := e.image.CreativeImage(ctx, params, "1:1")
	usage = usage.Add(u)
	if err != nil {
		return err
	}
	if imageURL != "" {
		images++
	}

	var carousel []string
	if format.IsCarousel() {
		carousel, u, err = e.image.CarouselImages(ctx, params)
		usage = usage.Add(u)
		if err != nil {
			return err
		}
		images += len(carousel)
	}

	cost := pricing.Estimate(usage.InputTokens, usage.OutputTokens, images)

	e.store.UpdateNode(nodeID, func(n *domain.Node) {
		n.IsLoading = false
		n.Description = truncateDescription(adCopy.PrimaryText)
		n.InputTokens = usage.InputTokens
		n.OutputTokens = usage.OutputTokens
		n.EstimatedCost = cost
		n.VariableIsolated = concept.Rationale
		if p, ok := n.Creative(); ok {
			p.Concept = concept
			p.Copy = adCopy
			p.ImageURL = imageURL
			p.CarouselImages = carousel
			if cc.hook != nil {
				p.SalesLetter = adCopy.PrimaryText
			}
			n.Payload = p
		}
	})

	e.log.Info("creative generated",
		zap.String("node", nodeID), zap.String("format", string(format)),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens),
		zap.Float64("cost", cost))
	return nil
}

// GenerateAdScript drafts a short-video voiceover script for an existing
// creative from its stored persona and message.
func (e *Engine) GenerateAdScript(ctx context.Context, nodeID string) (string, error) {
	node, err := e.acquire(nodeID)
	if err != nil {
		return "", err
	}

	payload, ok := node.Creative()
	if !ok {
		e.release(nodeID)
		return "", fmt.Errorf("%w: ad script requires a creative node, got %s", ErrWrongNodeType, node.Type)
	}

	e.setProgress(nodeID, "Scriptwriter: Drafting...")
	angle := payload.Angle
	if angle == "" {
		angle = node.Title
	}

	script, usage, err := e.creative.AdScript(ctx, e.Project(), payload.PersonaName, angle)
	if err != nil {
		e.failCreative(nodeID, "Script generation failed")
		return "", err
	}

	e.store.UpdateNode(nodeID, func(n *domain.Node) {
		n.IsLoading = false
		n.InputTokens += usage.InputTokens
		n.OutputTokens += usage.OutputTokens
		n.EstimatedCost += pricing.Estimate(usage.InputTokens, usage.OutputTokens, 0)
		if p, ok := n.Creative(); ok {
			p.AdScript = script
			n.Payload = p
			if p.Copy.PrimaryText != "" {
				n.Description = truncateDescription(p.Copy.PrimaryText)
			}
		}
	})

	e.log.Info("ad script generated",
		zap.String("node", nodeID),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens))
	return script, nil
}

// Regenerate re-renders the visual of an existing creative from its stored
// concept, optionally at a different aspect ratio.
func (e *Engine) Regenerate(ctx context.Context, nodeID, aspectRatio string) error {
	node, err := e.acquire(nodeID)
	if err != nil {
		return err
	}

	payload, ok := node.Creative()
	if !ok {
		e.release(nodeID)
		return fmt.Errorf("%w: regenerate requires a creative node, got %s", ErrWrongNodeType, node.Type)
	}

	e.setProgress(nodeID, "Regenerating visual...")
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	params := prompt.ImageParams{
		Project:         e.Project(),
		Angle:           payload.Angle,
		Format:          payload.Format,
		VisualScene:     payload.Concept.VisualScene,
		VisualStyle:     payload.Concept.VisualStyle,
		TechnicalPrompt: payload.Concept.TechnicalPrompt,
	}
	if params.Angle == "" {
		params.Angle = node.Title
	}

	imageURL, usage, err := e.image.CreativeImage(ctx, params, aspectRatio)
	if err != nil {
		e.failCreative(nodeID, "Error during regeneration")
		return err
	}
	if imageURL == "" {
		e.failCreative(nodeID, "Regeneration failed.")
		return nil
	}

	e.store.UpdateNode(nodeID, func(n *domain.Node) {
		n.IsLoading = false
		n.InputTokens += usage.InputTokens
		n.OutputTokens += usage.OutputTokens
		n.EstimatedCost += pricing.Estimate(usage.InputTokens, usage.OutputTokens, 1)
		if p, ok := n.Creative(); ok {
			p.ImageURL = imageURL
			n.Payload = p
			if p.Copy.PrimaryText != "" {
				n.Description = truncateDescription(p.Copy.PrimaryText)
			}
		}
	})
	return nil
}
