package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
)

// UpdateProject applies a partial update to the project context and returns
// the result. The root node mirrors product name and description.
func (e *Engine) UpdateProject(patch domain.ProjectPatch) domain.ProjectContext {
	e.mu.Lock()
	patch.Apply(&e.project)
	updated := e.project
	e.mu.Unlock()

	e.syncRoot(updated)
	return updated
}

// SetReferenceImage stores the product reference image used to anchor
// generated visuals.
func (e *Engine) SetReferenceImage(image []byte) {
	e.mu.Lock()
	e.project.ProductReferenceImage = image
	e.mu.Unlock()
}

// AnalyzeLandingPage extracts project context from scraped landing page
// content and merges it into the session.
func (e *Engine) AnalyzeLandingPage(ctx context.Context, markdown string) (domain.ProjectContext, error) {
	analyzed, _, err := e.analyze.AnalyzeLandingPage(ctx, markdown)
	if err != nil {
		e.log.Warn("landing page analysis failed", zap.Error(err))
		return domain.ProjectContext{}, err
	}
	return e.mergeAnalyzed(analyzed), nil
}

// AnalyzeProductImage extracts project context from a product photo and
// merges it into the session. The photo becomes the reference image.
func (e *Engine) AnalyzeProductImage(ctx context.Context, image []byte, mime string) (domain.ProjectContext, error) {
	analyzed, _, err := e.analyze.AnalyzeProductImage(ctx, image, mime)
	if err != nil {
		e.log.Warn("product image analysis failed", zap.Error(err))
		return domain.ProjectContext{}, err
	}
	merged := e.mergeAnalyzed(analyzed)
	e.SetReferenceImage(image)
	return merged, nil
}

func (e *Engine) mergeAnalyzed(analyzed domain.ProjectContext) domain.ProjectContext {
	e.mu.Lock()
	e.project.MergeAnalyzed(analyzed)
	merged := e.project
	e.mu.Unlock()

	e.syncRoot(merged)
	return merged
}

// syncRoot refreshes the root node card after a context change.
func (e *Engine) syncRoot(project domain.ProjectContext) {
	if root, ok := e.store.Root(); ok {
		e.store.UpdateNode(root.ID, func(n *domain.Node) {
			n.Title = project.ProductName
			n.Description = project.ProductDescription
		})
	}
}

// Promote clones a creative into the scaling stage. The clone starts at
// the vault origin with no parent; the original stays visible as a ghost.
func (e *Engine) Promote(nodeID string) (domain.Node, error) {
	node, ok := e.store.Node(nodeID)
	if !ok {
		return domain.Node{}, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if node.Type != domain.NodeCreative {
		return domain.Node{}, fmt.Errorf("%w: promote requires a creative node, got %s", ErrWrongNodeType, node.Type)
	}

	clone := node
	clone.ID = nodeID + "-vault"
	clone.Stage = domain.StageScaling
	clone.ParentID = ""
	clone.X = 0
	clone.Y = 0

	e.store.AddNode(clone)
	e.store.UpdateNode(nodeID, func(n *domain.Node) { n.IsGhost = true })

	e.log.Info("creative promoted", zap.String("node", nodeID), zap.String("clone", clone.ID))
	return clone, nil
}

// MoveNode repositions a node on the canvas.
func (e *Engine) MoveNode(nodeID string, x, y float64) error {
	if !e.store.MoveNode(nodeID, x, y) {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	return nil
}
