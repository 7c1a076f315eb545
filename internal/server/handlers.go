package server

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listFormats(c *gin.Context) {
	groups := make([]gin.H, 0, len(domain.FormatGroups))
	for _, g := range domain.FormatGroups {
		formats := make([]string, 0, len(g.Formats))
		for _, f := range g.Formats {
			formats = append(formats, string(f))
		}
		groups = append(groups, gin.H{"name": g.Name, "formats": formats})
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (s *Server) createSession(c *gin.Context) {
	sess := s.newSession(s.cfg.SeedProject())
	nodes, edges := sess.engine.Store().TestingView()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.id,
		"project":   toProjectDTO(sess.engine.Project()),
		"nodes":     toNodeDTOs(nodes),
		"edges":     toEdgeDTOs(edges),
	})
}

func (s *Server) getGraph(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	switch c.DefaultQuery("view", "lab") {
	case "vault":
		c.JSON(http.StatusOK, gin.H{
			"nodes": toNodeDTOs(sess.engine.Store().ScalingView()),
			"edges": []edgeDTO{},
		})
	default:
		nodes, edges := sess.engine.Store().TestingView()
		c.JSON(http.StatusOK, gin.H{
			"nodes": toNodeDTOs(nodes),
			"edges": toEdgeDTOs(edges),
		})
	}
}

func (s *Server) getProject(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(sess.engine.Project()))
}

type projectPatchRequest struct {
	ProductName        *string `json:"productName"`
	ProductDescription *string `json:"productDescription"`
	TargetAudience     *string `json:"targetAudience"`
	TargetCountry      *string `json:"targetCountry"`
	BrandVoice         *string `json:"brandVoice"`
	FunnelStage        *string `json:"funnelStage"`
	Offer              *string `json:"offer"`
	MarketAwareness    *string `json:"marketAwareness"`
	CopyFramework      *string `json:"copyFramework"`
}

func (s *Server) patchProject(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req projectPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.ProjectPatch{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		TargetAudience:     req.TargetAudience,
		TargetCountry:      req.TargetCountry,
		BrandVoice:         req.BrandVoice,
		Offer:              req.Offer,
	}
	if req.FunnelStage != nil {
		v := domain.FunnelStage(*req.FunnelStage)
		patch.FunnelStage = &v
	}
	if req.MarketAwareness != nil {
		v := domain.MarketAwareness(*req.MarketAwareness)
		patch.MarketAwareness = &v
	}
	if req.CopyFramework != nil {
		v := domain.CopyFramework(*req.CopyFramework)
		patch.CopyFramework = &v
	}

	updated := sess.engine.UpdateProject(patch)
	c.JSON(http.StatusOK, toProjectDTO(updated))
}

func (s *Server) analyzeLandingPage(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Markdown string `json:"markdown" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "markdown is required"})
		return
	}

	merged, err := sess.engine.AnalyzeLandingPage(c.Request.Context(), req.Markdown)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(merged))
}

func (s *Server) analyzeProductImage(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		Image string `json:"image" binding:"required"` // base64 encoded
		MIME  string `json:"mime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image must be base64 encoded"})
		return
	}

	merged, err := sess.engine.AnalyzeProductImage(c.Request.Context(), data, req.MIME)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toProjectDTO(merged))
}

type actionRequest struct {
	Action      string   `json:"action" binding:"required"`
	Formats     []string `json:"formats"`
	AspectRatio string   `json:"aspectRatio"`
}

// nodeAction dispatches a generation trigger. Generation runs in the
// background; clients poll the graph and watch isLoading flags.
func (s *Server) nodeAction(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}

	nodeID := c.Param("nodeId")
	node, found := sess.engine.Store().Node(nodeID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "node not found"})
		return
	}
	if node.IsLoading {
		c.JSON(http.StatusConflict, gin.H{"error": "node is busy generating"})
		return
	}

	switch req.Action {
	case "promote_creative":
		clone, err := sess.engine.Promote(nodeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toNodeDTO(clone))
		return

	case "generate_creatives":
		if len(req.Formats) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "formats are required"})
			return
		}
		formats := make([]domain.CreativeFormat, 0, len(req.Formats))
		for _, f := range req.Formats {
			formats = append(formats, domain.CreativeFormat(f))
		}
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.GenerateCreatives(ctx, nodeID, formats)
			return err
		})

	case "generate_ad_script":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.GenerateAdScript(ctx, nodeID)
			return err
		})

	case "regenerate":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			return sess.engine.Regenerate(ctx, nodeID, req.AspectRatio)
		})

	case "expand_personas":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.ExpandPersonas(ctx, nodeID)
			return err
		})

	case "expand_angles":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.ExpandAngles(ctx, nodeID)
			return err
		})

	case "start_story_flow":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.StartStoryFlow(ctx, nodeID)
			return err
		})

	case "generate_big_ideas":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.GenerateBigIdeas(ctx, nodeID)
			return err
		})

	case "generate_mechanisms":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.GenerateMechanisms(ctx, nodeID)
			return err
		})

	case "generate_hooks":
		s.runAsync(sess, req.Action, nodeID, func(ctx context.Context) error {
			_, err := sess.engine.GenerateHooks(ctx, nodeID)
			return err
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action: " + req.Action})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "started", "nodeId": nodeID})
}

func (s *Server) runAsync(sess *session, action, nodeID string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(context.Background()); err != nil {
			s.log.Warn("background action failed",
				zap.String("session", sess.id),
				zap.String("action", action),
				zap.String("node", nodeID),
				zap.Error(err))
		}
	}()
}

func (s *Server) moveNode(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := sess.engine.MoveNode(c.Param("nodeId"), req.X, req.Y); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "node not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) runSimulation(c *gin.Context) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	touched := sess.sim.Run(sess.engine.Store())
	nodes, edges := sess.engine.Store().TestingView()
	c.JSON(http.StatusOK, gin.H{
		"updated": touched,
		"nodes":   toNodeDTOs(nodes),
		"edges":   toEdgeDTOs(edges),
	})
}
