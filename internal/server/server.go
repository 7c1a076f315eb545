// Package server exposes the campaign engine over HTTP. Each session owns
// an isolated graph and project context; generation actions run
// asynchronously and clients poll the graph for progress.
package server

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/config"
	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/graph"
	"github.com/alexanderramin/admind/internal/intelligence"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/orchestrator"
	"github.com/alexanderramin/admind/internal/simulate"
)

// session bundles everything scoped to one campaign map.
type session struct {
	id     string
	engine *orchestrator.Engine
	sim    *simulate.Engine
}

// Server holds the shared generation client and the live sessions.
type Server struct {
	cfg    *config.Config
	client llm.Client
	log    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*session

	// seed lets tests pin session randomness.
	seed func() int64
}

// NewServer creates a Server over a shared generation client.
func NewServer(cfg *config.Config, client llm.Client, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		client:   client,
		log:      log,
		sessions: make(map[string]*session),
		seed:     func() int64 { return time.Now().UnixNano() },
	}
}

// newSession builds a fresh session seeded from config. Image rendering
// runs on background goroutines while simulation passes are synchronous
// requests, so each gets its own rand source.
func (s *Server) newSession(project domain.ProjectContext) *session {
	store := graph.NewSessionStore(project)
	seed := s.seed()
	imageRNG := rand.New(rand.NewSource(seed))
	simRNG := rand.New(rand.NewSource(seed + 1))

	engine := orchestrator.NewEngine(
		store,
		project,
		intelligence.NewStrategyService(s.client),
		intelligence.NewCreativeService(s.client),
		intelligence.NewImageService(s.client, imageRNG),
		intelligence.NewContextService(s.client),
		s.log,
	)

	sess := &session{
		id:     uuid.NewString(),
		engine: engine,
		sim:    simulate.NewEngine(simRNG, s.log),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

func (s *Server) session(id string) (*session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SetupRouter registers all routes.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.health)
	r.GET("/formats", s.listFormats)

	r.POST("/sessions", s.createSession)
	r.GET("/sessions/:id/graph", s.getGraph)
	r.GET("/sessions/:id/project", s.getProject)
	r.PATCH("/sessions/:id/project", s.patchProject)
	r.POST("/sessions/:id/analyze/landing-page", s.analyzeLandingPage)
	r.POST("/sessions/:id/analyze/product-image", s.analyzeProductImage)
	r.POST("/sessions/:id/nodes/:nodeId/actions", s.nodeAction)
	r.POST("/sessions/:id/nodes/:nodeId/move", s.moveNode)
	r.POST("/sessions/:id/simulate", s.runSimulation)

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
