package simulate

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/graph"
)

// Engine advances synthetic performance for active testing creatives. The
// rng is injected so runs can be reproduced under a fixed seed.
type Engine struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewEngine creates a simulation engine.
func NewEngine(rng *rand.Rand, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{rng: rng, log: log}
}

// Run advances every active testing creative by 24 simulated hours,
// regenerates its metrics, and applies the phase policy. It returns the
// ids of the nodes it touched.
func (e *Engine) Run(store *graph.Store) []string {
	creatives := store.ActiveCreatives()
	touched := make([]string, 0, len(creatives))

	for _, node := range creatives {
		result := e.step(node)
		store.UpdateNode(node.ID, func(n *domain.Node) {
			n.Metrics = &result.metrics
			n.AnalysisPhase = result.phase
			n.IsWinning = result.winning
			n.IsLosing = result.losing
			n.Insight = result.insight
		})
		touched = append(touched, node.ID)
	}

	e.log.Info("simulation pass complete", zap.Int("creatives", len(touched)))
	return touched
}

type stepResult struct {
	metrics domain.Metrics
	phase   domain.AnalysisPhase
	winning bool
	losing  bool
	insight string
}

// step computes one 24-hour advance for a single creative. A single
// variance draw feeds both ctr and roas so a lucky creative is lucky on
// both axes in the same pass.
func (e *Engine) step(node domain.Node) stepResult {
	var prevAge int
	var prevSpend float64
	if node.Metrics != nil {
		prevAge = node.Metrics.AgeHours
		prevSpend = node.Metrics.Spend
	}

	age := prevAge + 24
	phase := domain.PhaseForAge(age)

	var format domain.CreativeFormat
	if p, ok := node.Creative(); ok {
		format = p.Format
	}
	bench := BenchmarkFor(format)

	variance := 0.7 + e.rng.Float64()*0.6
	spend := prevSpend + float64(e.rng.Intn(50)+20)
	ctr := round2(bench.CTR * variance)

	ageFactor := 1.0
	if age > 72 {
		ageFactor = 1.1
	}
	if age > 300 {
		ageFactor = 0.8
	}
	roas := round2(bench.CVR * variance * ageFactor)
	cpa := math.Floor(30 / roas * variance)

	res := stepResult{
		metrics: domain.Metrics{
			AgeHours:    age,
			Spend:       spend,
			CPA:         cpa,
			ROAS:        roas,
			Impressions: spend * 40,
			CTR:         ctr,
		},
		phase: phase,
	}

	switch phase {
	case domain.Phase1:
		res.insight = "PHASE 1 (Learning): Volatility detected. Do not touch. 72-hour rule active."
	case domain.Phase2:
		if ctr < 0.8 {
			res.losing = true
			res.insight = "PHASE 2 (Health): CTR < 0.8%. Creative fatigue or boring hook. Kill."
		} else {
			res.insight = "PHASE 2 (Health): Healthy CTR. Monitoring backend conversion."
		}
	case domain.Phase3:
		switch {
		case roas > 2.0:
			res.winning = true
			res.insight = "PHASE 3 (Eval): Winner detected (ROAS > 2.0). Ready for Scale."
		case roas < 1.0:
			res.losing = true
			res.insight = "PHASE 3 (Eval): Unprofitable (ROAS < 1.0). Kill."
		default:
			res.insight = "PHASE 3 (Eval): Breakeven. Iterate Angle."
		}
	default:
		if roas > 2.0 {
			res.winning = true
		}
		res.insight = "PHASE 4 (Scale): Horizontal scaling recommended."
	}

	return res
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
