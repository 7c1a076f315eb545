package domain

type NodeType string

const (
	NodeRoot      NodeType = "ROOT"
	NodePersona   NodeType = "PERSONA"
	NodeAngle     NodeType = "ANGLE"
	NodeCreative  NodeType = "CREATIVE"
	NodeStory     NodeType = "STORY_NODE"
	NodeBigIdea   NodeType = "BIG_IDEA_NODE"
	NodeMechanism NodeType = "MECHANISM_NODE"
	NodeHook      NodeType = "HOOK_NODE"
	NodeSales     NodeType = "SALES_LETTER"
)

type CampaignStage string

const (
	StageTesting CampaignStage = "TESTING"
	StageScaling CampaignStage = "SCALING"
)

type FunnelStage string

const (
	FunnelTop    FunnelStage = "Top of Funnel (Cold Awareness)"
	FunnelMiddle FunnelStage = "Middle of Funnel (Consideration)"
	FunnelBottom FunnelStage = "Bottom of Funnel (Retargeting/Conversion)"
)

// MarketAwareness is the Eugene Schwartz awareness ladder, ordered from
// least to most informed.
type MarketAwareness string

const (
	AwarenessUnaware       MarketAwareness = "Unaware (No knowledge of problem)"
	AwarenessProblemAware  MarketAwareness = "Problem Aware (Knows problem, seeks solution)"
	AwarenessSolutionAware MarketAwareness = "Solution Aware (Knows solutions, comparing options)"
	AwarenessProductAware  MarketAwareness = "Product Aware (Knows you, needs a deal)"
	AwarenessMostAware     MarketAwareness = "Most Aware (Ready to buy, needs urgency)"
)

type CopyFramework string

const (
	FrameworkPAS   CopyFramework = "PAS (Problem, Agitation, Solution)"
	FrameworkAIDA  CopyFramework = "AIDA (Attention, Interest, Desire, Action)"
	FrameworkBAB   CopyFramework = "BAB (Before, After, Bridge)"
	FrameworkFAB   CopyFramework = "FAB (Features, Advantages, Benefits)"
	FrameworkStory CopyFramework = "Storytelling / Hero's Journey"
)

type TestingTier string

const (
	Tier1 TestingTier = "TIER 1: Concept Isolation (High Budget)"
	Tier2 TestingTier = "TIER 2: Persona Isolation (Mid Budget)"
	Tier3 TestingTier = "TIER 3: Sprint Isolation (Low Budget)"
)

// AnalysisPhase buckets a creative's age into the four analysis windows.
type AnalysisPhase string

const (
	Phase1 AnalysisPhase = "PHASE 1: Launch & Learning (0-72h)"
	Phase2 AnalysisPhase = "PHASE 2: Health Check (Day 4-7)"
	Phase3 AnalysisPhase = "PHASE 3: Performance Eval (Day 8-14)"
	Phase4 AnalysisPhase = "PHASE 4: Scaling Decision (Day 15+)"
)

// PhaseForAge classifies an age in hours into its analysis phase.
// Thresholds are inclusive on the lower phase: 72h is still PHASE 1.
func PhaseForAge(ageHours int) AnalysisPhase {
	switch {
	case ageHours <= 72:
		return Phase1
	case ageHours <= 168:
		return Phase2
	case ageHours <= 336:
		return Phase3
	default:
		return Phase4
	}
}
