package domain

import "fmt"

// Payload is the tagged union of per-node-type content. Each node type
// carries exactly the fields valid at its depth: Megaprompt descendants
// embed every ancestor payload so a child node is self-contained.
type Payload interface {
	NodeType() NodeType
}

type RootPayload struct{}

func (RootPayload) NodeType() NodeType { return NodeRoot }

type PersonaPayload struct {
	Persona Persona
}

func (PersonaPayload) NodeType() NodeType { return NodePersona }

type AnglePayload struct {
	Angle       Angle
	PersonaName string
}

func (AnglePayload) NodeType() NodeType { return NodeAngle }

type StoryPayload struct {
	Story StoryOption
}

func (StoryPayload) NodeType() NodeType { return NodeStory }

type BigIdeaPayload struct {
	Story StoryOption
	Idea  BigIdeaOption
}

func (BigIdeaPayload) NodeType() NodeType { return NodeBigIdea }

type MechanismPayload struct {
	Story     StoryOption
	Idea      BigIdeaOption
	Mechanism MechanismOption
}

func (MechanismPayload) NodeType() NodeType { return NodeMechanism }

type HookPayload struct {
	Story     StoryOption
	Idea      BigIdeaOption
	Mechanism MechanismOption
	Hook      string
}

func (HookPayload) NodeType() NodeType { return NodeHook }

type CreativePayload struct {
	PersonaName    string
	Angle          string
	Format         CreativeFormat
	Concept        CreativeConcept
	Copy           AdCopy
	ImageURL       string
	CarouselImages []string
	AdScript       string
	SalesLetter    string
}

func (CreativePayload) NodeType() NodeType { return NodeCreative }

// Node is the fundamental graph entity. Nodes are never deleted within a
// session; supersession is expressed through IsGhost.
type Node struct {
	ID       string
	Type     NodeType
	ParentID string // empty for the root and promoted clones

	Title       string
	Description string
	Payload     Payload

	Stage     CampaignStage
	IsLoading bool
	IsGhost   bool

	// Usage and cost accounting. Batched calls are amortized across the
	// siblings they produced, so these are estimates, not measurements.
	InputTokens   int
	OutputTokens  int
	EstimatedCost float64

	// Performance fields, populated only by the simulation.
	Metrics          *Metrics
	AnalysisPhase    AnalysisPhase
	IsWinning        bool
	IsLosing         bool
	Insight          string
	TestingTier      TestingTier
	VariableIsolated string

	// Layout coordinates, assigned at creation and changed only by an
	// explicit user move.
	X float64
	Y float64
}

// Creative returns the creative payload, or false for non-creative nodes.
func (n *Node) Creative() (CreativePayload, bool) {
	p, ok := n.Payload.(CreativePayload)
	return p, ok
}

// Validate checks that the payload variant matches the node type.
func (n *Node) Validate() error {
	if n.Payload == nil {
		return fmt.Errorf("node %s: missing payload", n.ID)
	}
	if got := n.Payload.NodeType(); got != n.Type {
		return fmt.Errorf("node %s: payload %s does not match type %s", n.ID, got, n.Type)
	}
	return nil
}

// Edge is a directed parent->child pair mirroring Node.ParentID for
// rendering and queries. Its ID is derived from the endpoint ids.
type Edge struct {
	ID     string
	Source string
	Target string
}

// NewEdge builds an edge with the derived "<source>-<target>" id.
func NewEdge(source, target string) Edge {
	return Edge{ID: source + "-" + target, Source: source, Target: target}
}
