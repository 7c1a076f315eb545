package domain

// Persona is a structured audience avatar returned by persona discovery.
type Persona struct {
	Name       string `json:"name"`
	Profile    string `json:"profile"`
	Motivation string `json:"motivation"`
	DeepFear   string `json:"deepFear"`
}

// Angle is a candidate marketing insight derived from a persona's motivation.
type Angle struct {
	Headline             string `json:"headline"`
	PainPoint            string `json:"painPoint"`
	PsychologicalTrigger string `json:"psychologicalTrigger"`
	TestingTier          string `json:"testingTier"`
	Hook                 string `json:"hook"`
}

// StoryOption is a raw "unaware" pain story in forum-post register.
type StoryOption struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Narrative      string `json:"narrative"`
	EmotionalTheme string `json:"emotionalTheme"`
}

// BigIdeaOption is a reframing hypothesis that shifts the audience's belief
// about their problem.
type BigIdeaOption struct {
	ID           string `json:"id"`
	Headline     string `json:"headline"`
	Concept      string `json:"concept"`
	TargetBelief string `json:"targetBelief"`
}

// MechanismOption pairs the unique mechanism of problem (why everything else
// failed) with the unique mechanism of solution (why this works).
type MechanismOption struct {
	ID               string `json:"id"`
	UMP              string `json:"ump"`
	UMS              string `json:"ums"`
	ScientificPseudo string `json:"scientificPseudo"`
}

// CreativeConcept is the art-director output that the copy and image steps
// are both seeded from.
type CreativeConcept struct {
	VisualScene         string `json:"visualScene"`
	VisualStyle         string `json:"visualStyle"`
	TechnicalPrompt     string `json:"technicalPrompt"`
	CopyAngle           string `json:"copyAngle"`
	Rationale           string `json:"rationale"`
	CongruenceRationale string `json:"congruenceRationale"`
	HookComponent       string `json:"hookComponent"`
	BodyComponent       string `json:"bodyComponent"`
	CTAComponent        string `json:"ctaComponent"`
}

// AdCopy is the rendered text of one creative.
type AdCopy struct {
	PrimaryText     string `json:"primaryText"`
	Headline        string `json:"headline"`
	CTA             string `json:"cta"`
	ComplianceNotes string `json:"complianceNotes"`
}

// Metrics is the performance snapshot the simulation attaches to a creative.
// It is replaced wholesale on every simulation pass; AgeHours only grows.
type Metrics struct {
	AgeHours    int
	Spend       float64
	CPA         float64
	ROAS        float64
	Impressions float64
	CTR         float64
}
