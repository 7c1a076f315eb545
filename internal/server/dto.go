package server

import "github.com/alexanderramin/admind/internal/domain"

// nodeDTO is the wire shape of a graph node. Payload fields are flattened
// the way canvas clients consume them.
type nodeDTO struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	ParentID    string  `json:"parentId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Stage       string  `json:"stage"`
	IsLoading   bool    `json:"isLoading,omitempty"`
	IsGhost     bool    `json:"isGhost,omitempty"`

	Format         string          `json:"format,omitempty"`
	AdCopy         *domain.AdCopy  `json:"adCopy,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	CarouselImages []string        `json:"carouselImages,omitempty"`
	AdScript       string          `json:"adScript,omitempty"`
	PersonaName    string          `json:"personaName,omitempty"`
	Angle          string          `json:"angle,omitempty"`
	Metrics        *domain.Metrics `json:"metrics,omitempty"`

	AnalysisPhase    string  `json:"analysisPhase,omitempty"`
	IsWinning        bool    `json:"isWinning,omitempty"`
	IsLosing         bool    `json:"isLosing,omitempty"`
	Insight          string  `json:"aiInsight,omitempty"`
	TestingTier      string  `json:"testingTier,omitempty"`
	VariableIsolated string  `json:"variableIsolated,omitempty"`
	InputTokens      int     `json:"inputTokens,omitempty"`
	OutputTokens     int     `json:"outputTokens,omitempty"`
	EstimatedCost    float64 `json:"estimatedCost,omitempty"`
}

type edgeDTO struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

func toNodeDTO(n domain.Node) nodeDTO {
	dto := nodeDTO{
		ID:               n.ID,
		Type:             string(n.Type),
		ParentID:         n.ParentID,
		Title:            n.Title,
		Description:      n.Description,
		X:                n.X,
		Y:                n.Y,
		Stage:            string(n.Stage),
		IsLoading:        n.IsLoading,
		IsGhost:          n.IsGhost,
		Metrics:          n.Metrics,
		AnalysisPhase:    string(n.AnalysisPhase),
		IsWinning:        n.IsWinning,
		IsLosing:         n.IsLosing,
		Insight:          n.Insight,
		TestingTier:      string(n.TestingTier),
		VariableIsolated: n.VariableIsolated,
		InputTokens:      n.InputTokens,
		OutputTokens:     n.OutputTokens,
		EstimatedCost:    n.EstimatedCost,
	}
	if p, ok := n.Creative(); ok {
		dto.Format = string(p.Format)
		dto.ImageURL = p.ImageURL
		dto.CarouselImages = p.CarouselImages
		dto.AdScript = p.AdScript
		dto.PersonaName = p.PersonaName
		dto.Angle = p.Angle
		if p.Copy != (domain.AdCopy{}) {
			adCopy := p.Copy
			dto.AdCopy = &adCopy
		}
	}
	return dto
}

func toNodeDTOs(nodes []domain.Node) []nodeDTO {
	out := make([]nodeDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeDTO(n))
	}
	return out
}

func toEdgeDTOs(edges []domain.Edge) []edgeDTO {
	out := make([]edgeDTO, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeDTO{ID: e.ID, Source: e.Source, Target: e.Target})
	}
	return out
}

// projectDTO is the wire shape of the project context. The reference image
// travels separately as an upload.
type projectDTO struct {
	ProductName        string   `json:"productName"`
	ProductDescription string   `json:"productDescription"`
	TargetAudience     string   `json:"targetAudience"`
	LandingPageURL     string   `json:"landingPageUrl,omitempty"`
	TargetCountry      string   `json:"targetCountry"`
	BrandVoice         string   `json:"brandVoice"`
	BrandVoiceOptions  []string `json:"brandVoiceOptions,omitempty"`
	FunnelStage        string   `json:"funnelStage"`
	Offer              string   `json:"offer"`
	OfferOptions       []string `json:"offerOptions,omitempty"`
	MarketAwareness    string   `json:"marketAwareness"`
	CopyFramework      string   `json:"copyFramework"`
	HasReferenceImage  bool     `json:"hasReferenceImage"`
}

func toProjectDTO(p domain.ProjectContext) projectDTO {
	return projectDTO{
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		TargetAudience:     p.TargetAudience,
		LandingPageURL:     p.LandingPageURL,
		TargetCountry:      p.TargetCountry,
		BrandVoice:         p.BrandVoice,
		BrandVoiceOptions:  p.BrandVoiceOptions,
		FunnelStage:        string(p.FunnelStage),
		Offer:              p.Offer,
		OfferOptions:       p.OfferOptions,
		MarketAwareness:    string(p.MarketAwareness),
		CopyFramework:      string(p.CopyFramework),
		HasReferenceImage:  len(p.ProductReferenceImage) > 0,
	}
}
