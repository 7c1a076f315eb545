package domain

// ProjectContext is the campaign-level configuration every generation call
// is grounded in. It lives for the session and is only changed through
// explicit updates or a context-analysis merge.
type ProjectContext struct {
	ProductName        string
	ProductDescription string
	TargetAudience     string
	LandingPageURL     string
	// ProductReferenceImage is raw image bytes used to anchor generated
	// visuals to the real product. Empty when no reference was uploaded.
	ProductReferenceImage []byte

	TargetCountry     string
	BrandVoice        string
	BrandVoiceOptions []string
	FunnelStage       FunnelStage

	Offer             string
	OfferOptions      []string
	MarketAwareness   MarketAwareness
	CopyFramework     CopyFramework
	BrandCopyExamples []string
}

// ProjectPatch carries a partial ProjectContext update. Nil fields are
// left untouched.
type ProjectPatch struct {
	ProductName        *string
	ProductDescription *string
	TargetAudience     *string
	TargetCountry      *string
	BrandVoice         *string
	FunnelStage        *FunnelStage
	Offer              *string
	MarketAwareness    *MarketAwareness
	CopyFramework      *CopyFramework
}

// Apply merges the patch into the context.
func (p ProjectPatch) Apply(ctx *ProjectContext) {
	if p.ProductName != nil {
		ctx.ProductName = *p.ProductName
	}
	if p.ProductDescription != nil {
		ctx.ProductDescription = *p.ProductDescription
	}
	if p.TargetAudience != nil {
		ctx.TargetAudience = *p.TargetAudience
	}
	if p.TargetCountry != nil {
		ctx.TargetCountry = *p.TargetCountry
	}
	if p.BrandVoice != nil {
		ctx.BrandVoice = *p.BrandVoice
	}
	if p.FunnelStage != nil {
		ctx.FunnelStage = *p.FunnelStage
	}
	if p.Offer != nil {
		ctx.Offer = *p.Offer
	}
	if p.MarketAwareness != nil {
		ctx.MarketAwareness = *p.MarketAwareness
	}
	if p.CopyFramework != nil {
		ctx.CopyFramework = *p.CopyFramework
	}
}

// MergeAnalyzed folds a context-analysis result into the existing context.
// Only non-empty analyzed fields win; option lists and the reference image
// are preserved.
func (c *ProjectContext) MergeAnalyzed(analyzed ProjectContext) {
	if analyzed.ProductName != "" {
		c.ProductName = analyzed.ProductName
	}
	if analyzed.ProductDescription != "" {
		c.ProductDescription = analyzed.ProductDescription
	}
	if analyzed.TargetAudience != "" {
		c.TargetAudience = analyzed.TargetAudience
	}
	if analyzed.TargetCountry != "" {
		c.TargetCountry = analyzed.TargetCountry
	}
	if analyzed.BrandVoice != "" {
		c.BrandVoice = analyzed.BrandVoice
	}
	if analyzed.Offer != "" {
		c.Offer = analyzed.Offer
	}
}

// DefaultProject is the example campaign a fresh session starts with.
func DefaultProject() ProjectContext {
	return ProjectContext{
		ProductName:        "Zenith Focus Gummies",
		ProductDescription: "Nootropic gummies for focus and memory without the caffeine crash.",
		TargetAudience:     "Students, Programmers, and Creatives.",
		TargetCountry:      "USA",
		BrandVoice:         "Witty, Smart, but Approachable",
		BrandVoiceOptions: []string{
			"Witty, Smart, but Approachable",
			"Professional & Scientific",
			"Gen-Z & Meme-Friendly",
			"Minimalist & Zen",
			"High-Energy & Aggressive",
		},
		FunnelStage:     FunnelTop,
		MarketAwareness: AwarenessProblemAware,
		CopyFramework:   FrameworkPAS,
		Offer:           "Buy 2 Get 1 Free",
		OfferOptions: []string{
			"Buy 2 Get 1 Free",
			"50% Off First Order",
			"Free Shipping Worldwide",
			"Bundle & Save 30%",
			"$10 Welcome Coupon",
		},
	}
}
