// Package prompt builds the prompts and response schemas for every
// generation task: audience strategy, creative direction, copywriting,
// compliance, and image synthesis. Builders are pure; randomness used for
// visual variety is injected by the caller.
package prompt

import "github.com/google/generative-ai-go/genai"

// PersonasSchema constrains persona discovery output.
var PersonasSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":       {Type: genai.TypeString},
			"profile":    {Type: genai.TypeString, Description: "Demographics + Identity Statement"},
			"motivation": {Type: genai.TypeString, Description: "The 'Gap' between current self and desired self."},
			"deepFear":   {Type: genai.TypeString, Description: "What are they afraid of losing?"},
		},
		Required: []string{"name", "profile", "motivation"},
	},
}

// AnglesSchema constrains angle generation output.
var AnglesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline":             {Type: genai.TypeString, Description: "The core Hook/Angle name"},
			"painPoint":            {Type: genai.TypeString, Description: "The specific problem or insight"},
			"psychologicalTrigger": {Type: genai.TypeString, Description: "The principle used (e.g. Loss Aversion)"},
			"testingTier":          {Type: genai.TypeString, Description: "TIER 1, TIER 2, or TIER 3"},
			"hook":                 {Type: genai.TypeString, Description: "The opening line or concept"},
		},
		Required: []string{"headline", "painPoint", "psychologicalTrigger", "testingTier"},
	},
}

// StoriesSchema constrains unaware-story research output.
var StoriesSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":             {Type: genai.TypeString},
			"title":          {Type: genai.TypeString},
			"narrative":      {Type: genai.TypeString},
			"emotionalTheme": {Type: genai.TypeString},
		},
		Required: []string{"title", "narrative", "emotionalTheme"},
	},
}

// BigIdeasSchema constrains big-idea generation output.
var BigIdeasSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":           {Type: genai.TypeString},
			"headline":     {Type: genai.TypeString},
			"concept":      {Type: genai.TypeString},
			"targetBelief": {Type: genai.TypeString},
		},
		Required: []string{"headline", "concept", "targetBelief"},
	},
}

// MechanismsSchema constrains mechanism generation output.
var MechanismsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":               {Type: genai.TypeString},
			"ump":              {Type: genai.TypeString},
			"ums":              {Type: genai.TypeString},
			"scientificPseudo": {Type: genai.TypeString},
		},
		Required: []string{"ump", "ums", "scientificPseudo"},
	},
}

// HooksSchema constrains hook generation to a flat string array.
var HooksSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// ConceptSchema constrains creative-concept output.
var ConceptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"visualScene":         {Type: genai.TypeString, Description: "Director's Note"},
		"visualStyle":         {Type: genai.TypeString, Description: "Aesthetic vibe"},
		"technicalPrompt":     {Type: genai.TypeString, Description: "Strict prompt for Image Gen"},
		"copyAngle":           {Type: genai.TypeString, Description: "Strategy for the copywriter"},
		"rationale":           {Type: genai.TypeString, Description: "Strategic Hypothesis"},
		"congruenceRationale": {Type: genai.TypeString, Description: "Why the Image proves the Text (The Jeans Rule)"},
		"hookComponent":       {Type: genai.TypeString, Description: "The Visual Hook element"},
		"bodyComponent":       {Type: genai.TypeString, Description: "The Core Argument element"},
		"ctaComponent":        {Type: genai.TypeString, Description: "The Call to Action element"},
	},
	Required: []string{"visualScene", "visualStyle", "technicalPrompt", "copyAngle", "rationale", "congruenceRationale"},
}

// CopySchema constrains ad-copy output.
var CopySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"primaryText": {Type: genai.TypeString},
		"headline":    {Type: genai.TypeString},
		"cta":         {Type: genai.TypeString},
	},
	Required: []string{"primaryText", "headline", "cta"},
}

// LandingPageSchema constrains landing-page context analysis output.
var LandingPageSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"productName":        {Type: genai.TypeString},
		"productDescription": {Type: genai.TypeString, Description: "A punchy, benefit-driven 1-sentence value prop."},
		"targetAudience":     {Type: genai.TypeString, Description: "Specific demographics and psychographics."},
		"targetCountry":      {Type: genai.TypeString},
		"brandVoice":         {Type: genai.TypeString},
		"offer":              {Type: genai.TypeString, Description: "The primary hook or deal found on the page."},
	},
	Required: []string{"productName", "productDescription", "targetAudience"},
}

// ProductImageSchema constrains product-image context analysis output.
var ProductImageSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"productName":        {Type: genai.TypeString},
		"productDescription": {Type: genai.TypeString},
		"targetAudience":     {Type: genai.TypeString},
		"targetCountry":      {Type: genai.TypeString},
	},
	Required: []string{"productName", "productDescription"},
}
