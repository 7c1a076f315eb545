package orchestrator

import (
	"context"
	"time"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/graph"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/prompt"
	"go.uber.org/zap"
)

// fakeStrategy returns fixed strategy outputs and records call counts.
type fakeStrategy struct {
	personas []domain.Persona
	angles   []domain.Angle
	stories  []domain.StoryOption
	ideas    []domain.BigIdeaOption
	mechs    []domain.MechanismOption
	hooks    []string
	letter   string
	usage    llm.Usage
	err      error

	salesLetterCalls int
}

func (f *fakeStrategy) Personas(context.Context, domain.ProjectContext) ([]domain.Persona, llm.Usage, error) {
	return f.personas, f.usage, f.err
}

func (f *fakeStrategy) Angles(context.Context, domain.ProjectContext, string, string) ([]domain.Angle, llm.Usage, error) {
	return f.angles, f.usage, f.err
}

func (f *fakeStrategy) Stories(context.Context, domain.ProjectContext) ([]domain.StoryOption, llm.Usage, error) {
	return f.stories, f.usage, f.err
}

func (f *fakeStrategy) BigIdeas(context.Context, domain.ProjectContext, domain.StoryOption) ([]domain.BigIdeaOption, llm.Usage, error) {
	return f.ideas, f.usage, f.err
}

func (f *fakeStrategy) Mechanisms(context.Context, domain.ProjectContext, domain.BigIdeaOption) ([]domain.MechanismOption, llm.Usage, error) {
	return f.mechs, f.usage, f.err
}

func (f *fakeStrategy) Hooks(context.Context, domain.BigIdeaOption, domain.MechanismOption) ([]string, llm.Usage, error) {
	return f.hooks, f.usage, f.err
}

func (f *fakeStrategy) SalesLetter(context.Context, domain.ProjectContext, domain.StoryOption, domain.BigIdeaOption, domain.MechanismOption, string) (string, llm.Usage, error) {
	f.salesLetterCalls++
	return f.letter, f.usage, f.err
}

// fakeCreative returns a fixed concept and copy; set failFormat to make the
// concept step fail for one format only.
type fakeCreative struct {
	concept    domain.CreativeConcept
	copyOut    domain.AdCopy
	compliance string
	script     string
	usage      llm.Usage
	failFormat domain.CreativeFormat
	err        error

	conceptAngles []string
	copiedPersona []string
}

func (f *fakeCreative) Concept(_ context.Context, _ domain.ProjectContext, _ string, angle string, format domain.CreativeFormat) (domain.CreativeConcept, llm.Usage, error) {
	f.conceptAngles = append(f.conceptAngles, angle)
	if f.err != nil {
		return domain.CreativeConcept{}, llm.Usage{}, f.err
	}
	if f.failFormat != "" && format == f.failFormat {
		return domain.CreativeConcept{}, llm.Usage{}, llm.ErrUnavailable
	}
	return f.concept, f.usage, nil
}

func (f *fakeCreative) Copy(_ context.Context, _ domain.ProjectContext, persona domain.Persona, _ domain.CreativeConcept) (domain.AdCopy, llm.Usage, error) {
	f.copiedPersona = append(f.copiedPersona, persona.Name)
	return f.copyOut, f.usage, f.err
}

func (f *fakeCreative) Compliance(context.Context, domain.AdCopy) (string, llm.Usage, error) {
	if f.compliance == "" {
		return "SAFE", f.usage, f.err
	}
	return f.compliance, f.usage, f.err
}

func (f *fakeCreative) AdScript(context.Context, domain.ProjectContext, string, string) (string, llm.Usage, error) {
	return f.script, f.usage, f.err
}

// fakeImage returns a fixed data URL; empty url models safety filtering.
type fakeImage struct {
	url      string
	carousel []string
	usage    llm.Usage
	err      error

	aspectRatios  []string
	carouselCalls int
}

func (f *fakeImage) CreativeImage(_ context.Context, _ prompt.ImageParams, aspectRatio string) (string, llm.Usage, error) {
	f.aspectRatios = append(f.aspectRatios, aspectRatio)
	if f.err != nil {
		return "", llm.Usage{}, f.err
	}
	return f.url, f.usage, nil
}

func (f *fakeImage) CarouselImages(context.Context, prompt.ImageParams) ([]string, llm.Usage, error) {
	f.carouselCalls++
	return f.carousel, f.usage, f.err
}

type fakeContext struct {
	analyzed domain.ProjectContext
	usage    llm.Usage
	err      error
}

func (f *fakeContext) AnalyzeLandingPage(context.Context, string) (domain.ProjectContext, llm.Usage, error) {
	return f.analyzed, f.usage, f.err
}

func (f *fakeContext) AnalyzeProductImage(context.Context, []byte, string) (domain.ProjectContext, llm.Usage, error) {
	return f.analyzed, f.usage, f.err
}

type engineFixture struct {
	engine   *Engine
	store    *graph.Store
	strategy *fakeStrategy
	creative *fakeCreative
	image    *fakeImage
	analyze  *fakeContext
}

func newFixture(opts ...Option) *engineFixture {
	strategy := &fakeStrategy{
		personas: []domain.Persona{
			{Name: "The Skeptic", Profile: "Researches everything", Motivation: "Fear of being fooled"},
			{Name: "The Aspirer", Profile: "Chases status", Motivation: "Wants admiration"},
			{Name: "The Solver", Profile: "Needs it fixed now", Motivation: "Craves certainty"},
		},
		angles: []domain.Angle{
			{Headline: "Your focus has a deadline", PainPoint: "Missed deadlines", TestingTier: "TIER 1 (Concept Isolation)"},
			{Headline: "Caffeine is lying to you", PainPoint: "Afternoon crashes", TestingTier: "TIER 2 (Persona Isolation)"},
		},
		stories: []domain.StoryOption{
			{ID: "story-0", Title: "I lost my edge at 29", Narrative: "Used to ship fast.", EmotionalTheme: "Shame"},
		},
		ideas: []domain.BigIdeaOption{
			{ID: "idea-0", Headline: "It's dopamine debt", Concept: "Blame neurochemistry", TargetBelief: "I'm lazy"},
		},
		mechs: []domain.MechanismOption{
			{ID: "mech-0", UMP: "Caffeine spikes cortisol", UMS: "Slow-release L-theanine", ScientificPseudo: "The Reset Protocol"},
		},
		hooks:  []string{"What if focus was a nutrient?", "Your 2pm crash is a symptom"},
		letter: "I thought I was just lazy. Turns out it was dopamine debt all along...",
		usage:  llm.Usage{InputTokens: 300, OutputTokens: 150},
	}
	creative := &fakeCreative{
		concept: domain.CreativeConcept{
			VisualScene:     "A programmer at a tidy desk",
			VisualStyle:     "Cinematic lighting",
			TechnicalPrompt: "Medium shot of a focused programmer, warm window light",
			Rationale:       "Tier 1 concept test",
		},
		copyOut: domain.AdCopy{Headline: "Bye-Bye Brain Fog", PrimaryText: "Four cups of coffee and still foggy? Same.", CTA: "Shop Now"},
		usage:   llm.Usage{InputTokens: 100, OutputTokens: 50},
	}
	image := &fakeImage{
		url:      "data:image/png;base64,aW1n",
		carousel: []string{"data:image/png;base64,czE=", "data:image/png;base64,czI=", "data:image/png;base64,czM="},
		usage:    llm.Usage{InputTokens: 20, OutputTokens: 10},
	}
	analyze := &fakeContext{}

	store := graph.NewSessionStore(domain.DefaultProject())
	base := []Option{
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }),
		WithSleep(func(context.Context, time.Duration) error { return nil }),
	}
	eng := NewEngine(store, domain.DefaultProject(), strategy, creative, image, analyze,
		zap.NewNop(), append(base, opts...)...)

	return &engineFixture{engine: eng, store: store, strategy: strategy, creative: creative, image: image, analyze: analyze}
}
