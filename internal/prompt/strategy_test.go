package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/admind/internal/domain"
)

func TestPersonas_IncludesProductAndCountry(t *testing.T) {
	got := Personas(domain.DefaultProject())

	assert.Contains(t, got, "Zenith Focus Gummies")
	assert.Contains(t, got, "Consumer Psychologist specializing in USA")
	assert.Contains(t, got, "The Skeptic / Logic Buyer")
}

func TestPersonas_EmptyCountryFallsBack(t *testing.T) {
	p := domain.DefaultProject()
	p.TargetCountry = ""
	got := Personas(p)

	assert.Contains(t, got, "specializing in the target market")
}

func TestAngles_CarriesPersonaAndTiers(t *testing.T) {
	got := Angles(domain.DefaultProject(), "The Skeptic", "Fear of wasting money")

	assert.Contains(t, got, "Andromeda Testing Playbook")
	assert.Contains(t, got, "The Skeptic")
	assert.Contains(t, got, "Fear of wasting money")
	assert.Contains(t, got, "TIER 1 (Concept Isolation)")
	assert.Contains(t, got, "Top 3 High-Potential Insights")
}

func TestStories_ForbidsProductMention(t *testing.T) {
	got := Stories(domain.DefaultProject())

	assert.Contains(t, got, "Do NOT mention the product")
	assert.Contains(t, got, "Bleeding Neck")
	assert.Contains(t, got, "Students, Programmers, and Creatives.")
}

func TestBigIdeas_BridgesStoryToProduct(t *testing.T) {
	story := domain.StoryOption{Title: "I can't focus anymore", Narrative: "Every day is a fog.", EmotionalTheme: "Exhaustion"}
	got := BigIdeas(domain.DefaultProject(), story)

	assert.Contains(t, got, `"I can't focus anymore"`)
	assert.Contains(t, got, "Every day is a fog.")
	assert.Contains(t, got, "What old belief are we destroying?")
}

func TestMechanisms_UsesIdeaHeadline(t *testing.T) {
	idea := domain.BigIdeaOption{Headline: "It's not willpower, it's dopamine debt"}
	got := Mechanisms(domain.DefaultProject(), idea)

	assert.Contains(t, got, "dopamine debt")
	assert.Contains(t, got, "UMP (Unique Mechanism of Problem)")
	assert.Contains(t, got, "scientificPseudo")
}

func TestHooks_CombinesIdeaAndMechanism(t *testing.T) {
	idea := domain.BigIdeaOption{Headline: "Dopamine debt"}
	mech := domain.MechanismOption{ScientificPseudo: "The Reset Protocol", UMS: "Slow-release L-theanine"}
	got := Hooks(idea, mech)

	assert.Contains(t, got, "Dopamine debt")
	assert.Contains(t, got, "The Reset Protocol")
	assert.Contains(t, got, "JSON string array")
}

func TestSalesLetter_EnglishByDefault(t *testing.T) {
	got := SalesLetter(domain.DefaultProject(),
		domain.StoryOption{Title: "Lost my edge", Narrative: "Burned out at 29."},
		domain.BigIdeaOption{Headline: "Dopamine debt"},
		domain.MechanismOption{UMP: "Caffeine spikes", UMS: "Slow release"},
		"What if focus was a nutrient?")

	assert.Contains(t, got, "LANGUAGE: English (Conversational, Engaging)")
	assert.Contains(t, got, "The 8-Section System")
	assert.Contains(t, got, `"What if focus was a nutrient?"`)
	assert.Contains(t, got, "Buy 2 Get 1 Free")
}

func TestSalesLetter_IndonesiaSwitchesLanguage(t *testing.T) {
	p := domain.DefaultProject()
	p.TargetCountry = "Indonesia"
	got := SalesLetter(p, domain.StoryOption{}, domain.BigIdeaOption{}, domain.MechanismOption{}, "hook")

	assert.Contains(t, got, "Bahasa Indonesia (Conversational, Engaging, No Formal Language)")
}

func TestCopy_IndonesiaUsesBahasaMarketing(t *testing.T) {
	p := domain.DefaultProject()
	p.TargetCountry = "indonesia"
	got := Copy(p, domain.Persona{Name: "The Skeptic"}, domain.CreativeConcept{})

	assert.Contains(t, got, "Bahasa Marketing")
	assert.Contains(t, got, "Slot Terbatas")
}

func TestCopy_CarriesCongruenceContext(t *testing.T) {
	concept := domain.CreativeConcept{
		VisualScene:         "Student asleep on textbooks",
		CongruenceRationale: "The headline promises focus, the image shows its absence",
	}
	got := Copy(domain.DefaultProject(), domain.Persona{Name: "The Aspirer"}, concept)

	assert.Contains(t, got, "Student asleep on textbooks")
	assert.Contains(t, got, "HEADLINE CONTEXT LIBRARY")
	assert.Contains(t, got, `"So That" test`)
	assert.Contains(t, got, "The Aspirer")
}

func TestConcept_AwarenessInstructionVariants(t *testing.T) {
	p := domain.DefaultProject()

	p.MarketAwareness = domain.AwarenessProblemAware
	assert.Contains(t, Concept(p, "x", "y", domain.Meme), "AWARENESS: LOW")

	p.MarketAwareness = domain.AwarenessSolutionAware
	assert.Contains(t, Concept(p, "x", "y", domain.Meme), "AWARENESS: MEDIUM")

	p.MarketAwareness = domain.AwarenessProductAware
	assert.Contains(t, Concept(p, "x", "y", domain.Meme), "AWARENESS: HIGH")
}

func TestConcept_GoldenRuleAndFormat(t *testing.T) {
	got := Concept(domain.DefaultProject(), "The Skeptic", "Brain fog deadline", domain.LongText)

	assert.Contains(t, got, "GOLDEN RULE OF CONGRUENCE")
	assert.Contains(t, got, "Brain fog deadline")
	assert.Contains(t, got, string(domain.LongText))
}

func TestCompliance(t *testing.T) {
	got := Compliance(domain.AdCopy{Headline: "Bye-Bye Bloating", PrimaryText: "Gone in 7 days."})

	assert.Contains(t, got, `return "SAFE"`)
	assert.Contains(t, got, "Bye-Bye Bloating")
}

func TestLandingPage_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", landingPageLimit+500)
	got := LandingPage(long)

	assert.Less(t, len(got), landingPageLimit+300)
	assert.Contains(t, got, "Data Analyst for a Direct Response Agency")
}

func TestAdScript_Language(t *testing.T) {
	got := AdScript(domain.DefaultProject(), "The Skeptic", "brain fog")
	assert.Contains(t, got, "Language: English")

	p := domain.DefaultProject()
	p.TargetCountry = "Indonesia"
	got = AdScript(p, "The Skeptic", "brain fog")
	assert.Contains(t, got, "Colloquial/Gaul")
}
