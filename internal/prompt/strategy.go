package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/admind/internal/domain"
)

// isIndonesia reports whether the campaign targets Indonesia, which flips
// copywriting tasks into Bahasa Indonesia.
func isIndonesia(country string) bool {
	return strings.Contains(strings.ToLower(country), "indonesia")
}

func countryOrDefault(country, fallback string) string {
	if country == "" {
		return fallback
	}
	return country
}

// Personas builds the persona-discovery prompt. Avatars are defined by
// identity and psychological need, not demographics.
func Personas(project domain.ProjectContext) string {
	return fmt.Sprintf(`You are a Consumer Psychologist specializing in %s.

PRODUCT CONTEXT:
Product: %s
Details: %s

TASK:
Define 3 distinct "Avatars" based on their IDENTITY and DEEP PSYCHOLOGICAL NEEDS.
Do not just list demographics. List who they *are* vs who they *want to be* (The Gap).

We are looking for:
1. The Skeptic / Logic Buyer (Identity: "I am smart, I research, I don't get fooled.")
2. The Status / Aspirer (Identity: "I want to be admired/successful/beautiful.")
3. The Anxious / Urgent Solver (Identity: "I need safety/certainty/speed.")

*Cultural nuance mandatory for %s. If Indonesia, mention specific local behaviors (e.g., 'Kaum Mendang-Mending', 'Social Climber').*`,
		countryOrDefault(project.TargetCountry, "the target market"),
		project.ProductName,
		project.ProductDescription,
		project.TargetCountry)
}

// Angles builds the angle-generation prompt for one persona, following the
// tiered testing playbook: brainstorm wide, rank, return the top three.
func Angles(project domain.ProjectContext, personaName, personaMotivation string) string {
	return fmt.Sprintf(`You are a Direct Response Strategist applying the "Andromeda Testing Playbook".

CONTEXT:
Product: %s
Persona: %s
Deep Motivation: %s
Target Country: %s

TASK:
1. "Gather Data": Brainstorm 10 raw angles/hooks.
2. "Prioritize": Rank by Market Size, Urgency, Differentiation.
3. "Assign Tier": Assign a Testing Tier to each angle based on its nature:
   - TIER 1 (Concept Isolation): Big, bold, new ideas. High risk/reward.
   - TIER 2 (Persona Isolation): Specifically tailored to this persona's fear/desire.
   - TIER 3 (Sprint Isolation): A simple iteration or direct offer.

OUTPUT:
Return ONLY the Top 3 High-Potential Insights.

*For %s: Ensure the angles fit the local culture.*`,
		project.ProductName, personaName, personaMotivation,
		project.TargetCountry, project.TargetCountry)
}

// Stories builds the unaware-story research prompt. Stories describe the
// symptom only; the product must not appear.
func Stories(project domain.ProjectContext) string {
	return fmt.Sprintf(`ROLE: Data Miner / Reddit Researcher

TASK: Find/Generate 3 distinct "Unaware" Stories related to: %s.
These stories should sound like highly emotional, raw Reddit threads or Forum posts (e.g., r/TrueOffMyChest, r/Relationships).

CRITICAL RULE:
- The stories must be about the PROBLEM/SYMPTOM.
- Do NOT mention the product or solution yet.
- Focus on the "Bleeding Neck" pain.
- Context: %s.

INPUT DATA:
Target Audience: %s
Deep Pain: %s

OUTPUT JSON:
Return 3 stories.
- title: Catchy Reddit-style title.
- narrative: A 2-3 sentence summary of the story/struggle.
- emotionalTheme: The core emotion (e.g., "Shame", "Anger", "Exhaustion").`,
		project.ProductName,
		countryOrDefault(project.TargetCountry, "General"),
		project.TargetAudience,
		project.ProductDescription)
}

// BigIdeas builds the big-idea prompt bridging a story to the product.
func BigIdeas(project domain.ProjectContext, story domain.StoryOption) string {
	return fmt.Sprintf(`ROLE: Direct Response Strategist (Big Idea Developer)

CONTEXT:
We are targeting a user who connects with this story: "%s" (%s).
Product: %s.

TASK:
Generate 3 "Big Ideas" (New Opportunities) that bridge this story to our solution.
A Big Idea is NOT a benefit. It is a new way of looking at the problem.

EXAMPLE:
Story: "I diet but don't lose weight."
Big Idea: "It's not your willpower, it's your gut biome diversity." (Shift blame -> New mechanism).

OUTPUT JSON:
- headline: The Big Idea Statement.
- concept: Explanation of the shift.
- targetBelief: What old belief are we destroying?`,
		story.Title, story.Narrative, project.ProductName)
}

// Mechanisms builds the UMP/UMS prompt for a chosen big idea.
func Mechanisms(project domain.ProjectContext, idea domain.BigIdeaOption) string {
	return fmt.Sprintf(`ROLE: Product Engineer / Pseudo-Scientist

CONTEXT:
Big Idea: %s
Product: %s

TASK:
Define the UMP (Unique Mechanism of Problem) and UMS (Unique Mechanism of Solution).
This gives the "Logic" to the "Magic".

1. UMP: Why have other methods failed? (e.g., "Standard diets slow down your metabolic rate.")
2. UMS: How does THIS product solve that specific UMP? (e.g., "We trigger thermogenesis without caffeine.")

OUTPUT JSON (3 Variants):
- ump: The Root Cause of failure.
- ums: The New Solution mechanism.
- scientificPseudo: A catchy name for the mechanism (e.g., "The Dual-Action Protocol").`,
		idea.Headline, project.ProductName)
}

// Hooks builds the hook-generation prompt combining a big idea with a
// mechanism. The response is a flat string array.
func Hooks(idea domain.BigIdeaOption, mech domain.MechanismOption) string {
	return fmt.Sprintf(`ROLE: Copywriter

Combine these elements into 5 distinct thumb-stopping hooks:
1. Big Idea: %s
2. Mechanism: %s (%s)

Output a simple JSON string array.`,
		idea.Headline, mech.ScientificPseudo, mech.UMS)
}

// SalesLetter builds the long-form caption prompt. The eight-section
// structure walks the reader from hook to CTA; the output is plain text.
func SalesLetter(project domain.ProjectContext, story domain.StoryOption, idea domain.BigIdeaOption, mech domain.MechanismOption, hook string) string {
	language := "English (Conversational, Engaging)"
	if isIndonesia(project.TargetCountry) {
		language = "Bahasa Indonesia (Conversational, Engaging, No Formal Language)"
	}

	return fmt.Sprintf(`ROLE: World-Class Social Media Copywriter (Instagram/TikTok/Facebook).
TASK: Write a Long-Form Social Media Caption (Micro-Blog Style).

LANGUAGE: %s

STRUCTURE (The 8-Section System adapted for Social):
1. HOOK: Start with the Hook: "%s".
2. STORY: Dive immediately into the story: "%s". (%s). Keep it relatable.
3. THE STRUGGLE: Why have they failed before? (Agitate pain).
4. THE EPIPHANY (UMP): Reveal the "Real Enemy" (UMP: %s). It wasn't their fault.
5. THE SOLUTION (UMS): Introduce the New Opportunity (%s).
6. THE PRODUCT: Introduce %s naturally as the solution vehicle (%s).
7. THE TRANSFORMATION: Describe the "After" state.
8. CTA: %s. Ask for a comment or click.

TONE: %s. Personal, authentic, like a friend sharing a discovery.
FORMAT: Plain text ONLY. NO Markdown (No **bold**, no # H1). Use Line Breaks for readability. Use Emojis naturally throughout.

Do NOT include section headers (like "Section 1: Hook"). Just write the post.`,
		language, hook,
		story.Title, story.Narrative,
		mech.UMP, idea.Headline,
		project.ProductName, mech.UMS,
		project.Offer, project.BrandVoice)
}
