package prompt

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/admind/internal/domain"
)

// landingPageLimit caps how much scraped page content is sent for analysis.
const landingPageLimit = 30000

// awarenessInstruction maps market awareness onto a creative directive.
func awarenessInstruction(awareness domain.MarketAwareness) string {
	s := string(awareness)
	if s == "" {
		s = string(domain.AwarenessProblemAware)
	}
	switch {
	case strings.Contains(s, "Unaware") || strings.Contains(s, "Problem"):
		return "AWARENESS: LOW. Focus on SYMPTOM. Use Pattern Interrupt."
	case strings.Contains(s, "Solution"):
		return "AWARENESS: MEDIUM. Focus on MECHANISM and SOCIAL PROOF."
	default:
		return "AWARENESS: HIGH. Focus on URGENCY and OFFER."
	}
}

// Concept builds the creative-director prompt. The output concept must make
// the visual prove the headline, not merely show the product.
func Concept(project domain.ProjectContext, personaName, angle string, format domain.CreativeFormat) string {
	return fmt.Sprintf(`# Role: Creative Director (Focus: Message & Imagery Congruency)

**THE GOLDEN RULE OF CONGRUENCE:**
Ads fail when the image matches the *product* but ignores the *message*.

**INPUTS:**
Product: %s
Winning Insight (The Message): %s
Persona: %s
Format: %s
Context: %s
%s

**CRITICAL FOR FORMAT '%s':**
*   If 'Long Text' or 'Story': You MUST describe a vertical, candid, authentic shot (e.g., Selfie in car, Mirror selfie, Handheld). NO STOCK PHOTOS. The image description must explicitly mention WHERE the text overlay will go (e.g., "White text box above head").

**TASK:**
Create a concept where the VISUAL **proves** the HEADLINE.

**OUTPUT REQUIREMENTS (JSON):**

**1. Congruence Rationale:**
Explain WHY this image matches this specific headline. "The headline promises X, so the image shows X happening."

**2. TECHNICAL PROMPT (technicalPrompt):**
A STRICT prompt for the Image Generator.
*   If format is text-heavy (e.g. Twitter, Notes, Story), describe the BACKGROUND VIBE (Candid/Blurry) and UI details (Instagram Fonts, Text Bubbles).
*   If format is visual (e.g. Photography), the SUBJECT ACTION must match the HOOK.

**3. SCRIPT DIRECTION (copyAngle):**
Instructions for the copywriter.`,
		project.ProductName, angle, personaName, format,
		project.TargetCountry,
		awarenessInstruction(project.MarketAwareness),
		format)
}

// Copy builds the ad-copy prompt applying the static-ad headline rules.
func Copy(project domain.ProjectContext, persona domain.Persona, concept domain.CreativeConcept) string {
	languageInstruction := "Write in English (or native language). Use persuasive Direct Response copy."
	if isIndonesia(project.TargetCountry) {
		languageInstruction = "Write in Bahasa Indonesia. Use 'Bahasa Marketing' (mix of persuasive & conversational). Use local power words (e.g., 'Slot Terbatas', 'Best Seller', 'Gak Nyesel')."
	}

	return fmt.Sprintf(`# Role: Senior Direct Response Copywriter (Static Ad Specialist)

**MANDATORY INSTRUCTION:**
%s

**THE HEADLINE CONTEXT LIBRARY (RULES):**
1.  **Assume No One Knows You:** Treat the audience as COLD. Do not be vague. "I feel new" (BAD) vs "Bye-Bye Bloating" (GOOD).
2.  **Clear > Clever:** Clarity drives conversions. No puns. No jargon. If they have to think, you lose.
3.  **The "So That" Test (Transformation > Feature):**
    *   Feature: "1000mAh Battery" (Boring).
    *   Transformation: "Listen to music for 48 hours straight" (Winner).
    *   *Rule:* Sell the AFTER state.
4.  **Call Out the Audience/Pain:** Flag down the user immediately.
    *   "For Busy Moms..."
    *   "Knee Pain keeping you up?"
    *   "The last backpack a Digital Nomad will need."
5.  **Scannability:** Under 7 words. High contrast thought.
6.  **Visual Hierarchy:** The headline MUST match the image scene described below.

**STRATEGY CONTEXT:**
Product: %s
Offer: %s
Target: %s

**CONGRUENCE CONTEXT (IMAGE SCENE):**
Visual Scene: "%s"
Rationale: "%s"

**TASK:**
Write the ad copy applying the rules above.

**OUTPUT:**
1. Primary Text: The main caption. Match the tone to the identity of the persona.
2. Headline: Apply the "So That" test. Max 7 words. MUST be congruent with the Visual Scene.
3. CTA: Clear instruction.`,
		languageInstruction,
		project.ProductName, project.Offer, persona.Name,
		concept.VisualScene, concept.CongruenceRationale)
}

// Compliance builds the policy-check prompt. A safe ad yields "SAFE".
func Compliance(copy domain.AdCopy) string {
	return fmt.Sprintf("Check this Ad Copy for policy violations. If safe, return \"SAFE\".\nHeadline: %s\nText: %s",
		copy.Headline, copy.PrimaryText)
}

// AdScript builds the short-video script prompt.
func AdScript(project domain.ProjectContext, personaName, angle string) string {
	lang := "English"
	if isIndonesia(project.TargetCountry) {
		lang = "Bahasa Indonesia (Colloquial/Gaul)"
	}
	return fmt.Sprintf("Write a 15-second TikTok/Reels UGC script for: %s. Language: %s. Angle: %s. Keep it under 40 words. Hook the viewer instantly.",
		project.ProductName, lang, angle)
}

// LandingPage builds the landing-page analysis prompt from scraped page
// content, truncated to the analysis limit.
func LandingPage(markdown string) string {
	if len(markdown) > landingPageLimit {
		markdown = markdown[:landingPageLimit]
	}
	return fmt.Sprintf(`You are a Data Analyst for a Direct Response Agency.
Analyze the following raw data (Landing Page Content) to extract the foundational truths.

RAW DATA:
%s`, markdown)
}

// ProductImage is the analysis prompt sent alongside a product photo.
func ProductImage() string {
	return "Analyze this product image. Extract the Product Name (if visible, otherwise guess), a compelling Description, and the likely Target Audience."
}
