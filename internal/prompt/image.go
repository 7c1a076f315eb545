package prompt

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/alexanderramin/admind/internal/domain"
)

const safetyGuidelines = `
CRITICAL AD POLICY COMPLIANCE:
1. NO Nudity or Sexual content.
2. NO Medical Gore or overly graphic body fluids.
3. NO "Before/After" split screens that show unrealistic body transformations.
4. NO Glitchy text unless specified.
5. If humans are shown, they must look realistic with normal anatomy.`

const (
	professionalEnhancers = "Photorealistic, 8k resolution, highly detailed, shot on 35mm lens, depth of field, natural lighting, sharp focus."

	ugcEnhancers = "Shot on iPhone 15, raw photo, realistic skin texture, authentic amateur photography, slightly messy background, no bokeh, everything in focus (deep depth of field)."

	// trashTierEnhancers deliberately degrades quality so the ad reads as
	// native content instead of an ad.
	trashTierEnhancers = "Low fidelity, authentic UGC. Shot on iPhone. Slight motion blur allowed. Bad lighting (overhead fluorescent or direct flash). Looks like a photo sent to a group chat. NO professional composition. The goal is 'Pattern Interrupt' - it must NOT look like an ad."
)

var visualStyles = []string{
	"Shot on 35mm film, Fujifilm Pro 400H, grainy texture, nostalgic",
	"High-end studio photography, softbox lighting, sharp focus, 8k resolution",
	"Gen-Z aesthetic, flash photography, direct flash, high contrast, candid",
	"Cinematic lighting, golden hour, shallow depth of field, bokeh background",
	"Clean minimalist product photography, bright airy lighting, pastel tones",
}

// uglyFormats get the trash-tier treatment: the less it looks like an ad,
// the harder it interrupts the feed.
var uglyFormats = map[domain.CreativeFormat]bool{
	domain.UglyVisual:   true,
	domain.MSPaint:      true,
	domain.RedditThread: true,
	domain.Meme:         true,
}

// nativeStoryFormats render as vertical UGC with a UI overlay.
var nativeStoryFormats = map[domain.CreativeFormat]bool{
	domain.StoryQNA:           true,
	domain.LongText:           true,
	domain.UGCMirror:          true,
	domain.PhoneNotes:         true,
	domain.TwitterRepost:      true,
	domain.SocialCommentStack: true,
	domain.HandheldTweet:      true,
	domain.StoryPoll:          true,
}

// ImageParams carries everything the image prompt assembly needs. Scene,
// Style and TechnicalPrompt come from the creative concept; Angle is the
// headline the visual has to prove.
type ImageParams struct {
	Project         domain.ProjectContext
	Angle           string
	Format          domain.CreativeFormat
	VisualScene     string
	VisualStyle     string
	TechnicalPrompt string
}

// ReferenceInstruction is appended after a product reference image so the
// generator anchors on the real product.
func ReferenceInstruction() string {
	return "Use the product/subject in the provided image as the reference. Maintain brand colors and visual identity."
}

// StyleAnchorInstruction is appended after a previous slide so later
// carousel slides keep the same subject and environment.
func StyleAnchorInstruction() string {
	return "Use this image as a strict character/style reference. Maintain the same person/environment but change the pose/action as described."
}

// Image assembles the final image-generation prompt for one creative. The
// rng drives candid-environment and style picks so retries vary.
func Image(p ImageParams, rng *rand.Rand) string {
	project := p.Project
	country := countryOrDefault(project.TargetCountry, "USA")
	lowerDesc := strings.ToLower(project.ProductDescription)

	isService := strings.Contains(lowerDesc, "studio") ||
		strings.Contains(lowerDesc, "service") ||
		strings.Contains(lowerDesc, "jasa") ||
		strings.Contains(lowerDesc, "photography") ||
		strings.Contains(lowerDesc, "clinic")

	culturePrompt := fmt.Sprintf(`
Target Country: %s.
Aesthetics: Adapt visual style, models, and environment to %s.
If SE Asia -> Use Asian models, scooters, tropical greenery, warmer lighting.`, country, country)

	contextInjection := fmt.Sprintf("(Context: The image must match this headline: %q).", p.Angle)

	switch {
	case uglyFormats[p.Format]:
		if p.Format == domain.MSPaint {
			return fmt.Sprintf("A crude, badly drawn MS Paint illustration related to %s. Stick figures, comic sans text, bright primary colors, looks like a child or amateur drew it. Authentically bad internet meme style. %s",
				project.ProductName, safetyGuidelines)
		}
		if p.Format == domain.UglyVisual {
			scene := p.TechnicalPrompt
			if scene == "" {
				scene = p.VisualScene
			}
			return fmt.Sprintf("A very low quality, cursed image vibe. %s. %s %s %s.",
				scene, trashTierEnhancers, culturePrompt, safetyGuidelines)
		}
		return fmt.Sprintf("%s. %s %s %s",
			p.TechnicalPrompt, trashTierEnhancers, culturePrompt, safetyGuidelines)

	case nativeStoryFormats[p.Format]:
		environment := candidEnvironment(rng)
		overlay := storyOverlay(p.Format, p.Angle, project.ProductName)
		if p.Format == domain.PhoneNotes {
			// The notes screenshot takes the whole frame.
			return fmt.Sprintf("%s %s %s. Photorealistic UI render.",
				overlay, ugcEnhancers, safetyGuidelines)
		}
		return fmt.Sprintf("A vertical, authentic UGC photo of a person %s. %s %s %s %s. Make it look like a real Instagram Story.",
			environment, overlay, ugcEnhancers, culturePrompt, safetyGuidelines)

	case p.Format == domain.StickyNoteRealism:
		return fmt.Sprintf("A real yellow post-it sticky note stuck on a surface. Handwritten black marker text on the note says: %q. Sharp focus on the text, realistic paper texture, soft shadows. %s",
			p.Angle, professionalEnhancers)

	case p.Format == domain.BenefitPointers:
		return fmt.Sprintf("A high-quality product photography shot of %s. Clean background. Sleek, modern graphic lines pointing to 3 key features. Style: \"Anatomy Breakdown\". %s %s %s.",
			project.ProductName, professionalEnhancers, culturePrompt, safetyGuidelines)

	case p.Format == domain.UsVsThem:
		return fmt.Sprintf("A split screen comparison image. Left side (Them): Cloudy, sad, messy, labeled \"Them\". Right side (Us): Bright, happy, organized, labeled \"Us\". Subject: %s. %s %s %s.",
			project.ProductName, professionalEnhancers, culturePrompt, safetyGuidelines)

	case p.Format.IsCarousel():
		// The technical prompt already carries the slide storyboard.
		enhancer := professionalEnhancers
		if p.Format == domain.CarouselRealStory {
			enhancer = ugcEnhancers
		}
		return fmt.Sprintf("%s. %s %s %s",
			p.TechnicalPrompt, enhancer, culturePrompt, safetyGuidelines)

	case isService:
		return fmt.Sprintf("%s %s. %s %s %s. (Note: This is a service, do not show a retail box. Show the person experiencing the result).",
			contextInjection, p.TechnicalPrompt, culturePrompt, professionalEnhancers, safetyGuidelines)

	default:
		if len(p.TechnicalPrompt) > 20 {
			return fmt.Sprintf("%s %s. %s %s %s",
				contextInjection, p.TechnicalPrompt, professionalEnhancers, culturePrompt, safetyGuidelines)
		}
		style := p.VisualStyle
		if style == "" {
			style = visualStyles[rng.Intn(len(visualStyles))]
		}
		return fmt.Sprintf("%s %s. Style: %s. %s %s %s",
			contextInjection, p.VisualScene, style, professionalEnhancers, culturePrompt, safetyGuidelines)
	}
}

func candidEnvironment(rng *rand.Rand) string {
	r := rng.Float64()
	switch {
	case r > 0.85:
		return "mirror selfie in a clean, modern aesthetic room"
	case r > 0.6:
		return "leaning against a window with natural light, contemplative mood"
	default:
		return "inside a modern car during daytime, sunlight hitting face (car selfie vibe)"
	}
}

func storyOverlay(format domain.CreativeFormat, angle, productName string) string {
	switch format {
	case domain.StoryQNA:
		return fmt.Sprintf("Overlay: A standard Instagram 'Question Box' sticker (white rectangle with rounded corners) floating near the head. The text in the box asks: \"%s?\". There is a typed response below it.", angle)
	case domain.LongText, domain.StoryPoll:
		return fmt.Sprintf("Overlay: A large, massive block of text (long copy) covering the center of the image. It looks like a long Instagram story caption. The text is white with a translucent black background for readability. The text is dense and tells a story about %q.", angle)
	case domain.HandheldTweet, domain.TwitterRepost:
		return fmt.Sprintf("Overlay: A social media post screenshot (Twitter/X style) superimposed on the image. The text on the post is sharp and reads: %q.", angle)
	case domain.PhoneNotes:
		return fmt.Sprintf("A full screen screenshot of the Apple Notes App. Title: %q. Below is a typed list related to %s.", angle, productName)
	case domain.UGCMirror:
		return fmt.Sprintf("Overlay: Several 'Instagram Text Bubbles' floating around the subject. Text in bubbles: %q.", angle)
	default:
		return ""
	}
}

// CarouselSlides returns the three-act storyboard for a carousel: each entry
// is the slide-specific technical prompt to feed through Image.
func CarouselSlides(project domain.ProjectContext, format domain.CreativeFormat, angle, technicalPrompt string) []string {
	switch format {
	case domain.CarouselRealStory:
		return []string{
			fmt.Sprintf("Slide 1 (The Hook): A candid, slightly imperfect UGC-style photo showing the PROBLEM or PAIN POINT. The subject looks frustrated or tired. Context: %s. Style: Handheld camera.", angle),
			fmt.Sprintf("Slide 2 (The Turn): The SAME subject discovers %s. A close up shot of the product/service in use. Natural lighting.", project.ProductName),
			"Slide 3 (The Result): The SAME subject looks relieved and happy. A glowing transformation result. Text overlay implied: \"Saved my life\".",
		}
	case domain.CarouselEducational:
		return []string{
			fmt.Sprintf("Slide 1 (Title Card): Minimalist background with plenty of negative space for text. Visual icon representing the topic: %s.", angle),
			"Slide 2 (The Method): A diagram or clear photo demonstrating the 'How To' aspect of the solution. Keep style consistent.",
			"Slide 3 (Summary): A checklist visual or a final result shot showing success.",
		}
	default:
		return []string{
			technicalPrompt + ". Slide 1: The Hook/Problem. High tension visual.",
			technicalPrompt + ". Slide 2: The Solution/Process. Detailed macro shot. Keep visual identity.",
			technicalPrompt + ". Slide 3: The Result/CTA. Happy resolution.",
		}
	}
}
