package domain

// CreativeFormat is a stylistic template for a rendered ad unit.
type CreativeFormat string

const (
	// Carousel specials
	CarouselEducational CreativeFormat = "Carousel: Educational / Tips"
	CarouselTestimonial CreativeFormat = "Carousel: Testimonial Pile"
	CarouselPanorama    CreativeFormat = "Carousel: Seamless Panorama"
	CarouselPhotoDump   CreativeFormat = "Carousel: Photo Dump / Recap"
	CarouselRealStory   CreativeFormat = "Carousel: Real People Story (UGC)"

	// Previous performers
	BigFont      CreativeFormat = "Big Font / Text Heavy"
	GmailUX      CreativeFormat = "Gmail / Letter Style"
	Billboard    CreativeFormat = "Billboard Ad"
	UglyVisual   CreativeFormat = "Ugly Visual / Problem Focus"
	MSPaint      CreativeFormat = "MS Paint / Nostalgia"
	RedditThread CreativeFormat = "Reddit Thread"
	Meme         CreativeFormat = "Meme / Internet Culture"
	LongText     CreativeFormat = "Long Text / Story"
	Cartoon      CreativeFormat = "Cartoon / Illustration"
	BeforeAfter  CreativeFormat = "Before & After"
	Whiteboard   CreativeFormat = "Whiteboard / Diagram"

	// Instagram native
	TwitterRepost    CreativeFormat = "Twitter/X Repost"
	PhoneNotes       CreativeFormat = "iPhone Notes App"
	AestheticMinimal CreativeFormat = "Aesthetic / Text Overlay"
	StoryPoll        CreativeFormat = "Story: Standard Poll (Yes/No)"
	StoryQNA         CreativeFormat = "Story: Ask Me Anything (Influencer Style)"
	ReelsThumbnail   CreativeFormat = "Reels Cover / Fake Video"
	DMNotification   CreativeFormat = "DM Notification"
	UGCMirror        CreativeFormat = "UGC Mirror Selfie"

	// Logical & comparison
	UsVsThem        CreativeFormat = "Us vs Them / Comparison Table"
	GraphChart      CreativeFormat = "Graph / Data Visualization"
	TimelineJourney CreativeFormat = "Timeline / Roadmap"

	// Voyeurism & social
	ChatConversation   CreativeFormat = "Chat Bubble / WhatsApp"
	ReminderNotif      CreativeFormat = "Lockscreen Reminder"
	SocialCommentStack CreativeFormat = "Social Comment Stack"
	HandheldTweet      CreativeFormat = "Handheld Tweet Overlay"

	// Product centric
	POVHands         CreativeFormat = "POV / Hands-on"
	AnnotatedProduct CreativeFormat = "Annotated / Feature Breakdown"
	SearchBar        CreativeFormat = "Search Bar UI"
	BenefitPointers  CreativeFormat = "Benefit Pointers / Anatomy"

	// Aesthetic & mood
	CollageScrapbook  CreativeFormat = "Collage / Scrapbook"
	ChecklistTodo     CreativeFormat = "Checklist / To-Do"
	StickyNoteRealism CreativeFormat = "Sticky Note / Handwritten"
)

// carouselFormats are rendered as a multi-image unit: the lead image plus
// three storyboarded slides.
var carouselFormats = map[CreativeFormat]bool{
	CarouselEducational: true,
	CarouselTestimonial: true,
	CarouselPanorama:    true,
	CarouselPhotoDump:   true,
	CarouselRealStory:   true,
}

// IsCarousel reports whether the format renders as a carousel.
func (f CreativeFormat) IsCarousel() bool {
	return carouselFormats[f]
}

// FormatGroup is a display grouping used by format pickers.
type FormatGroup struct {
	Name    string
	Formats []CreativeFormat
}

// FormatGroups lists every creative format under its display group, in
// presentation order.
var FormatGroups = []FormatGroup{
	{"Carousel Specials (High Engagement)", []CreativeFormat{
		CarouselRealStory, CarouselEducational, CarouselTestimonial,
		CarouselPanorama, CarouselPhotoDump,
	}},
	{"Instagram Native", []CreativeFormat{
		StoryQNA, StoryPoll, ReelsThumbnail, DMNotification,
		UGCMirror, PhoneNotes, TwitterRepost,
	}},
	{"Direct Response Winners", []CreativeFormat{
		BenefitPointers, SocialCommentStack, StickyNoteRealism, HandheldTweet,
	}},
	{"Logic & Rational", []CreativeFormat{
		UsVsThem, GraphChart, TimelineJourney,
	}},
	{"Social Proof & Voyeurism", []CreativeFormat{
		ChatConversation, ReminderNotif,
	}},
	{"Product Centric", []CreativeFormat{
		POVHands, AnnotatedProduct, SearchBar,
	}},
	{"Aesthetic & Mood", []CreativeFormat{
		CollageScrapbook, ChecklistTodo, AestheticMinimal,
	}},
	{"Pattern Interrupts", []CreativeFormat{
		BigFont, GmailUX, UglyVisual, MSPaint, Meme,
		LongText, BeforeAfter, Cartoon, Whiteboard, RedditThread,
	}},
}
