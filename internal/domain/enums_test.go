package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhaseForAge_Boundaries(t *testing.T) {
	assert.Equal(t, Phase1, PhaseForAge(24))
	assert.Equal(t, Phase1, PhaseForAge(72))
	assert.Equal(t, Phase2, PhaseForAge(73))
	assert.Equal(t, Phase2, PhaseForAge(168))
	assert.Equal(t, Phase3, PhaseForAge(169))
	assert.Equal(t, Phase3, PhaseForAge(336))
	assert.Equal(t, Phase4, PhaseForAge(337))
	assert.Equal(t, Phase4, PhaseForAge(1000))
}

func TestNodeValidate(t *testing.T) {
	n := Node{ID: "p1", Type: NodePersona, Payload: PersonaPayload{Persona: Persona{Name: "A"}}}
	assert.NoError(t, n.Validate())

	n.Payload = RootPayload{}
	assert.Error(t, n.Validate())

	n.Payload = nil
	assert.Error(t, n.Validate())
}

func TestNewEdge_DerivedID(t *testing.T) {
	e := NewEdge("root", "persona-1-0")
	assert.Equal(t, "root-persona-1-0", e.ID)
	assert.Equal(t, "root", e.Source)
	assert.Equal(t, "persona-1-0", e.Target)
}

func TestCreativeFormat_IsCarousel(t *testing.T) {
	assert.True(t, CarouselRealStory.IsCarousel())
	assert.True(t, CarouselEducational.IsCarousel())
	assert.True(t, CarouselPhotoDump.IsCarousel())
	assert.False(t, Meme.IsCarousel())
	assert.False(t, StickyNoteRealism.IsCarousel())
}

func TestFormatGroups_CoverCarousels(t *testing.T) {
	seen := map[CreativeFormat]bool{}
	for _, g := range FormatGroups {
		for _, f := range g.Formats {
			assert.False(t, seen[f], "format %s listed twice", f)
			seen[f] = true
		}
	}
	for f := range carouselFormats {
		assert.True(t, seen[f], "carousel format %s missing from groups", f)
	}
}
