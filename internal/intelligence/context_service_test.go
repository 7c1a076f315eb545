package intelligence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/admind/internal/llm"
)

func TestContextServiceAnalyzeLandingPage_FullResponse(t *testing.T) {
	client := &mockLLMClient{response: `{
		"productName": "Lumen Sleep Drops",
		"productDescription": "Melatonin-free sleep support.",
		"targetAudience": "Shift workers",
		"targetCountry": "Indonesia",
		"brandVoice": "Calm & Clinical",
		"offer": "30-night trial"
	}`}
	svc := NewContextService(client)

	ctx, _, err := svc.AnalyzeLandingPage(context.Background(), "# Lumen Sleep Drops\nSleep better...")
	require.NoError(t, err)
	assert.Equal(t, "Lumen Sleep Drops", ctx.ProductName)
	assert.Equal(t, "Indonesia", ctx.TargetCountry)
	assert.Equal(t, "30-night trial", ctx.Offer)
	assert.Equal(t, llm.TaskContext, client.textReqs[0].Task)
}

func TestContextServiceAnalyzeLandingPage_Defaults(t *testing.T) {
	client := &mockLLMClient{response: `{"productDescription": "Something vague."}`}
	svc := NewContextService(client)

	ctx, _, err := svc.AnalyzeLandingPage(context.Background(), "thin page")
	require.NoError(t, err)
	assert.Equal(t, "Unknown Product", ctx.ProductName)
	assert.Equal(t, "General Audience", ctx.TargetAudience)
	assert.Equal(t, "USA", ctx.TargetCountry)
	assert.Equal(t, "Professional", ctx.BrandVoice)
	assert.Equal(t, "Shop Now", ctx.Offer)
}

func TestContextServiceAnalyzeProductImage_AttachesImage(t *testing.T) {
	client := &mockLLMClient{response: `{"productName": "Zen Mug"}`}
	svc := NewContextService(client)

	img := []byte{0xff, 0xd8}
	ctx, _, err := svc.AnalyzeProductImage(context.Background(), img, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Zen Mug", ctx.ProductName)
	assert.Equal(t, "A revolutionary product.", ctx.ProductDescription)
	assert.Equal(t, "Visual & Aesthetic", ctx.BrandVoice)

	require.Len(t, client.textReqs, 1)
	assert.Equal(t, img, client.textReqs[0].Image)
	assert.Equal(t, "image/jpeg", client.textReqs[0].ImageMIME)
}

func TestContextServiceAnalyzeLandingPage_InvalidJSON(t *testing.T) {
	client := &mockLLMClient{response: "no structured data here"}
	svc := NewContextService(client)

	_, _, err := svc.AnalyzeLandingPage(context.Background(), "page")
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}
