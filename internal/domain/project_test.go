package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectPatchApply_NilFieldsUntouched(t *testing.T) {
	ctx := DefaultProject()
	name := "Lumen Sleep Drops"
	stage := FunnelBottom

	ProjectPatch{ProductName: &name, FunnelStage: &stage}.Apply(&ctx)

	assert.Equal(t, "Lumen Sleep Drops", ctx.ProductName)
	assert.Equal(t, FunnelBottom, ctx.FunnelStage)
	assert.Equal(t, "Students, Programmers, and Creatives.", ctx.TargetAudience)
	assert.Equal(t, "Buy 2 Get 1 Free", ctx.Offer)
}

func TestMergeAnalyzed_NonEmptyFieldsWin(t *testing.T) {
	ctx := DefaultProject()
	ctx.ProductReferenceImage = []byte{0x89, 0x50}

	ctx.MergeAnalyzed(ProjectContext{
		ProductName:    "Scraped Product",
		TargetAudience: "",
		Offer:          "Free Trial",
	})

	assert.Equal(t, "Scraped Product", ctx.ProductName)
	assert.Equal(t, "Students, Programmers, and Creatives.", ctx.TargetAudience)
	assert.Equal(t, "Free Trial", ctx.Offer)
	assert.NotEmpty(t, ctx.ProductReferenceImage)
	assert.Len(t, ctx.BrandVoiceOptions, 5)
}
