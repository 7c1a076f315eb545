// Package llm provides the generation client used by every model-backed
// operation: structured text generation against a response schema, raw
// text generation, and image synthesis.
package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// Usage carries the token counters reported by the provider for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Add returns the sum of two usages.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
	}
}

// TextRequest holds the parameters for a text generation call. When Schema
// is non-nil the provider is put in JSON mode and constrained to it. An
// optional inline image can be attached for multimodal analysis calls.
type TextRequest struct {
	Task      Task
	Prompt    string
	Schema    *genai.Schema
	Image     []byte
	ImageMIME string
}

// TextResult holds the text and usage of a completed text call.
type TextResult struct {
	Text  string
	Usage Usage
}

// Blob is an inline image attached to an image generation request.
type Blob struct {
	MIME string
	Data []byte
}

// ImageRequest holds the parameters for an image generation call.
// References are style/subject anchors sent ahead of the prompt: the
// product reference image, or an earlier carousel slide.
type ImageRequest struct {
	Task        Task
	Prompt      string
	AspectRatio string // "1:1" or "9:16"
	References  []Blob
}

// ImageResult holds the image bytes of a completed image call. Data is nil
// when the provider returned no image part (e.g. safety filtering); that
// case is not an error and usage is still reported.
type ImageResult struct {
	Data  []byte
	MIME  string
	Usage Usage
}

// Client is the generation provider boundary. Implementations must map
// provider failures onto the package sentinel errors so callers can
// distinguish quota exhaustion from other failures.
type Client interface {
	GenerateText(ctx context.Context, req TextRequest) (*TextResult, error)
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)
}
