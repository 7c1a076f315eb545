package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client   *genai.Client
	cfg      Config
	observer Observer
}

// NewGeminiClient creates a Client for the configured Gemini models.
func NewGeminiClient(ctx context.Context, cfg Config, observer Observer) (*GeminiClient, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client, cfg: cfg, observer: observer}, nil
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) GenerateText(ctx context.Context, req TextRequest) (*TextResult, error) {
	start := time.Now()

	timeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.cfg.TextModel)
	if temp, ok := c.cfg.TaskTemperature(req.Task); ok {
		model.SetTemperature(temp)
	}
	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = req.Schema
	}

	var parts []genai.Part
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, genai.Blob{MIMEType: mime, Data: req.Image})
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		mapped := c.mapError(ctx, err)
		c.emit(req.Task, c.cfg.TextModel, start, Usage{}, mapped)
		return nil, mapped
	}

	usage := usageFrom(resp)
	text := textFrom(resp)
	if text == "" {
		err := fmt.Errorf("%w: response contained no text part", ErrInvalidOutput)
		c.emit(req.Task, c.cfg.TextModel, start, usage, err)
		return nil, err
	}

	c.emit(req.Task, c.cfg.TextModel, start, usage, nil)
	return &TextResult{Text: text, Usage: usage}, nil
}

func (c *GeminiClient) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	start := time.Now()

	timeout := time.Duration(c.cfg.TaskTimeout(TaskImage)) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.cfg.ImageModel)

	var parts []genai.Part
	for _, ref := range req.References {
		mime := ref.MIME
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, genai.Blob{MIMEType: mime, Data: ref.Data})
	}
	parts = append(parts, genai.Text(req.Prompt+aspectInstruction(req.AspectRatio)))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		mapped := c.mapError(ctx, err)
		c.emit(req.Task, c.cfg.ImageModel, start, Usage{}, mapped)
		return nil, mapped
	}

	usage := usageFrom(resp)
	result := &ImageResult{Usage: usage}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				result.Data = blob.Data
				result.MIME = blob.MIMEType
				break
			}
		}
	}

	// A missing image part (safety filter) is reported as success with nil
	// data; the caller decides how to degrade.
	c.emit(req.Task, c.cfg.ImageModel, start, usage, nil)
	return result, nil
}

// aspectInstruction folds the aspect ratio into the prompt. The pinned SDK
// has no image config surface, so composition is steered textually.
func aspectInstruction(ratio string) string {
	if ratio == "9:16" {
		return " Compose the image as a vertical 9:16 portrait (full-screen story format)."
	}
	return " Compose the image as a 1:1 square."
}

func (c *GeminiClient) mapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 429 {
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "429") {
		return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *GeminiClient) emit(task Task, model string, start time.Time, usage Usage, err error) {
	c.observer.OnCallComplete(CallEvent{
		Task:         task,
		Model:        model,
		LatencyMs:    time.Since(start).Milliseconds(),
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		Success:      err == nil,
		ErrorCode:    errorCode(err),
	})
}

func usageFrom(resp *genai.GenerateContentResponse) Usage {
	if resp == nil || resp.UsageMetadata == nil {
		return Usage{}
	}
	return Usage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
	}
}

func textFrom(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
