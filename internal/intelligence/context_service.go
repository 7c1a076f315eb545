package intelligence

import (
	"context"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/prompt"
)

// ContextService extracts a project context from raw inputs: scraped
// landing page content or a product photo. Missing fields come back with
// usable defaults so a partial analysis never blocks the session.
type ContextService interface {
	AnalyzeLandingPage(ctx context.Context, markdown string) (domain.ProjectContext, llm.Usage, error)
	AnalyzeProductImage(ctx context.Context, image []byte, mime string) (domain.ProjectContext, llm.Usage, error)
}

type contextService struct {
	client llm.Client
}

// NewContextService creates a ContextService backed by a generation client.
func NewContextService(client llm.Client) ContextService {
	return &contextService{client: client}
}

// analyzedContext mirrors the analysis response shape.
type analyzedContext struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	TargetAudience     string `json:"targetAudience"`
	TargetCountry      string `json:"targetCountry"`
	BrandVoice         string `json:"brandVoice"`
	Offer              string `json:"offer"`
}

func (s *contextService) AnalyzeLandingPage(ctx context.Context, markdown string) (domain.ProjectContext, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskContext,
		Prompt: prompt.LandingPage(markdown),
		Schema: prompt.LandingPageSchema,
	})
	if err != nil {
		return domain.ProjectContext{}, llm.Usage{}, err
	}

	data, err := llm.Decode[analyzedContext](res.Text, nil)
	if err != nil {
		return domain.ProjectContext{}, res.Usage, err
	}

	out := domain.ProjectContext{
		ProductName:        orDefault(data.ProductName, "Unknown Product"),
		ProductDescription: data.ProductDescription,
		TargetAudience:     orDefault(data.TargetAudience, "General Audience"),
		TargetCountry:      orDefault(data.TargetCountry, "USA"),
		BrandVoice:         orDefault(data.BrandVoice, "Professional"),
		Offer:              orDefault(data.Offer, "Shop Now"),
	}
	return out, res.Usage, nil
}

func (s *contextService) AnalyzeProductImage(ctx context.Context, image []byte, mime string) (domain.ProjectContext, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:      llm.TaskContext,
		Prompt:    prompt.ProductImage(),
		Schema:    prompt.ProductImageSchema,
		Image:     image,
		ImageMIME: mime,
	})
	if err != nil {
		return domain.ProjectContext{}, llm.Usage{}, err
	}

	data, err := llm.Decode[analyzedContext](res.Text, nil)
	if err != nil {
		return domain.ProjectContext{}, res.Usage, err
	}

	out := domain.ProjectContext{
		ProductName:        orDefault(data.ProductName, "Analyzed Product"),
		ProductDescription: orDefault(data.ProductDescription, "A revolutionary product."),
		TargetAudience:     orDefault(data.TargetAudience, "General Audience"),
		TargetCountry:      "USA",
		BrandVoice:         "Visual & Aesthetic",
		Offer:              "Check it out",
	}
	return out, res.Usage, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
