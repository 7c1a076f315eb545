package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/prompt"
)

// CreativeService produces the per-creative artifacts: the creative
// concept, the ad copy, the policy check, and the short video script.
type CreativeService interface {
	Concept(ctx context.Context, project domain.ProjectContext, personaName, angle string, format domain.CreativeFormat) (domain.CreativeConcept, llm.Usage, error)
	Copy(ctx context.Context, project domain.ProjectContext, persona domain.Persona, concept domain.CreativeConcept) (domain.AdCopy, llm.Usage, error)
	Compliance(ctx context.Context, copy domain.AdCopy) (string, llm.Usage, error)
	AdScript(ctx context.Context, project domain.ProjectContext, personaName, angle string) (string, llm.Usage, error)
}

type creativeService struct {
	client llm.Client
}

// NewCreativeService creates a CreativeService backed by a generation client.
func NewCreativeService(client llm.Client) CreativeService {
	return &creativeService{client: client}
}

func (s *creativeService) Concept(ctx context.Context, project domain.ProjectContext, personaName, angle string, format domain.CreativeFormat) (domain.CreativeConcept, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskConcept,
		Prompt: prompt.Concept(project, personaName, angle, format),
		Schema: prompt.ConceptSchema,
	})
	if err != nil {
		return domain.CreativeConcept{}, llm.Usage{}, err
	}

	concept, err := llm.Decode(res.Text, func(c domain.CreativeConcept) error {
		if c.VisualScene == "" || c.TechnicalPrompt == "" {
			return fmt.Errorf("concept missing visual scene or technical prompt")
		}
		return nil
	})
	if err != nil {
		return domain.CreativeConcept{}, res.Usage, err
	}
	return concept, res.Usage, nil
}

func (s *creativeService) Copy(ctx context.Context, project domain.ProjectContext, persona domain.Persona, concept domain.CreativeConcept) (domain.AdCopy, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskCopy,
		Prompt: prompt.Copy(project, persona, concept),
		Schema: prompt.CopySchema,
	})
	if err != nil {
		return domain.AdCopy{}, llm.Usage{}, err
	}

	copyOut, err := llm.Decode(res.Text, func(c domain.AdCopy) error {
		if c.Headline == "" || c.PrimaryText == "" {
			return fmt.Errorf("ad copy missing headline or primary text")
		}
		return nil
	})
	if err != nil {
		return domain.AdCopy{}, res.Usage, err
	}
	return copyOut, res.Usage, nil
}

// Compliance runs the policy check. A clean result is the literal "SAFE";
// anything else is the reviewer's notes.
func (s *creativeService) Compliance(ctx context.Context, copy domain.AdCopy) (string, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskCompliance,
		Prompt: prompt.Compliance(copy),
	})
	if err != nil {
		return "", llm.Usage{}, err
	}
	notes := strings.TrimSpace(res.Text)
	if notes == "" {
		notes = "SAFE"
	}
	return notes, res.Usage, nil
}

func (s *creativeService) AdScript(ctx context.Context, project domain.ProjectContext, personaName, angle string) (string, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskAdScript,
		Prompt: prompt.AdScript(project, personaName, angle),
	})
	if err != nil {
		return "", llm.Usage{}, err
	}
	return strings.TrimSpace(res.Text), res.Usage, nil
}
