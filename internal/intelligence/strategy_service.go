// Package intelligence exposes the model-backed services the orchestrator
// composes: audience strategy, creative production, image synthesis, and
// project context analysis. Each service owns its prompts and validates the
// structured output before returning domain types.
package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/prompt"
)

// StrategyService produces the strategic layers of the map: personas and
// angles for the standard workflow, stories through sales letters for the
// story-lead workflow.
type StrategyService interface {
	Personas(ctx context.Context, project domain.ProjectContext) ([]domain.Persona, llm.Usage, error)
	Angles(ctx context.Context, project domain.ProjectContext, personaName, personaMotivation string) ([]domain.Angle, llm.Usage, error)
	Stories(ctx context.Context, project domain.ProjectContext) ([]domain.StoryOption, llm.Usage, error)
	BigIdeas(ctx context.Context, project domain.ProjectContext, story domain.StoryOption) ([]domain.BigIdeaOption, llm.Usage, error)
	Mechanisms(ctx context.Context, project domain.ProjectContext, idea domain.BigIdeaOption) ([]domain.MechanismOption, llm.Usage, error)
	Hooks(ctx context.Context, idea domain.BigIdeaOption, mech domain.MechanismOption) ([]string, llm.Usage, error)
	SalesLetter(ctx context.Context, project domain.ProjectContext, story domain.StoryOption, idea domain.BigIdeaOption, mech domain.MechanismOption, hook string) (string, llm.Usage, error)
}

type strategyService struct {
	client llm.Client
}

// NewStrategyService creates a StrategyService backed by a generation client.
func NewStrategyService(client llm.Client) StrategyService {
	return &strategyService{client: client}
}

func (s *strategyService) Personas(ctx context.Context, project domain.ProjectContext) ([]domain.Persona, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskPersonas,
		Prompt: prompt.Personas(project),
		Schema: prompt.PersonasSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	personas, err := llm.Decode(res.Text, func(ps []domain.Persona) error {
		if len(ps) == 0 {
			return fmt.Errorf("no personas returned")
		}
		for i, p := range ps {
			if p.Name == "" || p.Profile == "" || p.Motivation == "" {
				return fmt.Errorf("persona %d missing required fields", i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	return personas, res.Usage, nil
}

func (s *strategyService) Angles(ctx context.Context, project domain.ProjectContext, personaName, personaMotivation string) ([]domain.Angle, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskAngles,
		Prompt: prompt.Angles(project, personaName, personaMotivation),
		Schema: prompt.AnglesSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	angles, err := llm.Decode(res.Text, func(as []domain.Angle) error {
		if len(as) == 0 {
			return fmt.Errorf("no angles returned")
		}
		for i, a := range as {
			if a.Headline == "" || a.PainPoint == "" {
				return fmt.Errorf("angle %d missing required fields", i)
			}
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	return angles, res.Usage, nil
}

func (s *strategyService) Stories(ctx context.Context, project domain.ProjectContext) ([]domain.StoryOption, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskStories,
		Prompt: prompt.Stories(project),
		Schema: prompt.StoriesSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	stories, err := llm.Decode(res.Text, func(ss []domain.StoryOption) error {
		if len(ss) == 0 {
			return fmt.Errorf("no stories returned")
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	for i := range stories {
		stories[i].ID = fmt.Sprintf("story-%d", i)
	}
	return stories, res.Usage, nil
}

func (s *strategyService) BigIdeas(ctx context.Context, project domain.ProjectContext, story domain.StoryOption) ([]domain.BigIdeaOption, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskBigIdeas,
		Prompt: prompt.BigIdeas(project, story),
		Schema: prompt.BigIdeasSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	ideas, err := llm.Decode(res.Text, func(is []domain.BigIdeaOption) error {
		if len(is) == 0 {
			return fmt.Errorf("no big ideas returned")
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	for i := range ideas {
		ideas[i].ID = fmt.Sprintf("idea-%d", i)
	}
	return ideas, res.Usage, nil
}

func (s *strategyService) Mechanisms(ctx context.Context, project domain.ProjectContext, idea domain.BigIdeaOption) ([]domain.MechanismOption, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskMechanisms,
		Prompt: prompt.Mechanisms(project, idea),
		Schema: prompt.MechanismsSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	mechs, err := llm.Decode(res.Text, func(ms []domain.MechanismOption) error {
		if len(ms) == 0 {
			return fmt.Errorf("no mechanisms returned")
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	for i := range mechs {
		mechs[i].ID = fmt.Sprintf("mech-%d", i)
	}
	return mechs, res.Usage, nil
}

func (s *strategyService) Hooks(ctx context.Context, idea domain.BigIdeaOption, mech domain.MechanismOption) ([]string, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskHooks,
		Prompt: prompt.Hooks(idea, mech),
		Schema: prompt.HooksSchema,
	})
	if err != nil {
		return nil, llm.Usage{}, err
	}

	hooks, err := llm.Decode(res.Text, func(hs []string) error {
		if len(hs) == 0 {
			return fmt.Errorf("no hooks returned")
		}
		return nil
	})
	if err != nil {
		return nil, res.Usage, err
	}
	return hooks, res.Usage, nil
}

func (s *strategyService) SalesLetter(ctx context.Context, project domain.ProjectContext, story domain.StoryOption, idea domain.BigIdeaOption, mech domain.MechanismOption, hook string) (string, llm.Usage, error) {
	res, err := s.client.GenerateText(ctx, llm.TextRequest{
		Task:   llm.TaskSalesLetter,
		Prompt: prompt.SalesLetter(project, story, idea, mech, hook),
	})
	if err != nil {
		return "", llm.Usage{}, err
	}
	return res.Text, res.Usage, nil
}
