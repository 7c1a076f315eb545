package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/admind/internal/cli/formatter"
	"github.com/alexanderramin/admind/internal/domain"
	"github.com/alexanderramin/admind/internal/graph"
	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/orchestrator"
	"github.com/alexanderramin/admind/internal/prompt"
	"github.com/alexanderramin/admind/internal/simulate"
)

// newDemoCmd runs the full campaign engine offline with canned strategy
// data: expand, generate, then age the creatives through simulation passes.
// Useful for demos and for eyeballing layout and phase behavior without an
// API key.
func newDemoCmd(app *App) *cobra.Command {
	var (
		seed   int64
		passes int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an offline demo session with canned generation data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			project := app.Config.SeedProject()
			store := graph.NewSessionStore(project)

			engine := orchestrator.NewEngine(
				store, project,
				cannedStrategy{}, cannedCreative{}, cannedImage{}, cannedContext{},
				app.Log,
				orchestrator.WithSleep(func(ctx context.Context, d time.Duration) error { return nil }),
			)

			ctx := cmd.Context()
			personas, err := engine.ExpandPersonas(ctx, "root")
			if err != nil {
				return err
			}
			angles, err := engine.ExpandAngles(ctx, personas[0].ID)
			if err != nil {
				return err
			}
			creatives, err := engine.GenerateCreatives(ctx, angles[0].ID, []domain.CreativeFormat{
				domain.Meme, domain.UsVsThem, domain.CarouselRealStory,
			})
			if err != nil {
				return err
			}

			sim := simulate.NewEngine(rand.New(rand.NewSource(seed)), app.Log)
			for i := 0; i < passes; i++ {
				sim.Run(store)
			}

			fmt.Fprintln(out, formatter.Header(project.ProductName))
			fmt.Fprintf(out, "%d personas, %d angles, %d creatives, %d simulated days\n\n",
				len(personas), len(angles), len(creatives), passes)

			for _, id := range nodeIDs(creatives) {
				n, _ := store.Node(id)
				fmt.Fprintf(out, "%s  %s\n", formatter.VerdictIndicator(n), formatter.StyleBold.Render(n.Title))
				if n.Metrics != nil {
					fmt.Fprintf(out, "   %s  CTR %.2f%%  ROAS %.2f  spend $%.0f  %s\n",
						formatter.PhaseColor(n.AnalysisPhase).Render(string(n.AnalysisPhase)),
						n.Metrics.CTR, n.Metrics.ROAS, n.Metrics.Spend,
						formatter.Cost(n.EstimatedCost))
					fmt.Fprintf(out, "   %s\n", formatter.StyleDim.Render(n.Insight))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "simulation random seed")
	cmd.Flags().IntVar(&passes, "passes", 8, "simulation passes (24h each)")
	return cmd
}

func nodeIDs(nodes []domain.Node) []string {
	ids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

// Canned services produce fixed strategy data so the demo runs offline.

type cannedStrategy struct{}

func (cannedStrategy) Personas(ctx context.Context, project domain.ProjectContext) ([]domain.Persona, llm.Usage, error) {
	return []domain.Persona{
		{Name: "The Skeptical Analyst", Profile: "32, reads every label twice", Motivation: "Wants proof, not promises", DeepFear: "Being fooled by marketing"},
		{Name: "The Burned-Out Builder", Profile: "28, ships code at midnight", Motivation: "Focus without the 3pm crash", DeepFear: "Falling behind peers"},
		{Name: "The Deadline Student", Profile: "21, finals in two weeks", Motivation: "Needs results fast", DeepFear: "Failing despite effort"},
	}, llm.Usage{InputTokens: 600, OutputTokens: 450}, nil
}

func (cannedStrategy) Angles(ctx context.Context, project domain.ProjectContext, personaName, personaMotivation string) ([]domain.Angle, llm.Usage, error) {
	return []domain.Angle{
		{Headline: "The 3pm Crash Is Not Normal", PainPoint: "Afternoon focus collapse", PsychologicalTrigger: "Pattern Interrupt", TestingTier: "TIER 1"},
		{Headline: "Caffeine Is Borrowed Energy", PainPoint: "Crash follows every boost", PsychologicalTrigger: "Reframing", TestingTier: "TIER 2"},
		{Headline: "Two Gummies, Four Clear Hours", PainPoint: "Scattered deep work", PsychologicalTrigger: "Specificity", TestingTier: "TIER 3"},
	}, llm.Usage{InputTokens: 700, OutputTokens: 520}, nil
}

func (cannedStrategy) Stories(ctx context.Context, project domain.ProjectContext) ([]domain.StoryOption, llm.Usage, error) {
	return []domain.StoryOption{
		{ID: "story-0", Title: "I rewrote the same paragraph nine times", Narrative: "Every afternoon my brain just leaves.", EmotionalTheme: "Exhaustion"},
	}, llm.Usage{InputTokens: 500, OutputTokens: 400}, nil
}

func (cannedStrategy) BigIdeas(ctx context.Context, project domain.ProjectContext, story domain.StoryOption) ([]domain.BigIdeaOption, llm.Usage, error) {
	return []domain.BigIdeaOption{
		{ID: "idea-0", Headline: "It's not willpower, it's glucose whiplash", Concept: "Blame the fuel curve, not the person", TargetBelief: "I just need more discipline"},
	}, llm.Usage{InputTokens: 450, OutputTokens: 380}, nil
}

func (cannedStrategy) Mechanisms(ctx context.Context, project domain.ProjectContext, idea domain.BigIdeaOption) ([]domain.MechanismOption, llm.Usage, error) {
	return []domain.MechanismOption{
		{ID: "mech-0", UMP: "Caffeine spikes then crashes dopamine", UMS: "Slow-release nootropics hold a plateau", ScientificPseudo: "The Plateau Protocol"},
	}, llm.Usage{InputTokens: 420, OutputTokens: 360}, nil
}

func (cannedStrategy) Hooks(ctx context.Context, idea domain.BigIdeaOption, mech domain.MechanismOption) ([]string, llm.Usage, error) {
	return []string{"Your focus didn't fail. Your fuel did."}, llm.Usage{InputTokens: 300, OutputTokens: 150}, nil
}

func (cannedStrategy) SalesLetter(ctx context.Context, project domain.ProjectContext, story domain.StoryOption, idea domain.BigIdeaOption, mech domain.MechanismOption, hook string) (string, llm.Usage, error) {
	return hook + "\n\nI used to lose every afternoon to the crash...", llm.Usage{InputTokens: 900, OutputTokens: 700}, nil
}

type cannedCreative struct{}

func (cannedCreative) Concept(ctx context.Context, project domain.ProjectContext, personaName, angle string, format domain.CreativeFormat) (domain.CreativeConcept, llm.Usage, error) {
	return domain.CreativeConcept{
		VisualScene:         "A desk at 3pm, sunlight cutting across an untouched to-do list",
		VisualStyle:         "Candid, natural light",
		TechnicalPrompt:     "Candid photo of a tired professional at a sunlit desk, untouched to-do list in frame",
		CopyAngle:           "Lead with the crash, not the product",
		Rationale:           "Isolates the afternoon-crash concept",
		CongruenceRationale: "The headline names the crash; the image shows it happening",
	}, llm.Usage{InputTokens: 800, OutputTokens: 500}, nil
}

func (cannedCreative) Copy(ctx context.Context, project domain.ProjectContext, persona domain.Persona, concept domain.CreativeConcept) (domain.AdCopy, llm.Usage, error) {
	return domain.AdCopy{
		PrimaryText: "The 3pm crash isn't a character flaw. It's chemistry, and chemistry has fixes.",
		Headline:    "Cancel Your 3pm Crash",
		CTA:         "Try " + project.Offer,
	}, llm.Usage{InputTokens: 650, OutputTokens: 300}, nil
}

func (cannedCreative) Compliance(ctx context.Context, copy domain.AdCopy) (string, llm.Usage, error) {
	return "SAFE", llm.Usage{InputTokens: 120, OutputTokens: 5}, nil
}

func (cannedCreative) AdScript(ctx context.Context, project domain.ProjectContext, personaName, angle string) (string, llm.Usage, error) {
	return "POV: it's 3pm and your brain clocked out. [holds up gummies] Not today.", llm.Usage{InputTokens: 200, OutputTokens: 60}, nil
}

type cannedImage struct{}

func (cannedImage) CreativeImage(ctx context.Context, p prompt.ImageParams, aspectRatio string) (string, llm.Usage, error) {
	return "data:image/png;base64,ZGVtbw==", llm.Usage{InputTokens: 400, OutputTokens: 0}, nil
}

func (cannedImage) CarouselImages(ctx context.Context, p prompt.ImageParams) ([]string, llm.Usage, error) {
	return []string{
		"data:image/png;base64,ZGVtbzE=",
		"data:image/png;base64,ZGVtbzI=",
		"data:image/png;base64,ZGVtbzM=",
	}, llm.Usage{InputTokens: 1200, OutputTokens: 0}, nil
}

type cannedContext struct{}

func (cannedContext) AnalyzeLandingPage(ctx context.Context, markdown string) (domain.ProjectContext, llm.Usage, error) {
	return domain.ProjectContext{}, llm.Usage{}, nil
}

func (cannedContext) AnalyzeProductImage(ctx context.Context, image []byte, mime string) (domain.ProjectContext, llm.Usage, error) {
	return domain.ProjectContext{}, llm.Usage{}, nil
}
