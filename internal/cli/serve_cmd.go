package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/llm"
	"github.com/alexanderramin/admind/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the campaign map HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.APIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is not set")
			}
			if addr != "" {
				app.Config.Server.Addr = addr
			}

			llmCfg := llm.LoadConfig()
			llmCfg.APIKey = app.Config.APIKey
			llmCfg.TextModel = app.Config.Models.Text
			llmCfg.ImageModel = app.Config.Models.Image
			llmCfg.TimeoutMs = app.Config.Models.TimeoutMs

			client, err := llm.NewGeminiClient(context.Background(), llmCfg, llm.NewZapObserver(app.Log))
			if err != nil {
				return fmt.Errorf("initializing generation client: %w", err)
			}
			defer client.Close()

			srv := server.NewServer(app.Config, client, app.Log)
			router := srv.SetupRouter()

			app.Log.Info("serving", zap.String("addr", app.Config.Server.Addr))
			return router.Run(app.Config.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
