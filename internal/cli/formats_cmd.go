package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/admind/internal/cli/formatter"
	"github.com/alexanderramin/admind/internal/domain"
)

func newFormatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the creative format catalog",
		Run: func(cmd *cobra.Command, args []string) {
			styled := app.IsInteractive == nil || app.IsInteractive()
			for _, group := range domain.FormatGroups {
				if styled {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Header(group.Name))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group.Name)
				}
				for _, f := range group.Formats {
					marker := "  "
					if f.IsCarousel() {
						marker = "* "
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s%s\n", marker, f)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "* renders as a multi-image carousel")
		},
	}
}
