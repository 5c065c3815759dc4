package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/gift-inventory/internal/render"
)

// NewResultsCmd creates the 'results' command for printing the results screen.
func NewResultsCmd(app *App) *cobra.Command {
	var jsonOutput bool
	var showHistory bool
	var showAll bool

	cmd := &cobra.Command{
		Use:   "results",
		Short: "Show the latest respondent's scores and the totals",
		Long: `Score the stored responses and print the results screen: the most
recent respondent's gifts ranked from highest to lowest, followed by a bar
chart of every gift's total across all respondents.`,
		Example: `  gift-inventory results
  gift-inventory results --history   # also print the raw answers
  gift-inventory results --all       # also rank every respondent
  gift-inventory results --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := app.service()
			if err != nil {
				return err
			}

			res, err := svc.Results()
			if err != nil {
				return fmt.Errorf("failed to load results: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			render.New(out).Results(res, render.Options{
				Respondents: showAll,
				History:     showHistory || showAll,
			})
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Also print every stored response")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also rank every respondent (implies --history)")

	return cmd
}
