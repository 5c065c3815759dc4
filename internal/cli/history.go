package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/gift-inventory/internal/render"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

// NewHistoryCmd creates the 'history' command for printing the stored answers.
func NewHistoryCmd(app *App) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"ls"},
		Short:   "Print every stored response",
		Long: `Print the response file as a table: one row per respondent in
submission order, one column per question.`,
		Example: `  gift-inventory history
  gift-inventory history --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.settings()
			if err != nil {
				return err
			}

			store := storage.NewCSVStore(s.ResponsesPath)
			history, err := store.LoadHistory()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(history)
			}

			if len(history) == 0 {
				fmt.Fprintln(out, "No responses yet.")
				return nil
			}
			render.New(out).History(
				fmt.Sprintf("Responses in %s (%d)", store.Path(), len(history)),
				storage.Header(history.Width()), history)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}
