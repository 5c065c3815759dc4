package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

// NewVerifyCmd creates the 'verify' command for checking the resource files.
func NewVerifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify settings, questionnaire and response file",
		Long: `Load the settings, the question catalog and the category map, check
that every category refers to an existing question, and check that the
response file (if any) matches the catalog.`,
		Example: `  gift-inventory verify
  gift-inventory verify --questions perguntas.txt --categories gabarito.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, app)
		},
	}

	return cmd
}

// runVerify validates the configuration.
func runVerify(cmd *cobra.Command, app *App) error {
	out := cmd.OutOrStdout()

	s, err := app.settings()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	q, err := config.Load(s)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	fmt.Fprintf(out, "✓ Questions: %s (%d)\n", s.QuestionsPath, q.Catalog.Len())
	for _, n := range q.Catalog.EmptyPrompts() {
		fmt.Fprintf(out, "  ! question %d: empty prompt\n", n)
	}
	fmt.Fprintf(out, "✓ Gifts: %s (%d)\n", s.CategoriesPath, q.Categories.Len())
	for _, c := range q.Categories.Categories() {
		if len(c.Indices) == 0 {
			fmt.Fprintf(out, "  ! %s: no questions\n", c.Name)
		}
	}

	history, err := storage.NewCSVStore(s.ResponsesPath).LoadHistory()
	if err != nil {
		fmt.Fprintf(out, "✗ Responses: %v\n", err)
		return fmt.Errorf("response file is unusable: %w", err)
	}
	if w := history.Width(); w != 0 && w != q.Catalog.Len() {
		fmt.Fprintf(out, "✗ Responses: %s has %d columns, catalog has %d questions\n",
			s.ResponsesPath, w, q.Catalog.Len())
		return fmt.Errorf("response file does not match the catalog")
	}
	fmt.Fprintf(out, "✓ Responses: %s (%d)\n", s.ResponsesPath, len(history))

	return nil
}
