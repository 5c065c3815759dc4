package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khanglvm/gift-inventory/internal/logging"
	"github.com/khanglvm/gift-inventory/internal/render"
	"github.com/khanglvm/gift-inventory/internal/survey"
	"github.com/khanglvm/gift-inventory/internal/tui"
)

// NewTakeCmd creates the 'take' command for answering in the terminal.
func NewTakeCmd(app *App) *cobra.Command {
	var showAll bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer the questionnaire in the terminal",
		Long: `Show the questionnaire one question at a time. Pick a choice with the
arrow keys or its number; the form is stored after the last question and the
results are shown. Every question must be answered.

The form owns the terminal while it runs, so nothing is logged to stderr.
Use --log-file to keep the log.

Keys:
  ↑/↓, k/j     move between choices
  1-5          pick a choice directly
  enter        select and go to the next question
  ←/→          previous / next question
  b            back to the form from the results
  esc, ctrl+c  quit`,
		Example: `  gift-inventory take
  gift-inventory take --responses ./church.csv
  gift-inventory take --log-file take.log --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, logger, err := takeService(app, logFile)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := tui.Run(cmd.Context(), svc, render.Options{Respondents: showAll}); err != nil {
				return fmt.Errorf("terminal form failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Rank every respondent on the results screen")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write the log to this file (default: discard)")

	return cmd
}

// takeService builds the service for the terminal form with a logger that
// never writes to the terminal.
func takeService(app *App, logFile string) (*survey.Service, *zap.Logger, error) {
	logger, err := logging.NewFile(logFile, app.opts.Verbose)
	if err != nil {
		return nil, nil, err
	}

	svc, _, err := app.serviceWith(logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, logger, nil
}
