/*
Package cli implements the gift-inventory commands.

Every command shares the global flags registered by NewRootCmd. The settings
file is read first, then --questions, --categories and --responses override
the paths it names. The questionnaire is loaded only by commands that need
it, so version and help work without any resource files.
*/
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/logging"
	"github.com/khanglvm/gift-inventory/internal/storage"
	"github.com/khanglvm/gift-inventory/internal/survey"
	"github.com/khanglvm/gift-inventory/internal/version"
)

// Options holds the global flags.
type Options struct {
	ConfigPath     string
	QuestionsPath  string
	CategoriesPath string
	ResponsesPath  string
	Verbose        bool
}

// App is the state shared by every command of one invocation.
type App struct {
	opts   Options
	logger *zap.Logger
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	app := &App{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "gift-inventory",
		Short: "Spiritual gifts questionnaire with scoring and results",
		Long: `gift-inventory runs a 133-question self-assessment. Each answer is a
five-point frequency choice; the answers are stored as one row of a CSV file
and scored per gift category.

It can be taken in the terminal (take) or in a browser (serve), and the
accumulated results can be printed at any time (results, history).`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(app.opts.Verbose)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = app.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.opts.ConfigPath, "config", "c", "", "Settings file (default ~/.gift-inventory.yaml)")
	flags.StringVar(&app.opts.QuestionsPath, "questions", "", "Question catalog, one prompt per line")
	flags.StringVar(&app.opts.CategoriesPath, "categories", "", "Category map (JSON or YAML)")
	flags.StringVar(&app.opts.ResponsesPath, "responses", "", "CSV file holding every submission")
	flags.BoolVarP(&app.opts.Verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewTakeCmd(app))
	rootCmd.AddCommand(NewResultsCmd(app))
	rootCmd.AddCommand(NewHistoryCmd(app))
	rootCmd.AddCommand(NewServeCmd(app))
	rootCmd.AddCommand(NewVerifyCmd(app))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// settings reads the settings file and applies the path flags.
func (a *App) settings() (*config.Settings, error) {
	s, err := config.LoadSettings(a.opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if a.opts.QuestionsPath != "" {
		s.QuestionsPath = a.opts.QuestionsPath
	}
	if a.opts.CategoriesPath != "" {
		s.CategoriesPath = a.opts.CategoriesPath
	}
	if a.opts.ResponsesPath != "" {
		s.ResponsesPath = a.opts.ResponsesPath
	}
	return s, nil
}

// service loads the questionnaire and opens the response file. The service
// logs through the command logger.
func (a *App) service() (*survey.Service, *config.Settings, error) {
	return a.serviceWith(a.logger)
}

// serviceWith is service with the service logging to logger instead.
func (a *App) serviceWith(logger *zap.Logger) (*survey.Service, *config.Settings, error) {
	s, err := a.settings()
	if err != nil {
		return nil, nil, err
	}

	q, err := config.Load(s)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Questionnaire loaded",
		zap.String("questions", s.QuestionsPath),
		zap.String("categories", s.CategoriesPath),
		zap.Int("prompts", q.Catalog.Len()),
		zap.Int("gifts", q.Categories.Len()))

	svc, err := survey.NewService(q, storage.NewCSVStore(s.ResponsesPath), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid answer labels: %w", err)
	}
	return svc, s, nil
}
