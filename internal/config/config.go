/*
Package config handles loading gift-inventory settings and the questionnaire resources.

Settings are stored in ~/.gift-inventory.yaml (optional; every field has a default):

	questions: questions.txt      # one prompt per line
	categories: categories.json   # category name -> 1-based question numbers
	responses: responses.csv      # append-only answer history
	listen: ":8080"
	title: "Which is your gift?"
	labels: ["Never/Rarely", "Sometimes", "Often", "Very Much", "Extremely"]

The catalog and category map are read once at startup into an immutable
Questionnaire that is passed explicitly to the components that need it.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTitle is the form heading used when no title is configured.
const DefaultTitle = "Which is your gift? (133 questions)"

// Settings represents the root settings structure.
type Settings struct {
	// QuestionsPath is the plain-text question catalog.
	QuestionsPath string `yaml:"questions"`

	// CategoriesPath is the JSON or YAML category map.
	CategoriesPath string `yaml:"categories"`

	// ResponsesPath is the CSV file holding every submission.
	ResponsesPath string `yaml:"responses"`

	// Listen is the address used by the serve command.
	Listen string `yaml:"listen"`

	// Title is shown above the form.
	Title string `yaml:"title"`

	// Labels are the display labels of the five answer choices, lowest first.
	Labels []string `yaml:"labels,omitempty"`
}

// DefaultSettings returns settings with every field populated.
func DefaultSettings() *Settings {
	return &Settings{
		QuestionsPath:  "questions.txt",
		CategoriesPath: "categories.json",
		ResponsesPath:  "responses.csv",
		Listen:         ":8080",
		Title:          DefaultTitle,
	}
}

// GetDefaultSettingsPath returns the path to ~/.gift-inventory.yaml
func GetDefaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gift-inventory.yaml"), nil
}

// LoadSettings reads settings from path. An empty path means the default
// location, and a missing default file yields DefaultSettings. A path given
// explicitly must exist.
func LoadSettings(path string) (*Settings, error) {
	explicit := path != ""
	if !explicit {
		p, err := GetDefaultSettingsPath()
		if err != nil {
			return DefaultSettings(), nil
		}
		path = p
	}

	data, err := readResource(path, "settings file")
	if err != nil {
		var nf *NotFoundError
		if !explicit && errors.As(err, &nf) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, wrap(&InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("YAML parse error: %v", err),
			Hint:    "Check the settings file syntax",
		})
	}

	if err := cfg.Validate(); err != nil {
		return nil, wrap(&InvalidConfigError{
			Path:    path,
			Message: err.Error(),
		})
	}

	// Relative resource paths are resolved against the settings file.
	base := filepath.Dir(path)
	cfg.QuestionsPath = resolve(base, cfg.QuestionsPath)
	cfg.CategoriesPath = resolve(base, cfg.CategoriesPath)
	cfg.ResponsesPath = resolve(base, cfg.ResponsesPath)

	return cfg, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.QuestionsPath == "" {
		return fmt.Errorf("questions path is required")
	}
	if s.CategoriesPath == "" {
		return fmt.Errorf("categories path is required")
	}
	if s.ResponsesPath == "" {
		return fmt.Errorf("responses path is required")
	}
	if len(s.Labels) != 0 && len(s.Labels) != ScaleSize {
		return fmt.Errorf("labels: expected %d entries, got %d", ScaleSize, len(s.Labels))
	}
	for i, l := range s.Labels {
		if l == "" {
			return fmt.Errorf("labels: entry %d is empty", i+1)
		}
	}
	return nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
