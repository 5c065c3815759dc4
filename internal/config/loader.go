package config

import (
	"fmt"
	"os"
	"runtime"
)

// ScaleSize is the number of answer choices every question offers.
const ScaleSize = 5

// Questionnaire is the read-only configuration shared by the scorer, the
// survey service and the presentation layers. It is built once by Load and
// never mutated afterwards.
type Questionnaire struct {
	Title      string
	Catalog    *Catalog
	Categories *CategoryMap
	// Labels overrides the default answer labels when non-empty.
	Labels []string
}

// Load reads the catalog and category map named by settings and checks that
// every category references an existing question.
func Load(s *Settings) (*Questionnaire, error) {
	if err := s.Validate(); err != nil {
		return nil, wrap(&InvalidConfigError{Path: "settings", Message: err.Error()})
	}

	catalog, err := LoadCatalog(s.QuestionsPath)
	if err != nil {
		return nil, err
	}

	categories, err := LoadCategoryMap(s.CategoriesPath, catalog.Len())
	if err != nil {
		return nil, err
	}

	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Questionnaire{
		Title:      title,
		Catalog:    catalog,
		Categories: categories,
		Labels:     append([]string(nil), s.Labels...),
	}, nil
}

// readResource reads a config resource with typed errors.
func readResource(path, what string) ([]byte, error) {
	// Check file existence first
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, wrap(&NotFoundError{
				Path: path,
				What: what,
				Hint: "Pass the right path with a flag or set it in ~/.gift-inventory.yaml",
			})
		}
		return nil, wrap(fmt.Errorf("failed to access %s: %w", what, err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, wrap(&PermissionError{
				Path:    path,
				Fix:     getReadPermissionFix(path),
				Details: getPermissionDetails(path),
			})
		}
		return nil, wrap(fmt.Errorf("failed to read %s: %w", what, err))
	}

	return data, nil
}

// getReadPermissionFix returns platform-specific fix command
func getReadPermissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default: // unix-like
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}

// getPermissionDetails checks file permissions
func getPermissionDetails(path string) string {
	if runtime.GOOS == "windows" {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("Current permissions: %04o", info.Mode().Perm())
}
