package config

import "fmt"

// ValidateCategories checks a category list against a catalog of the given
// size. Indices are 0-based. Questions may be shared between categories but
// not listed twice inside one.
func ValidateCategories(questions int, categories []Category) error {
	if questions <= 0 {
		return fmt.Errorf("catalog has no questions")
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.Name == "" {
			return fmt.Errorf("category with empty name")
		}
		if names[c.Name] {
			return fmt.Errorf("category %q defined twice", c.Name)
		}
		names[c.Name] = true

		seen := make(map[int]bool, len(c.Indices))
		for _, idx := range c.Indices {
			if idx < 0 || idx >= questions {
				return fmt.Errorf("category %q: question %d out of range 1..%d", c.Name, idx+1, questions)
			}
			if seen[idx] {
				return fmt.Errorf("category %q: question %d listed twice", c.Name, idx+1)
			}
			seen[idx] = true
		}
	}

	return nil
}
