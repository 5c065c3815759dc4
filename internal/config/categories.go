package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Category is one named group of questions. Indices are 0-based.
type Category struct {
	Name    string
	Indices []int
}

// CategoryMap maps category names to question indices, keeping the order in
// which categories were declared. Ranked results use that order to break ties.
type CategoryMap struct {
	categories []Category
}

// NewCategoryMap validates categories against a catalog of the given size and
// returns an immutable map. Indices are 0-based.
func NewCategoryMap(questions int, categories ...Category) (*CategoryMap, error) {
	if err := ValidateCategories(questions, categories); err != nil {
		return nil, err
	}

	m := &CategoryMap{categories: make([]Category, len(categories))}
	for i, c := range categories {
		m.categories[i] = Category{
			Name:    c.Name,
			Indices: append([]int(nil), c.Indices...),
		}
	}
	return m, nil
}

// Len returns the number of categories.
func (m *CategoryMap) Len() int {
	return len(m.categories)
}

// Categories returns a copy of the categories in declaration order.
func (m *CategoryMap) Categories() []Category {
	out := make([]Category, len(m.categories))
	for i, c := range m.categories {
		out[i] = Category{Name: c.Name, Indices: append([]int(nil), c.Indices...)}
	}
	return out
}

// Names returns the category names in declaration order.
func (m *CategoryMap) Names() []string {
	names := make([]string, len(m.categories))
	for i, c := range m.categories {
		names[i] = c.Name
	}
	return names
}

// LoadCategoryMap reads a JSON or YAML mapping of category name to 1-based
// question numbers and converts every number to a 0-based index.
func LoadCategoryMap(path string, questions int) (*CategoryMap, error) {
	data, err := readResource(path, "category map")
	if err != nil {
		return nil, err
	}

	categories, err := parseCategories(data)
	if err != nil {
		return nil, wrap(&InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    `Expected a mapping like {"Teaching": [1, 25, 49], "Mercy": [2, 26]}`,
		})
	}

	m, err := NewCategoryMap(questions, categories...)
	if err != nil {
		return nil, wrap(&InvalidConfigError{
			Path:    path,
			Message: err.Error(),
		})
	}
	return m, nil
}

// parseCategories walks the YAML node tree rather than decoding into a Go map
// so that declaration order survives. JSON input is valid YAML.
func parseCategories(data []byte) ([]Category, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse error: %v", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("category map is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of category name to question numbers", root.Line)
	}

	categories := make([]Category, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: category name must be a string", key.Line)
		}
		if value.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: category %q: expected a list of question numbers", value.Line, key.Value)
		}

		indices := make([]int, 0, len(value.Content))
		for _, item := range value.Content {
			n, err := questionNumber(item)
			if err != nil {
				return nil, fmt.Errorf("line %d: category %q: %v", item.Line, key.Value, err)
			}
			indices = append(indices, n-1)
		}

		categories = append(categories, Category{Name: key.Value, Indices: indices})
	}

	return categories, nil
}

// questionNumber accepts integers and strings holding integers.
func questionNumber(n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("question number must be an integer")
	}

	switch n.ShortTag() {
	case "!!int":
		var v int
		if err := n.Decode(&v); err != nil {
			return 0, fmt.Errorf("question number %q: %v", n.Value, err)
		}
		return v, nil
	case "!!str":
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return 0, fmt.Errorf("question number %q is not an integer", n.Value)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("question number %q is not an integer", n.Value)
	}
}
