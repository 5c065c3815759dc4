package config

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Catalog is the ordered list of question prompts. Index i holds question
// number i+1.
type Catalog struct {
	prompts []string
}

// NewCatalog copies prompts into a catalog.
func NewCatalog(prompts []string) *Catalog {
	return &Catalog{prompts: append([]string(nil), prompts...)}
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.prompts)
}

// Prompt returns the prompt for 0-based index i.
func (c *Catalog) Prompt(i int) string {
	return c.prompts[i]
}

// Prompts returns a copy of every prompt in order.
func (c *Catalog) Prompts() []string {
	return append([]string(nil), c.prompts...)
}

// EmptyPrompts returns the 1-based numbers of questions whose prompt is blank.
func (c *Catalog) EmptyPrompts() []int {
	var blank []int
	for i, p := range c.prompts {
		if p == "" {
			blank = append(blank, i+1)
		}
	}
	return blank
}

// LoadCatalog reads one prompt per line. Surrounding whitespace is trimmed;
// a trailing newline does not add an extra question. Blank lines inside the
// file keep their place as questions with an empty prompt.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := readResource(path, "question catalog")
	if err != nil {
		return nil, err
	}

	prompts, err := parseCatalog(data)
	if err != nil {
		return nil, wrap(&InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "The catalog must contain one question prompt per line",
		})
	}

	return &Catalog{prompts: prompts}, nil
}

func parseCatalog(data []byte) ([]string, error) {
	var prompts []string

	data = bytes.TrimPrefix(data, utf8BOM)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		prompts = append(prompts, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}

	if len(prompts) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return prompts, nil
}
