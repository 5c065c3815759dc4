package survey

import (
	"fmt"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

// DefaultLabels are the answer labels used when none are configured,
// lowest intensity first.
var DefaultLabels = []string{
	"Never/Rarely",
	"Sometimes",
	"Often",
	"Very Much",
	"Extremely",
}

// PortugueseLabels are the Portuguese answer labels.
var PortugueseLabels = []string{
	"Nunca ou Raramente",
	"Às vezes",
	"Frequentemente",
	"Muito",
	"Muitíssimo",
}

// Choice is one answer option. Value is the score the choice contributes.
type Choice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Scale is the ordered set of answer choices shared by every question.
// Values run from storage.MinValue to storage.MaxValue in label order.
type Scale struct {
	choices []Choice
}

// NewScale builds a scale from labels, lowest first. An empty list selects
// DefaultLabels.
func NewScale(labels []string) (*Scale, error) {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	if len(labels) != config.ScaleSize {
		return nil, fmt.Errorf("answer scale needs %d labels, got %d", config.ScaleSize, len(labels))
	}

	seen := make(map[string]bool, len(labels))
	s := &Scale{choices: make([]Choice, len(labels))}
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("answer label %d is empty", i+1)
		}
		if seen[l] {
			return nil, fmt.Errorf("answer label %q used twice", l)
		}
		seen[l] = true
		s.choices[i] = Choice{Label: l, Value: storage.MinValue + i}
	}
	return s, nil
}

// Choices returns the choices, lowest value first.
func (s *Scale) Choices() []Choice {
	return append([]Choice(nil), s.choices...)
}

// Value returns the numeric value of label.
func (s *Scale) Value(label string) (int, bool) {
	for _, c := range s.choices {
		if c.Label == label {
			return c.Value, true
		}
	}
	return 0, false
}

// Label returns the label of value.
func (s *Scale) Label(value int) (string, bool) {
	i := value - storage.MinValue
	if i < 0 || i >= len(s.choices) {
		return "", false
	}
	return s.choices[i].Label, true
}
