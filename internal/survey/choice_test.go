package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScaleDefaults(t *testing.T) {
	s, err := NewScale(nil)
	require.NoError(t, err)

	choices := s.Choices()
	require.Len(t, choices, 5)
	assert.Equal(t, Choice{Label: "Never/Rarely", Value: 1}, choices[0])
	assert.Equal(t, Choice{Label: "Extremely", Value: 5}, choices[4])

	for i := 1; i < len(choices); i++ {
		assert.Greater(t, choices[i].Value, choices[i-1].Value, "values must follow label order")
	}
}

func TestScaleLookup(t *testing.T) {
	s, err := NewScale(PortugueseLabels)
	require.NoError(t, err)

	v, ok := s.Value("Muitíssimo")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = s.Value("Extremely")
	assert.False(t, ok)

	l, ok := s.Label(2)
	assert.True(t, ok)
	assert.Equal(t, "Às vezes", l)

	_, ok = s.Label(0)
	assert.False(t, ok)
	_, ok = s.Label(6)
	assert.False(t, ok)
}

func TestNewScaleErrors(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		errMsg string
	}{
		{name: "too few", labels: []string{"a", "b"}, errMsg: "needs 5 labels, got 2"},
		{name: "empty label", labels: []string{"a", "b", "", "d", "e"}, errMsg: "label 3 is empty"},
		{name: "duplicate", labels: []string{"a", "b", "a", "d", "e"}, errMsg: `"a" used twice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScale(tt.labels)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestChoicesReturnsCopy(t *testing.T) {
	s, err := NewScale(nil)
	require.NoError(t, err)

	c := s.Choices()
	c[0].Label = "changed"
	assert.Equal(t, "Never/Rarely", s.Choices()[0].Label)
}
