package survey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorStartsOnForm(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, ScreenForm, nav.Screen())
	assert.Equal(t, "form", nav.Screen().String())
}

func TestNavigatorTransitions(t *testing.T) {
	nav := NewNavigator()

	err := nav.Back()
	assert.True(t, errors.Is(err, ErrInvalidTransition), "back from form must fail")
	assert.Equal(t, ScreenForm, nav.Screen())

	require.NoError(t, nav.canSubmit())
	nav.submitted()
	assert.Equal(t, ScreenResults, nav.Screen())
	assert.Equal(t, "results", nav.Screen().String())

	err = nav.canSubmit()
	assert.True(t, errors.Is(err, ErrInvalidTransition), "submit from results must fail")

	require.NoError(t, nav.Back())
	assert.Equal(t, ScreenForm, nav.Screen())
}

func TestNavigatorsAreIndependent(t *testing.T) {
	a, b := NewNavigator(), NewNavigator()
	a.submitted()

	assert.Equal(t, ScreenResults, a.Screen())
	assert.Equal(t, ScreenForm, b.Screen())
}

func TestScreenStringUnknown(t *testing.T) {
	assert.Equal(t, "Screen(7)", Screen(7).String())
}
