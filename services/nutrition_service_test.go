package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/lexicon"
)

func TestResolveScalesLinearly(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	// Roti: 297 kcal per 100g, 60g standard serving.
	one, ok := svc.Resolve("roti", 1, "piece")
	require.True(t, ok)
	assert.InDelta(t, 297*0.6, one.Calories, 1e-9)
	assert.InDelta(t, 7.85*0.6, one.Protein, 1e-9)
	assert.InDelta(t, 298*0.6, one.Sodium, 1e-9)

	two, ok := svc.Resolve("roti", 2, "piece")
	require.True(t, ok)
	assert.InDelta(t, 2*one.Calories, two.Calories, 1e-9)
	assert.InDelta(t, 2*one.Carbs, two.Carbs, 1e-9)
	assert.InDelta(t, 2*one.Fats, two.Fats, 1e-9)
	assert.InDelta(t, 2*one.Fiber, two.Fiber, 1e-9)
}

func TestResolveCaseAndWhitespaceInsensitive(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	a, ok := svc.Resolve("  Roti ", 1, "piece")
	require.True(t, ok)
	b, ok := svc.Resolve("roti", 1, "piece")
	require.True(t, ok)
	assert.Equal(t, b, a)
}

func TestResolveExactBeatsPartial(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	// "rice" must hit the plain rice row even though "fried rice" also
	// contains it and sits earlier in the table.
	n, ok := svc.Resolve("rice", 1, "cup")
	require.True(t, ok)
	assert.Equal(t, "Rice", n.Name)

	n, ok = svc.Resolve("dal", 1, "bowl")
	require.True(t, ok)
	assert.Equal(t, "Dal", n.Name)
}

func TestResolvePartialMatch(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	n, ok := svc.Resolve("rotis", 2, "serving")
	require.True(t, ok)
	assert.Equal(t, "Roti", n.Name)

	n, ok = svc.Resolve("dal makhani", 1, "bowl")
	require.True(t, ok)
	assert.Equal(t, "Dal", n.Name)
}

func TestResolveAlternateKeys(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	a, ok := svc.Resolve("chapati", 1, "piece")
	require.True(t, ok)
	b, ok := svc.Resolve("roti", 1, "piece")
	require.True(t, ok)
	assert.Equal(t, b, a)
}

func TestResolveUnknownFood(t *testing.T) {
	svc := NewNutritionService(lexicon.New())

	_, ok := svc.Resolve("xyzfood", 1, "serving")
	assert.False(t, ok)

	_, ok = svc.Resolve("", 1, "serving")
	assert.False(t, ok)
}
