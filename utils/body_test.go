package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	require.NoError(t, err)
	assert.InDelta(t, 22.857, bmi, 0.001)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(22.0))
	assert.Equal(t, "Overweight", BMICategory(27.5))
	assert.Equal(t, "Obesity class I", BMICategory(32.0))
	assert.Equal(t, "Obesity class III", BMICategory(42.0))
}

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*30 = 1643.75
	assert.InDelta(t, 1648.75, CalculateBMR(70, 175, 30, "male"), 1e-9)
	assert.InDelta(t, 1482.75, CalculateBMR(70, 175, 30, "female"), 1e-9)
	// Unspecified sex takes the female constant.
	assert.InDelta(t, 1482.75, CalculateBMR(70, 175, 30, ""), 1e-9)
}

func TestCalculateTDEE(t *testing.T) {
	assert.InDelta(t, 1200*1.2, CalculateTDEE(1200, "sedentary"), 1e-9)
	assert.InDelta(t, 1200*1.725, CalculateTDEE(1200, "very_active"), 1e-9)
	assert.InDelta(t, 1200*1.55, CalculateTDEE(1200, "couch"), 1e-9)
}
