package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.14, RoundWithTwoDecimalPlace(3.14159))
	assert.Equal(t, 2.68, RoundWithTwoDecimalPlace(2.678))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -1.5, RoundWithTwoDecimalPlace(-1.499))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, SafeDivide(5, 2))
	assert.Equal(t, 0.0, SafeDivide(5, 0))
	assert.Equal(t, 0.0, SafeDivide(math.Inf(1), 2))
	assert.Equal(t, 0.0, SafeDivide(math.NaN(), 2))
}

func TestSafePercentage(t *testing.T) {
	assert.Equal(t, 50.0, SafePercentage(1, 2))
	assert.Equal(t, 0.0, SafePercentage(1, 0))
	assert.InDelta(t, 33.33, SafePercentage(1, 3), 0.01)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(42, 0, 10))
}
