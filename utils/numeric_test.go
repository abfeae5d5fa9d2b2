package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokensSeparatesNumbersFromWords(t *testing.T) {
	nums, words := SplitTokens("Paneer Tikka 2 150 300.00")

	assert.Equal(t, []string{"Paneer", "Tikka"}, words)
	assert.Len(t, nums, 3)
	assert.Equal(t, 2.0, nums[0].Value)
	assert.Equal(t, 150.0, nums[1].Value)
	assert.Equal(t, 300.0, nums[2].Value)
}

func TestSplitTokensConfusableSubstitution(t *testing.T) {
	nums, words := SplitTokens("o50 l2")

	assert.Empty(t, words)
	assert.Len(t, nums, 2)
	assert.Equal(t, 50.0, nums[0].Value)
	assert.True(t, nums[0].Substituted)
	assert.Equal(t, 12.0, nums[1].Value)
	assert.True(t, nums[1].Substituted)
}

func TestSplitTokensDropsBareDecimalPoint(t *testing.T) {
	// "Rs." strips down to a lone dot and is neither a number nor a word.
	nums, words := SplitTokens("Rs. 250")

	assert.Empty(t, words)
	assert.Len(t, nums, 1)
	assert.Equal(t, 250.0, nums[0].Value)
	assert.False(t, nums[0].Substituted)
}

func TestSplitTokensRejectsGarbageMagnitudes(t *testing.T) {
	nums, words := SplitTokens("999999")

	assert.Empty(t, nums)
	assert.Equal(t, []string{"999999"}, words)
}

func TestSplitTokensKeepsOriginalCasing(t *testing.T) {
	nums, words := SplitTokens("CHAI x2")

	assert.Equal(t, []string{"CHAI"}, words)
	assert.Len(t, nums, 1)
	assert.Equal(t, 2.0, nums[0].Value)
}

func TestRecoverTrailingAmount(t *testing.T) {
	tests := []struct {
		token    string
		expected float64
	}{
		{"x50", 50},
		{"40.00", 40},
		{"1so", 150},
		{"again", 0},  // no real digit, not worth guessing
		{"m0", 0},     // recovers only a zero
		{"Roti", 0},   // letters alone never become an amount
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, recoverTrailingAmount(tt.token), "token %q", tt.token)
	}
}
