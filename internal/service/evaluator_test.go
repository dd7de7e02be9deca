package service

import (
	"testing"

	"cricwordle_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateGuessExactMatch(t *testing.T) {
	feedback, err := EvaluateGuess("apple", "apple")
	require.NoError(t, err)

	require.Len(t, feedback, 5)
	for i, f := range feedback {
		assert.Equal(t, LetterCorrect, f, "position %d", i)
	}
	assert.True(t, Solved(feedback))
}

func TestEvaluateGuessCaseInsensitive(t *testing.T) {
	feedback, err := EvaluateGuess("Yorker", "YORKER")
	require.NoError(t, err)
	assert.True(t, Solved(feedback))
}

func TestEvaluateGuessLengthMismatch(t *testing.T) {
	feedback, err := EvaluateGuess("cat", "cats")
	require.ErrorIs(t, err, util.ErrGuessLengthMismatch)
	assert.Nil(t, feedback)
}

func TestEvaluateGuessDuplicateLetters(t *testing.T) {
	// secret "allow" has two l's and one o. Guess "lolly" brings three l's:
	// the positional match at index 2 and the displaced l at index 0 consume
	// both secret l's, so the third l must come back absent.
	feedback, err := EvaluateGuess("allow", "lolly")
	require.NoError(t, err)

	expected := []LetterStatus{LetterPresent, LetterPresent, LetterCorrect, LetterAbsent, LetterAbsent}
	assert.Equal(t, expected, feedback)
	assert.False(t, Solved(feedback))
}

func TestEvaluateGuessNeverOvercountsLetters(t *testing.T) {
	cases := []struct {
		secret string
		guess  string
	}{
		{"allow", "lolly"},
		{"speed", "erase"},
		{"banana", "ananab"},
		{"llama", "lllll"},
		{"yorker", "googly"},
	}

	for _, tc := range cases {
		feedback, err := EvaluateGuess(tc.secret, tc.guess)
		require.NoError(t, err, "%s vs %s", tc.secret, tc.guess)

		secretCount := map[rune]int{}
		for _, r := range tc.secret {
			secretCount[r]++
		}

		claimed := map[rune]int{}
		for i, r := range tc.guess {
			if feedback[i] != LetterAbsent {
				claimed[r]++
			}
		}

		for r, n := range claimed {
			assert.LessOrEqual(t, n, secretCount[r],
				"letter %q overcounted for %s vs %s", r, tc.secret, tc.guess)
		}
	}
}

func TestEvaluateGuessPresentPrefersLeftmostSecretSlot(t *testing.T) {
	// Two displaced e's against a secret with two e's: both claim one each.
	feedback, err := EvaluateGuess("speed", "eexxx")
	require.NoError(t, err)

	expected := []LetterStatus{LetterPresent, LetterPresent, LetterAbsent, LetterAbsent, LetterAbsent}
	assert.Equal(t, expected, feedback)
}

func TestEvaluateGuessDeterministic(t *testing.T) {
	first, err := EvaluateGuess("yorker", "googly")
	require.NoError(t, err)
	second, err := EvaluateGuess("yorker", "googly")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolvedEmptyFeedback(t *testing.T) {
	assert.False(t, Solved(nil))
	assert.False(t, Solved([]LetterStatus{}))
	assert.False(t, Solved([]LetterStatus{LetterCorrect, LetterPresent}))
}
