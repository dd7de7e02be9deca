package service

import (
	"strings"

	"cricwordle_backend/internal/util"
)

type LetterStatus string

const (
	LetterCorrect LetterStatus = "correct"
	LetterPresent LetterStatus = "present"
	LetterAbsent  LetterStatus = "absent"
)

// EvaluateGuess compares a guess against the secret word and returns one
// status per guess position. Matching is case-insensitive and two-pass:
// pass 1 consumes exact positional matches, pass 2 walks the remaining
// guess letters and claims the leftmost unconsumed matching secret letter.
// The consumption marks are what keep duplicate letters honest: a letter
// never yields more correct/present results than the secret contains.
func EvaluateGuess(secret, guess string) ([]LetterStatus, error) {
	s := []rune(strings.ToLower(secret))
	g := []rune(strings.ToLower(guess))
	if len(g) != len(s) {
		return nil, util.ErrGuessLengthMismatch
	}

	feedback := make([]LetterStatus, len(g))
	used := make([]bool, len(s))
	for i := range feedback {
		feedback[i] = LetterAbsent
	}

	for i := range g {
		if g[i] == s[i] {
			feedback[i] = LetterCorrect
			used[i] = true
		}
	}

	for i := range g {
		if feedback[i] == LetterCorrect {
			continue
		}
		for j := range s {
			if !used[j] && g[i] == s[j] {
				feedback[i] = LetterPresent
				used[j] = true
				break
			}
		}
	}

	return feedback, nil
}

// Solved reports whether every position matched exactly.
func Solved(feedback []LetterStatus) bool {
	for _, f := range feedback {
		if f != LetterCorrect {
			return false
		}
	}
	return len(feedback) > 0
}
