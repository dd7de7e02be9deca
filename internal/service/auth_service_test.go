package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"pass123", true},
		{"a1b2c3", true},
		{"short1", true},
		{"12345", false},    // too short
		{"password", false}, // no digit
		{"", false},
		{"abc1", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidPassword(tc.password), "password %q", tc.password)
	}
}
