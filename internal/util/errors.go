package util

import "errors"

var (
	// auth
	ErrEmailRegistered   = errors.New("email already registered")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrAdminExists       = errors.New("an admin already exists, only one admin allowed")
	ErrInvalidCredential = errors.New("invalid credentials")

	// puzzle lifecycle
	ErrNoWordForSlot       = errors.New("no word found for this category and level on the requested date")
	ErrSessionNotFound     = errors.New("puzzle session not found")
	ErrNotSessionOwner     = errors.New("not the owner of this puzzle session")
	ErrAlreadyFinished     = errors.New("puzzle session already finished")
	ErrAttemptsExhausted   = errors.New("no attempts left for this puzzle session")
	ErrGuessLengthMismatch = errors.New("guess length does not match word length")
)
