package service

import "errors"

// Argument errors. Both are detected before any network call is attempted.
var (
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	ErrEmptyCoinID      = errors.New("coin id must not be empty")
)
