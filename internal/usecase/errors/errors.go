package errors

import "errors"

// Summary errors
var (
	ErrUnsupportedInput = errors.New("unsupported summary input type")
)

// Collaborator errors
var (
	ErrAnalyticsUnavailable = errors.New("analytics store unavailable")
)
