package entity

import (
	"errors"
	"fmt"
)

// Standard domain errors
var (
	ErrPromptRequired      = errors.New("prompt is required")
	ErrEmptyProviderResult = errors.New("No image returned from provider")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded: too many requests")
	ErrInvalidRequest      = errors.New("invalid request body")
)

// ProviderError wraps any failure raised while talking to a model provider.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
