package llm

import "fmt"

// The gateway never retries. Every failure is terminal for that one user
// action; recovery is the user re-invoking it.

// ConfigurationError means no credential is available for the feature.
type ConfigurationError struct {
	Feature string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: missing credential", e.Feature)
}

// ProviderError wraps a failed or non-success remote call. It is surfaced to
// the user as a visible message next to the triggering action.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider call failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError marks a structured-output response that did not match the
// expected shape. Callers treat it as an empty result, not a failure.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: structured response did not parse: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
