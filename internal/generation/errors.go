// Package generation drives the LLM boundary that turns an assembled brief
// into message candidates.
package generation

import "fmt"

// EngineError represents a failure calling the generation model
type EngineError struct {
	Message string
	Cause   error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// ResponseError represents a malformed or non-conforming engine response
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine response error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine response error: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
