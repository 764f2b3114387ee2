package generation

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed matches every generation failure via errors.Is.
var ErrGenerationFailed = errors.New("content generation failed")

// ErrorKind tags why a call failed.
type ErrorKind string

const (
	// KindNetwork: the endpoint could not be reached or the call was cut off.
	KindNetwork ErrorKind = "network"
	// KindStatus: the endpoint answered with a non-success status.
	KindStatus ErrorKind = "status"
	// KindMalformed: a success status but no usable choices[0].message.content.
	KindMalformed ErrorKind = "malformed"
)

// Error is a tagged generation failure.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s error (%d %s)", ErrGenerationFailed, e.Kind, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%s: %s error (%s)", ErrGenerationFailed, e.Kind, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrGenerationFailed }

// Result is either generated content or a tagged error.
type Result struct {
	Content string
	Err     *Error
}

func Succeeded(content string) Result { return Result{Content: content} }

func Failed(err *Error) Result { return Result{Err: err} }

// OK reports whether the call produced content.
func (r Result) OK() bool { return r.Err == nil }

// Outcome is the metric label for the result.
func (r Result) Outcome() string {
	if r.Err == nil {
		return "ok"
	}
	return string(r.Err.Kind)
}
