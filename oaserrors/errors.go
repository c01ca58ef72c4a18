// Package oaserrors provides structured error types for oasrewrite.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As().
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures
//   - StructureError: a node of the wrong kind where the rewriter needs a mapping
//   - ReferenceError: dangling pointers and alias cycles
//   - ResourceLimitError: nesting depth exhaustion
//   - CollisionError: schema name normalization collisions
//   - ConfigError: Invalid configuration or input options
package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrStructure indicates a document node had an unexpected kind.
	ErrStructure = errors.New("structure error")

	// ErrReference indicates a reference problem.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates an alias cycle was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrDanglingReference indicates a pointer whose target does not exist.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrCollision indicates two names normalized to the same target.
	ErrCollision = errors.New("name collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode an OpenAPI document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// StructureError reports a node whose kind does not fit the place it occupies,
// such as a schema registry that is a list.
type StructureError struct {
	// Path is the JSON Pointer of the offending node (e.g., "/components/schemas")
	Path string
	// Expected is the node kind the rewriter needed (e.g., "mapping")
	Expected string
	// Actual is the node kind that was found
	Actual string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *StructureError) Error() string {
	msg := "structure error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// ReferenceError represents a pointer or alias problem.
type ReferenceError struct {
	// Ref is the pointer or anchor involved
	Ref string
	// Path is the JSON Pointer where the problem was found
	Path string
	// IsCircular is true for alias cycles
	IsCircular bool
	// IsDangling is true when the target of Ref does not exist
	IsDangling bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsDangling {
		msg = "dangling reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference or ErrDanglingReference
// when the matching flag is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrDanglingReference && e.IsDangling {
		return true
	}
	return false
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded (e.g., "nesting_depth")
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// CollisionError reports that several registry entries normalize to one name.
type CollisionError struct {
	// Registry is the JSON Pointer of the registry (e.g., "/components/schemas")
	Registry string
	// Name is the normalized name shared by the sources
	Name string
	// Sources are the original entry names, in document order
	Sources []string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := "name collision"
	if e.Registry != "" {
		msg += " in " + e.Registry
	}
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if len(e.Sources) > 0 {
		msg += " <- " + strings.Join(e.Sources, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
