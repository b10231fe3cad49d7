package internal

import (
	"errors"
	"fmt"
)

// ErrNoFeatureDir is returned when a root has no .session/feature directory
var ErrNoFeatureDir = errors.New("no .session/feature directory")

// ScanError represents errors enumerating the session tree
type ScanError struct {
	Path string
	Op   string // "stat", "readdir"
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// MarkerError represents a marker file that could not be read or decoded
type MarkerError struct {
	Session string
	Path    string
	Err     error
}

func (e *MarkerError) Error() string {
	return fmt.Sprintf("marker error [%s] %s: %v", e.Session, e.Path, e.Err)
}

func (e *MarkerError) Unwrap() error {
	return e.Err
}

// HookError represents errors decoding or answering a hook invocation
type HookError struct {
	Stage string // "read", "decode", "encode"
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook error [%s]: %v", e.Stage, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
