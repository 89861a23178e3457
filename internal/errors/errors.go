// Package errors provides structured error types for the Mosaic application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindUnavailable
	KindIO
	KindPersist
	KindLayout
	KindHost
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	case KindIO:
		return "I/O error"
	case KindPersist:
		return "persistence error"
	case KindLayout:
		return "layout error"
	case KindHost:
		return "host error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Mosaic.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Panel errors
func PanelNotFound(id string) error {
	return E(Op("workspace.Panel"), KindNotFound, fmt.Sprintf("panel %s not found", id))
}

func PanelTypeUnavailable(panelType, reason string) error {
	return E(Op("workspace.OpenPanel"), KindUnavailable, fmt.Sprintf("panel type %s unavailable: %s", panelType, reason))
}

func MountFailed(id string, err error) error {
	return E(Op("host.MountPanel"), KindHost, fmt.Sprintf("failed to mount panel %s", id), err)
}

// Registry errors
func ManifestNotFound(panelType string) error {
	return E(Op("registry.Manifest"), KindNotFound, fmt.Sprintf("no manifest for panel type %s", panelType))
}

func NoManifests() error {
	return E(Op("workspace.New"), KindInvalid, "no panel manifests registered; nothing is renderable")
}

// Persistence errors
func LayoutLoadFailed(path string, err error) error {
	return E(Op("config.LoadLayout"), KindPersist, fmt.Sprintf("failed to load layout from %s", path), err)
}

func LayoutSaveFailed(path string, err error) error {
	return E(Op("config.SaveLayout"), KindPersist, fmt.Sprintf("failed to save layout to %s", path), err)
}

func LayoutVersionMismatch(got, want int) error {
	return E(Op("config.LoadLayout"), KindInvalid, fmt.Sprintf("stored layout version %d, expected %d", got, want))
}

func LayoutInvalid(err error) error {
	return E(Op("layout.Validate"), KindLayout, "stored layout failed validation", err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindPersist, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindPersist, fmt.Sprintf("failed to save config to %s", path), err)
}
