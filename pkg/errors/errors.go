// Package errors provides structured error reporting for vitro.
//
// Operations that run inside native widget callbacks never return errors to
// their caller. They degrade to an inert state and report what went wrong
// to the handler installed with SetHandler.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMarkup indicates malformed or rejected markup.
	KindMarkup
	// KindResource indicates a markup or style resource that could not be loaded.
	KindResource
	// KindScript indicates a failing attribute script.
	KindScript
	// KindStyle indicates a style value that could not be interpreted.
	KindStyle
	// KindLayout indicates a layout computation failure.
	KindLayout
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindResource:
		return "resource"
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	case KindLayout:
		return "layout"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// VitroError represents a structured error raised while bridging the
// element tree to native widgets.
type VitroError struct {
	// Op is the operation that failed (e.g., "core.View.PopulateFromXMLString").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Tag is the tag of the element involved, if any.
	Tag string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *VitroError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s [%s] tag=%s: %v", e.Op, e.Kind, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *VitroError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Node.EvaluateAttributeScript").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by vitro.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *VitroError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
