package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var handler = struct {
	sync.RWMutex
	h ErrorHandler
}{h: &LogHandler{}}

// SetHandler installs h as the process error handler. A nil h puts back a
// plain LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handler.Lock()
	handler.h = h
	handler.Unlock()
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handler.RLock()
	defer handler.RUnlock()
	return handler.h
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands err to the installed handler, stamping it with the current
// time unless it already carries one.
func Report(err *VitroError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// Reportf reports a non-nil err as a VitroError of the given kind.
func Reportf(op string, kind ErrorKind, err error) {
	if err != nil {
		Report(&VitroError{Op: op, Kind: kind, Err: err})
	}
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress under op and stops it. It must be
// deferred directly:
//
//	defer errors.Recover("core.View.updateEverything")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the stack of its caller's caller, one
// "function\n\tfile:line" entry per frame.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}
