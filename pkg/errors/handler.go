package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// ErrorHandler receives errors reported by OmniGUI.
type ErrorHandler interface {
	// HandleError is called for every reported error.
	HandleError(err *OmniError)
	// HandleBoundaryError is called when a panic is recovered at a frame
	// or event boundary.
	HandleBoundaryError(err *BoundaryError)
}

type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

func init() { current.Store(&handlerBox{&LogHandler{}}) }

// SetHandler replaces the global error handler. Nil restores a
// non-verbose LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerBox{h})
}

// Handler returns the global error handler.
func Handler() ErrorHandler { return current.Load().h }

// Report stamps err if needed and hands it to the global handler.
func Report(err *OmniError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportBoundaryError hands a recovered panic to the global handler.
func ReportBoundaryError(err *BoundaryError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleBoundaryError(err)
}

// Recover reports a panic in the calling goroutine as a BoundaryError
// for phase. Use it directly in a defer:
//
//	defer errors.Recover("pointer")
func Recover(phase string) {
	if r := recover(); r != nil {
		ReportBoundaryError(&BoundaryError{
			Phase:      phase,
			Recovered:  r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, omitting CaptureStack and its immediate caller.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
