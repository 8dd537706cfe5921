package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// err is the wrapped error, nil for errors created with New.
	err error
}

func newAnnotatedError(msg string, err error, attrs []slog.Attr) *AnnotatedError {
	var pcs [1]uintptr
	// Skip runtime.Callers, this function, and the exported constructor.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see comment above
	return &AnnotatedError{
		msg:   msg,
		pc:    pcs[0],
		attrs: attrs,
		err:   err,
	}
}

// New creates a new error with the given message and attributes.
func New(msg string, attrs ...slog.Attr) error {
	return newAnnotatedError(msg, nil, attrs)
}

// Wrap adds a message and attributes to err. It returns nil if err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotatedError(msg, err, attrs)
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be detected
// with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg) //nolint:goerr113 // this is the sentinel constructor
}

// Error implements error interface.
func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
}

// Unwrap returns the wrapped error.
func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// Attrs returns the slog attributes attached to this error, excluding the wrapped errors.
func (e *AnnotatedError) Attrs() []slog.Attr {
	return e.attrs
}

func (e *AnnotatedError) source() string {
	frames := runtime.CallersFrames([]uintptr{e.pc})
	frame, _ := frames.Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// LogValue formats the error for useful logging.
func (e *AnnotatedError) LogValue() slog.Value {
	attrs := append(
		[]slog.Attr{slog.String("msg", e.Error()), slog.String("source", e.source())},
		e.attrs...,
	)
	return slog.GroupValue(attrs...)
}

// SlogError returns a slog attribute describing err and every annotation in its chain.
//
// The source points to the innermost annotated error since that is closest to the root cause.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		attrs  []slog.Attr
		source string
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		var annotated *AnnotatedError
		if ae, ok := e.(*AnnotatedError); ok { //nolint:errorlint // we walk the chain one link at a time
			annotated = ae
		}
		if annotated == nil {
			continue
		}
		source = annotated.source()
		attrs = append(attrs, annotated.attrs...)
	}
	group := []slog.Attr{slog.String("msg", err.Error())}
	if source != "" {
		group = append(group, slog.String("source", source))
	}
	group = append(group, attrs...)
	return slog.Attr{Key: "error", Value: slog.GroupValue(group...)}
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
