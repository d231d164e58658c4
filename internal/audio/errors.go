package audio

import (
	"errors"
	"fmt"
)

var (
	ErrNoInput           = errors.New("no audio provided")
	ErrDownload          = errors.New("failed to download file")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrIO                = errors.New("audio file I/O failed")
)

// Error carries one of the sentinel kinds plus an optional cause.
// errors.Is matches both the kind and anything in the cause chain.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Kind.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NoInput(msg string) error {
	return &Error{Kind: ErrNoInput, Msg: msg}
}

func Download(err error, format string, args ...any) error {
	return &Error{Kind: ErrDownload, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Unsupported names the extension the active policy expects.
func Unsupported(expected Format, path string) error {
	return &Error{
		Kind: ErrUnsupportedFormat,
		Msg:  fmt.Sprintf("expected a %s file, got %q", expected.Ext(), path),
	}
}

func IO(err error, format string, args ...any) error {
	return &Error{Kind: ErrIO, Msg: fmt.Sprintf(format, args...), Err: err}
}
