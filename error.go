package strsync

import (
	"errors"
	"fmt"
)

// Kind classifies a single-locale store failure.
type Kind int

const (
	// KindNotFound means the expected resource file does not exist.
	KindNotFound Kind = iota + 1
	// KindParse means the file content is not a valid resource file
	// (structured strategy only; the text strategy never fails to parse).
	KindParse
	// KindAnchor means the text strategy could not locate its insertion
	// marker. The file is left untouched; inserting at a guessed location is
	// never acceptable.
	KindAnchor
	// KindWrite means flushing the merged content to disk failed.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse error"
	case KindAnchor:
		return "anchor not found"
	case KindWrite:
		return "write error"
	}
	return "unknown"
}

// Error is the store error type. Kind tells the caller which branch of the
// outcome taxonomy the failure belongs to; Path names the offending file.
type Error interface {
	error
	Unwrap() error
	Kind() Kind
	Path() string
}

type storeError struct {
	kind Kind
	path string
	err  error
}

func (e *storeError) Error() string {
	msg := e.kind.String()
	if e.path != "" {
		msg = fmt.Sprintf("%s: %s", e.path, msg)
	}
	if e.err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *storeError) Unwrap() error {
	return e.err
}

func (e *storeError) Kind() Kind {
	return e.kind
}

func (e *storeError) Path() string {
	return e.path
}

func newStoreError(kind Kind, path string, err error) error {
	return &storeError{kind: kind, path: path, err: err}
}

func errKind(err error) Kind {
	var se Error
	if errors.As(err, &se) {
		return se.Kind()
	}
	return 0
}

// IsNotFound reports whether err is a missing-file store error.
func IsNotFound(err error) bool { return errKind(err) == KindNotFound }

// IsParseError reports whether err is a malformed-resource-file store error.
func IsParseError(err error) bool { return errKind(err) == KindParse }

// IsAnchorNotFound reports whether err is a missing-insertion-marker store error.
func IsAnchorNotFound(err error) bool { return errKind(err) == KindAnchor }

// IsWriteError reports whether err is a flush-to-disk store error.
func IsWriteError(err error) bool { return errKind(err) == KindWrite }
