package qbdiff

import (
	"errors"
	"fmt"
)

// ErrorCode is the fixed taxonomy of outcomes a core operation can report.
type ErrorCode int

const (
	// OK indicates success; Compute/Apply never return OK as an error value.
	OK ErrorCode = iota
	// NOMEM indicates an allocation failed and the call was aborted.
	NOMEM
	// IOERR indicates the sink refused a write or returned a short write.
	IOERR
	// TRUNCPATCH indicates the patch was too short to contain valid headers,
	// declared a negative length, or its EB section did not end where the
	// container ends.
	TRUNCPATCH
	// BADPATCH indicates a control triple violated its bounds, or a stream
	// cursor did not land exactly at end-of-stream during replay.
	BADPATCH
	// BADCKSUM indicates the reconstructed new did not match the embedded
	// BLAKE2b-512 checksum.
	BADCKSUM
	// LZMAERR indicates the LZMA2 codec failed, or a decompressed stream's
	// length did not match its declared original length.
	LZMAERR
	// SAIS indicates the suffix array builder failed.
	SAIS
)

// messages holds the human-readable description for each ErrorCode, in the
// order the constants are declared.
var messages = [...]string{
	OK:         "ok",
	NOMEM:      "allocation failure",
	IOERR:      "sink write failed",
	TRUNCPATCH: "patch is truncated",
	BADPATCH:   "patch is malformed",
	BADCKSUM:   "checksum mismatch",
	LZMAERR:    "LZMA2 codec error",
	SAIS:       "suffix array construction failed",
}

// ErrorMessage returns a human-readable description of code.
func ErrorMessage(code ErrorCode) string {
	if int(code) < 0 || int(code) >= len(messages) {
		return "unknown error"
	}
	return messages[code]
}

// Sentinel errors, one per ErrorCode, so callers can use errors.Is against a
// fixed set of values; wrap attaches call-specific detail to Error() while
// keeping the sentinel reachable through Is/Unwrap.
var (
	ErrNoMem      = &codeError{NOMEM, messages[NOMEM]}
	ErrIO         = &codeError{IOERR, messages[IOERR]}
	ErrTruncPatch = &codeError{TRUNCPATCH, messages[TRUNCPATCH]}
	ErrBadPatch   = &codeError{BADPATCH, messages[BADPATCH]}
	ErrBadCksum   = &codeError{BADCKSUM, messages[BADCKSUM]}
	ErrLZMA       = &codeError{LZMAERR, messages[LZMAERR]}
	ErrSAIS       = &codeError{SAIS, messages[SAIS]}
)

// codeError pairs an ErrorCode with a message, and supports errors.Is against
// the package-level sentinels above.
type codeError struct {
	code ErrorCode
	msg  string
}

func (e *codeError) Error() string { return e.msg }

// Code reports the ErrorCode a returned error maps to, defaulting to BADPATCH
// for errors that did not originate in this package (e.g. an io.Writer
// failure not already wrapped as ErrIO).
func Code(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var ce *codeError
	if errors.As(err, &ce) {
		return ce.code
	}
	return BADPATCH
}

// wrap produces an error reporting as the given sentinel via errors.Is, with
// additional context appended to the message.
func wrap(sentinel *codeError, format string, args ...any) error {
	if format == "" {
		return sentinel
	}
	return &wrappedError{sentinel: sentinel, detail: fmt.Sprintf(format, args...)}
}

type wrappedError struct {
	sentinel *codeError
	detail   string
}

func (e *wrappedError) Error() string { return e.sentinel.msg + ": " + e.detail }

func (e *wrappedError) Is(target error) bool { return target == e.sentinel }

func (e *wrappedError) Unwrap() error { return e.sentinel }
