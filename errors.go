package tem104

import "errors"

// Configuration errors. These fail eagerly at client construction time and
// never produce a usable client.
var (
	ErrConfigurationError    error = errors.New("configuration error")
	ErrUnsupportedBaud       error = errors.New("unsupported baud rate")
	ErrMissingTransportParam error = errors.New("missing transport parameter")
	ErrBadAddress            error = errors.New("address out of range [1, 247]")
)

// Transport errors, raised by the concrete serial/TCP realizations and by
// the length-driven reader. These are recovered locally by ReadAll: the
// affected Record fields are left absent.
var (
	ErrRequestTimedOut      error = errors.New("request timed out")
	ErrShortRead            error = errors.New("short read")
	ErrTransportClosed      error = errors.New("transport is closed")
	ErrTransportAlreadyOpen error = errors.New("transport is already open")
)

// Frame errors, raised by the frame codec. Same recovery policy as
// transport errors: the exchange is discarded, not the session.
var (
	ErrFrameTooShort   error = errors.New("frame too short")
	ErrBadStart        error = errors.New("bad start byte")
	ErrFrameBadAddress error = errors.New("response address mismatch")
	ErrBadLength       error = errors.New("declared payload length mismatch")
	ErrBadChecksum     error = errors.New("bad checksum")
)

// Protocol error. Unlike transport/frame errors, this aborts ReadAll and is
// surfaced to the caller.
var (
	ErrUnknownVariant error = errors.New("unknown variant identification token")
)

// Decode errors are per-field: bounds violations or bad BCD nibbles leave
// the field absent rather than propagating. ErrFieldAbsent is returned by
// the low-level numeric helpers so callers can distinguish "field not
// present" from a zero reading.
var (
	ErrFieldAbsent error = errors.New("field absent")
)
