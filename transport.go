package tem104

import "time"

// transport is the link-layer contract shared by the serial and TCP
// realizations: a small surface the exchange loop drives directly, with
// the byte-shuffling details left to each concrete type.
type transport interface {
	// Write writes the whole of p or returns an error; partial writes are
	// never surfaced to callers.
	Write(p []byte) error
	// Read fills p entirely or returns an error, including on deadline
	// expiry (ErrRequestTimedOut).
	Read(p []byte) error
	// SetDeadline arms the deadline for the next Read/Write pair. A zero
	// value clears it.
	SetDeadline(t time.Time) error
	// Discard drops any bytes currently buffered by the link (a stale
	// response left over from a timed-out exchange) so the next exchange
	// starts clean.
	Discard()
	// Close releases the underlying link. Safe to call more than once.
	Close() error
}
