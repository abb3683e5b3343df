package tem104

import (
	"io"
	"testing"
	"time"
)

// fakeTransport is a buffer-backed transport double used by reader_test.go
// and orchestrator_test.go. It plays back a fixed queue of responses (one
// per exchange) and records every request it was handed.
type fakeTransport struct {
	responses [][]byte
	next      int
	requests  [][]byte
	deadline  time.Time
	discarded int
	closed    bool
}

func (f *fakeTransport) Write(p []byte) error {
	req := make([]byte, len(p))
	copy(req, p)
	f.requests = append(f.requests, req)
	return nil
}

func (f *fakeTransport) Read(p []byte) error {
	if f.next >= len(f.responses) {
		return io.ErrUnexpectedEOF
	}
	src := f.responses[f.next]
	if len(src) < len(p) {
		f.next++
		return ErrShortRead
	}
	copy(p, src[:len(p)])
	f.responses[f.next] = src[len(p):]
	if len(f.responses[f.next]) == 0 {
		f.next++
	}
	return nil
}

func (f *fakeTransport) SetDeadline(t time.Time) error {
	f.deadline = t
	return nil
}

func (f *fakeTransport) Discard() {
	f.discarded++
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func newFakeTransportWithFrames(frames ...[]byte) *fakeTransport {
	responses := make([][]byte, len(frames))
	copy(responses, frames)
	return &fakeTransport{responses: responses}
}

func TestReadFrameLengthDriven(t *testing.T) {
	payload := []byte{0x41, 0x42, 0x43, 0x44}
	frame := buildResponseFrame(1, 0x00, 0x00, payload)

	tr := newFakeTransportWithFrames(frame)
	got, err := readFrame(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(frame) {
		t.Fatalf("readFrame consumed %d bytes, want %d", len(got), len(frame))
	}
	for i := range frame {
		if got[i] != frame[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], frame[i])
		}
	}
}

func TestReadFrameFullSizeResponse(t *testing.T) {
	// A len=0xFF flash read comes back with a 255-byte payload, the
	// largest a one-byte declared length can name.
	payload := make([]byte, 255)
	for i := range payload {
		payload[i] = byte(i)
	}
	frame := buildResponseFrame(1, groupFlash, cmdFlash, payload)

	tr := newFakeTransportWithFrames(frame)
	got, err := readFrame(tr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(frame) {
		t.Fatalf("readFrame consumed %d bytes, want %d", len(got), len(frame))
	}

	stripped, err := validateAndStrip(got, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stripped) != 255 {
		t.Fatalf("payload length = %d, want 255", len(stripped))
	}
	for i := range payload {
		if stripped[i] != payload[i] {
			t.Fatalf("payload[%d] = %#x, want %#x", i, stripped[i], payload[i])
		}
	}
}

func TestReadFrameShortInputReportsError(t *testing.T) {
	tr := newFakeTransportWithFrames([]byte{0xAA, 0x01, 0xFE, 0x00, 0x00})

	if _, err := readFrame(tr); err == nil {
		t.Fatal("expected an error on truncated input, got nil")
	}
}

func TestExchangeDiscardsOnFrameError(t *testing.T) {
	frame := buildResponseFrame(1, 0x00, 0x00, []byte{0x41})
	frame[len(frame)-1] ^= 0xFF // corrupt checksum

	tr := newFakeTransportWithFrames(frame)
	req, _ := identifyRequest(1)

	if _, err := exchange(tr, req, 1, 2.0); err != ErrBadChecksum {
		t.Fatalf("expected ErrBadChecksum, got %v", err)
	}
	if tr.discarded != 1 {
		t.Fatalf("expected Discard to be called once, got %d", tr.discarded)
	}
}

func TestExchangeRoundTrip(t *testing.T) {
	payload := []byte{'T', 'E', 'M', '-', '1', '0', '4'}
	frame := buildResponseFrame(1, 0x00, 0x00, payload)

	tr := newFakeTransportWithFrames(frame)
	req, _ := identifyRequest(1)

	got, err := exchange(tr, req, 1, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("exchange payload = %q, want %q", got, payload)
	}
	if len(tr.requests) != 1 {
		t.Fatalf("expected exactly 1 request written, got %d", len(tr.requests))
	}
}
