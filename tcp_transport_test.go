package tem104

import (
	"net"
	"testing"
	"time"
)

func TestTCPTransportReadFillsBuffer(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	tt := newTCPTransport(client)

	go func() {
		server.Write([]byte{0x01, 0x02})
		server.Write([]byte{0x03, 0x04})
	}()

	buf := make([]byte, 4)
	if err := tt.Read(buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []byte{0x01, 0x02, 0x03, 0x04} {
		if buf[i] != want {
			t.Errorf("buf[%d] = %#x, want %#x", i, buf[i], want)
		}
	}
}

func TestTCPTransportShortRead(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	tt := newTCPTransport(client)

	go func() {
		server.Write([]byte{0x01, 0x02})
		server.Close()
	}()

	buf := make([]byte, 4)
	if err := tt.Read(buf); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestTCPTransportReadTimeout(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	tt := newTCPTransport(client)
	if err := tt.SetDeadline(time.Now().Add(50 * time.Millisecond)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := make([]byte, 1)
	if err := tt.Read(buf); err != ErrRequestTimedOut {
		t.Fatalf("expected ErrRequestTimedOut, got %v", err)
	}
}
