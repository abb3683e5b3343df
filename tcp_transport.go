package tem104

import (
	"io"
	"net"
	"time"
)

// tcpTransport realizes transport over a plain net.Conn. Unlike the
// serial case there is no per-call read timeout to mask: net.Conn
// deadlines apply directly to the blocking Read/Write calls.
type tcpTransport struct {
	socket net.Conn
}

func newTCPTransport(socket net.Conn) *tcpTransport {
	return &tcpTransport{socket: socket}
}

func (tt *tcpTransport) Close() error {
	return tt.socket.Close()
}

func (tt *tcpTransport) SetDeadline(t time.Time) error {
	return tt.socket.SetDeadline(t)
}

func (tt *tcpTransport) Write(p []byte) error {
	_, err := tt.socket.Write(p)
	return err
}

func (tt *tcpTransport) Read(p []byte) error {
	_, err := io.ReadFull(tt.socket, p)
	if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
		return ErrRequestTimedOut
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrShortRead
	}
	return err
}

// Discard drains whatever is currently sitting in the socket's receive
// buffer, using a short deadline, so a late response to a timed-out
// exchange doesn't get mistaken for the reply to the next one.
func (tt *tcpTransport) Discard() {
	rxbuf := make([]byte, 1024)
	_ = tt.socket.SetReadDeadline(time.Now().Add(500 * time.Microsecond))
	_, _ = tt.socket.Read(rxbuf)
	_ = tt.socket.SetReadDeadline(time.Time{})
}
