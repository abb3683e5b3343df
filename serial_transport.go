package tem104

import (
	"time"

	"go.bug.st/serial"
)

// serialTransport realizes transport over a local serial port: a thin
// shim that adds deadline-aware reads on top of a port that only knows
// about short, per-call read timeouts.
type serialTransport struct {
	portName string
	mode     *serial.Mode
	port     serial.Port
	deadline time.Time
}

// serialReadQuantum is the per-call timeout handed to the underlying port.
// Read loops until either enough bytes have arrived or the transport-level
// deadline set by SetDeadline has passed, polling in quanta this short so
// that deadline expiry is noticed promptly.
const serialReadQuantum = 20 * time.Millisecond

func newSerialTransport(portName string, baud int, dataBits int, parity serial.Parity, stopBits serial.StopBits) *serialTransport {
	return &serialTransport{
		portName: portName,
		mode: &serial.Mode{
			BaudRate: baud,
			DataBits: dataBits,
			Parity:   parity,
			StopBits: stopBits,
		},
	}
}

func (st *serialTransport) Open() error {
	port, err := serial.Open(st.portName, st.mode)
	if err != nil {
		return err
	}

	if err := port.SetReadTimeout(serialReadQuantum); err != nil {
		_ = port.Close()
		return err
	}

	st.port = port
	return nil
}

func (st *serialTransport) Close() error {
	if st.port == nil {
		return nil
	}
	return st.port.Close()
}

// Discard drops any bytes sitting in the port's receive buffer, so stale
// bytes from an aborted prior exchange cannot desynchronize the reader.
func (st *serialTransport) Discard() {
	if st.port != nil {
		_ = st.port.ResetInputBuffer()
	}
}

func (st *serialTransport) SetDeadline(t time.Time) error {
	st.deadline = t
	return nil
}

func (st *serialTransport) Write(p []byte) error {
	for len(p) > 0 {
		n, err := st.port.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Read fills p entirely, issuing repeated short reads against the port
// until either p is full or the transport deadline passes. A per-call
// read timeout from the port (n == 0, err == nil) is not itself an error;
// it only becomes ErrRequestTimedOut once the deadline has elapsed.
func (st *serialTransport) Read(p []byte) error {
	total := 0
	for total < len(p) {
		if !st.deadline.IsZero() && time.Now().After(st.deadline) {
			return ErrRequestTimedOut
		}

		n, err := st.port.Read(p[total:])
		if err != nil {
			return err
		}
		total += n
	}
	return nil
}
