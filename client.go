package tem104

import (
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

// Configuration stores the configuration needed to create a Client: a
// single URL selects both transport and target, with transport-specific
// fields left zero to pick up scheme-appropriate defaults.
type Configuration struct {
	// URL sets the transport and target in the form
	// <scheme>://<serial device or host:port>, e.g. serial:///dev/ttyUSB0
	// or tcp://192.0.2.10:5009.
	URL string
	// Speed sets the serial link baud rate (serial only). Defaults to 9600.
	Speed int
	// DataBits sets the number of bits per serial character (serial only).
	// Defaults to 8.
	DataBits int
	// Parity sets the serial link parity mode (serial only). Defaults to
	// no parity.
	Parity serial.Parity
	// StopBits sets the number of serial stop bits (serial only).
	// Defaults to 1.
	StopBits serial.StopBits
	// Timeout sets the per-exchange read/write timeout. Defaults to 2s
	// for serial, 5s for tcp.
	Timeout time.Duration
	// Address is the device address in [1, 247]. Defaults to 1.
	Address uint8
	// Variant pre-declares the device variant, skipping identification.
	// Leave at VariantUnknown to identify on the first ReadAll.
	Variant Variant
	// Logger provides a custom sink for log messages. If nil, messages
	// are written to stdout.
	Logger *log.Logger
}

type transportScheme int

const (
	schemeSerial transportScheme = iota
	schemeTCP
)

// Client is the client for one TEM-104 family device, bound to exactly
// one transport for its lifetime.
type Client struct {
	conf    Configuration
	logger  *logger
	lock    sync.Mutex
	scheme  transportScheme
	variant Variant
	tr      transport
}

// NewClient creates and configures a Client without opening its
// transport: parse the URL scheme, apply scheme-appropriate defaults,
// fail eagerly on configuration errors.
func NewClient(conf *Configuration) (*Client, error) {
	c := &Client{
		conf:    *conf,
		variant: conf.Variant,
	}

	var schemeName string
	splitURL := strings.SplitN(c.conf.URL, "://", 2)
	if len(splitURL) == 2 {
		schemeName = splitURL[0]
		c.conf.URL = splitURL[1]
	}

	c.logger = newLogger(fmt.Sprintf("tem104-client(%s)", c.conf.URL), conf.Logger)

	if c.conf.Address == 0 {
		c.conf.Address = 1
	}
	if c.conf.Address > 247 {
		c.logger.Errorf("address %d out of range [1, 247]", c.conf.Address)
		return nil, ErrBadAddress
	}

	switch schemeName {
	case "serial":
		c.scheme = schemeSerial

		if c.conf.Speed == 0 {
			c.conf.Speed = 9600
		}
		if !supportedBaudRate(c.conf.Speed) {
			c.logger.Errorf("unsupported baud rate %d", c.conf.Speed)
			return nil, ErrUnsupportedBaud
		}
		if c.conf.DataBits == 0 {
			c.conf.DataBits = 8
		}
		if c.conf.StopBits == 0 {
			c.conf.StopBits = serial.OneStopBit
		}
		if c.conf.Timeout == 0 {
			c.conf.Timeout = 2 * time.Second
		}

	case "tcp":
		c.scheme = schemeTCP

		if c.conf.Timeout == 0 {
			c.conf.Timeout = 5 * time.Second
		}

	default:
		if len(splitURL) != 2 {
			c.logger.Errorf("missing transport scheme in URL '%s'", c.conf.URL)
			return nil, ErrMissingTransportParam
		}
		c.logger.Errorf("unsupported transport scheme '%s'", schemeName)
		return nil, ErrConfigurationError
	}

	if c.conf.URL == "" {
		c.logger.Error("missing transport target")
		return nil, ErrMissingTransportParam
	}

	return c, nil
}

// supportedBaudRate reports whether speed is one of the rates the device
// family's serial interface can be configured for.
func supportedBaudRate(speed int) bool {
	switch speed {
	case 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200:
		return true
	default:
		return false
	}
}

// tcpDefaultPort is applied when the TCP URL carries no explicit port.
const tcpDefaultPort = "5009"

// Open opens the underlying transport: guard against double-open,
// dispatch on scheme, discard any stale bytes before the transport is
// considered ready.
func (c *Client) Open() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.tr != nil {
		return ErrTransportAlreadyOpen
	}

	switch c.scheme {
	case schemeSerial:
		st := newSerialTransport(c.conf.URL, c.conf.Speed, c.conf.DataBits, c.conf.Parity, c.conf.StopBits)
		if err := st.Open(); err != nil {
			return err
		}
		c.tr = st

	case schemeTCP:
		target := c.conf.URL
		if !strings.Contains(target, ":") {
			target = net.JoinHostPort(target, tcpDefaultPort)
		}

		sock, err := net.DialTimeout("tcp", target, c.conf.Timeout)
		if err != nil {
			return err
		}
		c.tr = newTCPTransport(sock)
	}

	c.tr.Discard()

	return nil
}

// Close releases the underlying transport. Safe to call on an
// already-closed or never-opened Client.
func (c *Client) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.tr == nil {
		return nil
	}

	err := c.tr.Close()
	c.tr = nil
	return err
}

// Variant returns the client's current variant tag, VariantUnknown if
// identification has not yet run.
func (c *Client) Variant() Variant {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.variant
}

// exchange is the single choke point every exchange-issuing method above
// this layer goes through: it serializes access to the transport (the
// protocol is half-duplex, at most one in-flight exchange per link) and
// applies the configured timeout before each request/response pair.
func (c *Client) exchange(req []byte) ([]byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.tr == nil {
		return nil, ErrTransportClosed
	}

	payload, err := exchange(c.tr, req, c.conf.Address, c.conf.Timeout.Seconds())
	if err != nil {
		c.logger.Warningf("exchange failed: %v", err)
	}
	return payload, err
}

func (c *Client) readFlash(base uint16, length byte) ([]byte, error) {
	req, err := readFlashRequest(c.conf.Address, base, length)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

func (c *Client) readRAM(base uint16, length byte) ([]byte, error) {
	req, err := readRAMRequest(c.conf.Address, base, length)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

func (c *Client) readRTCRaw(base uint16, length byte) ([]byte, error) {
	req, err := readRTCRequest(c.conf.Address, base, length)
	if err != nil {
		return nil, err
	}
	return c.exchange(req)
}

var _ blockReader = (*Client)(nil)

// Identify issues a single Identify exchange, decodes the ASCII token and
// maps it to a Variant. It is idempotent: calling it again re-runs
// identification and may overwrite an already-sticky Variant. ReadAll only
// calls it automatically when the Variant is still unset (see
// ForceReidentify).
func (c *Client) Identify() (Variant, error) {
	req, err := identifyRequest(c.conf.Address)
	if err != nil {
		return VariantUnknown, err
	}

	payload, err := c.exchange(req)
	if err != nil {
		return VariantUnknown, err
	}

	v := matchVariant(string(payload))
	if v == VariantUnknown {
		c.logger.Warningf("unrecognized identification token %q", strings.TrimSpace(string(payload)))
		return VariantUnknown, ErrUnknownVariant
	}

	c.lock.Lock()
	c.variant = v
	c.lock.Unlock()

	return v, nil
}

// ForceReidentify clears the sticky Variant tag so the next ReadAll (or
// explicit Identify call) re-runs identification from scratch, for callers
// that know the peer device changed.
func (c *Client) ForceReidentify() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.variant = VariantUnknown
}
