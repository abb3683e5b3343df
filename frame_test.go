package tem104

import "testing"

// sumFrame returns the unsigned 8-bit sum of every byte in frame.
func sumFrame(frame []byte) byte {
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return sum
}

func TestBuildRequestChecksumClosure(t *testing.T) {
	cases := []struct {
		addr   uint8
		group  byte
		cmd    byte
		params []byte
	}{
		{1, 0x00, 0x00, nil},
		{1, 0x0F, 0x01, []byte{0x01, 0x80, 0xFF}},
		{247, 0x0F, 0x02, nil},
		{42, 0x0C, 0x01, []byte{0x00, 0x10, 0x08}},
	}

	for _, c := range cases {
		frame, err := buildRequest(c.addr, c.group, c.cmd, c.params)
		if err != nil {
			t.Fatalf("buildRequest(%d, %#x, %#x, %v): unexpected error: %v", c.addr, c.group, c.cmd, c.params, err)
		}

		if got := sumFrame(frame); got != 0xFF {
			t.Errorf("buildRequest(%d, %#x, %#x, %v): frame sum = %#x, want 0xff", c.addr, c.group, c.cmd, c.params, got)
		}
	}
}

func TestBuildRequestInverseAddressByte(t *testing.T) {
	for addr := uint8(1); addr < 248; addr++ {
		frame, err := buildRequest(addr, 0x00, 0x00, nil)
		if err != nil {
			t.Fatalf("buildRequest(%d): unexpected error: %v", addr, err)
		}

		if frame[1] != addr {
			t.Fatalf("buildRequest(%d): address byte = %#x", addr, frame[1])
		}
		if frame[1]+frame[2] != 0xFF {
			t.Errorf("buildRequest(%d): address %#x + inverse %#x != 0xff", addr, frame[1], frame[2])
		}
	}
}

func TestBuildRequestHeaderLayout(t *testing.T) {
	frame, err := buildRequest(1, 0x0F, 0x01, []byte{0x01, 0x80, 0xFF})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []byte{startOfRequest, 0x01, 0xFE, 0x0F, 0x01, 0x03, 0x01, 0x80, 0xFF}
	if len(frame) != len(want)+1 {
		t.Fatalf("frame length = %d, want %d", len(frame), len(want)+1)
	}
	for i, b := range want {
		if frame[i] != b {
			t.Errorf("frame[%d] = %#x, want %#x", i, frame[i], b)
		}
	}
}

func TestBuildRequestRejectsOversizedPayload(t *testing.T) {
	_, err := buildRequest(1, 0x00, 0x00, make([]byte, maxPayloadLength+1))
	if err != ErrConfigurationError {
		t.Fatalf("expected ErrConfigurationError, got %v", err)
	}
}

// buildResponseFrame assembles a well-formed response frame around payload,
// computing a checksum that satisfies the whole-frame-sum invariant.
func buildResponseFrame(addr uint8, group, cmd byte, payload []byte) []byte {
	frame := make([]byte, 0, frameHeaderLength+len(payload)+1)
	frame = append(frame, startOfResponse, addr, ^addr, group, cmd, byte(len(payload)))
	frame = append(frame, payload...)
	frame = append(frame, checksumByte(frame))
	return frame
}

func TestValidateAndStripRoundTrip(t *testing.T) {
	payload := []byte{0x41, 0x42, 0x43, 0x44}
	frame := buildResponseFrame(1, 0x00, 0x00, payload)

	got, err := validateAndStrip(frame, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("validateAndStrip payload = %v, want %v", got, payload)
	}
}

func TestValidateAndStripBadChecksum(t *testing.T) {
	frame := buildResponseFrame(1, 0x00, 0x00, []byte{0x41, 0x42, 0x43, 0x44})
	frame[len(frame)-1] ^= 0x01

	if _, err := validateAndStrip(frame, 1); err != ErrBadChecksum {
		t.Fatalf("expected ErrBadChecksum, got %v", err)
	}
}

func TestValidateAndStripBadStart(t *testing.T) {
	frame := buildResponseFrame(1, 0x00, 0x00, nil)
	frame[0] = 0x55

	if _, err := validateAndStrip(frame, 1); err != ErrBadStart {
		t.Fatalf("expected ErrBadStart, got %v", err)
	}
}

func TestValidateAndStripAddressMismatch(t *testing.T) {
	frame := buildResponseFrame(1, 0x00, 0x00, nil)

	if _, err := validateAndStrip(frame, 2); err != ErrFrameBadAddress {
		t.Fatalf("expected ErrFrameBadAddress, got %v", err)
	}
}

func TestValidateAndStripBadLength(t *testing.T) {
	frame := buildResponseFrame(1, 0x00, 0x00, []byte{0x41, 0x42})
	frame[5] = 0x03

	if _, err := validateAndStrip(frame, 1); err != ErrBadLength {
		t.Fatalf("expected ErrBadLength, got %v", err)
	}
}

func TestValidateAndStripTooShort(t *testing.T) {
	if _, err := validateAndStrip([]byte{0xAA, 0x01, 0xFE, 0x00, 0x00}, 1); err != ErrFrameTooShort {
		t.Fatalf("expected ErrFrameTooShort, got %v", err)
	}
}
