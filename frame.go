package tem104

// Wire framing constants.
const (
	startOfRequest  byte = 0x55
	startOfResponse byte = 0xAA

	// frameHeaderLength is the number of bytes preceding the payload:
	// start byte, address, inverted-address/ignored byte, group, command,
	// payload length.
	frameHeaderLength = 6
	// maxPayloadLength bounds request params so the full request frame
	// (header + params + checksum) never exceeds 259 bytes. Response
	// payloads are not subject to it; they run up to 255 bytes, the most
	// a one-byte declared length can name.
	maxPayloadLength = 252
)

// buildRequest constructs a request frame: 6-byte header, the payload
// bytes, and a trailing checksum chosen so the whole-frame unsigned-8-bit
// sum equals 0xFF.
//
// addr must be in [1, 247]; callers are expected to have validated this
// already (see NewClient).
func buildRequest(addr uint8, group, cmd byte, params []byte) ([]byte, error) {
	if len(params) > maxPayloadLength {
		return nil, ErrConfigurationError
	}

	frame := make([]byte, 0, frameHeaderLength+len(params)+1)
	frame = append(frame, startOfRequest, addr, ^addr, group, cmd, byte(len(params)))
	frame = append(frame, params...)
	frame = append(frame, checksumByte(frame))

	return frame, nil
}

// checksumByte returns the trailing byte that makes sum(frame)+checksum
// equal 0xFF (mod 256), i.e. the bitwise complement of the 8-bit sum of
// frame.
func checksumByte(frame []byte) byte {
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return ^sum
}

// validateAndStrip validates a complete response frame against expectedAddr
// and, on success, returns the payload bytes (with header and trailing
// checksum removed).
func validateAndStrip(frame []byte, expectedAddr uint8) ([]byte, error) {
	if len(frame) < frameHeaderLength+1 {
		return nil, ErrFrameTooShort
	}

	if frame[0] != startOfResponse {
		return nil, ErrBadStart
	}

	if frame[1] != expectedAddr {
		return nil, ErrFrameBadAddress
	}

	declaredLen := int(frame[5])
	if declaredLen != len(frame)-frameHeaderLength-1 {
		return nil, ErrBadLength
	}

	var sum byte
	for _, b := range frame {
		sum += b
	}
	if sum != 0xFF {
		return nil, ErrBadChecksum
	}

	return frame[frameHeaderLength : len(frame)-1], nil
}
