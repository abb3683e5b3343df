package tem104

import "time"

// deadlineFromNow turns a timeout expressed in seconds into an absolute
// deadline. A non-positive timeout disarms the deadline (zero time).
func deadlineFromNow(timeoutSeconds float64) time.Time {
	if timeoutSeconds <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(timeoutSeconds * float64(time.Second)))
}

// exchange sends req over tr and returns the validated response payload:
// arm the deadline, write the request, then read the response with
// readFrame. Any transport or frame error discards whatever the link
// still holds so the next exchange starts clean.
func exchange(tr transport, req []byte, addr uint8, timeoutSeconds float64) ([]byte, error) {
	if err := tr.SetDeadline(deadlineFromNow(timeoutSeconds)); err != nil {
		return nil, err
	}

	if err := tr.Write(req); err != nil {
		return nil, err
	}

	frame, err := readFrame(tr)
	if err != nil {
		tr.Discard()
		return nil, err
	}

	payload, err := validateAndStrip(frame, addr)
	if err != nil {
		tr.Discard()
		return nil, err
	}

	return payload, nil
}

// readFrame reads a complete response frame off tr. The wire carries no
// end-of-frame marker: the reader first reads the fixed 6-byte header,
// then uses the declared payload length at header[5] to read exactly
// that many payload bytes plus the trailing checksum byte.
func readFrame(tr transport) ([]byte, error) {
	frame := make([]byte, frameHeaderLength)
	if err := tr.Read(frame); err != nil {
		return nil, err
	}

	// The declared length is a single byte: a full-size len=0xFF read
	// comes back as a 255-byte payload, and nothing larger can be
	// declared, so no inbound cap applies.
	rest := make([]byte, int(frame[5])+1)
	if err := tr.Read(rest); err != nil {
		return nil, err
	}

	return append(frame, rest...), nil
}
