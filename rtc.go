package tem104

import "time"

// readDecimalRTC reads a 7-byte RTC block and decodes it as plain decimal
// bytes (not BCD): [ss, mm, hh, dd, MM, YY, ...], used by the TEM-104M
// and TEM-104M-1 models.
func readDecimalRTC(r blockReader, base uint16, length byte) (time.Time, error) {
	buf, err := r.readRTCRaw(base, length)
	if err != nil {
		return time.Time{}, err
	}
	if len(buf) < 6 {
		return time.Time{}, ErrFieldAbsent
	}

	ss, err := decimalAt(buf, 0)
	if err != nil {
		return time.Time{}, err
	}
	mm, err := decimalAt(buf, 1)
	if err != nil {
		return time.Time{}, err
	}
	hh, err := decimalAt(buf, 2)
	if err != nil {
		return time.Time{}, err
	}
	dd, err := decimalAt(buf, 3)
	if err != nil {
		return time.Time{}, err
	}
	mo, err := decimalAt(buf, 4)
	if err != nil {
		return time.Time{}, err
	}
	yy, err := decimalAt(buf, 5)
	if err != nil {
		return time.Time{}, err
	}

	return buildWallClock(yy, mo, dd, hh, mm, ss)
}

// readDenseBCDRTC reads a 7-byte RTC block laid out as dense packed BCD:
// [ss, mm, hh, _, dd, MM, YY], used by the TEM-104-1 model. Index 3 is
// reserved/unused.
func readDenseBCDRTC(r blockReader, base uint16, length byte) (time.Time, error) {
	buf, err := r.readRTCRaw(base, length)
	if err != nil {
		return time.Time{}, err
	}
	if len(buf) < 7 {
		return time.Time{}, ErrFieldAbsent
	}

	ss, err := bcdAt(buf, 0)
	if err != nil {
		return time.Time{}, err
	}
	mm, err := bcdAt(buf, 1)
	if err != nil {
		return time.Time{}, err
	}
	hh, err := bcdAt(buf, 2)
	if err != nil {
		return time.Time{}, err
	}
	dd, err := bcdAt(buf, 4)
	if err != nil {
		return time.Time{}, err
	}
	mo, err := bcdAt(buf, 5)
	if err != nil {
		return time.Time{}, err
	}
	yy, err := bcdAt(buf, 6)
	if err != nil {
		return time.Time{}, err
	}

	return buildWallClock(yy, mo, dd, hh, mm, ss)
}

// readStrideBCDRTC reads a 10-byte RTC block used by the original TEM-104
// model: the time-of-day portion is BCD with stride 2 (ss at p[0], mm at
// p[2], hh at p[4]), while the date portion is dense BCD at p[7], p[8],
// p[9].
func readStrideBCDRTC(r blockReader, base uint16, length byte) (time.Time, error) {
	buf, err := r.readRTCRaw(base, length)
	if err != nil {
		return time.Time{}, err
	}
	if len(buf) < 10 {
		return time.Time{}, ErrFieldAbsent
	}

	ss, err := bcdAt(buf, 0)
	if err != nil {
		return time.Time{}, err
	}
	mm, err := bcdAt(buf, 2)
	if err != nil {
		return time.Time{}, err
	}
	hh, err := bcdAt(buf, 4)
	if err != nil {
		return time.Time{}, err
	}
	dd, err := bcdAt(buf, 7)
	if err != nil {
		return time.Time{}, err
	}
	mo, err := bcdAt(buf, 8)
	if err != nil {
		return time.Time{}, err
	}
	yy, err := bcdAt(buf, 9)
	if err != nil {
		return time.Time{}, err
	}

	return buildWallClock(yy, mo, dd, hh, mm, ss)
}

// decodeDenseBCDRTCFromBuffer decodes a dense 6-byte BCD [ss, mm, hh, dd,
// MM, YY] sequence already present in buf at offset off, used by the
// TSM-104 model which carries its RTC inside the same contiguous image as
// everything else rather than serving a dedicated ReadRTC exchange.
func decodeDenseBCDRTCFromBuffer(buf []byte, off int) (time.Time, error) {
	if off < 0 || off+6 > len(buf) {
		return time.Time{}, ErrFieldAbsent
	}

	ss, err := bcdAt(buf, off)
	if err != nil {
		return time.Time{}, err
	}
	mm, err := bcdAt(buf, off+1)
	if err != nil {
		return time.Time{}, err
	}
	hh, err := bcdAt(buf, off+2)
	if err != nil {
		return time.Time{}, err
	}
	dd, err := bcdAt(buf, off+3)
	if err != nil {
		return time.Time{}, err
	}
	mo, err := bcdAt(buf, off+4)
	if err != nil {
		return time.Time{}, err
	}
	yy, err := bcdAt(buf, off+5)
	if err != nil {
		return time.Time{}, err
	}

	return buildWallClock(yy, mo, dd, hh, mm, ss)
}
