package tem104

import "time"

// TSM-104 exposes a single 1280-byte image that is assembled out of five
// consecutive 256-byte windows. Fields below are absolute offsets into
// that assembled image.
const (
	tesmartWindowSize  = 0x100
	tesmartWindowCount = 5

	tesmartT1, tesmartT2 = 0x0200, 0x0204
	tesmartG1, tesmartG2 = 0x0288, 0x028C

	tesmartScaleCh1 = 0x02FA
	tesmartScaleCh2 = 0x02FB

	tesmartV1Whole, tesmartV1Frac = 0x0318, 0x0300
	tesmartV2Whole, tesmartV2Frac = 0x031C, 0x0304
	tesmartM1Whole, tesmartM1Frac = 0x0348, 0x0330
	tesmartQWhole, tesmartQFrac   = 0x0378, 0x0360

	tesmartOpSeconds = 0x0404

	tesmartRTCOffset = 0x0482
)

type tesmartDecoder struct{}

var _ variantDecoder = tesmartDecoder{}

// kVol maps a channel's scale code to the integer denominator that
// positions the decimal point of its cumulative volume/mass values.
// Codes outside the tabulated range leave the value unscaled.
func kVol(scale byte) int {
	switch scale {
	case 3:
		return 10
	case 4:
		return 100
	case 5:
		return 1000
	default:
		return 1
	}
}

// kEnergy is the energy counterpart of kVol.
func kEnergy(scale byte) int {
	switch scale {
	case 2:
		return 10
	case 3:
		return 100
	case 4:
		return 1000
	case 5:
		return 10000
	case 6:
		return 100000
	default:
		return 1
	}
}

// assembleTesmartImage reads the five 256-byte windows in order, pausing
// tesmartWindowDelay between each; the device drops window reads issued
// back to back. Returns the number of windows successfully read alongside
// the assembled buffer; a short read leaves the corresponding window
// zeroed.
func assembleTesmartImage(r blockReader) ([]byte, int) {
	buf := make([]byte, tesmartWindowSize*tesmartWindowCount)
	windowsOK := 0

	for i := 0; i < tesmartWindowCount; i++ {
		if i > 0 {
			time.Sleep(tesmartWindowDelay)
		}

		// A len=0xFF read returns 255 bytes, one short of the 256-byte
		// window stride; no field offset lands on the uncovered byte.
		base := uint16(i * tesmartWindowSize)
		window, err := r.readFlash(base, 0xFF)
		if err != nil || len(window) < 0xFF {
			continue
		}

		copy(buf[i*tesmartWindowSize:(i+1)*tesmartWindowSize], window)
		windowsOK++
	}

	return buf, windowsOK
}

// readRTC fetches only the last image window, which holds the RTC bytes,
// rather than assembling the whole image for six BCD bytes.
func (tesmartDecoder) readRTC(r blockReader) (time.Time, error) {
	base := uint16((tesmartWindowCount - 1) * tesmartWindowSize)
	window, err := r.readFlash(base, 0xFF)
	if err != nil {
		return time.Time{}, err
	}
	return decodeDenseBCDRTCFromBuffer(window, tesmartRTCOffset-int(base))
}

// readTotals assembles the image once and decodes every field it carries.
// The totals and the instantaneous temperature/flow pair all live in the
// same contiguous buffer, unlike the other four variants which issue
// separate ReadFlash/ReadRAM exchanges for each block, so
// readInstantaneous is a no-op for this variant.
func (tesmartDecoder) readTotals(r blockReader, rec *Record) blockResult {
	buf, windowsOK := assembleTesmartImage(r)
	if windowsOK < tesmartWindowCount {
		// Any window failure leaves the totals and flow values
		// unpopulated; a partially-assembled image cannot be trusted.
		return blockResult{attempted: 9, missing: true}
	}

	res := blockResult{attempted: 9}

	scale1 := buf[tesmartScaleCh1]
	scale2 := buf[tesmartScaleCh2]

	if v, err := scaledCombinedValue(buf, tesmartV1Whole, tesmartV1Frac, kVol(scale1)); err == nil {
		rec.VolumeV1 = f64ptr(v)
		res.populated++
	}
	if v, err := scaledCombinedValue(buf, tesmartV2Whole, tesmartV2Frac, kVol(scale2)); err == nil {
		rec.VolumeV2 = f64ptr(v)
		res.populated++
	}
	if v, err := scaledCombinedValue(buf, tesmartM1Whole, tesmartM1Frac, kVol(scale1)); err == nil {
		rec.MassM1 = f64ptr(v)
		res.populated++
	}
	if v, err := scaledCombinedValue(buf, tesmartQWhole, tesmartQFrac, kEnergy(scale1)); err == nil {
		rec.EnergyQ = f64ptr(v)
		res.populated++
	}
	if v, err := readU32BE(buf, tesmartOpSeconds); err == nil {
		rec.OpSeconds = u32ptr(v)
		res.populated++
	}

	if v, err := readF32BE(buf, tesmartT1); err == nil {
		rec.TempT1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, tesmartT2); err == nil {
		rec.TempT2 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, tesmartG1); err == nil {
		rec.FlowG1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, tesmartG2); err == nil {
		rec.FlowG2 = f64ptr(float64(v))
		res.populated++
	}

	return res
}

// readInstantaneous is a no-op: Tesmart's temperature/flow fields are
// decoded as part of readTotals's single image assembly (see above).
func (tesmartDecoder) readInstantaneous(r blockReader, rec *Record) blockResult {
	return blockResult{}
}
