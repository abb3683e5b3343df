package tem104

import "time"

// TEM-104M-1 memory layout.
const (
	arvasM1TotalsBase = 0x0180
	arvasM1TotalsLen  = 0xFF

	arvasM1V1Whole, arvasM1V1Frac = 0x08, 0x18
	arvasM1M1Whole, arvasM1M1Frac = 0x0C, 0x1C
	arvasM1QWhole, arvasM1QFrac   = 0x10, 0x20
	arvasM1OpSeconds              = 0x30

	arvasM1InstBase = 0x4000
	arvasM1InstLen  = 0xFF

	arvasM1T1, arvasM1T2 = 0x00, 0x04
	arvasM1G1, arvasM1G2 = 0x20, 0x24

	arvasM1RTCBase = 0x0000
	arvasM1RTCLen  = 7
)

type arvasM1Decoder struct{}

// readRTC decodes the decimal (not BCD) RTC layout shared with ArvasM:
// [ss, mm, hh, dd, MM, YY, ...].
func (arvasM1Decoder) readRTC(r blockReader) (time.Time, error) {
	return readDecimalRTC(r, arvasM1RTCBase, arvasM1RTCLen)
}

var _ variantDecoder = arvasM1Decoder{}

func (arvasM1Decoder) readTotals(r blockReader, rec *Record) blockResult {
	buf, err := r.readFlash(arvasM1TotalsBase, arvasM1TotalsLen)
	if err != nil {
		return blockResult{attempted: 4, missing: true}
	}

	res := blockResult{attempted: 4}
	if v, err := combinedValue(buf, arvasM1V1Whole, arvasM1V1Frac); err == nil {
		rec.VolumeV1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasM1M1Whole, arvasM1M1Frac); err == nil {
		rec.MassM1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasM1QWhole, arvasM1QFrac); err == nil {
		rec.EnergyQ = f64ptr(v)
		res.populated++
	}
	if v, err := readU32BE(buf, arvasM1OpSeconds); err == nil {
		rec.OpSeconds = u32ptr(v)
		res.populated++
	}

	return res
}

func (arvasM1Decoder) readInstantaneous(r blockReader, rec *Record) blockResult {
	buf, err := r.readRAM(arvasM1InstBase, arvasM1InstLen)
	if err != nil {
		return blockResult{attempted: 4, missing: true}
	}

	res := blockResult{attempted: 4}
	if v, err := readF32BE(buf, arvasM1T1); err == nil {
		rec.TempT1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasM1T2); err == nil {
		rec.TempT2 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasM1G1); err == nil {
		rec.FlowG1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasM1G2); err == nil {
		rec.FlowG2 = f64ptr(float64(v))
		res.populated++
	}

	return res
}
