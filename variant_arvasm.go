package tem104

import "time"

// TEM-104M memory layout.
const (
	arvasMTotalsBase = 0x0800
	arvasMTotalsLen  = 0xFF

	arvasMV1Whole, arvasMV1Frac = 0x08, 0x48
	arvasMV2Whole, arvasMV2Frac = 0x0C, 0x4C
	arvasMM1Whole, arvasMM1Frac = 0x18, 0x58
	arvasMQWhole, arvasMQFrac   = 0x28, 0x68
	arvasMOpSeconds             = 0xA0

	arvasMInstBase = 0x0000
	arvasMInstLen  = 0xFF

	arvasMT1, arvasMT2 = 0x00, 0x04
	arvasMG1, arvasMG2 = 0x40, 0x44

	arvasMRTCBase = 0x0000
	arvasMRTCLen  = 7
)

type arvasMDecoder struct{}

var _ variantDecoder = arvasMDecoder{}

func (arvasMDecoder) readRTC(r blockReader) (time.Time, error) {
	return readDecimalRTC(r, arvasMRTCBase, arvasMRTCLen)
}

func (arvasMDecoder) readTotals(r blockReader, rec *Record) blockResult {
	buf, err := r.readFlash(arvasMTotalsBase, arvasMTotalsLen)
	if err != nil {
		return blockResult{attempted: 5, missing: true}
	}

	res := blockResult{attempted: 5}
	if v, err := combinedValue(buf, arvasMV1Whole, arvasMV1Frac); err == nil {
		rec.VolumeV1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasMV2Whole, arvasMV2Frac); err == nil {
		rec.VolumeV2 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasMM1Whole, arvasMM1Frac); err == nil {
		rec.MassM1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasMQWhole, arvasMQFrac); err == nil {
		rec.EnergyQ = f64ptr(v)
		res.populated++
	}
	if v, err := readU32BE(buf, arvasMOpSeconds); err == nil {
		rec.OpSeconds = u32ptr(v)
		res.populated++
	}

	return res
}

func (arvasMDecoder) readInstantaneous(r blockReader, rec *Record) blockResult {
	buf, err := r.readRAM(arvasMInstBase, arvasMInstLen)
	if err != nil {
		return blockResult{attempted: 4, missing: true}
	}

	res := blockResult{attempted: 4}
	if v, err := readF32BE(buf, arvasMT1); err == nil {
		rec.TempT1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasMT2); err == nil {
		rec.TempT2 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasMG1); err == nil {
		rec.FlowG1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasMG2); err == nil {
		rec.FlowG2 = f64ptr(float64(v))
		res.populated++
	}

	return res
}
