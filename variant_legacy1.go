package tem104

import "time"

// TEM-104-1 memory layout. This variant has no G2 and no power field.
const (
	arvasLegacy1TotalsBase = 0x0100
	arvasLegacy1TotalsLen  = 0xFF

	arvasLegacy1V1Whole, arvasLegacy1V1Frac = 0x44, 0x48
	arvasLegacy1M1Whole, arvasLegacy1M1Frac = 0x4C, 0x50
	arvasLegacy1QWhole, arvasLegacy1QFrac   = 0x54, 0x58
	arvasLegacy1OpSeconds                   = 0x60

	arvasLegacy1InstBase = 0x00B8
	arvasLegacy1InstLen  = 0xFF

	arvasLegacy1G1 = 0x00
	arvasLegacy1T1 = 0x08
	arvasLegacy1T2 = 0x0C

	arvasLegacy1RTCBase = 0x0000
	arvasLegacy1RTCLen  = 7
)

type arvasLegacy1Decoder struct{}

var _ variantDecoder = arvasLegacy1Decoder{}

func (arvasLegacy1Decoder) readRTC(r blockReader) (time.Time, error) {
	return readDenseBCDRTC(r, arvasLegacy1RTCBase, arvasLegacy1RTCLen)
}

func (arvasLegacy1Decoder) readTotals(r blockReader, rec *Record) blockResult {
	buf, err := r.readFlash(arvasLegacy1TotalsBase, arvasLegacy1TotalsLen)
	if err != nil {
		return blockResult{attempted: 4, missing: true}
	}

	res := blockResult{attempted: 4}
	if v, err := combinedValue(buf, arvasLegacy1V1Whole, arvasLegacy1V1Frac); err == nil {
		rec.VolumeV1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasLegacy1M1Whole, arvasLegacy1M1Frac); err == nil {
		rec.MassM1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasLegacy1QWhole, arvasLegacy1QFrac); err == nil {
		rec.EnergyQ = f64ptr(v)
		res.populated++
	}
	if v, err := readU32BE(buf, arvasLegacy1OpSeconds); err == nil {
		rec.OpSeconds = u32ptr(v)
		res.populated++
	}

	return res
}

func (arvasLegacy1Decoder) readInstantaneous(r blockReader, rec *Record) blockResult {
	buf, err := r.readRAM(arvasLegacy1InstBase, arvasLegacy1InstLen)
	if err != nil {
		return blockResult{attempted: 3, missing: true}
	}

	res := blockResult{attempted: 2}
	if v, err := readF32BE(buf, arvasLegacy1T1); err == nil {
		rec.TempT1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasLegacy1T2); err == nil {
		rec.TempT2 = f64ptr(float64(v))
		res.populated++
	}
	res.attempted++
	if v, err := readF32BE(buf, arvasLegacy1G1); err == nil {
		rec.FlowG1 = f64ptr(float64(v))
		res.populated++
	}

	return res
}
