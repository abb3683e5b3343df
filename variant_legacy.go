package tem104

import "time"

// Original TEM-104 memory layout. The integer and fractional parts live
// in swapped regions relative to every other variant: whole at the higher
// offset, frac at the lower.
const (
	arvasLegacyTotalsBase = 0x0200
	arvasLegacyTotalsLen  = 0xFF

	arvasLegacyV1Whole, arvasLegacyV1Frac = 0x38, 0x08
	arvasLegacyV2Whole, arvasLegacyV2Frac = 0x3C, 0x0C
	arvasLegacyM1Whole, arvasLegacyM1Frac = 0x48, 0x18
	arvasLegacyQWhole, arvasLegacyQFrac   = 0x58, 0x28
	arvasLegacyOpSeconds                  = 0x6C

	arvasLegacyInstBase = 0x2200
	arvasLegacyInstLen  = 0xFF

	arvasLegacyT1, arvasLegacyT2 = 0x00, 0x04
	arvasLegacyG1, arvasLegacyG2 = 0x40, 0x44

	arvasLegacyRTCBase = 0x0010
	arvasLegacyRTCLen  = 10
)

type arvasLegacyDecoder struct{}

var _ variantDecoder = arvasLegacyDecoder{}

// readRTC decodes the stride-2 BCD time-of-day plus dense BCD date layout
// unique to this variant.
func (arvasLegacyDecoder) readRTC(r blockReader) (time.Time, error) {
	return readStrideBCDRTC(r, arvasLegacyRTCBase, arvasLegacyRTCLen)
}

func (arvasLegacyDecoder) readTotals(r blockReader, rec *Record) blockResult {
	buf, err := r.readFlash(arvasLegacyTotalsBase, arvasLegacyTotalsLen)
	if err != nil {
		return blockResult{attempted: 5, missing: true}
	}

	res := blockResult{attempted: 5}
	if v, err := combinedValue(buf, arvasLegacyV1Whole, arvasLegacyV1Frac); err == nil {
		rec.VolumeV1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasLegacyV2Whole, arvasLegacyV2Frac); err == nil {
		rec.VolumeV2 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasLegacyM1Whole, arvasLegacyM1Frac); err == nil {
		rec.MassM1 = f64ptr(v)
		res.populated++
	}
	if v, err := combinedValue(buf, arvasLegacyQWhole, arvasLegacyQFrac); err == nil {
		rec.EnergyQ = f64ptr(v)
		res.populated++
	}
	if v, err := readU32BE(buf, arvasLegacyOpSeconds); err == nil {
		rec.OpSeconds = u32ptr(v)
		res.populated++
	}

	return res
}

func (arvasLegacyDecoder) readInstantaneous(r blockReader, rec *Record) blockResult {
	buf, err := r.readRAM(arvasLegacyInstBase, arvasLegacyInstLen)
	if err != nil {
		return blockResult{attempted: 4, missing: true}
	}

	res := blockResult{attempted: 4}
	if v, err := readF32BE(buf, arvasLegacyT1); err == nil {
		rec.TempT1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasLegacyT2); err == nil {
		rec.TempT2 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasLegacyG1); err == nil {
		rec.FlowG1 = f64ptr(float64(v))
		res.populated++
	}
	if v, err := readF32BE(buf, arvasLegacyG2); err == nil {
		rec.FlowG2 = f64ptr(float64(v))
		res.populated++
	}

	return res
}
