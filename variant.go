package tem104

import "time"

// blockReader is satisfied by Client: it lets a variant decoder issue the
// reads it needs without depending on the concrete client type.
type blockReader interface {
	readFlash(base uint16, length byte) ([]byte, error)
	readRAM(base uint16, length byte) ([]byte, error)
	readRTCRaw(base uint16, length byte) ([]byte, error)
}

// blockResult reports how many of a block's expected fields were
// successfully populated, so ReadAll can derive the overall Status
// without needing to know each variant's field count in advance. missing
// marks a block that could not be read at all (transport or frame
// failure, or a short window), as opposed to one that arrived but failed
// to parse.
type blockResult struct {
	attempted int
	populated int
	missing   bool
}

// variantDecoder is the per-variant, three-step decode contract. A single
// switch on the Variant tag selects one of the five implementations; the
// per-variant offset tables live as constants next to each one.
type variantDecoder interface {
	readRTC(r blockReader) (time.Time, error)
	readTotals(r blockReader, rec *Record) blockResult
	readInstantaneous(r blockReader, rec *Record) blockResult
}

func decoderFor(v Variant) variantDecoder {
	switch v {
	case VariantArvasM1:
		return arvasM1Decoder{}
	case VariantArvasM:
		return arvasMDecoder{}
	case VariantArvasLegacy1:
		return arvasLegacy1Decoder{}
	case VariantArvasLegacy:
		return arvasLegacyDecoder{}
	case VariantTesmart:
		return tesmartDecoder{}
	default:
		return nil
	}
}

// recordStatus derives the overall Status from the per-block results:
// StatusOk if everything came back, StatusPartialDecode if some block was
// missing or short, StatusParseError if every block arrived yet nothing
// numeric could be recovered from them.
func recordStatus(results ...blockResult) Status {
	attempted, populated, missing := 0, 0, false
	for _, res := range results {
		attempted += res.attempted
		populated += res.populated
		if res.missing {
			missing = true
		}
	}

	switch {
	case missing:
		return StatusPartialDecode
	case attempted > 0 && populated == 0:
		return StatusParseError
	case populated < attempted:
		return StatusPartialDecode
	default:
		return StatusOk
	}
}
