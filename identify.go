package tem104

import (
	"strings"
	"time"
)

// identificationTable maps a token prefix to its Variant. Entries are
// ordered longest-prefix-first: "TEM-104M" is itself a prefix of
// "TEM-104M-1", so the longer entry must be tried before the shorter one
// or every TEM-104M-1 device would be misidentified.
var identificationTable = []struct {
	prefix  string
	variant Variant
}{
	{"TEM-104M-1", VariantArvasM1},
	{"TEM-104M", VariantArvasM},
	{"TSM104", VariantTesmart},
	{"TEM-104-1", VariantArvasLegacy1},
	{"TEM-104", VariantArvasLegacy},
}

// matchVariant returns the variant whose prefix matches token, trying
// entries in identificationTable order. Returns VariantUnknown if nothing
// matches.
func matchVariant(token string) Variant {
	token = strings.TrimSpace(token)
	for _, entry := range identificationTable {
		if strings.HasPrefix(token, entry.prefix) {
			return entry.variant
		}
	}
	return VariantUnknown
}

// identifyPostDelay is the pause applied after a successful identification
// and before the first data read, to accommodate the slowest observed
// device.
const identifyPostDelay = 500 * time.Millisecond

// interExchangeDelay is the pause applied between successive exchanges
// within ReadAll: some firmware revisions drop back-to-back requests.
const interExchangeDelay = 200 * time.Millisecond

// tesmartWindowDelay is the pause required by the device between the five
// contiguous TSM-104 image-window reads.
const tesmartWindowDelay = 200 * time.Millisecond
