package rf

import "fmt"

// coresetEntry is one row of a CORESET#0 configuration table. The row index
// within its table is the configuration index signalled in MIB.
type coresetEntry struct {
	rbs     int32
	symbols int32
	offset  int32
}

// coresetKey selects a CORESET#0 table by subcarrier spacing in kHz and the
// minimum channel bandwidth in MHz of the operating band.
type coresetKey struct {
	scs   int32
	minBW int32
}

// Tables 13-1, 13-4 and 13-6 of TS 38.213 for multiplexing pattern 1. Both
// SSB and PDCCH use the same subcarrier spacing in every supported band.
var (
	coresetTable15kHzMinBW5or10 = []coresetEntry{
		{24, 2, 0},
		{24, 2, 2},
		{24, 2, 4},
		{24, 3, 0},
		{24, 3, 2},
		{24, 3, 4},
		{48, 1, 12},
		{48, 1, 16},
		{48, 2, 12},
		{48, 2, 16},
		{48, 3, 12},
		{48, 3, 16},
		{96, 1, 38},
		{96, 2, 38},
		{96, 3, 38},
	}
	coresetTable30kHzMinBW5or10 = []coresetEntry{
		{24, 2, 0},
		{24, 2, 1},
		{24, 2, 2},
		{24, 2, 3},
		{24, 2, 4},
		{24, 3, 0},
		{24, 3, 1},
		{24, 3, 2},
		{24, 3, 3},
		{24, 3, 4},
		{48, 1, 12},
		{48, 1, 14},
		{48, 2, 12},
		{48, 2, 14},
		{48, 3, 12},
		{48, 3, 14},
	}
	coresetTable30kHzMinBW40 = []coresetEntry{
		{24, 2, 0},
		{24, 2, 4},
		{24, 3, 0},
		{24, 3, 4},
		{48, 1, 0},
		{48, 1, 28},
		{48, 2, 0},
		{48, 2, 28},
		{48, 3, 0},
		{48, 3, 28},
	}
)

var coresetZeroTables = map[coresetKey][]coresetEntry{
	{15, 5}:  coresetTable15kHzMinBW5or10,
	{15, 10}: coresetTable15kHzMinBW5or10,
	{30, 5}:  coresetTable30kHzMinBW5or10,
	{30, 10}: coresetTable30kHzMinBW5or10,
	{30, 40}: coresetTable30kHzMinBW40,
}

// CoresetZeroIndex selects the CORESET#0 configuration for a band. Among the
// rows of the table matching the band's minimum channel bandwidth it keeps
// those spanning the widest resource block count that fits the carrier and
// whose offset does not push the control region below point A, then picks
// the one with the fewest symbols.
func CoresetZeroIndex(band, scs, carrierBandwidth, offsetToPointA int32) (int32, error) {
	minBW, err := MinBandwidth(band, scs)
	if err != nil {
		return 0, err
	}
	table, ok := coresetZeroTables[coresetKey{scs: scs, minBW: minBW}]
	if !ok {
		return 0, fmt.Errorf("no CORESET#0 table covers a %d kHz subcarrier spacing with a %d MHz minimum channel bandwidth", scs, minBW)
	}
	var maxRBs int32
	for _, e := range table {
		if e.rbs <= carrierBandwidth && e.rbs > maxRBs {
			maxRBs = e.rbs
		}
	}
	index := int32(-1)
	symbols := int32(0)
	for i, e := range table {
		if e.rbs != maxRBs || e.offset > offsetToPointA {
			continue
		}
		if index < 0 || e.symbols < symbols {
			index = int32(i)
			symbols = e.symbols
		}
	}
	if index < 0 {
		return 0, fmt.Errorf("no CORESET#0 configuration fits a %d resource block carrier with point A offset %d", carrierBandwidth, offsetToPointA)
	}
	return index, nil
}
