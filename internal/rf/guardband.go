package rf

import "fmt"

// minGuardBands maps subcarrier spacing in kHz and channel bandwidth in MHz
// to the minimum guard band in Hz (TS 38.104 table 5.3.3-1).
var minGuardBands = map[int32]map[int32]Hertz{
	15: {
		5:  242_500,
		10: 312_500,
		15: 382_500,
		20: 452_500,
		25: 552_500,
		30: 592_500,
		40: 552_500,
		50: 692_500,
	},
	30: {
		5:   505_000,
		10:  665_000,
		15:  645_000,
		20:  805_000,
		25:  785_000,
		30:  945_000,
		40:  905_000,
		50:  1_045_000,
		60:  825_000,
		70:  965_000,
		80:  925_000,
		90:  885_000,
		100: 845_000,
	},
	60: {
		10:  1_010_000,
		15:  990_000,
		20:  1_330_000,
		25:  1_310_000,
		30:  1_290_000,
		40:  1_610_000,
		50:  1_570_000,
		60:  1_530_000,
		70:  1_490_000,
		80:  1_450_000,
		90:  1_410_000,
		100: 1_370_000,
	},
}

// GuardBand returns the minimum guard band for a subcarrier spacing in kHz
// and a channel bandwidth in MHz.
func GuardBand(scs, bandwidth int32) (Hertz, error) {
	byBandwidth, ok := minGuardBands[scs]
	if !ok {
		return 0, fmt.Errorf("no guard band is defined for a %d kHz subcarrier spacing", scs)
	}
	guard, ok := byBandwidth[bandwidth]
	if !ok {
		return 0, fmt.Errorf("no guard band is defined for a %d MHz channel at %d kHz subcarrier spacing", bandwidth, scs)
	}
	return guard, nil
}
