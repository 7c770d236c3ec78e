package rf

import (
	"fmt"
	"sort"
)

// bandRange is the downlink frequency span of an operating band.
type bandRange struct {
	lower Hertz
	upper Hertz
}

// tddBands lists the FR1 TDD operating bands (TS 38.104 table 5.2-1).
var tddBands = map[int32]bandRange{
	34:  {MHz(2010), MHz(2025)},
	38:  {MHz(2570), MHz(2620)},
	39:  {MHz(1880), MHz(1920)},
	40:  {MHz(2300), MHz(2400)},
	41:  {MHz(2496), MHz(2690)},
	48:  {MHz(3550), MHz(3700)},
	50:  {MHz(1432), MHz(1517)},
	51:  {MHz(1427), MHz(1432)},
	77:  {MHz(3300), MHz(4200)},
	78:  {MHz(3300), MHz(3800)},
	79:  {MHz(4400), MHz(5000)},
	90:  {MHz(2496), MHz(2690)},
	96:  {MHz(5925), MHz(7125)},
	101: {MHz(1900), MHz(1910)},
}

// allowedChannelBandwidths maps band and subcarrier spacing in kHz to the
// channel bandwidths in MHz supported by that combination (TS 38.104
// table 5.3.5-1).
var allowedChannelBandwidths = map[int32]map[int32][]int32{
	34: {
		15: {5, 10, 15},
		30: {10, 15},
	},
	38: {
		15: {5, 10, 15, 20, 25, 30, 40},
		30: {10, 15, 20, 25, 30, 40},
	},
	39: {
		15: {5, 10, 15, 20, 25, 30, 40},
		30: {10, 15, 20, 25, 30, 40},
	},
	40: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50},
	},
	41: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	48: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	50: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 80},
	},
	51: {
		15: {5},
	},
	77: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	78: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	79: {
		15: {40, 50},
		30: {40, 50, 60, 70, 80, 90, 100},
	},
	90: {
		15: {5, 10, 15, 20, 25, 30, 40, 50},
		30: {10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	96: {
		15: {20, 40},
		30: {20, 40, 60, 80, 100},
	},
	101: {
		15: {5, 10},
		30: {10},
	},
}

// Bands returns the supported TDD FR1 band numbers in ascending order.
func Bands() []int32 {
	bands := make([]int32, 0, len(tddBands))
	for band := range tddBands {
		bands = append(bands, band)
	}
	sort.Slice(bands, func(i, j int) bool { return bands[i] < bands[j] })
	return bands
}

// BandRange returns the downlink frequency span of a TDD FR1 band.
func BandRange(band int32) (lower, upper Hertz, err error) {
	r, ok := tddBands[band]
	if !ok {
		return 0, 0, fmt.Errorf("band %d is not a supported TDD FR1 band", band)
	}
	return r.lower, r.upper, nil
}

// AllowedBandwidths returns the channel bandwidths in MHz a band supports at
// the given subcarrier spacing in kHz, in ascending order.
func AllowedBandwidths(band, scs int32) ([]int32, error) {
	byBand, ok := allowedChannelBandwidths[band]
	if !ok {
		return nil, fmt.Errorf("band %d is not a supported TDD FR1 band", band)
	}
	widths, ok := byBand[scs]
	if !ok {
		return nil, fmt.Errorf("band %d does not support a %d kHz subcarrier spacing", band, scs)
	}
	return widths, nil
}

// BandwidthAllowed reports whether a band supports the channel bandwidth in
// MHz at the given subcarrier spacing in kHz.
func BandwidthAllowed(band, scs, bandwidth int32) bool {
	widths, err := AllowedBandwidths(band, scs)
	if err != nil {
		return false
	}
	for _, w := range widths {
		if w == bandwidth {
			return true
		}
	}
	return false
}

// MinBandwidth returns the smallest channel bandwidth in MHz a band supports
// at the given subcarrier spacing in kHz.
func MinBandwidth(band, scs int32) (int32, error) {
	widths, err := AllowedBandwidths(band, scs)
	if err != nil {
		return 0, err
	}
	return widths[0], nil
}
