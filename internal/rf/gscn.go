package rf

import "fmt"

// GSCN is a Global Synchronization Channel Number (TS 38.104 §5.4.3.1).
type GSCN int64

// The synchronization raster splits FR1/FR2 into three segments. Within each,
// channel numbers follow an arithmetic progression over a step index N.
//
// Low (< 3000 MHz):   f = N*1.2 MHz + 150 kHz,      gscn = 3N,           N in [1, 2499]
// Mid (< 24250 MHz):  f = 3000 MHz + N*1.44 MHz,    gscn = 7499 + N,     N in [0, 14756]
// High (>= 24250):    f = 24250.08 MHz + N*17.28,   gscn = 22256 + N,    N in [0, 4383]
const (
	lowGSCNStep   = 1_200_000
	lowGSCNBase   = 150_000
	lowGSCNMinN   = 1
	lowGSCNMaxN   = 2499
	midGSCNStep   = 1_440_000
	midGSCNBase   = 3_000_000_000
	midGSCNOffset = 7499
	midGSCNMaxN   = 14756
	highGSCNStep  = 17_280_000
	highGSCNBase  = 24_250_080_000
	highGSCNOff   = 22256
	highGSCNMaxN  = 4383
)

// FrequencyToGSCN returns the synchronization channel at or below f. The raw
// step index is range checked, then truncated onto the raster: the channel
// number never sits above the requested frequency.
func FrequencyToGSCN(f Hertz) (GSCN, error) {
	switch {
	case f < MHz(3000):
		num := int64(f) - lowGSCNBase
		if num < lowGSCNMinN*lowGSCNStep || num > lowGSCNMaxN*lowGSCNStep {
			return 0, fmt.Errorf("frequency %s Hz is outside the low band synchronization raster", f)
		}
		return GSCN(3 * num / lowGSCNStep), nil
	case f < MHz(24250):
		num := int64(f) - midGSCNBase
		if num < 0 || num > midGSCNMaxN*midGSCNStep {
			return 0, fmt.Errorf("frequency %s Hz is outside the mid band synchronization raster", f)
		}
		return GSCN(midGSCNOffset + num/midGSCNStep), nil
	case f < MHz(100000):
		num := int64(f) - highGSCNBase
		if num < 0 || num > highGSCNMaxN*highGSCNStep {
			return 0, fmt.Errorf("frequency %s Hz is outside the high band synchronization raster", f)
		}
		return GSCN(highGSCNOff + num/highGSCNStep), nil
	default:
		return 0, fmt.Errorf("frequency %s Hz is out of the supported GSCN range", f)
	}
}

// Frequency returns the raster frequency the channel number designates.
func (g GSCN) Frequency() (Hertz, error) {
	switch {
	case g >= 3*lowGSCNMinN && g <= 3*lowGSCNMaxN:
		return Hertz(int64(g)*400_000 + lowGSCNBase), nil
	case g >= midGSCNOffset && g <= midGSCNOffset+midGSCNMaxN:
		return Hertz(midGSCNBase + int64(g-midGSCNOffset)*midGSCNStep), nil
	case g >= highGSCNOff && g <= highGSCNOff+highGSCNMaxN:
		return Hertz(highGSCNBase + int64(g-highGSCNOff)*highGSCNStep), nil
	default:
		return 0, fmt.Errorf("GSCN %d is out of the supported range", g)
	}
}

// AbsoluteFrequencySSB places the SSB on the synchronization raster for the
// given center frequency and returns its position as an ARFCN.
func AbsoluteFrequencySSB(center Hertz) (ARFCN, error) {
	gscn, err := FrequencyToGSCN(center)
	if err != nil {
		return 0, err
	}
	// n79 requires the GSCN to sit on a raster of 16: move to the nearest
	// multiple of 16, downwards when the remainder is below 8.
	if center >= MHz(4400) && center <= MHz(5000) {
		if m := gscn % 16; m < 8 {
			gscn -= m
		} else {
			gscn += 16 - m
		}
	}
	ssbFreq, err := gscn.Frequency()
	if err != nil {
		return 0, err
	}
	return FrequencyToARFCN(ssbFreq)
}
