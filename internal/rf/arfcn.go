package rf

import "fmt"

// ARFCN is an NR Absolute Radio Frequency Channel Number (TS 38.104 §5.4.2).
type ARFCN int64

// arfcnRange describes one segment of the global frequency raster.
// Frequencies in [lower, upper) map to channel numbers starting at offset
// with one step per grid Hertz.
type arfcnRange struct {
	lower  Hertz
	upper  Hertz
	grid   Hertz
	offset ARFCN
}

var arfcnRanges = []arfcnRange{
	{lower: 0, upper: MHz(3000), grid: KHz(5), offset: 0},
	{lower: MHz(3000), upper: MHz(24250), grid: KHz(15), offset: 600_000},
	{lower: MHz(24250), upper: MHz(100000), grid: KHz(60), offset: 2_016_667},
}

// FrequencyToARFCN returns the channel number closest from below to f.
func FrequencyToARFCN(f Hertz) (ARFCN, error) {
	for _, r := range arfcnRanges {
		if r.lower <= f && f < r.upper {
			return r.offset + ARFCN(int64(f-r.lower)/int64(r.grid)), nil
		}
	}
	return 0, fmt.Errorf("frequency %s Hz is out of the supported ARFCN range", f)
}

// Frequency returns the frequency the channel number designates.
func (a ARFCN) Frequency() (Hertz, error) {
	for i := len(arfcnRanges) - 1; i >= 0; i-- {
		r := arfcnRanges[i]
		if a >= r.offset {
			f := r.lower + Hertz(int64(a-r.offset)*int64(r.grid))
			if f >= r.upper {
				break
			}
			return f, nil
		}
	}
	return 0, fmt.Errorf("ARFCN %d is out of the supported range", a)
}
