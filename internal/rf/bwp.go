package rf

import "fmt"

// totalPRBs maps subcarrier spacing in kHz to the largest resource block
// count a bandwidth part can span at that spacing.
var totalPRBs = map[int32]int32{
	15:  275,
	30:  137,
	60:  69,
	120: 33,
}

// TotalPRBs returns the largest resource block count a bandwidth part can
// span at the given subcarrier spacing in kHz.
func TotalPRBs(scs int32) (int32, error) {
	n, ok := totalPRBs[scs]
	if !ok {
		return 0, fmt.Errorf("no bandwidth part size is defined for a %d kHz subcarrier spacing", scs)
	}
	return n, nil
}

// InitialBWP encodes the initial downlink bandwidth part location for a
// carrier that starts at resource block zero and spans the full carrier
// bandwidth (TS 38.213 §12).
func InitialBWP(carrierBandwidth, scs int32) (int32, error) {
	n, err := TotalPRBs(scs)
	if err != nil {
		return 0, err
	}
	return n * (carrierBandwidth - 1), nil
}
