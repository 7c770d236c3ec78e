package rf

import "fmt"

// Derived holds every radio parameter computed from a carrier description.
// The values feed the serving cell configuration of the workload and the
// information shared with neighbour functions.
type Derived struct {
	Band                    int32
	AbsoluteFrequencySSB    ARFCN
	AbsoluteFrequencyPointA ARFCN
	CarrierBandwidth        int32
	InitialBWP              int32
	CoresetZeroIndex        int32
	Numerology              int32
	OffsetToPointA          int32
	KSSB                    int32
	FirstUsableSubcarrier   int32
	DLFrequency             Hertz
}

// Derive computes the full parameter set for a carrier. The center frequency
// is given in Hz, the channel bandwidth in MHz and the subcarrier spacing
// in kHz.
func Derive(band int32, center Hertz, bandwidth, scs int32) (*Derived, error) {
	ssb, err := AbsoluteFrequencySSB(center)
	if err != nil {
		return nil, fmt.Errorf("placing the SSB: %w", err)
	}
	pointA, err := DLAbsoluteFrequencyPointA(center, bandwidth, scs)
	if err != nil {
		return nil, fmt.Errorf("placing point A: %w", err)
	}
	carrierBW, err := CarrierBandwidth(bandwidth, scs)
	if err != nil {
		return nil, err
	}
	initialBWP, err := InitialBWP(carrierBW, scs)
	if err != nil {
		return nil, err
	}
	mu, err := Numerology(scs)
	if err != nil {
		return nil, err
	}
	offset := OffsetToPointA(ssb, pointA, mu)
	kssb := KSSB(ssb, pointA, mu)
	coreset, err := CoresetZeroIndex(band, scs, carrierBW, offset)
	if err != nil {
		return nil, err
	}
	dlFreq, err := DLFrequency(pointA, carrierBW, scs)
	if err != nil {
		return nil, err
	}
	return &Derived{
		Band:                    band,
		AbsoluteFrequencySSB:    ssb,
		AbsoluteFrequencyPointA: pointA,
		CarrierBandwidth:        carrierBW,
		InitialBWP:              initialBWP,
		CoresetZeroIndex:        coreset,
		Numerology:              mu,
		OffsetToPointA:          offset,
		KSSB:                    kssb,
		FirstUsableSubcarrier:   FirstUsableSubcarrier(offset, kssb, mu),
		DLFrequency:             dlFreq,
	}, nil
}

// DLAbsoluteFrequencyPointA returns the ARFCN of the lowest subcarrier of the
// carrier. The lowest usable frequency is aligned up to the resource grid of
// the subcarrier spacing so the carrier never extends below the channel edge.
func DLAbsoluteFrequencyPointA(center Hertz, bandwidth, scs int32) (ARFCN, error) {
	lowest := center - MHz(int64(bandwidth))/2
	grid := int64(KHz(int64(scs)))
	aligned := Hertz(divRoundHalfEven(int64(lowest), grid) * grid)
	if aligned < lowest {
		aligned += Hertz(grid)
	}
	return FrequencyToARFCN(aligned)
}

// Numerology returns the numerology index mu for a subcarrier spacing in kHz.
func Numerology(scs int32) (int32, error) {
	switch scs {
	case 15:
		return 0, nil
	case 30:
		return 1, nil
	case 60:
		return 2, nil
	default:
		return 0, fmt.Errorf("no numerology is defined for a %d kHz subcarrier spacing", scs)
	}
}

// channelScaling returns the subcarrier count per ARFCN step. Below channel
// number 600000 the raster step is 5 kHz, a third of the 15 kHz subcarrier
// width, so three steps make up one subcarrier.
func channelScaling(pointA ARFCN) int32 {
	if pointA < 600000 {
		return 3
	}
	return 1
}

// OffsetToPointA returns the offset from point A to the lowest resource
// block overlapping the SSB, in resource blocks at 15 kHz spacing, rounded
// down to the numerology grid. The SSB spans ten resource blocks below its
// channel position.
func OffsetToPointA(ssb, pointA ARFCN, numerology int32) int32 {
	diff := int32(ssb - pointA)
	s5 := channelScaling(pointA)
	scaling := int32(1) << numerology
	return (diff - 120*s5*scaling) / (12 * s5)
}

// KSSB returns the subcarrier offset between the SSB and the resource block
// grid. At 30 kHz spacing the offset is expressed in 15 kHz subcarriers and
// wraps at 24, otherwise at 12.
func KSSB(ssb, pointA ARFCN, numerology int32) int32 {
	diff := int32(ssb - pointA)
	limit := int32(12)
	if numerology == 1 {
		limit = 24
	}
	return (diff / channelScaling(pointA)) % limit
}

// FirstUsableSubcarrier returns the index of the first subcarrier usable for
// data, counted on the numerology grid from point A.
func FirstUsableSubcarrier(offsetToPointA, kssb, numerology int32) int32 {
	scaling := int32(1) << numerology
	return 12*(offsetToPointA/scaling) + kssb/scaling
}

// DLFrequency returns the downlink center frequency of the carrier, placed
// half the carrier span above point A.
func DLFrequency(pointA ARFCN, carrierBandwidth, scs int32) (Hertz, error) {
	base, err := pointA.Frequency()
	if err != nil {
		return 0, err
	}
	span := Hertz(12 * int64(carrierBandwidth) * int64(scs) * 1000)
	return base + span/2, nil
}
