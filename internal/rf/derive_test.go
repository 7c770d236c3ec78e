package rf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveBand77Default(t *testing.T) {
	t.Parallel()
	center, err := ParseMHz("4060")
	require.NoError(t, err)

	d, err := Derive(77, center, 40, 30)
	require.NoError(t, err)

	assert.Equal(t, int32(77), d.Band)
	assert.Equal(t, ARFCN(670656), d.AbsoluteFrequencySSB)
	assert.Equal(t, ARFCN(669334), d.AbsoluteFrequencyPointA)
	assert.Equal(t, int32(106), d.CarrierBandwidth)
	assert.Equal(t, int32(14385), d.InitialBWP)
	assert.Equal(t, int32(10), d.CoresetZeroIndex)
	assert.Equal(t, int32(1), d.Numerology)
	assert.Equal(t, int32(90), d.OffsetToPointA)
	assert.Equal(t, int32(2), d.KSSB)
	assert.Equal(t, int32(541), d.FirstUsableSubcarrier)
	assert.Equal(t, Hertz(4_059_090_000), d.DLFrequency)
}

func TestDeriveBand77NarrowCarrier(t *testing.T) {
	t.Parallel()
	d, err := Derive(77, MHz(3500), 20, 30)
	require.NoError(t, err)

	assert.Equal(t, ARFCN(633312), d.AbsoluteFrequencySSB)
	assert.Equal(t, ARFCN(632668), d.AbsoluteFrequencyPointA)
	assert.Equal(t, int32(51), d.CarrierBandwidth)
	assert.Equal(t, int32(6850), d.InitialBWP)
	assert.Equal(t, int32(10), d.CoresetZeroIndex)
	assert.Equal(t, int32(1), d.Numerology)
	assert.Equal(t, int32(33), d.OffsetToPointA)
	assert.Equal(t, int32(20), d.KSSB)
	assert.Equal(t, int32(202), d.FirstUsableSubcarrier)
	assert.Equal(t, Hertz(3_499_200_000), d.DLFrequency)
}

func TestDeriveBand40LowRange(t *testing.T) {
	t.Parallel()
	d, err := Derive(40, MHz(2350), 20, 15)
	require.NoError(t, err)

	assert.Equal(t, int32(40), d.Band)
	assert.Equal(t, ARFCN(469950), d.AbsoluteFrequencySSB)
	assert.Equal(t, ARFCN(468000), d.AbsoluteFrequencyPointA)
	assert.Equal(t, int32(106), d.CarrierBandwidth)
	assert.Equal(t, int32(28875), d.InitialBWP)
	assert.Equal(t, int32(12), d.CoresetZeroIndex)
	assert.Equal(t, int32(0), d.Numerology)
	assert.Equal(t, int32(44), d.OffsetToPointA)
	assert.Equal(t, int32(2), d.KSSB)
	assert.Equal(t, int32(530), d.FirstUsableSubcarrier)
	assert.Equal(t, Hertz(2_349_540_000), d.DLFrequency)
}

func TestDeriveErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		band      int32
		center    Hertz
		bandwidth int32
		scs       int32
	}{
		{
			name:      "center outside the synchronization raster",
			band:      78,
			center:    MHz(1),
			bandwidth: 40,
			scs:       30,
		},
		{
			name:      "band without a control region table",
			band:      96,
			center:    MHz(6000),
			bandwidth: 40,
			scs:       30,
		},
		{
			name:      "unsupported subcarrier spacing",
			band:      78,
			center:    MHz(4060),
			bandwidth: 40,
			scs:       45,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Derive(tt.band, tt.center, tt.bandwidth, tt.scs)
			assert.Error(t, err)
		})
	}
}

func TestDLAbsoluteFrequencyPointA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		center    Hertz
		bandwidth int32
		scs       int32
		expected  ARFCN
	}{
		{
			name:      "lowest subcarrier already on the grid",
			center:    MHz(2350),
			bandwidth: 20,
			scs:       15,
			expected:  468000,
		},
		{
			name:      "rounded up onto the grid",
			center:    MHz(4060),
			bandwidth: 40,
			scs:       30,
			expected:  669334,
		},
		{
			name:      "rounded down then bumped above the channel edge",
			center:    Hertz(4_060_011_000),
			bandwidth: 40,
			scs:       30,
			expected:  669336,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DLAbsoluteFrequencyPointA(tt.center, tt.bandwidth, tt.scs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCarrierBandwidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		bandwidth int32
		scs       int32
		expected  int32
	}{
		{name: "40 MHz at 30 kHz", bandwidth: 40, scs: 30, expected: 106},
		{name: "20 MHz at 15 kHz", bandwidth: 20, scs: 15, expected: 106},
		{name: "100 MHz at 30 kHz", bandwidth: 100, scs: 30, expected: 273},
		{name: "50 MHz at 15 kHz", bandwidth: 50, scs: 15, expected: 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CarrierBandwidth(tt.bandwidth, tt.scs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := CarrierBandwidth(5, 60)
	assert.Error(t, err)
}

func TestInitialBWP(t *testing.T) {
	t.Parallel()
	got, err := InitialBWP(106, 30)
	require.NoError(t, err)
	assert.Equal(t, int32(14385), got)

	got, err = InitialBWP(106, 15)
	require.NoError(t, err)
	assert.Equal(t, int32(28875), got)

	_, err = InitialBWP(106, 45)
	assert.Error(t, err)
}

func TestCoresetZeroIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name             string
		band             int32
		scs              int32
		carrierBandwidth int32
		offsetToPointA   int32
		expected         int32
	}{
		{
			name:             "band 78 picks the single symbol row",
			band:             78,
			scs:              30,
			carrierBandwidth: 106,
			offsetToPointA:   90,
			expected:         10,
		},
		{
			name:             "band 40 reaches the 96 block rows",
			band:             40,
			scs:              15,
			carrierBandwidth: 106,
			offsetToPointA:   44,
			expected:         12,
		},
		{
			name:             "band 79 uses the 40 MHz table",
			band:             79,
			scs:              30,
			carrierBandwidth: 106,
			offsetToPointA:   30,
			expected:         4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CoresetZeroIndex(tt.band, tt.scs, tt.carrierBandwidth, tt.offsetToPointA)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCoresetZeroIndexErrors(t *testing.T) {
	t.Parallel()
	// Band 96 carriers start at 20 MHz, a width no table covers.
	_, err := CoresetZeroIndex(96, 30, 106, 90)
	assert.Error(t, err)

	// No row fits when the point A offset is smaller than every candidate.
	_, err = CoresetZeroIndex(78, 30, 106, 5)
	assert.Error(t, err)

	// A carrier narrower than the narrowest control region.
	_, err = CoresetZeroIndex(78, 30, 20, 90)
	assert.Error(t, err)
}

func TestNumerology(t *testing.T) {
	t.Parallel()
	for scs, expected := range map[int32]int32{15: 0, 30: 1, 60: 2} {
		got, err := Numerology(scs)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
	_, err := Numerology(120)
	assert.Error(t, err)
}
