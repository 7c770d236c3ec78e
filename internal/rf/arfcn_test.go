package rf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyToARFCN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		freq     Hertz
		expected ARFCN
	}{
		{
			name:     "low range on the 5 kHz grid",
			freq:     MHz(2340),
			expected: 468000,
		},
		{
			name:     "low range truncates to the grid",
			freq:     MHz(2340) + 4_999,
			expected: 468000,
		},
		{
			name:     "mid range boundary",
			freq:     MHz(3000),
			expected: 600000,
		},
		{
			name:     "mid range on the 15 kHz grid",
			freq:     Hertz(4_040_010_000),
			expected: 669334,
		},
		{
			name:     "high range boundary",
			freq:     MHz(24250),
			expected: 2016667,
		},
		{
			name:     "high range on the 60 kHz grid",
			freq:     Hertz(24_993_120_000),
			expected: 2029052,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FrequencyToARFCN(tt.freq)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFrequencyToARFCNOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := FrequencyToARFCN(MHz(100000))
	assert.Error(t, err)
	_, err = FrequencyToARFCN(-1)
	assert.Error(t, err)
}

func TestARFCNFrequency(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		arfcn    ARFCN
		expected Hertz
	}{
		{name: "low range", arfcn: 468000, expected: MHz(2340)},
		{name: "first mid range channel", arfcn: 600000, expected: MHz(3000)},
		{name: "mid range", arfcn: 669334, expected: 4_040_010_000},
		{name: "last mid range channel", arfcn: 2016666, expected: 24_249_990_000},
		{name: "first high range channel", arfcn: 2016667, expected: MHz(24250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.arfcn.Frequency()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestARFCNFrequencyOutOfRange(t *testing.T) {
	t.Parallel()
	_, err := ARFCN(-1).Frequency()
	assert.Error(t, err)
	_, err = ARFCN(3_279_167).Frequency()
	assert.Error(t, err)
}
