package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranstack/oai-du-operator/internal/rf"
)

func TestValidateUnitName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantError bool
	}{
		{"valid simple name", "du1", false},
		{"valid with hyphens", "cell-tower-3", false},
		{"valid numbers only", "42", false},
		{"empty string", "", true},
		{"too long (64 chars)", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"max length (63 chars)", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"uppercase letters", "MyUnit", true},
		{"starts with hyphen", "-du", true},
		{"ends with hyphen", "du-", true},
		{"contains underscore", "du_1", true},
		{"contains dot", "du.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUnitName(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInterfaceName(t *testing.T) {
	assert.NoError(t, validateInterfaceName("f1"))
	assert.NoError(t, validateInterfaceName("eth0.100"))
	assert.Error(t, validateInterfaceName(""))
	assert.Error(t, validateInterfaceName("way-too-long-iface-name"))
	assert.Error(t, validateInterfaceName("has space"))
}

func TestValidateCIDR(t *testing.T) {
	assert.NoError(t, validateCIDR("192.168.254.5/24"))
	assert.NoError(t, validateCIDR("10.1.2.3/16"))
	assert.Error(t, validateCIDR("192.168.254.5"))
	assert.Error(t, validateCIDR("not-a-cidr"))
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, validatePort("2153"))
	assert.NoError(t, validatePort("1"))
	assert.NoError(t, validatePort("65535"))
	assert.Error(t, validatePort("0"))
	assert.Error(t, validatePort("65536"))
	assert.Error(t, validatePort("sctp"))
}

func TestBandOptions(t *testing.T) {
	opts := bandOptions()
	require.NotEmpty(t, opts)

	labels := make(map[int32]string, len(opts))
	for _, o := range opts {
		labels[o.Value] = o.Key
	}
	assert.Equal(t, "n77 (3300 to 4200 MHz)", labels[77])
	assert.Equal(t, "n51 (1427 to 1432 MHz)", labels[51])
}

func TestSCSOptionsFor(t *testing.T) {
	t.Run("band 77 has both spacings", func(t *testing.T) {
		opts := scsOptionsFor(77)
		require.Len(t, opts, 2)
		assert.Equal(t, int32(15), opts[0].Value)
		assert.Equal(t, int32(30), opts[1].Value)
	})

	t.Run("band 51 only has 15 kHz", func(t *testing.T) {
		opts := scsOptionsFor(51)
		require.Len(t, opts, 1)
		assert.Equal(t, int32(15), opts[0].Value)
	})
}

func TestBandwidthOptionsFor(t *testing.T) {
	t.Run("band 79 at 15 kHz starts wide", func(t *testing.T) {
		opts := bandwidthOptionsFor(79, 15)
		require.Len(t, opts, 2)
		assert.Equal(t, int32(40), opts[0].Value)
		assert.Equal(t, int32(50), opts[1].Value)
	})

	t.Run("band 101 at 30 kHz has a single width", func(t *testing.T) {
		opts := bandwidthOptionsFor(101, 30)
		require.Len(t, opts, 1)
		assert.Equal(t, int32(10), opts[0].Value)
	})

	t.Run("unsupported combination is empty", func(t *testing.T) {
		assert.Empty(t, bandwidthOptionsFor(51, 30))
	})
}

func TestValidateCenterFrequency(t *testing.T) {
	tests := []struct {
		name      string
		result    WizardResult
		input     string
		wantError bool
	}{
		{"band 77 default carrier", WizardResult{Band: 77, Bandwidth: 40}, "4060", false},
		{"band 77 lower edge", WizardResult{Band: 77, Bandwidth: 40}, "3320", false},
		{"band 77 below lower edge", WizardResult{Band: 77, Bandwidth: 40}, "3310", true},
		{"band 77 above upper edge", WizardResult{Band: 77, Bandwidth: 40}, "4181", true},
		{"band 51 single valid point", WizardResult{Band: 51, Bandwidth: 5}, "1429.5", false},
		{"empty", WizardResult{Band: 77, Bandwidth: 40}, "", true},
		{"not a number", WizardResult{Band: 77, Bandwidth: 40}, "mid-band", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.validateCenterFrequency(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatMHz(t *testing.T) {
	assert.Equal(t, "3300", formatMHz(rf.MHz(3300)))
	assert.Equal(t, "1429.5", formatMHz(rf.KHz(1_429_500)))
	assert.Equal(t, "3924.48", formatMHz(rf.KHz(3_924_480)))
}

func TestToManifest(t *testing.T) {
	result := &WizardResult{
		Name:              "du1",
		Namespace:         "ran",
		Band:              40,
		SubCarrierSpacing: 15,
		Bandwidth:         20,
		CenterFrequency:   "2350",
		SimulationMode:    true,
		UseMimo:           true,
		CNIType:           "macvlan",
		F1InterfaceName:   "eth1",
		F1IPAddress:       "10.1.2.3/16",
		F1Port:            "2154",
		CUConfigMapRef:    "cu-f1",
	}

	du := result.ToManifest()

	assert.Equal(t, "DistributedUnit", du.Kind)
	assert.Equal(t, "oai.ranstack.io/v1alpha1", du.APIVersion)
	assert.Equal(t, "du1", du.Name)
	assert.Equal(t, "ran", du.Namespace)

	assert.Equal(t, int32(40), du.Spec.FrequencyBand)
	assert.Equal(t, int32(15), du.Spec.SubCarrierSpacing)
	assert.Equal(t, int32(20), du.Spec.Bandwidth)
	assert.Equal(t, "2350", du.Spec.CenterFrequency)
	assert.True(t, du.Spec.SimulationMode)
	assert.True(t, du.Spec.UseMimo)
	assert.Equal(t, "macvlan", du.Spec.CNIType)
	assert.Equal(t, "eth1", du.Spec.F1InterfaceName)
	assert.Equal(t, "10.1.2.3/16", du.Spec.F1IPAddress)
	assert.Equal(t, int32(2154), du.Spec.F1Port)
	assert.Equal(t, "cu-f1", du.Spec.CentralUnit.ConfigMapRef)
	assert.Nil(t, du.Spec.Logging)

	// Default() makes the remaining fields explicit.
	assert.Equal(t, "ghcr.io/canonical/oai-ran-du:2.2", du.Spec.Image)

	assert.NoError(t, du.Spec.Validate())
}

func TestToManifestWithLogging(t *testing.T) {
	result := &WizardResult{
		Name:                "du1",
		Namespace:           "ran",
		Band:                77,
		SubCarrierSpacing:   30,
		Bandwidth:           40,
		CenterFrequency:     "4060",
		CNIType:             "bridge",
		F1InterfaceName:     "f1",
		F1IPAddress:         "192.168.254.5/24",
		F1Port:              "2153",
		CUConfigMapRef:      "cu-f1",
		LoggingConfigMapRef: "loki-endpoints",
	}

	du := result.ToManifest()

	require.NotNil(t, du.Spec.Logging)
	assert.Equal(t, "loki-endpoints", du.Spec.Logging.EndpointsConfigMapRef)
	assert.NoError(t, du.Spec.Validate())
}
