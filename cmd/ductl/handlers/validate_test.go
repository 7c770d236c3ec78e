package handlers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

func TestValidate_ValidManifest(t *testing.T) {
	manifestPath := writeTestManifest(t, nil)

	assert.NoError(t, Validate(manifestPath))
}

func TestValidate_InvalidSpec(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*duv1alpha1.DistributedUnit)
		wantField string
	}{
		{
			name: "bad CIDR",
			mutate: func(du *duv1alpha1.DistributedUnit) {
				du.Spec.F1IPAddress = "192.168.254.5"
			},
			wantField: "f1IPAddress",
		},
		{
			name: "center frequency outside band",
			mutate: func(du *duv1alpha1.DistributedUnit) {
				du.Spec.CenterFrequency = "2600" // n77 starts at 3300 MHz
			},
			wantField: "centerFrequency",
		},
		{
			name: "bandwidth unsupported on band at spacing",
			mutate: func(du *duv1alpha1.DistributedUnit) {
				du.Spec.FrequencyBand = 34
				du.Spec.CenterFrequency = "2017"
				du.Spec.Bandwidth = 100
			},
			wantField: "bandwidth",
		},
		{
			name: "missing central unit reference",
			mutate: func(du *duv1alpha1.DistributedUnit) {
				du.Spec.CentralUnit.ConfigMapRef = ""
			},
			wantField: "centralUnit.configMapRef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifestPath := writeTestManifest(t, tt.mutate)

			err := Validate(manifestPath)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "du.yaml")
	writeFile(t, path, `
apiVersion: oai.ranstack.io/v1alpha1
kind: DistributedUnit
metadata:
  name: du1
spec:
  centralUnit:
    configMapRef: cu-f1-provider
  frequencyBnad: 77
`)

	err := Validate(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "frequencyBnad")
}
