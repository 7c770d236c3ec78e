package v1alpha1

import (
	"fmt"
	"net"
	"strings"

	"github.com/ranstack/oai-du-operator/internal/rf"
)

// Carriers must stay inside FR1 regardless of the configured band.
const (
	minCenterFrequency = rf.Hertz(410_000_000)
	maxCenterFrequency = rf.Hertz(7_125_000_000)
)

// Default fills every unset optional field with its documented default.
// Admission normally does this through the CRD schema, the method exists for
// specs loaded from plain YAML.
func (s *DistributedUnitSpec) Default() {
	if s.CNIType == "" {
		s.CNIType = "bridge"
	}
	if s.F1InterfaceName == "" {
		s.F1InterfaceName = "f1"
	}
	if s.F1IPAddress == "" {
		s.F1IPAddress = "192.168.254.5/24"
	}
	if s.F1Port == 0 {
		s.F1Port = 2153
	}
	if s.CenterFrequency == "" {
		s.CenterFrequency = "4060"
	}
	if s.Bandwidth == 0 {
		s.Bandwidth = 40
	}
	if s.FrequencyBand == 0 {
		s.FrequencyBand = 77
	}
	if s.SubCarrierSpacing == 0 {
		s.SubCarrierSpacing = 30
	}
	if s.Image == "" {
		s.Image = "ghcr.io/canonical/oai-ran-du:2.2"
	}
}

// InvalidConfigError lists the spec fields that failed validation.
type InvalidConfigError struct {
	Fields []string
}

func (e *InvalidConfigError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = "'" + f + "'"
	}
	return fmt.Sprintf("The following configurations are not valid: [%s]", strings.Join(quoted, ", "))
}

// Validate checks the whole spec at once and reports every invalid field in
// a single error, so an operator can fix one round of mistakes instead of
// discovering them one by one.
func (s *DistributedUnitSpec) Validate() error {
	var invalid []string

	if s.CNIType != "bridge" && s.CNIType != "macvlan" {
		invalid = append(invalid, "cniType")
	}
	if s.F1InterfaceName == "" {
		invalid = append(invalid, "f1InterfaceName")
	}
	if _, _, err := net.ParseCIDR(s.F1IPAddress); err != nil {
		invalid = append(invalid, "f1IPAddress")
	}
	if s.F1Port < 1 || s.F1Port > 65535 {
		invalid = append(invalid, "f1Port")
	}

	center, err := rf.ParseMHz(s.CenterFrequency)
	centerValid := err == nil && center >= minCenterFrequency && center <= maxCenterFrequency
	if !centerValid {
		invalid = append(invalid, "centerFrequency")
	}

	bandLower, bandUpper, bandErr := rf.BandRange(s.FrequencyBand)
	if bandErr != nil {
		invalid = append(invalid, "frequencyBand")
	}

	scsValid := s.SubCarrierSpacing == 15 || s.SubCarrierSpacing == 30
	if !scsValid {
		invalid = append(invalid, "subCarrierSpacing")
	}

	// The per band bandwidth grid only applies once band and spacing are
	// individually valid, otherwise one typo would flag three fields.
	if bandErr == nil && scsValid && !rf.BandwidthAllowed(s.FrequencyBand, s.SubCarrierSpacing, s.Bandwidth) {
		invalid = append(invalid, "bandwidth")
	}

	if centerValid && bandErr == nil {
		half := rf.MHz(int64(s.Bandwidth)) / 2
		if center < bandLower+half || center > bandUpper-half {
			invalid = append(invalid, "centerFrequency")
		}
	}

	if s.CentralUnit.ConfigMapRef == "" {
		invalid = append(invalid, "centralUnit.configMapRef")
	}
	if s.Logging != nil && s.Logging.EndpointsConfigMapRef == "" {
		invalid = append(invalid, "logging.endpointsConfigMapRef")
	}

	if len(invalid) > 0 {
		return &InvalidConfigError{Fields: invalid}
	}
	return nil
}
