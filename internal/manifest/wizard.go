package manifest

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/rf"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Name      string
	Namespace string

	Band              int32
	SubCarrierSpacing int32
	Bandwidth         int32
	CenterFrequency   string

	SimulationMode bool
	UseMimo        bool

	CNIType         string
	F1InterfaceName string
	F1IPAddress     string
	F1Port          string

	CUConfigMapRef      string
	LoggingConfigMapRef string
}

// RunWizard walks through the questions needed to write a DistributedUnit
// manifest. Radio questions narrow each other down, only bandwidths the
// chosen band supports at the chosen spacing are offered.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Namespace:         "default",
		Band:              77,
		SubCarrierSpacing: 30,
		Bandwidth:         40,
		SimulationMode:    true,
		CNIType:           "bridge",
		F1InterfaceName:   "f1",
		F1IPAddress:       "192.168.254.5/24",
		F1Port:            "2153",
	}

	form := huh.NewForm(
		// Unit identity
		huh.NewGroup(
			huh.NewInput().
				Title("Unit name").
				Description("A unique name for this distributed unit (DNS-safe, lowercase)").
				Placeholder("du1").
				Value(&result.Name).
				Validate(validateUnitName),

			huh.NewInput().
				Title("Namespace").
				Description("Kubernetes namespace the unit is deployed into").
				Value(&result.Namespace).
				Validate(validateUnitName),
		),

		// Radio parameters
		huh.NewGroup(
			huh.NewSelect[int32]().
				Title("Frequency band").
				Description("3GPP TDD FR1 operating band").
				Options(bandOptions()...).
				Value(&result.Band),

			huh.NewSelect[int32]().
				Title("Subcarrier spacing").
				Description("Numerology 0 (15 kHz) or 1 (30 kHz)").
				OptionsFunc(func() []huh.Option[int32] {
					return scsOptionsFor(result.Band)
				}, &result.Band).
				Value(&result.SubCarrierSpacing),

			huh.NewSelect[int32]().
				Title("Channel bandwidth").
				Description("Bandwidths the band supports at this spacing").
				OptionsFunc(func() []huh.Option[int32] {
					return bandwidthOptionsFor(result.Band, result.SubCarrierSpacing)
				}, result).
				Value(&result.Bandwidth),

			huh.NewInput().
				Title("Center frequency (MHz)").
				Description("Carrier center, decimal MHz like 4060 or 3924.48").
				Placeholder("4060").
				Value(&result.CenterFrequency).
				Validate(result.validateCenterFrequency),
		),

		// Operating mode
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run against an RF simulator?").
				Description("Simulation needs no radio hardware and exposes an rfsim service").
				Value(&result.SimulationMode),

			huh.NewConfirm().
				Title("Enable 2x2 MIMO?").
				Description("Two antenna ports on PDSCH and PUSCH").
				Value(&result.UseMimo),
		),

		// F1 networking
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("CNI plugin").
				Description("How Multus attaches the F1 interface to the pod").
				Options(
					huh.NewOption("bridge (shared node bridge)", "bridge"),
					huh.NewOption("macvlan (dedicated host interface)", "macvlan"),
				).
				Value(&result.CNIType),

			huh.NewInput().
				Title("F1 interface name").
				Description("Interface inside the pod, also the macvlan master name").
				Value(&result.F1InterfaceName).
				Validate(validateInterfaceName),

			huh.NewInput().
				Title("F1 address").
				Description("CIDR assigned to the F1 interface").
				Value(&result.F1IPAddress).
				Validate(validateCIDR),

			huh.NewInput().
				Title("F1 port").
				Description("SCTP port the unit listens on").
				Value(&result.F1Port).
				Validate(validatePort),
		),

		// Peer wiring
		huh.NewGroup(
			huh.NewInput().
				Title("Central unit ConfigMap").
				Description("Name of the ConfigMap where the CU publishes its F1 data").
				Placeholder("cu-f1").
				Value(&result.CUConfigMapRef).
				Validate(validateUnitName),

			huh.NewInput().
				Title("Log endpoints ConfigMap (optional)").
				Description("ConfigMap with a Loki push URL, leave empty to skip log forwarding").
				Value(&result.LoggingConfigMapRef).
				Validate(validateOptionalName),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToManifest converts the wizard result to a DistributedUnit manifest.
// Every spec field is populated so the output YAML is explicit and
// self-documenting.
func (r *WizardResult) ToManifest() *duv1alpha1.DistributedUnit {
	du := New(r.Name, r.Namespace)

	port, err := strconv.ParseInt(r.F1Port, 10, 32)
	if err != nil {
		port = 2153
	}

	du.Spec = duv1alpha1.DistributedUnitSpec{
		CNIType:           r.CNIType,
		F1InterfaceName:   r.F1InterfaceName,
		F1IPAddress:       r.F1IPAddress,
		F1Port:            int32(port),
		SimulationMode:    r.SimulationMode,
		UseMimo:           r.UseMimo,
		CenterFrequency:   r.CenterFrequency,
		Bandwidth:         r.Bandwidth,
		FrequencyBand:     r.Band,
		SubCarrierSpacing: r.SubCarrierSpacing,
		CentralUnit:       duv1alpha1.CentralUnitRef{ConfigMapRef: r.CUConfigMapRef},
	}
	if r.LoggingConfigMapRef != "" {
		du.Spec.Logging = &duv1alpha1.LoggingSpec{EndpointsConfigMapRef: r.LoggingConfigMapRef}
	}
	du.Spec.Default()

	return du
}

// bandOptions lists every supported band with its downlink span.
func bandOptions() []huh.Option[int32] {
	var opts []huh.Option[int32]
	for _, band := range rf.Bands() {
		lower, upper, err := rf.BandRange(band)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("n%d (%s to %s MHz)", band, formatMHz(lower), formatMHz(upper))
		opts = append(opts, huh.NewOption(label, band))
	}
	return opts
}

// scsOptionsFor lists the subcarrier spacings the band actually supports.
// Band 51 for example only has a 15 kHz grid.
func scsOptionsFor(band int32) []huh.Option[int32] {
	var opts []huh.Option[int32]
	for _, scs := range []int32{15, 30} {
		if _, err := rf.AllowedBandwidths(band, scs); err != nil {
			continue
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d kHz", scs), scs))
	}
	return opts
}

// bandwidthOptionsFor lists the channel bandwidths valid for the band and
// spacing combination.
func bandwidthOptionsFor(band, scs int32) []huh.Option[int32] {
	widths, err := rf.AllowedBandwidths(band, scs)
	if err != nil {
		return nil
	}
	opts := make([]huh.Option[int32], 0, len(widths))
	for _, w := range widths {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d MHz", w), w))
	}
	return opts
}

// validateCenterFrequency checks the carrier fits the chosen band once the
// channel bandwidth is accounted for.
func (r *WizardResult) validateCenterFrequency(s string) error {
	if s == "" {
		return fmt.Errorf("center frequency is required")
	}
	center, err := rf.ParseMHz(s)
	if err != nil {
		return fmt.Errorf("not a decimal MHz value")
	}
	lower, upper, err := rf.BandRange(r.Band)
	if err != nil {
		return err
	}
	half := rf.MHz(int64(r.Bandwidth)) / 2
	if center < lower+half || center > upper-half {
		return fmt.Errorf("a %d MHz carrier in band n%d must sit between %s and %s MHz",
			r.Bandwidth, r.Band, formatMHz(lower+half), formatMHz(upper-half))
	}
	return nil
}

// validateUnitName validates a DNS-safe lowercase name.
func validateUnitName(s string) error {
	if s == "" {
		return fmt.Errorf("a name is required")
	}
	if len(s) > 63 {
		return fmt.Errorf("name must be 63 characters or less")
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '-' {
			return fmt.Errorf("name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return fmt.Errorf("name cannot start or end with a hyphen")
	}
	return nil
}

// validateOptionalName accepts an empty string or a DNS-safe name.
func validateOptionalName(s string) error {
	if s == "" {
		return nil
	}
	return validateUnitName(s)
}

// validateInterfaceName validates a Linux interface name.
func validateInterfaceName(s string) error {
	if s == "" {
		return fmt.Errorf("an interface name is required")
	}
	if len(s) > 15 {
		return fmt.Errorf("interface name must be 15 characters or less")
	}
	if strings.ContainsAny(s, " /") {
		return fmt.Errorf("interface name cannot contain spaces or slashes")
	}
	return nil
}

// validateCIDR validates an address in CIDR notation.
func validateCIDR(s string) error {
	if _, _, err := net.ParseCIDR(s); err != nil {
		return fmt.Errorf("expected an address in CIDR notation like 192.168.254.5/24")
	}
	return nil
}

// validatePort validates a port number string.
func validatePort(s string) error {
	port, err := strconv.ParseInt(s, 10, 32)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("expected a port between 1 and 65535")
	}
	return nil
}

// formatMHz renders a frequency as a decimal MHz string without trailing
// zeros, 1429500000 Hz becomes "1429.5".
func formatMHz(h rf.Hertz) string {
	whole := int64(h) / 1_000_000
	frac := int64(h) % 1_000_000
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	s := fmt.Sprintf("%d.%06d", whole, frac)
	return strings.TrimRight(s, "0")
}
