package handlers

import (
	"errors"
	"fmt"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/manifest"
	"github.com/ranstack/oai-du-operator/internal/rf"
)

// Validate loads a manifest and runs the full operator-side validation
// against it. On success the derived radio parameters are printed, they are
// what the operator would configure the workload with.
func Validate(path string) error {
	du, err := manifest.Load(path)
	if err != nil {
		return err
	}

	spec := du.Spec.DeepCopy()
	spec.Default()

	if err := spec.Validate(); err != nil {
		var invalid *duv1alpha1.InvalidConfigError
		if errors.As(err, &invalid) {
			fmt.Printf("%s is not valid:\n", path)
			for _, field := range invalid.Fields {
				fmt.Printf("  - %s\n", field)
			}
			fmt.Println()
		}
		return err
	}

	fmt.Printf("%s is valid\n", path)

	// The spec validated, so parsing and derivation cannot fail.
	center, err := rf.ParseMHz(spec.CenterFrequency)
	if err != nil {
		return err
	}
	radio, err := rf.Derive(spec.FrequencyBand, center, spec.Bandwidth, spec.SubCarrierSpacing)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Derived Radio Parameters")
	fmt.Println("------------------------")
	fmt.Printf("  absoluteFrequencySSB:    %d\n", radio.AbsoluteFrequencySSB)
	fmt.Printf("  absoluteFrequencyPointA: %d\n", radio.AbsoluteFrequencyPointA)
	fmt.Printf("  carrierBandwidth:        %d RBs\n", radio.CarrierBandwidth)
	fmt.Printf("  initialBWP:              %d\n", radio.InitialBWP)
	fmt.Printf("  coresetZeroIndex:        %d\n", radio.CoresetZeroIndex)
	fmt.Printf("  numerology:              %d\n", radio.Numerology)
	fmt.Printf("  downlink frequency:      %d Hz\n", int64(radio.DLFrequency))

	return nil
}
