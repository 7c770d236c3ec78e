package handlers

import (
	"context"
	"fmt"
	"os"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/manifest"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive manifest wizard.
	runWizard = manifest.RunWizard

	// saveManifest writes the manifest to a file.
	saveManifest = manifest.Save
)

// Init runs the manifest wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	du := result.ToManifest()

	if err := saveManifest(du, outputPath); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	printInitSuccess(outputPath, du)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("ductl - OAI RAN distributed units on Kubernetes")
	fmt.Println("===============================================")
	fmt.Println()
	fmt.Println("This wizard creates a DistributedUnit manifest with sensible defaults.")
	fmt.Println("The radio questions narrow each other down, so every combination")
	fmt.Println("offered is one the workload actually supports.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, du *duv1alpha1.DistributedUnit) {
	mode := "USB radio"
	if du.Spec.SimulationMode {
		mode = "RF simulation"
	}

	fmt.Println()
	fmt.Println("Manifest saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Unit Summary")
	fmt.Println("------------")
	fmt.Printf("  Name:             %s/%s\n", du.Namespace, du.Name)
	fmt.Printf("  Band:             n%d\n", du.Spec.FrequencyBand)
	fmt.Printf("  Center Frequency: %s MHz\n", du.Spec.CenterFrequency)
	fmt.Printf("  Bandwidth:        %d MHz at %d kHz spacing\n", du.Spec.Bandwidth, du.Spec.SubCarrierSpacing)
	fmt.Printf("  Mode:             %s\n", mode)
	fmt.Printf("  F1:               %s on %s, port %d\n", du.Spec.F1IPAddress, du.Spec.F1InterfaceName, du.Spec.F1Port)
	fmt.Printf("  Central Unit:     ConfigMap %s\n", du.Spec.CentralUnit.ConfigMapRef)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Println("  1. Install the Multus prerequisite if the cluster lacks it:")
	fmt.Println("     ductl bootstrap")
	fmt.Println()
	fmt.Printf("  2. Review %s if needed, then apply it:\n", outputPath)
	fmt.Printf("     kubectl apply -f %s\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Watch the unit come up:")
	fmt.Printf("     ductl status %s -n %s\n", du.Name, du.Namespace)
	fmt.Println()
}
