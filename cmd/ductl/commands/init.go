package commands

import (
	"github.com/spf13/cobra"

	"github.com/ranstack/oai-du-operator/cmd/ductl/handlers"
)

// Init returns the command for interactively creating a DistributedUnit
// manifest.
//
// Flags:
//
//	--output, -o: Path to output file (default "du.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a DistributedUnit manifest",
		Long: `Interactively create a DistributedUnit manifest.

This command guides you through configuring a distributed unit
step by step. It will ask about:

  - Unit identity (name and namespace)
  - Radio settings (band, subcarrier spacing, bandwidth, center frequency)
  - Operating mode (RF simulation or USB radio, MIMO)
  - F1 networking (CNI plugin, interface, address, port)
  - The central unit's contract ConfigMap
  - Optional log forwarding

The radio questions narrow each other down: only subcarrier
spacings and bandwidths the chosen band supports are offered,
and the center frequency is checked against the band edges.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "du.yaml", "Output file path")

	return cmd
}
