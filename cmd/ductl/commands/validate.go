package commands

import (
	"github.com/spf13/cobra"

	"github.com/ranstack/oai-du-operator/cmd/ductl/handlers"
)

// Validate returns the command for validating a DistributedUnit manifest.
//
// The command runs the full operator-side validation against a local
// manifest file, so configuration mistakes surface before anything is
// applied to a cluster.
func Validate() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a DistributedUnit manifest",
		Long: `Validate a DistributedUnit manifest.

Runs the same validation the operator applies on the cluster:
CIDR syntax, port ranges, the band / subcarrier spacing /
bandwidth compatibility tables and the center frequency window.
A manifest that passes here will not end up Blocked.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(manifestPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "du.yaml", "Manifest file to validate")

	return cmd
}
