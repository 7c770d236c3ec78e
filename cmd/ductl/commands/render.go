package commands

import (
	"github.com/spf13/cobra"

	"github.com/ranstack/oai-du-operator/cmd/ductl/handlers"
)

// Render returns the command for rendering the workload configuration
// offline.
//
// The central unit's side of the F1 contract normally arrives through a
// ConfigMap on the cluster; for offline rendering it is supplied through
// flags instead.
func Render() *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		opts         handlers.RenderOptions
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the DU workload configuration offline",
		Long: `Render the DU workload configuration offline.

Produces exactly the configuration file the operator would mount
into the workload container, without touching a cluster. The
central unit data that normally arrives over the F1 contract is
taken from flags.

Each --plmn takes "mcc,mnc,sst" or "mcc,mnc,sst,sd", for example:

  ductl render -f du.yaml --cu-address 192.168.254.7 \
    --plmn 999,99,12 --plmn 001,01,1,0x0000a4`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Render(manifestPath, outputPath, opts)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "file", "f", "du.yaml", "Manifest file to render from")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the configuration to a file instead of stdout")
	cmd.Flags().StringVar(&opts.CUAddress, "cu-address", "", "F1 IP address of the central unit (required)")
	cmd.Flags().Int32Var(&opts.CUPort, "cu-port", 2153, "F1 port of the central unit")
	cmd.Flags().Int32Var(&opts.TAC, "tac", 1, "Tracking area code")
	cmd.Flags().StringArrayVar(&opts.PLMNs, "plmn", nil, "PLMN as mcc,mnc,sst[,sd]; repeatable (required)")

	_ = cmd.MarkFlagRequired("cu-address")
	_ = cmd.MarkFlagRequired("plmn")

	return cmd
}
