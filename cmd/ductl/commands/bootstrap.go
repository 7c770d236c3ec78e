package commands

import (
	"github.com/spf13/cobra"

	"github.com/ranstack/oai-du-operator/cmd/ductl/handlers"
)

// Bootstrap returns the command for installing the operator's cluster
// prerequisites.
func Bootstrap() *cobra.Command {
	var (
		kubeconfigPath string
		plain          bool
	)

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Install the Multus CNI prerequisite into the cluster",
		Long: `Install the Multus CNI prerequisite into the cluster.

The operator keeps DistributedUnits Blocked until Multus serves
the NetworkAttachmentDefinition CRD. This command installs Multus
through its Helm chart and waits until the CRD is established.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), kubeconfigPath, plain)
		},
	}

	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: standard loading rules)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain log output instead of the interactive UI")

	return cmd
}
