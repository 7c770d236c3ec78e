package commands

import (
	"github.com/spf13/cobra"

	"github.com/ranstack/oai-du-operator/cmd/ductl/handlers"
)

// Status returns the command for watching a DistributedUnit's status.
func Status() *cobra.Command {
	var (
		namespace      string
		kubeconfigPath string
	)

	cmd := &cobra.Command{
		Use:   "status <name>",
		Short: "Watch a DistributedUnit's status",
		Long: `Watch a DistributedUnit's status.

Shows the unit's phase, its conditions and the derived radio
parameters, refreshing until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Status(cmd.Context(), kubeconfigPath, args[0], namespace)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace of the DistributedUnit")
	cmd.Flags().StringVar(&kubeconfigPath, "kubeconfig", "", "Path to the kubeconfig file (default: standard loading rules)")

	return cmd
}
