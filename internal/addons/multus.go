package addons

import (
	"context"
	"fmt"

	"github.com/ranstack/oai-du-operator/internal/addons/helm"
)

const (
	multusNamespace = "kube-system"
	multusRelease   = "multus"

	multusRepoURL = "https://rke2-charts.rancher.io"
	multusChart   = "rke2-multus"
	multusVersion = "v4.1.401"
)

// Installer deploys cluster addons through Helm.
type Installer struct {
	helmClient *helm.Client
}

// NewInstaller creates an Installer against the cluster the kubeconfig
// points at.
func NewInstaller(kubeconfig []byte) (*Installer, error) {
	helmClient, err := helm.NewClient(kubeconfig, multusNamespace)
	if err != nil {
		return nil, fmt.Errorf("creating helm client: %w", err)
	}
	return &Installer{helmClient: helmClient}, nil
}

// InstallMultus installs or upgrades the Multus CNI meta plugin. The chart
// ships the NetworkAttachmentDefinition CRD and the per-node Multus daemon.
func (i *Installer) InstallMultus(ctx context.Context) error {
	return i.helmClient.InstallOrUpgrade(
		ctx,
		multusRelease,
		multusRepoURL,
		multusChart,
		multusVersion,
		multusValues(),
	)
}

// multusValues configures the chart for the standard CNI paths used by
// kubeadm and most managed distributions.
func multusValues() map[string]interface{} {
	return map[string]interface{}{
		"config": map[string]interface{}{
			"cni_conf": map[string]interface{}{
				"confDir":             "/etc/cni/net.d",
				"binDir":              "/opt/cni/bin",
				"kubeconfig":          "/etc/cni/net.d/multus.d/multus.kubeconfig",
				"multusConfFile":      "auto",
				"multusAutoconfigDir": "/etc/cni/net.d",
			},
		},
		"manifests": map[string]interface{}{
			"dhcpDaemonSet": false,
		},
	}
}
