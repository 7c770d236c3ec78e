package helm

import (
	"context"
	"fmt"
	"os"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/repo"
)

const installTimeout = 10 * time.Minute

// Client installs charts into a single namespace using in-memory kubeconfig
// bytes.
type Client struct {
	namespace    string
	actionConfig *action.Configuration
}

// NewClient creates a Helm client from kubeconfig bytes.
func NewClient(kubeconfig []byte, namespace string) (*Client, error) {
	actionConfig := new(action.Configuration)
	restGetter := newRESTClientGetter(kubeconfig, namespace)

	// Helm's debug output goes nowhere, failures surface as errors.
	if err := actionConfig.Init(restGetter, namespace, "secret", func(format string, v ...interface{}) {}); err != nil {
		return nil, fmt.Errorf("initializing helm action config: %w", err)
	}

	return &Client{namespace: namespace, actionConfig: actionConfig}, nil
}

// InstallOrUpgrade installs a chart, or upgrades the release when it already
// exists. Both paths wait for the release's workloads to become ready.
func (c *Client) InstallOrUpgrade(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	histClient := action.NewHistory(c.actionConfig)
	histClient.Max = 1
	if _, err := histClient.Run(releaseName); err != nil {
		return c.install(ctx, releaseName, repoURL, chartName, version, values)
	}
	return c.upgrade(ctx, releaseName, repoURL, chartName, version, values)
}

func (c *Client) install(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	installClient := action.NewInstall(c.actionConfig)
	installClient.ReleaseName = releaseName
	installClient.Namespace = c.namespace
	installClient.CreateNamespace = true
	installClient.Version = version
	installClient.Wait = true
	installClient.Timeout = installTimeout

	chrt, err := c.loadChart(repoURL, chartName, version)
	if err != nil {
		return err
	}

	if _, err := installClient.RunWithContext(ctx, chrt, values); err != nil {
		return fmt.Errorf("installing %s: %w", releaseName, err)
	}
	return nil
}

func (c *Client) upgrade(ctx context.Context, releaseName, repoURL, chartName, version string, values map[string]interface{}) error {
	upgradeClient := action.NewUpgrade(c.actionConfig)
	upgradeClient.Namespace = c.namespace
	upgradeClient.Version = version
	upgradeClient.Wait = true
	upgradeClient.Timeout = installTimeout
	upgradeClient.ReuseValues = false

	chrt, err := c.loadChart(repoURL, chartName, version)
	if err != nil {
		return err
	}

	if _, err := upgradeClient.RunWithContext(ctx, releaseName, chrt, values); err != nil {
		return fmt.Errorf("upgrading %s: %w", releaseName, err)
	}
	return nil
}

func (c *Client) loadChart(repoURL, chartName, version string) (*chart.Chart, error) {
	settings := cli.New()

	chartPath, err := repo.FindChartInRepoURL(
		repoURL,
		chartName,
		version,
		"", "", "",
		getter.All(settings),
	)
	if err != nil {
		return nil, fmt.Errorf("finding chart %s in repo %s: %w", chartName, repoURL, err)
	}

	// The chart download is only needed for the duration of the load.
	defer func() {
		_ = os.Remove(chartPath)
	}()

	return loader.Load(chartPath)
}
