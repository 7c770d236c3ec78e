package handlers

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/ui/tui"
)

// Factory function variables for status - can be replaced in tests.
var (
	newStatusClient = func(kubeconfigPath string) (client.Client, error) {
		cfg, err := restConfig(kubeconfigPath)
		if err != nil {
			return nil, err
		}

		scheme := runtime.NewScheme()
		if err := clientgoscheme.AddToScheme(scheme); err != nil {
			return nil, err
		}
		if err := duv1alpha1.AddToScheme(scheme); err != nil {
			return nil, err
		}

		return client.New(cfg, client.Options{Scheme: scheme})
	}

	runStatusTUI = tui.RunStatusTUI
)

// Status watches a DistributedUnit and renders its phase, conditions and
// derived radio parameters until interrupted.
func Status(ctx context.Context, kubeconfigPath, name, namespace string) error {
	k8sClient, err := newStatusClient(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("creating cluster client: %w", err)
	}

	return runStatusTUI(ctx, k8sClient, name, namespace)
}
