// Package manifest reads and writes DistributedUnit manifests as YAML files.
//
// The CLI works on plain manifest files before anything reaches a cluster, so
// loading is strict: unknown fields are rejected instead of silently dropped,
// and the type metadata must match when present.
package manifest

import (
	"fmt"
	"os"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

const expectedKind = "DistributedUnit"

// New returns an empty DistributedUnit manifest with its type metadata set.
func New(name, namespace string) *duv1alpha1.DistributedUnit {
	return &duv1alpha1.DistributedUnit{
		TypeMeta: metav1.TypeMeta{
			APIVersion: duv1alpha1.GroupVersion.String(),
			Kind:       expectedKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
	}
}

// Load reads a DistributedUnit manifest from a YAML file. A typo in an option
// name would silently fall back to the default on the cluster, so unknown
// fields fail the load here.
func Load(path string) (*duv1alpha1.DistributedUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	du := &duv1alpha1.DistributedUnit{}
	if err := yaml.UnmarshalStrict(data, du); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if du.Kind != "" && du.Kind != expectedKind {
		return nil, fmt.Errorf("%s holds a %s, expected a %s", path, du.Kind, expectedKind)
	}
	if du.APIVersion != "" && du.APIVersion != duv1alpha1.GroupVersion.String() {
		return nil, fmt.Errorf("%s uses API version %s, expected %s", path, du.APIVersion, duv1alpha1.GroupVersion.String())
	}
	if du.Name == "" {
		return nil, fmt.Errorf("%s has no metadata.name", path)
	}

	return du, nil
}

// Save writes the manifest as YAML. Type metadata is always filled in so the
// file can be handed to kubectl apply as is.
func Save(du *duv1alpha1.DistributedUnit, path string) error {
	du = du.DeepCopy()
	du.APIVersion = duv1alpha1.GroupVersion.String()
	du.Kind = expectedKind

	data, err := yaml.Marshal(du)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
