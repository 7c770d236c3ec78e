package controller

import (
	"context"
	"encoding/json"
	"fmt"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/util/labels"
	"github.com/ranstack/oai-du-operator/internal/util/naming"
)

const (
	// multusCRDName is the CRD whose presence signals a usable Multus install.
	multusCRDName = "network-attachment-definitions.k8s.cni.cncf.io"

	// bridgeName is the host bridge used when cniType is bridge.
	bridgeName = "f1-br"

	cniVersion = "0.3.1"
)

var nadGVK = schema.GroupVersionKind{
	Group:   "k8s.cni.cncf.io",
	Version: "v1",
	Kind:    "NetworkAttachmentDefinition",
}

// cniSpec is the CNI configuration carried in the attachment definition.
// The static IPAM address keeps its network mask, the CNI plugin needs the
// prefix length to configure the interface.
type cniSpec struct {
	CNIVersion   string          `json:"cniVersion"`
	Type         string          `json:"type"`
	Bridge       string          `json:"bridge,omitempty"`
	Master       string          `json:"master,omitempty"`
	IPAM         cniIPAM         `json:"ipam"`
	Capabilities cniCapabilities `json:"capabilities"`
}

type cniIPAM struct {
	Type      string       `json:"type"`
	Addresses []cniAddress `json:"addresses"`
}

type cniAddress struct {
	Address string `json:"address"`
}

type cniCapabilities struct {
	MAC bool `json:"mac"`
}

// multusInstalled reports whether the network attachment definition CRD is
// served by the cluster.
func (r *DUReconciler) multusInstalled(ctx context.Context) (bool, error) {
	crd := &apiextensionsv1.CustomResourceDefinition{}
	err := r.Get(ctx, types.NamespacedName{Name: multusCRDName}, crd)
	if err == nil {
		return true, nil
	}
	if apierrors.IsNotFound(err) || meta.IsNoMatchError(err) {
		return false, nil
	}
	return false, err
}

// reconcileNetworkAttachment converges the F1 attachment definition and
// removes attachments left behind by an interface or name change.
func (r *DUReconciler) reconcileNetworkAttachment(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) error {
	desired, err := r.buildNetworkAttachment(du, spec)
	if err != nil {
		return err
	}

	if err := r.applyNetworkAttachment(ctx, desired); err != nil {
		return err
	}

	return r.pruneNetworkAttachments(ctx, du, desired.GetName())
}

// buildNetworkAttachment renders the attachment definition for the F1
// interface. Bridge mode attaches to a shared host bridge, macvlan rides the
// named host interface directly.
func (r *DUReconciler) buildNetworkAttachment(du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) (*unstructured.Unstructured, error) {
	cfg := cniSpec{
		CNIVersion: cniVersion,
		Type:       spec.CNIType,
		IPAM: cniIPAM{
			Type:      "static",
			Addresses: []cniAddress{{Address: spec.F1IPAddress}},
		},
		Capabilities: cniCapabilities{MAC: true},
	}
	switch spec.CNIType {
	case "macvlan":
		cfg.Master = spec.F1InterfaceName
	default:
		cfg.Bridge = bridgeName
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding CNI config: %w", err)
	}

	nad := &unstructured.Unstructured{}
	nad.SetGroupVersionKind(nadGVK)
	nad.SetName(naming.NetworkAttachment(du.Name, spec.F1InterfaceName))
	nad.SetNamespace(du.Namespace)
	nad.SetLabels(labels.Network(du.Name))
	if err := unstructured.SetNestedField(nad.Object, string(raw), "spec", "config"); err != nil {
		return nil, err
	}
	if err := controllerutil.SetControllerReference(du, nad, r.Scheme); err != nil {
		return nil, err
	}
	return nad, nil
}

func (r *DUReconciler) applyNetworkAttachment(ctx context.Context, desired *unstructured.Unstructured) error {
	logger := log.FromContext(ctx)

	existing := &unstructured.Unstructured{}
	existing.SetGroupVersionKind(nadGVK)
	err := r.Get(ctx, types.NamespacedName{Namespace: desired.GetNamespace(), Name: desired.GetName()}, existing)
	if apierrors.IsNotFound(err) {
		logger.Info("creating network attachment definition", "name", desired.GetName())
		return r.Create(ctx, desired)
	}
	if err != nil {
		return err
	}

	currentConfig, _, _ := unstructured.NestedString(existing.Object, "spec", "config")
	desiredConfig, _, _ := unstructured.NestedString(desired.Object, "spec", "config")
	if currentConfig == desiredConfig {
		return nil
	}

	logger.Info("updating network attachment definition", "name", desired.GetName())
	desired.SetResourceVersion(existing.GetResourceVersion())
	return r.Update(ctx, desired)
}

// pruneNetworkAttachments deletes attachments labeled for this DU whose name
// no longer matches the desired one, so renaming the F1 interface does not
// leak definitions.
func (r *DUReconciler) pruneNetworkAttachments(ctx context.Context, du *duv1alpha1.DistributedUnit, keep string) error {
	logger := log.FromContext(ctx)

	list := &unstructured.UnstructuredList{}
	list.SetGroupVersionKind(nadGVK)
	if err := r.List(ctx, list,
		client.InNamespace(du.Namespace),
		client.MatchingLabels(labels.Network(du.Name))); err != nil {
		return err
	}

	for i := range list.Items {
		nad := &list.Items[i]
		if nad.GetName() == keep {
			continue
		}
		logger.Info("deleting stale network attachment definition", "name", nad.GetName())
		if err := r.Delete(ctx, nad); err != nil && !apierrors.IsNotFound(err) {
			return err
		}
	}
	return nil
}
