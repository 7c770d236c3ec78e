package controller

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/log"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/fiveg"
	"github.com/ranstack/oai-du-operator/internal/rf"
	"github.com/ranstack/oai-du-operator/internal/util/labels"
	"github.com/ranstack/oai-du-operator/internal/util/naming"
)

// publishF1Requirer writes the DU side of the F1 contract so the CU operator
// can pick up our SCTP port.
func (r *DUReconciler) publishF1Requirer(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) error {
	data := fiveg.F1RequirerData{F1Port: spec.F1Port}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.F1RequirerConfigMap(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Contract(du.Name),
		},
		Data: data.Encode(),
	}
	_, err := r.applyOwnedConfigMap(ctx, du, cm)
	return err
}

// loadF1Provider reads the CU contract data from the referenced ConfigMap.
// A missing ConfigMap or data that does not validate both mean the CU has
// not published yet, the caller keeps waiting without touching earlier
// artifacts.
func (r *DUReconciler) loadF1Provider(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) (*fiveg.F1ProviderData, error) {
	logger := log.FromContext(ctx)

	cm := &corev1.ConfigMap{}
	err := r.Get(ctx, types.NamespacedName{Namespace: du.Namespace, Name: spec.CentralUnit.ConfigMapRef}, cm)
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	provider, err := fiveg.ParseF1ProviderData(cm.Data)
	if err != nil {
		logger.Info("F1 provider data does not validate yet", "configMap", cm.Name, "reason", err.Error())
		return nil, nil
	}
	return provider, nil
}

// publishRFConfig writes the rf_config contract data for radio access
// subscribers, the UE simulator in particular. In simulation mode the
// rfsimulator server address is the workload Service address, publishing
// waits until the cluster has assigned one. Reports whether the published
// content changed.
func (r *DUReconciler) publishRFConfig(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec, provider *fiveg.F1ProviderData, radio *rf.Derived) (bool, error) {
	logger := log.FromContext(ctx)

	data := fiveg.RFConfigData{
		SST:              provider.PLMNs[0].SST,
		SD:               provider.PLMNs[0].SD,
		Band:             radio.Band,
		DLFreq:           int64(radio.DLFrequency),
		CarrierBandwidth: radio.CarrierBandwidth,
		Numerology:       radio.Numerology,
		StartSubcarrier:  radio.FirstUsableSubcarrier,
	}

	if spec.SimulationMode {
		address, err := r.rfsimAddress(ctx, du)
		if err != nil {
			return false, err
		}
		if address == "" {
			logger.Info("rfsimulator address not assigned yet, delaying rf_config publication")
			return false, nil
		}
		data.RFSIMAddress = address
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.RFConfigConfigMap(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Contract(du.Name),
		},
		Data: data.Encode(),
	}
	return r.applyOwnedConfigMap(ctx, du, cm)
}

// rfsimAddress returns the stable in-cluster address of the rfsimulator
// server, or empty while the Service has no cluster IP yet.
func (r *DUReconciler) rfsimAddress(ctx context.Context, du *duv1alpha1.DistributedUnit) (string, error) {
	svc := &corev1.Service{}
	err := r.Get(ctx, types.NamespacedName{Namespace: du.Namespace, Name: naming.Service(du.Name)}, svc)
	if apierrors.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading workload service: %w", err)
	}
	if svc.Spec.ClusterIP == corev1.ClusterIPNone {
		return "", nil
	}
	return svc.Spec.ClusterIP, nil
}
