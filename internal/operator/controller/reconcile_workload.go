package controller

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"maps"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/intstr"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/duconfig"
	"github.com/ranstack/oai-du-operator/internal/fiveg"
	"github.com/ranstack/oai-du-operator/internal/logforward"
	"github.com/ranstack/oai-du-operator/internal/netutil"
	"github.com/ranstack/oai-du-operator/internal/rf"
	"github.com/ranstack/oai-du-operator/internal/util/labels"
	"github.com/ranstack/oai-du-operator/internal/util/naming"
	"github.com/ranstack/oai-du-operator/internal/util/ptr"
)

const (
	duContainerName = "du"

	configKey       = "du.conf"
	configMountPath = "/tmp/conf"
	softmodemPath   = "/opt/oai-gnb/bin/nr-softmodem"

	usbDevicePath = "/dev/bus/usb"
	rfsimPort     = 4043

	promtailImage     = "docker.io/grafana/promtail:3.0.0"
	promtailKey       = "promtail.yaml"
	promtailMountPath = "/etc/promtail"
	podLogsPath       = "/var/log/pods"

	configHashAnnotation   = "oai.ranstack.io/config-hash"
	promtailHashAnnotation = "oai.ranstack.io/promtail-hash"
	networksAnnotation     = "k8s.v1.cni.cncf.io/networks"
)

// networkAnnotation is one entry of the Multus pod annotation.
type networkAnnotation struct {
	Name      string `json:"name"`
	Interface string `json:"interface"`
}

// renderedConfig carries a rendered workload configuration together with its
// content hash and the radio parameters it was built from.
type renderedConfig struct {
	Text  string
	Hash  string
	Radio *rf.Derived
}

// renderConfig derives the radio parameters and renders the complete
// workload configuration in memory. Nothing is applied here, a render
// failure leaves the cluster untouched.
func (r *DUReconciler) renderConfig(du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec, provider *fiveg.F1ProviderData) (*renderedConfig, error) {
	center, err := rf.ParseMHz(spec.CenterFrequency)
	if err != nil {
		return nil, fmt.Errorf("parsing center frequency: %w", err)
	}
	radio, err := rf.Derive(spec.FrequencyBand, center, spec.Bandwidth, spec.SubCarrierSpacing)
	if err != nil {
		return nil, fmt.Errorf("deriving radio parameters: %w", err)
	}
	duAddress, err := netutil.Host(spec.F1IPAddress)
	if err != nil {
		return nil, fmt.Errorf("parsing F1 address: %w", err)
	}

	plmns := make([]duconfig.PLMN, 0, len(provider.PLMNs))
	for _, p := range provider.PLMNs {
		plmns = append(plmns, duconfig.PLMN{MCC: p.MCC, MNC: p.MNC, SST: p.SST, SD: p.SD})
	}

	text := duconfig.Build(duconfig.Params{
		GNBName:        naming.GNB(du.Namespace, du.Name),
		TAC:            provider.TAC,
		DUF1Address:    duAddress,
		DUF1Port:       spec.F1Port,
		CUF1Address:    provider.F1IPAddress,
		CUF1Port:       provider.F1Port,
		PLMNs:          plmns,
		SimulationMode: spec.SimulationMode,
		UseMimo:        spec.UseMimo,
		Radio:          radio,
	}).Render()

	return &renderedConfig{
		Text:  text,
		Hash:  fmt.Sprintf("%x", sha256.Sum256([]byte(text))),
		Radio: radio,
	}, nil
}

// applyRenderedConfig converges the workload configuration ConfigMap and
// reports whether its content changed.
func (r *DUReconciler) applyRenderedConfig(ctx context.Context, du *duv1alpha1.DistributedUnit, rendered *renderedConfig) (bool, error) {
	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.ConfigMap(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Workload(du.Name),
		},
		Data: map[string]string{configKey: rendered.Text},
	}
	return r.applyOwnedConfigMap(ctx, du, cm)
}

// applyOwnedConfigMap creates or updates a ConfigMap owned by the DU and
// reports whether its data changed.
func (r *DUReconciler) applyOwnedConfigMap(ctx context.Context, du *duv1alpha1.DistributedUnit, desired *corev1.ConfigMap) (bool, error) {
	existing := &corev1.ConfigMap{}
	err := r.Get(ctx, client.ObjectKeyFromObject(desired), existing)
	if apierrors.IsNotFound(err) {
		if err := controllerutil.SetControllerReference(du, desired, r.Scheme); err != nil {
			return false, err
		}
		return true, r.Create(ctx, desired)
	}
	if err != nil {
		return false, err
	}

	if maps.Equal(existing.Data, desired.Data) {
		return false, nil
	}
	existing.Data = desired.Data
	existing.Labels = desired.Labels
	return true, r.Update(ctx, existing)
}

// reconcileLogForwarding renders the promtail sidecar configuration when a
// logging endpoint is configured. Forwarding is best effort: a missing or
// invalid endpoint raises a warning event and the workload runs without the
// sidecar. Returns the rendered sidecar configuration, empty when the pod
// should run without one.
func (r *DUReconciler) reconcileLogForwarding(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) (string, error) {
	if spec.Logging == nil {
		cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{
			Name:      naming.PromtailConfigMap(du.Name),
			Namespace: du.Namespace,
		}}
		if err := r.Delete(ctx, cm); err != nil && !apierrors.IsNotFound(err) {
			return "", err
		}
		return "", nil
	}

	endpoints := &corev1.ConfigMap{}
	err := r.Get(ctx, types.NamespacedName{Namespace: du.Namespace, Name: spec.Logging.EndpointsConfigMapRef}, endpoints)
	if apierrors.IsNotFound(err) {
		r.Recorder.Event(du, corev1.EventTypeWarning, EventReasonLoggingUnavailable,
			fmt.Sprintf("Logging endpoints ConfigMap %q not found, running without log forwarding", spec.Logging.EndpointsConfigMapRef))
		return "", nil
	}
	if err != nil {
		return "", err
	}

	pushURL := endpoints.Data[logforward.EndpointKey]
	rendered, err := logforward.Render(pushURL, du.Name)
	if err != nil {
		r.Recorder.Event(du, corev1.EventTypeWarning, EventReasonLoggingUnavailable,
			fmt.Sprintf("Logging endpoint is unusable, running without log forwarding: %v", err))
		return "", nil
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.PromtailConfigMap(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Workload(du.Name),
		},
		Data: map[string]string{promtailKey: rendered},
	}
	if _, err := r.applyOwnedConfigMap(ctx, du, cm); err != nil {
		return "", err
	}
	return rendered, nil
}

// reconcileWorkload converges the DU Deployment and its Service.
func (r *DUReconciler) reconcileWorkload(ctx context.Context, du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec, configHash, promtailConfig string) error {
	deployment, err := r.buildDeployment(du, spec, configHash, promtailConfig)
	if err != nil {
		return err
	}
	if err := r.applyDeployment(ctx, du, deployment); err != nil {
		return err
	}
	return r.applyService(ctx, du, r.buildService(du, spec))
}

// startupCommand assembles the softmodem invocation for the configured mode.
func startupCommand(spec *duv1alpha1.DistributedUnitSpec) []string {
	cmd := []string{softmodemPath, "-O", configMountPath + "/" + configKey}
	if spec.UseThreeQuarterSampling {
		cmd = append(cmd, "-E")
	}
	cmd = append(cmd, "--continuous-tx")
	if spec.SimulationMode {
		cmd = append(cmd, "--rfsim")
	}
	return cmd
}

// buildDeployment renders the desired workload Deployment. The pod template
// carries the configuration hashes, so a content change rolls the pod and
// the containers start with the new files. The strategy is Recreate, the
// static F1 address can only be held by one pod at a time.
func (r *DUReconciler) buildDeployment(du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec, configHash, promtailConfig string) (*appsv1.Deployment, error) {
	networks, err := json.Marshal([]networkAnnotation{{
		Name:      naming.NetworkAttachment(du.Name, spec.F1InterfaceName),
		Interface: spec.F1InterfaceName,
	}})
	if err != nil {
		return nil, fmt.Errorf("encoding network annotation: %w", err)
	}

	annotations := map[string]string{
		configHashAnnotation: configHash,
		networksAnnotation:   string(networks),
	}

	duContainer := corev1.Container{
		Name:    duContainerName,
		Image:   spec.Image,
		Command: startupCommand(spec),
		Env: []corev1.EnvVar{
			{Name: "TZ", Value: "UTC"},
		},
		Ports: []corev1.ContainerPort{
			{Name: "f1", ContainerPort: spec.F1Port, Protocol: corev1.ProtocolSCTP},
		},
		VolumeMounts: []corev1.VolumeMount{
			{Name: "config", MountPath: configMountPath, ReadOnly: true},
		},
		SecurityContext: &corev1.SecurityContext{
			Capabilities: &corev1.Capabilities{
				Add: []corev1.Capability{"NET_ADMIN"},
			},
		},
	}

	volumes := []corev1.Volume{
		{
			Name: "config",
			VolumeSource: corev1.VolumeSource{
				ConfigMap: &corev1.ConfigMapVolumeSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: naming.ConfigMap(du.Name)},
				},
			},
		},
	}

	if spec.SimulationMode {
		duContainer.Ports = append(duContainer.Ports, corev1.ContainerPort{
			Name: "rfsim", ContainerPort: rfsimPort, Protocol: corev1.ProtocolTCP,
		})
	} else {
		// A physical radio needs the USB bus and a privileged context
		duContainer.SecurityContext.Privileged = ptr.Bool(true)
		duContainer.VolumeMounts = append(duContainer.VolumeMounts, corev1.VolumeMount{
			Name: "usb", MountPath: usbDevicePath,
		})
		volumes = append(volumes, corev1.Volume{
			Name: "usb",
			VolumeSource: corev1.VolumeSource{
				HostPath: &corev1.HostPathVolumeSource{Path: usbDevicePath},
			},
		})
	}

	containers := []corev1.Container{duContainer}
	if promtailConfig != "" {
		annotations[promtailHashAnnotation] = fmt.Sprintf("%x", sha256.Sum256([]byte(promtailConfig)))
		containers = append(containers, promtailContainer())
		hostPathDirectory := corev1.HostPathDirectory
		volumes = append(volumes,
			corev1.Volume{
				Name: "promtail-config",
				VolumeSource: corev1.VolumeSource{
					ConfigMap: &corev1.ConfigMapVolumeSource{
						LocalObjectReference: corev1.LocalObjectReference{Name: naming.PromtailConfigMap(du.Name)},
					},
				},
			},
			corev1.Volume{
				Name: "pod-logs",
				VolumeSource: corev1.VolumeSource{
					HostPath: &corev1.HostPathVolumeSource{Path: podLogsPath, Type: &hostPathDirectory},
				},
			},
			corev1.Volume{
				Name:         "positions",
				VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}},
			},
		)
	}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.Workload(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Workload(du.Name),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.Int32(1),
			Selector: &metav1.LabelSelector{MatchLabels: labels.Selector(du.Name)},
			Strategy: appsv1.DeploymentStrategy{Type: appsv1.RecreateDeploymentStrategyType},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      labels.Workload(du.Name),
					Annotations: annotations,
				},
				Spec: corev1.PodSpec{
					Containers: containers,
					Volumes:    volumes,
				},
			},
		},
	}, nil
}

// promtailContainer is the log forwarding sidecar. It tails this pod's own
// container runtime logs, located through the downward API environment that
// promtail expands in its configuration.
func promtailContainer() corev1.Container {
	return corev1.Container{
		Name:  "promtail",
		Image: promtailImage,
		Args: []string{
			"-config.file=" + promtailMountPath + "/" + promtailKey,
			"-config.expand-env=true",
		},
		Env: []corev1.EnvVar{
			{Name: "POD_NAMESPACE", ValueFrom: &corev1.EnvVarSource{
				FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.namespace"},
			}},
			{Name: "POD_NAME", ValueFrom: &corev1.EnvVarSource{
				FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.name"},
			}},
			{Name: "POD_UID", ValueFrom: &corev1.EnvVarSource{
				FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.uid"},
			}},
		},
		Ports: []corev1.ContainerPort{
			{Name: "promtail", ContainerPort: logforward.ListenPort, Protocol: corev1.ProtocolTCP},
		},
		VolumeMounts: []corev1.VolumeMount{
			{Name: "promtail-config", MountPath: promtailMountPath, ReadOnly: true},
			{Name: "pod-logs", MountPath: podLogsPath, ReadOnly: true},
			{Name: "positions", MountPath: "/tmp"},
		},
	}
}

func (r *DUReconciler) applyDeployment(ctx context.Context, du *duv1alpha1.DistributedUnit, desired *appsv1.Deployment) error {
	logger := log.FromContext(ctx)

	if err := controllerutil.SetControllerReference(du, desired, r.Scheme); err != nil {
		return err
	}

	existing := &appsv1.Deployment{}
	err := r.Get(ctx, client.ObjectKeyFromObject(desired), existing)
	if apierrors.IsNotFound(err) {
		logger.Info("creating workload deployment", "name", desired.Name)
		return r.Create(ctx, desired)
	}
	if err != nil {
		return err
	}

	desired.ResourceVersion = existing.ResourceVersion
	return r.Update(ctx, desired)
}

func (r *DUReconciler) buildService(du *duv1alpha1.DistributedUnit, spec *duv1alpha1.DistributedUnitSpec) *corev1.Service {
	ports := []corev1.ServicePort{
		{
			Name:       "f1",
			Protocol:   corev1.ProtocolSCTP,
			Port:       spec.F1Port,
			TargetPort: intstr.FromInt32(spec.F1Port),
		},
	}
	if spec.SimulationMode {
		ports = append(ports, corev1.ServicePort{
			Name:       "rfsim",
			Protocol:   corev1.ProtocolTCP,
			Port:       rfsimPort,
			TargetPort: intstr.FromInt32(rfsimPort),
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      naming.Service(du.Name),
			Namespace: du.Namespace,
			Labels:    labels.Workload(du.Name),
		},
		Spec: corev1.ServiceSpec{
			Selector: labels.Selector(du.Name),
			Ports:    ports,
		},
	}
}

func (r *DUReconciler) applyService(ctx context.Context, du *duv1alpha1.DistributedUnit, desired *corev1.Service) error {
	logger := log.FromContext(ctx)

	if err := controllerutil.SetControllerReference(du, desired, r.Scheme); err != nil {
		return err
	}

	existing := &corev1.Service{}
	err := r.Get(ctx, client.ObjectKeyFromObject(desired), existing)
	if apierrors.IsNotFound(err) {
		logger.Info("creating workload service", "name", desired.Name)
		return r.Create(ctx, desired)
	}
	if err != nil {
		return err
	}

	// The cluster IP is immutable once assigned
	desired.Spec.ClusterIP = existing.Spec.ClusterIP
	desired.ResourceVersion = existing.ResourceVersion
	return r.Update(ctx, desired)
}

// workloadAvailable reports whether the DU Deployment has an Available
// condition with status true.
func (r *DUReconciler) workloadAvailable(ctx context.Context, du *duv1alpha1.DistributedUnit) (bool, error) {
	deployment := &appsv1.Deployment{}
	err := r.Get(ctx, types.NamespacedName{Namespace: du.Namespace, Name: naming.Workload(du.Name)}, deployment)
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	for _, cond := range deployment.Status.Conditions {
		if cond.Type == appsv1.DeploymentAvailable {
			return cond.Status == corev1.ConditionTrue, nil
		}
	}
	return false, nil
}
