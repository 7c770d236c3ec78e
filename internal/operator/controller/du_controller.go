package controller

import (
	"context"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

const (
	// Default reconciliation interval for drift detection
	defaultRequeueAfter = 30 * time.Second
)

// Status messages shown to the operator, one per blocking or waiting state.
const (
	msgMultusMissing   = "Multus is not installed or enabled"
	msgWaitingForF1    = "Waiting for F1 information availability"
	msgWaitingWorkload = "Waiting for the DU workload to become available"
)

// Event reasons emitted on the DistributedUnit.
const (
	EventReasonInvalidConfig      = "InvalidConfiguration"
	EventReasonMultusMissing      = "MultusMissing"
	EventReasonWaitingForF1       = "WaitingForF1Information"
	EventReasonConfigRendered     = "ConfigurationRendered"
	EventReasonWorkloadReady      = "WorkloadReady"
	EventReasonRFConfigPublished  = "RFConfigPublished"
	EventReasonLoggingUnavailable = "LoggingUnavailable"
)

// DUReconciler reconciles a DistributedUnit object.
type DUReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder

	enableMetrics bool
	requeueAfter  time.Duration
}

// DUReconcilerOption configures a DUReconciler.
type DUReconcilerOption func(*DUReconciler)

// WithMetrics enables or disables prometheus metrics recording.
func WithMetrics(enabled bool) DUReconcilerOption {
	return func(r *DUReconciler) {
		r.enableMetrics = enabled
	}
}

// WithRequeueAfter overrides the drift detection interval.
func WithRequeueAfter(d time.Duration) DUReconcilerOption {
	return func(r *DUReconciler) {
		r.requeueAfter = d
	}
}

// NewDUReconciler creates a new DUReconciler.
func NewDUReconciler(client client.Client, scheme *runtime.Scheme, recorder record.EventRecorder, opts ...DUReconcilerOption) *DUReconciler {
	r := &DUReconciler{
		Client:        client,
		Scheme:        scheme,
		Recorder:      recorder,
		enableMetrics: true,
		requeueAfter:  defaultRequeueAfter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// +kubebuilder:rbac:groups=oai.ranstack.io,resources=distributedunits,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=oai.ranstack.io,resources=distributedunits/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=oai.ranstack.io,resources=distributedunits/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=configmaps,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=k8s.cni.cncf.io,resources=network-attachment-definitions,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=apiextensions.k8s.io,resources=customresourcedefinitions,verbs=get;list;watch

// Reconcile handles the reconciliation loop for DistributedUnit resources.
func (r *DUReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	start := time.Now()

	du := &duv1alpha1.DistributedUnit{}
	if err := r.Get(ctx, req.NamespacedName, du); err != nil {
		if apierrors.IsNotFound(err) {
			// Object deleted, owned resources go with it
			return ctrl.Result{}, nil
		}
		logger.Error(err, "unable to fetch DistributedUnit")
		return ctrl.Result{}, err
	}

	if du.Spec.Paused {
		logger.Info("reconciliation is paused")
		return ctrl.Result{RequeueAfter: r.requeueAfter}, nil
	}

	result, err := r.reconcile(ctx, du)
	r.recordReconcile(du.Name, reconcileResult(du, err), time.Since(start).Seconds())

	du.Status.LastReconcileTime = &metav1.Time{Time: time.Now()}
	du.Status.ObservedGeneration = du.Generation
	if statusErr := r.Status().Update(ctx, du); statusErr != nil {
		logger.Error(statusErr, "failed to update status")
		if err == nil {
			err = statusErr
		}
	}

	return result, err
}

// reconcile runs the pipeline against a defaulted copy of the spec. The copy
// keeps behaviour identical whether or not admission defaulting ran.
func (r *DUReconciler) reconcile(ctx context.Context, du *duv1alpha1.DistributedUnit) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	spec := du.Spec.DeepCopy()
	spec.Default()

	// Stage 1: spec validation beyond the CRD schema
	if err := spec.Validate(); err != nil {
		logger.Info("spec is invalid", "reason", err.Error())
		r.setCondition(du, duv1alpha1.ConditionConfigValid, false, "InvalidOptions", err.Error())
		r.setPhase(du, duv1alpha1.PhaseBlocked, err.Error())
		r.Recorder.Event(du, corev1.EventTypeWarning, EventReasonInvalidConfig, err.Error())
		// No requeue, a spec edit triggers the next pass
		return ctrl.Result{}, nil
	}
	r.setCondition(du, duv1alpha1.ConditionConfigValid, true, "SpecValid", "all configuration options are valid")

	// Stage 2: Multus must be installed before the F1 attachment can exist
	installed, err := r.multusInstalled(ctx)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("probing for Multus: %w", err)
	}
	if !installed {
		logger.Info("multus network attachment CRD not found")
		r.setCondition(du, duv1alpha1.ConditionMultusAvailable, false, "CRDNotFound", msgMultusMissing)
		r.setPhase(du, duv1alpha1.PhaseBlocked, msgMultusMissing)
		r.Recorder.Event(du, corev1.EventTypeWarning, EventReasonMultusMissing, msgMultusMissing)
		return ctrl.Result{RequeueAfter: r.requeueAfter}, nil
	}
	r.setCondition(du, duv1alpha1.ConditionMultusAvailable, true, "CRDFound", "network attachment definitions are served")

	// Stage 3: F1 network attachment
	if err := r.reconcileNetworkAttachment(ctx, du, spec); err != nil {
		r.setCondition(du, duv1alpha1.ConditionNetworkReady, false, "ApplyFailed", err.Error())
		return ctrl.Result{}, fmt.Errorf("reconciling network attachment: %w", err)
	}
	r.setCondition(du, duv1alpha1.ConditionNetworkReady, true, "AttachmentConfigured", "F1 network attachment is configured")

	// Stage 4: publish our side of the F1 contract
	if err := r.publishF1Requirer(ctx, du, spec); err != nil {
		return ctrl.Result{}, fmt.Errorf("publishing F1 requirer data: %w", err)
	}

	// Stage 5: the CU side of the F1 contract
	provider, err := r.loadF1Provider(ctx, du, spec)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("loading F1 provider data: %w", err)
	}
	if provider == nil {
		logger.Info("F1 provider data not available yet", "configMap", spec.CentralUnit.ConfigMapRef)
		r.setCondition(du, duv1alpha1.ConditionF1Connected, false, "WaitingForProvider", msgWaitingForF1)
		r.setPhase(du, duv1alpha1.PhaseWaiting, msgWaitingForF1)
		r.Recorder.Event(du, corev1.EventTypeNormal, EventReasonWaitingForF1, msgWaitingForF1)
		return ctrl.Result{RequeueAfter: r.requeueAfter}, nil
	}
	r.setCondition(du, duv1alpha1.ConditionF1Connected, true, "ProviderDataReceived",
		fmt.Sprintf("CU at %s:%d, TAC %d", provider.F1IPAddress, provider.F1Port, provider.TAC))

	// Stage 6: render and apply the workload configuration
	rendered, err := r.renderConfig(du, spec, provider)
	if err != nil {
		r.setCondition(du, duv1alpha1.ConditionConfigRendered, false, "RenderFailed", err.Error())
		r.setPhase(du, duv1alpha1.PhaseFailed, err.Error())
		return ctrl.Result{}, fmt.Errorf("rendering configuration: %w", err)
	}
	changed, err := r.applyRenderedConfig(ctx, du, rendered)
	if err != nil {
		r.setCondition(du, duv1alpha1.ConditionConfigRendered, false, "ApplyFailed", err.Error())
		return ctrl.Result{}, fmt.Errorf("applying configuration: %w", err)
	}
	if changed {
		logger.Info("workload configuration changed", "hash", rendered.Hash)
		r.recordConfigRender(du.Name)
		r.Recorder.Event(du, corev1.EventTypeNormal, EventReasonConfigRendered,
			fmt.Sprintf("Configuration rendered, hash %s", rendered.Hash))
	}
	r.setCondition(du, duv1alpha1.ConditionConfigRendered, true, "Rendered", "workload configuration is applied")
	du.Status.ConfigHash = rendered.Hash
	du.Status.RFConfig = &duv1alpha1.RFConfigStatus{
		Band:             rendered.Radio.Band,
		DLFrequencyHz:    int64(rendered.Radio.DLFrequency),
		CarrierBandwidth: rendered.Radio.CarrierBandwidth,
		Numerology:       rendered.Radio.Numerology,
		StartSubcarrier:  rendered.Radio.FirstUsableSubcarrier,
	}

	// Stage 7: workload Deployment and Service
	promtailConfig, err := r.reconcileLogForwarding(ctx, du, spec)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling log forwarding: %w", err)
	}
	if err := r.reconcileWorkload(ctx, du, spec, rendered.Hash, promtailConfig); err != nil {
		return ctrl.Result{}, fmt.Errorf("reconciling workload: %w", err)
	}

	// Stage 8: rf_config goes out once the workload serves
	available, err := r.workloadAvailable(ctx, du)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("checking workload availability: %w", err)
	}
	r.recordWorkloadAvailable(du.Name, available)
	if !available {
		r.setCondition(du, duv1alpha1.ConditionWorkloadReady, false, "DeploymentUnavailable", msgWaitingWorkload)
		r.setPhase(du, duv1alpha1.PhaseWaiting, msgWaitingWorkload)
		return ctrl.Result{RequeueAfter: r.requeueAfter}, nil
	}
	published, err := r.publishRFConfig(ctx, du, spec, provider, rendered.Radio)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("publishing rf_config data: %w", err)
	}
	if published {
		r.Recorder.Event(du, corev1.EventTypeNormal, EventReasonRFConfigPublished, "RF configuration published for subscribers")
	}

	if !meta.IsStatusConditionTrue(du.Status.Conditions, duv1alpha1.ConditionWorkloadReady) {
		r.Recorder.Event(du, corev1.EventTypeNormal, EventReasonWorkloadReady, "DU workload is available")
	}
	r.setCondition(du, duv1alpha1.ConditionWorkloadReady, true, "DeploymentAvailable", "DU workload is available")
	r.setPhase(du, duv1alpha1.PhaseRunning, "")

	return ctrl.Result{RequeueAfter: r.requeueAfter}, nil
}

// setPhase records the phase together with its human readable explanation.
func (r *DUReconciler) setPhase(du *duv1alpha1.DistributedUnit, phase duv1alpha1.DUPhase, message string) {
	du.Status.Phase = phase
	du.Status.Message = message
}

func (r *DUReconciler) setCondition(du *duv1alpha1.DistributedUnit, condType string, ok bool, reason, message string) {
	meta.SetStatusCondition(&du.Status.Conditions, metav1.Condition{
		Type:               condType,
		Status:             conditionStatus(ok),
		Reason:             reason,
		Message:            message,
		ObservedGeneration: du.Generation,
	})
}

func conditionStatus(ok bool) metav1.ConditionStatus {
	if ok {
		return metav1.ConditionTrue
	}
	return metav1.ConditionFalse
}

// reconcileResult maps the outcome of a pass to a metric label.
func reconcileResult(du *duv1alpha1.DistributedUnit, err error) string {
	switch {
	case err != nil:
		return "error"
	case du.Status.Phase == duv1alpha1.PhaseBlocked:
		return "blocked"
	case du.Status.Phase == duv1alpha1.PhaseWaiting:
		return "waiting"
	default:
		return "success"
	}
}

// SetupWithManager sets up the controller with the Manager. The network
// attachment definition type is deliberately not watched, its CRD may not
// exist while a DistributedUnit is Blocked on Multus. Drift on attachments is
// caught by the periodic requeue instead.
func (r *DUReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&duv1alpha1.DistributedUnit{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&corev1.Service{}).
		Owns(&appsv1.Deployment{}).
		// React to CU contract and logging endpoint ConfigMaps we do not own
		Watches(&corev1.ConfigMap{}, handler.EnqueueRequestsFromMapFunc(r.dusReferencingConfigMap)).
		Complete(r)
}

// dusReferencingConfigMap enqueues every DistributedUnit in the ConfigMap's
// namespace that references it as CU contract or logging endpoint source.
func (r *DUReconciler) dusReferencingConfigMap(ctx context.Context, obj client.Object) []reconcile.Request {
	duList := &duv1alpha1.DistributedUnitList{}
	if err := r.List(ctx, duList, client.InNamespace(obj.GetNamespace())); err != nil {
		return nil
	}

	var requests []reconcile.Request
	for _, du := range duList.Items {
		if du.Spec.CentralUnit.ConfigMapRef == obj.GetName() ||
			(du.Spec.Logging != nil && du.Spec.Logging.EndpointsConfigMapRef == obj.GetName()) {
			requests = append(requests, reconcile.Request{
				NamespacedName: types.NamespacedName{Namespace: du.Namespace, Name: du.Name},
			})
		}
	}
	return requests
}
