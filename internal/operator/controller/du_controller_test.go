package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
	"github.com/ranstack/oai-du-operator/internal/util/naming"
)

func setupTestScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	scheme := runtime.NewScheme()
	require.NoError(t, corev1.AddToScheme(scheme))
	require.NoError(t, appsv1.AddToScheme(scheme))
	require.NoError(t, apiextensionsv1.AddToScheme(scheme))
	require.NoError(t, duv1alpha1.AddToScheme(scheme))
	scheme.AddKnownTypeWithName(nadGVK, &unstructured.Unstructured{})
	scheme.AddKnownTypeWithName(nadGVK.GroupVersion().WithKind(nadGVK.Kind+"List"), &unstructured.UnstructuredList{})
	metav1.AddToGroupVersion(scheme, nadGVK.GroupVersion())
	return scheme
}

func newTestReconciler(t *testing.T, objs ...client.Object) (*DUReconciler, client.Client) {
	t.Helper()
	scheme := setupTestScheme(t)
	c := fake.NewClientBuilder().
		WithScheme(scheme).
		WithStatusSubresource(&duv1alpha1.DistributedUnit{}, &appsv1.Deployment{}).
		WithObjects(objs...).
		Build()
	recorder := record.NewFakeRecorder(50)
	r := NewDUReconciler(c, scheme, recorder, WithMetrics(false))
	return r, c
}

func multusCRD() *apiextensionsv1.CustomResourceDefinition {
	return &apiextensionsv1.CustomResourceDefinition{
		ObjectMeta: metav1.ObjectMeta{Name: multusCRDName},
	}
}

// testDU returns a simulation mode DistributedUnit relying on the spec
// defaults for the radio settings.
func testDU() *duv1alpha1.DistributedUnit {
	return &duv1alpha1.DistributedUnit{
		ObjectMeta: metav1.ObjectMeta{Name: "test-du", Namespace: "ran"},
		Spec: duv1alpha1.DistributedUnitSpec{
			SimulationMode: true,
			CentralUnit:    duv1alpha1.CentralUnitRef{ConfigMapRef: "cu-f1"},
		},
	}
}

func cuConfigMap() *corev1.ConfigMap {
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "cu-f1", Namespace: "ran"},
		Data: map[string]string{
			"f1_ip_address": "4.3.2.1",
			"f1_port":       "2152",
			"tac":           "1",
			"plmns":         `[{"mcc": "001", "mnc": "01", "sst": 1}]`,
		},
	}
}

func reconcileOnce(t *testing.T, r *DUReconciler, du *duv1alpha1.DistributedUnit) ctrl.Result {
	t.Helper()
	result, err := r.Reconcile(context.Background(), ctrl.Request{
		NamespacedName: types.NamespacedName{Namespace: du.Namespace, Name: du.Name},
	})
	require.NoError(t, err)
	return result
}

func getDU(t *testing.T, c client.Client, du *duv1alpha1.DistributedUnit) *duv1alpha1.DistributedUnit {
	t.Helper()
	got := &duv1alpha1.DistributedUnit{}
	require.NoError(t, c.Get(context.Background(), types.NamespacedName{Namespace: du.Namespace, Name: du.Name}, got))
	return got
}

func TestNewDUReconciler(t *testing.T) {
	scheme := setupTestScheme(t)
	c := fake.NewClientBuilder().WithScheme(scheme).Build()
	recorder := record.NewFakeRecorder(10)

	t.Run("with default options", func(t *testing.T) {
		r := NewDUReconciler(c, scheme, recorder)

		assert.NotNil(t, r)
		assert.Equal(t, c, r.Client)
		assert.Equal(t, scheme, r.Scheme)
		assert.Equal(t, recorder, r.Recorder)
		assert.True(t, r.enableMetrics)
		assert.Equal(t, defaultRequeueAfter, r.requeueAfter)
	})

	t.Run("with custom options", func(t *testing.T) {
		r := NewDUReconciler(c, scheme, recorder, WithMetrics(false), WithRequeueAfter(5*time.Second))

		assert.False(t, r.enableMetrics)
		assert.Equal(t, 5*time.Second, r.requeueAfter)
	})
}

func TestReconcileNotFound(t *testing.T) {
	r, _ := newTestReconciler(t)

	result, err := r.Reconcile(context.Background(), ctrl.Request{
		NamespacedName: types.NamespacedName{Namespace: "ran", Name: "missing"},
	})

	assert.NoError(t, err)
	assert.Equal(t, ctrl.Result{}, result)
}

func TestReconcilePaused(t *testing.T) {
	du := testDU()
	du.Spec.Paused = true
	r, c := newTestReconciler(t, du, multusCRD(), cuConfigMap())

	result := reconcileOnce(t, r, du)

	assert.Equal(t, defaultRequeueAfter, result.RequeueAfter)

	// Nothing must be created while paused
	deployment := &appsv1.Deployment{}
	err := c.Get(context.Background(), types.NamespacedName{Namespace: "ran", Name: naming.Workload("test-du")}, deployment)
	assert.True(t, apierrors.IsNotFound(err))
}

func TestReconcileInvalidSpec(t *testing.T) {
	du := testDU()
	du.Spec.F1IPAddress = "not-a-cidr"
	r, c := newTestReconciler(t, du, multusCRD())

	result := reconcileOnce(t, r, du)

	// No requeue, a spec edit triggers the next pass
	assert.Equal(t, ctrl.Result{}, result)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseBlocked, got.Status.Phase)
	assert.Equal(t, "The following configurations are not valid: ['f1IPAddress']", got.Status.Message)

	cond := meta.FindStatusCondition(got.Status.Conditions, duv1alpha1.ConditionConfigValid)
	require.NotNil(t, cond)
	assert.Equal(t, metav1.ConditionFalse, cond.Status)
	assert.Equal(t, "InvalidOptions", cond.Reason)
}

func TestReconcileMultusMissing(t *testing.T) {
	du := testDU()
	r, c := newTestReconciler(t, du, cuConfigMap())

	result := reconcileOnce(t, r, du)

	assert.Equal(t, defaultRequeueAfter, result.RequeueAfter)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseBlocked, got.Status.Phase)
	assert.Equal(t, msgMultusMissing, got.Status.Message)
	assert.True(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionConfigValid))
	assert.False(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionMultusAvailable))
}

func TestReconcileWaitingForCU(t *testing.T) {
	du := testDU()
	r, c := newTestReconciler(t, du, multusCRD())

	result := reconcileOnce(t, r, du)

	assert.Equal(t, defaultRequeueAfter, result.RequeueAfter)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseWaiting, got.Status.Phase)
	assert.Equal(t, msgWaitingForF1, got.Status.Message)
	assert.False(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionF1Connected))

	// The network attachment and our side of the contract exist already
	nad := &unstructured.Unstructured{}
	nad.SetGroupVersionKind(nadGVK)
	require.NoError(t, c.Get(context.Background(),
		types.NamespacedName{Namespace: "ran", Name: "test-du-f1-net"}, nad))

	requirer := &corev1.ConfigMap{}
	require.NoError(t, c.Get(context.Background(),
		types.NamespacedName{Namespace: "ran", Name: naming.F1RequirerConfigMap("test-du")}, requirer))
	assert.Equal(t, map[string]string{"f1_port": "2153"}, requirer.Data)

	// The workload must not exist before CU data arrives
	deployment := &appsv1.Deployment{}
	err := c.Get(context.Background(), types.NamespacedName{Namespace: "ran", Name: naming.Workload("test-du")}, deployment)
	assert.Error(t, err)
}

func TestReconcileRendersWorkload(t *testing.T) {
	du := testDU()
	r, c := newTestReconciler(t, du, multusCRD(), cuConfigMap())

	result := reconcileOnce(t, r, du)
	assert.Equal(t, defaultRequeueAfter, result.RequeueAfter)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseWaiting, got.Status.Phase)
	assert.Equal(t, msgWaitingWorkload, got.Status.Message)
	assert.True(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionF1Connected))
	assert.True(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionConfigRendered))
	assert.False(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionWorkloadReady))
	assert.NotEmpty(t, got.Status.ConfigHash)

	require.NotNil(t, got.Status.RFConfig)
	assert.Equal(t, int32(77), got.Status.RFConfig.Band)
	assert.Equal(t, int64(4_059_090_000), got.Status.RFConfig.DLFrequencyHz)
	assert.Equal(t, int32(106), got.Status.RFConfig.CarrierBandwidth)
	assert.Equal(t, int32(1), got.Status.RFConfig.Numerology)
	assert.Equal(t, int32(541), got.Status.RFConfig.StartSubcarrier)

	cm := &corev1.ConfigMap{}
	require.NoError(t, c.Get(context.Background(),
		types.NamespacedName{Namespace: "ran", Name: naming.ConfigMap("test-du")}, cm))
	conf := cm.Data[configKey]
	assert.Contains(t, conf, `Active_gNBs = ( "ran-test-du-du" );`)
	assert.Contains(t, conf, "absoluteFrequencySSB = 670656;")
	assert.Contains(t, conf, `rfsimulator :`)

	deployment := &appsv1.Deployment{}
	require.NoError(t, c.Get(context.Background(),
		types.NamespacedName{Namespace: "ran", Name: naming.Workload("test-du")}, deployment))
	assert.Equal(t, appsv1.RecreateDeploymentStrategyType, deployment.Spec.Strategy.Type)
	assert.Equal(t, got.Status.ConfigHash, deployment.Spec.Template.Annotations[configHashAnnotation])
	assert.Contains(t, deployment.Spec.Template.Annotations[networksAnnotation], `"name":"test-du-f1-net"`)

	require.Len(t, deployment.Spec.Template.Spec.Containers, 1)
	assert.Equal(t, []string{
		"/opt/oai-gnb/bin/nr-softmodem", "-O", "/tmp/conf/du.conf", "--continuous-tx", "--rfsim",
	}, deployment.Spec.Template.Spec.Containers[0].Command)

	svc := &corev1.Service{}
	require.NoError(t, c.Get(context.Background(),
		types.NamespacedName{Namespace: "ran", Name: naming.Service("test-du")}, svc))
	require.Len(t, svc.Spec.Ports, 2)
	assert.Equal(t, corev1.ProtocolSCTP, svc.Spec.Ports[0].Protocol)
	assert.Equal(t, int32(2153), svc.Spec.Ports[0].Port)
	assert.Equal(t, int32(rfsimPort), svc.Spec.Ports[1].Port)
}

func TestReconcileRunning(t *testing.T) {
	du := testDU()
	r, c := newTestReconciler(t, du, multusCRD(), cuConfigMap())
	ctx := context.Background()

	reconcileOnce(t, r, du)

	// Grant the workload availability and a service address by hand, the
	// fake cluster runs no deployment controller
	deployment := &appsv1.Deployment{}
	require.NoError(t, c.Get(ctx, types.NamespacedName{Namespace: "ran", Name: naming.Workload("test-du")}, deployment))
	deployment.Status.Conditions = []appsv1.DeploymentCondition{
		{Type: appsv1.DeploymentAvailable, Status: corev1.ConditionTrue},
	}
	require.NoError(t, c.Status().Update(ctx, deployment))

	svc := &corev1.Service{}
	require.NoError(t, c.Get(ctx, types.NamespacedName{Namespace: "ran", Name: naming.Service("test-du")}, svc))
	svc.Spec.ClusterIP = "10.96.0.10"
	require.NoError(t, c.Update(ctx, svc))

	reconcileOnce(t, r, du)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseRunning, got.Status.Phase)
	assert.Empty(t, got.Status.Message)
	assert.True(t, meta.IsStatusConditionTrue(got.Status.Conditions, duv1alpha1.ConditionWorkloadReady))

	rfCM := &corev1.ConfigMap{}
	require.NoError(t, c.Get(ctx,
		types.NamespacedName{Namespace: "ran", Name: naming.RFConfigConfigMap("test-du")}, rfCM))
	assert.Equal(t, map[string]string{
		"version":           "0",
		"rfsim_address":     "10.96.0.10",
		"sst":               "1",
		"band":              "77",
		"dl_freq":           "4059090000",
		"carrier_bandwidth": "106",
		"numerology":        "1",
		"start_subcarrier":  "541",
	}, rfCM.Data)
}

func TestReconcileConfigChangeRollsWorkload(t *testing.T) {
	du := testDU()
	r, c := newTestReconciler(t, du, multusCRD(), cuConfigMap())
	ctx := context.Background()

	reconcileOnce(t, r, du)
	first := getDU(t, c, du).Status.ConfigHash
	require.NotEmpty(t, first)

	// A bandwidth change reshapes the whole carrier
	got := getDU(t, c, du)
	got.Spec.Bandwidth = 20
	require.NoError(t, c.Update(ctx, got))

	reconcileOnce(t, r, du)
	second := getDU(t, c, du).Status.ConfigHash
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)

	deployment := &appsv1.Deployment{}
	require.NoError(t, c.Get(ctx, types.NamespacedName{Namespace: "ran", Name: naming.Workload("test-du")}, deployment))
	assert.Equal(t, second, deployment.Spec.Template.Annotations[configHashAnnotation])
}

func TestReconcileInvalidCUDataKeepsWaiting(t *testing.T) {
	du := testDU()
	cm := cuConfigMap()
	cm.Data["tac"] = "0" // zero is reserved
	r, c := newTestReconciler(t, du, multusCRD(), cm)

	reconcileOnce(t, r, du)

	got := getDU(t, c, du)
	assert.Equal(t, duv1alpha1.PhaseWaiting, got.Status.Phase)
	assert.Equal(t, msgWaitingForF1, got.Status.Message)
}

func TestDUsReferencingConfigMap(t *testing.T) {
	cuDU := testDU()
	logDU := testDU()
	logDU.Name = "log-du"
	logDU.Spec.CentralUnit.ConfigMapRef = "other-cu"
	logDU.Spec.Logging = &duv1alpha1.LoggingSpec{EndpointsConfigMapRef: "loki-endpoints"}
	r, _ := newTestReconciler(t, cuDU, logDU)
	ctx := context.Background()

	refCM := func(name string) *corev1.ConfigMap {
		return &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "ran"}}
	}

	t.Run("matches CU contract reference", func(t *testing.T) {
		requests := r.dusReferencingConfigMap(ctx, refCM("cu-f1"))
		require.Len(t, requests, 1)
		assert.Equal(t, "test-du", requests[0].Name)
	})

	t.Run("matches logging endpoint reference", func(t *testing.T) {
		requests := r.dusReferencingConfigMap(ctx, refCM("loki-endpoints"))
		require.Len(t, requests, 1)
		assert.Equal(t, "log-du", requests[0].Name)
	})

	t.Run("ignores unrelated ConfigMaps", func(t *testing.T) {
		assert.Empty(t, r.dusReferencingConfigMap(ctx, refCM("unrelated")))
	})
}
