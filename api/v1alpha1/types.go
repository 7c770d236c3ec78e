// Package v1alpha1 defines the DistributedUnit CRD types.
// +kubebuilder:object:generate=true
package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// DistributedUnitSpec defines the desired state of a DistributedUnit.
type DistributedUnitSpec struct {
	// CNIType is the Multus CNI plugin used for the F1 interface
	// +kubebuilder:validation:Enum=bridge;macvlan
	// +kubebuilder:default="bridge"
	// +optional
	CNIType string `json:"cniType,omitempty"`

	// F1InterfaceName is the name of the network interface used for F1 traffic
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:default="f1"
	// +optional
	F1InterfaceName string `json:"f1InterfaceName,omitempty"`

	// F1IPAddress is the CIDR assigned to the F1 interface
	// +kubebuilder:default="192.168.254.5/24"
	// +optional
	F1IPAddress string `json:"f1IPAddress,omitempty"`

	// F1Port is the SCTP port used by the DU for F1 traffic
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=2153
	// +optional
	F1Port int32 `json:"f1Port,omitempty"`

	// SimulationMode runs the DU against an RF simulator instead of a USB radio
	// +kubebuilder:default=false
	// +optional
	SimulationMode bool `json:"simulationMode,omitempty"`

	// UseThreeQuarterSampling runs the radio at a three-quarter sampling rate
	// +kubebuilder:default=false
	// +optional
	UseThreeQuarterSampling bool `json:"useThreeQuarterSampling,omitempty"`

	// UseMimo enables 2x2 MIMO on PDSCH and PUSCH
	// +kubebuilder:default=false
	// +optional
	UseMimo bool `json:"useMimo,omitempty"`

	// CenterFrequency is the carrier center frequency in MHz, given as a
	// decimal string ("4060" or "3924.48"). Must sit inside the configured
	// band edges shrunk by half the bandwidth, and inside [410, 7125] MHz.
	// +kubebuilder:validation:Pattern=`^[0-9]+(\.[0-9]+)?$`
	// +kubebuilder:default="4060"
	// +optional
	CenterFrequency string `json:"centerFrequency,omitempty"`

	// Bandwidth is the channel bandwidth in MHz
	// +kubebuilder:validation:Enum=5;10;15;20;25;30;40;50;60;70;80;90;100
	// +kubebuilder:default=40
	// +optional
	Bandwidth int32 `json:"bandwidth,omitempty"`

	// FrequencyBand is the 3GPP TDD FR1 band number
	// +kubebuilder:validation:Enum=34;38;39;40;41;48;50;51;77;78;79;90;96;101
	// +kubebuilder:default=77
	// +optional
	FrequencyBand int32 `json:"frequencyBand,omitempty"`

	// SubCarrierSpacing is the subcarrier spacing in kHz
	// +kubebuilder:validation:Enum=15;30
	// +kubebuilder:default=30
	// +optional
	SubCarrierSpacing int32 `json:"subCarrierSpacing,omitempty"`

	// CentralUnit locates the paired CU operator's F1 contract data
	CentralUnit CentralUnitRef `json:"centralUnit"`

	// Logging optionally wires the workload logs to a Loki endpoint
	// +optional
	Logging *LoggingSpec `json:"logging,omitempty"`

	// Image is the DU workload container image
	// +kubebuilder:default="ghcr.io/canonical/oai-ran-du:2.2"
	// +optional
	Image string `json:"image,omitempty"`

	// Paused suspends reconciliation of this DistributedUnit
	// +kubebuilder:default=false
	// +optional
	Paused bool `json:"paused,omitempty"`
}

// CentralUnitRef points at the ConfigMap through which the CU operator
// publishes its F1 contract data (address, port, TAC, PLMN list).
type CentralUnitRef struct {
	// ConfigMapRef is the name of the CU's F1 provider ConfigMap in this namespace
	// +kubebuilder:validation:MinLength=1
	ConfigMapRef string `json:"configMapRef"`
}

// LoggingSpec wires a promtail sidecar into the workload pod.
type LoggingSpec struct {
	// EndpointsConfigMapRef names a ConfigMap carrying a Loki push URL under
	// the "url" key
	// +kubebuilder:validation:MinLength=1
	EndpointsConfigMapRef string `json:"endpointsConfigMapRef"`
}

// DistributedUnitStatus defines the observed state of a DistributedUnit.
type DistributedUnitStatus struct {
	// Phase is the overall DU lifecycle phase
	// +kubebuilder:validation:Enum=Pending;Blocked;Waiting;Running;Failed
	// +optional
	Phase DUPhase `json:"phase,omitempty"`

	// Message explains the current phase in human terms
	// +optional
	Message string `json:"message,omitempty"`

	// Conditions represent the latest available observations
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// ConfigHash is the sha256 of the rendered workload configuration
	// +optional
	ConfigHash string `json:"configHash,omitempty"`

	// RFConfig summarizes the derived radio parameters
	// +optional
	RFConfig *RFConfigStatus `json:"rfConfig,omitempty"`

	// LastReconcileTime is when the operator last reconciled this DU
	// +optional
	LastReconcileTime *metav1.Time `json:"lastReconcileTime,omitempty"`

	// ObservedGeneration is the last observed generation
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// RFConfigStatus mirrors the values published over the rf_config contract.
type RFConfigStatus struct {
	// Band is the configured frequency band
	Band int32 `json:"band"`

	// DLFrequencyHz is the derived downlink center frequency in Hz
	DLFrequencyHz int64 `json:"dlFrequencyHz"`

	// CarrierBandwidth is the carrier bandwidth in resource blocks
	CarrierBandwidth int32 `json:"carrierBandwidth"`

	// Numerology is the 3GPP numerology index derived from the subcarrier spacing
	Numerology int32 `json:"numerology"`

	// StartSubcarrier is the first usable subcarrier index
	StartSubcarrier int32 `json:"startSubcarrier"`
}

// DUPhase represents the overall DistributedUnit state.
type DUPhase string

const (
	// PhasePending means the DU has not been reconciled yet
	PhasePending DUPhase = "Pending"
	// PhaseBlocked means the spec is invalid and needs operator correction
	PhaseBlocked DUPhase = "Blocked"
	// PhaseWaiting means required contract data has not arrived yet
	PhaseWaiting DUPhase = "Waiting"
	// PhaseRunning means the workload is configured and available
	PhaseRunning DUPhase = "Running"
	// PhaseFailed means rendering or applying the configuration failed
	PhaseFailed DUPhase = "Failed"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced,shortName=du
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Band",type=integer,JSONPath=`.spec.frequencyBand`
// +kubebuilder:printcolumn:name="Hash",type=string,JSONPath=`.status.configHash`,priority=1
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// DistributedUnit is the Schema for the distributedunits API.
type DistributedUnit struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DistributedUnitSpec   `json:"spec,omitempty"`
	Status DistributedUnitStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DistributedUnitList contains a list of DistributedUnit.
type DistributedUnitList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DistributedUnit `json:"items"`
}

// Condition types for DistributedUnit
const (
	// ConditionConfigValid indicates the spec passed full validation
	ConditionConfigValid = "ConfigValid"
	// ConditionMultusAvailable indicates the Multus NAD CRD is installed
	ConditionMultusAvailable = "MultusAvailable"
	// ConditionNetworkReady indicates the F1 NetworkAttachmentDefinition exists
	ConditionNetworkReady = "NetworkReady"
	// ConditionF1Connected indicates valid CU contract data has been received
	ConditionF1Connected = "F1Connected"
	// ConditionConfigRendered indicates the workload configuration was rendered and applied
	ConditionConfigRendered = "ConfigRendered"
	// ConditionWorkloadReady indicates the DU Deployment is available
	ConditionWorkloadReady = "WorkloadReady"
)
