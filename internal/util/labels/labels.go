// Package labels provides consistent labeling utilities for DU resources.
//
// This package enforces uniform labeling across everything created for a
// DistributedUnit, enabling identification, grouping and selector matching
// between the Deployment, its pods and the Service.
//
// Standard label keys follow the app.kubernetes.io convention.
package labels

// Standard label keys.
const (
	KeyName      = "app.kubernetes.io/name"
	KeyInstance  = "app.kubernetes.io/instance"
	KeyComponent = "app.kubernetes.io/component"
	KeyManagedBy = "app.kubernetes.io/managed-by"
)

// Label values identifying this operator and its workload.
const (
	AppName   = "oai-ran-du"
	ManagedBy = "oai-du-operator"
)

// Component values
const (
	ComponentWorkload = "du"
	ComponentContract = "contract"
	ComponentNetwork  = "network"
)

// Selector returns the immutable label subset used as the Deployment
// selector and the Service selector. Never add keys here, selectors cannot
// change once a Deployment exists.
func Selector(instance string) map[string]string {
	return map[string]string{
		KeyName:     AppName,
		KeyInstance: instance,
	}
}

// Workload returns the full label set for the DU Deployment and its pods.
func Workload(instance string) map[string]string {
	l := Selector(instance)
	l[KeyComponent] = ComponentWorkload
	l[KeyManagedBy] = ManagedBy
	return l
}

// Contract returns the label set for contract ConfigMaps published by the DU.
func Contract(instance string) map[string]string {
	l := Selector(instance)
	l[KeyComponent] = ComponentContract
	l[KeyManagedBy] = ManagedBy
	return l
}

// Network returns the label set for the F1 network attachment definition.
func Network(instance string) map[string]string {
	l := Selector(instance)
	l[KeyComponent] = ComponentNetwork
	l[KeyManagedBy] = ManagedBy
	return l
}
