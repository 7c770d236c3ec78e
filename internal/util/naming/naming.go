package naming

import "fmt"

// Naming functions for DU resources.
// All resources derived from a DistributedUnit follow consistent naming
// patterns to enable easy identification and cleanup.

func GNB(namespace, name string) string {
	return fmt.Sprintf("%s-%s-du", namespace, name)
}

func Workload(name string) string {
	return fmt.Sprintf("%s-du", name)
}

func Service(name string) string {
	return fmt.Sprintf("%s-du", name)
}

func ConfigMap(name string) string {
	return fmt.Sprintf("%s-du-config", name)
}

func F1RequirerConfigMap(name string) string {
	return fmt.Sprintf("%s-f1-requirer", name)
}

func RFConfigConfigMap(name string) string {
	return fmt.Sprintf("%s-rf-config", name)
}

func PromtailConfigMap(name string) string {
	return fmt.Sprintf("%s-promtail", name)
}

func NetworkAttachment(name, iface string) string {
	return fmt.Sprintf("%s-%s-net", name, iface)
}
