// Package naming provides consistent naming functions for the Kubernetes
// resources managed around a DistributedUnit.
//
// Resource names derive from the DistributedUnit name so everything that
// belongs to one DU can be identified at a glance and cleaned up through
// owner references. The gNB identity adds the namespace to keep parallel
// deployments in one cluster from colliding.
package naming
