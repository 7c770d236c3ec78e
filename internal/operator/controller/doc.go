// Package controller implements the Kubernetes controller for DistributedUnit
// custom resources.
//
// Each reconciliation is a single observe-compute-apply pass: validate the
// spec, ensure the F1 network attachment, exchange contract data with the
// central unit through ConfigMaps, render the workload configuration and
// converge ConfigMap, Deployment and Service on the rendered state. A content
// change of the configuration rolls the workload pod, the softmodem has no
// hot reload.
//
// Conditions track each stage of the pipeline. The phase summarizes them:
// Blocked means the spec or the cluster needs operator attention, Waiting
// means contract data or the workload has not arrived yet, Running means the
// DU is serving.
package controller
