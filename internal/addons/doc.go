// Package addons installs the cluster prerequisites of the DU workload.
//
// The operator refuses to create F1 network attachments until Multus serves
// the NetworkAttachmentDefinition CRD; this package gives the CLI a way to
// get a cluster from that Blocked state to a working one.
package addons
