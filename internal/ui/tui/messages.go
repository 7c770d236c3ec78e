// Package tui provides a Bubble Tea terminal UI for the bootstrap and status
// commands.
package tui

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

// PhaseMsg reports progress of a bootstrap phase.
type PhaseMsg struct {
	Phase string
	Done  bool
	Err   error
}

// UnitStatusMsg carries the latest DistributedUnit status from the cluster.
type UnitStatusMsg struct {
	NotFound bool
	FetchErr string

	Phase         duv1alpha1.DUPhase
	Message       string
	ConfigHash    string
	Conditions    []metav1.Condition
	RFConfig      *duv1alpha1.RFConfigStatus
	LastReconcile string
}

// TickMsg is sent periodically to refresh the display.
type TickMsg struct{}

// ErrMsg carries an error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the operation is complete.
type DoneMsg struct{}
