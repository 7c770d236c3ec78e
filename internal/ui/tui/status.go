package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

// RunStatusTUI watches a DistributedUnit and renders its status until the
// user quits.
func RunStatusTUI(ctx context.Context, k8sClient client.Client, name, namespace string) error {
	m := NewStatusModel(name, namespace)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Poll the unit in the background.
	go func() {
		ticker := time.NewTicker(3 * time.Second)
		defer ticker.Stop()

		// Fetch immediately with a short timeout to avoid hanging.
		fetchCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		p.Send(FetchUnitStatus(fetchCtx, k8sClient, name, namespace))
		cancel()

		for {
			select {
			case <-ctx.Done():
				p.Send(ErrMsg{Err: ctx.Err()})
				return
			case <-ticker.C:
				p.Send(FetchUnitStatus(ctx, k8sClient, name, namespace))
			}
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}

// FetchUnitStatus reads a DistributedUnit once and converts it into a
// status message.
func FetchUnitStatus(ctx context.Context, k8sClient client.Client, name, namespace string) UnitStatusMsg {
	du := &duv1alpha1.DistributedUnit{}
	key := client.ObjectKey{Namespace: namespace, Name: name}

	if err := k8sClient.Get(ctx, key, du); err != nil {
		if apierrors.IsNotFound(err) {
			return UnitStatusMsg{NotFound: true}
		}
		return UnitStatusMsg{FetchErr: err.Error()}
	}

	lastReconcile := ""
	if du.Status.LastReconcileTime != nil {
		lastReconcile = time.Since(du.Status.LastReconcileTime.Time).Round(time.Second).String() + " ago"
	}

	return UnitStatusMsg{
		Phase:         du.Status.Phase,
		Message:       du.Status.Message,
		ConfigHash:    du.Status.ConfigHash,
		Conditions:    du.Status.Conditions,
		RFConfig:      du.Status.RFConfig,
		LastReconcile: lastReconcile,
	}
}

// RenderStatusOnce renders the status view once using lipgloss (non-watch mode).
func RenderStatusOnce(status UnitStatusMsg, name, namespace string) string {
	m := NewStatusModel(name, namespace)
	m.updateUnitStatus(status)
	return renderView(m)
}
