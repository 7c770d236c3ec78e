package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

// conditionOrder fixes the display order to the reconcile pipeline order.
var conditionOrder = []string{
	duv1alpha1.ConditionConfigValid,
	duv1alpha1.ConditionMultusAvailable,
	duv1alpha1.ConditionNetworkReady,
	duv1alpha1.ConditionF1Connected,
	duv1alpha1.ConditionConfigRendered,
	duv1alpha1.ConditionWorkloadReady,
}

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if m.Mode == "bootstrap" {
		renderPhases(&b, m)
	}

	if m.Mode == "status" && m.StatusSeen {
		renderConditions(&b, m)
		renderRadio(&b, m)
	}

	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := "ductl"
	if m.UnitName != "" {
		title = fmt.Sprintf("ductl: %s/%s", m.Namespace, m.UnitName)
	}
	b.WriteString(titleStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done && m.Mode == "bootstrap":
		status += readyStyle.Render("Done")
	case m.Mode == "bootstrap":
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame))
	case m.Phase == duv1alpha1.PhaseRunning:
		status += readyStyle.Render("Running")
	case m.Phase == duv1alpha1.PhaseBlocked:
		status += failedStyle.Render("Blocked")
	case m.Phase == duv1alpha1.PhaseFailed:
		status += failedStyle.Render("Failed")
	case m.Phase == duv1alpha1.PhaseWaiting:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render("Waiting")
	default:
		status += dimStyle.Render("Fetching status...")
	}
	b.WriteString(status)
	b.WriteString("\n")

	if m.Mode == "status" && m.Message != "" {
		fmt.Fprintf(b, "  %s\n", dimStyle.Render(m.Message))
	}
}

func renderPhases(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Bootstrap"))
	b.WriteString("\n")

	for _, phase := range m.Phases {
		var icon string
		var style styleFunc
		switch {
		case phase.Err != nil:
			icon = crossMark
			style = sf(failedStyle)
		case phase.Done:
			icon = checkMark
			style = sf(readyStyle)
		case phase.Active:
			icon = currentSpinner(m.SpinnerFrame)
			style = sf(activeStyle)
		default:
			icon = pending
			style = sf(dimStyle)
		}
		fmt.Fprintf(b, "    %s %s\n", style(icon), style(phase.Name))
	}
}

func renderConditions(b *strings.Builder, m Model) {
	if len(m.Conditions) == 0 {
		return
	}

	b.WriteString(sectionStyle.Render("  Conditions"))
	b.WriteString("\n")

	byType := make(map[string]metav1.Condition, len(m.Conditions))
	for _, cond := range m.Conditions {
		byType[cond.Type] = cond
	}

	printed := make(map[string]bool)
	for _, condType := range conditionOrder {
		if cond, ok := byType[condType]; ok {
			renderConditionRow(b, cond)
			printed[condType] = true
		}
	}
	for _, cond := range m.Conditions {
		if !printed[cond.Type] {
			renderConditionRow(b, cond)
		}
	}
}

func renderConditionRow(b *strings.Builder, cond metav1.Condition) {
	var icon string
	var style styleFunc
	switch cond.Status {
	case metav1.ConditionTrue:
		icon = checkMark
		style = sf(readyStyle)
	case metav1.ConditionFalse:
		icon = crossMark
		style = sf(failedStyle)
	default:
		icon = warnMark
		style = sf(warningStyle)
	}

	extra := ""
	if cond.Status != metav1.ConditionTrue && cond.Reason != "" {
		extra = dimStyle.Render(cond.Reason)
	}

	fmt.Fprintf(b, "    %s %s %s\n", style(icon), style(fmt.Sprintf("%-16s", cond.Type)), extra)
}

func renderRadio(b *strings.Builder, m Model) {
	if m.RFConfig == nil {
		return
	}

	b.WriteString(sectionStyle.Render("  Radio"))
	b.WriteString("\n")

	rows := []struct {
		name  string
		value string
	}{
		{"Band", fmt.Sprintf("n%d", m.RFConfig.Band)},
		{"Downlink", formatMHz(m.RFConfig.DLFrequencyHz) + " MHz"},
		{"Carrier", fmt.Sprintf("%d PRBs", m.RFConfig.CarrierBandwidth)},
		{"Numerology", strconv.FormatInt(int64(m.RFConfig.Numerology), 10)},
		{"First subcarrier", strconv.FormatInt(int64(m.RFConfig.StartSubcarrier), 10)},
	}
	for _, row := range rows {
		fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(fmt.Sprintf("%-16s", row.name)), activeStyle.Render(row.value))
	}

	if m.ConfigHash != "" {
		hash := m.ConfigHash
		if len(hash) > 12 {
			hash = hash[:12]
		}
		fmt.Fprintf(b, "    %s %s\n", dimStyle.Render(fmt.Sprintf("%-16s", "Config hash")), dimStyle.Render(hash))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	elapsed := formatDuration(time.Since(m.StartTime))
	parts := []string{fmt.Sprintf("elapsed: %s", elapsed)}
	if m.LastReconcile != "" {
		parts = append(parts, fmt.Sprintf("last reconcile: %s", m.LastReconcile))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

// formatMHz renders a frequency in Hz as a decimal MHz string without
// trailing zeros.
func formatMHz(hz int64) string {
	whole := hz / 1_000_000
	frac := hz % 1_000_000
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	return strings.TrimRight(fmt.Sprintf("%d.%06d", whole, frac), "0")
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
