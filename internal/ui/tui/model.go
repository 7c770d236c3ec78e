package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	duv1alpha1 "github.com/ranstack/oai-du-operator/api/v1alpha1"
)

// Phase represents a bootstrap phase for display.
type Phase struct {
	Name   string
	Key    string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for the ductl terminal UI.
type Model struct {
	// Unit identity
	UnitName  string
	Namespace string

	// Bootstrap phases (bootstrap command)
	Phases     []Phase
	PhasesDone bool

	// CRD-sourced state (status command)
	Phase         duv1alpha1.DUPhase
	Message       string
	ConfigHash    string
	Conditions    []metav1.Condition
	RFConfig      *duv1alpha1.RFConfigStatus
	LastReconcile string
	StatusSeen    bool

	// Animation
	SpinnerFrame int
	StartTime    time.Time

	// UI state
	Width  int
	Height int
	Err    error
	Done   bool

	// Mode
	Mode string // "bootstrap", "status"
}

// NewBootstrapModel creates a model for the bootstrap command TUI.
func NewBootstrapModel(phases []Phase) Model {
	return Model{
		StartTime: time.Now(),
		Mode:      "bootstrap",
		Phases:    phases,
	}
}

// NewStatusModel creates a model for the status command TUI.
func NewStatusModel(name, namespace string) Model {
	return Model{
		UnitName:  name,
		Namespace: namespace,
		StartTime: time.Now(),
		Mode:      "status",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case UnitStatusMsg:
		if msg.NotFound {
			m.Err = fmt.Errorf("DistributedUnit %s/%s not found", m.Namespace, m.UnitName)
			return m, tea.Quit
		}
		if msg.FetchErr != "" {
			m.Err = fmt.Errorf("failed to fetch unit status: %s", msg.FetchErr)
			return m, tea.Quit
		}
		m.updateUnitStatus(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Key == msg.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Earlier phases are implicitly finished.
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	if msg.Done {
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
		if idx == len(m.Phases)-1 {
			m.PhasesDone = true
		}
	} else {
		m.Phases[idx].Active = true
	}

	if msg.Err != nil {
		m.Phases[idx].Err = msg.Err
	}
}

func (m *Model) updateUnitStatus(msg UnitStatusMsg) {
	m.Phase = msg.Phase
	m.Message = msg.Message
	m.ConfigHash = msg.ConfigHash
	m.Conditions = msg.Conditions
	m.RFConfig = msg.RFConfig
	m.LastReconcile = msg.LastReconcile
	m.StatusSeen = true
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
