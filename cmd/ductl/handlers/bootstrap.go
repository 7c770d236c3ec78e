package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ranstack/oai-du-operator/internal/addons"
	"github.com/ranstack/oai-du-operator/internal/ui/tui"
)

// multusInstaller installs the Multus prerequisite.
type multusInstaller interface {
	InstallMultus(ctx context.Context) error
}

// Factory function variables for bootstrap - can be replaced in tests.
var (
	newInstaller = func(kubeconfig []byte) (multusInstaller, error) {
		return addons.NewInstaller(kubeconfig)
	}

	readKubeconfig = loadKubeconfig

	isTerminal = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// Bootstrap installs Multus into the cluster the kubeconfig points at.
// Interactive terminals get the Bubble Tea UI, everything else plain logs.
func Bootstrap(ctx context.Context, kubeconfigPath string, plain bool) error {
	kubeconfig, err := readKubeconfig(kubeconfigPath)
	if err != nil {
		return err
	}

	installer, err := newInstaller(kubeconfig)
	if err != nil {
		return err
	}

	phases := []tui.Phase{
		{Key: "multus", Name: "Installing Multus CNI"},
	}

	work := func(ctx context.Context, ch chan<- tui.PhaseMsg) error {
		ch <- tui.PhaseMsg{Phase: "multus"}
		if err := installer.InstallMultus(ctx); err != nil {
			ch <- tui.PhaseMsg{Phase: "multus", Err: err}
			return fmt.Errorf("installing Multus: %w", err)
		}
		ch <- tui.PhaseMsg{Phase: "multus", Done: true}
		return nil
	}

	if plain || !isTerminal() {
		return runPlain(ctx, phases, work)
	}

	if err := tui.RunBootstrapTUI(ctx, phases, work); err != nil {
		return err
	}
	fmt.Println("Multus is installed. Blocked DistributedUnits recover on their next reconcile.")
	return nil
}

// runPlain drives the same work function without a TUI, logging phase
// transitions instead.
func runPlain(ctx context.Context, phases []tui.Phase, work func(context.Context, chan<- tui.PhaseMsg) error) error {
	names := make(map[string]string, len(phases))
	for _, p := range phases {
		names[p.Key] = p.Name
	}

	ch := make(chan tui.PhaseMsg, 10)
	done := make(chan error, 1)
	go func() {
		defer close(ch)
		done <- work(ctx, ch)
	}()

	for msg := range ch {
		switch {
		case msg.Err != nil:
			log.Printf("%s: failed: %v", names[msg.Phase], msg.Err)
		case msg.Done:
			log.Printf("%s: done", names[msg.Phase])
		default:
			log.Printf("%s...", names[msg.Phase])
		}
	}

	if err := <-done; err != nil {
		return err
	}
	log.Println("Multus is installed. Blocked DistributedUnits recover on their next reconcile.")
	return nil
}
