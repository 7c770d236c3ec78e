package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInstaller implements multusInstaller for testing.
type fakeInstaller struct {
	called bool
	err    error
}

func (f *fakeInstaller) InstallMultus(_ context.Context) error {
	f.called = true
	return f.err
}

// saveAndRestoreBootstrapFactories restores the bootstrap factory functions
// after the test.
func saveAndRestoreBootstrapFactories(t *testing.T) {
	t.Helper()
	origNewInstaller := newInstaller
	origReadKubeconfig := readKubeconfig
	origIsTerminal := isTerminal

	t.Cleanup(func() {
		newInstaller = origNewInstaller
		readKubeconfig = origReadKubeconfig
		isTerminal = origIsTerminal
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBootstrap_InstallsMultus(t *testing.T) {
	saveAndRestoreBootstrapFactories(t)

	installer := &fakeInstaller{}
	readKubeconfig = func(_ string) ([]byte, error) { return []byte("kubeconfig"), nil }
	newInstaller = func(_ []byte) (multusInstaller, error) { return installer, nil }
	isTerminal = func() bool { return false }

	err := Bootstrap(context.Background(), "", false)

	require.NoError(t, err)
	assert.True(t, installer.called)
}

func TestBootstrap_InstallFailure(t *testing.T) {
	saveAndRestoreBootstrapFactories(t)

	installer := &fakeInstaller{err: errors.New("chart not found")}
	readKubeconfig = func(_ string) ([]byte, error) { return []byte("kubeconfig"), nil }
	newInstaller = func(_ []byte) (multusInstaller, error) { return installer, nil }
	isTerminal = func() bool { return false }

	err := Bootstrap(context.Background(), "", true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chart not found")
}

func TestBootstrap_MissingKubeconfig(t *testing.T) {
	saveAndRestoreBootstrapFactories(t)

	installer := &fakeInstaller{}
	newInstaller = func(_ []byte) (multusInstaller, error) { return installer, nil }

	err := Bootstrap(context.Background(), filepath.Join(t.TempDir(), "nope"), true)

	require.Error(t, err)
	assert.False(t, installer.called)
}

func TestLoadKubeconfig_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	writeFile(t, path, "apiVersion: v1\nkind: Config\n")

	data, err := loadKubeconfig(path)

	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Config")
}
