package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
}

// without a telemetry.json5 anywhere up the tree, setup is a no-op rather
// than an error, and the handle's Shutdown is safe to call
func TestSetupFromEnvWithoutConfig(t *testing.T) {
	chdir(t, t.TempDir())

	tel, err := SetupFromEnv(context.Background(), "test:telemetry")
	require.NoError(t, err)
	require.NoError(t, tel.Shutdown(context.Background()))
}

// a malformed config must surface as an error instead of being swallowed
func TestSetupFromEnvMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "telemetry.json5"), []byte(`{traces: {`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	_, err = SetupFromEnv(context.Background(), "test:telemetry")
	require.Error(t, err)
}
