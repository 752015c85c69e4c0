package system_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/envcheck/internal/system"
)

func TestBuildInfo_Read(t *testing.T) {
	exe, err := os.Executable()
	require.NoError(t, err)

	info, err := system.NewBuildInfo().Read(exe)
	require.NoError(t, err)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestBuildInfo_Read_Error(t *testing.T) {
	notABinary := filepath.Join(t.TempDir(), "not-a-binary")
	err := os.WriteFile(notABinary, []byte("plain text"), 0600)
	require.NoError(t, err)

	_, err = system.NewBuildInfo().Read(notABinary)
	assert.Error(t, err)
}
