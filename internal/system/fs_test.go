package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/envcheck/internal/system"
)

func TestFileSystem_Exists(t *testing.T) {
	fs := system.NewFileSystem()

	tempDir := t.TempDir()
	testfile := filepath.Join(tempDir, "testfile")

	err := os.WriteFile(testfile, []byte{}, 0600)
	require.NoError(t, err)

	cases := map[string]struct {
		path     string
		expected bool
	}{
		"file": {
			path:     testfile,
			expected: true,
		},
		"dir": {
			path:     tempDir,
			expected: true,
		},
		"missing": {
			path:     filepath.Join(tempDir, "missing"),
			expected: false,
		},
		"missing-parent": {
			path:     filepath.Join(tempDir, "missing", "file"),
			expected: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			exists, existsErr := fs.Exists(tc.path)
			require.NoError(t, existsErr)
			assert.Equal(t, tc.expected, exists)
		})
	}
}

func TestFileSystem_ListDir(t *testing.T) {
	fs := system.NewFileSystem()

	tempDir := t.TempDir()

	err := os.Mkdir(filepath.Join(tempDir, "schedulers"), 0700)
	require.NoError(t, err)

	for _, name := range []string{"sync.py", "README.md", ".env"} {
		err = os.WriteFile(filepath.Join(tempDir, name), []byte{}, 0600)
		require.NoError(t, err)
	}

	names, err := fs.ListDir(tempDir)
	require.NoError(t, err)
	assert.Equal(t, []string{".env", "README.md", "schedulers", "sync.py"}, names)
}

func TestFileSystem_ListDir_Error(t *testing.T) {
	fs := system.NewFileSystem()

	names, err := fs.ListDir(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, names)
}
