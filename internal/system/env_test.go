package system_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunoribeiro127/envcheck/internal/system"
)

func TestEnvironment_Get(t *testing.T) {
	t.Setenv("ENVCHECK_TEST_SET", "value")
	t.Setenv("ENVCHECK_TEST_EMPTY", "")

	env := system.NewEnvironment()

	cases := map[string]struct {
		key           string
		expectedValue string
		expectedOk    bool
	}{
		"set": {
			key:           "ENVCHECK_TEST_SET",
			expectedValue: "value",
			expectedOk:    true,
		},
		"empty": {
			key:        "ENVCHECK_TEST_EMPTY",
			expectedOk: true,
		},
		"unset": {
			key: "ENVCHECK_TEST_UNSET",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			value, ok := env.Get(tc.key)
			assert.Equal(t, tc.expectedValue, value)
			assert.Equal(t, tc.expectedOk, ok)
		})
	}
}

func TestEnvironment_All(t *testing.T) {
	t.Setenv("ENVCHECK_TEST_PLAIN", "value")
	t.Setenv("ENVCHECK_TEST_WITH_EQUALS", "a=b=c")
	t.Setenv("ENVCHECK_TEST_EMPTY", "")

	vars := system.NewEnvironment().All()

	assert.Equal(t, "value", vars["ENVCHECK_TEST_PLAIN"])
	assert.Equal(t, "a=b=c", vars["ENVCHECK_TEST_WITH_EQUALS"])

	value, ok := vars["ENVCHECK_TEST_EMPTY"]
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestEnvironment_Executable(t *testing.T) {
	path, err := system.NewEnvironment().Executable()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
}

func TestEnvironment_Getwd(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	wd, err := system.NewEnvironment().Getwd()
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(tempDir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}
