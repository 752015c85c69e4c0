package internal_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunoribeiro127/envcheck/internal"
)

func TestNewLogger(t *testing.T) {
	cases := map[string]struct {
		level          slog.Level
		log            func(logger *slog.Logger)
		expectedOutput []string
		expectedEmpty  bool
	}{
		"warn-logged": {
			level: slog.LevelWarn,
			log: func(logger *slog.Logger) {
				logger.Warn("error getting working directory", "err", "permission denied")
			},
			expectedOutput: []string{
				"level=WARN",
				`msg="error getting working directory"`,
				`err="permission denied"`,
				"logger_test.go:",
			},
		},
		"debug-dropped": {
			level: slog.LevelWarn,
			log: func(logger *slog.Logger) {
				logger.Debug("module version is not a semantic version")
			},
			expectedEmpty: true,
		},
		"debug-logged-with-attrs": {
			level: slog.LevelDebug,
			log: func(logger *slog.Logger) {
				logger.With("path", "/srv").WithGroup("build").Debug("reading build info", "version", "v1.0.0")
			},
			expectedOutput: []string{
				"level=DEBUG",
				"path=/srv",
				"build.version=v1.0.0",
				"logger_test.go:",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer

			tc.log(internal.NewLogger(&out, tc.level))

			if tc.expectedEmpty {
				assert.Empty(t, out.String())
				return
			}

			for _, expected := range tc.expectedOutput {
				assert.Contains(t, out.String(), expected)
			}
		})
	}
}
