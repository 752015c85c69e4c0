package system_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brunoribeiro127/envcheck/internal/system"
)

func TestRuntime(t *testing.T) {
	rt := system.NewRuntime()

	assert.Equal(t, runtime.NumCPU(), rt.NumCPU())
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, rt.Platform())
	assert.Equal(t, runtime.Version(), rt.Version())
}
