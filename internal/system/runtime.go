package system

import "runtime"

// Runtime is the interface for the runtime.
type Runtime interface {
	// NumCPU returns the number of logical CPUs usable by the process.
	NumCPU() int
	// Platform returns the platform in the format "os/arch".
	Platform() string
	// Version returns the Go version the binary was built with.
	Version() string
}

// rt is the default implementation of the Runtime interface.
type rt struct{}

// NewRuntime creates a new runtime.
func NewRuntime() Runtime {
	return &rt{}
}

// NumCPU returns the number of logical CPUs usable by the process.
func (r *rt) NumCPU() int {
	return runtime.NumCPU()
}

// Platform returns the platform in the format "os/arch".
func (r *rt) Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Version returns the Go version the binary was built with.
func (r *rt) Version() string {
	return runtime.Version()
}
