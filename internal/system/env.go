package system

import (
	"os"
	"strings"
)

// Environment is the interface for the process environment.
type Environment interface {
	// Get gets the value of the environment variable with the given key.
	Get(key string) (string, bool)
	// All returns a snapshot of all environment variables.
	All() map[string]string
	// Executable returns the path of the running executable.
	Executable() (string, error)
	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// env is the default implementation of the Environment interface.
type env struct{}

// NewEnvironment creates a new Environment.
func NewEnvironment() Environment {
	return &env{}
}

// Get gets the value of the environment variable with the given key.
func (e *env) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

// All returns a snapshot of all environment variables. Entries without a "="
// separator are skipped. Windows exposes per-drive working directories as
// entries starting with "=", these keep their leading "=" in the key.
func (e *env) All() map[string]string {
	environ := os.Environ()

	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := cut(entry)
		if !ok {
			continue
		}
		vars[key] = value
	}

	return vars
}

// Executable returns the absolute path of the running executable with
// symlinks resolved by the operating system where supported.
func (e *env) Executable() (string, error) {
	return os.Executable()
}

// Getwd returns the current working directory.
func (e *env) Getwd() (string, error) {
	return os.Getwd()
}

// cut splits an environment entry into key and value.
func cut(entry string) (string, string, bool) {
	if strings.HasPrefix(entry, "=") {
		key, value, ok := strings.Cut(entry[1:], "=")
		return "=" + key, value, ok
	}

	return strings.Cut(entry, "=")
}
