package model

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	// MaskedValueLength is the number of characters of a sensitive value that
	// are kept when it is masked.
	MaskedValueLength = 20
	// maskSuffix is appended to a value that was cut short.
	maskSuffix = "..."
	// redactedValue replaces a value that must not be shown at all.
	redactedValue = "***"
)

// Vendors are the vendor names an environment variable key must contain to be
// reported.
//
//nolint:gochecknoglobals // fixed set of vendor names
var Vendors = []string{"SHOPIFY", "META", "PRINTIFY", "NOTION"}

// PipelineVars are the variables the analytics pipeline jobs depend on.
//
//nolint:gochecknoglobals // fixed set of variable names
var PipelineVars = []string{
	"NOTION_TOKEN",
	"PRINTIFY_API_TOKEN",
	"PRINTIFY_ANALYTICS_DB_ID",
	"PYTHONPATH",
}

// sensitiveMarkers are the key fragments that mark a value as a secret.
//
//nolint:gochecknoglobals // fixed set of markers
var sensitiveMarkers = []string{"TOKEN", "SECRET"}

// EnvVar represents an environment variable.
type EnvVar struct {
	Key   string
	Value string
}

// NewEnvVar creates a new environment variable.
func NewEnvVar(key, value string) EnvVar {
	return EnvVar{Key: key, Value: value}
}

// IsSensitive checks if the key contains "TOKEN" or "SECRET", ignoring case.
func (e EnvVar) IsSensitive() bool {
	return containsAny(e.Key, sensitiveMarkers)
}

// MatchesVendor checks if the key contains any of the given vendor names,
// ignoring case.
func (e EnvVar) MatchesVendor(vendors []string) bool {
	return containsAny(e.Key, vendors)
}

// DisplayValue returns the value to be printed. Sensitive values longer than
// MaskedValueLength characters are cut to that length and suffixed with
// "...", everything else is returned verbatim.
func (e EnvVar) DisplayValue() string {
	if !e.IsSensitive() || utf8.RuneCountInString(e.Value) <= MaskedValueLength {
		return e.Value
	}

	return Truncate(e.Value, MaskedValueLength) + maskSuffix
}

// Redacted returns "***" if the key contains "TOKEN" or "ID", or the value
// verbatim otherwise.
func (e EnvVar) Redacted() string {
	if strings.Contains(e.Key, "TOKEN") || strings.Contains(e.Key, "ID") {
		return redactedValue
	}
	return e.Value
}

// String returns the string representation of the environment variable.
func (e EnvVar) String() string {
	return e.Key + ": " + e.DisplayValue()
}

// FilterByVendor returns the environment variables whose key contains any of
// the given vendor names, sorted by key.
func FilterByVendor(env map[string]string, vendors []string) []EnvVar {
	vars := make([]EnvVar, 0, len(env))
	for key, value := range env {
		if v := NewEnvVar(key, value); v.MatchesVendor(vendors) {
			vars = append(vars, v)
		}
	}

	SortEnvVars(vars)
	return vars
}

// SortEnvVars sorts environment variables by key.
func SortEnvVars(vars []EnvVar) {
	slices.SortFunc(vars, func(a, b EnvVar) int {
		return strings.Compare(a.Key, b.Key)
	})
}

// Truncate returns the first n characters of s. Characters are counted as
// runes, so multi-byte characters are never split.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}

// containsAny checks if s contains any of the given substrings, ignoring case.
func containsAny(s string, substrs []string) bool {
	upper := strings.ToUpper(s)
	for _, sub := range substrs {
		if strings.Contains(upper, strings.ToUpper(sub)) {
			return true
		}
	}
	return false
}
