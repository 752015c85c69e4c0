package envcheck

import (
	"fmt"
	"io"
	"log/slog"
	"text/template"

	"golang.org/x/sync/errgroup"

	"github.com/brunoribeiro127/envcheck/internal/model"
	"github.com/brunoribeiro127/envcheck/internal/system"
)

const (
	// unknownValue is printed in place of a value that cannot be determined.
	unknownValue = "<unknown>"

	// debugTemplate is the template for the debug command.
	debugTemplate = `=== CI Debug Info ===
Current working directory: {{.WorkDir}}
Executable: {{.Executable}}
Directory contents:
{{- if .EntriesUnreadable}}
  (unreadable)
{{- else}}
{{- range .Entries}}
  - {{.}}
{{- end}}
{{- end}}

Go version: {{.GoVersion}}
Platform: {{.Platform}}

Environment variables (relevant):
{{- range .Vars}}
  {{.Key}}: {{if .Value}}{{.Redacted}}{{else}}(not set){{end}}
{{- end}}

Looking for files:
{{- range .Paths}}
  {{if .Err}}⚠️  {{.Path}} unreadable{{else if .Exists}}✅ {{.Path}} exists{{else}}❌ {{.Path}} missing{{end}}
{{- end}}

=== End Debug Info ===
`

	// reportTemplate is the template for the report command.
	reportTemplate = `=== Environment Report ===
Current working directory: {{.WorkDir}}

--- Vendor Environment Variables ---
{{range .Vars -}}
{{.}}
{{end}}
--- Shopify Credentials ---
SHOPIFY_SHOP_URL: {{with .Credentials.ShopURL}}{{.}}{{else}}(not set){{end}}
SHOPIFY_ACCESS_TOKEN: {{if .Credentials.AccessToken}}{{.Credentials.MaskedToken}}{{else}}(not set){{end}}
{{if .Credentials.IsComplete -}}
✅ Both Shopify environment variables are set
   Shop URL: {{.Credentials.ShopURL}}
   Token length: {{.Credentials.TokenLength}} characters
   Token starts with: {{.Credentials.TokenPrefix}}...
{{- else -}}
❌ Missing Shopify environment variables:
{{- range .Credentials.Missing}}
   - {{.}} is not set
{{- end}}
{{- end}}

--- Report Complete ---
`
)

// DefaultDebugPaths are the pipeline entry points checked by the debug command
// when no path is given.
//
//nolint:gochecknoglobals // fixed set of paths
var DefaultDebugPaths = []string{
	"printify_analytics_scheduler.py",
	"schedulers/printify_analytics_scheduler.py",
	"printify_analytics_sync.py",
}

// pathCheck is the result of checking a single path.
type pathCheck struct {
	Path   string
	Exists bool
	Err    error
}

// Inspector is an application that reports on the process environment.
type Inspector struct {
	buildInfo system.BuildInfo
	env       system.Environment
	fs        system.FileSystem
	runtime   system.Runtime
	stdErr    io.Writer
	stdOut    io.Writer
}

// NewInspector creates a new Inspector application.
func NewInspector(
	buildInfo system.BuildInfo,
	env system.Environment,
	fs system.FileSystem,
	runtime system.Runtime,
	stdErr io.Writer,
	stdOut io.Writer,
) *Inspector {
	return &Inspector{
		buildInfo: buildInfo,
		env:       env,
		fs:        fs,
		runtime:   runtime,
		stdErr:    stdErr,
		stdOut:    stdOut,
	}
}

// DebugEnvironment prints the information needed to debug a CI job: the
// working directory and its contents, the running executable, the Go runtime,
// the pipeline environment variables with their secrets redacted, and whether
// the given paths exist. If no path is given, DefaultDebugPaths are checked.
// The paths are checked in parallel, launching go routines up to the given
// parallelism. A path that cannot be inspected is reported, not returned as an
// error.
func (i *Inspector) DebugEnvironment(parallelism int, paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultDebugPaths
	}

	wd := i.workDir()

	exe, err := i.env.Executable()
	if err != nil {
		slog.Default().Warn("error getting executable path", "err", err)
		exe = unknownValue
	}

	entries, listErr := i.fs.ListDir(".")

	vars := make([]model.EnvVar, 0, len(model.PipelineVars))
	for _, key := range model.PipelineVars {
		value, _ := i.env.Get(key)
		vars = append(vars, model.NewEnvVar(key, value))
	}

	data := struct {
		WorkDir           string
		Executable        string
		Entries           []string
		EntriesUnreadable bool
		GoVersion         string
		Platform          string
		Vars              []model.EnvVar
		Paths             []pathCheck
	}{
		WorkDir:           wd,
		Executable:        exe,
		Entries:           entries,
		EntriesUnreadable: listErr != nil,
		GoVersion:         i.runtime.Version(),
		Platform:          i.runtime.Platform(),
		Vars:              vars,
		Paths:             i.checkPaths(parallelism, paths),
	}

	tmplParsed := template.Must(template.New("debug").Parse(debugTemplate))
	if err = tmplParsed.Execute(i.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// PrintShortVersion prints the module version of the running executable to the
// standard output (or another defined io.Writer), or an error if the build info
// cannot be read.
func (i *Inspector) PrintShortVersion() error {
	info, err := i.readBuildInfo()
	if err != nil {
		return err
	}

	fmt.Fprintln(i.stdOut, info.version.String())

	return nil
}

// PrintVersion prints the module version, Go version and platform of the
// running executable to the standard output (or another defined io.Writer), or
// an error if the build info cannot be read.
func (i *Inspector) PrintVersion() error {
	info, err := i.readBuildInfo()
	if err != nil {
		return err
	}

	fmt.Fprintf(i.stdOut, "%s (%s %s)\n", info.version.String(), info.goVersion, info.platform)

	return nil
}

// ReportEnvironment prints the working directory, the environment variables
// whose key contains one of the vendor names with sensitive values masked, and
// whether the Shopify credentials are set. Missing variables are reported in
// the output, never as an error; an error is only returned if the output
// cannot be written.
func (i *Inspector) ReportEnvironment() error {
	data := struct {
		WorkDir     string
		Vars        []model.EnvVar
		Credentials model.ShopifyCredentials
	}{
		WorkDir:     i.workDir(),
		Vars:        model.FilterByVendor(i.env.All(), model.Vendors),
		Credentials: model.NewShopifyCredentials(i.env.Get),
	}

	tmplParsed := template.Must(template.New("report").Parse(reportTemplate))
	if err := tmplParsed.Execute(i.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// checkPaths checks whether the given paths exist. The results keep the order
// of the given paths.
func (i *Inspector) checkPaths(parallelism int, paths []string) []pathCheck {
	checks := make([]pathCheck, len(paths))

	grp := new(errgroup.Group)
	grp.SetLimit(max(parallelism, 1))

	for idx, path := range paths {
		grp.Go(func() error {
			exists, err := i.fs.Exists(path)
			checks[idx] = pathCheck{Path: path, Exists: exists, Err: err}
			return nil
		})
	}

	_ = grp.Wait()

	return checks
}

// workDir returns the current working directory, or a placeholder if it cannot
// be determined.
func (i *Inspector) workDir() string {
	wd, err := i.env.Getwd()
	if err != nil {
		slog.Default().Warn("error getting working directory", "err", err)
		return unknownValue
	}
	return wd
}
