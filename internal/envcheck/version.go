package envcheck

import (
	"fmt"
	"log/slog"

	"github.com/brunoribeiro127/envcheck/internal/model"
)

// buildDetails is the subset of the build info printed by the version command.
type buildDetails struct {
	version   model.Version
	goVersion string
	platform  string
}

// readBuildInfo reads the build info embedded in the running executable. The
// platform comes from the GOOS and GOARCH build settings, falling back to the
// current runtime platform when they are not recorded.
func (i *Inspector) readBuildInfo() (buildDetails, error) {
	exe, err := i.env.Executable()
	if err != nil {
		fmt.Fprintln(i.stdErr, "❌ error locating executable")
		slog.Default().Error("error getting executable path", "err", err)
		return buildDetails{}, err
	}

	info, err := i.buildInfo.Read(exe)
	if err != nil {
		fmt.Fprintf(i.stdErr, "❌ error reading build info from %q\n", exe)
		slog.Default().Error("error reading build info", "path", exe, "err", err)
		return buildDetails{}, fmt.Errorf("read build info: %w", err)
	}

	var goos, goarch string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "GOOS":
			goos = setting.Value
		case "GOARCH":
			goarch = setting.Value
		}
	}

	platform := goos + "/" + goarch
	if goos == "" || goarch == "" {
		platform = i.runtime.Platform()
	}

	version := model.NewVersion(info.Main.Version)
	if !version.IsValid() {
		slog.Default().Debug("module version is not a semantic version", "version", version.String())
	}

	return buildDetails{
		version:   version,
		goVersion: info.GoVersion,
		platform:  platform,
	}, nil
}
