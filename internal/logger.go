package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

const skipNumStackFrames = 3

type handler struct {
	slog.Handler

	ModName string
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.Handler.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	_, file, line, ok := runtime.Caller(skipNumStackFrames)
	if ok {
		r.AddAttrs(slog.String("caller", fmt.Sprintf("%s:%d", relativePath(file, h.ModName), line)))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{
		Handler: h.Handler.WithAttrs(attrs),
		ModName: h.ModName,
	}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{
		Handler: h.Handler.WithGroup(name),
		ModName: h.ModName,
	}
}

// NewLogger creates a text logger writing to w that drops records below the
// given level and tags every record with the file and line that emitted it.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	modName := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		modName = moduleName(info.Main.Path)
	}

	return slog.New(&handler{
		ModName: modName,
		Handler: slog.NewTextHandler(
			w,
			&slog.HandlerOptions{
				Level: level,
			},
		)},
	)
}

// moduleName returns the last element of a module path.
func moduleName(modPath string) string {
	modSplit := strings.Split(modPath, "/")
	return modSplit[len(modSplit)-1]
}

// relativePath returns the path of file relative to the module directory, or
// its base name if the module directory is not part of the path.
func relativePath(file, modName string) string {
	if modName != "" {
		if idx := strings.Index(file, modName+"/"); idx != -1 {
			return file[idx+len(modName)+1:]
		}
	}
	return filepath.Base(file)
}
