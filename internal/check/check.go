// Package check provides the system diagnostics behind the check command and
// the dependency validation (CheckDeps) run before batch work for ffprobe,
// ffmpeg and mkvpropedit.
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/muxlabel/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFFprobeNotFound     = errors.New("ffprobe not found")
	ErrFFmpegNotFound      = errors.New("ffmpeg not found")
	ErrMkvpropeditNotFound = errors.New("mkvpropedit not found")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// Needs selects which external tools an operation requires. ffprobe is
// always required.
type Needs struct {
	FFmpeg      bool
	Mkvpropedit bool
}

// Swapped in tests.
var (
	lookPath = exec.LookPath
	output   = func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}
)

type tool struct {
	name        string
	path        string
	versionFlag string
	missing     error
}

func tools(cfg *config.Config) []tool {
	return []tool{
		{"ffprobe", cfg.FFprobePath, "-version", ErrFFprobeNotFound},
		{"ffmpeg", cfg.FFmpegPath, "-version", ErrFFmpegNotFound},
		{"mkvpropedit", cfg.MkvpropeditPath, "--version", ErrMkvpropeditNotFound},
	}
}

// RunCheck prints the availability and version of every external tool.
// Informational only; it reports how many tools are missing.
func RunCheck(cfg *config.Config, log Logger) int {
	log.Info("=== System Check ===")
	missing := 0
	for _, t := range tools(cfg) {
		if !checkTool(t, log) {
			missing++
		}
	}
	if missing == 0 {
		log.Success("All tools available")
	}
	return missing
}

func checkTool(t tool, log Logger) bool {
	resolved, err := lookPath(t.path)
	if err != nil {
		log.Error("%s not found (%s)", t.name, t.path)
		return false
	}
	out, err := output(resolved, t.versionFlag)
	if err != nil {
		log.Warn("%s found at %s but %s failed: %v", t.name, resolved, t.versionFlag, err)
		return true
	}
	log.Success("%s: %s", t.name, firstLine(string(out)))
	return true
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// CheckDeps verifies the tools an operation needs resolve to executables.
// Returns the sentinel for the first missing tool, wrapped with its path.
func CheckDeps(cfg *config.Config, needs Needs) error {
	for _, t := range tools(cfg) {
		switch t.name {
		case "ffmpeg":
			if !needs.FFmpeg {
				continue
			}
		case "mkvpropedit":
			if !needs.Mkvpropedit {
				continue
			}
		}
		if _, err := lookPath(t.path); err != nil {
			return fmt.Errorf("%w: %s", t.missing, t.path)
		}
	}
	return nil
}
