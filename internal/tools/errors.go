package tools

import (
	"errors"
	"regexp"
	"strings"
)

// Sentinel errors for requests rejected before any tool runs.
var (
	ErrNoFilePath   = errors.New("file path is required")
	ErrNoTracks     = errors.New("at least one track with a title is required")
	ErrNotMKV       = errors.New("only MKV files are supported")
	ErrEmptyName    = errors.New("new file name is required")
	ErrTargetExists = errors.New("target file already exists")
)

// mkvpropedit prints this on success; anything else on stderr is surfaced
// as a warning.
const mkvpropeditDone = "The changes are written to the file"

var (
	reToolWarning = regexp.MustCompile(`(?m)^(?:Warning|Error):.*$`)
	reNoSuchTrack = regexp.MustCompile(`(?i)no track corresponding to the edit specification`)
)

// StderrWarnings returns the stderr lines worth showing the user after a
// successful run. The mkvpropedit completion line is dropped; when the tool
// printed no tagged Warning/Error lines, any remaining non-empty text is
// returned as a single entry.
func StderrWarnings(stderr string) []string {
	text := strings.TrimSpace(strings.ReplaceAll(stderr, mkvpropeditDone+".", ""))
	text = strings.TrimSpace(strings.ReplaceAll(text, mkvpropeditDone, ""))
	if text == "" {
		return nil
	}
	if tagged := reToolWarning.FindAllString(text, -1); len(tagged) > 0 {
		return tagged
	}
	return []string{text}
}

// MatchNoSuchTrack reports whether mkvpropedit rejected a track number.
func MatchNoSuchTrack(stderr string) bool {
	return reNoSuchTrack.MatchString(stderr)
}
