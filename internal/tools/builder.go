package tools

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// Default executables, looked up on PATH.
const (
	DefaultMkvpropedit = "mkvpropedit"
	DefaultFFmpeg      = "ffmpeg"
)

// BuildRenameTracks constructs a single mkvpropedit invocation editing every
// usable entry. Matroska track numbers are 1-based, so stream index N is
// addressed as track:N+1. Entries with an empty title are returned in
// skipped and left out of the command.
func BuildRenameTracks(binary, file string, entries []media.RenameTrackEntry) (args []string, applied int, skipped []media.RenameTrackEntry) {
	args = make([]string, 0, 2+len(entries)*4)
	args = append(args, binary, file)

	for _, e := range entries {
		if e.TrackID < 0 || strings.TrimSpace(e.NewTitle) == "" {
			skipped = append(skipped, e)
			continue
		}
		args = append(args,
			"--edit", "track:"+strconv.Itoa(e.TrackID+1),
			"--set", "name="+e.NewTitle,
		)
		applied++
	}
	return args, applied, skipped
}

// ModifiedPath returns the temporary output path for a property edit:
// the input's base name without extension plus "_modified.mkv", in the same
// directory.
func ModifiedPath(file string) string {
	base := filepath.Base(file)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(file), stem+"_modified.mkv")
}

// BuildAddProps constructs the ffmpeg stream-copy command that writes the
// Muxed_By and Telegram_channel container tags into output. All streams are
// mapped so nothing beyond the default selection is dropped.
func BuildAddProps(binary, file, output, muxedBy, channel string, verbose bool) []string {
	args := make([]string, 0, 24)
	args = append(args, binary, "-hide_banner", "-nostdin", "-y")

	if verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	args = append(args,
		"-i", file,
		"-map", "0",
		"-c", "copy",
		"-metadata", "Muxed_By="+muxedBy,
		"-metadata", "Telegram_channel="+channel,
		output,
	)
	return args
}

// CommandLine renders args for display, quoting arguments that contain
// whitespace or quotes.
func CommandLine(args []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			parts[i] = strconv.Quote(a)
		} else {
			parts[i] = a
		}
	}
	return strings.Join(parts, " ")
}
