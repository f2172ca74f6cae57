package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/language"
	"github.com/backmassage/muxlabel/internal/media"
)

const maxCellWidth = 60

// TrackRow is one line of the per-file track table.
type TrackRow struct {
	ID       int
	Kind     string
	Language string
	Details  string
	Current  string
	Proposed string
}

// TrackRows flattens info's tracks in video, audio, subtitle order and pairs
// each with its proposed title (matched by track ID).
func TrackRows(info *media.MediaFileInfo, proposed []media.RenameTrackEntry) []TrackRow {
	byID := make(map[int]string, len(proposed))
	for _, e := range proposed {
		byID[e.TrackID] = e.NewTitle
	}

	rows := make([]TrackRow, 0, info.TrackCount())
	for _, t := range info.VideoTracks {
		details := joinNonEmpty(t.Quality, strings.ToUpper(t.Codec), t.BitDepth, t.HDRType)
		rows = append(rows, TrackRow{t.TrackID, media.KindVideo, langCell(t.Language), details, t.Title, byID[t.TrackID]})
	}
	for _, t := range info.AudioTracks {
		details := joinNonEmpty(t.AudioType, t.ChannelConfig, bitrateOrEmpty(t.Bitrate))
		rows = append(rows, TrackRow{t.TrackID, media.KindAudio, langCell(t.Language), details, t.Title, byID[t.TrackID]})
	}
	for _, t := range info.SubtitleTracks {
		details := ""
		if t.IsSDH == "Yes" {
			details = "SDH"
		}
		rows = append(rows, TrackRow{t.TrackID, media.KindSubtitle, langCell(t.Language), details, t.Title, byID[t.TrackID]})
	}
	return rows
}

// langCell shows the table name for known tags and the raw tag otherwise.
func langCell(code string) string {
	if language.Known(code) {
		return language.Resolve(code)
	}
	return code
}

func bitrateOrEmpty(kbps float64) string {
	if kbps <= 0 {
		return ""
	}
	return FormatBitrateLabel(kbps)
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// PrintFileHeader prints the file name with its size and duration.
func PrintFileHeader(w io.Writer, info *media.MediaFileInfo) {
	fmt.Fprintf(w, "%s (%s, %s)\n", info.FileName, FormatBytes(info.Size), FormatDuration(info.Duration))
	if info.OTTSource != "" || info.DownloadType != "" {
		fmt.Fprintf(w, "  Source: %s\n", joinNonEmpty(info.OTTSource, info.DownloadType))
	}
}

// PrintTrackTable prints rows as an aligned table.
func PrintTrackTable(w io.Writer, rows []TrackRow) {
	headers := []string{"ID", "Type", "Lang", "Details", "Current Title", "New Title"}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{strconv.Itoa(r.ID), r.Kind, r.Language, r.Details, r.Current, r.Proposed}
	}
	printTable(w, headers, cells)
}

// NameRow pairs a current file name with its proposed replacement.
type NameRow struct {
	Current  string
	Proposed string
}

// PrintNameTable prints current → proposed file names. Unchanged names are
// marked with "=".
func PrintNameTable(w io.Writer, rows []NameRow) {
	for _, r := range rows {
		marker := "→"
		if r.Current == r.Proposed {
			marker = "="
		}
		fmt.Fprintf(w, "  %s\n  %s %s\n\n", r.Current, marker, r.Proposed)
	}
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if n := len(c); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	header := formatRow(headers, widths)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  "+strings.Repeat("─", len(header)-2))
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, c := range cells {
		if len(c) > widths[i] {
			c = c[:widths[i]-1] + "…"
		}
		b.WriteString("  ")
		if i == len(cells)-1 {
			b.WriteString(c)
		} else {
			fmt.Fprintf(&b, "%-*s", widths[i], c)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
