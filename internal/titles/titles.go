// Package titles composes the pipe-delimited track titles written into the
// container. A track's manual override always wins over synthesis.
package titles

import (
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/language"
	"github.com/backmassage/muxlabel/internal/media"
)

// DefaultMuxer is the credit label appended to every synthesized title.
const DefaultMuxer = "Ionicboy"

const sep = " | "

// Synthesizer builds track titles with a fixed credit label.
type Synthesizer struct {
	Muxer string
}

// New returns a Synthesizer crediting muxer, or [DefaultMuxer] when empty.
func New(muxer string) *Synthesizer {
	if muxer == "" {
		muxer = DefaultMuxer
	}
	return &Synthesizer{Muxer: muxer}
}

// Video renders quality, provider, release type, codec and the dynamic
// range group, skipping empty parts.
func (s *Synthesizer) Video(t media.VideoTrack, info *media.MediaFileInfo) string {
	parts := make([]string, 0, 6)
	if t.Quality != "" {
		parts = append(parts, t.Quality)
	}
	if info != nil && info.OTTSource != "" {
		parts = append(parts, info.OTTSource)
	}
	if info != nil && info.DownloadType != "" {
		parts = append(parts, info.DownloadType)
	}
	if t.Codec != "" {
		parts = append(parts, strings.ToUpper(t.Codec))
	}
	if hdr := RangeGroup(t); hdr != "" {
		parts = append(parts, hdr)
	}
	if s.Muxer != "" {
		parts = append(parts, s.Muxer)
	}
	return strings.Join(parts, sep)
}

// RangeGroup joins the true dynamic range flags as "DV+HDR+SDR".
func RangeGroup(t media.VideoTrack) string {
	var flags []string
	if t.IsDV {
		flags = append(flags, "DV")
	}
	if t.IsHDR {
		flags = append(flags, "HDR")
	}
	if t.IsSDR {
		flags = append(flags, "SDR")
	}
	return strings.Join(flags, "+")
}

// Audio renders "{Language} (US) | {Format} {Channels}[ | N kbps] | muxer".
// The language label comes from capitalizing the raw tag rather than from
// the language table.
func (s *Synthesizer) Audio(t media.AudioTrack) string {
	lang := "English (US)"
	if t.Language != "" {
		lang = capitalize(t.Language) + " (US)"
	}
	format := t.AudioType
	if format == "" {
		format = "AAC"
	}
	channels := t.ChannelConfig
	if channels == "" {
		channels = "2.0"
	}

	var b strings.Builder
	b.WriteString(lang)
	b.WriteString(sep)
	b.WriteString(format + " " + channels)
	if t.Bitrate != 0 {
		b.WriteString(sep)
		b.WriteString(FormatKbps(t.Bitrate))
	}
	b.WriteString(sep)
	b.WriteString(s.Muxer)
	return b.String()
}

// Subtitle renders "{Resolved language}[ SDH] | muxer".
func (s *Synthesizer) Subtitle(t media.SubtitleTrack) string {
	name := language.Resolve(t.Language)
	if t.IsSDH == "Yes" {
		name += " SDH"
	}
	return name + sep + s.Muxer
}

// Entries returns one rename entry per track: video first, then audio, then
// subtitles. Track IDs are copied from the tracks and never invented.
func (s *Synthesizer) Entries(info *media.MediaFileInfo) []media.RenameTrackEntry {
	entries := make([]media.RenameTrackEntry, 0, info.TrackCount())
	for _, t := range info.VideoTracks {
		entries = append(entries, entry(t.TrackID, t.NewTitle, func() string { return s.Video(t, info) }))
	}
	for _, t := range info.AudioTracks {
		entries = append(entries, entry(t.TrackID, t.NewTitle, func() string { return s.Audio(t) }))
	}
	for _, t := range info.SubtitleTracks {
		entries = append(entries, entry(t.TrackID, t.NewTitle, func() string { return s.Subtitle(t) }))
	}
	return entries
}

func entry(id int, override string, synth func() string) media.RenameTrackEntry {
	title := override
	if title == "" {
		title = synth()
	}
	return media.RenameTrackEntry{TrackID: id, NewTitle: title}
}

// FormatKbps renders a kbps value without trailing zeros, e.g. "640 kbps"
// or "192.5 kbps".
func FormatKbps(kbps float64) string {
	return strconv.FormatFloat(kbps, 'f', -1, 64) + " kbps"
}

// capitalize uppercases the first letter and leaves the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}
