package classify

import (
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// FormatRule pairs a predicate on the lowercased codec name with the audio
// format label it yields. Rules are evaluated in order by [AudioType];
// first match wins.
type FormatRule struct {
	Name   string
	Match  func(codec string) bool
	Format string
}

func contains(sub string) func(string) bool {
	return func(codec string) bool { return strings.Contains(codec, sub) }
}

// FormatRules is the ordered audio format table. The Dolby Digital rule
// compares "ac3" exactly so that "eac3" falls through to DDP.
var FormatRules = []FormatRule{
	{"dolby-digital", func(c string) bool { return strings.Contains(c, "ac-3") || c == "ac3" }, "DD"},
	{"dolby-digital-plus", func(c string) bool { return c == "eac3" || strings.Contains(c, "eac-3") }, "DDP"},
	{"dts-hd-ma", func(c string) bool {
		return strings.Contains(c, "dts") && (strings.Contains(c, "hd") || strings.Contains(c, "ma"))
	}, "DTS-HD MA"},
	{"dts", contains("dts"), "DTS"},
	{"truehd", contains("truehd"), "TrueHD"},
	{"aac", contains("aac"), "AAC"},
	{"opus", contains("opus"), "OPUS"},
	{"flac", contains("flac"), "FLAC"},
	{"mp3", contains("mp3"), "MP3"},
}

// channelLayouts holds the non-trivial channel count labels.
var channelLayouts = map[int]string{
	1: "1.0",
	2: "2.0",
	6: "5.1",
	8: "7.1",
}

// Audio classifies one audio stream.
func Audio(rec media.RawStreamRecord) media.AudioTrack {
	return media.AudioTrack{
		TrackID:       rec.Index,
		Title:         orDefault(rec.Title, untitled),
		Channels:      max(rec.Channels, 0),
		Language:      orDefault(rec.Language, media.Unknown),
		Codec:         rec.CodecName,
		Bitrate:       BitrateKbps(rec.BitRate),
		AudioType:     AudioType(rec.CodecName),
		ChannelConfig: ChannelConfig(rec.Channels),
	}
}

// AudioType maps a codec name to its format family. An empty codec yields
// "Unknown" and an unrecognised one yields "".
func AudioType(codec string) string {
	if codec == "" {
		return media.Unknown
	}
	c := strings.ToLower(codec)
	for _, r := range FormatRules {
		if r.Match(c) {
			return r.Format
		}
	}
	return ""
}

// ChannelConfig renders a channel count as a speaker layout label.
func ChannelConfig(channels int) string {
	if label, ok := channelLayouts[channels]; ok {
		return label
	}
	return strconv.Itoa(channels) + ".0"
}

// BitrateKbps converts ffprobe's bit_rate string (bits/s) to kbps. Only the
// leading integer is read; absent or unparsable input yields 0.
func BitrateKbps(bitRate string) float64 {
	return float64(leadingInt(bitRate)) / 1000
}
