package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// Fields holds everything Parse derives from one file before composition.
// Empty strings mean "omit this segment".
type Fields struct {
	Title      string
	Year       string
	Episode    string // "S01E02" for series, empty for movies
	Resolution string
	IsUHD      bool
	IsRemux    bool
	SourceType string
	OTT        string
	Modifiers  []string
	BitDepth   string
	HDR        string
	Codec      string
	Audio      string
	Releaser   string
	Ext        string
}

// IsSeries reports whether a season/episode token was found.
func (f Fields) IsSeries() bool { return f.Episode != "" }

var (
	reYear       = regexp.MustCompile(`(?:^|\D)((?:19|20)\d{2})(?:\D|$)`)
	reReleaser   = regexp.MustCompile(`-([^-.\s]+)$`)
	reResolution = regexp.MustCompile(`(?i)\b(\d{3,4}p)\b`)
)

// Parse extracts the naming fields from info's original filename merged
// with its classified tracks. It never fails; missing pieces fall back to
// "Unknown", the configured default releaser, or are omitted.
func (s *Synthesizer) Parse(info *media.MediaFileInfo) Fields {
	name := info.FileName
	base, ext := splitExt(name)
	spaced := sepsToSpaces(base)
	scan := strings.ToUpper(name) + " " + strings.ToUpper(sepsToSpaces(name))

	var f Fields

	if m := reSeries.FindStringSubmatch(base); m != nil {
		f.Episode = "S" + m[1] + "E" + m[2]
	}
	if m := reYear.FindStringSubmatch(base); m != nil {
		f.Year = m[1]
	}

	f.Title = extractTitle(spaced)
	if f.IsSeries() {
		f.Title = dropTrailingYear(f.Title, f.Year)
	}
	if f.Title == "" {
		f.Title = media.Unknown
	}

	f.IsUHD = uhdRule.matches(scan)
	isBluRay := blurayRule.matches(scan)
	switch {
	case f.IsUHD && isBluRay:
		f.SourceType = "UHD BluRay"
	case isBluRay:
		f.SourceType = "BluRay"
	default:
		f.SourceType = firstLabel(WebRules, scan)
	}
	f.OTT = firstLabel(OTTRules, scan)

	var video *media.VideoTrack
	if len(info.VideoTracks) > 0 {
		video = &info.VideoTracks[0]
	}

	f.Resolution = resolveResolution(base, video, f.IsUHD)
	f.Modifiers = allLabels(ModifierRules, scan)
	f.IsRemux = remuxRule.matches(scan)
	f.BitDepth = firstLabel(BitDepthRules, scan)
	f.HDR = hdrLabel(video, scan, f.Resolution)
	f.Codec = codecLabel(video, scan, f.Resolution, f.IsRemux)
	f.Audio = audioInfo(name, info.AudioTracks)

	f.Releaser = s.DefaultReleaser
	if m := reReleaser.FindStringSubmatch(strings.TrimSpace(stripBrackets(base))); m != nil {
		f.Releaser = m[1]
	}

	switch strings.ToLower(ext) {
	case ".mkv", ".mp4":
		f.Ext = strings.ToLower(ext)
	default:
		f.Ext = ".mkv"
	}
	return f
}

// containerExts are the extensions stripped before parsing. Any other dot
// segment (".x264-GRP" in a bare release name) is part of the name.
var containerExts = map[string]bool{
	".mkv": true, ".mp4": true, ".m4v": true, ".avi": true,
	".mov": true, ".ts": true, ".m2ts": true, ".webm": true, ".wmv": true,
}

func splitExt(name string) (base, ext string) {
	ext = filepath.Ext(name)
	if !containerExts[strings.ToLower(ext)] {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// extractTitle runs [TitleRules] over the separator-normalized base name.
func extractTitle(spaced string) string {
	for _, rule := range TitleRules {
		loc := rule.Pattern.FindStringSubmatchIndex(spaced)
		if loc == nil {
			continue
		}
		return cleanTitle(rule.Extract(spaced, loc))
	}
	return cleanTitle(spaced)
}

// resolveResolution prefers a literal resolution token, then the first
// video track's bucket, then a default by UHD flag.
func resolveResolution(base string, video *media.VideoTrack, uhd bool) string {
	if m := reResolution.FindStringSubmatch(base); m != nil {
		return strings.ToLower(m[1])
	}
	if video != nil && video.Quality != "" && video.Quality != media.Unknown {
		return video.Quality
	}
	if uhd {
		return "2160p"
	}
	return "1080p"
}

// hdrLabel combines the track flags with filename hints. SDR is only spelled
// out for 2160p files.
func hdrLabel(video *media.VideoTrack, scan, resolution string) string {
	dv := dvRule.matches(scan)
	hdr := hdrRule.matches(scan)
	if video != nil {
		dv = dv || video.IsDV
		hdr = hdr || video.IsHDR
	}
	switch {
	case dv && hdr:
		return "DoVi HDR"
	case dv:
		return "DoVi"
	case hdr:
		return "HDR"
	case resolution == "2160p":
		return "SDR"
	}
	return ""
}

// codecLabel renders x265/x264, or HEVC/AVC for remuxes. When neither the
// stream nor the filename names a codec, 2160p defaults to HEVC.
func codecLabel(video *media.VideoTrack, scan, resolution string, remux bool) string {
	family := ""
	if video != nil {
		family = streamCodecFamily(video.Codec)
	}
	if family != codecHEVC {
		if label := firstLabel(CodecRules, scan); label == codecHEVC || family == "" {
			family = label
		}
	}
	if family == "" {
		family = codecAVC
		if resolution == "2160p" {
			family = codecHEVC
		}
	}

	switch {
	case remux:
		return family
	case family == codecHEVC:
		return "x265"
	default:
		return "x264"
	}
}
