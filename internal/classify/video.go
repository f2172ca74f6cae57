package classify

import (
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// Side-data type strings as reported by ffprobe.
const (
	sideDataDOVI             = "DOVI configuration record"
	sideDataMasteringDisplay = "Mastering display metadata"
	sideDataContentLight     = "Content light level metadata"
)

// QualityBucket maps heights up to MaxHeight (inclusive) to Label.
type QualityBucket struct {
	MaxHeight int
	Label     string
}

// QualityBuckets is evaluated top to bottom; the first bucket whose
// MaxHeight is not exceeded wins.
var QualityBuckets = []QualityBucket{
	{480, "480p"},
	{720, "720p"},
	{1080, "1080p"},
	{1440, "1440p"},
	{2160, "2160p"},
	{4320, "8K"},
}

// Video classifies one video stream. Every field has a default, so a sparse
// record still yields a usable track.
func Video(rec media.RawStreamRecord) media.VideoTrack {
	return media.VideoTrack{
		TrackID:  rec.Index,
		Language: orDefault(rec.Language, media.Unknown),
		Title:    orDefault(rec.Title, untitled),
		Codec:    rec.CodecName,
		IsDV:     IsDV(rec),
		IsHDR:    IsHDR(rec),
		IsSDR:    IsSDR(rec),
		IsAVC:    rec.IsAVC,
		HDRType:  HDRType(rec),
		Quality:  Quality(rec.Height),
		BitDepth: BitDepth(rec),
	}
}

// IsDV reports a Dolby Vision configuration record on the stream, or a
// profile 8 stream described as Dolby Vision by its HDR format text.
func IsDV(rec media.RawStreamRecord) bool {
	if rec.SideDataType == sideDataDOVI {
		return true
	}
	for _, sd := range rec.SideData {
		if sd.Type == sideDataDOVI {
			return true
		}
	}
	return strings.Contains(rec.HDRFormat, "Dolby Vision") &&
		rec.DVVersionMajor == 1 && rec.DVProfile == 8
}

// norm trims and lowercases a color tag before comparison.
func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// IsHDR reports a PQ transfer or BT.2020 primaries with the BT.2020
// non-constant-luminance matrix.
func IsHDR(rec media.RawStreamRecord) bool {
	return norm(rec.ColorTransfer) == "smpte2084" ||
		(norm(rec.ColorPrimaries) == "bt2020" && norm(rec.ColorSpace) == "bt2020nc")
}

// IsSDR reports BT.709 transfer and primaries. It is not the complement of
// IsHDR: a stream may be neither.
func IsSDR(rec media.RawStreamRecord) bool {
	transfer, primaries := norm(rec.ColorTransfer), norm(rec.ColorPrimaries)
	return transfer == "bt709" && primaries == "bt709" &&
		!(transfer == "smpte2084" || primaries == "bt2020")
}

// HDRType scans the side-data list in order. Each matching entry overwrites
// the previous result, so the last relevant entry decides.
func HDRType(rec media.RawStreamRecord) string {
	hdrType := ""
	for _, sd := range rec.SideData {
		switch sd.Type {
		case sideDataMasteringDisplay:
			hdrType = "HDR"
			tc := rec.TransferCharacteristics
			if tc == "" {
				tc = sd.TransferCharacteristics
			}
			switch tc {
			case "arib-std-b67":
				hdrType = "HLG"
			case "smpte2084":
				hdrType = "HDR10"
			}
		case sideDataContentLight:
			hdrType = "HDR10"
		}
	}
	return hdrType
}

// Quality buckets a frame height into a resolution label. A missing height
// yields "Unknown"; heights above every bucket render as "{h}p".
func Quality(height int) string {
	if height <= 0 {
		return media.Unknown
	}
	for _, b := range QualityBuckets {
		if height <= b.MaxHeight {
			return b.Label
		}
	}
	return strconv.Itoa(height) + "p"
}

// BitDepth prefers bits_per_raw_sample and falls back to bits_per_sample.
// A zero or unparsable value counts as absent.
func BitDepth(rec media.RawStreamRecord) string {
	if n := leadingInt(rec.BitsPerRawSample); n > 0 {
		return strconv.Itoa(n) + "-bit"
	}
	if rec.BitsPerSample > 0 {
		return strconv.Itoa(rec.BitsPerSample) + "-bit"
	}
	return ""
}
