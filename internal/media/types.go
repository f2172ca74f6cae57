// Package media defines the data model shared by classification, title
// synthesis, filename synthesis and the batch collaborators.
package media

// Stream kinds as reported by ffprobe's codec_type.
const (
	KindVideo    = "video"
	KindAudio    = "audio"
	KindSubtitle = "subtitle"
)

// Unknown is the placeholder used whenever a label cannot be derived.
const Unknown = "Unknown"

// SideData is one entry of a stream's side-data list.
type SideData struct {
	Type                    string
	TransferCharacteristics string
}

// RawStreamRecord is one container stream as reported by the metadata probe.
// It is treated as immutable once decoded.
type RawStreamRecord struct {
	Index     int
	CodecName string
	CodecType string

	Language string // tags.language
	Title    string // tags.title
	SDH      string // tags.SDH

	ColorTransfer           string
	ColorPrimaries          string
	ColorSpace              string
	TransferCharacteristics string
	SideDataType            string
	SideData                []SideData
	HDRFormat               string
	DVVersionMajor          int
	DVProfile               int
	IsAVC                   bool

	Width            int
	Height           int
	Channels         int
	BitRate          string
	BitsPerRawSample string
	BitsPerSample    int
}

// VideoTrack is a classified video stream. The dynamic-range flags are
// evaluated independently and may overlap.
type VideoTrack struct {
	TrackID  int
	Language string
	Title    string
	Codec    string // empty when the probe reported none

	IsDV  bool
	IsHDR bool
	IsSDR bool
	IsAVC bool

	HDRType  string // "", "HDR", "HDR10" or "HLG"
	Quality  string
	BitDepth string // e.g. "10-bit"; empty when unknown

	NewTitle string // manual override, kept verbatim by title synthesis
}

// AudioTrack is a classified audio stream.
type AudioTrack struct {
	TrackID       int
	Title         string
	Channels      int
	Language      string
	Codec         string
	Bitrate       float64 // kbps, 0 when absent
	AudioType     string
	ChannelConfig string

	NewTitle string
}

// SubtitleTrack is a classified subtitle stream.
type SubtitleTrack struct {
	TrackID  int
	IsSDH    string // "Yes" or "No"
	Title    string
	Language string

	NewTitle string
}

// MediaFileInfo is everything extracted for one file. Track slices keep the
// container's stream order and TrackID is the container stream index.
type MediaFileInfo struct {
	FileName     string
	FilePath     string
	OTTSource    string // empty when no provider token was found
	DownloadType string // empty when no release type token was found
	Size         int64
	Duration     float64

	VideoTracks    []VideoTrack
	AudioTracks    []AudioTrack
	SubtitleTracks []SubtitleTrack
}

// TrackCount returns the total number of classified tracks.
func (m *MediaFileInfo) TrackCount() int {
	return len(m.VideoTracks) + len(m.AudioTracks) + len(m.SubtitleTracks)
}

// SetNewTitle records a manual title override for the track with the given
// stream index. It reports false when no track has that index.
func (m *MediaFileInfo) SetNewTitle(trackID int, title string) bool {
	for i := range m.VideoTracks {
		if m.VideoTracks[i].TrackID == trackID {
			m.VideoTracks[i].NewTitle = title
			return true
		}
	}
	for i := range m.AudioTracks {
		if m.AudioTracks[i].TrackID == trackID {
			m.AudioTracks[i].NewTitle = title
			return true
		}
	}
	for i := range m.SubtitleTracks {
		if m.SubtitleTracks[i].TrackID == trackID {
			m.SubtitleTracks[i].NewTitle = title
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can edit overrides without touching
// shared session state.
func (m *MediaFileInfo) Clone() MediaFileInfo {
	c := *m
	c.VideoTracks = append([]VideoTrack(nil), m.VideoTracks...)
	c.AudioTracks = append([]AudioTrack(nil), m.AudioTracks...)
	c.SubtitleTracks = append([]SubtitleTrack(nil), m.SubtitleTracks...)
	return c
}

// RenameTrackEntry is one track title edit handed to the track renamer.
type RenameTrackEntry struct {
	TrackID  int    `json:"trackId"`
	NewTitle string `json:"newTitle"`
}
