package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/muxlabel/internal/media"
)

func TestVideo(t *testing.T) {
	s := New("")
	info := &media.MediaFileInfo{OTTSource: "NF", DownloadType: "WEB-DL"}

	cases := []struct {
		name  string
		track media.VideoTrack
		info  *media.MediaFileInfo
		want  string
	}{
		{
			name:  "full dolby vision web release",
			track: media.VideoTrack{Quality: "2160p", Codec: "hevc", IsDV: true, IsHDR: true},
			info:  info,
			want:  "2160p | NF | WEB-DL | HEVC | DV+HDR | Ionicboy",
		},
		{
			name:  "sdr without provider",
			track: media.VideoTrack{Quality: "1080p", Codec: "h264", IsSDR: true},
			info:  &media.MediaFileInfo{},
			want:  "1080p | H264 | SDR | Ionicboy",
		},
		{
			name:  "no flags no codec",
			track: media.VideoTrack{Quality: "Unknown"},
			info:  &media.MediaFileInfo{DownloadType: "BLURAY"},
			want:  "Unknown | BLURAY | Ionicboy",
		},
		{
			name:  "nil file info",
			track: media.VideoTrack{Quality: "720p", Codec: "vp9"},
			want:  "720p | VP9 | Ionicboy",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Video(tc.track, tc.info))
		})
	}
}

func TestAudio(t *testing.T) {
	s := New("Muxer")
	cases := []struct {
		name  string
		track media.AudioTrack
		want  string
	}{
		{"with bitrate", media.AudioTrack{Language: "hin", AudioType: "DDP", ChannelConfig: "5.1", Bitrate: 640}, "Hin (US) | DDP 5.1 | 640 kbps | Muxer"},
		{"fractional bitrate", media.AudioTrack{Language: "eng", AudioType: "AAC", ChannelConfig: "2.0", Bitrate: 127.999}, "Eng (US) | AAC 2.0 | 127.999 kbps | Muxer"},
		{"defaults", media.AudioTrack{}, "English (US) | AAC 2.0 | Muxer"},
		{"unknown language tag", media.AudioTrack{Language: "Unknown", AudioType: "Unknown", ChannelConfig: "0.0"}, "Unknown (US) | Unknown 0.0 | Muxer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Audio(tc.track))
		})
	}
}

func TestSubtitle(t *testing.T) {
	s := New("")
	assert.Equal(t, "English (US) SDH | Ionicboy", s.Subtitle(media.SubtitleTrack{Language: "eng", IsSDH: "Yes"}))
	assert.Equal(t, "Korean (KR) | Ionicboy", s.Subtitle(media.SubtitleTrack{Language: "kor", IsSDH: "No"}))
	assert.Equal(t, "Unknown | Ionicboy", s.Subtitle(media.SubtitleTrack{Language: "xx", IsSDH: "No"}))
}

func TestEntries_OrderAndOverrides(t *testing.T) {
	info := &media.MediaFileInfo{
		VideoTracks:    []media.VideoTrack{{TrackID: 0, Quality: "1080p", Codec: "h264", IsSDR: true}},
		AudioTracks:    []media.AudioTrack{{TrackID: 2, Language: "eng", AudioType: "AAC", ChannelConfig: "2.0"}, {TrackID: 1, NewTitle: "Director Commentary"}},
		SubtitleTracks: []media.SubtitleTrack{{TrackID: 5, Language: "eng", IsSDH: "No"}},
	}

	got := New("").Entries(info)
	require.Len(t, got, 4)

	assert.Equal(t, media.RenameTrackEntry{TrackID: 0, NewTitle: "1080p | H264 | SDR | Ionicboy"}, got[0])
	assert.Equal(t, 2, got[1].TrackID)
	assert.Equal(t, "Eng (US) | AAC 2.0 | Ionicboy", got[1].NewTitle)
	assert.Equal(t, media.RenameTrackEntry{TrackID: 1, NewTitle: "Director Commentary"}, got[2])
	assert.Equal(t, media.RenameTrackEntry{TrackID: 5, NewTitle: "English (US) | Ionicboy"}, got[3])
}

func TestEntries_Empty(t *testing.T) {
	assert.Empty(t, New("").Entries(&media.MediaFileInfo{}))
}
