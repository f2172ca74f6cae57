package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/muxlabel/internal/media"
)

// Realistic ffprobe JSON for a Matroska web release with:
//   - 1 HEVC Main 10 Dolby Vision + HDR10 video stream (3840x2160)
//   - 1 E-AC-3 5.1 audio stream with a bit rate
//   - 1 SDH subtitle stream
const sampleDV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "width": 3840,
      "height": 2160,
      "bits_per_raw_sample": "10",
      "color_transfer": "smpte2084",
      "color_primaries": "bt2020",
      "color_space": "bt2020nc",
      "side_data_list": [
        { "side_data_type": "DOVI configuration record", "dv_version_major": 1, "dv_profile": 8 },
        { "side_data_type": "Mastering display metadata" },
        { "side_data_type": "Content light level metadata" }
      ],
      "tags": { "language": "eng", "title": "Main" }
    },
    {
      "index": 1,
      "codec_name": "eac3",
      "codec_type": "audio",
      "channels": 6,
      "bit_rate": "640000",
      "tags": { "language": "hin" }
    },
    {
      "index": 2,
      "codec_name": "subrip",
      "codec_type": "subtitle",
      "tags": { "language": "eng", "SDH": "Yes" }
    }
  ],
  "format": {
    "filename": "/media/Show.S01E01.2160p.NF.WEB-DL.mkv",
    "nb_streams": 3,
    "format_name": "matroska,webm",
    "format_long_name": "Matroska / WebM",
    "duration": "1437.123000",
    "size": "1234567890",
    "bit_rate": "6873456",
    "tags": { "title": "Episode 1" }
  }
}`

// Minimal H.264 file where ffprobe reports is_avc as a string.
const sampleAVC = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1280,
      "height": 720,
      "is_avc": "true",
      "color_transfer": "bt709",
      "color_primaries": "bt709"
    }
  ],
  "format": {
    "filename": "minimal.mp4",
    "nb_streams": 1,
    "duration": "10.000",
    "size": "500000"
  }
}`

func TestParseJSON_DolbyVisionFile(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleDV))
	require.NoError(t, err)

	assert.Equal(t, "/media/Show.S01E01.2160p.NF.WEB-DL.mkv", pr.Format.Filename)
	assert.Equal(t, 3, pr.Format.NbStreams)
	assert.Equal(t, 1437.123, pr.Format.Duration)
	assert.Equal(t, int64(1234567890), pr.Format.Size)
	assert.Equal(t, int64(6873456), pr.Format.BitRate)
	assert.Equal(t, "Episode 1", pr.Format.Tags["title"])

	require.Len(t, pr.Streams, 3)

	v := pr.Streams[0]
	assert.Equal(t, media.KindVideo, v.CodecType)
	assert.Equal(t, "hevc", v.CodecName)
	assert.Equal(t, 2160, v.Height)
	assert.Equal(t, "10", v.BitsPerRawSample)
	assert.Equal(t, "eng", v.Language)
	assert.Equal(t, "Main", v.Title)
	require.Len(t, v.SideData, 3)
	assert.Equal(t, "DOVI configuration record", v.SideData[0].Type)
	assert.Equal(t, 1, v.DVVersionMajor, "DV fields lifted from side data")
	assert.Equal(t, 8, v.DVProfile)

	a := pr.Streams[1]
	assert.Equal(t, "eac3", a.CodecName)
	assert.Equal(t, 6, a.Channels)
	assert.Equal(t, "640000", a.BitRate)
	assert.Equal(t, "hin", a.Language)

	s := pr.Streams[2]
	assert.Equal(t, media.KindSubtitle, s.CodecType)
	assert.Equal(t, "Yes", s.SDH)

	assert.Equal(t, 1, pr.CountKind(media.KindAudio))
	assert.Equal(t, 0, pr.CountKind("attachment"))
}

func TestParseJSON_StringFlags(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleAVC))
	require.NoError(t, err)
	require.Len(t, pr.Streams, 1)
	assert.True(t, pr.Streams[0].IsAVC)
	assert.Empty(t, pr.Streams[0].SideData)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"streams": [`))
	require.Error(t, err)
}

func TestProbe_UsesConfiguredBinary(t *testing.T) {
	p := New("/opt/bin/ffprobe")
	var gotName string
	var gotArgs []string
	p.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte(sampleAVC), nil
	}

	pr, err := p.Probe(context.Background(), "/media/minimal.mp4")
	require.NoError(t, err)
	assert.Len(t, pr.Streams, 1)
	assert.Equal(t, "/opt/bin/ffprobe", gotName)
	assert.Equal(t, "/media/minimal.mp4", gotArgs[len(gotArgs)-1])
	assert.Contains(t, gotArgs, "-show_streams")
}

func TestProbe_FailureCarriesToolMessage(t *testing.T) {
	p := New("")
	assert.Equal(t, DefaultBinary, p.Binary())
	p.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exit status 1: Invalid data found when processing input")
	}

	_, err := p.Probe(context.Background(), "broken.mkv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.mkv")
	assert.Contains(t, err.Error(), "Invalid data found")
}
