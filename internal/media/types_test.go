package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInfo() MediaFileInfo {
	return MediaFileInfo{
		FileName:       "a.mkv",
		VideoTracks:    []VideoTrack{{TrackID: 0}},
		AudioTracks:    []AudioTrack{{TrackID: 1}, {TrackID: 2}},
		SubtitleTracks: []SubtitleTrack{{TrackID: 3}},
	}
}

func TestSetNewTitle(t *testing.T) {
	info := sampleInfo()

	require.True(t, info.SetNewTitle(2, "Commentary"))
	require.True(t, info.SetNewTitle(3, "Forced"))
	assert.Equal(t, "Commentary", info.AudioTracks[1].NewTitle)
	assert.Equal(t, "Forced", info.SubtitleTracks[0].NewTitle)
	assert.Empty(t, info.AudioTracks[0].NewTitle)

	assert.False(t, info.SetNewTitle(9, "nope"))
}

func TestClone_IsIndependent(t *testing.T) {
	info := sampleInfo()
	c := info.Clone()
	c.SetNewTitle(0, "edited")

	assert.Empty(t, info.VideoTracks[0].NewTitle)
	assert.Equal(t, "edited", c.VideoTracks[0].NewTitle)
	assert.Equal(t, 4, c.TrackCount())
}
