package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/muxlabel/internal/media"
)

func sample(path string) media.MediaFileInfo {
	return media.MediaFileInfo{
		FilePath:    path,
		VideoTracks: []media.VideoTrack{{TrackID: 0}},
		AudioTracks: []media.AudioTrack{{TrackID: 1}},
	}
}

func TestPutFilesOrder(t *testing.T) {
	s := New()
	assert.False(t, s.Put(sample("/b.mkv")))
	assert.False(t, s.Put(sample("/a.mkv")))
	assert.True(t, s.Put(sample("/b.mkv")), "re-extract replaces")

	require.Equal(t, 2, s.Len())
	files := s.Files()
	assert.Equal(t, "/b.mkv", files[0].FilePath)
	assert.Equal(t, "/a.mkv", files[1].FilePath)
}

func TestSetTitle(t *testing.T) {
	s := New()
	s.Put(sample("/a.mkv"))

	require.NoError(t, s.SetTitle("/a.mkv", 1, "Custom"))
	got := s.Files()
	require.Len(t, got, 1)
	assert.Equal(t, "Custom", got[0].AudioTracks[0].NewTitle)

	assert.ErrorIs(t, s.SetTitle("/a.mkv", 7, "x"), ErrUnknownTrack)
	assert.ErrorIs(t, s.SetTitle("/zzz.mkv", 0, "x"), ErrUnknownFile)
}

func TestReExtractDropsOverrides(t *testing.T) {
	s := New()
	s.Put(sample("/a.mkv"))
	require.NoError(t, s.SetTitle("/a.mkv", 0, "Mine"))
	s.Put(sample("/a.mkv"))

	assert.Empty(t, s.Files()[0].VideoTracks[0].NewTitle)
}

func TestCopiesAreIsolated(t *testing.T) {
	s := New()
	info := sample("/a.mkv")
	s.Put(info)
	info.VideoTracks[0].NewTitle = "changed after put"

	got := s.Files()
	assert.Empty(t, got[0].VideoTracks[0].NewTitle)

	got[0].VideoTracks[0].NewTitle = "changed after read"
	assert.Empty(t, s.Files()[0].VideoTracks[0].NewTitle)
}

func TestRemoveAndClear(t *testing.T) {
	s := New()
	s.Put(sample("/a.mkv"))
	s.Put(sample("/b.mkv"))
	s.Put(sample("/c.mkv"))

	assert.True(t, s.Remove("/b.mkv"))
	assert.False(t, s.Remove("/b.mkv"))
	files := s.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "/c.mkv", files[1].FilePath)

	id, started := s.ID(), s.Started()
	assert.False(t, started.IsZero())
	s.Clear()
	assert.Zero(t, s.Len())
	assert.NotEqual(t, id, s.ID())
}

func TestConcurrentPut(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Put(sample(fmt.Sprintf("/f%02d.mkv", n)))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
