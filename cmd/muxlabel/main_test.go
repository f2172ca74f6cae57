package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/muxlabel/internal/batch"
	"github.com/backmassage/muxlabel/internal/config"
	"github.com/backmassage/muxlabel/internal/logging"
	"github.com/backmassage/muxlabel/internal/media"
	"github.com/backmassage/muxlabel/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Success(string, ...interface{})     {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (nopLogger) Debug(bool, string, ...interface{}) {}

type fakeExtractor struct{}

func (fakeExtractor) File(_ context.Context, path string) (media.MediaFileInfo, error) {
	if filepath.Base(path) == "broken.mkv" {
		return media.MediaFileInfo{}, errors.New("invalid data found when processing input")
	}
	return media.MediaFileInfo{FileName: filepath.Base(path), FilePath: path}, nil
}

func newTestApp() *app {
	return &app{v: viper.New(), session: session.New()}
}

func TestParseTitleOverrides(t *testing.T) {
	got, err := parseTitleOverrides([]string{"1=English - DDP 5.1", " 2 =", "0=a=b"})
	require.NoError(t, err)
	assert.Equal(t, []titleOverride{
		{trackID: 1, title: "English - DDP 5.1"},
		{trackID: 2, title: ""},
		{trackID: 0, title: "a=b"},
	}, got)

	for _, bad := range []string{"nope", "x=title", "-1=title"} {
		_, err := parseTitleOverrides([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestVersionCommand(t *testing.T) {
	a := newTestApp()
	root := a.rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "muxlabel dev\n", out.String())
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	a := newTestApp()
	root := a.rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--concurrency", "0", "check"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency")
}

func TestLoad_ReplacesSession(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mkv", "broken.mkv", "b.mp4"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	a := newTestApp()
	a.session.Put(media.MediaFileInfo{FilePath: "/stale/old.mkv"})
	svc := &batch.Service{Extractor: fakeExtractor{}, Concurrency: 2, Log: nopLogger{}}

	report, err := a.load(context.Background(), svc, []string{dir})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)

	files := a.session.Files()
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.mkv"), files[0].FilePath)
	assert.Equal(t, filepath.Join(dir, "b.mp4"), files[1].FilePath)
}

func TestLoad_NothingExtracted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.mkv"), nil, 0o644))

	a := newTestApp()
	svc := &batch.Service{Extractor: fakeExtractor{}, Log: nopLogger{}}
	_, err := a.load(context.Background(), svc, []string{dir})
	assert.ErrorIs(t, err, errFailures)
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	var logs bytes.Buffer
	log, err := logging.New(&cfg, &logs, &logs)
	require.NoError(t, err)

	a := newTestApp()
	a.cfg, a.log = &cfg, log
	a.session.Put(media.MediaFileInfo{
		FilePath:    "/in/a.mkv",
		AudioTracks: []media.AudioTrack{{TrackID: 1}},
	})

	a.applyOverrides([]titleOverride{{trackID: 1, title: "Commentary"}, {trackID: 9, title: "x"}})

	assert.Equal(t, "Commentary", a.session.Files()[0].AudioTracks[0].NewTitle)
	assert.Contains(t, logs.String(), "a.mkv: no track 9, --title ignored")
}

func TestExecute_ClosesLogFileOnFailure(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "muxlabel.log")
	a := newTestApp()

	code := a.execute(context.Background(), []string{
		"--color", "never",
		"--log-file", logFile,
		"--ffprobe", "/nonexistent/ffprobe",
		"--ffmpeg", "/nonexistent/ffmpeg",
		"--mkvpropedit", "/nonexistent/mkvpropedit",
		"check",
	})
	assert.Equal(t, 1, code)
	require.NotNil(t, a.log)

	// Lines logged after execute must not reach the closed file.
	a.log.Info("after exit")

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "3 tool(s) missing")
	assert.NotContains(t, string(b), "after exit")
}
