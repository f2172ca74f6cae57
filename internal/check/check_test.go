package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/muxlabel/internal/config"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...interface{}) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Info(f string, a ...interface{})    { l.add("INFO", f, a...) }
func (l *recordingLogger) Success(f string, a ...interface{}) { l.add("SUCCESS", f, a...) }
func (l *recordingLogger) Warn(f string, a ...interface{})    { l.add("WARN", f, a...) }
func (l *recordingLogger) Error(f string, a ...interface{})   { l.add("ERROR", f, a...) }

// stubTools makes only the named binaries resolvable.
func stubTools(t *testing.T, present ...string) {
	t.Helper()
	oldLook, oldOut := lookPath, output
	t.Cleanup(func() { lookPath, output = oldLook, oldOut })

	ok := map[string]bool{}
	for _, p := range present {
		ok[p] = true
	}
	lookPath = func(file string) (string, error) {
		if ok[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
	output = func(name string, args ...string) ([]byte, error) {
		if name == "/usr/bin/mkvpropedit" {
			return []byte("mkvpropedit v80.0 ('Roundabout') 64-bit\n"), nil
		}
		return []byte(name + " version 6.1\nbuilt with gcc\n"), nil
	}
}

func TestCheckDeps(t *testing.T) {
	cfg := config.DefaultConfig()

	tests := []struct {
		name    string
		present []string
		needs   Needs
		wantErr error
	}{
		{"all present", []string{"ffprobe", "ffmpeg", "mkvpropedit"}, Needs{FFmpeg: true, Mkvpropedit: true}, nil},
		{"ffprobe missing", []string{"ffmpeg", "mkvpropedit"}, Needs{}, ErrFFprobeNotFound},
		{"ffmpeg not needed", []string{"ffprobe"}, Needs{}, nil},
		{"ffmpeg missing", []string{"ffprobe", "mkvpropedit"}, Needs{FFmpeg: true}, ErrFFmpegNotFound},
		{"mkvpropedit missing", []string{"ffprobe", "ffmpeg"}, Needs{Mkvpropedit: true}, ErrMkvpropeditNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubTools(t, tt.present...)
			err := CheckDeps(&cfg, tt.needs)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunCheck(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("all available", func(t *testing.T) {
		stubTools(t, "ffprobe", "ffmpeg", "mkvpropedit")
		log := &recordingLogger{}
		assert.Equal(t, 0, RunCheck(&cfg, log))
		assert.Contains(t, log.lines, "SUCCESS ffprobe: /usr/bin/ffprobe version 6.1")
		assert.Contains(t, log.lines, "SUCCESS mkvpropedit: mkvpropedit v80.0 ('Roundabout') 64-bit")
		assert.Contains(t, log.lines, "SUCCESS All tools available")
	})

	t.Run("missing tool counted", func(t *testing.T) {
		stubTools(t, "ffprobe")
		log := &recordingLogger{}
		assert.Equal(t, 2, RunCheck(&cfg, log))
		assert.Contains(t, log.lines, "ERROR mkvpropedit not found (mkvpropedit)")
	})

	t.Run("version failure still available", func(t *testing.T) {
		stubTools(t, "ffprobe", "ffmpeg", "mkvpropedit")
		output = func(string, ...string) ([]byte, error) { return nil, errors.New("exit status 1") }
		log := &recordingLogger{}
		assert.Equal(t, 0, RunCheck(&cfg, log))
		assert.Contains(t, log.lines, "WARN ffmpeg found at /usr/bin/ffmpeg but -version failed: exit status 1")
	})
}
