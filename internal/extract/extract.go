// Package extract turns a probe result into a [media.MediaFileInfo]: it
// reads the provider and download type from the filename and classifies
// every stream.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/backmassage/muxlabel/internal/classify"
	"github.com/backmassage/muxlabel/internal/media"
	"github.com/backmassage/muxlabel/internal/probe"
)

// OTTSources are provider tokens checked against the uppercased filename.
// The first contained token wins.
var OTTSources = []string{"AMZN", "NF", "DSNP", "HULU", "HMAX", "ATVP", "HBO"}

// DownloadTypes are release-type tokens, same matching as [OTTSources].
var DownloadTypes = []string{"WEB-DL", "WEBRIP", "BLURAY", "BDRIP", "BRRIP", "DVDRIP", "HDTV", "WEBDL"}

// Prober is the probing dependency of [Extractor].
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.ProbeResult, error)
}

// Extractor probes and classifies files.
type Extractor struct {
	prober Prober
}

// New returns an Extractor backed by p.
func New(p Prober) *Extractor {
	return &Extractor{prober: p}
}

// File probes path and classifies its streams. A probe failure is returned
// as-is; classification itself cannot fail.
func (e *Extractor) File(ctx context.Context, path string) (media.MediaFileInfo, error) {
	pr, err := e.prober.Probe(ctx, path)
	if err != nil {
		return media.MediaFileInfo{}, err
	}
	return Extract(path, pr), nil
}

// Extract builds the MediaFileInfo for path from an already parsed probe
// result. Streams that are not video, audio or subtitle are ignored.
func Extract(path string, pr *probe.ProbeResult) media.MediaFileInfo {
	name := filepath.Base(path)
	upper := strings.ToUpper(name)

	info := media.MediaFileInfo{
		FileName:     name,
		FilePath:     path,
		OTTSource:    firstContained(upper, OTTSources),
		DownloadType: firstContained(upper, DownloadTypes),
	}
	if pr == nil {
		return info
	}
	info.Size = pr.Format.Size
	info.Duration = pr.Format.Duration

	for i := range pr.Streams {
		rec := pr.Streams[i]
		switch rec.CodecType {
		case media.KindVideo:
			info.VideoTracks = append(info.VideoTracks, classify.Video(rec))
		case media.KindAudio:
			info.AudioTracks = append(info.AudioTracks, classify.Audio(rec))
		case media.KindSubtitle:
			info.SubtitleTracks = append(info.SubtitleTracks, classify.Subtitle(rec))
		}
	}
	return info
}

func firstContained(s string, tokens []string) string {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return tok
		}
	}
	return ""
}
