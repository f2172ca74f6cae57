package classify

import "github.com/backmassage/muxlabel/internal/media"

// Subtitle classifies one subtitle stream. The SDH tag is passed through
// unchanged and defaults to "No".
func Subtitle(rec media.RawStreamRecord) media.SubtitleTrack {
	return media.SubtitleTrack{
		TrackID:  rec.Index,
		IsSDH:    orDefault(rec.SDH, "No"),
		Title:    orDefault(rec.Title, untitled),
		Language: orDefault(rec.Language, media.Unknown),
	}
}
