package naming

import (
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// Defaults for the credit tag appended to every filename.
const (
	DefaultCredit   = "Ionicboy"
	DefaultReleaser = "FrameStor"
)

// Synthesizer produces normalized filenames. It holds no mutable state and
// is safe for concurrent use.
type Synthesizer struct {
	Credit          string
	DefaultReleaser string
}

// New returns a Synthesizer; empty arguments select the package defaults.
func New(credit, defaultReleaser string) *Synthesizer {
	if credit == "" {
		credit = DefaultCredit
	}
	if defaultReleaser == "" {
		defaultReleaser = DefaultReleaser
	}
	return &Synthesizer{Credit: credit, DefaultReleaser: defaultReleaser}
}

// Synthesize returns the normalized filename for info.
func (s *Synthesizer) Synthesize(info *media.MediaFileInfo) string {
	return s.Compose(s.Parse(info))
}

// Compose assembles f into a filename. Remuxes drop the provider tag, put
// the HDR label before the bit depth and name the codec family instead of
// the encoder.
//
//	Title (Year) SxxEyy Res OTT Source Modifiers BitDepth HDR Codec [Audio] (Releaser-Credit).ext
//	Title (Year) SxxEyy Res Source Modifiers HDR BitDepth CODEC [Audio] (Releaser-Credit).ext
func (s *Synthesizer) Compose(f Fields) string {
	parts := []string{f.Title}
	if f.Year != "" {
		parts = append(parts, "("+f.Year+")")
	}
	parts = append(parts, f.Episode, f.Resolution)

	mods := strings.Join(f.Modifiers, " ")
	if f.IsRemux {
		parts = append(parts, f.SourceType, mods, f.HDR, f.BitDepth, f.Codec)
	} else {
		parts = append(parts, f.OTT, f.SourceType, mods, f.BitDepth, f.HDR, f.Codec)
	}

	parts = append(parts, "["+f.Audio+"]", "("+f.Releaser+"-"+s.Credit+")")

	return cleanup(strings.Join(nonEmpty(parts), " ")) + f.Ext
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
