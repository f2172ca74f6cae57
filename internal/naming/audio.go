package naming

import (
	"regexp"
	"strings"

	"github.com/backmassage/muxlabel/internal/language"
	"github.com/backmassage/muxlabel/internal/media"
)

// DefaultAudio is used when neither tracks nor the filename describe audio.
const DefaultAudio = "English AAC 2.0"

var (
	reBracketGroup = regexp.MustCompile(`\[([^\]]*)\]`)

	reAudioKeyword = regexp.MustCompile(`(?i)\b(?:hindi|english|tamil|telugu|malayalam|kannada|bengali|marathi|punjabi|` +
		`japanese|korean|spanish|french|german|italian|dual|multi|` +
		`aac|ddp?|e?ac3|dts|truehd|atmos|flac|opus|mp3)`)
)

// audioInfo renders the bracketed audio segment of a filename.
//
// A bracket naming both Hindi and English is kept verbatim. Otherwise each
// track yields "{Language} {Format} {Channels}" joined by " + ". Without
// track data a bracket that already describes audio is salvaged, and as a
// last resort [DefaultAudio] is used.
func audioInfo(fileName string, tracks []media.AudioTrack) string {
	groups := reBracketGroup.FindAllStringSubmatch(fileName, -1)

	for _, g := range groups {
		lower := strings.ToLower(g[1])
		if strings.Contains(lower, "hindi") && strings.Contains(lower, "english") {
			return g[1]
		}
	}

	if len(tracks) > 0 {
		parts := make([]string, 0, len(tracks))
		for _, t := range tracks {
			parts = append(parts, trackAudioLabel(t))
		}
		return strings.Join(parts, " + ")
	}

	for _, g := range groups {
		if reAudioKeyword.MatchString(g[1]) {
			return strings.TrimSpace(g[1])
		}
	}
	return DefaultAudio
}

func trackAudioLabel(t media.AudioTrack) string {
	format := t.AudioType
	if format == "" {
		format = "AAC"
	}
	channels := t.ChannelConfig
	if channels == "" {
		channels = "2.0"
	}
	return language.BaseName(t.Language) + " " + format + " " + channels
}
