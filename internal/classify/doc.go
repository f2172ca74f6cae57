// Package classify derives track semantics from raw probe records: dynamic
// range flags, HDR type, resolution bucket and bit depth for video; format
// family, channel layout and bitrate for audio; SDH for subtitles.
//
// Classification never fails. Missing or malformed fields resolve to a
// documented default ("Unknown", "Untitled", "No", 0 or "").
package classify

import (
	"strconv"
	"strings"
)

const untitled = "Untitled"

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// leadingInt parses the leading decimal digits of s, ignoring anything
// after them. It returns 0 when s does not start with a digit.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[:end])
	return n
}
