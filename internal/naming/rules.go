package naming

import (
	"regexp"
	"strings"
)

// ParseRule pairs a compiled regex with a title extractor. Rules are
// evaluated in order by [Parse]; first match wins. Extract receives the
// separator-normalized base name and the submatch index pairs of the match.
type ParseRule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(spaced string, loc []int) string
}

var (
	reSeries = regexp.MustCompile(`(?i)S(\d{1,2})E(\d{1,2})`)

	// Movie title runs up to a year (parenthesized or bare), a resolution
	// token, a bracket group or a spaced dash.
	reMovieTitle = regexp.MustCompile(
		`^(.+?)(?:\s*\((?:19|20)\d{2}\)|\s+(?:19|20)\d{2}(?:\s|$)|\s*\b\d{3,4}[pP]\b|\s*\[|\s+-\s)`)

	reTechKeyword = regexp.MustCompile(`(?i)\b(?:\d{3,4}p|WEB-?DL|BluRay|REMUX|REMASTER)`)
)

// TitleRules is the ordered title-extraction table. First match wins.
var TitleRules = []ParseRule{
	{"Series", reSeries, func(s string, loc []int) string { return s[:loc[0]] }},
	{"Movie-delimited", reMovieTitle, func(s string, loc []int) string { return s[loc[2]:loc[3]] }},
	{"Movie-keyword", reTechKeyword, func(s string, loc []int) string { return s[:loc[0]] }},
}

// TokenRule yields Label when any of its Tokens occurs in the uppercased
// filename.
type TokenRule struct {
	Label  string
	Tokens []string
}

func (r TokenRule) matches(haystack string) bool {
	for _, tok := range r.Tokens {
		if strings.Contains(haystack, tok) {
			return true
		}
	}
	return false
}

// firstLabel returns the label of the first matching rule, or "".
func firstLabel(rules []TokenRule, haystack string) string {
	for _, r := range rules {
		if r.matches(haystack) {
			return r.Label
		}
	}
	return ""
}

// allLabels returns the labels of every matching rule in table order.
func allLabels(rules []TokenRule, haystack string) []string {
	var out []string
	for _, r := range rules {
		if r.matches(haystack) {
			out = append(out, r.Label)
		}
	}
	return out
}

var (
	uhdRule    = TokenRule{"UHD", []string{"UHD", "2160P", "4K"}}
	blurayRule = TokenRule{"BluRay", []string{"BLURAY", "BLU-RAY", "BDREMUX"}}
	remuxRule  = TokenRule{"REMUX", []string{"REMUX"}}
	dvRule     = TokenRule{"DoVi", []string{"DOVI", "DOLBY VISION"}}
	hdrRule    = TokenRule{"HDR", []string{"HDR"}}
)

// WebRules detects web release types. WEB-DL outranks WEBRip.
var WebRules = []TokenRule{
	{"WEB-DL", []string{"WEB-DL", "WEBDL"}},
	{"WEBRip", []string{"WEBRIP"}},
}

// OTTRules lists streaming provider tokens in precedence order.
var OTTRules = []TokenRule{
	{"AMZN", []string{"AMZN"}},
	{"DSNP", []string{"DSNP"}},
	{"NFLX", []string{"NFLX"}},
	{"HULU", []string{"HULU"}},
	{"ATVP", []string{"ATVP"}},
	{"HBO", []string{"HBO"}},
}

// ModifierRules are independent edition flags; every match is emitted in
// table order.
var ModifierRules = []TokenRule{
	remuxRule,
	{"REMASTERED", []string{"REMASTER"}},
	{"UNCUT", []string{"UNCUT"}},
	{"Directors Cut", []string{"DIRECTORS CUT", "DIRECTOR'S CUT", "DIRECTORSCUT"}},
	{"Theatrical", []string{"THEATRICAL"}},
}

// BitDepthRules read the encode bit depth from the filename only.
var BitDepthRules = []TokenRule{
	{"10bit", []string{"10BIT"}},
	{"8bit", []string{"8BIT"}},
}

// CodecRules detect the video codec family from the filename. HEVC is
// checked first.
var CodecRules = []TokenRule{
	{codecHEVC, []string{"HEVC", "X265", "H265", "H.265", "H 265"}},
	{codecAVC, []string{"AVC", "X264", "H264", "H.264", "H 264"}},
}

const (
	codecHEVC = "HEVC"
	codecAVC  = "AVC"
)

// streamCodecFamily maps a probed codec name to its family.
func streamCodecFamily(codec string) string {
	switch strings.ToLower(codec) {
	case "hevc", "h265":
		return codecHEVC
	case "h264", "avc":
		return codecAVC
	}
	return ""
}
