package probe

import "github.com/backmassage/muxlabel/internal/media"

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename       string
	NbStreams      int
	FormatName     string
	FormatLongName string
	Duration       float64
	Size           int64
	BitRate        int64
	Tags           map[string]string
}

// ProbeResult is the fully parsed output of a single ffprobe JSON call.
// Streams keep ffprobe's index order.
type ProbeResult struct {
	Format  FormatInfo
	Streams []media.RawStreamRecord
}

// CountKind returns how many streams have the given codec type.
func (p *ProbeResult) CountKind(kind string) int {
	n := 0
	for i := range p.Streams {
		if p.Streams[i].CodecType == kind {
			n++
		}
	}
	return n
}
