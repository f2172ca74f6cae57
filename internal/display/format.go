package display

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable IEC size ("512 B", "1.5 KiB",
// "700 MiB", "4.7 GiB").
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display (e.g. "- 1.2 GiB").
func FormatBytesWithSign(bytes int64) string {
	sign := ""
	if bytes > 0 {
		sign = "+ "
	} else if bytes < 0 {
		sign = "- "
		bytes = -bytes
	}
	return sign + FormatBytes(bytes)
}

// FormatBitrateLabel returns a short label for a bitrate in kbps, e.g.
// "640 kbps", "192.5 kbps" or "12.4 Mbps". Zero renders as "-".
func FormatBitrateLabel(kbps float64) string {
	switch {
	case kbps <= 0:
		return "-"
	case kbps < 1000:
		return strconv.FormatFloat(kbps, 'f', -1, 64) + " kbps"
	}
	return fmt.Sprintf("%.1f Mbps", kbps/1000)
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	total := int64(seconds + 0.5)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
