package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/backmassage/muxlabel/internal/media"
)

// DefaultBinary is used when no ffprobe path is configured.
const DefaultBinary = "ffprobe"

type commandFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Prober runs ffprobe against media files. The zero value is not usable;
// construct one with [New].
type Prober struct {
	binary string
	run    commandFunc
}

// New returns a Prober that invokes binary (or "ffprobe" when empty).
func New(binary string) *Prober {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Prober{binary: binary, run: runCommand}
}

// Binary returns the ffprobe executable this prober invokes.
func (p *Prober) Binary() string { return p.binary }

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result. A failure covers the whole file.
func (p *Prober) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	out, err := p.run(ctx, p.binary,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	pr, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return pr, nil
}

// runCommand executes name and returns stdout. On failure the tool's stderr
// is folded into the error so callers can show the underlying message.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename       string            `json:"filename"`
	NbStreams      int               `json:"nb_streams"`
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	Duration       string            `json:"duration"`
	Size           string            `json:"size"`
	BitRate        string            `json:"bit_rate"`
	Tags           map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Index                   int               `json:"index"`
	CodecName               string            `json:"codec_name"`
	CodecType               string            `json:"codec_type"`
	Width                   int               `json:"width"`
	Height                  int               `json:"height"`
	BitRate                 string            `json:"bit_rate"`
	BitsPerRawSample        string            `json:"bits_per_raw_sample"`
	BitsPerSample           int               `json:"bits_per_sample"`
	ColorTransfer           string            `json:"color_transfer"`
	ColorPrimaries          string            `json:"color_primaries"`
	ColorSpace              string            `json:"color_space"`
	TransferCharacteristics string            `json:"transfer_characteristics"`
	SideDataType            string            `json:"side_data_type"`
	SideDataList            []ffprobeSideData `json:"side_data_list"`
	HDRFormat               string            `json:"hdr_format"`
	DVVersionMajor          int               `json:"dv_version_major"`
	DVProfile               int               `json:"dv_profile"`
	IsAVC                   flexBool          `json:"is_avc"`
	Channels                int               `json:"channels"`
	Tags                    map[string]string `json:"tags"`
}

type ffprobeSideData struct {
	SideDataType            string `json:"side_data_type"`
	TransferCharacteristics string `json:"transfer_characteristics"`
	DVVersionMajor          int    `json:"dv_version_major"`
	DVProfile               int    `json:"dv_profile"`
}

// flexBool accepts both JSON booleans and the "true"/"false" strings that
// ffprobe emits for flags such as is_avc.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	*b = flexBool(s == "true" || s == "1")
	return nil
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Format: convertFormat(&raw.Format),
	}
	for i := range raw.Streams {
		pr.Streams = append(pr.Streams, convertStream(&raw.Streams[i]))
	}
	return pr
}

func convertFormat(f *ffprobeFormat) FormatInfo {
	return FormatInfo{
		Filename:       f.Filename,
		NbStreams:      f.NbStreams,
		FormatName:     f.FormatName,
		FormatLongName: f.FormatLongName,
		Duration:       parseFloat(f.Duration),
		Size:           parseInt64(f.Size),
		BitRate:        parseInt64(f.BitRate),
		Tags:           f.Tags,
	}
}

func convertStream(s *ffprobeStream) media.RawStreamRecord {
	rec := media.RawStreamRecord{
		Index:                   s.Index,
		CodecName:               s.CodecName,
		CodecType:               s.CodecType,
		Language:                s.Tags["language"],
		Title:                   s.Tags["title"],
		SDH:                     s.Tags["SDH"],
		ColorTransfer:           s.ColorTransfer,
		ColorPrimaries:          s.ColorPrimaries,
		ColorSpace:              s.ColorSpace,
		TransferCharacteristics: s.TransferCharacteristics,
		SideDataType:            s.SideDataType,
		HDRFormat:               s.HDRFormat,
		DVVersionMajor:          s.DVVersionMajor,
		DVProfile:               s.DVProfile,
		IsAVC:                   bool(s.IsAVC),
		Width:                   s.Width,
		Height:                  s.Height,
		Channels:                s.Channels,
		BitRate:                 s.BitRate,
		BitsPerRawSample:        s.BitsPerRawSample,
		BitsPerSample:           s.BitsPerSample,
	}

	for _, sd := range s.SideDataList {
		rec.SideData = append(rec.SideData, media.SideData{
			Type:                    sd.SideDataType,
			TransferCharacteristics: sd.TransferCharacteristics,
		})
		// ffprobe reports the Dolby Vision record fields inside the side-data
		// entry rather than on the stream.
		if rec.DVVersionMajor == 0 && sd.DVVersionMajor != 0 {
			rec.DVVersionMajor = sd.DVVersionMajor
			rec.DVProfile = sd.DVProfile
		}
	}
	return rec
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
