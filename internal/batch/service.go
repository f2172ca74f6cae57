// Package batch applies the naming core to many files at once: bounded
// concurrent fan-out, per-file failure isolation and summary reporting.
package batch

import (
	"context"
	"path/filepath"

	"github.com/backmassage/muxlabel/internal/display"
	"github.com/backmassage/muxlabel/internal/media"
	"github.com/backmassage/muxlabel/internal/naming"
	"github.com/backmassage/muxlabel/internal/titles"
	"github.com/backmassage/muxlabel/internal/tools"
)

// Operation names used in reports and summaries.
const (
	OpExtract      = "extract"
	OpRenameTracks = "rename-tracks"
	OpRenameFiles  = "rename-files"
	OpAddProps     = "add-props"
)

// Logger is the subset of the application logger batch needs.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Extractor probes and classifies one file.
type Extractor interface {
	File(ctx context.Context, path string) (media.MediaFileInfo, error)
}

// Tools applies edits to one file.
type Tools interface {
	RenameTracks(ctx context.Context, req tools.RenameTracksRequest) tools.Result
	RenameFile(ctx context.Context, req tools.RenameFileRequest) tools.Result
	AddProps(ctx context.Context, req tools.AddPropsRequest) tools.Result
}

// Service runs batch operations. Titles and Names must be set for the
// operations that synthesize; Extractor and Tools for those that touch
// files.
type Service struct {
	Extractor   Extractor
	Tools       Tools
	Titles      *titles.Synthesizer
	Names       *naming.Synthesizer
	Concurrency int
	Verbose     bool
	Log         Logger
}

// ExtractAll probes every path. The returned infos hold only the files that
// succeeded, in input order; the report covers all of them.
func (s *Service) ExtractAll(ctx context.Context, paths []string) ([]media.MediaFileInfo, *Report) {
	type extracted struct {
		info media.MediaFileInfo
		res  Result
	}

	out := fanOut(ctx, s.Concurrency, len(paths),
		func(ctx context.Context, i int) extracted {
			s.Log.Debug(s.Verbose, "Probing %s", paths[i])
			info, err := s.Extractor.File(ctx, paths[i])
			if err != nil {
				s.Log.Error("Cannot probe %s: %v", filepath.Base(paths[i]), err)
				return extracted{res: Result{Path: paths[i], Err: err}}
			}
			return extracted{info: info, res: Result{Path: paths[i], Success: true}}
		},
		func(i int, err error) extracted {
			return extracted{res: Result{Path: paths[i], Err: err}}
		})

	infos := make([]media.MediaFileInfo, 0, len(out))
	results := make([]Result, len(out))
	var total int64
	for i, e := range out {
		results[i] = e.res
		if e.res.Success {
			infos = append(infos, e.info)
			total += e.info.Size
		}
	}

	report := newReport(OpExtract, results)
	s.logSummary(report)
	if report.Succeeded > 0 {
		s.Log.Info("  Total size: %s", display.FormatBytes(total))
	}
	return infos, report
}

// RenameTracksAll writes the synthesized (or overridden) titles into every
// file's tracks.
func (s *Service) RenameTracksAll(ctx context.Context, infos []media.MediaFileInfo) *Report {
	results := fanOut(ctx, s.Concurrency, len(infos),
		func(ctx context.Context, i int) Result {
			info := &infos[i]
			res := s.Tools.RenameTracks(ctx, tools.RenameTracksRequest{
				FilePath: info.FilePath,
				Tracks:   s.Titles.Entries(info),
			})
			return s.fromTool(res)
		},
		func(i int, err error) Result {
			return Result{Path: infos[i].FilePath, Err: err}
		})

	report := newReport(OpRenameTracks, results)
	s.logSummary(report)
	return report
}

// PlanNames returns the target base name for every file. Names are
// synthesized and then deduplicated in input order so two files never
// claim the same target.
func (s *Service) PlanNames(infos []media.MediaFileInfo) []string {
	resolver := naming.NewCollisionResolver()
	names := make([]string, len(infos))
	for i := range infos {
		names[i] = resolver.Resolve(infos[i].FilePath, s.Names.Synthesize(&infos[i]))
	}
	return names
}

// RenameFilesAll renames every file to its synthesized name.
func (s *Service) RenameFilesAll(ctx context.Context, infos []media.MediaFileInfo) *Report {
	names := s.PlanNames(infos)

	results := fanOut(ctx, s.Concurrency, len(infos),
		func(ctx context.Context, i int) Result {
			res := s.Tools.RenameFile(ctx, tools.RenameFileRequest{
				OldPath: infos[i].FilePath,
				NewName: names[i],
			})
			return s.fromTool(res)
		},
		func(i int, err error) Result {
			return Result{Path: infos[i].FilePath, Err: err}
		})

	report := newReport(OpRenameFiles, results)
	s.logSummary(report)
	return report
}

// AddPropsAll tags every path with the credit properties. Empty values use
// the tool runner's configured defaults.
func (s *Service) AddPropsAll(ctx context.Context, paths []string, muxedBy, channel string) *Report {
	results := fanOut(ctx, s.Concurrency, len(paths),
		func(ctx context.Context, i int) Result {
			res := s.Tools.AddProps(ctx, tools.AddPropsRequest{
				FilePath:        paths[i],
				MuxedBy:         muxedBy,
				TelegramChannel: channel,
			})
			return s.fromTool(res)
		},
		func(i int, err error) Result {
			return Result{Path: paths[i], Err: err}
		})

	report := newReport(OpAddProps, results)
	s.logSummary(report)
	return report
}

func (s *Service) fromTool(res tools.Result) Result {
	name := filepath.Base(res.FilePath)
	if res.Success {
		s.Log.Success("%s: %s", name, res.Message)
		if res.Command != "" {
			s.Log.Debug(s.Verbose, "  %s", res.Command)
		}
	} else {
		s.Log.Error("%s: %v", name, res.Error)
	}
	return Result{
		Path:    res.FilePath,
		Success: res.Success,
		Message: res.Message,
		Err:     res.Error,
	}
}

func (s *Service) logSummary(r *Report) {
	s.Log.Info("==============================")
	if r.Failed > 0 {
		s.Log.Warn("Done (%s): %d succeeded, %d failed", r.Op, r.Succeeded, r.Failed)
		return
	}
	s.Log.Info("Done (%s): %d succeeded, %d failed", r.Op, r.Succeeded, r.Failed)
}
