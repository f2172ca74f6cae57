package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/backmassage/muxlabel/internal/media"
)

// Status messages reported on success.
const (
	MsgPropsAdded = "Properties added and file renamed successfully"
)

// Logger is the subset of the application logger the runner needs.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RenameTracksRequest asks for new titles on tracks of one MKV file.
type RenameTracksRequest struct {
	FilePath string                   `validate:"required"`
	Tracks   []media.RenameTrackEntry `validate:"required,min=1"`
}

// RenameFileRequest renames OldPath to NewName within the same directory.
type RenameFileRequest struct {
	OldPath string `validate:"required"`
	NewName string `validate:"required"`
}

// AddPropsRequest writes the credit tags into a file. Empty values fall
// back to the runner's defaults.
type AddPropsRequest struct {
	FilePath        string `validate:"required"`
	MuxedBy         string
	TelegramChannel string
}

// Result is the per-file outcome of any operation.
type Result struct {
	FilePath string
	Success  bool
	Message  string
	Command  string // rendered command line, when a tool was (or would be) run
	Error    error
}

func (r Result) fail(err error) Result {
	r.Success = false
	r.Error = err
	return r
}

// Options configures a [Runner].
type Options struct {
	MkvpropeditPath string
	FFmpegPath      string
	MuxedBy         string
	TelegramChannel string
	DryRun          bool
	Verbose         bool
}

// Runner executes the rename and property operations. It is safe for
// concurrent use as long as its Executor is.
type Runner struct {
	opts     Options
	exec     Executor
	log      Logger
	validate *validator.Validate
}

// NewRunner returns a Runner. A nil exec selects [CommandExecutor].
func NewRunner(opts Options, exec Executor, log Logger) *Runner {
	if opts.MkvpropeditPath == "" {
		opts.MkvpropeditPath = DefaultMkvpropedit
	}
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = DefaultFFmpeg
	}
	if exec == nil {
		exec = CommandExecutor{Verbose: opts.Verbose}
	}
	return &Runner{
		opts:     opts,
		exec:     exec,
		log:      log,
		validate: validator.New(),
	}
}

// checkRequest validates req and maps a failed field onto its sentinel.
func (r *Runner) checkRequest(req any) error {
	err := r.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	switch verrs[0].Field() {
	case "FilePath", "OldPath":
		return ErrNoFilePath
	case "Tracks":
		return ErrNoTracks
	case "NewName":
		return ErrEmptyName
	}
	return verrs
}

// RenameTracks sets the track names of one MKV file in a single
// mkvpropedit call, so either every edit lands or none does.
func (r *Runner) RenameTracks(ctx context.Context, req RenameTracksRequest) Result {
	res := Result{FilePath: req.FilePath}
	if err := r.checkRequest(req); err != nil {
		return res.fail(err)
	}
	if !strings.EqualFold(filepath.Ext(req.FilePath), ".mkv") {
		return res.fail(ErrNotMKV)
	}
	if err := ctx.Err(); err != nil {
		return res.fail(err)
	}

	path, err := filepath.Abs(req.FilePath)
	if err != nil {
		return res.fail(err)
	}

	args, applied, skipped := BuildRenameTracks(r.opts.MkvpropeditPath, path, req.Tracks)
	for _, s := range skipped {
		r.log.Warn("Skipping track %d: empty title", s.TrackID)
	}
	if applied == 0 {
		return res.fail(ErrNoTracks)
	}
	res.Command = CommandLine(args)

	if r.opts.DryRun {
		res.Success = true
		res.Message = fmt.Sprintf("%d track(s) would be renamed", applied)
		return res
	}

	r.log.Debug(r.opts.Verbose, "Executing: %s", res.Command)
	out := r.exec.Execute(ctx, args)
	if out.Err != nil {
		detail := strings.TrimSpace(out.Stdout + "\n" + out.Stderr)
		if MatchNoSuchTrack(detail) {
			return res.fail(fmt.Errorf("mkvpropedit: track id out of range: %s", detail))
		}
		if detail != "" {
			return res.fail(fmt.Errorf("mkvpropedit: %w: %s", out.Err, detail))
		}
		return res.fail(fmt.Errorf("mkvpropedit: %w", out.Err))
	}
	for _, w := range StderrWarnings(out.Stderr) {
		r.log.Warn("%s: %s", filepath.Base(path), w)
	}

	res.Success = true
	res.Message = fmt.Sprintf("%d track(s) renamed successfully", applied)
	return res
}

// RenameFile moves OldPath to NewName in the same directory. An existing
// different file at the target is never overwritten.
func (r *Runner) RenameFile(ctx context.Context, req RenameFileRequest) Result {
	res := Result{FilePath: req.OldPath}
	if err := r.checkRequest(req); err != nil {
		return res.fail(err)
	}
	if filepath.Base(req.NewName) != req.NewName {
		return res.fail(fmt.Errorf("new name %q must not contain a directory", req.NewName))
	}
	if err := ctx.Err(); err != nil {
		return res.fail(err)
	}

	oldPath := filepath.Clean(req.OldPath)
	newPath := filepath.Join(filepath.Dir(oldPath), req.NewName)
	if newPath == oldPath {
		res.Success = true
		res.Message = "Already named " + req.NewName
		return res
	}

	oldInfo, err := os.Stat(oldPath)
	if err != nil {
		return res.fail(fmt.Errorf("failed to rename %s: %w", oldPath, err))
	}
	// A case-only rename on a case-insensitive filesystem finds the source
	// itself at the target path.
	if newInfo, err := os.Lstat(newPath); err == nil && !os.SameFile(oldInfo, newInfo) {
		return res.fail(fmt.Errorf("%w: %s", ErrTargetExists, newPath))
	}

	if r.opts.DryRun {
		res.Success = true
		res.Message = fmt.Sprintf("Would rename %s to %s", oldPath, newPath)
		return res
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return res.fail(fmt.Errorf("failed to rename %s: %w", oldPath, err))
	}
	res.Success = true
	res.Message = fmt.Sprintf("Successfully renamed %s to %s", oldPath, newPath)
	return res
}

// AddProps stream-copies the file with the credit tags set, then replaces
// the original with the tagged copy.
func (r *Runner) AddProps(ctx context.Context, req AddPropsRequest) Result {
	res := Result{FilePath: req.FilePath}
	if err := r.checkRequest(req); err != nil {
		return res.fail(err)
	}
	if err := ctx.Err(); err != nil {
		return res.fail(err)
	}

	muxedBy := req.MuxedBy
	if muxedBy == "" {
		muxedBy = r.opts.MuxedBy
	}
	channel := req.TelegramChannel
	if channel == "" {
		channel = r.opts.TelegramChannel
	}

	path, err := filepath.Abs(req.FilePath)
	if err != nil {
		return res.fail(propsErr(err))
	}
	if _, err := os.Stat(path); err != nil {
		return res.fail(propsErr(err))
	}

	tmp := ModifiedPath(path)
	args := BuildAddProps(r.opts.FFmpegPath, path, tmp, muxedBy, channel, r.opts.Verbose)
	res.Command = CommandLine(args)

	if r.opts.DryRun {
		res.Success = true
		res.Message = "Properties would be added"
		return res
	}

	r.log.Debug(r.opts.Verbose, "Executing: %s", res.Command)
	out := r.exec.Execute(ctx, args)
	if out.Err != nil {
		_ = os.Remove(tmp)
		if detail := strings.TrimSpace(out.Stderr); detail != "" {
			return res.fail(propsErr(fmt.Errorf("%w: %s", out.Err, detail)))
		}
		return res.fail(propsErr(out.Err))
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return res.fail(propsErr(err))
	}

	res.Success = true
	res.Message = MsgPropsAdded
	return res
}

func propsErr(err error) error {
	return fmt.Errorf("failed to add custom properties: %w", err)
}
