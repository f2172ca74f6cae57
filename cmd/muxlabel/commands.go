package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backmassage/muxlabel/internal/batch"
	"github.com/backmassage/muxlabel/internal/check"
	"github.com/backmassage/muxlabel/internal/display"
	"github.com/backmassage/muxlabel/internal/session"
)

const pathArgs = "<file|dir> [file|dir...]"

// infoCmd prints every file's tracks with the titles rename-tracks would
// write.
func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info " + pathArgs,
		Short: "Show classified tracks and proposed titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{}); err != nil {
				return err
			}
			svc := a.service()
			report, err := a.load(cmd.Context(), svc, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, info := range a.session.Files() {
				fmt.Fprintln(out)
				display.PrintFileHeader(out, &info)
				display.PrintTrackTable(out, display.TrackRows(&info, svc.Titles.Entries(&info)))
			}
			return failed(report)
		},
	}
}

// titlesCmd prints only the synthesized titles, one track per line.
func (a *app) titlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "titles " + pathArgs,
		Short: "Print the synthesized track titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{}); err != nil {
				return err
			}
			svc := a.service()
			report, err := a.load(cmd.Context(), svc, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, info := range a.session.Files() {
				fmt.Fprintln(out, info.FileName)
				for _, e := range svc.Titles.Entries(&info) {
					fmt.Fprintf(out, "  %d: %s\n", e.TrackID, e.NewTitle)
				}
			}
			return failed(report)
		},
	}
}

// namesCmd previews the synthesized file names without renaming.
func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names " + pathArgs,
		Short: "Preview the synthesized file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{}); err != nil {
				return err
			}
			svc := a.service()
			report, err := a.load(cmd.Context(), svc, args)
			if err != nil {
				return err
			}
			infos := a.session.Files()
			names := svc.PlanNames(infos)
			rows := make([]display.NameRow, len(infos))
			for i := range infos {
				rows[i] = display.NameRow{Current: infos[i].FileName, Proposed: names[i]}
			}
			display.PrintNameTable(cmd.OutOrStdout(), rows)
			return failed(report)
		},
	}
}

func (a *app) renameTracksCmd() *cobra.Command {
	var overrides []string
	cmd := &cobra.Command{
		Use:   "rename-tracks " + pathArgs,
		Short: "Write synthesized titles into MKV tracks with mkvpropedit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseTitleOverrides(overrides)
			if err != nil {
				return err
			}
			if err := check.CheckDeps(a.cfg, check.Needs{Mkvpropedit: true}); err != nil {
				return err
			}
			svc := a.service()
			extracted, err := a.load(cmd.Context(), svc, args)
			if err != nil {
				return err
			}
			a.applyOverrides(parsed)
			renamed := svc.RenameTracksAll(cmd.Context(), a.session.Files())
			return failed(extracted, renamed)
		},
	}
	cmd.Flags().StringArrayVarP(&overrides, "title", "t", nil,
		"Manual title as ID=TITLE (stream index); applied to every file that has the track")
	return cmd
}

func (a *app) renameFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename-files " + pathArgs,
		Short: "Rename files to their synthesized names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{}); err != nil {
				return err
			}
			svc := a.service()
			extracted, err := a.load(cmd.Context(), svc, args)
			if err != nil {
				return err
			}
			renamed := svc.RenameFilesAll(cmd.Context(), a.session.Files())
			return failed(extracted, renamed)
		},
	}
}

// addPropsCmd needs no probe; credits come from --muxed-by and
// --telegram-channel.
func (a *app) addPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-props " + pathArgs,
		Short: "Tag files with Muxed_By and Telegram_channel using ffmpeg",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{FFmpeg: true}); err != nil {
				return err
			}
			paths, err := batch.Expand(args)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("no .mkv or .mp4 files found")
			}
			report := a.service().AddPropsAll(cmd.Context(), paths, a.cfg.MuxedBy, a.cfg.TelegramChannel)
			return failed(report)
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report ffprobe, ffmpeg and mkvpropedit availability",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if missing := check.RunCheck(a.cfg, a.log); missing > 0 {
				return fmt.Errorf("%d tool(s) missing", missing)
			}
			return nil
		},
	}
}

// titleOverride is one parsed --title value.
type titleOverride struct {
	trackID int
	title   string
}

// parseTitleOverrides parses ID=TITLE values. An empty TITLE clears the
// override, which restores the synthesized title.
func parseTitleOverrides(values []string) ([]titleOverride, error) {
	out := make([]titleOverride, 0, len(values))
	for _, v := range values {
		id, title, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --title %q: want ID=TITLE", v)
		}
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid --title %q: track id must be a non-negative integer", v)
		}
		out = append(out, titleOverride{trackID: n, title: title})
	}
	return out, nil
}

func (a *app) applyOverrides(overrides []titleOverride) {
	for _, info := range a.session.Files() {
		p := info.FilePath
		for _, o := range overrides {
			err := a.session.SetTitle(p, o.trackID, o.title)
			switch {
			case err == nil:
				a.log.Debug(a.cfg.Verbose, "%s: track %d title set to %q", filepath.Base(p), o.trackID, o.title)
			case errors.Is(err, session.ErrUnknownTrack):
				a.log.Warn("%s: no track %d, --title ignored", filepath.Base(p), o.trackID)
			default:
				a.log.Warn("%v", err)
			}
		}
	}
}
