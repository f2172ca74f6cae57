package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/muxlabel/internal/batch"
	"github.com/backmassage/muxlabel/internal/check"
	"github.com/backmassage/muxlabel/internal/display"
	"github.com/backmassage/muxlabel/internal/watch"
)

// watchCmd previews titles and names for media files as they arrive under
// a directory. Nothing is renamed.
func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Preview titles and names for new files in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := check.CheckDeps(a.cfg, check.Needs{}); err != nil {
				return err
			}
			w, err := watch.New(a.cfg.WatchSettle, batch.IsMedia, a.log, a.cfg.Verbose)
			if err != nil {
				return err
			}
			svc := a.service()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			done := make(chan error, 1)
			go func() { done <- w.Watch(ctx, args[0]) }()
			a.log.Info("Watching %s (Ctrl-C to stop)", args[0])

			for {
				select {
				case path, ok := <-w.Updates():
					if !ok {
						a.log.Info("Session %s: %d file(s) tracked since %s",
							a.session.ID(), a.session.Len(), a.session.Started().Format("15:04:05"))
						return <-done
					}
					if err := a.previewFile(ctx, svc, out, path); err != nil {
						a.log.Error("Cannot probe %s: %v", path, err)
					}
				case path := <-w.Removed():
					if a.session.Remove(path) {
						a.log.Info("Gone: %s", filepath.Base(path))
					}
				case err := <-w.Errors():
					a.log.Warn("watch: %v", err)
				}
			}
		},
	}
}

// previewFile extracts path, records it in the session and prints its
// track table and proposed name.
func (a *app) previewFile(ctx context.Context, svc *batch.Service, out io.Writer, path string) error {
	info, err := svc.Extractor.File(ctx, path)
	if err != nil {
		return err
	}
	if a.session.Put(info) {
		a.log.Debug(a.cfg.Verbose, "Re-extracted %s", info.FileName)
	}
	fmt.Fprintln(out)
	display.PrintFileHeader(out, &info)
	display.PrintTrackTable(out, display.TrackRows(&info, svc.Titles.Entries(&info)))
	display.PrintNameTable(out, []display.NameRow{
		{Current: info.FileName, Proposed: svc.Names.Synthesize(&info)},
	})
	return nil
}
