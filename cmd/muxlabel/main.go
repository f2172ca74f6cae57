// Command muxlabel derives track titles and release-style file names for
// MKV/MP4 files from their stream metadata and applies them with
// mkvpropedit, ffmpeg and plain renames.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/backmassage/muxlabel/internal/batch"
	"github.com/backmassage/muxlabel/internal/config"
	"github.com/backmassage/muxlabel/internal/display"
	"github.com/backmassage/muxlabel/internal/extract"
	"github.com/backmassage/muxlabel/internal/logging"
	"github.com/backmassage/muxlabel/internal/naming"
	"github.com/backmassage/muxlabel/internal/probe"
	"github.com/backmassage/muxlabel/internal/session"
	"github.com/backmassage/muxlabel/internal/titles"
	"github.com/backmassage/muxlabel/internal/tools"
)

// version is injected at build time via -ldflags "-X main.version=...".
var version = "dev"

// errFailures signals that some files failed. Details were already logged.
var errFailures = errors.New("one or more files failed")

// app carries the state shared by every subcommand once the root's
// PersistentPreRunE has run.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	log     *logging.Logger
	session *session.Session
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{v: viper.New(), session: session.New()}
	return a.execute(ctx, os.Args[1:])
}

// execute runs the command line and returns the exit code. The log file is
// closed here because cobra skips post-run hooks when RunE fails.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)

	code := 0
	if err != nil {
		code = 1
		if !errors.Is(err, errFailures) {
			if a.log != nil {
				a.log.Error("%v", err)
			} else {
				fmt.Fprintf(os.Stderr, "muxlabel: %v\n", err)
			}
		}
	}
	if a.log != nil {
		_ = a.log.Close()
	}
	return code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "muxlabel",
		Short:         "Name MKV/MP4 tracks and files from their stream metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			display.PrintBanner(cmd.OutOrStdout())
			return cmd.Help()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		a.infoCmd(),
		a.titlesCmd(),
		a.namesCmd(),
		a.renameTracksCmd(),
		a.renameFilesCmd(),
		a.addPropsCmd(),
		a.watchCmd(),
		a.checkCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the configuration and opens the logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := config.BindFlags(a.v, flags); err != nil {
		return err
	}
	configFile, err := flags.GetString(config.FlagConfigFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v, configFile)
	if err != nil {
		return err
	}
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	log.Debug(cfg.Verbose, "Session %s", a.session.ID())
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	return nil
}

// service wires the batch service from the loaded config.
func (a *app) service() *batch.Service {
	runner := tools.NewRunner(tools.Options{
		MkvpropeditPath: a.cfg.MkvpropeditPath,
		FFmpegPath:      a.cfg.FFmpegPath,
		MuxedBy:         a.cfg.MuxedBy,
		TelegramChannel: a.cfg.TelegramChannel,
		DryRun:          a.cfg.DryRun,
		Verbose:         a.cfg.Verbose,
	}, nil, a.log)

	return &batch.Service{
		Extractor:   extract.New(probe.New(a.cfg.FFprobePath)),
		Tools:       runner,
		Titles:      titles.New(a.cfg.MuxedBy),
		Names:       naming.New(a.cfg.MuxedBy, a.cfg.DefaultReleaser),
		Concurrency: a.cfg.Concurrency,
		Verbose:     a.cfg.Verbose,
		Log:         a.log,
	}
}

// load expands args, probes every file and replaces the session contents
// with the results. It fails only when nothing could be extracted.
func (a *app) load(ctx context.Context, svc *batch.Service, args []string) (*batch.Report, error) {
	paths, err := batch.Expand(args)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("no .mkv or .mp4 files found")
	}

	infos, report := svc.ExtractAll(ctx, paths)
	a.session.Clear()
	for _, info := range infos {
		a.session.Put(info)
	}
	if len(infos) == 0 {
		return report, errFailures
	}
	return report, nil
}

func failed(reports ...*batch.Report) error {
	for _, r := range reports {
		if r != nil && r.Failed > 0 {
			return errFailures
		}
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print muxlabel version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "muxlabel %s\n", version)
		},
		DisableFlagsInUseLine: true,
	}
}
