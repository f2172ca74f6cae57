package config

// This file defines the persistent command-line flags and binds them to
// viper keys. Flag names use hyphens; the matching key swaps them for
// underscores (--dry-run ↔ dry_run).

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagConfigFile names the flag that points at a config file. It is not a
// config key itself.
const FlagConfigFile = "config"

// RegisterFlags defines the flags shared by every command on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()

	fs.StringP(FlagConfigFile, "c", "", "Config file (YAML, TOML or JSON)")

	// Credits.
	fs.String("muxed-by", d.MuxedBy, "Credit used in titles, filenames and the Muxed_By tag")
	fs.String("telegram-channel", d.TelegramChannel, "Value of the Telegram_channel tag")
	fs.String("default-releaser", d.DefaultReleaser, "Release group used when the filename has none")

	// Tools.
	fs.String("ffprobe", d.FFprobePath, "ffprobe executable")
	fs.String("ffmpeg", d.FFmpegPath, "ffmpeg executable")
	fs.String("mkvpropedit", d.MkvpropeditPath, "mkvpropedit executable")

	// Behavior.
	fs.IntP("concurrency", "j", d.Concurrency, "Files processed in parallel (1-64)")
	fs.BoolP("dry-run", "n", d.DryRun, "Show what would change without touching files")
	fs.Duration("watch-settle", d.WatchSettle, "Quiet period before a new file is processed by watch")

	// Display.
	fs.BoolP("verbose", "v", d.Verbose, "Debug logging and tool output")
	fs.String("color", string(d.ColorMode), "Color output: auto, always or never")
	fs.String("log-file", d.LogFile, "Also append log lines to this file")
}

// BindFlags binds every flag registered by [RegisterFlags] (except the
// config file flag) to its viper key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == FlagConfigFile {
			return
		}
		err = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}
