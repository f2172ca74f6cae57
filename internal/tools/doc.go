// Package tools runs the external collaborators that apply synthesized
// names: mkvpropedit for track titles, ffmpeg for custom container
// properties, and a plain filesystem rename for file names.
//
// Argument construction (builder.go) is separate from execution
// (executor.go) so dry-run mode and tests can inspect the exact command
// lines. Every operation returns a [Result] instead of aborting, leaving
// batch callers free to continue with sibling files.
package tools
