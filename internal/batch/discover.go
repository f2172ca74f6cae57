package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// mediaExtensions are the containers the naming tools operate on
// (lowercase, with leading dot).
var mediaExtensions = map[string]bool{
	".mkv": true,
	".mp4": true,
}

// IsMedia reports whether path has a supported media extension.
func IsMedia(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover walks root, collects files with media extensions, prunes
// directories named "extras" (case-insensitive), and returns the paths
// sorted lexicographically for deterministic processing order.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.EqualFold(d.Name(), "extras") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsMedia(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Expand resolves command-line arguments into media file paths: directories
// are walked with [Discover], files are taken as given. Argument order is
// kept and duplicates are dropped.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", arg, err)
		}
		if !fi.IsDir() {
			add(filepath.Clean(arg))
			continue
		}
		files, err := Discover(arg)
		if err != nil {
			return nil, fmt.Errorf("discover %q: %w", arg, err)
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}
