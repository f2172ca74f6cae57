// Package probe runs ffprobe once per file and decodes its JSON into raw
// stream records. No classification happens here; every field is passed
// through as reported so the classifier can apply its own defaults.
package probe
