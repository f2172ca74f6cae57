// Package naming synthesizes normalized release filenames from an original
// filename and its classified tracks.
//
// [Synthesizer.Parse] extracts fields through ordered rule tables (series
// token, title, year, source, provider, edition modifiers, bit depth,
// dynamic range, codec, audio descriptor, release group) and
// [Synthesizer.Compose] renders them through the series/movie and
// remux/non-remux templates followed by a whitespace and punctuation
// cleanup pass. Output is deterministic but not a fixed point: feeding a
// synthesized name back in may change it.
//
// [CollisionResolver] keeps a batch of renames from clobbering each other.
package naming
