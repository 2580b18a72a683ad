package pathutil

import (
	"path/filepath"
	"strings"
)

// Arg is a path argument: either a single path string (Seg) or a nested
// sequence of arguments (Seq).
type Arg interface {
	appendTo(dst []string) []string
}

// Seg is a single path or path segment.
type Seg string

func (s Seg) appendTo(dst []string) []string {
	return append(dst, string(s))
}

// Seq is an ordered sequence of path arguments. It may nest to any depth.
type Seq []Arg

func (s Seq) appendTo(dst []string) []string {
	for _, a := range s {
		if a == nil {
			continue
		}
		dst = a.appendTo(dst)
	}
	return dst
}

// Segs builds a Seq of plain strings.
func Segs(paths ...string) Seq {
	seq := make(Seq, len(paths))
	for i, p := range paths {
		seq[i] = Seg(p)
	}
	return seq
}

// Normalize returns a normalized '/'-separated path string without touching
// the filesystem.
//
//   - Arguments are flattened and joined with '/'; empty arguments become '.'.
//   - The platform path separator is replaced by '/'.
//   - Runs of '/' collapse to a single '/'.
//   - '.' segments are removed, except a leading one.
//   - '..' segments are removed together with the segment before them, unless
//     that segment is itself '..' or a leading '.'.
//
// The result is never empty: an empty path is returned as ".".
func Normalize(args ...Arg) string {
	return normalize(filepath.Separator, Seq(args))
}

// Join normalizes plain path strings. Join(a, b) is Normalize(Segs(a, b)).
func Join(paths ...string) string {
	return normalize(filepath.Separator, Segs(paths...))
}

func normalize(sep byte, arg Arg) string {
	raw := arg.appendTo(nil)
	for i, s := range raw {
		if s == "" {
			raw[i] = "."
		}
	}

	joined := strings.Join(raw, "/")
	if sep != '/' {
		joined = strings.ReplaceAll(joined, string(sep), "/")
	}
	if joined == "" {
		return "."
	}

	segs := cleanSegments(strings.Split(joined, "/"))
	segs = resolveParents(segs)

	out := strings.Join(segs, "/")
	if out == "" {
		return "."
	}
	return out
}

// cleanSegments drops empty interior segments and every '.' segment after
// the first. An empty first segment marks an absolute path, an empty last
// segment a trailing '/'. A terminal '.' is replaced by that trailing marker.
func cleanSegments(segs []string) []string {
	last := len(segs) - 1
	out := segs[:1]
	for i := 1; i <= last; i++ {
		s := segs[i]
		switch {
		case s == "" && i < last:
			continue
		case s == "." && i < last:
			continue
		case s == ".":
			s = ""
		}
		out = append(out, s)
	}
	return out
}

// resolveParents eliminates "X/.." pairs in a single left-to-right pass.
func resolveParents(segs []string) []string {
	last := len(segs) - 1
	out := make([]string, 0, len(segs))
	for i, s := range segs {
		if s == ".." && len(out) > 0 && removable(out) {
			out = out[:len(out)-1]
			if i == last {
				// "a/b/.." keeps the separator that preceded "b".
				out = append(out, "")
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

// removable reports whether the top of the stack may be consumed by a
// following "..".
func removable(stack []string) bool {
	top := stack[len(stack)-1]
	switch top {
	case "", "..":
		return false
	case ".":
		// A leading "." is kept, so "./.." stays "./.." rather than
		// collapsing to ".".
		return len(stack) > 1
	}
	return true
}
