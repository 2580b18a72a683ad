package pathutil

import "strings"

// Strip removes the leading path start from path. Both are normalized first.
//
// If path equals start the result is ".". If path does not lie below start,
// the normalized path is returned unchanged, so callers can detect a miss by
// comparing with Normalize(path). When path begins with "./", "../" or "/",
// the stripped remainder is prefixed with "./" to keep it marked as relative
// to something other than the working directory.
func Strip(path, start Arg) string {
	p := Normalize(path)
	s := strings.TrimRight(Normalize(start), "/")

	stripped := p
	switch {
	case p == s || p == s+"/":
		stripped = ""
	case strings.HasPrefix(p, s+"/"):
		stripped = strings.TrimPrefix(p, s+"/")
		if hasMarker(p) {
			stripped = "./" + stripped
		}
	}

	return Normalize(Seg(stripped))
}

func hasMarker(p string) bool {
	return strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../") || strings.HasPrefix(p, "/")
}
