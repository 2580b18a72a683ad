package entry

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Kind represents the type of filesystem entry. Kinds are bit flags so that
// several of them can be combined into a filter mask.
type Kind uint8

const (
	KindFile Kind = 1 << iota
	KindDir
	KindSymlink
	KindOther

	// KindAny matches every kind.
	KindAny = KindFile | KindDir | KindSymlink | KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindOther:
		return "other"
	}

	var names []string
	for _, single := range []Kind{KindFile, KindDir, KindSymlink, KindOther} {
		if k&single != 0 {
			names = append(names, single.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// In reports whether k is one of the kinds in mask. A zero mask matches
// everything.
func (k Kind) In(mask Kind) bool {
	return mask == 0 || k&mask != 0
}

// KindFromMode derives the Kind from an os.FileMode as returned by Lstat.
func KindFromMode(mode os.FileMode) Kind {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDir
	default:
		return KindOther
	}
}

// ParseKinds parses a comma separated list of kind names into a mask.
func ParseKinds(s string) (Kind, error) {
	var mask Kind
	for _, name := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "file", "f":
			mask |= KindFile
		case "dir", "directory", "d":
			mask |= KindDir
		case "symlink", "link", "l":
			mask |= KindSymlink
		case "other", "unknown":
			mask |= KindOther
		case "any", "all":
			mask |= KindAny
		default:
			return 0, fmt.Errorf("unknown entry kind %q", name)
		}
	}
	return mask, nil
}

// Entry is a single directory entry.
type Entry struct {
	Name    string
	Path    string
	Kind    Kind
	Size    int64
	ModTime time.Time
}

// IsDot reports whether the entry is the "." or ".." pseudo entry.
func (e Entry) IsDot() bool {
	return e.Name == "." || e.Name == ".."
}
