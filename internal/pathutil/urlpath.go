package pathutil

import (
	"net/url"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// ToURLPath converts path into an absolute, percent-encoded URL path relative
// to documentRoot. It returns ("", false) when path does not lie inside
// documentRoot.
//
// If fs is not nil and path is a directory on it, the URL path ends with '/'.
func ToURLPath(fs afero.Fs, documentRoot string, path Arg) (string, bool) {
	p := Normalize(path)
	rel := Strip(Seg(p), Seg(documentRoot))
	if rel == p {
		return "", false
	}

	if rel == "." {
		rel = ""
	}
	u := "/" + strings.TrimPrefix(rel, "./")

	if fs != nil && !strings.HasSuffix(u, "/") {
		if isDir, err := afero.IsDir(fs, p); err == nil && isDir {
			u += "/"
		}
	}

	return encodeSegments(u), true
}

// encodeSegments percent-encodes every '/'-delimited segment the way RFC 3986
// expects for path segments, with space as %20.
func encodeSegments(u string) string {
	segs := strings.Split(u, "/")
	for i, s := range segs {
		segs[i] = strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return strings.Join(segs, "/")
}

// DocumentRoot holds the root used to derive URL paths. An explicitly set
// root takes precedence; otherwise the fallback is consulted on every read.
type DocumentRoot struct {
	mu       sync.RWMutex
	root     string
	fallback func() string
}

// NewDocumentRoot returns a DocumentRoot that falls back to the value
// returned by fallback while no root is set. fallback may be nil.
func NewDocumentRoot(fallback func() string) *DocumentRoot {
	return &DocumentRoot{fallback: fallback}
}

// Set overrides the root. An empty root restores the fallback.
func (d *DocumentRoot) Set(root string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.root = root
}

// Reset restores the fallback.
func (d *DocumentRoot) Reset() {
	d.Set("")
}

// Get returns the normalized active root.
func (d *DocumentRoot) Get() string {
	d.mu.RLock()
	root := d.root
	d.mu.RUnlock()

	if root == "" && d.fallback != nil {
		root = d.fallback()
	}
	return Normalize(Seg(root))
}

// URLPath is ToURLPath against the active root.
func (d *DocumentRoot) URLPath(fs afero.Fs, path Arg) (string, bool) {
	return ToURLPath(fs, d.Get(), path)
}
