// Package assets tells the renderers which screenshots cannot be loaded so
// they can show a placeholder instead.
package assets

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Checker reports whether the image behind a site path is unavailable.
type Checker interface {
	Missing(src string) bool
}

// Probe resolves site paths under Prefix to files in Dir.
type Probe struct {
	Dir    string
	Prefix string
}

// NewProbe serves paths like /images/x.png from dir.
func NewProbe(dir string) Probe {
	return Probe{Dir: dir, Prefix: "/images/"}
}

// Missing reports true when src does not resolve to a regular file. Paths
// are cleaned first, so they cannot leave Dir.
func (p Probe) Missing(src string) bool {
	if !strings.HasPrefix(src, p.Prefix) {
		return true
	}
	rel := path.Clean("/" + strings.TrimPrefix(src, p.Prefix))
	if rel == "/" {
		return true
	}
	info, err := os.Stat(filepath.Join(p.Dir, filepath.FromSlash(rel)))
	if err != nil {
		return true
	}
	return !info.Mode().IsRegular()
}

// NoopProbe never reports a missing image.
type NoopProbe struct{}

func (NoopProbe) Missing(string) bool { return false }

// MarkMissing calls report with the index of every item c cannot load.
func MarkMissing(c Checker, items []string, report func(i int)) {
	for i, src := range items {
		if c.Missing(src) {
			report(i)
		}
	}
}
