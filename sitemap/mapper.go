package sitemap

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// BuildPathMap walks dir recursively and returns every page found in it,
// keyed by canonical path. Filesystem errors abort the walk.
func (m *Mapper) BuildPathMap(dir string) (*PathMap, error) {
	pm := NewPathMap()
	if err := m.walk(dir, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// walk adds the pages under dir to pm. Later entries win on key collisions.
func (m *Mapper) walk(dir string, pm *PathMap) error {
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return errors.Wrapf(err, "read pages directory %s", dir)
	}

	for _, entry := range entries {
		name := entry.Name()
		if IsReservedPage(name) {
			continue
		}

		if entry.IsDir() {
			if err := m.walk(dir+string(filepath.Separator)+name, pm); err != nil {
				return err
			}
			continue
		}

		ext := fileExtension(name)
		if m.IsIgnoredExtension(ext) {
			continue
		}

		page := trimExtension(name, ext)
		if m.cfg.IgnoreIndexFiles && page == "index" {
			page = ""
		}

		path := MergePath(m.relativeDir(dir), page)
		pm.Set(path, Page{Page: path})
	}
	return nil
}

// relativeDir strips the pages root from dir and normalizes separators.
// The root-level "index" directory maps to the site root.
func (m *Mapper) relativeDir(dir string) string {
	rel := strings.Replace(dir, m.cfg.PagesDirectory, "", 1)
	rel = strings.ReplaceAll(rel, `\`, "/")
	if rel == "/index" {
		return ""
	}
	return rel
}

// fileExtension returns the text after the final dot. A name without a dot
// is its own extension.
func fileExtension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func trimExtension(name, ext string) string {
	n := len(name) - len(ext) - 1
	if n <= 0 {
		return ""
	}
	return name[:n]
}
