package config

import (
	"context"
	"regexp"
	"sort"

	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/pkg/errors"
)

// SitemapConfig validates the manifest and converts it to a sitemap.Config.
// Validation warnings are returned alongside the config.
func (m *Manifest) SitemapConfig() (*sitemap.Config, []string, error) {
	warnings, err := m.Validate()
	if err != nil {
		return nil, nil, err
	}

	cfg := &sitemap.Config{
		BaseURL:           m.BaseURL,
		PagesDirectory:    m.PagesDirectory,
		TargetDirectory:   m.TargetDirectory,
		SitemapFilename:   m.SitemapFilename,
		ExtraPaths:        m.ExtraPaths,
		IgnoredExtensions: m.IgnoredExtensions,
		IgnoreIndexFiles:  m.IgnoreIndexFiles.Enabled,
		PagesConfig:       make(map[string]sitemap.PageConfig, len(m.PagesConfig)),
	}

	for _, rule := range m.IgnoredPaths {
		if rule.Pattern != "" {
			cfg.IgnoredPaths = append(cfg.IgnoredPaths, sitemap.Pattern(regexp.MustCompile(rule.Pattern)))
		} else {
			cfg.IgnoredPaths = append(cfg.IgnoredPaths, sitemap.Substring(rule.Substring))
		}
	}

	for _, item := range m.AlternatesURLs {
		cfg.AlternatesURLs = append(cfg.AlternatesURLs, sitemap.Alternate{
			Lang:    item.Key.(string),
			BaseURL: item.Value.(string),
		})
	}

	for path, meta := range m.PagesConfig {
		cfg.PagesConfig[path] = sitemap.PageConfig{
			Priority:   string(meta.Priority),
			ChangeFreq: string(meta.ChangeFreq),
		}
	}

	for _, s := range m.SitemapStylesheet {
		cfg.SitemapStylesheet = append(cfg.SitemapStylesheet, sitemap.Stylesheet{Type: s.Type, StyleFile: s.StyleFile})
	}

	if m.Site != nil {
		cfg.Site = m.Site.Site()
	}
	return cfg, warnings, nil
}

// Site returns the sitemap hooks the declaration describes.
func (h *SiteHooks) Site() *sitemap.Site {
	site := &sitemap.Site{TrailingSlash: sitemap.StaticTrailingSlash(h.TrailingSlash)}
	if !h.PathMap.empty() {
		site.ExportPathMap = h.PathMap.Apply
	}
	return site
}

// Apply rewrites pm in place and returns it. Renaming a page that does not
// exist is an error.
func (r PathMapRules) Apply(_ context.Context, pm *sitemap.PathMap, _ sitemap.TransformOptions) (*sitemap.PathMap, error) {
	for _, path := range r.Remove {
		pm.Delete(path)
	}

	from := make([]string, 0, len(r.Rename))
	for k := range r.Rename {
		from = append(from, k)
	}
	sort.Strings(from)
	for _, old := range from {
		if _, ok := pm.Get(old); !ok {
			return nil, errors.Errorf("rename %s: page not found", old)
		}
		pm.Delete(old)
		pm.Set(r.Rename[old], sitemap.Page{Page: r.Rename[old]})
	}

	for _, path := range r.Add {
		pm.Set(path, sitemap.Page{Page: path})
	}
	return pm, nil
}
