package sitemap

import (
	"context"
	"strings"

	"github.com/ZacxDev/go-static-sitemap/logger"
)

// URL is a page path enriched with everything the writer needs.
type URL struct {
	PagePath   string
	OutputPath string
	Priority   string
	ChangeFreq string
}

// SitemapURLs maps dir, applies the site's path map transformer and returns
// one URL per mapped page followed by one per extra path. Ignore rules are
// not applied here.
func (m *Mapper) SitemapURLs(ctx context.Context, dir string) ([]URL, error) {
	pm, err := m.BuildPathMap(dir)
	if err != nil {
		return nil, err
	}

	pm, err = m.cfg.Site.transformWithFallback(ctx, pm)
	if err != nil {
		m.log.Warn("path map transformer failed, using discovered pages",
			logger.Error(err),
			logger.Int("pages", pm.Len()))
	}

	trailingSlash := m.cfg.Site.trailingSlash()
	m.log.Debug("pages mapped",
		logger.Int("pages", pm.Len()),
		logger.Int("extra_paths", len(m.cfg.ExtraPaths)),
		logger.Bool("trailing_slash", trailingSlash))

	paths := append(pm.Keys(), m.cfg.ExtraPaths...)
	urls := make([]URL, 0, len(paths))
	for _, pagePath := range paths {
		u := URL{PagePath: pagePath, OutputPath: pagePath}
		if trailingSlash {
			u.OutputPath += "/"
		}
		u.Priority, u.ChangeFreq = m.pageConfig(pagePath)
		urls = append(urls, u)
	}
	return urls, nil
}

// pageConfig looks a page up by its lowercased path but reads the entry
// stored under the original path. A page whose config only exists under the
// lowercase key gets no metadata.
func (m *Mapper) pageConfig(pagePath string) (priority, changefreq string) {
	if _, ok := m.cfg.PagesConfig[strings.ToLower(pagePath)]; !ok {
		return "", ""
	}
	pc, ok := m.cfg.PagesConfig[pagePath]
	if !ok {
		m.log.Debug("page config registered under lowercase path only",
			logger.String("path", pagePath))
		return "", ""
	}
	return pc.Priority, pc.ChangeFreq
}
