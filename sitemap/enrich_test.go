package sitemap

import (
	"context"
	"testing"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func pagePaths(urls []URL) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		out = append(out, u.PagePath)
	}
	return out
}

func TestSitemapURLsAppendsExtraPathsWithoutDedup(t *testing.T) {
	fs := pagesFs(t, "pages/a.tsx", "pages/b.tsx")
	m := New(Config{PagesDirectory: "pages", ExtraPaths: []string{"/c", "/a"}}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b", "/c", "/a"}, pagePaths(urls))
	for _, u := range urls {
		assert.Equal(t, u.PagePath, u.OutputPath)
	}
}

func TestSitemapURLsTrailingSlash(t *testing.T) {
	fs := pagesFs(t, "pages/index.tsx", "pages/about.tsx")
	m := New(Config{
		PagesDirectory:   "pages",
		IgnoreIndexFiles: true,
		ExtraPaths:       []string{"/extra"},
		Site:             &Site{TrailingSlash: StaticTrailingSlash(true)},
	}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)
	require.Len(t, urls, 3)

	assert.Equal(t, "/about/", urls[0].OutputPath)
	assert.Equal(t, "", urls[1].PagePath)
	assert.Equal(t, "/", urls[1].OutputPath)
	assert.Equal(t, "/extra/", urls[2].OutputPath)
}

func TestSitemapURLsTrailingSlashDisabled(t *testing.T) {
	fs := pagesFs(t, "pages/about.tsx")
	m := New(Config{
		PagesDirectory: "pages",
		Site:           &Site{TrailingSlash: StaticTrailingSlash(false)},
	}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, "/about", urls[0].OutputPath)
}

func TestSitemapURLsAppliesTransformer(t *testing.T) {
	fs := pagesFs(t, "pages/a.tsx", "pages/b.tsx")
	var got []string
	m := New(Config{
		PagesDirectory: "pages",
		Site: &Site{ExportPathMap: func(_ context.Context, pm *PathMap, _ TransformOptions) (*PathMap, error) {
			got = pm.Keys()
			pm.Delete("/a")
			pm.Set("/injected", Page{Page: "/injected"})
			return pm, nil
		}},
	}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, got)
	assert.Equal(t, []string{"/b", "/injected"}, pagePaths(urls))
}

func TestSitemapURLsTransformerFailureFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	fs := pagesFs(t, "pages/a.tsx", "pages/b.tsx")
	m := New(Config{
		PagesDirectory: "pages",
		Site: &Site{ExportPathMap: func(_ context.Context, pm *PathMap, _ TransformOptions) (*PathMap, error) {
			pm.Delete("/a")
			return nil, errors.New("boom")
		}},
	}, WithFs(fs), WithLogger(logger.FromZap(zap.New(core))))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)

	// The transformer's partial edits must not leak into the fallback map.
	assert.Equal(t, []string{"/a", "/b"}, pagePaths(urls))
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "boom")
}

func TestSitemapURLsTransformerReturningNil(t *testing.T) {
	fs := pagesFs(t, "pages/a.tsx")
	m := New(Config{
		PagesDirectory: "pages",
		Site: &Site{ExportPathMap: func(context.Context, *PathMap, TransformOptions) (*PathMap, error) {
			return nil, nil
		}},
	}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, pagePaths(urls))
}

func TestTransformWithFallbackReportsError(t *testing.T) {
	pm := NewPathMap()
	pm.Set("/a", Page{Page: "/a"})
	site := &Site{ExportPathMap: func(context.Context, *PathMap, TransformOptions) (*PathMap, error) {
		return nil, errors.New("boom")
	}}

	got, err := site.transformWithFallback(context.Background(), pm)
	require.Error(t, err)
	assert.Same(t, pm, got)

	var nilSite *Site
	got, err = nilSite.transformWithFallback(context.Background(), pm)
	require.NoError(t, err)
	assert.Same(t, pm, got)
}

func TestSitemapURLsPageConfigLookup(t *testing.T) {
	fs := pagesFs(t, "pages/about.tsx", "pages/Contact.tsx", "pages/Team.tsx")
	m := New(Config{
		PagesDirectory: "pages",
		PagesConfig: map[string]PageConfig{
			"/about":   {Priority: "0.8", ChangeFreq: "monthly"},
			"/contact": {Priority: "0.5", ChangeFreq: "yearly"},
			"/Team":    {Priority: "0.3", ChangeFreq: "weekly"},
		},
	}, WithFs(fs))

	urls, err := m.SitemapURLs(context.Background(), "pages")
	require.NoError(t, err)

	byPath := map[string]URL{}
	for _, u := range urls {
		byPath[u.PagePath] = u
	}

	assert.Equal(t, "0.8", byPath["/about"].Priority)
	assert.Equal(t, "monthly", byPath["/about"].ChangeFreq)
	// Present under the lowercase key only: the original-case read finds nothing.
	assert.Empty(t, byPath["/Contact"].Priority)
	assert.Empty(t, byPath["/Contact"].ChangeFreq)
	// Present under the original-case key only: the lowercase test fails first.
	assert.Empty(t, byPath["/Team"].Priority)
}

func TestSitemapURLsPropagatesReadError(t *testing.T) {
	m := New(Config{PagesDirectory: "missing"}, WithFs(pagesFs(t)))

	_, err := m.SitemapURLs(context.Background(), "missing")
	require.Error(t, err)
}
