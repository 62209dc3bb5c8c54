package sitemap

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPathMap(t *testing.T) {
	fs := pagesFs(t,
		"pages/about.tsx",
		"pages/index.tsx",
		"pages/blog/index.tsx",
		"pages/blog/first-post.mdx",
		"pages/styles.css",
		"pages/_app.tsx",
		"pages/.DS_Store",
		"pages/_drafts/secret.tsx",
		"pages/.git/config.tsx",
	)
	m := New(Config{PagesDirectory: "pages", IgnoredExtensions: []string{"css"}}, WithFs(fs))

	pm, err := m.BuildPathMap("pages")
	require.NoError(t, err)

	assert.Equal(t, []string{"/about", "/blog/first-post", "/blog/index", "/index"}, pm.Keys())
	page, ok := pm.Get("/blog/first-post")
	require.True(t, ok)
	assert.Equal(t, "/blog/first-post", page.Page)
}

func TestBuildPathMapCollapsesIndexFiles(t *testing.T) {
	fs := pagesFs(t,
		"pages/index.tsx",
		"pages/blog/index.tsx",
		"pages/blog/post.tsx",
		"pages/index/about.tsx",
	)
	m := New(Config{PagesDirectory: "pages", IgnoreIndexFiles: true}, WithFs(fs))

	pm, err := m.BuildPathMap("pages")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"", "/blog", "/blog/post", "/about"}, pm.Keys())
}

func TestBuildPathMapLastWriteWins(t *testing.T) {
	// blog.tsx and blog/index.tsx both map to /blog.
	fs := pagesFs(t, "pages/blog.tsx", "pages/blog/index.tsx", "pages/contact.tsx")
	m := New(Config{PagesDirectory: "pages", IgnoreIndexFiles: true}, WithFs(fs))

	pm, err := m.BuildPathMap("pages")
	require.NoError(t, err)

	assert.Equal(t, []string{"/blog", "/contact"}, pm.Keys())
}

func TestBuildPathMapFileWithoutExtension(t *testing.T) {
	fs := pagesFs(t, "pages/docs/README", "pages/docs/guide.md")
	m := New(Config{PagesDirectory: "pages"}, WithFs(fs))

	pm, err := m.BuildPathMap("pages")
	require.NoError(t, err)

	// A dotless name is its own extension and contributes no segment.
	assert.Equal(t, []string{"/docs", "/docs/guide"}, pm.Keys())
}

func TestBuildPathMapExtensionMatchIsExact(t *testing.T) {
	fs := pagesFs(t, "pages/a.CSS", "pages/b.css", "pages/c.min.css")
	m := New(Config{PagesDirectory: "pages", IgnoredExtensions: []string{"css"}}, WithFs(fs))

	pm, err := m.BuildPathMap("pages")
	require.NoError(t, err)

	assert.Equal(t, []string{"/a"}, pm.Keys())
}

func TestBuildPathMapMissingDirectory(t *testing.T) {
	m := New(Config{PagesDirectory: "pages"}, WithFs(afero.NewMemMapFs()))

	_, err := m.BuildPathMap("pages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read pages directory pages")
}

func TestBuildPathMapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("one slash-clean key per surviving file", prop.ForAll(
		func(dirs, names []string, collapse bool) bool {
			for _, d := range dirs {
				if d == "index" {
					return true
				}
			}
			fs := afero.NewMemMapFs()
			want := map[string]bool{}
			for i, name := range names {
				dir := "pages"
				if len(dirs) > 0 {
					dir += "/" + dirs[i%len(dirs)]
				}
				if err := afero.WriteFile(fs, fmt.Sprintf("%s/%s.tsx", dir, name), nil, 0644); err != nil {
					return false
				}
				if err := afero.WriteFile(fs, fmt.Sprintf("%s/_%s.tsx", dir, name), nil, 0644); err != nil {
					return false
				}
				want[strings.TrimPrefix(dir, "pages")+"/"+name] = true
			}

			m := New(Config{PagesDirectory: "pages", IgnoreIndexFiles: collapse}, WithFs(fs))
			pm, err := m.BuildPathMap("pages")
			if err != nil {
				return len(names) == 0
			}
			for _, key := range pm.Keys() {
				if strings.Contains(key, "//") || strings.HasSuffix(key, "/") {
					return false
				}
				if !collapse && !want[key] {
					return false
				}
			}
			return collapse || pm.Len() == len(want)
		},
		gen.SliceOfN(3, gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
