package sitemap

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestMergePath(t *testing.T) {
	tests := []struct {
		base, segment, want string
	}{
		{"", "", ""},
		{"", "about", "/about"},
		{"/blog", "", "/blog"},
		{"/blog", "post", "/blog/post"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MergePath(tt.base, tt.segment), "MergePath(%q, %q)", tt.base, tt.segment)
	}
}

func TestMergePathProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("joins with a single slash", prop.ForAll(
		func(dir, page string) bool {
			return MergePath("/"+dir, page) == "/"+dir+"/"+page
		},
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("never produces a double or trailing slash", prop.ForAll(
		func(dirs []string, page string) bool {
			base := ""
			for _, d := range dirs {
				base = MergePath(base, d)
			}
			got := MergePath(base, page)
			if strings.Contains(got, "//") {
				return false
			}
			return got == "" || !strings.HasSuffix(got, "/")
		},
		gen.SliceOf(gen.Identifier()),
		gen.OneGenOf(gen.Const(""), gen.Identifier()),
	))

	properties.TestingRun(t)
}

func TestIsReservedPage(t *testing.T) {
	assert.True(t, IsReservedPage("_draft.tsx"))
	assert.True(t, IsReservedPage(".hidden"))
	assert.True(t, IsReservedPage("_app"))
	assert.False(t, IsReservedPage("about.tsx"))
	assert.False(t, IsReservedPage("my_page.tsx"))
	assert.False(t, IsReservedPage(""))
}

func TestIsIgnoredExtension(t *testing.T) {
	m := New(Config{IgnoredExtensions: []string{"css", "map"}})

	assert.True(t, m.IsIgnoredExtension("css"))
	assert.True(t, m.IsIgnoredExtension("map"))
	assert.False(t, m.IsIgnoredExtension("CSS"))
	assert.False(t, m.IsIgnoredExtension("tsx"))
}

func TestIsIgnoredPath(t *testing.T) {
	m := New(Config{IgnoredPaths: []IgnoreRule{
		Substring("/admin"),
		MustPattern(`^/api/`),
	}})

	assert.True(t, m.IsIgnoredPath("/admin"))
	assert.True(t, m.IsIgnoredPath("/team/admin/users"))
	assert.True(t, m.IsIgnoredPath("/api/users"))
	assert.False(t, m.IsIgnoredPath("/docs/api/users"))
	assert.False(t, m.IsIgnoredPath("/about"))
}

func TestIgnoreRuleString(t *testing.T) {
	assert.Equal(t, "/admin", Substring("/admin").String())
	assert.Equal(t, "/^/api//", MustPattern(`^/api/`).String())
}
