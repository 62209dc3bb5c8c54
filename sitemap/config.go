package sitemap

import (
	"regexp"
	"strings"
)

// DefaultSitemapFilename is written when Config.SitemapFilename is empty.
const DefaultSitemapFilename = "sitemap.xml"

// Config is the immutable input of a generation run. The zero value of every
// field is a valid default.
type Config struct {
	// BaseURL prefixes every <loc>.
	BaseURL string
	// PagesDirectory is the traversal root and the prefix stripped from
	// page directories.
	PagesDirectory  string
	TargetDirectory string
	SitemapFilename string

	// ExtraPaths are appended after the discovered pages, unconditionally.
	ExtraPaths   []string
	IgnoredPaths []IgnoreRule
	// IgnoredExtensions are matched exactly against the text after the
	// final dot of a file name.
	IgnoredExtensions []string
	// IgnoreIndexFiles collapses "index" files onto their directory path.
	IgnoreIndexFiles bool

	AlternatesURLs    []Alternate
	PagesConfig       map[string]PageConfig
	SitemapStylesheet []Stylesheet

	// Site carries the optional hooks of the surrounding site generator.
	Site *Site
}

// PageConfig holds per-page sitemap metadata.
type PageConfig struct {
	Priority   string
	ChangeFreq string
}

// Alternate is a localized variant of the site served under BaseURL.
type Alternate struct {
	Lang    string
	BaseURL string
}

// Stylesheet is emitted as an xml-stylesheet processing instruction.
type Stylesheet struct {
	Type      string
	StyleFile string
}

// IgnoreRule excludes page paths from the written sitemap. A rule is either
// a substring test or a regular expression.
type IgnoreRule struct {
	substring string
	pattern   *regexp.Regexp
}

// Substring builds a rule matching any path containing s.
func Substring(s string) IgnoreRule {
	return IgnoreRule{substring: s}
}

// Pattern builds a rule matching any path re matches.
func Pattern(re *regexp.Regexp) IgnoreRule {
	return IgnoreRule{pattern: re}
}

// MustPattern compiles expr and panics if it is invalid.
func MustPattern(expr string) IgnoreRule {
	return Pattern(regexp.MustCompile(expr))
}

// Match reports whether the rule excludes path.
func (r IgnoreRule) Match(path string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(path)
	}
	return strings.Contains(path, r.substring)
}

func (r IgnoreRule) String() string {
	if r.pattern != nil {
		return "/" + r.pattern.String() + "/"
	}
	return r.substring
}

func (c Config) withDefaults() Config {
	if c.SitemapFilename == "" {
		c.SitemapFilename = DefaultSitemapFilename
	}
	if c.PagesConfig == nil {
		c.PagesConfig = map[string]PageConfig{}
	}
	return c
}
