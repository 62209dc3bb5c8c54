package config

import (
	"fmt"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"gopkg.in/yaml.v2"
)

// config/yaml.go

// Manifest is the YAML document describing a sitemap build.
type Manifest struct {
	BaseURL           string              `yaml:"base_url"`
	PagesDirectory    string              `yaml:"pages_directory"`
	TargetDirectory   string              `yaml:"target_directory"`
	SitemapFilename   string              `yaml:"sitemap_filename"`
	ExtraPaths        []string            `yaml:"extra_paths"`
	IgnoredPaths      []IgnoreRuleSpec    `yaml:"ignored_paths"`
	IgnoredExtensions []string            `yaml:"ignored_extensions"`
	IgnoreIndexFiles  IndexFilesOption    `yaml:"ignore_index_files"`
	AlternatesURLs    yaml.MapSlice       `yaml:"alternates_urls"`
	PagesConfig       map[string]PageMeta `yaml:"pages_config"`
	SitemapStylesheet []StylesheetSpec    `yaml:"sitemap_stylesheet"`
	Site              *SiteHooks          `yaml:"site"`
	Log               logger.Config       `yaml:"log"`
}

// IgnoreRuleSpec is either a plain string (substring rule) or a mapping
// with a "pattern" key (regular expression rule).
type IgnoreRuleSpec struct {
	Substring string
	Pattern   string
}

func (r *IgnoreRuleSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		*r = IgnoreRuleSpec{Substring: s}
		return nil
	}

	var p struct {
		Pattern string `yaml:"pattern"`
	}
	if err := unmarshal(&p); err != nil {
		return fmt.Errorf("ignored path must be a string or {pattern: ...}: %v", err)
	}
	if p.Pattern == "" {
		return fmt.Errorf("ignored path pattern is empty")
	}
	*r = IgnoreRuleSpec{Pattern: p.Pattern}
	return nil
}

// IndexFilesOption accepts a bool or a list. Any list enables collapsing,
// even an empty one; its entries are not used.
type IndexFilesOption struct {
	Enabled bool
}

func (o *IndexFilesOption) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		*o = IndexFilesOption{Enabled: b}
		return nil
	}

	var list []interface{}
	if err := unmarshal(&list); err != nil {
		return fmt.Errorf("ignore_index_files must be a bool or a list: %v", err)
	}
	*o = IndexFilesOption{Enabled: true}
	return nil
}

// PageMeta is the per-page metadata under pages_config.
type PageMeta struct {
	Priority   Scalar `yaml:"priority"`
	ChangeFreq Scalar `yaml:"changefreq"`
}

// Scalar keeps a YAML scalar as text, so priority: 0.8 and priority: "0.8"
// are equivalent.
type Scalar string

func (s *Scalar) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err == nil {
		*s = Scalar(text)
		return nil
	}

	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	*s = Scalar(fmt.Sprint(v))
	return nil
}

// StylesheetSpec is one entry of sitemap_stylesheet.
type StylesheetSpec struct {
	Type      string `yaml:"type"`
	StyleFile string `yaml:"style_file"`
}

// SiteHooks declares the site generator behavior the sitemap follows.
type SiteHooks struct {
	TrailingSlash bool         `yaml:"trailing_slash"`
	PathMap       PathMapRules `yaml:"path_map"`
}

// PathMapRules rewrite the discovered pages. They run in the order
// remove, rename, add.
type PathMapRules struct {
	Add    []string          `yaml:"add"`
	Remove []string          `yaml:"remove"`
	Rename map[string]string `yaml:"rename"`
}

func (r PathMapRules) empty() bool {
	return len(r.Add) == 0 && len(r.Remove) == 0 && len(r.Rename) == 0
}
