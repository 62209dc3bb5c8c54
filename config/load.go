// Package config loads the YAML manifest of a sitemap build and turns it
// into a sitemap.Config.
package config

import (
	"os"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Keys understood by ApplyOverrides. They double as CLI flag names; with the
// SITEMAP env prefix they read e.g. SITEMAP_BASE_URL.
const (
	KeyBaseURL         = "base-url"
	KeyPagesDirectory  = "pages-directory"
	KeyTargetDirectory = "target-directory"
	KeySitemapFilename = "sitemap-filename"
	KeyLogLevel        = "log-level"
)

// Load reads and decodes the manifest at filename.
func Load(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", filename)
	}

	manifest, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", filename)
	}
	return manifest, nil
}

// Parse decodes a manifest and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.UnmarshalStrict(data, &manifest); err != nil {
		return nil, errors.WithStack(err)
	}

	manifest.applyDefaults()
	return &manifest, nil
}

func (m *Manifest) applyDefaults() {
	if m.SitemapFilename == "" {
		m.SitemapFilename = sitemap.DefaultSitemapFilename
	}
	if m.Log.Level == "" {
		m.Log.Level = logger.DefaultLevel
	}
}

// ApplyOverrides copies every override key set in v (flag or environment)
// onto the manifest.
func (m *Manifest) ApplyOverrides(v *viper.Viper) {
	overrides := map[string]*string{
		KeyBaseURL:         &m.BaseURL,
		KeyPagesDirectory:  &m.PagesDirectory,
		KeyTargetDirectory: &m.TargetDirectory,
		KeySitemapFilename: &m.SitemapFilename,
		KeyLogLevel:        &m.Log.Level,
	}
	for key, field := range overrides {
		if v.IsSet(key) {
			*field = v.GetString(key)
		}
	}
	m.applyDefaults()
}
