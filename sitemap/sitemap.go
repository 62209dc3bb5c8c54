// Package sitemap maps a directory of site pages to an XML sitemap.
//
// A run has three phases that each append to the output file: PreLaunch
// writes the header, SitemapMapper appends one <url> per page, Finish closes
// the <urlset>. Between the first and last phase the file is not valid XML,
// and an interrupted run leaves it that way.
package sitemap

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrMissingConfig is returned by Generate when no config is given.
var ErrMissingConfig = errors.New("sitemap: config is mandatory")

// Mapper generates a sitemap for one Config.
type Mapper struct {
	cfg Config
	fs  afero.Fs
	log logger.Logger
	now func() time.Time
}

// Option customizes a Mapper.
type Option func(*Mapper)

// WithFs sets the filesystem pages are read from and the sitemap is written to.
func WithFs(fs afero.Fs) Option {
	return func(m *Mapper) { m.fs = fs }
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(m *Mapper) { m.log = log }
}

// WithClock sets the clock used for <lastmod>.
func WithClock(now func() time.Time) Option {
	return func(m *Mapper) { m.now = now }
}

// New returns a Mapper for cfg. Without options it uses the OS filesystem,
// a no-op logger and the wall clock.
func New(cfg Config, opts ...Option) *Mapper {
	m := &Mapper{
		cfg: cfg.withDefaults(),
		fs:  afero.NewOsFs(),
		log: logger.NewNop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the effective configuration.
func (m *Mapper) Config() Config {
	return m.cfg
}

// Fs returns the filesystem the mapper reads and writes.
func (m *Mapper) Fs() afero.Fs {
	return m.fs
}

// OutputFile is the path the sitemap is written to.
func (m *Mapper) OutputFile() string {
	return filepath.Join(m.cfg.TargetDirectory, m.cfg.SitemapFilename)
}

// Generate runs all three phases for cfg, reading pages from
// cfg.PagesDirectory.
func Generate(ctx context.Context, cfg *Config, opts ...Option) error {
	if cfg == nil {
		return ErrMissingConfig
	}

	m := New(*cfg, opts...)
	if err := m.PreLaunch(); err != nil {
		return err
	}
	if err := m.SitemapMapper(ctx, m.cfg.PagesDirectory); err != nil {
		return err
	}
	return m.Finish()
}
