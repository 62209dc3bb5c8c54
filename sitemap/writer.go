package sitemap

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

	urlSetOpen = `<urlset xsi:schemaLocation="http://www.sitemaps.org/schemas/sitemap/0.9 http://www.sitemaps.org/schemas/sitemap/0.9/sitemap.xsd"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
		` xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"` +
		` xmlns:xhtml="http://www.w3.org/1999/xhtml">` + "\n"

	urlSetClose = "</urlset>\n"

	// LastModLayout formats <lastmod> values.
	LastModLayout = "2006-01-02"
)

// urlTemplate renders one <url> block. Values are escaped by plush.
const urlTemplate = `<url>
  <loc><%= loc %></loc>
<%= for (alt) in alternates { %>  <xhtml:link rel="alternate" hreflang="<%= alt.Lang %>" href="<%= alt.Href %>" />
<% } %><%= if (priority != "") { %>  <priority><%= priority %></priority>
<% } %><%= if (changefreq != "") { %>  <changefreq><%= changefreq %></changefreq>
<% } %>  <lastmod><%= lastmod %></lastmod>
</url>
`

type alternateLink struct {
	Lang string
	Href string
}

// PreLaunch truncates the output file and writes the document header: the
// XML declaration, the stylesheet processing instructions and the opening
// <urlset> tag.
func (m *Mapper) PreLaunch() error {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	for _, s := range m.cfg.SitemapStylesheet {
		fmt.Fprintf(&b, "<?xml-stylesheet href=\"%s\" type=\"%s\" ?>\n",
			html.EscapeString(s.StyleFile), html.EscapeString(s.Type))
	}
	b.WriteString(urlSetOpen)

	if m.cfg.TargetDirectory != "" {
		if err := m.fs.MkdirAll(m.cfg.TargetDirectory, os.ModePerm); err != nil {
			return errors.Wrapf(err, "create target directory %s", m.cfg.TargetDirectory)
		}
	}
	return m.write(os.O_WRONLY|os.O_CREATE|os.O_TRUNC, b.String())
}

// SitemapMapper appends one <url> block per page found under dir that no
// ignore rule excludes. Every block shares the same <lastmod> date.
func (m *Mapper) SitemapMapper(ctx context.Context, dir string) error {
	urls, err := m.SitemapURLs(ctx, dir)
	if err != nil {
		return err
	}

	tmpl, err := plush.Parse(urlTemplate)
	if err != nil {
		return errors.Wrap(err, "parse url template")
	}

	date := m.now().Format(LastModLayout)
	written := 0
	for _, u := range urls {
		if m.IsIgnoredPath(u.PagePath) {
			m.log.Debug("skipping ignored path", logger.String("path", u.PagePath))
			continue
		}

		block, err := m.renderURL(tmpl, u, date)
		if err != nil {
			return errors.Wrapf(err, "render url %s", u.PagePath)
		}
		if err := m.write(os.O_WRONLY|os.O_CREATE|os.O_APPEND, block); err != nil {
			return err
		}
		written++
	}

	m.log.Info("sitemap urls written",
		logger.Int("urls", written),
		logger.Int("ignored", len(urls)-written),
		logger.String("file", m.OutputFile()))
	return nil
}

// Finish appends the closing </urlset> tag.
func (m *Mapper) Finish() error {
	return m.write(os.O_WRONLY|os.O_CREATE|os.O_APPEND, urlSetClose)
}

func (m *Mapper) renderURL(tmpl *plush.Template, u URL, date string) (string, error) {
	alternates := make([]alternateLink, 0, len(m.cfg.AlternatesURLs))
	for _, alt := range m.cfg.AlternatesURLs {
		alternates = append(alternates, alternateLink{Lang: alt.Lang, Href: alt.BaseURL + u.OutputPath})
	}

	ctx := plush.NewContext()
	ctx.Set("loc", m.cfg.BaseURL+u.OutputPath)
	ctx.Set("alternates", alternates)
	ctx.Set("priority", u.Priority)
	ctx.Set("changefreq", u.ChangeFreq)
	ctx.Set("lastmod", date)

	return tmpl.Exec(ctx)
}

// write opens the output file with flag, writes s and closes it again.
func (m *Mapper) write(flag int, s string) error {
	name := m.OutputFile()
	f, err := m.fs.OpenFile(name, flag, 0644)
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}

	if _, err := f.WriteString(s); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", name)
	}
	return errors.Wrapf(f.Close(), "close %s", name)
}
