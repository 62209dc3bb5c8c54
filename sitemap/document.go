package sitemap

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
)

// Document is the parsed form of a written sitemap.
type Document struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []Entry  `xml:"url"`
}

// Entry is one <url> element.
type Entry struct {
	Loc        string `xml:"loc"`
	Alternates []Link `xml:"http://www.w3.org/1999/xhtml link"`
	Priority   string `xml:"priority,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	LastMod    string `xml:"lastmod,omitempty"`
}

// Link is an <xhtml:link> alternate.
type Link struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// ParseDocument decodes a sitemap.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode sitemap")
	}
	return &doc, nil
}

// ReadDocument parses the sitemap at the configured output location.
func (m *Mapper) ReadDocument() (*Document, error) {
	f, err := m.fs.Open(m.OutputFile())
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", m.OutputFile())
	}
	defer f.Close()
	return ParseDocument(f)
}
