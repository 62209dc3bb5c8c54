// Package handlers serves a generated sitemap for local preview.
package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/go-static-sitemap/logger"
	"github.com/ZacxDev/go-static-sitemap/sitemap"
	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/gorilla/mux"
	"github.com/spf13/afero"
)

const layoutTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title><%= title %></title>
</head>
<body>
<article class="sitemap-overview">
<%= yield %>
</article>
</body>
</html>
`

// SetupRouter routes the overview page, the sitemap itself and any other
// file of the target directory (stylesheets).
func SetupRouter(m *sitemap.Mapper, log logger.Logger) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(Custom404Handler)

	cfg := m.Config()
	router.HandleFunc("/", OverviewHandler(m, log)).Methods("GET")
	router.HandleFunc("/"+cfg.SitemapFilename, SitemapHandler(m)).Methods("GET")
	router.PathPrefix("/").Handler(staticHandler(m.Fs(), cfg.TargetDirectory, cfg.SitemapStylesheet)).Methods("GET")

	return router
}

// SitemapHandler serves the raw sitemap document.
func SitemapHandler(m *sitemap.Mapper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := afero.ReadFile(m.Fs(), m.OutputFile())
		if err != nil {
			Custom404Handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write(data)
	}
}

// OverviewHandler renders the sitemap entries as an HTML table.
func OverviewHandler(m *sitemap.Mapper, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := m.ReadDocument()
		if err != nil {
			log.Error("read sitemap for overview", logger.Error(err))
			http.Error(w, fmt.Sprintf("Error reading sitemap: %v", err), http.StatusInternalServerError)
			return
		}

		extensions := parser.CommonExtensions | parser.AutoHeadingIDs
		p := parser.NewWithExtensions(extensions)
		content := markdown.ToHTML([]byte(overviewMarkdown(m, doc)), p, nil)

		ctx := plush.NewContext()
		ctx.Set("title", m.Config().SitemapFilename)
		ctx.Set("yield", template.HTML(content))

		page, err := plush.Render(layoutTemplate, ctx)
		if err != nil {
			http.Error(w, fmt.Sprintf("Error rendering overview: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}
}

func overviewMarkdown(m *sitemap.Mapper, doc *sitemap.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.Config().SitemapFilename)
	fmt.Fprintf(&b, "%d URLs. [Raw XML](/%s)\n\n", len(doc.URLs), m.Config().SitemapFilename)
	b.WriteString("| Location | Alternates | Priority | Change frequency | Last modified |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, u := range doc.URLs {
		langs := make([]string, 0, len(u.Alternates))
		for _, alt := range u.Alternates {
			langs = append(langs, fmt.Sprintf("[%s](%s)", alt.HrefLang, alt.Href))
		}
		fmt.Fprintf(&b, "| [%s](%s) | %s | %s | %s | %s |\n",
			cell(u.Loc), u.Loc, strings.Join(langs, " "), cell(u.Priority), cell(u.ChangeFreq), cell(u.LastMod))
	}
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// staticHandler serves files below dir and falls back to the custom 404
// page for anything missing. Without a target directory only the configured
// stylesheets are served from the working directory.
func staticHandler(fs afero.Fs, dir string, stylesheets []sitemap.Stylesheet) http.Handler {
	var allowed map[string]bool
	if dir == "" {
		dir = "."
		allowed = make(map[string]bool, len(stylesheets))
		for _, s := range stylesheets {
			allowed[path.Clean("/"+s.StyleFile)] = true
		}
	}
	files := http.FileServer(afero.NewHttpFs(fs).Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		urlPath := path.Clean("/" + r.URL.Path)
		if allowed != nil && !allowed[urlPath] {
			Custom404Handler(w, r)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(urlPath))
		info, err := fs.Stat(name)
		if err != nil || info.IsDir() {
			Custom404Handler(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
