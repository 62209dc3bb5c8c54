package handlers

import (
	"net/http"

	"github.com/gobuffalo/plush"
)

const notFoundTemplate = `<!DOCTYPE html>
<html>
<head><title>Not found</title></head>
<body>
<h1>404</h1>
<p>Nothing is served at <code><%= path %></code>.</p>
<p><a href="/">Back to the sitemap overview</a></p>
</body>
</html>
`

func Custom404Handler(w http.ResponseWriter, r *http.Request) {
	ctx := plush.NewContext()
	ctx.Set("path", r.URL.Path)

	page, err := plush.Render(notFoundTemplate, ctx)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(page))
}
