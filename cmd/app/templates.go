package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/sushihentaime/blogsite/internal/activityservice"
	"github.com/sushihentaime/blogsite/internal/blogservice"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
)

//go:embed templates
var templateFS embed.FS

type templateData struct {
	Session    *sessionservice.Session
	Posts      []blogservice.Post
	Post       *blogservice.Post
	Activities []activityservice.Activity
}

func (app *application) newTemplateData(r *http.Request) templateData {
	return templateData{Session: app.contextGetSession(r)}
}

func humanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("01/02/2006, 03:04:05 PM")
}

var functions = template.FuncMap{
	"humanDate": humanDate,
}

// newTemplateCache parses every page together with the base layout, keyed by file name.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(templateFS, "templates/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := path.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFS(templateFS, "templates/base.tmpl", page)
		if err != nil {
			return nil, fmt.Errorf("could not parse template %s: %w", name, err)
		}

		cache[name] = ts
	}

	return cache, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	ts, ok := app.templates[page]
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)

	err := ts.ExecuteTemplate(buf, "base", data)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
