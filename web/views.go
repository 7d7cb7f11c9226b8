package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the files served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// City is an entry of the city selector on the landing page.
type City struct {
	ID   string
	Name string
}

type IndexData struct {
	AppName string
	Version string
	Cities  []City
}

type SearchData struct {
	AppName string
}

type Views struct {
	tmpl *template.Template
}

// LoadViews parses the embedded page templates. Call during startup; if it
// returns an error, do not start the server.
func LoadViews() (*Views, error) {
	return loadViewsFromFS(templatesFS, "templates")
}

func loadViewsFromFS(fsys fs.FS, dir string) (*Views, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(sub, "*.html")
	if err != nil {
		return nil, err
	}
	return &Views{tmpl: tmpl}, nil
}

func (v *Views) RenderIndex(w io.Writer, data *IndexData) error {
	if v == nil || v.tmpl == nil {
		return errors.New("index template not loaded: call web.LoadViews during startup")
	}
	return v.tmpl.ExecuteTemplate(w, "index.html", data)
}

func (v *Views) RenderSearch(w io.Writer, data *SearchData) error {
	if v == nil || v.tmpl == nil {
		return errors.New("search template not loaded: call web.LoadViews during startup")
	}
	return v.tmpl.ExecuteTemplate(w, "search.html", data)
}

// DefaultCities are the cities the landing page ships sample readings for.
var DefaultCities = []City{
	{ID: "new-york", Name: "New York"},
	{ID: "london", Name: "London"},
	{ID: "paris", Name: "Paris"},
}
