// Package web holds the embedded page templates and renders them.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"alora/shared/constant"
	"alora/transport/http/flash"

	"github.com/rs/zerolog/log"
)

const (
	layoutPattern = "templates/layout.html"
	pagesPattern  = "templates/pages/*.html"
	layoutName    = "layout"
)

const (
	PageIndex     = "index"
	PageAbout     = "about"
	PageBooking   = "booking"
	PageServices  = "services"
	PageMedia     = "media"
	PageContact   = "contact"
	PageDashboard = "dashboard"
	PageLogin     = "login"
)

//go:embed templates
var files embed.FS

// Page is the data every template receives.
type Page struct {
	Name    string
	Title   string
	AppName string
	Flash   *flash.Message
	Debug   bool
	Data    any
}

type Renderer interface {
	Render(writer http.ResponseWriter, status int, page Page)
}

type renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (Renderer, error) {
	layout, err := template.New(layoutName).Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).ParseFS(files, layoutPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	entries, err := fs.Glob(files, pagesPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(entries))

	for _, entry := range entries {
		tmpl, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", entry, err)
		}

		if _, err = tmpl.ParseFS(files, entry); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", entry, err)
		}

		pages[strings.TrimSuffix(path.Base(entry), path.Ext(entry))] = tmpl
	}

	log.Debug().Int("pages", len(pages)).Msg("page templates loaded")

	return &renderer{pages: pages}, nil
}

// MustNewRenderer panics when the embedded templates do not parse.
func MustNewRenderer() Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}

	return r
}

func (r *renderer) Render(writer http.ResponseWriter, status int, page Page) {
	tmpl, ok := r.pages[page.Name]
	if !ok {
		log.Error().Str("page", page.Name).Msg("unknown page template")
		http.Error(writer, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutName, page); err != nil {
		log.Error().Err(err).Str("page", page.Name).Msg("failed to render page")
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(status)

	if _, err := buf.WriteTo(writer); err != nil {
		log.Error().Err(err).Str("page", page.Name).Msg("failed to write page")
	}
}
