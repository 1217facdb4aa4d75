package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/form"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames maps each page to its template file under templates/.
var pageNames = []string{"home", "about", "programs", "get_involved", "donate", "contact"}

type pages map[string]*template.Template

func parsePages() (pages, error) {
	out := make(pages, len(pageNames))
	for _, name := range pageNames {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// pageView is the data every page template receives.
type pageView struct {
	Site     config.SiteConfig
	Nav      []navLink
	Channels []channel
	Path     string
	Title    string
	Year     int

	Banner  *form.Banner
	Fields  any
	Options any
	Data    any
}

func (s *Server) view(r *http.Request, title string, data any) pageView {
	return pageView{
		Site:     s.site,
		Nav:      nav,
		Channels: channels,
		Path:     r.URL.Path,
		Title:    title,
		Year:     time.Now().Year(),
		Options:  formOptions,
		Data:     data,
	}
}

// render executes the page into a buffer first so a template error never
// leaves a half-written response.
func (s *Server) render(w http.ResponseWriter, status int, name string, v pageView) {
	t, ok := s.pages[name]
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		s.log.Error().Err(err).Str("page", name).Msg("template execution failed")
		http.Error(w, "An internal error occurred", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
