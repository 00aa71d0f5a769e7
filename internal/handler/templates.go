package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/R-Gerard/Roguelike-sub001/internal/catalog"
)

// TemplateReader is the read side of the catalog.
type TemplateReader interface {
	Templates() []*catalog.Template
	Template(id string) (*catalog.Template, error)
}

// TemplateSummary is one row of the template listing.
type TemplateSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Facets      []string `json:"facets"`
}

// TemplateDetail adds the full definition.
type TemplateDetail struct {
	TemplateSummary
	Definition catalog.ItemDef `json:"definition"`
}

func summarize(tpl *catalog.Template) TemplateSummary {
	facets := tpl.Facets()
	names := make([]string, len(facets))
	for i, f := range facets {
		names[i] = f.String()
	}
	return TemplateSummary{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Facets:      names,
	}
}

// HandleListTemplates lists every loaded template ordered by id
func HandleListTemplates(templates TemplateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := templates.Templates()
		out := make([]TemplateSummary, len(all))
		for i, tpl := range all {
			out[i] = summarize(tpl)
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: out})
	}
}

// HandleGetTemplate returns one template by id
func HandleGetTemplate(templates TemplateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, err := templates.Template(chi.URLParam(r, ParamTemplateID))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: TemplateDetail{
			TemplateSummary: summarize(tpl),
			Definition:      tpl.Def,
		}})
	}
}
