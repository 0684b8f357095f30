package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/template"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

type TemplatesHandler struct {
	list *template.ListTemplates
	get  *template.GetTemplate
	log  zerolog.Logger
}

func NewTemplatesHandler(list *template.ListTemplates, get *template.GetTemplate, log zerolog.Logger) *TemplatesHandler {
	return &TemplatesHandler{list: list, get: get, log: log}
}

type templateView struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        string       `json:"type"`
	Category    string       `json:"category"`
	Clauses     []clauseView `json:"clauses"`
	CreatedAt   time.Time    `json:"created_at"`
}

func toTemplateView(t *domain.ContractTemplate) templateView {
	clauses := make([]clauseView, 0, len(t.Clauses))
	for _, cl := range t.Clauses {
		clauses = append(clauses, clauseView{Title: cl.Title, Content: cl.Content, Order: cl.Order})
	}
	return templateView{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Clauses:     clauses,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *TemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ports.TemplateFilter{
		Category: r.URL.Query().Get("category"),
		Type:     r.URL.Query().Get("type"),
		Search:   r.URL.Query().Get("search"),
	}
	templates, err := h.list.Execute(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("list templates failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, toTemplateView(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": views})
}

func (h *TemplatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid template id")
		return
	}
	t, err := h.get.Execute(r.Context(), domain.NewTemplateID(id))
	if err != nil {
		switch err {
		case domerrors.ErrTemplateNotFound:
			writeErr(w, http.StatusNotFound, "", err.Error())
		case domerrors.ErrTemplatePrivate:
			writeErr(w, http.StatusForbidden, "", err.Error())
		default:
			h.log.Error().Err(err).Msg("get template failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, toTemplateView(t))
}
