package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
	"github.com/rankandrent/Packaginghippo-sub002/internal/metadata"
	"github.com/rankandrent/Packaginghippo-sub002/internal/templates/layouts"
	"github.com/rankandrent/Packaginghippo-sub002/internal/templates/pages"
)

// Dashboard shows the catalog counts.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := diag.CollectCounts(ctx, h.catalog)
	if err != nil {
		h.logger.Error("failed to count catalog", "error", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "Dashboard", pages.Dashboard(counts))
}

// Categories lists the product categories.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.catalog.ListCategorySummaries(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", "error", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "Categories", pages.Categories(categories))
}

// Sections lists the homepage sections in display order.
func (h *Handlers) Sections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sections, err := h.catalog.ListHomepageSections(ctx)
	if err != nil {
		h.logger.Error("failed to list homepage sections", "error", err)
		http.Error(w, "Failed to load homepage sections", http.StatusInternalServerError)
		return
	}
	diag.SortSections(sections)

	h.render(w, r, "Homepage Sections", pages.Sections(sections))
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	siteName := h.config.SiteName
	if siteName == "" {
		siteName = metadata.DefaultSiteName
	}
	page := layouts.AdminPage{
		Title:    metadata.DeriveTitleFor(title, siteName),
		SiteName: siteName,
		Path:     r.URL.Path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layouts.Admin(page, content).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}
