package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/doubtsclear/console/internal/platform/timeouts"
	"github.com/doubtsclear/console/internal/services/admin/dashboard"
	"github.com/doubtsclear/console/internal/services/admin/templates"
)

// handleDashboard renders the dashboard shell; statistics load lazily.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "dashboard.title", templates.DashboardPage(page), http.StatusOK)
}

// handleDashboardContent joins the four dashboard collections.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	page := h.pageContext(lang, loc, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Dashboard)
	defer cancel()

	view := templates.DashboardView{}
	summary, err := dashboard.Load(ctx, h.client)
	if err != nil {
		log.Printf("load dashboard: %v", err)
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		view.ErrorMessage = loc.Sprintf("dashboard.error")
	} else {
		view.Summary = summary
	}
	h.renderFragment(w, r, templates.DashboardContent(page, view))
}
