package admin

import (
	"context"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// createdParam marks the designation page reached after a successful create.
const createdParam = "created"

func (h *Handler) handleDesignationsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view := templates.DesignationView{Created: r.URL.Query().Get(createdParam) == "1"}
	h.renderDesignationPage(w, r, loc, lang, view, http.StatusOK)
}

func (h *Handler) handleDesignationCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !h.beginForm(w, r, loc, "", routepath.Designations) {
		return
	}
	form := forms.ParseDesignationForm(r.PostForm)
	view := templates.DesignationView{Form: form, Errors: form.Validate()}
	if !view.Errors.OK() {
		h.renderDesignationPage(w, r, loc, lang, view, http.StatusUnprocessableEntity)
		return
	}
	err := h.mutate(r, "create designation", func(ctx context.Context) error {
		return h.client.CreateDesignation(ctx, form.Name)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, templates.AppendQueryParam(routepath.Designations, createdParam, "1"))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	view.FormError = apiErrorMessage(loc, err)
	h.renderDesignationPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderDesignationPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.DesignationView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "designations.title", templates.DesignationPage(page, view), status)
}
