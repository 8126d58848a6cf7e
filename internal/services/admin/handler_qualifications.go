package admin

import (
	"context"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

func (h *Handler) qualificationsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Qualification] {
	return loadList(h, r, loc, q, listSource[consultapi.Qualification]{
		op:    "list qualifications",
		fetch: h.client.ListQualifications,
		fields: func(qualification consultapi.Qualification) []string {
			return []string{qualification.Name}
		},
		idOf: func(qualification consultapi.Qualification) string {
			return qualification.ID
		},
		size: listview.DefaultPageSize,
	})
}

func qualificationsView(list loadedList[consultapi.Qualification]) templates.QualificationsView {
	return templates.QualificationsView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handleQualificationsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.qualificationsList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderQualificationsPage(w, r, loc, lang, qualificationsView(list), http.StatusOK)
}

func (h *Handler) handleQualificationsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.qualificationsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.QualificationsTable(h.pageContext(lang, loc, r), qualificationsView(list)))
}

func (h *Handler) handleQualificationDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Qualifications)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete qualification", func(ctx context.Context) error {
		return h.client.DeleteQualification(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Qualifications))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.qualificationsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := qualificationsView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderQualificationsPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderQualificationsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.QualificationsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "qualifications.title", templates.QualificationsPage(page, view), status)
}
