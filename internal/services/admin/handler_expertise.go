package admin

import (
	"context"
	"net/http"
	"strings"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

func expertiseSearchFields(expertise consultapi.Expertise) []string {
	return []string{expertise.Name, strings.Join(expertise.Category, " ")}
}

func expertiseID(expertise consultapi.Expertise) string {
	return expertise.ID
}

func (h *Handler) expertiseList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Expertise] {
	return loadList(h, r, loc, q, listSource[consultapi.Expertise]{
		op:     "list expertise",
		fetch:  h.client.ListExpertise,
		fields: expertiseSearchFields,
		idOf:   expertiseID,
		size:   listview.DefaultPageSize,
	})
}

func expertiseView(list loadedList[consultapi.Expertise]) templates.ExpertiseView {
	return templates.ExpertiseView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handleExpertisePage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.expertiseList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertiseView(list)
	if list.Selected != nil && list.Modal.Is(listview.ModalEditing) {
		view.Form = forms.ExpertiseFormFrom(*list.Selected)
	}
	h.renderExpertisePage(w, r, loc, lang, view, http.StatusOK)
}

func (h *Handler) handleExpertiseTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.expertiseList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.ExpertiseTable(h.pageContext(lang, loc, r), expertiseView(list)))
}

func (h *Handler) handleExpertiseCreate(w http.ResponseWriter, r *http.Request) {
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalCreating, "")
	h.submitExpertise(w, r, q, "", func(ctx context.Context, input consultapi.ExpertiseInput) error {
		return h.client.CreateExpertise(ctx, input)
	})
}

func (h *Handler) handleExpertiseUpdate(w http.ResponseWriter, r *http.Request, id string) {
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalEditing, id)
	h.submitExpertise(w, r, q, id, func(ctx context.Context, input consultapi.ExpertiseInput) error {
		return h.client.UpdateExpertise(ctx, id, input)
	})
}

// submitExpertise handles both expertise modals. Tag add and remove actions
// only redraw the draft; the API is called when the form is saved.
func (h *Handler) submitExpertise(w http.ResponseWriter, r *http.Request, q listview.Query, id string, save func(context.Context, consultapi.ExpertiseInput) error) {
	loc, lang := h.localizer(w, r)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Expertise)) {
		return
	}
	form := forms.ParseExpertiseForm(r.PostForm)
	status, formError := http.StatusOK, ""
	var errs forms.Errors
	if !form.ApplyTagAction() {
		errs = form.Validate()
		status = http.StatusUnprocessableEntity
		if errs.OK() {
			err := h.mutate(r, "save expertise", func(ctx context.Context) error {
				return save(ctx, form.Input())
			})
			if err == nil {
				sharedhtmx.Redirect(w, r, q.List().URL(routepath.Expertise))
				return
			}
			if h.redirectUnauthorized(w, r, err) {
				return
			}
			status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
		}
	}

	list := h.expertiseList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertiseView(list)
	view.Modal.FormError = formError
	view.Form = form
	view.Errors = errs
	h.renderExpertisePage(w, r, loc, lang, view, status)
}

func (h *Handler) handleExpertiseDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Expertise)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete expertise", func(ctx context.Context) error {
		return h.client.DeleteExpertise(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Expertise))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.expertiseList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := expertiseView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderExpertisePage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderExpertisePage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.ExpertiseView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "expertise.title", templates.ExpertisePage(page, view), status)
}
