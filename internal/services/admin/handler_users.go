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

func userSearchFields(user consultapi.User) []string {
	return []string{user.Name, user.Email}
}

func userID(user consultapi.User) string {
	return user.ID
}

func (h *Handler) usersList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.User] {
	return loadList(h, r, loc, q, listSource[consultapi.User]{
		op:     "list users",
		fetch:  h.client.ListUsers,
		fields: userSearchFields,
		idOf:   userID,
		size:   listview.DefaultPageSize,
	})
}

func usersView(list loadedList[consultapi.User]) templates.UsersView {
	return templates.UsersView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

// handleUsersPage renders the users list with any open modal.
func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.usersList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := usersView(list)
	if list.Selected != nil && list.Modal.Is(listview.ModalEditing) {
		view.Form = forms.UserFormFrom(*list.Selected)
	}
	h.renderUsersPage(w, r, loc, lang, view, http.StatusOK)
}

// handleUsersTable renders the users table fragment.
func (h *Handler) handleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.usersList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.UsersTable(h.pageContext(lang, loc, r), usersView(list)))
}

// handleUserUpdate saves the edit modal.
func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalEditing, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Users)) {
		return
	}
	form := forms.ParseUserForm(r.PostForm)
	errs := form.Validate()
	status := http.StatusUnprocessableEntity
	formError := ""
	if errs.OK() {
		err := h.mutate(r, "update user", func(ctx context.Context) error {
			return h.client.UpdateUser(ctx, id, form.Input())
		})
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(routepath.Users))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}

	list := h.usersList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := usersView(list)
	view.Modal.FormError = formError
	view.Form = form
	view.Errors = errs
	h.renderUsersPage(w, r, loc, lang, view, status)
}

// handleUserDelete deletes a user after confirmation.
func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Users)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete user", func(ctx context.Context) error {
		return h.client.DeleteUser(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Users))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}

	list := h.usersList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := usersView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderUsersPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderUsersPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.UsersView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "users.title", templates.UsersPage(page, view), status)
}
