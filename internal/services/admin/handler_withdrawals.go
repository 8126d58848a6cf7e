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

// withdrawalsList filters by status on the API side, so the fetch depends on
// the query and no client-side status filter is applied.
func (h *Handler) withdrawalsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Withdrawal] {
	status := q.Status
	if status == listview.StatusAll {
		status = ""
	}
	return loadList(h, r, loc, q, listSource[consultapi.Withdrawal]{
		op: "list withdrawals",
		fetch: func(ctx context.Context) ([]consultapi.Withdrawal, error) {
			return h.client.ListWithdrawals(ctx, status)
		},
		fields: func(withdrawal consultapi.Withdrawal) []string {
			return []string{withdrawal.Expert.Name, withdrawal.Expert.Email}
		},
		idOf: func(withdrawal consultapi.Withdrawal) string {
			return withdrawal.ID
		},
		size: listview.DefaultPageSize,
	})
}

func withdrawalsView(list loadedList[consultapi.Withdrawal]) templates.WithdrawalsView {
	return templates.WithdrawalsView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handleWithdrawalsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.withdrawalsList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderWithdrawalsPage(w, r, loc, lang, withdrawalsView(list), http.StatusOK)
}

func (h *Handler) handleWithdrawalsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.withdrawalsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.WithdrawalsTable(h.pageContext(lang, loc, r), withdrawalsView(list)))
}

// handleWithdrawalApprove marks a pending withdrawal approved with the
// transaction id of the payment. The row must still be pending in a freshly
// fetched list.
func (h *Handler) handleWithdrawalApprove(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalApproving, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Withdrawals)) {
		return
	}
	list := h.withdrawalsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	if list.Err != nil {
		h.renderWithdrawalsPage(w, r, loc, lang, withdrawalsView(list), upstreamFailureStatus)
		return
	}
	if list.Selected == nil || list.Selected.Status != consultapi.WithdrawalPending {
		view := withdrawalsView(list)
		view.Modal = templates.ModalState{Modal: listview.Closed}
		view.Selected = nil
		view.Notice = loc.Sprintf("withdrawals.not_pending")
		h.renderWithdrawalsPage(w, r, loc, lang, view, http.StatusConflict)
		return
	}

	form := forms.ParseApproveForm(r.PostForm)
	errs := form.Validate()
	status, formError := http.StatusUnprocessableEntity, ""
	if errs.OK() {
		err := h.mutate(r, "approve withdrawal", func(ctx context.Context) error {
			return h.client.ApproveWithdrawal(ctx, id, form.TransactionID)
		})
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(routepath.Withdrawals))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}
	view := withdrawalsView(list)
	view.Modal.FormError = formError
	view.TransactionID = form.TransactionID
	view.Errors = errs
	h.renderWithdrawalsPage(w, r, loc, lang, view, status)
}

func (h *Handler) renderWithdrawalsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.WithdrawalsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "withdrawals.title", templates.WithdrawalsPage(page, view), status)
}
