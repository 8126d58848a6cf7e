package admin

import (
	"context"
	"encoding/csv"
	"log"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const payoutsExportFilename = "payouts.csv"

var payoutsExportHeader = []string{"ID", "Expert Name", "Expert ID", "Amount", "Method", "Transaction ID", "Paid At"}

func payoutSearchFields(payout consultapi.Payout) []string {
	return []string{payout.ID, payout.TransactionID, payout.Expert.ID, payout.Expert.Name}
}

func (h *Handler) payoutsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Payout] {
	return loadList(h, r, loc, q, listSource[consultapi.Payout]{
		op:     "list payouts",
		fetch:  h.client.ListPayouts,
		fields: payoutSearchFields,
		idOf: func(payout consultapi.Payout) string {
			return payout.ID
		},
		size: listview.DefaultPageSize,
	})
}

func payoutsView(list loadedList[consultapi.Payout]) templates.PayoutsView {
	return templates.PayoutsView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handlePayoutsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.payoutsList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := payoutsView(list)
	switch {
	case list.Modal.Is(listview.ModalCreating):
		view.Form = forms.NewPayoutForm()
	case list.Selected != nil && list.Modal.Is(listview.ModalEditing):
		view.Form = forms.PayoutFormFrom(*list.Selected)
	}
	h.renderPayoutsPage(w, r, loc, lang, view, http.StatusOK)
}

func (h *Handler) handlePayoutsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.payoutsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.PayoutsTable(h.pageContext(lang, loc, r), payoutsView(list)))
}

func (h *Handler) handlePayoutCreate(w http.ResponseWriter, r *http.Request) {
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalCreating, "")
	h.submitPayout(w, r, q, "", func(ctx context.Context, input consultapi.PayoutInput) error {
		return h.client.CreatePayout(ctx, input)
	})
}

func (h *Handler) handlePayoutUpdate(w http.ResponseWriter, r *http.Request, id string) {
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalEditing, id)
	h.submitPayout(w, r, q, id, func(ctx context.Context, input consultapi.PayoutInput) error {
		return h.client.UpdatePayout(ctx, id, input)
	})
}

// submitPayout handles the shared create and edit payout form.
func (h *Handler) submitPayout(w http.ResponseWriter, r *http.Request, q listview.Query, id string, save func(context.Context, consultapi.PayoutInput) error) {
	loc, lang := h.localizer(w, r)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Payouts)) {
		return
	}
	form := forms.ParsePayoutForm(r.PostForm)
	errs := form.Validate()
	status, formError := http.StatusUnprocessableEntity, ""
	if errs.OK() {
		err := h.mutate(r, "save payout", func(ctx context.Context) error {
			return save(ctx, form.Input())
		})
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(routepath.Payouts))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}
	list := h.payoutsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := payoutsView(list)
	view.Modal.FormError = formError
	view.Form = form
	view.Errors = errs
	h.renderPayoutsPage(w, r, loc, lang, view, status)
}

func (h *Handler) handlePayoutDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Payouts)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete payout", func(ctx context.Context) error {
		return h.client.DeletePayout(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Payouts))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.payoutsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := payoutsView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderPayoutsPage(w, r, loc, lang, view, upstreamFailureStatus)
}

// handlePayoutsExport downloads every payout matching the current search as
// CSV.
func (h *Handler) handlePayoutsExport(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	ctx, cancel := h.apiContext(r)
	defer cancel()
	payouts, err := h.client.ListPayouts(ctx)
	if err != nil {
		log.Printf("export payouts: %v", err)
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		http.Error(w, apiErrorMessage(loc, err), http.StatusBadGateway)
		return
	}
	payouts = listview.Filter(payouts, listview.ParseQuery(r.URL.Query()).Search, payoutSearchFields)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+payoutsExportFilename+`"`)
	if err := writePayoutsCSV(w, payouts); err != nil {
		log.Printf("write payouts csv: %v", err)
	}
}

func writePayoutsCSV(w http.ResponseWriter, payouts []consultapi.Payout) error {
	out := csv.NewWriter(w)
	if err := out.Write(payoutsExportHeader); err != nil {
		return err
	}
	for _, payout := range payouts {
		record := []string{
			payout.ID,
			templates.OrNA(payout.Expert.Name),
			templates.OrNA(payout.Expert.ID),
			payout.Amount.String(),
			templates.OrNA(payout.Method),
			templates.OrNA(payout.TransactionID),
			templates.FormatDateTime(payout.PaidAt),
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

func (h *Handler) renderPayoutsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.PayoutsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "payouts.title", templates.PayoutsPage(page, view), status)
}
