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

func walletSearchFields(wallet consultapi.Wallet) []string {
	return []string{wallet.ID, wallet.Offer.String()}
}

func (h *Handler) walletsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Wallet] {
	return loadList(h, r, loc, q, listSource[consultapi.Wallet]{
		op:     "list wallets",
		fetch:  h.client.ListWallets,
		fields: walletSearchFields,
		idOf: func(wallet consultapi.Wallet) string {
			return wallet.ID
		},
		size: listview.DefaultPageSize,
	})
}

func walletsView(list loadedList[consultapi.Wallet]) templates.WalletsView {
	return templates.WalletsView{
		List:     list.View,
		Modal:    templates.ModalState{Modal: list.Modal},
		Selected: list.Selected,
	}
}

func (h *Handler) handleWalletsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.walletsList(r, loc, listview.ParseQuery(r.URL.Query()))
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := walletsView(list)
	if list.Selected != nil && list.Modal.Is(listview.ModalEditing) {
		draft := forms.WalletEditFormFrom(*list.Selected)
		view.Money, view.Offer = draft.Money, draft.Offer
	}
	h.renderWalletsPage(w, r, loc, lang, view, http.StatusOK)
}

func (h *Handler) handleWalletsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.walletsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.WalletsTable(h.pageContext(lang, loc, r), walletsView(list)))
}

// handleWalletCreate creates a recharge plan. Drafts failing validation are
// re-rendered without calling the API.
func (h *Handler) handleWalletCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalCreating, "")
	if !h.beginForm(w, r, loc, "", q.URL(routepath.Wallets)) {
		return
	}
	form := forms.ParseWalletCreateForm(r.PostForm)
	h.submitWallet(w, r, loc, lang, q, form.Money, form.Offer, form.Validate(), func(ctx context.Context) error {
		return h.client.CreateWallet(ctx, form.Input())
	})
}

func (h *Handler) handleWalletUpdate(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalEditing, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Wallets)) {
		return
	}
	form := forms.ParseWalletEditForm(r.PostForm)
	h.submitWallet(w, r, loc, lang, q, form.Money, form.Offer, form.Validate(), func(ctx context.Context) error {
		return h.client.UpdateWallet(ctx, id, form.Input())
	})
}

func (h *Handler) submitWallet(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, q listview.Query, money string, offer string, errs forms.Errors, save func(context.Context) error) {
	status, formError := http.StatusUnprocessableEntity, ""
	if errs.OK() {
		err := h.mutate(r, "save wallet", save)
		if err == nil {
			sharedhtmx.Redirect(w, r, q.List().URL(routepath.Wallets))
			return
		}
		if h.redirectUnauthorized(w, r, err) {
			return
		}
		status, formError = upstreamFailureStatus, apiErrorMessage(loc, err)
	}
	list := h.walletsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := walletsView(list)
	view.Modal.FormError = formError
	view.Money, view.Offer = money, offer
	view.Errors = errs
	h.renderWalletsPage(w, r, loc, lang, view, status)
}

func (h *Handler) handleWalletDelete(w http.ResponseWriter, r *http.Request, id string) {
	loc, lang := h.localizer(w, r)
	q := listview.ParseQuery(r.URL.Query()).WithModal(listview.ModalDeleting, id)
	if !h.beginForm(w, r, loc, id, q.URL(routepath.Wallets)) {
		return
	}
	if !requireConfirmed(w, r, loc, forms.Confirmed(r.PostForm)) {
		return
	}
	err := h.mutate(r, "delete wallet", func(ctx context.Context) error {
		return h.client.DeleteWallet(ctx, id)
	})
	if err == nil {
		sharedhtmx.Redirect(w, r, q.List().URL(routepath.Wallets))
		return
	}
	if h.redirectUnauthorized(w, r, err) {
		return
	}
	list := h.walletsList(r, loc, q)
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	view := walletsView(list)
	view.Modal.FormError = apiErrorMessage(loc, err)
	h.renderWalletsPage(w, r, loc, lang, view, upstreamFailureStatus)
}

func (h *Handler) renderWalletsPage(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.WalletsView, status int) {
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "wallets.title", templates.WalletsPage(page, view), status)
}
