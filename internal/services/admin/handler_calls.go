package admin

import (
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// callFilterStatus maps a call onto the status filter values, where ended
// calls count as completed.
func callFilterStatus(call consultapi.Call) string {
	if call.Status == consultapi.CallEnded {
		return templates.CallStatusCompleted
	}
	return call.Status
}

func (h *Handler) callsList(r *http.Request, loc *message.Printer, q listview.Query) loadedList[consultapi.Call] {
	return loadList(h, r, loc, q, listSource[consultapi.Call]{
		op:    "list calls",
		fetch: h.client.ListCalls,
		fields: func(call consultapi.Call) []string {
			return []string{call.Caller.Ref.Name, call.Receiver.Ref.Name}
		},
		status: callFilterStatus,
		idOf: func(call consultapi.Call) string {
			return call.ID
		},
		size: listview.CallsPageSize,
	})
}

func (h *Handler) handleCallsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.callsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	page := h.pageContext(lang, loc, r)
	h.renderPage(w, r, page, "calls.title", templates.CallsPage(page, templates.CallsView{List: list.View}), http.StatusOK)
}

func (h *Handler) handleCallsTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	list := h.callsList(r, loc, listview.ParseQuery(r.URL.Query()).List())
	if h.redirectUnauthorized(w, r, list.Err) {
		return
	}
	h.renderFragment(w, r, templates.CallsTable(h.pageContext(lang, loc, r), templates.CallsView{List: list.View}))
}
