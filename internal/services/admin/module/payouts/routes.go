package payouts

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines payout route handlers consumed by this route module.
type Service interface {
	HandlePayoutsPage(w http.ResponseWriter, r *http.Request)
	HandlePayoutsTable(w http.ResponseWriter, r *http.Request)
	HandlePayoutCreate(w http.ResponseWriter, r *http.Request)
	HandlePayoutsExport(w http.ResponseWriter, r *http.Request)
	HandlePayoutUpdate(w http.ResponseWriter, r *http.Request, payoutID string)
	HandlePayoutDelete(w http.ResponseWriter, r *http.Request, payoutID string)
}

// RegisterRoutes wires payout routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Payouts, service.HandlePayoutsPage)
	mux.HandleFunc(routepath.PayoutsTable, service.HandlePayoutsTable)
	mux.HandleFunc(routepath.PayoutsCreate, service.HandlePayoutCreate)
	mux.HandleFunc(routepath.PayoutsExport, service.HandlePayoutsExport)
	mux.HandleFunc(routepath.PayoutsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandlePayoutPath(w, r, service)
	})
}

// HandlePayoutPath parses payout subroutes and dispatches to service handlers.
func HandlePayoutPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	payoutID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.PayoutsPrefix)
	switch {
	case !ok:
		http.NotFound(w, r)
	case action == "":
		service.HandlePayoutUpdate(w, r, payoutID)
	case action == routepath.DeleteSuffix:
		service.HandlePayoutDelete(w, r, payoutID)
	default:
		http.NotFound(w, r)
	}
}
