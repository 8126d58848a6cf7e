package withdrawals

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

const approveSuffix = "approve"

// Service defines withdrawal route handlers consumed by this route module.
type Service interface {
	HandleWithdrawalsPage(w http.ResponseWriter, r *http.Request)
	HandleWithdrawalsTable(w http.ResponseWriter, r *http.Request)
	HandleWithdrawalApprove(w http.ResponseWriter, r *http.Request, withdrawalID string)
}

// RegisterRoutes wires withdrawal routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Withdrawals, service.HandleWithdrawalsPage)
	mux.HandleFunc(routepath.WithdrawalsTable, service.HandleWithdrawalsTable)
	mux.HandleFunc(routepath.WithdrawalsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleWithdrawalPath(w, r, service)
	})
}

// HandleWithdrawalPath dispatches the approve subroute.
func HandleWithdrawalPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	withdrawalID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.WithdrawalsPrefix)
	if !ok || action != approveSuffix {
		http.NotFound(w, r)
		return
	}
	service.HandleWithdrawalApprove(w, r, withdrawalID)
}
