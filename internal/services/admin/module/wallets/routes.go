package wallets

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines wallet route handlers consumed by this route module.
type Service interface {
	HandleWalletsPage(w http.ResponseWriter, r *http.Request)
	HandleWalletsTable(w http.ResponseWriter, r *http.Request)
	HandleWalletCreate(w http.ResponseWriter, r *http.Request)
	HandleWalletUpdate(w http.ResponseWriter, r *http.Request, walletID string)
	HandleWalletDelete(w http.ResponseWriter, r *http.Request, walletID string)
}

// RegisterRoutes wires wallet routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Wallets, service.HandleWalletsPage)
	mux.HandleFunc(routepath.WalletsTable, service.HandleWalletsTable)
	mux.HandleFunc(routepath.WalletsCreate, service.HandleWalletCreate)
	mux.HandleFunc(routepath.WalletsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleWalletPath(w, r, service)
	})
}

// HandleWalletPath parses wallet subroutes and dispatches to service handlers.
func HandleWalletPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	walletID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.WalletsPrefix)
	switch {
	case !ok:
		http.NotFound(w, r)
	case action == "":
		service.HandleWalletUpdate(w, r, walletID)
	case action == routepath.DeleteSuffix:
		service.HandleWalletDelete(w, r, walletID)
	default:
		http.NotFound(w, r)
	}
}
