package users

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines users route handlers consumed by this route module.
type Service interface {
	HandleUsersPage(w http.ResponseWriter, r *http.Request)
	HandleUsersTable(w http.ResponseWriter, r *http.Request)
	HandleUserUpdate(w http.ResponseWriter, r *http.Request, userID string)
	HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string)
}

// RegisterRoutes wires user routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Users, service.HandleUsersPage)
	mux.HandleFunc(routepath.UsersTable, service.HandleUsersTable)
	mux.HandleFunc(routepath.UsersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleUserPath(w, r, service)
	})
}

// HandleUserPath parses user subroutes and dispatches to service handlers.
func HandleUserPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	userID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.UsersPrefix)
	switch {
	case !ok:
		http.NotFound(w, r)
	case action == "":
		service.HandleUserUpdate(w, r, userID)
	case action == routepath.DeleteSuffix:
		service.HandleUserDelete(w, r, userID)
	default:
		http.NotFound(w, r)
	}
}
