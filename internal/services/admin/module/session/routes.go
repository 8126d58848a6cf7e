// Package session registers the unauthenticated login routes and the
// session-scoped logout and sidebar toggle actions.
package session

import (
	"net/http"

	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
)

// Service defines session route handlers consumed by this route module.
type Service interface {
	HandleLoginPage(w http.ResponseWriter, r *http.Request)
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
	HandleSidebarToggle(w http.ResponseWriter, r *http.Request)
}

// RegisterPublicRoutes wires the login form, which must stay reachable
// without a session.
func RegisterPublicRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Login, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			service.HandleLoginPage(w, r)
		case http.MethodPost:
			service.HandleLogin(w, r)
		default:
			methodNotAllowed(w, "GET, HEAD, POST")
		}
	})
}

// RegisterRoutes wires logout and sidebar toggle. Both mutate state and only
// accept POST.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Logout, postOnly(service.HandleLogout))
	mux.HandleFunc(routepath.SidebarToggle, postOnly(service.HandleSidebarToggle))
}

func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		next(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
