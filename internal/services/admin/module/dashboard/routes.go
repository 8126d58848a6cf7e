// Package dashboard registers the landing page and its lazily loaded
// statistics panel.
package dashboard

import (
	"net/http"

	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
)

// Service renders the dashboard shell and its statistics content.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the dashboard into mux. The root pattern also catches
// unknown paths, which answer 404.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, readOnly(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		service.HandleDashboard(w, r)
	}))
	mux.HandleFunc(routepath.DashboardContent, readOnly(service.HandleDashboardContent))
}

// readOnly admits GET and HEAD.
func readOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}
