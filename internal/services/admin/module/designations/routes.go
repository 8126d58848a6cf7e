package designations

import (
	"net/http"

	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
)

// Service defines designation route handlers consumed by this route module.
type Service interface {
	HandleDesignationsPage(w http.ResponseWriter, r *http.Request)
	HandleDesignationCreate(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires the designation form route into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Designations, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			service.HandleDesignationsPage(w, r)
		case http.MethodPost:
			service.HandleDesignationCreate(w, r)
		default:
			w.Header().Set("Allow", "GET, HEAD, POST")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
