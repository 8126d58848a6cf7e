package calls

import (
	"net/http"

	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
)

// Service defines call log route handlers consumed by this route module.
type Service interface {
	HandleCallsPage(w http.ResponseWriter, r *http.Request)
	HandleCallsTable(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires call log routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Calls, service.HandleCallsPage)
	mux.HandleFunc(routepath.CallsTable, service.HandleCallsTable)
}
