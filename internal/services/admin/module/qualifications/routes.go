package qualifications

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines qualification route handlers consumed by this route module.
type Service interface {
	HandleQualificationsPage(w http.ResponseWriter, r *http.Request)
	HandleQualificationsTable(w http.ResponseWriter, r *http.Request)
	HandleQualificationDelete(w http.ResponseWriter, r *http.Request, qualificationID string)
}

// RegisterRoutes wires qualification routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Qualifications, service.HandleQualificationsPage)
	mux.HandleFunc(routepath.QualificationsTable, service.HandleQualificationsTable)
	mux.HandleFunc(routepath.QualificationsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleQualificationPath(w, r, service)
	})
}

// HandleQualificationPath dispatches the delete subroute. Qualifications are
// read-only otherwise.
func HandleQualificationPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	qualificationID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.QualificationsPrefix)
	if !ok || action != routepath.DeleteSuffix {
		http.NotFound(w, r)
		return
	}
	service.HandleQualificationDelete(w, r, qualificationID)
}
