package expertise

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines expertise route handlers consumed by this route module.
type Service interface {
	HandleExpertisePage(w http.ResponseWriter, r *http.Request)
	HandleExpertiseTable(w http.ResponseWriter, r *http.Request)
	HandleExpertiseCreate(w http.ResponseWriter, r *http.Request)
	HandleExpertiseUpdate(w http.ResponseWriter, r *http.Request, expertiseID string)
	HandleExpertiseDelete(w http.ResponseWriter, r *http.Request, expertiseID string)
}

// RegisterRoutes wires expertise routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Expertise, service.HandleExpertisePage)
	mux.HandleFunc(routepath.ExpertiseTable, service.HandleExpertiseTable)
	mux.HandleFunc(routepath.ExpertiseCreate, service.HandleExpertiseCreate)
	mux.HandleFunc(routepath.ExpertisePrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleExpertisePath(w, r, service)
	})
}

// HandleExpertisePath parses expertise subroutes and dispatches to service handlers.
func HandleExpertisePath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	expertiseID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.ExpertisePrefix)
	switch {
	case !ok:
		http.NotFound(w, r)
	case action == "":
		service.HandleExpertiseUpdate(w, r, expertiseID)
	case action == routepath.DeleteSuffix:
		service.HandleExpertiseDelete(w, r, expertiseID)
	default:
		http.NotFound(w, r)
	}
}
