package experts

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines expert route handlers consumed by this route module.
type Service interface {
	HandleExpertsPage(w http.ResponseWriter, r *http.Request)
	HandleExpertsTable(w http.ResponseWriter, r *http.Request)
	HandleVerifiedExpertsPage(w http.ResponseWriter, r *http.Request)
	HandleVerifiedExpertsTable(w http.ResponseWriter, r *http.Request)
	HandleUnverifiedExpertsPage(w http.ResponseWriter, r *http.Request)
	HandleUnverifiedExpertsTable(w http.ResponseWriter, r *http.Request)
	HandleExpertCreate(w http.ResponseWriter, r *http.Request)
	HandleExpertUpdate(w http.ResponseWriter, r *http.Request, expertID string)
	HandleExpertDelete(w http.ResponseWriter, r *http.Request, expertID string)
	HandleExpertBlock(w http.ResponseWriter, r *http.Request, expertID string)
	HandleExpertReview(w http.ResponseWriter, r *http.Request, expertID string)
	HandleExpertVerification(w http.ResponseWriter, r *http.Request, expertID string)
}

// RegisterRoutes wires expert routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Experts, service.HandleExpertsPage)
	mux.HandleFunc(routepath.ExpertsTable, service.HandleExpertsTable)
	mux.HandleFunc(routepath.ExpertsVerified, service.HandleVerifiedExpertsPage)
	mux.HandleFunc(routepath.ExpertsVerifiedTable, service.HandleVerifiedExpertsTable)
	mux.HandleFunc(routepath.ExpertsUnverified, service.HandleUnverifiedExpertsPage)
	mux.HandleFunc(routepath.ExpertsUnverifiedTable, service.HandleUnverifiedExpertsTable)
	mux.HandleFunc(routepath.ExpertsCreate, service.HandleExpertCreate)
	mux.HandleFunc(routepath.ExpertsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleExpertPath(w, r, service)
	})
}

// HandleExpertPath parses expert subroutes and dispatches to service handlers.
func HandleExpertPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	expertID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.ExpertsPrefix)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch action {
	case "":
		service.HandleExpertUpdate(w, r, expertID)
	case routepath.DeleteSuffix:
		service.HandleExpertDelete(w, r, expertID)
	case "block":
		service.HandleExpertBlock(w, r, expertID)
	case "review":
		service.HandleExpertReview(w, r, expertID)
	case "verification":
		service.HandleExpertVerification(w, r, expertID)
	default:
		http.NotFound(w, r)
	}
}
