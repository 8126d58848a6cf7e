package reviews

import (
	"net/http"

	sharedpath "github.com/doubtsclear/console/internal/services/admin/module/sharedpath"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
)

// Service defines review route handlers consumed by this route module.
type Service interface {
	HandleReviewsPage(w http.ResponseWriter, r *http.Request)
	HandleReviewsTable(w http.ResponseWriter, r *http.Request)
	HandleReviewDelete(w http.ResponseWriter, r *http.Request, reviewID string)
}

// RegisterRoutes wires review routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Reviews, service.HandleReviewsPage)
	mux.HandleFunc(routepath.ReviewsTable, service.HandleReviewsTable)
	mux.HandleFunc(routepath.ReviewsPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleReviewPath(w, r, service)
	})
}

// HandleReviewPath dispatches the review delete subroute.
func HandleReviewPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}
	reviewID, action, ok := sharedpath.EntityRoute(r.URL.Path, routepath.ReviewsPrefix)
	if !ok || action != routepath.DeleteSuffix {
		http.NotFound(w, r)
		return
	}
	service.HandleReviewDelete(w, r, reviewID)
}
