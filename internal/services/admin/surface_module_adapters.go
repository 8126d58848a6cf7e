package admin

import (
	"net/http"

	callsmodule "github.com/doubtsclear/console/internal/services/admin/module/calls"
	dashboardmodule "github.com/doubtsclear/console/internal/services/admin/module/dashboard"
	designationsmodule "github.com/doubtsclear/console/internal/services/admin/module/designations"
	expertisemodule "github.com/doubtsclear/console/internal/services/admin/module/expertise"
	expertsmodule "github.com/doubtsclear/console/internal/services/admin/module/experts"
	payoutsmodule "github.com/doubtsclear/console/internal/services/admin/module/payouts"
	qualificationsmodule "github.com/doubtsclear/console/internal/services/admin/module/qualifications"
	reviewsmodule "github.com/doubtsclear/console/internal/services/admin/module/reviews"
	sessionmodule "github.com/doubtsclear/console/internal/services/admin/module/session"
	usersmodule "github.com/doubtsclear/console/internal/services/admin/module/users"
	walletsmodule "github.com/doubtsclear/console/internal/services/admin/module/wallets"
	withdrawalsmodule "github.com/doubtsclear/console/internal/services/admin/module/withdrawals"
)

// registerModules mounts every authenticated module route plus the public
// login routes on mux.
func (h *Handler) registerModules(mux *http.ServeMux) {
	sessionmodule.RegisterPublicRoutes(mux, h)
	sessionmodule.RegisterRoutes(mux, h)
	dashboardmodule.RegisterRoutes(mux, h)
	usersmodule.RegisterRoutes(mux, h)
	expertsmodule.RegisterRoutes(mux, newExpertsModuleService(h))
	expertisemodule.RegisterRoutes(mux, h)
	qualificationsmodule.RegisterRoutes(mux, h)
	designationsmodule.RegisterRoutes(mux, h)
	walletsmodule.RegisterRoutes(mux, h)
	payoutsmodule.RegisterRoutes(mux, h)
	withdrawalsmodule.RegisterRoutes(mux, h)
	reviewsmodule.RegisterRoutes(mux, h)
	callsmodule.RegisterRoutes(mux, h)
}

// expertsModuleService binds the three expert list routes to their list
// variants.
type expertsModuleService struct {
	handler *Handler
}

func newExpertsModuleService(h *Handler) expertsmodule.Service {
	if h == nil {
		return nil
	}
	return expertsModuleService{handler: h}
}

func (s expertsModuleService) HandleExpertsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsPage(w, r, allExperts)
}

func (s expertsModuleService) HandleExpertsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsTable(w, r, allExperts)
}

func (s expertsModuleService) HandleVerifiedExpertsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsPage(w, r, verifiedExperts)
}

func (s expertsModuleService) HandleVerifiedExpertsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsTable(w, r, verifiedExperts)
}

func (s expertsModuleService) HandleUnverifiedExpertsPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsPage(w, r, unverifiedExperts)
}

func (s expertsModuleService) HandleUnverifiedExpertsTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertsTable(w, r, unverifiedExperts)
}

func (s expertsModuleService) HandleExpertCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleExpertCreate(w, r)
}

func (s expertsModuleService) HandleExpertUpdate(w http.ResponseWriter, r *http.Request, expertID string) {
	s.handler.handleExpertUpdate(w, r, expertID)
}

func (s expertsModuleService) HandleExpertDelete(w http.ResponseWriter, r *http.Request, expertID string) {
	s.handler.handleExpertDelete(w, r, expertID)
}

func (s expertsModuleService) HandleExpertBlock(w http.ResponseWriter, r *http.Request, expertID string) {
	s.handler.handleExpertBlock(w, r, expertID)
}

func (s expertsModuleService) HandleExpertReview(w http.ResponseWriter, r *http.Request, expertID string) {
	s.handler.handleExpertReview(w, r, expertID)
}

func (s expertsModuleService) HandleExpertVerification(w http.ResponseWriter, r *http.Request, expertID string) {
	s.handler.handleExpertVerification(w, r, expertID)
}
