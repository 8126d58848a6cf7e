package admin

import (
	"net/http"
)

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	h.handleDashboard(w, r)
}

func (h *Handler) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	h.handleDashboardContent(w, r)
}

func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.handleLoginPage(w, r)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.handleLogin(w, r)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.handleLogout(w, r)
}

func (h *Handler) HandleSidebarToggle(w http.ResponseWriter, r *http.Request) {
	h.handleSidebarToggle(w, r)
}

func (h *Handler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	h.handleUsersPage(w, r)
}

func (h *Handler) HandleUsersTable(w http.ResponseWriter, r *http.Request) {
	h.handleUsersTable(w, r)
}

func (h *Handler) HandleUserUpdate(w http.ResponseWriter, r *http.Request, userID string) {
	h.handleUserUpdate(w, r, userID)
}

func (h *Handler) HandleUserDelete(w http.ResponseWriter, r *http.Request, userID string) {
	h.handleUserDelete(w, r, userID)
}

func (h *Handler) HandleExpertisePage(w http.ResponseWriter, r *http.Request) {
	h.handleExpertisePage(w, r)
}

func (h *Handler) HandleExpertiseTable(w http.ResponseWriter, r *http.Request) {
	h.handleExpertiseTable(w, r)
}

func (h *Handler) HandleExpertiseCreate(w http.ResponseWriter, r *http.Request) {
	h.handleExpertiseCreate(w, r)
}

func (h *Handler) HandleExpertiseUpdate(w http.ResponseWriter, r *http.Request, expertiseID string) {
	h.handleExpertiseUpdate(w, r, expertiseID)
}

func (h *Handler) HandleExpertiseDelete(w http.ResponseWriter, r *http.Request, expertiseID string) {
	h.handleExpertiseDelete(w, r, expertiseID)
}

func (h *Handler) HandleQualificationsPage(w http.ResponseWriter, r *http.Request) {
	h.handleQualificationsPage(w, r)
}

func (h *Handler) HandleQualificationsTable(w http.ResponseWriter, r *http.Request) {
	h.handleQualificationsTable(w, r)
}

func (h *Handler) HandleQualificationDelete(w http.ResponseWriter, r *http.Request, qualificationID string) {
	h.handleQualificationDelete(w, r, qualificationID)
}

func (h *Handler) HandleDesignationsPage(w http.ResponseWriter, r *http.Request) {
	h.handleDesignationsPage(w, r)
}

func (h *Handler) HandleDesignationCreate(w http.ResponseWriter, r *http.Request) {
	h.handleDesignationCreate(w, r)
}

func (h *Handler) HandleWalletsPage(w http.ResponseWriter, r *http.Request) {
	h.handleWalletsPage(w, r)
}

func (h *Handler) HandleWalletsTable(w http.ResponseWriter, r *http.Request) {
	h.handleWalletsTable(w, r)
}

func (h *Handler) HandleWalletCreate(w http.ResponseWriter, r *http.Request) {
	h.handleWalletCreate(w, r)
}

func (h *Handler) HandleWalletUpdate(w http.ResponseWriter, r *http.Request, walletID string) {
	h.handleWalletUpdate(w, r, walletID)
}

func (h *Handler) HandleWalletDelete(w http.ResponseWriter, r *http.Request, walletID string) {
	h.handleWalletDelete(w, r, walletID)
}

func (h *Handler) HandlePayoutsPage(w http.ResponseWriter, r *http.Request) {
	h.handlePayoutsPage(w, r)
}

func (h *Handler) HandlePayoutsTable(w http.ResponseWriter, r *http.Request) {
	h.handlePayoutsTable(w, r)
}

func (h *Handler) HandlePayoutCreate(w http.ResponseWriter, r *http.Request) {
	h.handlePayoutCreate(w, r)
}

func (h *Handler) HandlePayoutsExport(w http.ResponseWriter, r *http.Request) {
	h.handlePayoutsExport(w, r)
}

func (h *Handler) HandlePayoutUpdate(w http.ResponseWriter, r *http.Request, payoutID string) {
	h.handlePayoutUpdate(w, r, payoutID)
}

func (h *Handler) HandlePayoutDelete(w http.ResponseWriter, r *http.Request, payoutID string) {
	h.handlePayoutDelete(w, r, payoutID)
}

func (h *Handler) HandleWithdrawalsPage(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawalsPage(w, r)
}

func (h *Handler) HandleWithdrawalsTable(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawalsTable(w, r)
}

func (h *Handler) HandleWithdrawalApprove(w http.ResponseWriter, r *http.Request, withdrawalID string) {
	h.handleWithdrawalApprove(w, r, withdrawalID)
}

func (h *Handler) HandleReviewsPage(w http.ResponseWriter, r *http.Request) {
	h.handleReviewsPage(w, r)
}

func (h *Handler) HandleReviewsTable(w http.ResponseWriter, r *http.Request) {
	h.handleReviewsTable(w, r)
}

func (h *Handler) HandleReviewDelete(w http.ResponseWriter, r *http.Request, reviewID string) {
	h.handleReviewDelete(w, r, reviewID)
}

func (h *Handler) HandleCallsPage(w http.ResponseWriter, r *http.Request) {
	h.handleCallsPage(w, r)
}

func (h *Handler) HandleCallsTable(w http.ResponseWriter, r *http.Request) {
	h.handleCallsTable(w, r)
}
