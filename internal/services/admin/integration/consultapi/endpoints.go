package consultapi

import (
	"context"
	"net/http"
	"strings"
)

// Login exchanges admin credentials for a bearer token. It does not require a
// session.
func (c *Client) Login(ctx context.Context, email string, password string) (Session, error) {
	return call(ctx, c, request{
		op:     "Login",
		method: http.MethodPost,
		path:   "/admin/login",
		body:   map[string]string{"email": email, "password": password},
		public: true,
	}, decodeLogin)
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return call(ctx, c, request{op: "ListUsers", method: http.MethodGet, path: "/admin/getAllUsers"}, decodeUserList)
}

// CreateUser posts a new account; experts are created through it with role expert.
func (c *Client) CreateUser(ctx context.Context, input ExpertInput) error {
	_, err := call(ctx, c, request{op: "CreateUser", method: http.MethodPost, path: "/admin/users", body: input}, decodeAck)
	return err
}

// UpdateUser updates users and experts alike.
func (c *Client) UpdateUser(ctx context.Context, id string, input UserInput) error {
	_, err := call(ctx, c, request{op: "UpdateUser", method: http.MethodPut, path: idPath("/admin/users", id), body: input}, decodeAck)
	return err
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteUser", method: http.MethodDelete, path: idPath("/admin/users", id)}, decodeAck)
	return err
}

func (c *Client) ListExperts(ctx context.Context) ([]Expert, error) {
	return call(ctx, c, request{op: "ListExperts", method: http.MethodGet, path: "/admin/getAllExperts"}, decodeExpertList)
}

func (c *Client) ListVerifiedExperts(ctx context.Context) ([]Expert, error) {
	return call(ctx, c, request{op: "ListVerifiedExperts", method: http.MethodGet, path: "/admin/getVerifiedExperts"}, decodeExpertList)
}

func (c *Client) GetExpert(ctx context.Context, id string) (Expert, error) {
	return call(ctx, c, request{op: "GetExpert", method: http.MethodGet, path: idPath("/admin/getExpertById", id)}, decodeExpertDetail)
}

func (c *Client) DeleteExpert(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteExpert", method: http.MethodDelete, path: idPath("/admin/experts", id)}, decodeAck)
	return err
}

func (c *Client) SetExpertBlocked(ctx context.Context, id string, blocked bool) error {
	_, err := call(ctx, c, request{
		op:     "SetExpertBlocked",
		method: http.MethodPatch,
		path:   idPath("/admin/expert/block", id),
		body:   map[string]bool{"block": blocked},
	}, decodeAck)
	return err
}

// ToggleExpertVerification flips the expert's verification on the server.
func (c *Client) ToggleExpertVerification(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{
		op:     "ToggleExpertVerification",
		method: http.MethodPatch,
		path:   idPath("/admin/toggleVerification", id),
		body:   struct{}{},
	}, decodeAck)
	return err
}

func (c *Client) ExpertCallStats(ctx context.Context, id string) (CallStats, error) {
	return call(ctx, c, request{op: "ExpertCallStats", method: http.MethodGet, path: idPath("/calls/by-expert", id)}, decodeCallStats)
}

func (c *Client) ListExpertise(ctx context.Context) ([]Expertise, error) {
	return call(ctx, c, request{op: "ListExpertise", method: http.MethodGet, path: "/admin/expertise"}, decodeExpertiseList)
}

func (c *Client) CreateExpertise(ctx context.Context, input ExpertiseInput) error {
	_, err := call(ctx, c, request{op: "CreateExpertise", method: http.MethodPost, path: "/admin/expertise", body: input}, decodeSuccess)
	return err
}

func (c *Client) UpdateExpertise(ctx context.Context, id string, input ExpertiseInput) error {
	_, err := call(ctx, c, request{op: "UpdateExpertise", method: http.MethodPut, path: idPath("/admin/expertise", id), body: input}, decodeSuccess)
	return err
}

func (c *Client) DeleteExpertise(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteExpertise", method: http.MethodDelete, path: idPath("/admin/expertise", id)}, decodeAck)
	return err
}

func (c *Client) ListQualifications(ctx context.Context) ([]Qualification, error) {
	return call(ctx, c, request{op: "ListQualifications", method: http.MethodGet, path: "/admin/qualification"}, decodeQualificationList)
}

func (c *Client) DeleteQualification(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteQualification", method: http.MethodDelete, path: idPath("/admin/qualification", id)}, decodeAck)
	return err
}

func (c *Client) CreateDesignation(ctx context.Context, name string) error {
	_, err := call(ctx, c, request{
		op:     "CreateDesignation",
		method: http.MethodPost,
		path:   "/admin/designation",
		body:   map[string]string{"name": name},
	}, decodeSuccess)
	return err
}

func (c *Client) ListWallets(ctx context.Context) ([]Wallet, error) {
	return call(ctx, c, request{op: "ListWallets", method: http.MethodGet, path: "/wallet/"}, decodeWalletList)
}

func (c *Client) CreateWallet(ctx context.Context, input WalletInput) error {
	_, err := call(ctx, c, request{op: "CreateWallet", method: http.MethodPost, path: "/wallet/", body: input}, decodeAck)
	return err
}

func (c *Client) UpdateWallet(ctx context.Context, id string, input WalletInput) error {
	_, err := call(ctx, c, request{op: "UpdateWallet", method: http.MethodPut, path: idPath("/wallet", id), body: input}, decodeAck)
	return err
}

func (c *Client) DeleteWallet(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteWallet", method: http.MethodDelete, path: idPath("/wallet", id)}, decodeAck)
	return err
}

func (c *Client) ListPayouts(ctx context.Context) ([]Payout, error) {
	return call(ctx, c, request{op: "ListPayouts", method: http.MethodGet, path: "/admin/withdraw/payouts"}, decodePayoutList)
}

func (c *Client) CreatePayout(ctx context.Context, input PayoutInput) error {
	_, err := call(ctx, c, request{op: "CreatePayout", method: http.MethodPost, path: "/admin/withdraw/create-payout", body: input}, decodeAck)
	return err
}

func (c *Client) UpdatePayout(ctx context.Context, id string, input PayoutInput) error {
	_, err := call(ctx, c, request{op: "UpdatePayout", method: http.MethodPut, path: idPath("/admin/payouts", id), body: input}, decodeAck)
	return err
}

func (c *Client) DeletePayout(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeletePayout", method: http.MethodDelete, path: idPath("/admin/payouts", id)}, decodeAck)
	return err
}

// ListWithdrawals filters on the server; "" and "all" list every status.
func (c *Client) ListWithdrawals(ctx context.Context, status string) ([]Withdrawal, error) {
	req := request{op: "ListWithdrawals", method: http.MethodGet, path: "/admin/withdraw/all"}
	if status = strings.TrimSpace(status); status != "" && status != "all" {
		req.query = map[string]string{"status": status}
	}
	return call(ctx, c, req, decodeWithdrawalList)
}

func (c *Client) ApproveWithdrawal(ctx context.Context, id string, transactionID string) error {
	_, err := call(ctx, c, request{
		op:     "ApproveWithdrawal",
		method: http.MethodPost,
		path:   idPath("/admin/withdraw/approve", id),
		body:   map[string]string{"transactionId": transactionID},
	}, decodeAck)
	return err
}

func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	return call(ctx, c, request{op: "ListReviews", method: http.MethodGet, path: "/reviews/all"}, decodeReviewList)
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	_, err := call(ctx, c, request{op: "DeleteReview", method: http.MethodDelete, path: idPath("/review", id)}, decodeAck)
	return err
}

func (c *Client) ListCalls(ctx context.Context) ([]Call, error) {
	return call(ctx, c, request{op: "ListCalls", method: http.MethodGet, path: "/admin/calls"}, decodeCallList)
}
