package consultapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	auth   string
	body   string
}

// newTestClient starts a fake API answering every request with status/body
// and records the last request it saw.
func newTestClient(t *testing.T, status int, body string) (*Client, *recordedRequest) {
	t.Helper()
	seen := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := io.ReadAll(r.Body)
		*seen = recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			auth:   r.Header.Get("Authorization"),
			body:   string(payload),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL + "/api/",
		Tokens:  TokenSourceFunc(func(context.Context) (string, error) { return "tok-1", nil }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, seen
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	tokens := TokenSourceFunc(func(context.Context) (string, error) { return "t", nil })
	if _, err := New(Config{BaseURL: "ftp://example.com", Tokens: tokens}); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
	if _, err := New(Config{BaseURL: "https://example.com"}); err == nil {
		t.Fatal("expected error for missing token source")
	}
	client, err := New(Config{Tokens: tokens})
	if err != nil {
		t.Fatalf("New default: %v", err)
	}
	if client.BaseURL() != DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
}

func TestListUsersSendsBearerToken(t *testing.T) {
	t.Parallel()

	client, seen := newTestClient(t, http.StatusOK, `{"users":[{"_id":"u1","name":"Asha","email":"asha@example.com","role":"user"}]}`)
	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 1 || users[0].ID != "u1" || users[0].Name != "Asha" {
		t.Fatalf("users = %+v", users)
	}
	if seen.method != http.MethodGet || seen.path != "/api/admin/getAllUsers" {
		t.Fatalf("request = %s %s", seen.method, seen.path)
	}
	if seen.auth != "Bearer tok-1" {
		t.Fatalf("Authorization = %q", seen.auth)
	}
}

func TestTokenIsResolvedOnEveryCall(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	var lastAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth.Store(r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"users":[]}`)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL,
		Tokens: TokenSourceFunc(func(context.Context) (string, error) {
			n := calls.Add(1)
			return "tok-" + string(rune('0'+n)), nil
		}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := client.ListUsers(context.Background()); err != nil {
			t.Fatalf("ListUsers: %v", err)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("token lookups = %d, want 2", calls.Load())
	}
	if got := lastAuth.Load().(string); got != "Bearer tok-2" {
		t.Fatalf("Authorization = %q, want Bearer tok-2", got)
	}
}

func TestMissingTokenNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits.Add(1)
	}))
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL: server.URL,
		Tokens:  TokenSourceFunc(func(context.Context) (string, error) { return "", nil }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = client.ListUsers(context.Background())
	if !IsUnauthorized(err) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("server hits = %d, want 0", hits.Load())
	}
}

func TestErrorNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantGeneric bool
	}{
		{name: "message field", status: http.StatusBadRequest, body: `{"message":"Email already exists"}`, wantStatus: 400, wantMessage: "Email already exists"},
		{name: "error field", status: http.StatusNotFound, body: `{"error":"User not found"}`, wantStatus: 404, wantMessage: "User not found"},
		{name: "no message", status: http.StatusInternalServerError, body: `{}`, wantStatus: 500, wantMessage: GenericMessage, wantGeneric: true},
		{name: "html body", status: http.StatusBadGateway, body: `<html>bad gateway</html>`, wantStatus: 502, wantMessage: GenericMessage, wantGeneric: true},
		{name: "malformed success body", status: http.StatusOK, body: `{"users":`, wantStatus: 200, wantMessage: GenericMessage, wantGeneric: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client, _ := newTestClient(t, tc.status, tc.body)
			_, err := client.ListUsers(context.Background())
			apiErr, ok := AsError(err)
			if !ok {
				t.Fatalf("err = %v, want *Error", err)
			}
			if apiErr.Status != tc.wantStatus || apiErr.Message != tc.wantMessage || apiErr.Generic != tc.wantGeneric {
				t.Fatalf("error = %+v, want status %d message %q generic %v", apiErr, tc.wantStatus, tc.wantMessage, tc.wantGeneric)
			}
			if apiErr.Op != "ListUsers" {
				t.Fatalf("Op = %q", apiErr.Op)
			}
		})
	}
}

func TestTransportFailureIsGeneric(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := New(Config{
		BaseURL: baseURL,
		Tokens:  TokenSourceFunc(func(context.Context) (string, error) { return "t", nil }),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = client.ListCalls(context.Background())
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != 0 || !apiErr.Generic || apiErr.Err == nil {
		t.Fatalf("error = %+v, want transport failure", apiErr)
	}
}

func TestEndpointsUseDocumentedRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		call       func(*Client) error
		wantMethod string
		wantPath   string
		wantQuery  string
		wantBody   map[string]any
	}{
		{
			name: "update user",
			call: func(c *Client) error {
				return c.UpdateUser(context.Background(), "u1", UserInput{Name: "A", Email: "a@example.com", Role: RoleAdmin})
			},
			wantMethod: http.MethodPut, wantPath: "/api/admin/users/u1",
			wantBody: map[string]any{"name": "A", "email": "a@example.com", "phone": "", "role": "admin"},
		},
		{
			name:       "delete user",
			call:       func(c *Client) error { return c.DeleteUser(context.Background(), "u1") },
			wantMethod: http.MethodDelete, wantPath: "/api/admin/users/u1",
		},
		{
			name: "create expert",
			call: func(c *Client) error {
				return c.CreateUser(context.Background(), ExpertInput{Name: "E", Email: "e@example.com", Password: "pw", Role: RoleExpert})
			},
			wantMethod: http.MethodPost, wantPath: "/api/admin/users",
			wantBody: map[string]any{"name": "E", "email": "e@example.com", "phone": "", "password": "pw", "role": "expert"},
		},
		{
			name:       "block expert",
			call:       func(c *Client) error { return c.SetExpertBlocked(context.Background(), "e1", true) },
			wantMethod: http.MethodPatch, wantPath: "/api/admin/expert/block/e1",
			wantBody: map[string]any{"block": true},
		},
		{
			name:       "toggle verification",
			call:       func(c *Client) error { return c.ToggleExpertVerification(context.Background(), "e1") },
			wantMethod: http.MethodPatch, wantPath: "/api/admin/toggleVerification/e1",
			wantBody: map[string]any{},
		},
		{
			name:       "delete expert",
			call:       func(c *Client) error { return c.DeleteExpert(context.Background(), "e1") },
			wantMethod: http.MethodDelete, wantPath: "/api/admin/experts/e1",
		},
		{
			name: "create expertise",
			body: `{"success":true}`,
			call: func(c *Client) error {
				return c.CreateExpertise(context.Background(), ExpertiseInput{Name: "Maths", Category: []string{"Algebra"}})
			},
			wantMethod: http.MethodPost, wantPath: "/api/admin/expertise",
			wantBody: map[string]any{"name": "Maths", "category": []any{"Algebra"}},
		},
		{
			name:       "create designation",
			body:       `{"success":true}`,
			call:       func(c *Client) error { return c.CreateDesignation(context.Background(), "Senior") },
			wantMethod: http.MethodPost, wantPath: "/api/admin/designation",
			wantBody: map[string]any{"name": "Senior"},
		},
		{
			name:       "delete qualification",
			call:       func(c *Client) error { return c.DeleteQualification(context.Background(), "q1") },
			wantMethod: http.MethodDelete, wantPath: "/api/admin/qualification/q1",
		},
		{
			name:       "create wallet",
			call:       func(c *Client) error { return c.CreateWallet(context.Background(), WalletInput{Money: 500, Offer: 10}) },
			wantMethod: http.MethodPost, wantPath: "/api/wallet/",
			wantBody: map[string]any{"money": float64(500), "offer": float64(10)},
		},
		{
			name: "update wallet",
			call: func(c *Client) error {
				return c.UpdateWallet(context.Background(), "w1", WalletInput{Money: 100, Offer: 5})
			},
			wantMethod: http.MethodPut, wantPath: "/api/wallet/w1",
			wantBody: map[string]any{"money": float64(100), "offer": float64(5)},
		},
		{
			name: "create payout upi",
			call: func(c *Client) error {
				return c.CreatePayout(context.Background(), PayoutInput{ExpertID: "e1", WithdrawalID: "wd1", Amount: 250, Method: MethodUPI, TransactionID: "tx", UPIID: "a@upi"})
			},
			wantMethod: http.MethodPost, wantPath: "/api/admin/withdraw/create-payout",
			wantBody: map[string]any{"expertId": "e1", "withdrawalId": "wd1", "amount": float64(250), "method": "UPI", "transactionId": "tx", "upiId": "a@upi"},
		},
		{
			name: "update payout bank",
			call: func(c *Client) error {
				return c.UpdatePayout(context.Background(), "p1", PayoutInput{ExpertID: "e1", WithdrawalID: "wd1", Amount: 250, Method: MethodBankTransfer, TransactionID: "tx", BankDetails: &BankDetails{AccountNumber: "1", IFSCCode: "I", HolderName: "H"}})
			},
			wantMethod: http.MethodPut, wantPath: "/api/admin/payouts/p1",
			wantBody: map[string]any{"expertId": "e1", "withdrawalId": "wd1", "amount": float64(250), "method": "Bank Transfer", "transactionId": "tx", "bankDetails": map[string]any{"accountNumber": "1", "ifscCode": "I", "holderName": "H"}},
		},
		{
			name:       "delete payout",
			call:       func(c *Client) error { return c.DeletePayout(context.Background(), "p1") },
			wantMethod: http.MethodDelete, wantPath: "/api/admin/payouts/p1",
		},
		{
			name:       "approve withdrawal",
			call:       func(c *Client) error { return c.ApproveWithdrawal(context.Background(), "wd1", "TX-9") },
			wantMethod: http.MethodPost, wantPath: "/api/admin/withdraw/approve/wd1",
			wantBody: map[string]any{"transactionId": "TX-9"},
		},
		{
			name:       "withdrawals filtered",
			body:       `{"withdrawals":[]}`,
			call:       func(c *Client) error { _, err := c.ListWithdrawals(context.Background(), "pending"); return err },
			wantMethod: http.MethodGet, wantPath: "/api/admin/withdraw/all", wantQuery: "status=pending",
		},
		{
			name:       "withdrawals all",
			body:       `{"withdrawals":[]}`,
			call:       func(c *Client) error { _, err := c.ListWithdrawals(context.Background(), "all"); return err },
			wantMethod: http.MethodGet, wantPath: "/api/admin/withdraw/all",
		},
		{
			name:       "delete review",
			call:       func(c *Client) error { return c.DeleteReview(context.Background(), "r1") },
			wantMethod: http.MethodDelete, wantPath: "/api/review/r1",
		},
		{
			name:       "call stats",
			body:       `{"totalCalls":3}`,
			call:       func(c *Client) error { _, err := c.ExpertCallStats(context.Background(), "e1"); return err },
			wantMethod: http.MethodGet, wantPath: "/api/calls/by-expert/e1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			body := tc.body
			if body == "" {
				body = `{"message":"ok"}`
			}
			client, seen := newTestClient(t, http.StatusOK, body)
			if err := tc.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if seen.method != tc.wantMethod || seen.path != tc.wantPath {
				t.Fatalf("request = %s %s, want %s %s", seen.method, seen.path, tc.wantMethod, tc.wantPath)
			}
			if seen.query != tc.wantQuery {
				t.Fatalf("query = %q, want %q", seen.query, tc.wantQuery)
			}
			if tc.wantBody == nil {
				return
			}
			var got map[string]any
			if err := json.Unmarshal([]byte(seen.body), &got); err != nil {
				t.Fatalf("decode body %q: %v", seen.body, err)
			}
			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(tc.wantBody)
			if string(gotJSON) != string(wantJSON) {
				t.Fatalf("body = %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestLoginIsPublic(t *testing.T) {
	t.Parallel()

	client, seen := newTestClient(t, http.StatusOK, `{"user":{"_id":"a1","name":"Root","role":"admin"},"token":"jwt"}`)
	session, err := client.Login(context.Background(), "root@example.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token != "jwt" || session.User.Role != RoleAdmin {
		t.Fatalf("session = %+v", session)
	}
	if seen.auth != "" {
		t.Fatalf("Authorization = %q, want none", seen.auth)
	}
	if !strings.Contains(seen.body, `"email":"root@example.com"`) {
		t.Fatalf("body = %q", seen.body)
	}
}

func TestEnvelopeFailureSurfacesMessage(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"success":false,"message":"Name already taken"}`)
	err := client.CreateDesignation(context.Background(), "Senior")
	apiErr, ok := AsError(err)
	if !ok || apiErr.Message != "Name already taken" || apiErr.Generic {
		t.Fatalf("err = %v", err)
	}

	client, _ = newTestClient(t, http.StatusOK, `{"success":false}`)
	_, err = client.ListExpertise(context.Background())
	apiErr, ok = AsError(err)
	if !ok || apiErr.Message != InvalidEnvelopeMessage {
		t.Fatalf("err = %v", err)
	}
}

func TestContextCancellationAbortsCall(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"users":[]}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListUsers(ctx)
	apiErr, ok := AsError(err)
	if !ok || apiErr.Status != 0 {
		t.Fatalf("err = %v, want transport failure", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
