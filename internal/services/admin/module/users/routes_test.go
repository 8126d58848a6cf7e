package users

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastUser string
}

func (f *fakeService) HandleUsersPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "users_page"
}

func (f *fakeService) HandleUsersTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "users_table"
}

func (f *fakeService) HandleUserUpdate(_ http.ResponseWriter, _ *http.Request, userID string) {
	f.lastCall = "users_update"
	f.lastUser = userID
}

func (f *fakeService) HandleUserDelete(_ http.ResponseWriter, _ *http.Request, userID string) {
	f.lastCall = "users_delete"
	f.lastUser = userID
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		method   string
		wantCode int
		wantCall string
		wantUser string
	}{
		{path: "/users", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "users_page"},
		{path: "/users/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "users_table"},
		{path: "/users/u-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "users_update", wantUser: "u-1"},
		{path: "/users/u-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "users_delete", wantUser: "u-1"},
		{path: "/users/u-1/invites", method: http.MethodGet, wantCode: http.StatusNotFound},
		{path: "/users/u-1/delete/extra", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall = ""
			svc.lastUser = ""

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
			if svc.lastUser != tc.wantUser {
				t.Fatalf("lastUser = %q, want %q", svc.lastUser, tc.wantUser)
			}
		})
	}
}

func TestRegisterRoutesNilInputs(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &fakeService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)

	rec := httptest.NewRecorder()
	HandleUserPath(rec, httptest.NewRequest(http.MethodGet, "/users/u-1", nil), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleUserPathRedirectsTrailingSlash(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleUserPath(rec, httptest.NewRequest(http.MethodGet, "/users/u-1/", nil), &fakeService{})
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMovedPermanently)
	}
}
