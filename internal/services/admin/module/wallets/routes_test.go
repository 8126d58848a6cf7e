package wallets

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall   string
	lastWallet string
}

func (f *fakeService) HandleWalletsPage(http.ResponseWriter, *http.Request)  { f.lastCall = "page" }
func (f *fakeService) HandleWalletsTable(http.ResponseWriter, *http.Request) { f.lastCall = "table" }
func (f *fakeService) HandleWalletCreate(http.ResponseWriter, *http.Request) { f.lastCall = "create" }

func (f *fakeService) HandleWalletUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastWallet = "update", id
}

func (f *fakeService) HandleWalletDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastWallet = "delete", id
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path       string
		method     string
		wantCode   int
		wantCall   string
		wantWallet string
	}{
		{path: "/wallets", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{path: "/wallets/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "table"},
		{path: "/wallets/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{path: "/wallets/w-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "update", wantWallet: "w-1"},
		{path: "/wallets/w-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "delete", wantWallet: "w-1"},
		{path: "/wallets/w-1/topup", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastWallet = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall || svc.lastWallet != tc.wantWallet {
				t.Fatalf("call = (%q, %q), want (%q, %q)", svc.lastCall, svc.lastWallet, tc.wantCall, tc.wantWallet)
			}
		})
	}
}
