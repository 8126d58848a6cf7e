package payouts

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall   string
	lastPayout string
}

func (f *fakeService) HandlePayoutsPage(http.ResponseWriter, *http.Request)   { f.lastCall = "page" }
func (f *fakeService) HandlePayoutsTable(http.ResponseWriter, *http.Request)  { f.lastCall = "table" }
func (f *fakeService) HandlePayoutCreate(http.ResponseWriter, *http.Request)  { f.lastCall = "create" }
func (f *fakeService) HandlePayoutsExport(http.ResponseWriter, *http.Request) { f.lastCall = "export" }

func (f *fakeService) HandlePayoutUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastPayout = "update", id
}

func (f *fakeService) HandlePayoutDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastPayout = "delete", id
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
		wantPayout string
	}{
		{path: "/payouts", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{path: "/payouts/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "table"},
		{path: "/payouts/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{path: "/payouts/export.csv", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "export"},
		{path: "/payouts/p-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "update", wantPayout: "p-1"},
		{path: "/payouts/p-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "delete", wantPayout: "p-1"},
		{path: "/payouts/p-1/retry", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastPayout = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall || svc.lastPayout != tc.wantPayout {
				t.Fatalf("call = (%q, %q), want (%q, %q)", svc.lastCall, svc.lastPayout, tc.wantCall, tc.wantPayout)
			}
		})
	}
}
