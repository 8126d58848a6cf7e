package withdrawals

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastID   string
}

func (f *fakeService) HandleWithdrawalsPage(http.ResponseWriter, *http.Request) { f.lastCall = "page" }
func (f *fakeService) HandleWithdrawalsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "table"
}

func (f *fakeService) HandleWithdrawalApprove(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "approve", id
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		path     string
		wantCode int
		wantCall string
		wantID   string
	}{
		{path: "/withdrawals", wantCode: http.StatusOK, wantCall: "page"},
		{path: "/withdrawals/table", wantCode: http.StatusOK, wantCall: "table"},
		{path: "/withdrawals/wd-1/approve", wantCode: http.StatusOK, wantCall: "approve", wantID: "wd-1"},
		{path: "/withdrawals/wd-1", wantCode: http.StatusNotFound},
		{path: "/withdrawals/wd-1/delete", wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastID = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall || svc.lastID != tc.wantID {
				t.Fatalf("call = (%q, %q), want (%q, %q)", svc.lastCall, svc.lastID, tc.wantCall, tc.wantID)
			}
		})
	}
}
