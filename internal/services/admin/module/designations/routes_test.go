package designations

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleDesignationsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "page"
}

func (f *fakeService) HandleDesignationCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "create"
}

func TestRegisterRoutesDispatchesByMethod(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	tests := []struct {
		method   string
		wantCode int
		wantCall string
	}{
		{method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{method: http.MethodDelete, wantCode: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.method, func(t *testing.T) {
			svc.lastCall = ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, "/designations", nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall {
				t.Fatalf("lastCall = %q, want %q", svc.lastCall, tc.wantCall)
			}
		})
	}
}
