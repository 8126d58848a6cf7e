package qualifications

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastID   string
}

func (f *fakeService) HandleQualificationsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "page"
}

func (f *fakeService) HandleQualificationsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "table"
}

func (f *fakeService) HandleQualificationDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "delete", id
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
		{path: "/qualifications", wantCode: http.StatusOK, wantCall: "page"},
		{path: "/qualifications/table", wantCode: http.StatusOK, wantCall: "table"},
		{path: "/qualifications/q-1/delete", wantCode: http.StatusOK, wantCall: "delete", wantID: "q-1"},
		{path: "/qualifications/q-1", wantCode: http.StatusNotFound},
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
