package dashboard

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingService struct {
	calls []string
}

func (s *recordingService) HandleDashboard(http.ResponseWriter, *http.Request) {
	s.calls = append(s.calls, "dashboard")
}

func (s *recordingService) HandleDashboardContent(http.ResponseWriter, *http.Request) {
	s.calls = append(s.calls, "content")
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		path     string
		wantCode int
		wantCall string
	}{
		{method: http.MethodGet, path: "/", wantCode: http.StatusOK, wantCall: "dashboard"},
		{method: http.MethodHead, path: "/", wantCode: http.StatusOK, wantCall: "dashboard"},
		{method: http.MethodGet, path: "/dashboard/content", wantCode: http.StatusOK, wantCall: "content"},
		{method: http.MethodGet, path: "/nowhere", wantCode: http.StatusNotFound},
		{method: http.MethodPost, path: "/", wantCode: http.StatusMethodNotAllowed},
		{method: http.MethodDelete, path: "/dashboard/content", wantCode: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			t.Parallel()
			svc := &recordingService{}
			mux := http.NewServeMux()
			RegisterRoutes(mux, svc)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			got := ""
			if len(svc.calls) == 1 {
				got = svc.calls[0]
			}
			if len(svc.calls) > 1 || got != tc.wantCall {
				t.Fatalf("calls = %v, want %q", svc.calls, tc.wantCall)
			}
			if tc.wantCode == http.StatusMethodNotAllowed && rec.Header().Get("Allow") != "GET, HEAD" {
				t.Fatalf("Allow = %q", rec.Header().Get("Allow"))
			}
		})
	}
}

func TestRegisterRoutesIgnoresNil(t *testing.T) {
	t.Parallel()

	RegisterRoutes(nil, &recordingService{})
	mux := http.NewServeMux()
	RegisterRoutes(mux, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 on empty mux", rec.Code)
	}
}
