package expertise

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
	lastID   string
}

func (f *fakeService) HandleExpertisePage(http.ResponseWriter, *http.Request)  { f.lastCall = "page" }
func (f *fakeService) HandleExpertiseTable(http.ResponseWriter, *http.Request) { f.lastCall = "table" }
func (f *fakeService) HandleExpertiseCreate(http.ResponseWriter, *http.Request) {
	f.lastCall = "create"
}

func (f *fakeService) HandleExpertiseUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "update", id
}

func (f *fakeService) HandleExpertiseDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastID = "delete", id
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
		wantID   string
	}{
		{path: "/expertise", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{path: "/expertise/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "table"},
		{path: "/expertise/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{path: "/expertise/x-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "update", wantID: "x-1"},
		{path: "/expertise/x-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "delete", wantID: "x-1"},
		{path: "/expertise/x-1/archive", method: http.MethodPost, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastID = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall || svc.lastID != tc.wantID {
				t.Fatalf("call = (%q, %q), want (%q, %q)", svc.lastCall, svc.lastID, tc.wantCall, tc.wantID)
			}
		})
	}
}

func TestHandleExpertisePathNilService(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	HandleExpertisePath(rec, httptest.NewRequest(http.MethodGet, "/expertise/x-1", nil), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
