package calls

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall string
}

func (f *fakeService) HandleCallsPage(http.ResponseWriter, *http.Request)  { f.lastCall = "page" }
func (f *fakeService) HandleCallsTable(http.ResponseWriter, *http.Request) { f.lastCall = "table" }

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	for path, want := range map[string]string{"/calls": "page", "/calls/table": "table"} {
		svc.lastCall = ""
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || svc.lastCall != want {
			t.Fatalf("%s: status=%d call=%q, want 200 %q", path, rec.Code, svc.lastCall, want)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/calls/c-1", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
