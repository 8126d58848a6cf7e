package experts

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	lastCall   string
	lastExpert string
}

func (f *fakeService) HandleExpertsPage(http.ResponseWriter, *http.Request)  { f.lastCall = "page" }
func (f *fakeService) HandleExpertsTable(http.ResponseWriter, *http.Request) { f.lastCall = "table" }
func (f *fakeService) HandleVerifiedExpertsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "verified_page"
}
func (f *fakeService) HandleVerifiedExpertsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "verified_table"
}
func (f *fakeService) HandleUnverifiedExpertsPage(http.ResponseWriter, *http.Request) {
	f.lastCall = "unverified_page"
}
func (f *fakeService) HandleUnverifiedExpertsTable(http.ResponseWriter, *http.Request) {
	f.lastCall = "unverified_table"
}
func (f *fakeService) HandleExpertCreate(http.ResponseWriter, *http.Request) { f.lastCall = "create" }

func (f *fakeService) HandleExpertUpdate(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastExpert = "update", id
}

func (f *fakeService) HandleExpertDelete(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastExpert = "delete", id
}

func (f *fakeService) HandleExpertBlock(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastExpert = "block", id
}

func (f *fakeService) HandleExpertReview(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastExpert = "review", id
}

func (f *fakeService) HandleExpertVerification(_ http.ResponseWriter, _ *http.Request, id string) {
	f.lastCall, f.lastExpert = "verification", id
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
		wantExpert string
	}{
		{path: "/experts", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "page"},
		{path: "/experts/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "table"},
		{path: "/experts/verified", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verified_page"},
		{path: "/experts/verified/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "verified_table"},
		{path: "/experts/unverified", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "unverified_page"},
		{path: "/experts/unverified/table", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "unverified_table"},
		{path: "/experts/create", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "create"},
		{path: "/experts/e-1", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "update", wantExpert: "e-1"},
		{path: "/experts/e-1/delete", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "delete", wantExpert: "e-1"},
		{path: "/experts/e-1/block", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "block", wantExpert: "e-1"},
		{path: "/experts/e-1/review", method: http.MethodGet, wantCode: http.StatusOK, wantCall: "review", wantExpert: "e-1"},
		{path: "/experts/e-1/verification", method: http.MethodPost, wantCode: http.StatusOK, wantCall: "verification", wantExpert: "e-1"},
		{path: "/experts/e-1/unknown", method: http.MethodGet, wantCode: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			svc.lastCall, svc.lastExpert = "", ""
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if svc.lastCall != tc.wantCall || svc.lastExpert != tc.wantExpert {
				t.Fatalf("call = (%q, %q), want (%q, %q)", svc.lastCall, svc.lastExpert, tc.wantCall, tc.wantExpert)
			}
		})
	}
}
