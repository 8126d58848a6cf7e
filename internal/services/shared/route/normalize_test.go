package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedirectTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantOK   bool
		wantCode int
		wantLoc  string
	}{
		{name: "no trailing slash", path: "/users", wantOK: false, wantCode: http.StatusOK},
		{name: "trailing slash", path: "/users/", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/users"},
		{name: "detail trailing slash", path: "/experts/e1/review/", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/experts/e1/review"},
		{name: "keeps query", path: "/calls/?status=missed", wantOK: true, wantCode: http.StatusMovedPermanently, wantLoc: "/calls?status=missed"},
		{name: "root path", path: "/", wantOK: false, wantCode: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()

			got := RedirectTrailingSlash(rec, req)
			if got != tc.wantOK {
				t.Fatalf("RedirectTrailingSlash = %v, want %v", got, tc.wantOK)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantCode)
			}
			if got {
				if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
					t.Fatalf("location = %q, want %q", loc, tc.wantLoc)
				}
			}
		})
	}
}

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "/users?page=2", want: "/users?page=2"},
		{raw: "/", want: "/"},
		{raw: "", want: "/fallback"},
		{raw: "https://evil.example/", want: "/fallback"},
		{raw: "//evil.example/", want: "/fallback"},
		{raw: "/\\evil.example", want: "/fallback"},
		{raw: "users", want: "/fallback"},
	}
	for _, tc := range tests {
		if got := LocalPath(tc.raw, "/fallback"); got != tc.want {
			t.Fatalf("LocalPath(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
