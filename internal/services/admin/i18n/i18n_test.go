package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        string
		wantPersist bool
	}{
		{name: "default", target: "/", want: "en-US"},
		{name: "query param", target: "/?lang=hi-IN", want: "hi-IN", wantPersist: true},
		{name: "query base language", target: "/?lang=hi", want: "hi-IN", wantPersist: true},
		{name: "unsupported query falls through", target: "/?lang=fr", want: "en-US"},
		{name: "cookie", target: "/", cookie: "hi-IN", want: "hi-IN"},
		{name: "accept language", target: "/", accept: "hi-IN,hi;q=0.9", want: "hi-IN"},
		{name: "accept unsupported", target: "/", accept: "ja-JP", want: "en-US"},
		{name: "accept regional variant", target: "/", accept: "en-GB", want: "en-US"},
		{name: "bad cookie falls through", target: "/", cookie: "???", accept: "hi", want: "hi-IN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag.String() != tc.want {
				t.Fatalf("tag = %q, want %q", tag.String(), tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, Supported()[1])
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "hi-IN" {
		t.Fatalf("cookie = %s=%s", cookies[0].Name, cookies[0].Value)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	if got := Printer(Default()).Sprintf("core.nav.users"); got != "Users" {
		t.Fatalf("Sprintf = %q, want %q", got, "Users")
	}
}

func TestSupportedListsCatalogLocalesDefaultFirst(t *testing.T) {
	t.Parallel()

	tags := Supported()
	if len(tags) != 2 {
		t.Fatalf("supported = %v, want two locales", tags)
	}
	if tags[0].String() != "en-US" || tags[1].String() != "hi-IN" {
		t.Fatalf("supported = %v", tags)
	}
	tags[0] = tags[1]
	if Default().String() != "en-US" {
		t.Fatal("Supported exposed its backing slice")
	}
}
