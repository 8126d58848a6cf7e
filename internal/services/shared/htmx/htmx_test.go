package htmx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func text(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func htmxRequest() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/wallets", nil)
	r.Header.Set(RequestHeader, "true")
	return r
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	if IsHTMXRequest(nil) {
		t.Fatal("nil request reported as htmx")
	}
	if IsHTMXRequest(httptest.NewRequest(http.MethodGet, "/", nil)) {
		t.Fatal("plain request reported as htmx")
	}
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(RequestHeader, "TRUE")
	if !IsHTMXRequest(r) {
		t.Fatal("htmx request not detected")
	}
}

func TestRenderFullNavigation(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, httptest.NewRequest(http.MethodGet, "/wallets", nil), Page{
		Full:     text("<html><main>wallets</main></html>"),
		Fragment: text("fragment"),
		Title:    "Wallets",
		Status:   http.StatusUnprocessableEntity,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if got := rec.Body.String(); got != "<html><main>wallets</main></html>" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderFullFallsBackToFragment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, httptest.NewRequest(http.MethodGet, "/wallets/table", nil), Page{Fragment: text("<table></table>")})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "<table></table>" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderHTMXSwapsMainContent(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, htmxRequest(), Page{
		Full:   text(`<html><nav>menu</nav><main id="content" class="main">wallets</main></html>`),
		Title:  "Wallets <Admin>",
		Status: http.StatusBadGateway,
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	want := "<title>Wallets &lt;Admin&gt;</title>wallets"
	if got := rec.Body.String(); got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestRenderHTMXKeepsExistingTitle(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, htmxRequest(), Page{Full: text("<main><title>Own</title>body</main>"), Title: "Other"})
	if got := rec.Body.String(); got != "<title>Own</title>body" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderHTMXWithoutMainSendsWholeDocument(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, htmxRequest(), Page{Full: text("<div>login</div>")})
	if got := rec.Body.String(); got != "<div>login</div>" {
		t.Fatalf("body = %q", got)
	}
}

func TestRenderHTMXPrefersFragment(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Render(rec, htmxRequest(), Page{Full: text("<main>full</main>"), Fragment: text("rows")})
	if got := rec.Body.String(); got != "rows" {
		t.Fatalf("body = %q, want rows", got)
	}
}

func TestRenderHTMXFailureIs500(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})
	rec := httptest.NewRecorder()
	Render(rec, htmxRequest(), Page{Full: failing})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Redirect(rec, httptest.NewRequest(http.MethodPost, "/wallets/create", nil), "/wallets")
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/wallets" {
		t.Fatalf("plain redirect = %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	Redirect(rec, htmxRequest(), "/wallets")
	if rec.Code != http.StatusOK || rec.Header().Get(redirectHeader) != "/wallets" {
		t.Fatalf("htmx redirect = %d %q", rec.Code, rec.Header().Get(redirectHeader))
	}
	if strings.TrimSpace(rec.Header().Get("Location")) != "" {
		t.Fatal("htmx redirect set Location")
	}
}

func TestMainContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{name: "plain", body: "<main>x</main>", want: "x", wantOK: true},
		{name: "attributes", body: `<p><main class="m">y</main></p>`, want: "y", wantOK: true},
		{name: "missing", body: "<div>z</div>", wantOK: false},
		{name: "unclosed", body: "<main>z", wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := mainContent([]byte(tc.body))
			if ok != tc.wantOK || string(got) != tc.want {
				t.Fatalf("mainContent(%q) = %q, %v", tc.body, got, ok)
			}
		})
	}
}
