// Package htmx renders pages for both full navigations and HTMX swaps.
package htmx

import (
	"bytes"
	"html"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// RequestHeader marks requests issued by HTMX.
	RequestHeader  = "HX-Request"
	redirectHeader = "HX-Redirect"
)

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// Page is one rendered response.
type Page struct {
	// Full is the complete document. HTMX swaps receive only its <main>
	// content.
	Full templ.Component
	// Fragment, when set, answers HTMX requests as is.
	Fragment templ.Component
	// Title travels with HTMX swaps of Full so the browser tab follows.
	Title  string
	Status int
}

// Render writes page for r. Status defaults to 200.
func Render(w http.ResponseWriter, r *http.Request, page Page) {
	status := page.Status
	if status <= 0 {
		status = http.StatusOK
	}

	if !IsHTMXRequest(r) {
		full := page.Full
		if full == nil {
			full = page.Fragment
		}
		if full != nil {
			templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
		}
		return
	}
	if page.Fragment != nil {
		templ.Handler(page.Fragment, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}
	if page.Full == nil {
		return
	}

	var buf bytes.Buffer
	if err := page.Full.Render(r.Context(), &buf); err != nil {
		log.Printf("render htmx swap: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	body := buf.Bytes()
	if inner, ok := mainContent(body); ok {
		body = inner
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if title := titleTag(page.Title); title != "" && !bytes.Contains(bytes.ToLower(body), []byte("<title")) {
		_, _ = io.WriteString(w, title)
	}
	_, _ = w.Write(body)
}

// Redirect sends the browser to target after a successful mutation. HTMX
// requests receive HX-Redirect on a 200; a 3xx would be followed inside the
// XHR before HTMX saw the header.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsHTMXRequest(r) {
		w.Header().Set(redirectHeader, target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func titleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// mainContent returns what sits between the first <main ...> and its
// closing tag.
func mainContent(body []byte) ([]byte, bool) {
	_, afterOpen, ok := bytes.Cut(body, []byte("<main"))
	if !ok {
		return nil, false
	}
	_, inner, ok := bytes.Cut(afterOpen, []byte(">"))
	if !ok {
		return nil, false
	}
	inner, _, ok = bytes.Cut(inner, []byte("</main>"))
	if !ok {
		return nil, false
	}
	return inner, true
}
