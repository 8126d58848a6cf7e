package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/doubtsclear/console/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the admin's language preference.
	LangCookieName = "dc_lang"

	defaultLocale    = "en-US"
	langCookieMaxAge = 365 * 24 * time.Hour
)

// supportedTags lists every locale the embedded catalog carries, default
// first. Loading the catalog also registers it with x/text/message.
var supportedTags = supportedFrom(catalog.Default())

var tagMatcher = language.NewMatcher(supportedTags)

func supportedFrom(bundle *catalog.Bundle) []language.Tag {
	tags := []language.Tag{language.MustParse(defaultLocale)}
	for _, locale := range bundle.Locales() {
		if locale == defaultLocale {
			continue
		}
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// match picks the supported tag closest to candidates. "hi" selects hi-IN;
// a language with no catalog reports false.
func match(candidates ...language.Tag) (language.Tag, bool) {
	if len(candidates) == 0 {
		return Default(), false
	}
	_, index, confidence := tagMatcher.Match(candidates...)
	if confidence == language.No {
		return Default(), false
	}
	return supportedTags[index], true
}

func matchValue(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return Default(), false
	}
	return match(parsed)
}

// ResolveTag picks the request language from the lang query parameter, the
// language cookie, then Accept-Language. The bool reports a query selection
// that should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if value := r.URL.Query().Get(LangParam); value != "" {
		if tag, ok := matchValue(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := matchValue(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if tag, ok := match(tags...); ok {
				return tag, false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
