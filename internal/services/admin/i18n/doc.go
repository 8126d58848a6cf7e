// Package i18n resolves the admin console language from the request and
// returns message printers backed by the embedded translation catalog.
package i18n
