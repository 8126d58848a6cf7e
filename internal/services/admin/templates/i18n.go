package templates

import (
	sharedtemplates "github.com/doubtsclear/console/internal/services/shared/templates"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer = sharedtemplates.Localizer

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	return sharedtemplates.T(loc, key, args...)
}
