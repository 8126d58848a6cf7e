package templates

import (
	"strings"

	"github.com/doubtsclear/console/internal/platform/branding"
)

const titleSeparator = " | "

// ComposePageTitle appends the product name to a page title unless it is
// already present. A trailing " - <AppName>" suffix is normalized to the pipe
// form.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, titleSeparator+branding.AppName) {
		return title
	}
	if trimmed, ok := strings.CutSuffix(title, " - "+branding.AppName); ok {
		title = strings.TrimSpace(trimmed)
	}
	if title == branding.AppName {
		return title
	}
	return title + titleSeparator + branding.AppName
}

// PageHeadingFromTitle strips the product suffix from a composed title so
// the page heading shows only the screen name.
func PageHeadingFromTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	if appName != "" {
		title = strings.TrimSuffix(title, titleSeparator+appName)
		title = strings.TrimSuffix(title, " - "+appName)
	}
	return strings.TrimSpace(title)
}
