package templates

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/doubtsclear/console/internal/services/admin/listview"
	sharedtemplates "github.com/doubtsclear/console/internal/services/shared/templates"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []sharedtemplates.BreadcrumbItem
	// ActionURL renders a CTA button when set.
	ActionURL string
	// ActionLabel is the CTA button label.
	ActionLabel string
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

// tableTarget is the element list fragments swap into.
const tableTarget = "list-table"

// StatusOption is one choice of a list status filter.
type StatusOption struct {
	Value string
	Label string
}

// ListToolbar describes the search and filter controls above a table.
type ListToolbar struct {
	BasePath          string
	Query             listview.Query
	SearchPlaceholder string
	Statuses          []StatusOption
	// CreateLabel shows a create button opening the create modal.
	CreateLabel string
	// Links are extra toolbar links such as exports.
	Links []sharedtemplates.BreadcrumbItem
}

// Field describes one labelled form input.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Required    bool
	Step        string
}

func (f Field) inputID() string {
	return fieldID(f.Name)
}

func (f Field) inputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

func fieldID(name string) string {
	return "field-" + strings.ReplaceAll(name, ".", "-")
}

// enumLabel translates an API enum value, or "N/A" when it is blank.
func enumLabel(page PageContext, prefix string, value string) string {
	if value == "" {
		return "N/A"
	}
	return page.T(prefix + value)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
