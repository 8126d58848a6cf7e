package templates

import (
	"strings"
)

// BreadcrumbItem represents one breadcrumb entry in a page trail.
type BreadcrumbItem struct {
	// Label is the visible breadcrumb text.
	Label string
	// URL is the optional destination for this breadcrumb entry.
	URL string
}

// BreadcrumbSegmentLabeler returns the label for a path segment.
//
// segment is the individual path segment while fullPath is the full accumulated path
// to the segment (for example, "/experts/65f0c0ffee/review").
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a breadcrumb trail is built from a path.
type PathBreadcrumbOptions struct {
	// IncludeRoot adds a dashboard root breadcrumb when enabled.
	IncludeRoot bool
	// RootPath is the URL used for the root breadcrumb when IncludeRoot is true.
	RootPath string
	// RootLabel is the localization key (or fallback string) for the root breadcrumb.
	RootLabel string
	// LabelForSegment resolves labels for each non-root segment.
	LabelForSegment BreadcrumbSegmentLabeler
	// EntityNames maps entity IDs to display names for id segments.
	EntityNames map[string]string
}

// BuildPathBreadcrumbsWithOptions builds breadcrumb items for a request path using
// caller-provided labeling behavior.
//
// Every crumb links to its accumulated path except the last one, which is the
// current page.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	path = strings.TrimSpace(path)
	cleanPath := strings.Trim(path, "/")
	if cleanPath == "" {
		return []BreadcrumbItem{}
	}

	segments := make([]string, 0, strings.Count(cleanPath, "/")+1)
	for _, segment := range strings.Split(cleanPath, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) == 0 {
		return []BreadcrumbItem{}
	}

	labeler := options.LabelForSegment
	if labeler == nil {
		labeler = defaultSegmentLabel
	}
	if len(options.EntityNames) > 0 {
		labeler = labelEntityName(options.EntityNames, labeler)
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	pathSoFar := ""
	for idx, segment := range segments {
		pathSoFar += "/" + segment
		label := labeler(segment, pathSoFar, loc)
		if strings.TrimSpace(label) == "" {
			label = segment
		}
		crumb := BreadcrumbItem{Label: label}
		if idx < len(segments)-1 {
			crumb.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, crumb)
	}
	return breadcrumbs
}

func labelEntityName(names map[string]string, next BreadcrumbSegmentLabeler) BreadcrumbSegmentLabeler {
	return func(segment string, fullPath string, loc Localizer) string {
		if name := strings.TrimSpace(names[segment]); name != "" {
			return name
		}
		return next(segment, fullPath, loc)
	}
}

func defaultSegmentLabel(segment string, _ string, _ Localizer) string {
	return segment
}
