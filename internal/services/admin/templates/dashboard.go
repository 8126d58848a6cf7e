package templates

import (
	"strconv"

	"github.com/doubtsclear/console/internal/services/admin/dashboard"
)

// DashboardView holds aggregate statistics for the dashboard.
type DashboardView struct {
	Summary dashboard.Summary
	// ErrorMessage replaces the statistics when any source failed.
	ErrorMessage string
}

// barWidth scales count against the largest bucket as a CSS width.
func barWidth(count int, largest int) string {
	width := 0
	if largest > 0 {
		width = count * 100 / largest
	}
	return "width:" + strconv.Itoa(width) + "%"
}
