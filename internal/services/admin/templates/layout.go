package templates

import (
	"strings"

	"github.com/doubtsclear/console/internal/platform/icons"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// NavItem is one sidebar entry.
type NavItem struct {
	Key      string
	Path     string
	Icon     icons.ID
	Children []NavItem
}

// Navigation is the fixed sidebar menu, in display order. Logout is
// rendered after it as a form.
var Navigation = []NavItem{
	{Key: "core.nav.dashboard", Path: routepath.Root, Icon: icons.Dashboard},
	{Key: "core.nav.users", Path: routepath.Users, Icon: icons.Users},
	{Key: "core.nav.experts", Icon: icons.Experts, Children: []NavItem{
		{Key: "core.nav.all_experts", Path: routepath.Experts},
		{Key: "core.nav.verified_experts", Path: routepath.ExpertsVerified},
		{Key: "core.nav.unverified_experts", Path: routepath.ExpertsUnverified},
		{Key: "core.nav.expertise", Path: routepath.Expertise},
		{Key: "core.nav.qualification", Path: routepath.Qualifications},
		{Key: "core.nav.designation", Path: routepath.Designations},
	}},
	{Key: "core.nav.withdrawals", Path: routepath.Withdrawals, Icon: icons.Withdrawals},
	{Key: "core.nav.payouts", Path: routepath.Payouts, Icon: icons.Payouts},
	{Key: "core.nav.wallets", Path: routepath.Wallets, Icon: icons.Wallets},
	{Key: "core.nav.reviews", Path: routepath.Reviews, Icon: icons.Reviews},
}

var expertsGroupPrefixes = []string{
	routepath.Experts,
	routepath.Expertise,
	routepath.Qualifications,
	routepath.Designations,
}

// ExpertsGroupOpen reports whether path belongs to the experts menu group.
func ExpertsGroupOpen(path string) bool {
	for _, prefix := range expertsGroupPrefixes {
		if underPath(path, prefix) {
			return true
		}
	}
	return false
}

func underPath(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// ActiveNavPath returns the menu path that best matches the current path.
func ActiveNavPath(path string) string {
	best := ""
	var visit func(items []NavItem)
	visit = func(items []NavItem) {
		for _, item := range items {
			if item.Path != "" {
				matches := underPath(path, item.Path)
				if item.Path == routepath.Root {
					matches = path == routepath.Root || path == routepath.DashboardContent
				}
				if matches && len(item.Path) > len(best) {
					best = item.Path
				}
			}
			visit(item.Children)
		}
	}
	visit(Navigation)
	return best
}

// iconHref points a <use> element at the sprite symbol for id.
func iconHref(id icons.ID) string {
	return "#" + icons.LucideSymbolID(icons.LucideNameOrDefault(id))
}

func bodyClass(page PageContext) string {
	if page.SidebarCollapsed {
		return "admin sidebar-collapsed"
	}
	return "admin"
}

// adminLabel is the header dropdown label.
func adminLabel(page PageContext) string {
	if page.AdminName == "" {
		return page.T("core.header.admin")
	}
	return page.AdminName
}
