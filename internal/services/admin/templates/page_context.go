package templates

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// AdminName and AdminEmail identify the signed-in admin in the header.
	AdminName  string
	AdminEmail string
	// SidebarCollapsed renders the icon-only navigation.
	SidebarCollapsed bool
}

// T translates key with the page localizer.
func (p PageContext) T(key string, args ...any) string {
	return T(p.Loc, key, args...)
}

// CurrentURL is the path and query of the rendered page.
func (p PageContext) CurrentURL() string {
	if p.CurrentQuery == "" {
		return p.CurrentPath
	}
	return p.CurrentPath + "?" + p.CurrentQuery
}
