// Package httpmux mounts the console's static assets and application routes
// on the root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/routepath"
)

// MountStatic serves staticFS under the static prefix, optionally wrapped
// (for cache headers).
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, wrap func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if wrap != nil {
		staticHandler = wrap(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountAdminRoutes mounts the authenticated application at the root path.
func MountAdminRoutes(rootMux *http.ServeMux, app http.Handler) {
	if rootMux == nil || app == nil {
		return
	}
	rootMux.Handle(routepath.Root, app)
}
