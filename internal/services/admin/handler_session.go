package admin

import (
	"log"
	"net/http"

	"github.com/doubtsclear/console/internal/services/admin/forms"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	sharedroute "github.com/doubtsclear/console/internal/services/shared/route"
	sharedtemplates "github.com/doubtsclear/console/internal/services/shared/templates"
	"golang.org/x/text/message"
)

// handleLoginPage renders the sign-in form, or skips it for a live session.
func (h *Handler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.current(r); ok {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	loc, lang := h.localizer(w, r)
	h.renderLogin(w, r, loc, lang, templates.LoginView{}, http.StatusOK)
}

// handleLogin signs an admin in through the API and starts a session.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return
	}
	form := forms.ParseLoginForm(r.PostForm)
	view := templates.LoginView{Email: form.Email}
	if errs := form.Validate(); !errs.OK() {
		view.Errors = errs
		h.renderLogin(w, r, loc, lang, view, http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := h.apiContext(r)
	defer cancel()
	login, err := h.client.Login(ctx, form.Email, form.Password)
	if err != nil {
		log.Printf("admin login: %v", err)
		view.FormError = loginErrorMessage(loc, err)
		h.renderLogin(w, r, loc, lang, view, http.StatusUnauthorized)
		return
	}
	if !isAdminLogin(login) {
		view.FormError = loc.Sprintf("login.unauthorized")
		h.renderLogin(w, r, loc, lang, view, http.StatusForbidden)
		return
	}
	if err := h.sessions.create(ctx, w, r, login); err != nil {
		log.Printf("admin session create: %v", err)
		view.FormError = loc.Sprintf("login.failed")
		h.renderLogin(w, r, loc, lang, view, http.StatusInternalServerError)
		return
	}
	sharedhtmx.Redirect(w, r, routepath.Root)
}

// isAdminLogin accepts the user's role, falling back to the token's role
// claim when the user payload omits it.
func isAdminLogin(login consultapi.Session) bool {
	role := login.User.Role
	if role == "" {
		if claims, ok := parseTokenClaims(login.Token); ok {
			role = claims.Role
		}
	}
	return role == consultapi.RoleAdmin
}

func loginErrorMessage(loc *message.Printer, err error) string {
	if apiErr, ok := consultapi.AsError(err); ok && !apiErr.Generic && apiErr.Message != "" {
		return apiErr.Message
	}
	return loc.Sprintf("login.failed")
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, loc *message.Printer, lang string, view templates.LoginView, status int) {
	page := h.pageContext(lang, loc, r)
	title := loc.Sprintf("login.title")
	sharedhtmx.Render(w, r, sharedhtmx.Page{
		Full:   templates.AuthLayout(page, title, templates.LoginPage(page, view)),
		Title:  sharedtemplates.ComposePageTitle(title),
		Status: status,
	})
}

// handleLogout ends the session and returns to the sign-in page.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	h.sessions.destroy(w, r)
	sharedhtmx.Redirect(w, r, routepath.Login)
}

// handleSidebarToggle flips the collapsed navigation and returns to the
// page the toggle was pressed on.
func (h *Handler) handleSidebarToggle(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return
	}
	collapsed := true
	if cookie, err := r.Cookie(sidebarCookieName); err == nil && cookie.Value == "1" {
		collapsed = false
	}
	cookie := &http.Cookie{
		Name:     sidebarCookieName,
		Path:     routepath.Root,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS(r),
	}
	if collapsed {
		cookie.Value = "1"
		cookie.MaxAge = 365 * 24 * 60 * 60
	} else {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)
	sharedhtmx.Redirect(w, r, sharedroute.LocalPath(r.PostForm.Get("return"), routepath.Root))
}
