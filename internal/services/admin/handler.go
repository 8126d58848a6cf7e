package admin

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/doubtsclear/console/internal/platform/requestctx"
	"github.com/doubtsclear/console/internal/platform/timeouts"
	"github.com/doubtsclear/console/internal/services/admin/i18n"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	"github.com/doubtsclear/console/internal/services/admin/listview"
	"github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/storage"
	"github.com/doubtsclear/console/internal/services/admin/templates"
	"github.com/doubtsclear/console/internal/services/admin/transport/httpmux"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	sharedtemplates "github.com/doubtsclear/console/internal/services/shared/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/message"
)

const (
	// sidebarCookieName remembers the collapsed navigation.
	sidebarCookieName = "dc_sidebar"
	// staticCacheControl applies to embedded CSS and JS.
	staticCacheControl = "public, max-age=3600"
	// upstreamFailureStatus is returned when a form re-renders after the API
	// rejected or failed the write.
	upstreamFailureStatus = http.StatusBadGateway
)

//go:embed static/*
var staticAssets embed.FS

// APIClient is the subset of the consultation API the console calls.
type APIClient interface {
	Login(ctx context.Context, email string, password string) (consultapi.Session, error)

	ListUsers(ctx context.Context) ([]consultapi.User, error)
	CreateUser(ctx context.Context, input consultapi.ExpertInput) error
	UpdateUser(ctx context.Context, id string, input consultapi.UserInput) error
	DeleteUser(ctx context.Context, id string) error

	ListExperts(ctx context.Context) ([]consultapi.Expert, error)
	ListVerifiedExperts(ctx context.Context) ([]consultapi.Expert, error)
	GetExpert(ctx context.Context, id string) (consultapi.Expert, error)
	DeleteExpert(ctx context.Context, id string) error
	SetExpertBlocked(ctx context.Context, id string, blocked bool) error
	ToggleExpertVerification(ctx context.Context, id string) error
	ExpertCallStats(ctx context.Context, id string) (consultapi.CallStats, error)

	ListExpertise(ctx context.Context) ([]consultapi.Expertise, error)
	CreateExpertise(ctx context.Context, input consultapi.ExpertiseInput) error
	UpdateExpertise(ctx context.Context, id string, input consultapi.ExpertiseInput) error
	DeleteExpertise(ctx context.Context, id string) error

	ListQualifications(ctx context.Context) ([]consultapi.Qualification, error)
	DeleteQualification(ctx context.Context, id string) error
	CreateDesignation(ctx context.Context, name string) error

	ListWallets(ctx context.Context) ([]consultapi.Wallet, error)
	CreateWallet(ctx context.Context, input consultapi.WalletInput) error
	UpdateWallet(ctx context.Context, id string, input consultapi.WalletInput) error
	DeleteWallet(ctx context.Context, id string) error

	ListPayouts(ctx context.Context) ([]consultapi.Payout, error)
	CreatePayout(ctx context.Context, input consultapi.PayoutInput) error
	UpdatePayout(ctx context.Context, id string, input consultapi.PayoutInput) error
	DeletePayout(ctx context.Context, id string) error

	ListWithdrawals(ctx context.Context, status string) ([]consultapi.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, id string, transactionID string) error

	ListReviews(ctx context.Context) ([]consultapi.Review, error)
	DeleteReview(ctx context.Context, id string) error

	ListCalls(ctx context.Context) ([]consultapi.Call, error)
}

// HandlerConfig wires the handler to its API client and session store.
type HandlerConfig struct {
	Client   APIClient
	Sessions storage.SessionStore
	// UploadsBaseURL resolves relative expert document paths.
	UploadsBaseURL string
	SessionTTL     time.Duration
	// SecureCookies marks the session cookie Secure regardless of scheme.
	SecureCookies bool
}

// Handler routes admin console requests.
type Handler struct {
	client      APIClient
	sessions    *sessionManager
	uploadsBase string
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(cfg HandlerConfig) http.Handler {
	h := &Handler{
		client:      cfg.Client,
		sessions:    newSessionManager(cfg.Sessions, cfg.SessionTTL, cfg.SecureCookies),
		uploadsBase: strings.TrimSpace(cfg.UploadsBaseURL),
	}
	if h.uploadsBase == "" {
		h.uploadsBase = consultapi.DefaultUploadsBaseURL
	}
	return h.routes()
}

// routes wires static assets, then every module behind the session check.
func (h *Handler) routes() http.Handler {
	rootMux := http.NewServeMux()
	if staticFS, err := fs.Sub(staticAssets, "static"); err != nil {
		log.Printf("admin static assets unavailable: %v", err)
	} else {
		httpmux.MountStatic(rootMux, staticFS, withStaticCache)
	}

	adminMux := http.NewServeMux()
	h.registerModules(adminMux)
	httpmux.MountAdminRoutes(rootMux, h.requireAuth(adminMux))
	return rootMux
}

func withStaticCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", staticCacheControl)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	page := templates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: r.URL.Path,
	}
	if r.URL.RawQuery != "" {
		page.CurrentQuery = r.URL.RawQuery
	}
	if session, ok := requestctx.SessionFromContext(r.Context()); ok {
		page.AdminName = session.AdminName
		page.AdminEmail = session.AdminMail
	}
	if cookie, err := r.Cookie(sidebarCookieName); err == nil && cookie.Value == "1" {
		page.SidebarCollapsed = true
	}
	return page
}

// renderPage writes a full page inside the navigation shell. HTMX requests
// receive only the <main> content.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page templates.PageContext, titleKey string, content templ.Component, status int) {
	title := page.T(titleKey)
	sharedhtmx.Render(w, r, sharedhtmx.Page{
		Full:   templates.Layout(page, title, content),
		Title:  sharedtemplates.ComposePageTitle(title),
		Status: status,
	})
}

// renderFragment writes an HTMX table fragment.
func (h *Handler) renderFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	sharedhtmx.Render(w, r, sharedhtmx.Page{Fragment: fragment})
}

// apiContext bounds one API call by the request and the per-call timeout.
func (h *Handler) apiContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.APIRequest)
}

// mutate runs one write against the API and logs its failure.
func (h *Handler) mutate(r *http.Request, op string, write func(context.Context) error) error {
	ctx, cancel := h.apiContext(r)
	defer cancel()
	if err := write(ctx); err != nil {
		log.Printf("%s: %v", op, err)
		return err
	}
	return nil
}

// apiErrorMessage shows the server's own explanation when it gave one.
func apiErrorMessage(loc *message.Printer, err error) string {
	if apiErr, ok := consultapi.AsError(err); ok && !apiErr.Generic && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return loc.Sprintf("error.request_failed")
}

// redirectUnauthorized ends the session and sends the browser to the login
// page when err says the API no longer accepts the admin's token.
func (h *Handler) redirectUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil || !consultapi.IsUnauthorized(err) {
		return false
	}
	h.sessions.destroy(w, r)
	redirectToLogin(w, r)
	return true
}

// validID reports whether id is a resource identifier the API could know.
func validID(id string) bool {
	return primitive.IsValidObjectID(strings.TrimSpace(id))
}

// beginForm checks method, target id and origin of a form post and parses
// its body. GET requests are sent to back, which reopens the form's modal.
func (h *Handler) beginForm(w http.ResponseWriter, r *http.Request, loc *message.Printer, id string, back string) bool {
	switch r.Method {
	case http.MethodPost:
	case http.MethodGet, http.MethodHead:
		http.Redirect(w, r, back, http.StatusSeeOther)
		return false
	default:
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
		return false
	}
	if id != "" && !validID(id) {
		http.NotFound(w, r)
		return false
	}
	if !requireSameOrigin(w, r, loc) {
		return false
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return false
	}
	return true
}

// requireConfirmed refuses delete posts that lack the explicit confirmation.
func requireConfirmed(w http.ResponseWriter, r *http.Request, loc *message.Printer, confirmed bool) bool {
	if confirmed {
		return true
	}
	http.Error(w, loc.Sprintf("error.delete_unconfirmed"), http.StatusBadRequest)
	return false
}

// listSource describes how one resource list is fetched, searched and paged.
type listSource[T any] struct {
	op     string
	fetch  func(context.Context) ([]T, error)
	fields func(T) []string
	// status is nil for lists without a client-side status filter.
	status func(T) string
	idOf   func(T) string
	size   int
}

// loadedList is one fetched list with its resolved modal target.
type loadedList[T any] struct {
	View     templates.ListView[T]
	Modal    listview.Modal
	Selected *T
	Err      error
}

// loadList fetches a list snapshot, applies the query and resolves the
// modal target against the unfiltered snapshot.
func loadList[T any](h *Handler, r *http.Request, loc *message.Printer, q listview.Query, src listSource[T]) loadedList[T] {
	ctx, cancel := h.apiContext(r)
	defer cancel()

	result := listview.Load(ctx, src.fetch)
	out := loadedList[T]{View: templates.ListView[T]{State: result.State, Query: q}}
	if result.Err != nil {
		log.Printf("%s: %v", src.op, result.Err)
		out.View.ErrorMessage = apiErrorMessage(loc, result.Err)
		out.Err = result.Err
		return out
	}

	items := listview.Filter(result.Items, q.Search, src.fields)
	if src.status != nil {
		items = listview.FilterStatus(items, q.StatusOrAll(), src.status)
	}
	out.View.Page = listview.Paginate(items, q.Page, src.size)
	out.Modal, out.Selected = listview.Select(q.Modal, result.Items, src.idOf)
	return out
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func isHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

// routeBase picks the list a form returned to, limited to allowed.
func routeBase(raw string, allowed ...string) string {
	raw = strings.TrimSpace(raw)
	for _, candidate := range allowed {
		if raw == candidate {
			return candidate
		}
	}
	if len(allowed) == 0 {
		return routepath.Root
	}
	return allowed[0]
}
