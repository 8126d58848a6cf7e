package admin

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/doubtsclear/console/internal/platform/requestctx"
	"github.com/doubtsclear/console/internal/platform/timeouts"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	routepath "github.com/doubtsclear/console/internal/services/admin/routepath"
	"github.com/doubtsclear/console/internal/services/admin/storage"
	sharedhtmx "github.com/doubtsclear/console/internal/services/shared/htmx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// sessionCookieName carries the opaque admin session id.
	sessionCookieName = "dc_session"
	// defaultSessionTTL bounds a session when the API token has no expiry.
	defaultSessionTTL = 24 * time.Hour
)

// sessionManager binds browser cookies to stored admin sessions.
type sessionManager struct {
	store  storage.SessionStore
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func newSessionManager(store storage.SessionStore, ttl time.Duration, secure bool) *sessionManager {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &sessionManager{store: store, ttl: ttl, secure: secure, now: time.Now}
}

// tokenClaims reads the claims the console needs from an API token. The
// signature is not checked here; the API verifies it on every call.
type tokenClaims struct {
	Role      string
	ExpiresAt time.Time
}

func parseTokenClaims(token string) (tokenClaims, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenClaims{}, false
	}
	var out tokenClaims
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, true
}

// sessionExpiry caps the configured lifetime at the token's own expiry.
func (m *sessionManager) sessionExpiry(token string, now time.Time) time.Time {
	expiresAt := now.Add(m.ttl)
	if claims, ok := parseTokenClaims(token); ok && !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(expiresAt) {
		expiresAt = claims.ExpiresAt
	}
	return expiresAt
}

// create stores a session for a successful login and sets its cookie.
func (m *sessionManager) create(ctx context.Context, w http.ResponseWriter, r *http.Request, login consultapi.Session) error {
	if m == nil || m.store == nil {
		return errors.New("session store is not configured")
	}
	now := m.now().UTC()
	session := storage.Session{
		ID:         uuid.NewString(),
		Token:      login.Token,
		AdminID:    login.User.ID,
		AdminName:  login.User.Name,
		AdminEmail: login.User.Email,
		CreatedAt:  now,
		ExpiresAt:  m.sessionExpiry(login.Token, now),
	}
	if !session.ExpiresAt.After(now) {
		return errors.New("session token already expired")
	}
	if err := m.store.PutSession(ctx, session); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID,
		Path:     routepath.Root,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   m.secure || isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// current returns the live session named by the request cookie.
func (m *sessionManager) current(r *http.Request) (storage.Session, bool) {
	if m == nil || m.store == nil || r == nil {
		return storage.Session{}, false
	}
	id := sessionCookieValue(r)
	if id == "" {
		return storage.Session{}, false
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.APIRequest)
	defer cancel()
	session, err := m.store.GetSession(ctx, id, m.now().UTC())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("admin session lookup: %v", err)
		}
		return storage.Session{}, false
	}
	return session, true
}

// destroy deletes the stored session, if any, and clears the cookie.
func (m *sessionManager) destroy(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		return
	}
	if id := sessionCookieValue(r); id != "" && m.store != nil {
		if err := m.store.DeleteSession(r.Context(), id); err != nil {
			log.Printf("admin session delete: %v", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     routepath.Root,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure || isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionCookieValue(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// SessionTokenSource resolves the API bearer token of the admin bound to the
// request context. The store is read on every call so a logout anywhere takes
// effect immediately.
func SessionTokenSource(store storage.SessionStore) consultapi.TokenSource {
	return consultapi.TokenSourceFunc(func(ctx context.Context) (string, error) {
		id := requestctx.SessionIDFromContext(ctx)
		if id == "" || store == nil {
			return "", consultapi.ErrUnauthenticated
		}
		session, err := store.GetSession(ctx, id, time.Now().UTC())
		if errors.Is(err, storage.ErrNotFound) {
			return "", consultapi.ErrUnauthenticated
		}
		if err != nil {
			return "", err
		}
		return session.Token, nil
	})
}

// requireAuth lets only requests with a live session through, leaving the
// login page reachable.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		session, ok := h.sessions.current(r)
		if !ok {
			redirectToLogin(w, r)
			return
		}
		ctx := requestctx.WithSession(r.Context(), requestctx.Session{
			ID:        session.ID,
			AdminName: session.AdminName,
			AdminMail: session.AdminEmail,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return path == routepath.Login || strings.HasPrefix(path, routepath.StaticPrefix)
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	if sharedhtmx.IsHTMXRequest(r) {
		sharedhtmx.Redirect(w, r, routepath.Login)
		return
	}
	http.Redirect(w, r, routepath.Login, http.StatusFound)
}
