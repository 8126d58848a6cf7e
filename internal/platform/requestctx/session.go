package requestctx

import "context"

type sessionContextKey struct{}

// Session identifies the authenticated admin bound to a request.
type Session struct {
	ID        string
	AdminName string
	AdminMail string
}

// WithSession stores the admin session in context.
func WithSession(ctx context.Context, session Session) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// SessionFromContext returns the admin session stored in context.
func SessionFromContext(ctx context.Context) (Session, bool) {
	if ctx == nil {
		return Session{}, false
	}
	session, ok := ctx.Value(sessionContextKey{}).(Session)
	if !ok || session.ID == "" {
		return Session{}, false
	}
	return session, true
}

// SessionIDFromContext returns the session identifier stored in context.
func SessionIDFromContext(ctx context.Context) string {
	session, _ := SessionFromContext(ctx)
	return session.ID
}
