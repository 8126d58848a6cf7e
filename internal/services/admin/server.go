package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doubtsclear/console/internal/platform/config"
	"github.com/doubtsclear/console/internal/platform/timeouts"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
	adminsqlite "github.com/doubtsclear/console/internal/services/admin/storage/sqlite"
	"github.com/robfig/cron/v3"
)

// adminServerEnv captures startup defaults for the admin process.
type adminServerEnv struct {
	DBPath        string `env:"DOUBTSCLEAR_ADMIN_DB_PATH"`
	SecureCookies bool   `env:"DOUBTSCLEAR_ADMIN_SECURE_COOKIES"`
}

func loadAdminServerEnv() adminServerEnv {
	return adminServerEnvFrom(config.Environ())
}

// adminServerEnvFrom reads the startup defaults from environment. A value
// that fails to parse is logged and leaves its default in place.
func adminServerEnvFrom(environment map[string]string) adminServerEnv {
	var cfg adminServerEnv
	if err := config.ParseEnvFrom(&cfg, environment); err != nil {
		log.Printf("admin env: %v", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "admin.db")
	}
	return cfg
}

// sessionSweepSpec schedules removal of expired admin sessions.
const sessionSweepSpec = "@every 30m"

// Config defines the inputs for the admin console process.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the consultation API root, including its /api prefix.
	APIBaseURL     string
	UploadsBaseURL string
	SessionTTL     time.Duration
}

// Server hosts the admin console and owns its session store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	adminStore *adminsqlite.Store
	sweeper    *cron.Cron
}

// NewServer opens the session store and builds the console handler.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	adminEnv := loadAdminServerEnv()
	adminStore, err := openAdminStore(adminEnv.DBPath)
	if err != nil {
		return nil, err
	}

	client, err := consultapi.New(consultapi.Config{
		BaseURL: config.APIBaseURL,
		Timeout: timeouts.APIRequest,
		Tokens:  SessionTokenSource(adminStore),
	})
	if err != nil {
		_ = adminStore.Close()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	handler := NewHandler(HandlerConfig{
		Client:         client,
		Sessions:       adminStore,
		UploadsBaseURL: config.UploadsBaseURL,
		SessionTTL:     config.SessionTTL,
		SecureCookies:  adminEnv.SecureCookies,
	})
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(sessionSweepSpec, func() {
		sweepSessions(ctx, adminStore)
	}); err != nil {
		_ = adminStore.Close()
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		adminStore: adminStore,
		sweeper:    sweeper,
	}, nil
}

// ListenAndServe serves HTTP until ctx is canceled, then shuts down within
// the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.sweeper.Start()
	serveErr := make(chan error, 1)
	log.Printf("admin listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the session sweeper and closes the session store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.sweeper != nil {
		<-s.sweeper.Stop().Done()
	}
	if s.adminStore != nil {
		if err := s.adminStore.Close(); err != nil {
			log.Printf("close admin store: %v", err)
		}
	}
}

func sweepSessions(ctx context.Context, store *adminsqlite.Store) {
	removed, err := store.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("sweep admin sessions: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("swept %d expired admin sessions", removed)
	}
}

func openAdminStore(path string) (*adminsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	store, err := adminsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open admin sqlite store: %w", err)
	}
	return store, nil
}
