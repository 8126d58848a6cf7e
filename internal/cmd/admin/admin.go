package admin

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/doubtsclear/console/internal/platform/cmd"
	"github.com/doubtsclear/console/internal/services/admin"
	"github.com/doubtsclear/console/internal/services/admin/integration/consultapi"
)

const (
	defaultHTTPAddr   = ":8082"
	defaultAPIBaseURL = consultapi.DefaultBaseURL
	defaultSessionTTL = 24 * time.Hour
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr       string
	APIBaseURL     string
	UploadsBaseURL string
	SessionTTL     time.Duration
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config. Environment values seed the flag
// defaults so an explicit flag always wins.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr:       envOrDefault(lookup, []string{"DOUBTSCLEAR_ADMIN_ADDR"}, defaultHTTPAddr),
		APIBaseURL:     envOrDefault(lookup, []string{"DOUBTSCLEAR_API_BASE_URL"}, defaultAPIBaseURL),
		UploadsBaseURL: envOrDefault(lookup, []string{"DOUBTSCLEAR_UPLOADS_BASE_URL"}, consultapi.DefaultUploadsBaseURL),
		SessionTTL:     defaultSessionTTL,
	}
	if raw := envOrDefault(lookup, []string{"DOUBTSCLEAR_ADMIN_SESSION_TTL"}, ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse DOUBTSCLEAR_ADMIN_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "consultation API base URL")
	fs.StringVar(&cfg.UploadsBaseURL, "uploads-base-url", cfg.UploadsBaseURL, "host serving uploaded expert documents")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "admin session lifetime when the API token carries no expiry")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}

	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceAdmin, func(ctx context.Context) error {
		server, err := admin.NewServer(ctx, admin.Config{
			HTTPAddr:       cfg.HTTPAddr,
			APIBaseURL:     cfg.APIBaseURL,
			UploadsBaseURL: cfg.UploadsBaseURL,
			SessionTTL:     cfg.SessionTTL,
		})
		if err != nil {
			return fmt.Errorf("init admin server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
