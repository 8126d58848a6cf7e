package admin

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "https://api.doubtsclear.com/api" {
		t.Fatalf("expected default api base url, got %q", cfg.APIBaseURL)
	}
	if cfg.UploadsBaseURL != "https://doubt.deltinroyale.club" {
		t.Fatalf("expected default uploads url, got %q", cfg.UploadsBaseURL)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session ttl, got %v", cfg.SessionTTL)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		switch key {
		case "DOUBTSCLEAR_ADMIN_ADDR":
			return "env-admin", true
		case "DOUBTSCLEAR_API_BASE_URL":
			return "http://env-api", true
		case "DOUBTSCLEAR_UPLOADS_BASE_URL":
			return "http://env-uploads", true
		case "DOUBTSCLEAR_ADMIN_SESSION_TTL":
			return "2h", true
		default:
			return "", false
		}
	}
	args := []string{"-http-addr", "flag-admin", "-api-base-url", "http://flag-api"}
	cfg, err := ParseConfig(fs, args, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.APIBaseURL != "http://flag-api" {
		t.Fatalf("expected flag api url, got %q", cfg.APIBaseURL)
	}
	if cfg.UploadsBaseURL != "http://env-uploads" {
		t.Fatalf("expected env uploads url, got %q", cfg.UploadsBaseURL)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("expected env session ttl, got %v", cfg.SessionTTL)
	}
}

func TestParseConfigRejectsBadTTL(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == "DOUBTSCLEAR_ADMIN_SESSION_TTL" {
			return "soon", true
		}
		return "", false
	}
	if _, err := ParseConfig(flag.NewFlagSet("admin", flag.ContinueOnError), nil, lookup); err == nil {
		t.Fatal("expected error for unparsable ttl")
	}

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-session-ttl", "0s"}, nil); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
