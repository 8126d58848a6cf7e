package otel

import (
	"context"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	t.Setenv("DOUBTSCLEAR_OTEL_ENDPOINT", " http://collector:4318 ")
	t.Setenv("DOUBTSCLEAR_OTEL_SAMPLE_RATIO", "0.25")

	settings, err := LoadSettings(" admin ")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.Endpoint != "http://collector:4318" {
		t.Fatalf("endpoint = %q", settings.Endpoint)
	}
	if settings.Service != "admin" {
		t.Fatalf("service = %q", settings.Service)
	}
	if settings.SampleRatio != 0.25 {
		t.Fatalf("sample ratio = %v", settings.SampleRatio)
	}
	if !settings.Enabled() {
		t.Fatal("expected tracing enabled")
	}
}

func TestLoadSettingsDefaultsToFullSampling(t *testing.T) {
	t.Setenv("DOUBTSCLEAR_OTEL_ENDPOINT", "")

	settings, err := LoadSettings("admin")
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.SampleRatio != 1 {
		t.Fatalf("sample ratio = %v, want 1", settings.SampleRatio)
	}
	if settings.Enabled() {
		t.Fatal("expected tracing disabled without endpoint")
	}
}

func TestSettingsEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings Settings
		want     bool
	}{
		{name: "no endpoint", settings: Settings{}, want: false},
		{name: "endpoint", settings: Settings{Endpoint: "http://collector:4318"}, want: true},
		{name: "disabled", settings: Settings{Endpoint: "http://collector:4318", Disabled: true}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.settings.Enabled(); got != tc.want {
				t.Fatalf("Enabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSettingsRatioIsClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: -1, want: 0},
		{in: 0, want: 0},
		{in: 0.5, want: 0.5},
		{in: 1, want: 1},
		{in: 3, want: 1},
	}
	for _, tc := range tests {
		if got := (Settings{SampleRatio: tc.in}).ratio(); got != tc.want {
			t.Fatalf("ratio(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	t.Parallel()

	shutdown, err := Setup(context.Background(), Settings{Endpoint: "http://192.0.2.1:4318", Disabled: true, Service: "admin"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupRequiresServiceName(t *testing.T) {
	t.Parallel()

	if _, err := Setup(context.Background(), Settings{Endpoint: "http://192.0.2.1:4318"}); err == nil {
		t.Fatal("expected missing service error")
	}
}

func TestSetupInstallsProvider(t *testing.T) {
	// Non-routable collector: nothing is exported before shutdown.
	shutdown, err := Setup(context.Background(), Settings{Endpoint: "http://192.0.2.1:4318", SampleRatio: 1, Service: "admin"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
