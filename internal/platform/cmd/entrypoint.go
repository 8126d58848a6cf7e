// Package cmd holds the startup plumbing shared by console binaries.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/doubtsclear/console/internal/platform/otel"
	"github.com/doubtsclear/console/internal/platform/timeouts"
)

// ServiceAdmin names the admin console in traces and logs.
const ServiceAdmin = "admin"

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs tracing for service, runs the service loop and
// flushes pending spans once it returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := otel.LoadSettings(service)
	if err != nil {
		return fmt.Errorf("load telemetry settings: %w", err)
	}
	shutdown, err := otel.Setup(ctx, settings)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	if settings.Enabled() {
		log.Printf("%s exporting traces to %s", service, settings.Endpoint)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
