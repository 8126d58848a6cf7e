package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	addr := fs.String("http-addr", ":8082", "address")
	if err := ParseArgs(fs, []string{"-http-addr", ":9000"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if *addr != ":9000" {
		t.Fatalf("http-addr = %q, want :9000", *addr)
	}

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("http-addr", ":8082", "address")
	if err := ParseArgs(fs, nil); err != nil {
		t.Fatalf("parse nil args: %v", err)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	t.Parallel()

	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	t.Parallel()

	if err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceAdmin, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("DOUBTSCLEAR_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	err := RunWithTelemetry(context.Background(), ServiceAdmin, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry error = %v, want %v", err, want)
	}
}

func TestRunWithTelemetryPassesContext(t *testing.T) {
	t.Setenv("DOUBTSCLEAR_OTEL_ENDPOINT", "")
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "admin")

	var got any
	err := RunWithTelemetry(ctx, ServiceAdmin, func(ctx context.Context) error {
		got = ctx.Value(key{})
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got != "admin" {
		t.Fatalf("context value = %v, want admin", got)
	}
}
