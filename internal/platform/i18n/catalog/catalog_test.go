package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("hi-IN") {
		t.Fatal("expected locale hi-IN")
	}
	if got := len(bundle.NamespaceMessages(BaseLocale, "core")); got == 0 {
		t.Fatal("expected en-US core namespace messages")
	}
	if got := len(bundle.NamespaceMessages(BaseLocale, "admin")); got == 0 {
		t.Fatal("expected en-US admin namespace messages")
	}
}

func TestEmbeddedLocalesOnlyUseBaseKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		for key := range bundle.LocaleMessages(locale) {
			if _, ok := base[key]; !ok {
				t.Errorf("locale %s defines %q which is missing from %s", locale, key, BaseLocale)
			}
		}
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	Default()
	printer := message.NewPrinter(language.English)
	if got := printer.Sprintf("core.nav.dashboard"); got != "Dashboard" {
		t.Fatalf("Sprintf(core.nav.dashboard) = %q, want %q", got, "Dashboard")
	}
	hindi := message.NewPrinter(language.MustParse("hi-IN"))
	if got := hindi.Sprintf("error.request_failed"); got == "error.request_failed" {
		t.Fatal("expected hi-IN printer to fall back to base text instead of the key")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	value, ok := bundle.Message("fr-FR", "core.nav.users")
	if !ok || value != "Users" {
		t.Fatalf("Message(fr-FR, core.nav.users) = %q, %v", value, ok)
	}
}

func TestLoadFromFSRejectsCoreKeyOutsideCoreNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/admin.yaml"), `locale: "en-US"
namespace: "admin"
messages:
  "core.bad": "nope"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "core.good": "ok"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/admin.yaml"), `locale: "en-US"
namespace: "admin"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "hi-IN"
namespace: "core"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/hi-IN/core.yaml"), `locale: "hi-IN"
namespace: "core"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
