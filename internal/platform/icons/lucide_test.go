package icons

import (
	"strings"
	"testing"
)

func TestLucideNameCoversIconIds(t *testing.T) {
	t.Parallel()

	for id, name := range lucideIconNames {
		if _, ok := lucidePaths[name]; !ok {
			t.Fatalf("icon %s maps to %q which has no sprite symbol", id, name)
		}
	}
}

func TestLucideSpriteDefinesEverySymbol(t *testing.T) {
	t.Parallel()

	sprite := LucideSprite()
	for _, id := range []ID{Dashboard, Users, Experts, Logout} {
		symbol := `id="` + LucideSymbolID(LucideNameOrDefault(id)) + `"`
		if !strings.Contains(sprite, symbol) {
			t.Fatalf("sprite missing %s", symbol)
		}
	}
}

func TestLucideNameOrDefault(t *testing.T) {
	t.Parallel()

	if got := LucideNameOrDefault("unknown"); got != "layout-dashboard" {
		t.Fatalf("default = %q", got)
	}
	if _, ok := LucideName("unknown"); ok {
		t.Fatal("unknown id resolved")
	}
}
