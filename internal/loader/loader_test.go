package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"woof/internal/catalog"
	"woof/internal/loader"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDetectMode(t *testing.T) {
	flat := writeFiles(t, map[string]string{
		"en.toml": `greet = "Hello"`,
		"fr.toml": `greet = "Bonjour"`,
	})
	if mode, err := loader.DetectMode(flat); err != nil || mode != loader.ModeFlat {
		t.Errorf("DetectMode(flat) = %v, %v", mode, err)
	}

	namespaced := writeFiles(t, map[string]string{
		"common.en.toml": `yes = "Yes"`,
		"common.fr.toml": `yes = "Oui"`,
	})
	if mode, err := loader.DetectMode(namespaced); err != nil || mode != loader.ModeNamespaced {
		t.Errorf("DetectMode(namespaced) = %v, %v", mode, err)
	}
}

func TestDetectModeMixed(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"en.toml":        `greet = "Hello"`,
		"common.en.toml": `yes = "Yes"`,
	})
	if _, err := loader.DetectMode(dir); !errors.Is(err, loader.ErrMixedModes) {
		t.Errorf("err = %v, want ErrMixedModes", err)
	}
}

func TestDetectModeNotDirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{"en.toml": ""})
	if _, err := loader.DetectMode(filepath.Join(dir, "en.toml")); !errors.Is(err, loader.ErrNotDirectory) {
		t.Errorf("err = %v, want ErrNotDirectory", err)
	}
}

func TestLoadFlat(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"en.toml": "greet = \"Hello {name}\"\n\n[menu]\nopen = \"Open\"\n",
		"fr.toml": `greet = "Bonjour {name}"`,
	})

	set, warnings, err := loader.LoadFlat(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadFlat: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if !reflect.DeepEqual(set.Files, []string{"en.toml", "fr.toml"}) {
		t.Errorf("files = %v", set.Files)
	}

	en, ok := set.Tables["en"]
	if !ok || en.Kind != catalog.KindTable {
		t.Fatalf("en table = %+v, %v", en, ok)
	}
	if got := en.Table["greet"]; got.Kind != catalog.KindString || got.Str != "Hello {name}" {
		t.Errorf("greet = %+v", got)
	}
	if got := en.Table["menu"]; got.Kind != catalog.KindTable {
		t.Errorf("menu = %+v", got)
	}
}

func TestLoadFlatTagWarning(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"en.toml":        `greet = "Hello"`,
		"not_a_tag.toml": `greet = "???"`,
	})

	set, warnings, err := loader.LoadFlat(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadFlat: %v", err)
	}
	// Нестандартный стем остаётся локалью, но даёт предупреждение
	if _, ok := set.Tables["not_a_tag"]; !ok {
		t.Error("stem not used as locale")
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "not_a_tag") {
		t.Errorf("warnings = %v", warnings)
	}
}

func TestLoadFlatBadTOML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"en.toml": `greet = `,
	})
	_, _, err := loader.LoadFlat(context.Background(), dir)
	if err == nil || !strings.Contains(err.Error(), "en.toml") {
		t.Errorf("err = %v, want parse failure naming the file", err)
	}
}

func TestLoadNamespaced(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"common.en.toml": `yes = "Yes"`,
		"common.fr.toml": `yes = "Oui"`,
		"auth.en.toml":   `login = "Log in"`,
	})

	set, warnings, err := loader.LoadNamespaced(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadNamespaced: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if len(set.Tables) != 2 {
		t.Fatalf("namespaces = %d", len(set.Tables))
	}
	if _, ok := set.Tables["common"]["fr"]; !ok {
		t.Error("common/fr missing")
	}
	if got := set.Tables["auth"]["en"].Table["login"].Str; got != "Log in" {
		t.Errorf("auth login = %q", got)
	}
	if !reflect.DeepEqual(set.Files, []string{"auth.en.toml", "common.en.toml", "common.fr.toml"}) {
		t.Errorf("files = %v", set.Files)
	}
}

func TestLoadNamespacedInvalidName(t *testing.T) {
	tests := []string{
		"123.en.toml",   // namespace must start with a letter
		"a.b.c.toml",    // too many segments
		"my-ns.en.toml", // dash not allowed
		".en.toml",      // empty namespace
	}
	for _, name := range tests {
		dir := writeFiles(t, map[string]string{name: `x = "y"`})
		_, _, err := loader.LoadNamespaced(context.Background(), dir)
		if err == nil || !strings.Contains(err.Error(), "expected <namespace>.<locale>.toml") {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestLoadIgnoresNonTOML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"en.toml":   `greet = "Hello"`,
		"README.md": "# not a translation",
		"en.json":   `{}`,
	})
	set, _, err := loader.LoadFlat(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadFlat: %v", err)
	}
	if !reflect.DeepEqual(set.Files, []string{"en.toml"}) {
		t.Errorf("files = %v", set.Files)
	}
}

func TestLoadFlatCanceled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"en.toml": `greet = "Hello"`})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := loader.LoadFlat(ctx, dir); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
