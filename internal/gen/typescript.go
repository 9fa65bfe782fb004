// Package gen walks a validated catalog tree and emits typed
// TypeScript accessor modules: one function per message, one directory
// per nested module, a root index with the locale switch.
package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"woof/internal/catalog"
	"woof/internal/interp"
)

// DefaultLocale is the locale the generated runtime starts in.
const DefaultLocale = "en"

// ErrOutputFileExists indicates the output path names an existing file.
var ErrOutputFileExists = errors.New("file exists at output path")

// Generate writes the TypeScript module tree for the catalog into dir,
// replacing any previous generation. It returns the emitted file paths
// relative to dir.
func Generate(dir string, locales []catalog.Locale, module *catalog.Module) ([]string, error) {
	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrOutputFileExists)
	}
	if err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	g := &generator{
		dir:    dir,
		union:  localeUnion(locales),
		active: activeLocale(locales),
	}

	index := fmt.Sprintf(`let _locale = %q
export const setLocale = (locale: %s) => (_locale = locale)
export const getLocale = () => _locale
export * as m from "./root"
`, g.active, g.union)
	if err := g.write("index.ts", index); err != nil {
		return nil, err
	}

	if err := g.writeModule("", 0, module); err != nil {
		return nil, err
	}
	return g.outputs, nil
}

type generator struct {
	dir     string
	union   string
	active  string
	outputs []string
}

func localeUnion(locales []catalog.Locale) string {
	if len(locales) == 0 {
		return "string"
	}
	parts := make([]string, len(locales))
	for i, loc := range locales {
		parts[i] = fmt.Sprintf("%q", string(loc))
	}
	return strings.Join(parts, " | ")
}

// activeLocale picks the initial locale: "en" when present, otherwise
// the first locale in sorted order.
func activeLocale(locales []catalog.Locale) string {
	for _, loc := range locales {
		if string(loc) == DefaultLocale {
			return DefaultLocale
		}
	}
	if len(locales) > 0 {
		return string(locales[0])
	}
	return DefaultLocale
}

func (g *generator) write(rel, content string) error {
	path := filepath.Join(g.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	g.outputs = append(g.outputs, rel)
	return nil
}

func (g *generator) writeModule(rel string, depth int, module *catalog.Module) error {
	filename := "index.ts"
	if depth == 0 {
		filename = "root.ts"
	}

	rootImport := "."
	if depth > 0 {
		segs := make([]string, depth)
		for i := range segs {
			segs[i] = ".."
		}
		rootImport = strings.Join(segs, "/")
	}

	var b strings.Builder
	b.WriteString("// eslint-disable\n")
	fmt.Fprintf(&b, "import { getLocale } from %q\n", rootImport)

	for _, key := range module.MessageKeys() {
		msg, _ := module.Message(key)
		g.writeMessage(&b, key, msg)
	}

	for _, key := range module.ModuleKeys() {
		fmt.Fprintf(&b, "export * as %s from \"./%s\"\n", key.Sanitized, key.Sanitized)
	}

	if err := g.write(filepath.Join(rel, filename), b.String()); err != nil {
		return err
	}

	for _, key := range module.ModuleKeys() {
		child, _ := module.Module(key)
		if err := g.writeModule(filepath.Join(rel, key.Sanitized), depth+1, child); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) writeMessage(b *strings.Builder, key catalog.Key, msg *catalog.Message) {
	interpKeys := msg.InterpolationKeys()

	params := fmt.Sprintf("locale?: %s", g.union)
	if len(interpKeys) > 0 {
		props := make([]string, len(interpKeys))
		for i, ik := range interpKeys {
			it, _ := msg.Interpolation(ik)
			props[i] = fmt.Sprintf("%s: %s", ik.Sanitized, tsType(it.Type()))
		}
		params = fmt.Sprintf("args: { %s }, %s", strings.Join(props, "; "), params)
	}

	fmt.Fprintf(b, "export const %s = (%s) => {\n", key.Sanitized, params)
	fmt.Fprintf(b, "  const resolved = locale ?? getLocale()\n")
	for _, loc := range msg.Locales() {
		template, ok := msg.Template(loc)
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  if (resolved === %q) return `%s`\n", string(loc), template)
	}
	fmt.Fprintf(b, "  return %q\n", key.Sanitized)
	fmt.Fprintf(b, "}\n")
}

// tsType maps an interpolation type to the generated argument type.
// Untyped placeholders accept strings.
func tsType(t interp.Type) string {
	if t == interp.TypeNumber {
		return "number"
	}
	return "string"
}
