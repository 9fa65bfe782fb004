package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"woof/internal/diag"
	"woof/internal/interp"
	"woof/internal/source"
)

// ErrRootNotTable indicates that a locale's top-level value is not a
// table. This is the only content condition that aborts a build.
var ErrRootNotTable = errors.New("locale root is not a table")

// BuildFlat merges one table per locale into a single catalog tree.
// Content-level problems (bad interpolation syntax, type conflicts,
// unsupported value shapes) go into the returned diagnostics and never
// abort the walk. Locales are processed in sorted order so first-wins
// type resolution is deterministic.
func BuildFlat(tables map[Locale]Value) (*Module, *diag.Diagnostics, error) {
	root := newModule()
	diags := diag.New()

	for _, loc := range sortedLocales(tables) {
		v := tables[loc]
		if v.Kind != KindTable {
			return nil, nil, fmt.Errorf("locale %q: %w", loc, ErrRootNotTable)
		}
		w := &walker{
			locale: loc,
			file:   string(loc) + ".toml",
			diags:  diags,
		}
		w.walk(root, v.Table)
	}

	return root, diags, nil
}

// BuildNamespaced runs the flat builder once per namespace and nests
// each result under the sanitized namespace key. The root module has no
// direct messages. Diagnostics from each namespace are merged with the
// namespace recorded as an explicit field.
func BuildNamespaced(namespaces map[string]map[Locale]Value) (*Module, *diag.Diagnostics, error) {
	root := newModule()
	diags := diag.New()

	names := make([]string, 0, len(namespaces))
	for ns := range namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)

	for _, ns := range names {
		mod, nsDiags, err := BuildFlat(namespaces[ns])
		if err != nil {
			return nil, nil, fmt.Errorf("namespace %q: %w", ns, err)
		}
		root.modules[NewKey(ns)] = mod
		diags.Merge(nsDiags, ns)
	}

	return root, diags, nil
}

// walker carries one locale's state down the recursive table walk.
type walker struct {
	locale Locale
	file   string
	path   []string
	diags  *diag.Diagnostics
}

func (w *walker) walk(mod *Module, table map[string]Value) {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := table[key]
		switch v.Kind {
		case KindString:
			w.addTranslation(mod, key, v.Str)
		case KindTable:
			child := mod.ensureModule(NewKey(key))
			w.path = append(w.path, key)
			w.walk(child, v.Table)
			w.path = w.path[:len(w.path)-1]
		default:
			w.diags.AddKeyDiagnostic(w.fileKey(), w.pathAt(key), diag.KeyDiagnostic{
				Kind:      diag.UnsupportedValue,
				ValueType: v.TypeName(),
			})
		}
	}
}

func (w *walker) addTranslation(mod *Module, key, raw string) {
	tr := NewTranslation(raw)
	occs, parseErrs := interp.Parse(tr.Escaped)
	if len(parseErrs) > 0 {
		w.diags.AddKeyDiagnostic(w.fileKey(), w.pathAt(key), diag.KeyDiagnostic{
			Kind:   diag.InterpolationErrors,
			Source: tr.Escaped,
			Errors: parseErrs,
		})
	}

	msg := mod.ensureMessage(NewKey(key))
	msg.translations[w.locale] = tr

	for _, occ := range occs {
		entry, ok := msg.interps[NewKey(occ.Name)]
		if !ok {
			entry = &Interpolation{
				typ:    occ.Type,
				ranges: make(map[Locale]source.Span, 1),
			}
			msg.interps[NewKey(occ.Name)] = entry
		}

		if occ.Type != entry.typ {
			// First-seen type wins; the conflicting locale must not
			// update the stored ranges. Record the full competing set.
			existing := make([]diag.LocaleType, 0, len(entry.ranges))
			for loc := range entry.ranges {
				existing = append(existing, diag.LocaleType{
					Locale: string(loc),
					Type:   entry.typ,
				})
			}
			w.diags.AddTypeMismatch(
				diag.MismatchKey{Path: w.pathAt(key), Name: occ.Name},
				diag.LocaleType{Locale: string(w.locale), Type: occ.Type},
				existing,
			)
			continue
		}

		entry.ranges[w.locale] = occ.Span
	}
}

func (w *walker) fileKey() diag.FileKey {
	return diag.FileKey{Locale: string(w.locale), File: w.file}
}

// pathAt joins the ancestor path and the current key with dots, using
// literal key text so diagnostics stay readable even when sanitization
// renames the generated symbol.
func (w *walker) pathAt(key string) string {
	if len(w.path) == 0 {
		return key
	}
	return strings.Join(w.path, ".") + "." + key
}
