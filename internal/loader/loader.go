// Package loader discovers and decodes translation files. A directory
// is either flat (`<locale>.toml`) or namespaced
// (`<namespace>.<locale>.toml`); mixing the two is an error. Decoding
// produces generic value trees — validation happens in the catalog
// builder, not here.
package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"woof/internal/catalog"
	"woof/internal/sanitize"
)

// Mode says how files in the input directory name their locales.
type Mode uint8

const (
	// ModeFlat: one file per locale, `en.toml`.
	ModeFlat Mode = iota
	// ModeNamespaced: one file per namespace and locale, `common.en.toml`.
	ModeNamespaced
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeNamespaced:
		return "namespaced"
	}
	return "unknown"
}

var (
	// ErrMixedModes indicates both flat and namespaced files in one
	// directory.
	ErrMixedModes = errors.New("found both flat and namespaced translation files")
	// ErrNotDirectory indicates the input path is not a directory.
	ErrNotDirectory = errors.New("input path is not a directory")
)

// FlatSet is the decoded content of a flat directory.
type FlatSet struct {
	Tables map[catalog.Locale]catalog.Value
	Files  []string // sorted file names, for reporting
}

// NamespacedSet is the decoded content of a namespaced directory.
type NamespacedSet struct {
	Tables map[string]map[catalog.Locale]catalog.Value
	Files  []string
}

// DetectMode examines the *.toml file stems in dir: a stem containing a
// dot is namespaced, one without is flat.
func DetectMode(dir string) (Mode, error) {
	stems, err := tomlStems(dir)
	if err != nil {
		return ModeFlat, err
	}

	hasFlat, hasNamespaced := false, false
	for _, stem := range stems {
		if strings.Contains(stem, ".") {
			hasNamespaced = true
		} else {
			hasFlat = true
		}
		if hasFlat && hasNamespaced {
			return ModeFlat, ErrMixedModes
		}
	}
	if hasNamespaced {
		return ModeNamespaced, nil
	}
	return ModeFlat, nil
}

// LoadFlat reads every `<locale>.toml` in dir concurrently. Locale
// stems that are not well-formed BCP 47 tags are collected as warnings;
// locale identity stays the literal stem.
func LoadFlat(ctx context.Context, dir string) (*FlatSet, []string, error) {
	files, err := listTOMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	trees, err := decodeAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	set := &FlatSet{Tables: make(map[catalog.Locale]catalog.Value, len(files))}
	var warnings []string
	for i, path := range files {
		stem := fileStem(path)
		warnings = appendTagWarning(warnings, path, stem)
		set.Tables[catalog.Locale(stem)] = trees[i]
		set.Files = append(set.Files, filepath.Base(path))
	}
	return set, warnings, nil
}

// LoadNamespaced reads every `<namespace>.<locale>.toml` in dir. The
// namespace segment must be a valid identifier.
func LoadNamespaced(ctx context.Context, dir string) (*NamespacedSet, []string, error) {
	files, err := listTOMLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	type target struct {
		namespace string
		locale    catalog.Locale
	}
	targets := make([]target, len(files))
	for i, path := range files {
		stem := fileStem(path)
		parts := strings.Split(stem, ".")
		if len(parts) != 2 || parts[0] == "" || !sanitize.IsValidIdentifier(parts[0]) {
			return nil, nil, fmt.Errorf("invalid file name %q: expected <namespace>.<locale>.toml", filepath.Base(path))
		}
		targets[i] = target{namespace: parts[0], locale: catalog.Locale(parts[1])}
	}

	trees, err := decodeAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	set := &NamespacedSet{Tables: make(map[string]map[catalog.Locale]catalog.Value)}
	var warnings []string
	for i, path := range files {
		t := targets[i]
		warnings = appendTagWarning(warnings, path, string(t.locale))
		byLocale := set.Tables[t.namespace]
		if byLocale == nil {
			byLocale = make(map[catalog.Locale]catalog.Value)
			set.Tables[t.namespace] = byLocale
		}
		byLocale[t.locale] = trees[i]
		set.Files = append(set.Files, filepath.Base(path))
	}
	return set, warnings, nil
}

// decodeAll decodes the given files in parallel. Result slots are
// per-index, so no mutex is needed; the merge into locale maps stays
// serialized in the callers.
func decodeAll(ctx context.Context, files []string) ([]catalog.Value, error) {
	trees := make([]catalog.Value, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			var raw map[string]any
			if _, err := toml.DecodeFile(path, &raw); err != nil {
				return fmt.Errorf("%s: failed to parse TOML: %w", filepath.Base(path), err)
			}
			tree, err := catalog.FromTOML(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			trees[i] = tree
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

// listTOMLFiles returns the sorted *.toml paths directly inside dir.
func listTOMLFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func tomlStems(dir string) ([]string, error) {
	files, err := listTOMLFiles(dir)
	if err != nil {
		return nil, err
	}
	stems := make([]string, len(files))
	for i, f := range files {
		stems[i] = fileStem(f)
	}
	return stems, nil
}

func fileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".toml")
}

// appendTagWarning adds a warning when a locale stem does not parse as
// a BCP 47 tag. Purely informational: the stem is still used verbatim.
func appendTagWarning(warnings []string, path, stem string) []string {
	if _, err := language.Parse(stem); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: locale %q is not a well-formed BCP 47 tag", filepath.Base(path), stem))
	}
	return warnings
}
