// Package driver orchestrates a compilation: discover translation
// files, decode them, build the catalog tree, and hand back everything
// a reporting or code-emission layer needs.
package driver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"

	"woof/internal/catalog"
	"woof/internal/diag"
	"woof/internal/loader"
)

// Stage identifies a phase of the compile pipeline for progress
// reporting.
type Stage uint8

const (
	StageLoad Stage = iota
	StageBuild
	StageEmit
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageBuild:
		return "build"
	case StageEmit:
		return "emit"
	}
	return "unknown"
}

// Event is one progress notification. Path names the file or unit the
// stage applies to; Err is set when the stage failed.
type Event struct {
	Stage Stage
	Path  string
	Done  bool
	Err   error
}

// Options configures a compile run.
type Options struct {
	// Events receives progress notifications when non-nil. The channel
	// is never closed by the driver.
	Events chan<- Event
}

// Result is a finished compilation. Module and Diagnostics are owned by
// the caller from here on.
type Result struct {
	Mode        loader.Mode
	Module      *catalog.Module
	Diagnostics *diag.Diagnostics
	Locales     []catalog.Locale
	Files       []string
	Warnings    []string
	Digest      Digest
}

// Compile runs the full pipeline over a translation directory.
func Compile(ctx context.Context, dir string, opts Options) (*Result, error) {
	mode, err := loader.DetectMode(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: mode}
	emit := func(ev Event) {
		if opts.Events != nil {
			opts.Events <- ev
		}
	}

	emit(Event{Stage: StageLoad, Path: dir})
	switch mode {
	case loader.ModeFlat:
		set, warnings, err := loader.LoadFlat(ctx, dir)
		if err != nil {
			emit(Event{Stage: StageLoad, Path: dir, Err: err})
			return nil, err
		}
		res.Files = set.Files
		res.Warnings = warnings
		res.Locales = flatLocales(set.Tables)
		emit(Event{Stage: StageLoad, Path: dir, Done: true})

		emit(Event{Stage: StageBuild, Path: dir})
		module, diags, err := catalog.BuildFlat(set.Tables)
		if err != nil {
			emit(Event{Stage: StageBuild, Path: dir, Err: err})
			return nil, err
		}
		res.Module = module
		res.Diagnostics = diags

	case loader.ModeNamespaced:
		set, warnings, err := loader.LoadNamespaced(ctx, dir)
		if err != nil {
			emit(Event{Stage: StageLoad, Path: dir, Err: err})
			return nil, err
		}
		res.Files = set.Files
		res.Warnings = warnings
		res.Locales = namespacedLocales(set.Tables)
		emit(Event{Stage: StageLoad, Path: dir, Done: true})

		emit(Event{Stage: StageBuild, Path: dir})
		module, diags, err := catalog.BuildNamespaced(set.Tables)
		if err != nil {
			emit(Event{Stage: StageBuild, Path: dir, Err: err})
			return nil, err
		}
		res.Module = module
		res.Diagnostics = diags
	}
	emit(Event{Stage: StageBuild, Path: dir, Done: true})

	res.Digest, err = digestDir(dir, res.Files)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func flatLocales(tables map[catalog.Locale]catalog.Value) []catalog.Locale {
	out := make([]catalog.Locale, 0, len(tables))
	for loc := range tables {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func namespacedLocales(tables map[string]map[catalog.Locale]catalog.Value) []catalog.Locale {
	seen := make(map[catalog.Locale]struct{})
	for _, byLocale := range tables {
		for loc := range byLocale {
			seen[loc] = struct{}{}
		}
	}
	out := make([]catalog.Locale, 0, len(seen))
	for loc := range seen {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Digest identifies one input set: file names plus contents, hashed in
// sorted order.
type Digest [sha256.Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func digestDir(dir string, files []string) (Digest, error) {
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	h := sha256.New()
	for _, name := range sorted {
		h.Write([]byte(name))
		h.Write([]byte{0})
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return Digest{}, err
		}
		h.Write(content)
		h.Write([]byte{0})
	}

	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
