package diag

import (
	"sort"
)

// Diagnostics collects every non-fatal problem found during one build:
// structural diagnostics keyed by (locale, file) and dotted key path,
// and cross-locale interpolation type mismatches keyed by path and
// placeholder name.
type Diagnostics struct {
	files      map[FileKey]map[string]KeyDiagnostic
	mismatches map[MismatchKey]map[LocaleType]struct{}
}

func New() *Diagnostics {
	return &Diagnostics{
		files:      make(map[FileKey]map[string]KeyDiagnostic),
		mismatches: make(map[MismatchKey]map[LocaleType]struct{}),
	}
}

// IsEmpty reports whether any diagnostic of either kind was recorded.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.files) == 0 && len(d.mismatches) == 0
}

// Len returns the total number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	n := 0
	for _, byPath := range d.files {
		n += len(byPath)
	}
	return n + len(d.mismatches)
}

// AddKeyDiagnostic records a structural diagnostic for a dotted key
// path. A later diagnostic at the same path replaces the earlier one,
// mirroring map insertion in the file bucket.
func (d *Diagnostics) AddKeyDiagnostic(at FileKey, path string, kd KeyDiagnostic) {
	byPath := d.files[at]
	if byPath == nil {
		byPath = make(map[string]KeyDiagnostic)
		d.files[at] = byPath
	}
	byPath[path] = kd
}

// AddTypeMismatch records one cross-locale type conflict. Both the
// newly found (locale, type) and every locale already holding the
// entry's type go into the same set, so the report names the complete
// competing set.
func (d *Diagnostics) AddTypeMismatch(key MismatchKey, found LocaleType, existing []LocaleType) {
	set := d.mismatches[key]
	if set == nil {
		set = make(map[LocaleType]struct{})
		d.mismatches[key] = set
	}
	for _, lt := range existing {
		set[lt] = struct{}{}
	}
	set[found] = struct{}{}
}

// Merge folds other into d, stamping every merged record with the given
// namespace. The namespaced builder uses this to combine per-namespace
// accumulators.
func (d *Diagnostics) Merge(other *Diagnostics, namespace string) {
	for at, byPath := range other.files {
		at.Namespace = namespace
		for path, kd := range byPath {
			d.AddKeyDiagnostic(at, path, kd)
		}
	}
	for key, set := range other.mismatches {
		key.Namespace = namespace
		dst := d.mismatches[key]
		if dst == nil {
			dst = make(map[LocaleType]struct{}, len(set))
			d.mismatches[key] = dst
		}
		for lt := range set {
			dst[lt] = struct{}{}
		}
	}
}

// FileReport is the rendered view of one (locale, file) bucket, sorted
// for deterministic output.
type FileReport struct {
	FileKey
	Entries []KeyReport
}

type KeyReport struct {
	Path string
	Diag KeyDiagnostic
}

// FileReports returns all structural diagnostics sorted by namespace,
// locale, file and path.
func (d *Diagnostics) FileReports() []FileReport {
	reports := make([]FileReport, 0, len(d.files))
	for at, byPath := range d.files {
		entries := make([]KeyReport, 0, len(byPath))
		for path, kd := range byPath {
			entries = append(entries, KeyReport{Path: path, Diag: kd})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Path < entries[j].Path
		})
		reports = append(reports, FileReport{FileKey: at, Entries: entries})
	}
	sort.Slice(reports, func(i, j int) bool {
		a, b := reports[i].FileKey, reports[j].FileKey
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		if a.Locale != b.Locale {
			return a.Locale < b.Locale
		}
		return a.File < b.File
	})
	return reports
}

// MismatchReport is the rendered view of one conflicting placeholder.
type MismatchReport struct {
	MismatchKey
	Entries []LocaleType
}

// MismatchReports returns all type mismatches sorted by namespace, path
// and placeholder name, each with its (locale, type) set sorted by
// locale.
func (d *Diagnostics) MismatchReports() []MismatchReport {
	reports := make([]MismatchReport, 0, len(d.mismatches))
	for key, set := range d.mismatches {
		entries := make([]LocaleType, 0, len(set))
		for lt := range set {
			entries = append(entries, lt)
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Locale != entries[j].Locale {
				return entries[i].Locale < entries[j].Locale
			}
			return entries[i].Type < entries[j].Type
		})
		reports = append(reports, MismatchReport{MismatchKey: key, Entries: entries})
	}
	sort.Slice(reports, func(i, j int) bool {
		a, b := reports[i].MismatchKey, reports[j].MismatchKey
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Name < b.Name
	})
	return reports
}
