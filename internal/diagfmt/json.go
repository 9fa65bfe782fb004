package diagfmt

import (
	"encoding/json"
	"io"

	"woof/internal/diag"
)

type jsonParseError struct {
	Kind   string `json:"kind"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
	Detail string `json:"detail,omitempty"`
}

type jsonKeyDiagnostic struct {
	Path      string           `json:"path"`
	Kind      string           `json:"kind"`
	ValueType string           `json:"valueType,omitempty"`
	Source    string           `json:"source,omitempty"`
	Errors    []jsonParseError `json:"errors,omitempty"`
}

type jsonFileReport struct {
	Namespace string              `json:"namespace,omitempty"`
	Locale    string              `json:"locale"`
	File      string              `json:"file"`
	Keys      []jsonKeyDiagnostic `json:"keys"`
}

type jsonLocaleType struct {
	Locale string `json:"locale"`
	Type   string `json:"type"`
}

type jsonMismatch struct {
	Namespace string           `json:"namespace,omitempty"`
	Path      string           `json:"path"`
	Name      string           `json:"name"`
	Locales   []jsonLocaleType `json:"locales"`
}

type jsonDiagnostics struct {
	Files      []jsonFileReport `json:"files"`
	Mismatches []jsonMismatch   `json:"mismatches"`
	Total      int              `json:"total"`
}

// JSON writes a machine-readable dump of the diagnostics.
func JSON(w io.Writer, diags *diag.Diagnostics, opts JSONOpts) error {
	out := jsonDiagnostics{Total: diags.Len()}
	count := 0

	for _, report := range diags.FileReports() {
		if opts.Max > 0 && count >= opts.Max {
			break
		}
		jr := jsonFileReport{
			Namespace: report.Namespace,
			Locale:    report.Locale,
			File:      report.File,
		}
		for _, entry := range report.Entries {
			if opts.Max > 0 && count >= opts.Max {
				break
			}
			count++
			jk := jsonKeyDiagnostic{
				Path:      entry.Path,
				Kind:      entry.Diag.Kind.String(),
				ValueType: entry.Diag.ValueType,
				Source:    entry.Diag.Source,
			}
			for _, perr := range entry.Diag.Errors {
				jk.Errors = append(jk.Errors, jsonParseError{
					Kind:   perr.Kind.String(),
					Start:  perr.Span.Start,
					End:    perr.Span.End,
					Detail: perr.Detail,
				})
			}
			jr.Keys = append(jr.Keys, jk)
		}
		out.Files = append(out.Files, jr)
	}

	for _, report := range diags.MismatchReports() {
		if opts.Max > 0 && count >= opts.Max {
			break
		}
		count++
		jm := jsonMismatch{
			Namespace: report.Namespace,
			Path:      report.Path,
			Name:      report.Name,
		}
		for _, lt := range report.Entries {
			jm.Locales = append(jm.Locales, jsonLocaleType{Locale: lt.Locale, Type: lt.Type.String()})
		}
		out.Mismatches = append(out.Mismatches, jm)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
