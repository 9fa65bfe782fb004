// Package diagfmt renders diagnostics and catalog trees for humans and
// machines. The accumulator carries everything a report needs; nothing
// here looks data up anywhere else.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	Max   int // обрезка вывода, 0 - не ограничено
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int
}
