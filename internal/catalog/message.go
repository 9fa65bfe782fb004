package catalog

import (
	"sort"
	"strings"

	"woof/internal/interp"
	"woof/internal/source"
)

// Interpolation is the merged, cross-locale record for one placeholder
// name within a message: the agreed type plus each locale's byte span
// inside its escaped translation.
type Interpolation struct {
	typ    interp.Type
	ranges map[Locale]source.Span
}

func (i *Interpolation) Type() interp.Type {
	return i.typ
}

// Range returns the placeholder's span inside the given locale's
// escaped translation.
func (i *Interpolation) Range(loc Locale) (source.Span, bool) {
	sp, ok := i.ranges[loc]
	return sp, ok
}

// Locales returns the locales that define this placeholder, sorted.
func (i *Interpolation) Locales() []Locale {
	return sortedLocales(i.ranges)
}

// Message holds every locale's translation for one key plus the merged
// interpolation map. Messages are immutable once the build returns.
type Message struct {
	translations map[Locale]Translation
	interps      map[Key]*Interpolation
}

func newMessage() *Message {
	return &Message{
		translations: make(map[Locale]Translation),
		interps:      make(map[Key]*Interpolation),
	}
}

func (m *Message) Translation(loc Locale) (Translation, bool) {
	tr, ok := m.translations[loc]
	return tr, ok
}

// Locales returns the locales this message is translated into, sorted.
func (m *Message) Locales() []Locale {
	return sortedLocales(m.translations)
}

// InterpolationKeys returns the placeholder keys sorted by literal name.
func (m *Message) InterpolationKeys() []Key {
	return sortedKeys(m.interps)
}

func (m *Message) Interpolation(k Key) (*Interpolation, bool) {
	it, ok := m.interps[k]
	return it, ok
}

// Template materializes the message for a locale: every placeholder
// defined for that locale is rewritten to `${args.<sanitized>}` and
// `{{` escapes collapse to a literal `{`. Returns false when the
// message has no translation for the locale.
func (m *Message) Template(loc Locale) (string, bool) {
	tr, ok := m.translations[loc]
	if !ok {
		return "", false
	}

	type site struct {
		key  Key
		span source.Span
	}
	sites := make([]site, 0, len(m.interps))
	for k, it := range m.interps {
		if sp, ok := it.ranges[loc]; ok {
			sites = append(sites, site{key: k, span: sp})
		}
	}
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].span.Start < sites[j].span.Start
	})

	// Substitute back to front: replacement length differs from span
	// length, so forward substitution would invalidate later offsets.
	out := tr.Escaped
	for i := len(sites) - 1; i >= 0; i-- {
		s := sites[i]
		out = out[:s.span.Start] + "${args." + s.key.Sanitized + "}" + out[s.span.End:]
	}

	// Escapes resolve only at materialization time; the scanner still
	// needed to see the `{{` spans to skip them.
	return strings.ReplaceAll(out, "{{", "{"), true
}
