package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"woof/internal/catalog"
)

// FormatModulePretty prints the catalog tree with one line per message
// and child module.
func FormatModulePretty(w io.Writer, module *catalog.Module) {
	fmt.Fprintln(w, "Module")
	formatModulePretty(w, module, "")
}

func formatModulePretty(w io.Writer, module *catalog.Module, prefix string) {
	msgKeys := module.MessageKeys()
	modKeys := module.ModuleKeys()
	total := len(msgKeys) + len(modKeys)
	n := 0

	branch := func() (string, string) {
		n++
		if n == total {
			return "└─", "   "
		}
		return "├─", "│  "
	}

	for _, key := range msgKeys {
		msg, _ := module.Message(key)
		glyph, _ := branch()
		fmt.Fprintf(w, "%s%s %s", prefix, glyph, key.Literal)
		if key.Sanitized != key.Literal {
			fmt.Fprintf(w, " (as %s)", key.Sanitized)
		}
		fmt.Fprintf(w, " [locales:")
		for _, loc := range msg.Locales() {
			fmt.Fprintf(w, " %s", loc)
		}
		fmt.Fprint(w, "]")
		for _, ik := range msg.InterpolationKeys() {
			it, _ := msg.Interpolation(ik)
			fmt.Fprintf(w, " {%s:%s}", ik.Literal, it.Type())
		}
		fmt.Fprintln(w)
	}

	for _, key := range modKeys {
		child, _ := module.Module(key)
		glyph, childPrefix := branch()
		fmt.Fprintf(w, "%s%s %s/\n", prefix, glyph, key.Literal)
		formatModulePretty(w, child, prefix+childPrefix)
	}
}

type jsonInterpolation struct {
	Name      string            `json:"name"`
	Sanitized string            `json:"sanitized"`
	Type      string            `json:"type"`
	Ranges    map[string][]int  `json:"ranges"`
}

type jsonMessage struct {
	Key            string              `json:"key"`
	Sanitized      string              `json:"sanitized"`
	Translations   map[string]string   `json:"translations"`
	Interpolations []jsonInterpolation `json:"interpolations,omitempty"`
}

type jsonModule struct {
	Messages []jsonMessage         `json:"messages,omitempty"`
	Modules  map[string]jsonModule `json:"modules,omitempty"`
}

// FormatModuleJSON writes the catalog tree as JSON.
func FormatModuleJSON(w io.Writer, module *catalog.Module) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(moduleToJSON(module))
}

func moduleToJSON(module *catalog.Module) jsonModule {
	out := jsonModule{}
	for _, key := range module.MessageKeys() {
		msg, _ := module.Message(key)
		jm := jsonMessage{
			Key:          key.Literal,
			Sanitized:    key.Sanitized,
			Translations: make(map[string]string),
		}
		for _, loc := range msg.Locales() {
			tr, _ := msg.Translation(loc)
			jm.Translations[string(loc)] = tr.Raw
		}
		for _, ik := range msg.InterpolationKeys() {
			it, _ := msg.Interpolation(ik)
			ji := jsonInterpolation{
				Name:      ik.Literal,
				Sanitized: ik.Sanitized,
				Type:      it.Type().String(),
				Ranges:    make(map[string][]int),
			}
			for _, loc := range it.Locales() {
				sp, _ := it.Range(loc)
				ji.Ranges[string(loc)] = []int{int(sp.Start), int(sp.End)}
			}
			jm.Interpolations = append(jm.Interpolations, ji)
		}
		out.Messages = append(out.Messages, jm)
	}
	for _, key := range module.ModuleKeys() {
		child, _ := module.Module(key)
		if out.Modules == nil {
			out.Modules = make(map[string]jsonModule)
		}
		out.Modules[key.Literal] = moduleToJSON(child)
	}
	return out
}
