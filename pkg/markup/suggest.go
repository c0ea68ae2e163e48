package markup

import "github.com/sahilm/fuzzy"

// Suggest returns format names that fuzzily match name, best first.
func Suggest(name string) []string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, f.String())
	}
	matches := fuzzy.Find(name, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
