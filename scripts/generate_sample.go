// Command generate_sample writes a large random document description to
// stdout, for trying out rendering of long link and list runs:
//
//	go run ./scripts | mdiu-cli render --format html
package main

import (
	"fmt"
	mrand "math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

type item map[string]any

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	const sections = 50
	out := make([]item, 0, sections*8)

	out = append(out, item{"h1": "Sample capsule"})
	for i := 0; i < sections; i++ {
		out = append(out, item{"h2": fmt.Sprintf("Section %03d", i+1)})
		out = append(out, item{"text": fmt.Sprintf("Introduction to section %03d.", i+1)})

		// Runs of 1-4 so both standalone and wrapped forms appear.
		for j, n := 0, 1+mr.Intn(4); j < n; j++ {
			uri := fmt.Sprintf("gemini://example.org/%03d/%d.gmi", i+1, j+1)
			if mr.Float64() < 0.5 {
				out = append(out, item{"link": uri})
			} else {
				out = append(out, item{"link": map[string]string{"uri": uri, "label": fmt.Sprintf("Page %d", j+1)}})
			}
		}
		if mr.Float64() < 0.3 {
			out = append(out, item{"quote": "A quoted line."})
		}
		for j, n := 0, 1+mr.Intn(3); j < n; j++ {
			out = append(out, item{"list": fmt.Sprintf("Point %d", j+1)})
		}
		if mr.Float64() < 0.2 {
			out = append(out, item{"pre": map[string]string{"text": "  /\\_/\\\n ( o.o )\n  > ^ <", "alt": "cat"}})
		}
		out = append(out, item{"empty": nil})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
