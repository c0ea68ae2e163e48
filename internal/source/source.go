// Package source decodes YAML document descriptions into a doc.Document.
//
// A description is a sequence of single-key mappings naming the block kind:
//
//	- h1: title
//	- text: some text
//	- link: gemini://example.org/
//	- link: {uri: one-link, label: one link}
//	- list: an item
//	- quote: quoted
//	- pre: {text: "@_@", alt: emoticon}
//	- empty
//
// Content is not validated here; that is left to doc.Document.Build.
package source

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mithrel/mdiu/pkg/doc"
)

type linkSpec struct {
	URI   string  `yaml:"uri"`
	Label *string `yaml:"label"`
}

type preSpec struct {
	Text string  `yaml:"text"`
	Alt  *string `yaml:"alt"`
}

// Decode reads a document description from r. An empty input yields an
// empty document.
func Decode(r io.Reader) (doc.Document, error) {
	var items []yaml.Node
	if err := yaml.NewDecoder(r).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return doc.New(), nil
		}
		return doc.Document{}, fmt.Errorf("decode document: %w", err)
	}

	d := doc.New()
	for i := range items {
		var err error
		d, err = appendItem(d, &items[i])
		if err != nil {
			return doc.Document{}, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return d, nil
}

// DecodeFile decodes the description stored at path.
func DecodeFile(path string) (doc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return doc.Document{}, err
	}
	defer f.Close()
	return Decode(f)
}

func appendItem(d doc.Document, n *yaml.Node) (doc.Document, error) {
	if n.Kind == yaml.ScalarNode && n.Value == "empty" {
		return d.Empty(), nil
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return d, fmt.Errorf("line %d: expected a single-key mapping", n.Line)
	}
	kind, val := n.Content[0].Value, n.Content[1]

	switch kind {
	case "text", "h1", "h2", "h3", "list", "quote":
		text, err := scalar(kind, val)
		if err != nil {
			return d, err
		}
		switch kind {
		case "text":
			return d.Text(text), nil
		case "h1":
			return d.H1(text), nil
		case "h2":
			return d.H2(text), nil
		case "h3":
			return d.H3(text), nil
		case "list":
			return d.ListItem(text), nil
		default:
			return d.Quote(text), nil
		}
	case "link":
		var spec linkSpec
		if val.Kind == yaml.ScalarNode {
			spec.URI = val.Value
		} else if err := val.Decode(&spec); err != nil {
			return d, fmt.Errorf("link: %w", err)
		}
		if spec.URI == "" {
			return d, fmt.Errorf("line %d: link has no uri", val.Line)
		}
		uri, err := url.Parse(spec.URI)
		if err != nil {
			return d, fmt.Errorf("invalid uri %q: %w", spec.URI, err)
		}
		if spec.Label != nil {
			return d.LinkWithLabel(uri, *spec.Label), nil
		}
		return d.Link(uri), nil
	case "pre":
		var spec preSpec
		if val.Kind == yaml.ScalarNode {
			spec.Text = val.Value
		} else if err := val.Decode(&spec); err != nil {
			return d, fmt.Errorf("pre: %w", err)
		}
		if spec.Alt != nil {
			return d.PreformattedWithAlt(spec.Text, *spec.Alt), nil
		}
		return d.Preformatted(spec.Text), nil
	case "empty":
		return d.Empty(), nil
	default:
		return d, fmt.Errorf("line %d: unknown block kind %q", n.Content[0].Line, kind)
	}
}

func scalar(kind string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: %s expects a string", n.Line, kind)
	}
	return n.Value, nil
}
