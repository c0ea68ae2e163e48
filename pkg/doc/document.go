package doc

import "net/url"

// Document accumulates blocks in reading order.
//
// Appenders store their text unchecked and return a new Document, so a
// prefix can be shared between several documents:
//
//	base := doc.New().H1("my site")
//	home, _ := base.Build()
//	article, _ := base.H2("my article").Build()
//
// Validation is deferred to Validate and Build.
type Document struct {
	blocks []Block
}

// New returns an empty document.
func New() Document { return Document{} }

// push copies the backing slice once per call so earlier Document values
// never observe later appends.
func (d Document) push(bs ...Block) Document {
	blocks := make([]Block, len(d.blocks), len(d.blocks)+len(bs))
	copy(blocks, d.blocks)
	return Document{blocks: append(blocks, bs...)}
}

// Append adds already constructed blocks.
func (d Document) Append(blocks ...Block) Document {
	return d.push(blocks...)
}

func (d Document) Text(text string) Document {
	return d.push(Text{Content: UncheckedContent(text)})
}

// Link appends a bare link.
func (d Document) Link(uri *url.URL) Document {
	return d.push(NewLink(uri, nil))
}

func (d Document) LinkWithLabel(uri *url.URL, label string) Document {
	c := UncheckedContent(label)
	return d.push(NewLink(uri, &c))
}

func (d Document) H1(text string) Document { return d.heading(LevelOne, text) }
func (d Document) H2(text string) Document { return d.heading(LevelTwo, text) }
func (d Document) H3(text string) Document { return d.heading(LevelThree, text) }

func (d Document) heading(level Level, text string) Document {
	return d.push(Heading{Level: level, Content: UncheckedContent(text)})
}

func (d Document) ListItem(text string) Document {
	return d.push(ListItem{Content: UncheckedContent(text)})
}

func (d Document) Quote(text string) Document {
	return d.push(Quote{Content: UncheckedContent(text)})
}

// Preformatted appends verbatim text. The text itself may contain newlines.
func (d Document) Preformatted(text string) Document {
	return d.push(NewPreformatted(text, nil))
}

func (d Document) PreformattedWithAlt(text, alt string) Document {
	c := UncheckedContent(alt)
	return d.push(NewPreformatted(text, &c))
}

// Empty appends a blank line.
func (d Document) Empty() Document {
	return d.push(Empty{})
}

// Len returns the number of blocks appended so far.
func (d Document) Len() int { return len(d.blocks) }

// Validate checks every block in order and stops at the first failure,
// which is returned as a *BlockError wrapping ErrEmpty or
// ErrContainsLineBreak.
func (d Document) Validate() error {
	for i, b := range d.blocks {
		if err := validateBlock(b); err != nil {
			return &BlockError{Index: i, Kind: b.Kind(), Err: err}
		}
	}
	return nil
}

// Build validates the document and returns its blocks.
func (d Document) Build() ([]Block, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out, nil
}
