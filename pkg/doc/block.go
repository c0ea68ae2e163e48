package doc

import "net/url"

// Kind names a Block variant.
type Kind int

// Block kinds, one per variant.
const (
	KindText Kind = iota
	KindLink
	KindHeading
	KindListItem
	KindQuote
	KindPreformatted
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindLink:
		return "link"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list"
	case KindQuote:
		return "quote"
	case KindPreformatted:
		return "pre"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Block is one element of a document. The set of variants is closed:
// Text, Link, Heading, ListItem, Quote, Preformatted and Empty.
type Block interface {
	Kind() Kind
	isBlock()
}

// Level is the rank of a Heading.
type Level int

// Heading levels.
const (
	LevelOne Level = iota + 1
	LevelTwo
	LevelThree
)

// Text is a line of paragraph text.
type Text struct{ Content Content }

// Heading is a section title at Level.
type Heading struct {
	Level   Level
	Content Content
}

// ListItem is one bullet; consecutive items form a list.
type ListItem struct{ Content Content }

// Quote is a quoted line.
type Quote struct{ Content Content }

// Empty is a blank separator line.
type Empty struct{}

// Link is a URI with an optional label.
type Link struct {
	uri   *url.URL
	label *Content
}

// NewLink builds a link. A nil label makes a bare link.
func NewLink(uri *url.URL, label *Content) Link {
	l := Link{uri: uri}
	if label != nil {
		c := *label
		l.label = &c
	}
	return l
}

// URI returns the string form of the link target.
func (l Link) URI() string {
	if l.uri == nil {
		return ""
	}
	return l.uri.String()
}

// Label returns the label and whether one is set.
func (l Link) Label() (Content, bool) {
	if l.label == nil {
		return Content{}, false
	}
	return *l.label, true
}

// Preformatted is verbatim text, which may span several lines, with an
// optional alt caption.
type Preformatted struct {
	text string
	alt  *Content
}

func NewPreformatted(text string, alt *Content) Preformatted {
	p := Preformatted{text: text}
	if alt != nil {
		c := *alt
		p.alt = &c
	}
	return p
}

func (p Preformatted) Text() string { return p.text }

// Alt returns the caption and whether one is set.
func (p Preformatted) Alt() (Content, bool) {
	if p.alt == nil {
		return Content{}, false
	}
	return *p.alt, true
}

func (Text) Kind() Kind         { return KindText }
func (Link) Kind() Kind         { return KindLink }
func (Heading) Kind() Kind      { return KindHeading }
func (ListItem) Kind() Kind     { return KindListItem }
func (Quote) Kind() Kind        { return KindQuote }
func (Preformatted) Kind() Kind { return KindPreformatted }
func (Empty) Kind() Kind        { return KindEmpty }

func (Text) isBlock()         {}
func (Link) isBlock()         {}
func (Heading) isBlock()      {}
func (ListItem) isBlock()     {}
func (Quote) isBlock()        {}
func (Preformatted) isBlock() {}
func (Empty) isBlock()        {}

// validateBlock checks every Content-bearing field of b.
func validateBlock(b Block) error {
	switch b := b.(type) {
	case Text:
		return b.Content.Validate()
	case Link:
		if label, ok := b.Label(); ok {
			return label.Validate()
		}
	case Heading:
		return b.Content.Validate()
	case ListItem:
		return b.Content.Validate()
	case Quote:
		return b.Content.Validate()
	case Preformatted:
		if alt, ok := b.Alt(); ok {
			return alt.Validate()
		}
	case Empty:
	}
	return nil
}
