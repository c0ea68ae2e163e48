package doc

import "strings"

// Content is a piece of text that is non-empty and free of line breaks.
//
// Line breaks delimit blocks in gemtext, so a Content must never carry one.
// Create it with NewContent, or with UncheckedContent when the text is known
// to be valid already.
type Content struct {
	text string
}

// NewContent validates text and wraps it.
func NewContent(text string) (Content, error) {
	if err := validateText(text); err != nil {
		return Content{}, err
	}
	return Content{text: text}, nil
}

// MustContent is like NewContent but panics on invalid input.
// Intended for literals.
func MustContent(text string) Content {
	c, err := NewContent(text)
	if err != nil {
		panic(err)
	}
	return c
}

// UncheckedContent wraps text without checking it. Invalid text is not a
// memory hazard, but it renders as broken markup.
func UncheckedContent(text string) Content {
	return Content{text: text}
}

// Validate re-checks the invariants. Only content built with
// UncheckedContent (or the zero value) can fail.
func (c Content) Validate() error {
	return validateText(c.text)
}

func (c Content) String() string { return c.text }

func validateText(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if strings.ContainsAny(text, "\n\r") {
		return ErrContainsLineBreak
	}
	return nil
}
