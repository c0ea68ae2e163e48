package doc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for content with no text.
	ErrEmpty = errors.New("content is empty")
	// ErrContainsLineBreak is returned for content holding '\n' or '\r'.
	ErrContainsLineBreak = errors.New("content contains a line break")
)

// BlockError reports which block of a document failed validation.
type BlockError struct {
	Index int
	Kind  Kind
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d (%s): %v", e.Index, e.Kind, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }
