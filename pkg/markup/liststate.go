package markup

// listState tracks one kind of list-like block (links or list items)
// across a render pass. Only the current state and whether the following
// block is of the same kind are needed; there is no look-behind.
type listState int

const (
	notInList listState = iota
	entering
	inList
	exiting
)

// next returns the state for the current block given whether the block
// after it continues the run.
func (s listState) next(nextIsSame bool) listState {
	switch s {
	case notInList, exiting:
		if nextIsSame {
			return entering
		}
		return notInList
	case entering, inList:
		if nextIsSame {
			return inList
		}
		return exiting
	}
	return notInList
}

// member reports whether the current block belongs to a run of two or more.
func (s listState) member() bool { return s != notInList }

func (s listState) String() string {
	switch s {
	case notInList:
		return "not-in-list"
	case entering:
		return "entering"
	case inList:
		return "in-list"
	case exiting:
		return "exiting"
	default:
		return "invalid"
	}
}

// writeRun emits open before the first member of a run, the block itself,
// and close after the last member.
func writeRun(w stringWriter, s listState, open, close string, block func(member bool)) {
	if s == entering {
		w.WriteString(open)
	}
	block(s.member())
	if s == exiting {
		w.WriteString(close)
	}
}

type stringWriter interface {
	WriteString(s string) (int, error)
}
