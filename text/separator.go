package text

// SeparatorKind names one of the three framing strategies a Watermarker
// uses to delimit repeated watermark copies within a cover (spec.md §3
// "Separator strategy").
type SeparatorKind uint8

const (
	// SkipInsertPosition leaves one insertable position unoccupied after
	// each copy's encoded characters, using it as an unmarked frame end.
	SkipInsertPosition SeparatorKind = iota
	// SingleSeparatorChar prefixes each copy with a single separator rune.
	SingleSeparatorChar
	// StartEndSeparatorChars wraps each copy in a pair of start/end runes.
	StartEndSeparatorChars
)

// Separator is a configured separator strategy. The zero value is
// SkipInsertPosition.
type Separator struct {
	Kind  SeparatorKind
	Char  rune // used by SingleSeparatorChar
	Start rune // used by StartEndSeparatorChars
	End   rune // used by StartEndSeparatorChars
}

// NewSkipInsertPosition builds the SkipInsertPosition strategy.
func NewSkipInsertPosition() Separator {
	return Separator{Kind: SkipInsertPosition}
}

// NewSingleSeparatorChar builds the SingleSeparatorChar strategy with the
// given separator rune.
func NewSingleSeparatorChar(c rune) Separator {
	return Separator{Kind: SingleSeparatorChar, Char: c}
}

// NewStartEndSeparatorChars builds the StartEndSeparatorChars strategy with
// the given start and end runes.
func NewStartEndSeparatorChars(start, end rune) Separator {
	return Separator{Kind: StartEndSeparatorChars, Start: start, End: end}
}

// Chars returns the separator runes this strategy introduces into the
// cover, used to build a codec's full alphabet (spec.md §4.2 step 1).
func (s Separator) Chars() []rune {
	switch s.Kind {
	case SingleSeparatorChar:
		return []rune{s.Char}
	case StartEndSeparatorChars:
		return []rune{s.Start, s.End}
	default:
		return nil
	}
}

// Frame wraps encoded (the transcoded watermark characters) in this
// strategy's delimiters.
func (s Separator) Frame(encoded []rune) []rune {
	switch s.Kind {
	case SingleSeparatorChar:
		out := make([]rune, 0, len(encoded)+1)
		out = append(out, s.Char)
		out = append(out, encoded...)
		return out
	case StartEndSeparatorChars:
		out := make([]rune, 0, len(encoded)+2)
		out = append(out, s.Start)
		out = append(out, encoded...)
		out = append(out, s.End)
		return out
	default: // SkipInsertPosition
		return encoded
	}
}

// ChunkLen returns the number of insertable positions one copy of a
// separatedLen-long separated sequence consumes: separatedLen for
// SingleSeparatorChar and StartEndSeparatorChars, separatedLen+1 for
// SkipInsertPosition (the extra slot is the unoccupied frame end).
func (s Separator) ChunkLen(separatedLen int) int {
	if s.Kind == SkipInsertPosition {
		return separatedLen + 1
	}
	return separatedLen
}

// MinimumInsertPositions returns the minimum number of insertable positions
// required to place one watermark copy, per spec.md §4.2:
// separatedLen+1 for SkipInsertPosition and SingleSeparatorChar,
// separatedLen for StartEndSeparatorChars.
func (s Separator) MinimumInsertPositions(separatedLen int) int {
	if s.Kind == StartEndSeparatorChars {
		return separatedLen
	}
	return separatedLen + 1
}
