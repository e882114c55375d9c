package text

// wmRange is an inclusive [start, end] span of rune indices believed to
// hold one watermark copy.
type wmRange struct {
	start, end int
}

// computeRanges derives the watermark ranges in runes per spec.md §4.2 step
// 2, one strategy per Separator.Kind.
func (w *Watermarker) computeRanges(runes []rune, positions []int) []wmRange {
	switch w.separator.Kind {
	case SingleSeparatorChar:
		return w.singleSeparatorRanges(runes)
	case StartEndSeparatorChars:
		return w.startEndRanges(runes)
	default:
		return w.skipInsertRanges(runes, positions)
	}
}

// singleSeparatorRanges yields one range per separator occurrence: from
// just after that separator to just before the next one, or to the end of
// the cover for the last separator (a copy's encoded characters have a
// leading separator but no trailing one).
func (w *Watermarker) singleSeparatorRanges(runes []rune) []wmRange {
	var seps []int
	for i, r := range runes {
		if r == w.separator.Char {
			seps = append(seps, i)
		}
	}

	var ranges []wmRange
	for i, sep := range seps {
		end := len(runes) - 1
		if i+1 < len(seps) {
			end = seps[i+1] - 1
		}
		ranges = append(ranges, wmRange{start: sep + 1, end: end})
	}
	return ranges
}

// startEndRanges opens a range on every Start rune and closes it on the
// next End rune. An End with no matching open opens implicitly at the
// position right after the previous close.
func (w *Watermarker) startEndRanges(runes []rune) []wmRange {
	openPos := -1
	lastEnd := -1

	var ranges []wmRange
	for i, r := range runes {
		switch r {
		case w.separator.Start:
			if openPos == -1 {
				openPos = i
			}
		case w.separator.End:
			if openPos != -1 {
				ranges = append(ranges, wmRange{start: openPos + 1, end: i - 1})
				openPos = -1
			} else {
				ranges = append(ranges, wmRange{start: lastEnd + 1, end: i - 1})
			}
			lastEnd = i
		}
	}
	return ranges
}

// skipInsertRanges marks an insertable position as a segment boundary when
// its immediately preceding rune is not in the transcoding alphabet, then
// yields a leading range from the start of the cover to the first boundary
// (holding the first copy), one range per gap between consecutive
// boundaries, and a final range running to the end of the cover.
func (w *Watermarker) skipInsertRanges(runes []rune, positions []int) []wmRange {
	var boundaries []int
	for _, p := range positions {
		precededByAlphabet := p > 0 && w.alphabet.Contains(runes[p-1])
		if !precededByAlphabet {
			boundaries = append(boundaries, p)
		}
	}

	var ranges []wmRange
	if len(boundaries) > 0 && boundaries[0] > 0 {
		ranges = append(ranges, wmRange{start: 0, end: boundaries[0] - 1})
	}
	for i, start := range boundaries {
		end := len(runes) - 1
		if i+1 < len(boundaries) {
			end = boundaries[i+1] - 1
		}
		ranges = append(ranges, wmRange{start: start, end: end})
	}
	return ranges
}
