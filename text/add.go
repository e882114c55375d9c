package text

import (
	"fmt"

	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/status"
	"github.com/arloliu/innamark/tag"
	"github.com/arloliu/innamark/transcode"
)

// Add inserts as many copies of payload as the cover's insertable positions
// allow, per spec.md §4.2 "Insert algorithm". If wrap is true, payload is
// first wrapped in a raw InnamarkTag (tag byte 0x00 followed by payload).
//
// Add rejects a cover that already contains any full-alphabet character
// with a ContainsAlphabetCharsError and performs no mutation. Otherwise it
// always returns the (possibly unmodified) cover text alongside the
// status: a capacity shortfall is an OversizedWatermarkWarning, not an
// error, and still carries the best-effort output.
func (w *Watermarker) Add(cover string, payload []byte, wrap bool) status.Result[string] {
	st := status.New()

	runes := []rune(cover)

	if offending := w.findAlphabetChars(runes); len(offending) > 0 {
		st.AddError("text.add", &errs.ContainsAlphabetCharsError{Chars: offending})
		return status.WithoutValue[string](st)
	}

	if wrap {
		wrapped, err := tag.New(tag.Raw, payload).Serialize()
		if err != nil {
			st.AddError("text.add", err)
			return status.WithoutValue[string](st)
		}
		payload = wrapped
	}

	positions := w.placement(runes)

	encoded := transcode.Encode(w.alphabet, payload)
	separated := w.separator.Frame(encoded)
	chunkLen := w.separator.ChunkLen(len(separated))
	required := w.separator.MinimumInsertPositions(len(separated))

	copies := 0
	for i := 0; i+chunkLen <= len(positions); i += chunkLen {
		chunkPositions := positions[i : i+chunkLen]
		for j, ch := range separated {
			runes[chunkPositions[j]] = ch
		}
		copies++
	}

	incomplete := len(positions)%chunkLen != 0 || (chunkLen > 0 && len(positions) < chunkLen)

	result := string(runes)

	if len(positions) < required {
		st.AddWarning("text.add", &errs.OversizedWatermarkWarning{Required: required, Actual: len(positions)})
		return status.Into(st, result)
	}

	msg := fmt.Sprintf("placed %d watermark copy(ies)", copies)
	if incomplete {
		msg += ", last chunk incomplete"
	}
	st.AddSuccess("text.add", msg)

	return status.Into(st, result)
}

// findAlphabetChars returns the distinct runes of cover that belong to the
// codec's full alphabet (transcoding alphabet union separator runes), in
// first-seen order.
func (w *Watermarker) findAlphabetChars(cover []rune) []rune {
	full := w.fullAlphabetSet()

	var offending []rune
	seen := make(map[rune]bool)
	for _, r := range cover {
		if full[r] && !seen[r] {
			offending = append(offending, r)
			seen[r] = true
		}
	}
	return offending
}
