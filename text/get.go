package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/innamark/errs"
	"github.com/arloliu/innamark/mostfrequent"
	"github.com/arloliu/innamark/status"
	"github.com/arloliu/innamark/tag"
	"github.com/arloliu/innamark/transcode"
	"github.com/arloliu/innamark/watermark"
)

// Get extracts every watermark copy found in cover, per spec.md §4.2
// "Extract algorithm (getWatermarks)".
//
// If squash is true, duplicate watermarks (identical bytes) collapse to
// one. If singleWatermark is true, only the most-frequent watermark is
// kept, via mostfrequent.Select; a tie emits MultipleMostFrequentWarning.
// When every surviving watermark parses as a valid InnamarkTag, Get
// returns tag.Tag values; otherwise it returns raw watermark.Watermark
// values.
func (w *Watermarker) Get(cover string, squash, singleWatermark bool) status.Result[[]watermark.Value] {
	st := status.New()

	runes := []rune(cover)
	positions := w.placement(runes)
	ranges := w.computeRanges(runes, positions)

	if len(ranges) == 0 {
		ranges = []wmRange{{start: 0, end: len(runes) - 1}}
		if w.hasAlphabetChar(runes) {
			st.AddWarning("text.get", &errs.IncompleteWatermarkWarning{})
		}
	}

	var raw [][]byte
	for _, r := range ranges {
		decoded, ok := w.decodeRange(runes, r, st)
		if ok {
			raw = append(raw, decoded)
		}
	}

	if singleWatermark {
		selected, selSt := mostfrequent.Select(raw)
		st.Append(selSt)
		raw = selected
	}

	if squash {
		raw = dedupBytes(raw)
	}

	values := toValues(raw)

	st.AddSuccess("text.get", fmt.Sprintf("extracted %d watermark(s)", len(values)))

	return status.Into(st, values)
}

// GetString extracts the single most-frequent watermark and decodes it as
// UTF-8, replacing any invalid byte sequence with U+FFFD and emitting
// StringDecodeWarning when it does.
func (w *Watermarker) GetString(cover string) status.Result[string] {
	res := w.Get(cover, true, true)
	st := res.Status()

	values, ok := res.Value()
	if !ok || len(values) == 0 {
		return status.Into(st, "")
	}

	s := string(values[0].Bytes())
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
		st.AddWarning("text.get_string", &errs.StringDecodeWarning{})
	}

	return status.Into(st, s)
}

// GetBytes extracts the single most-frequent watermark's raw bytes.
func (w *Watermarker) GetBytes(cover string) status.Result[[]byte] {
	res := w.Get(cover, true, true)
	st := res.Status()

	values, ok := res.Value()
	if !ok || len(values) == 0 {
		return status.Into[[]byte](st, nil)
	}

	return status.Into(st, values[0].Bytes())
}

// hasAlphabetChar reports whether any rune of cover belongs to the
// transcoding alphabet.
func (w *Watermarker) hasAlphabetChar(cover []rune) bool {
	for _, r := range cover {
		if w.alphabet.Contains(r) {
			return true
		}
	}
	return false
}

// decodeRange pulls the alphabet-member runes out of [r.start, r.end] and
// transcodes them. It reports ok=false for an empty or out-of-bounds range.
func (w *Watermarker) decodeRange(runes []rune, r wmRange, st *status.Status) ([]byte, bool) {
	if r.start > r.end || r.start < 0 || r.end >= len(runes) {
		return nil, false
	}

	var alphaRunes []rune
	for i := r.start; i <= r.end; i++ {
		if w.alphabet.Contains(runes[i]) {
			alphaRunes = append(alphaRunes, runes[i])
		}
	}
	if len(alphaRunes) == 0 {
		return nil, false
	}

	decoded, warnings := transcode.Decode(w.alphabet, alphaRunes)
	for _, wr := range warnings {
		st.AddWarning("text.get", wr)
	}
	if len(decoded) == 0 {
		return nil, false
	}

	return decoded, true
}

// dedupBytes keeps the first occurrence of each distinct byte slice.
func dedupBytes(items [][]byte) [][]byte {
	var out [][]byte
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		key := string(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// toValues promotes raw watermark bytes to tag.Tag when every element
// parses as a valid InnamarkTag, falling back to plain watermark.Watermark
// otherwise (spec.md §4.2 step 6).
func toValues(raw [][]byte) []watermark.Value {
	if len(raw) == 0 {
		return nil
	}

	tags := make([]tag.Tag, 0, len(raw))
	for _, b := range raw {
		t, err := tag.Parse(b)
		if err != nil {
			tags = nil
			break
		}
		tags = append(tags, t)
	}

	if tags != nil {
		out := make([]watermark.Value, len(tags))
		for i, t := range tags {
			out[i] = t
		}
		return out
	}

	out := make([]watermark.Value, len(raw))
	for i, b := range raw {
		out[i] = watermark.New(b)
	}
	return out
}
