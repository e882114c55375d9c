package zipfile

import (
	"fmt"

	"github.com/arloliu/innamark/mostfrequent"
	"github.com/arloliu/innamark/status"
	"github.com/arloliu/innamark/tag"
	"github.com/arloliu/innamark/watermark"
)

// Get concatenates the payloads of every WatermarkFieldID extra field
// across all Local File Headers, in stream order, per spec.md §4.4 "Get".
// squash and singleWatermark apply the §4.2.1 most-frequent policy to that
// list, and — as in the text codec — the result promotes to tag.Tag values
// when every surviving watermark parses as a valid InnamarkTag.
func Get(data []byte, squash, singleWatermark bool) status.Result[[]watermark.Value] {
	st := status.New()

	zf, err := Parse(data)
	if err != nil {
		st.AddError("zipfile.get", err)
		return status.WithoutValue[[]watermark.Value](st)
	}

	var raw [][]byte
	for _, lf := range zf.LocalFiles {
		for _, f := range lf.ExtraFields {
			if f.ID == WatermarkFieldID {
				raw = append(raw, append([]byte(nil), f.Data...))
			}
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
	st.AddSuccess("zipfile.get", fmt.Sprintf("extracted %d watermark(s)", len(values)))

	return status.Into(st, values)
}

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
